package occupancy

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallaoui/ferme-ops/internal/housing/domain"
)

type fakeWorkerRepo struct {
	domain.WorkerRepository
	workers []domain.Worker
}

func (f *fakeWorkerRepo) FindActiveByFerme(fermeID uint) ([]domain.Worker, error) {
	var active []domain.Worker
	for _, w := range f.workers {
		if w.FermeID == fermeID && w.IsActive() {
			active = append(active, w)
		}
	}
	return active, nil
}

type fakeRoomRepo struct {
	domain.RoomRepository
	rooms   map[uint]*domain.Room
	failIDs map[uint]bool
}

func (f *fakeRoomRepo) FindByFerme(fermeID uint, limit, offset int) ([]domain.Room, error) {
	var rooms []domain.Room
	for _, r := range f.rooms {
		if r.FermeID == fermeID {
			rooms = append(rooms, *r)
		}
	}
	return rooms, nil
}

func (f *fakeRoomRepo) UpdateOccupancy(id uint, occupants int, liste []int64, at time.Time) error {
	if f.failIDs[id] {
		return fmt.Errorf("store unavailable")
	}
	room, ok := f.rooms[id]
	if !ok {
		return fmt.Errorf("room not found")
	}
	room.OccupantsActuels = occupants
	room.ListeOccupants = pq.Int64Array(liste)
	return nil
}

func TestService_ReconcileFerme(t *testing.T) {
	newFixture := func() (*fakeWorkerRepo, *fakeRoomRepo) {
		workerRepo := &fakeWorkerRepo{workers: []domain.Worker{
			activeWorker(10, 1, domain.SexeHomme, "101"),
			activeWorker(11, 1, domain.SexeHomme, "101"),
			activeWorker(12, 1, domain.SexeFemme, "201"),
		}}
		roomRepo := &fakeRoomRepo{
			rooms: map[uint]*domain.Room{
				1: {ID: 1, FermeID: 1, Numero: "101", Genre: domain.GenreHommes, CapaciteTotale: 4, OccupantsActuels: 0},
				2: {ID: 2, FermeID: 1, Numero: "201", Genre: domain.GenreFemmes, CapaciteTotale: 4, OccupantsActuels: 0},
			},
			failIDs: map[uint]bool{},
		}
		return workerRepo, roomRepo
	}

	t.Run("applies corrections and second pass is silent", func(t *testing.T) {
		workerRepo, roomRepo := newFixture()
		svc := NewService(workerRepo, roomRepo)

		result, err := svc.ReconcileFerme(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Corrections)
		assert.Equal(t, 2, result.Applied)
		assert.Zero(t, result.Skipped)
		assert.Equal(t, 2, roomRepo.rooms[1].OccupantsActuels)
		assert.Equal(t, 1, roomRepo.rooms[2].OccupantsActuels)

		result, err = svc.ReconcileFerme(context.Background(), 1)
		require.NoError(t, err)
		assert.Zero(t, result.Corrections)
	})

	t.Run("store error skips the room but continues", func(t *testing.T) {
		workerRepo, roomRepo := newFixture()
		roomRepo.failIDs[1] = true
		svc := NewService(workerRepo, roomRepo)

		result, err := svc.ReconcileFerme(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Corrections)
		assert.Equal(t, 1, result.Applied)
		assert.Equal(t, 1, result.Skipped)
		assert.Equal(t, 0, roomRepo.rooms[1].OccupantsActuels)
		assert.Equal(t, 1, roomRepo.rooms[2].OccupantsActuels)
	})

	t.Run("stats never persists", func(t *testing.T) {
		workerRepo, roomRepo := newFixture()
		svc := NewService(workerRepo, roomRepo)

		stats, err := svc.Stats(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 3, stats.TotalActiveWorkers)
		assert.Equal(t, 3, stats.TotalOccupied)
		assert.Equal(t, 0, roomRepo.rooms[1].OccupantsActuels)
	})
}
