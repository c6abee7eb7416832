package occupancy

import (
	"sync"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallaoui/ferme-ops/internal/housing/domain"
)

func activeWorker(id, fermeID uint, sexe, chambre string) domain.Worker {
	return domain.Worker{
		ID:      id,
		FermeID: fermeID,
		Sexe:    sexe,
		Chambre: chambre,
		Statut:  domain.StatutActif,
	}
}

func TestReconcile_Corrections(t *testing.T) {
	t.Run("drifted count emits one correction", func(t *testing.T) {
		rooms := []domain.Room{
			{ID: 1, FermeID: 1, Numero: "101", Genre: domain.GenreHommes, CapaciteTotale: 4, OccupantsActuels: 1},
		}
		workers := []domain.Worker{
			activeWorker(10, 1, domain.SexeHomme, "101"),
			activeWorker(11, 1, domain.SexeHomme, "101"),
		}

		corrections, _ := Reconcile(workers, rooms)

		require.Len(t, corrections, 1)
		assert.Equal(t, uint(1), corrections[0].RoomID)
		assert.Equal(t, 2, corrections[0].OccupantsActuels)
		assert.Equal(t, []int64{10, 11}, corrections[0].ListeOccupants)
	})

	t.Run("matching count emits no correction even with stale list", func(t *testing.T) {
		rooms := []domain.Room{
			{ID: 1, FermeID: 1, Numero: "101", Genre: domain.GenreHommes, CapaciteTotale: 4,
				OccupantsActuels: 2, ListeOccupants: pq.Int64Array{98, 99}},
		}
		workers := []domain.Worker{
			activeWorker(10, 1, domain.SexeHomme, "101"),
			activeWorker(11, 1, domain.SexeHomme, "101"),
		}

		corrections, _ := Reconcile(workers, rooms)
		assert.Empty(t, corrections)
	})

	t.Run("gender must match room genre", func(t *testing.T) {
		rooms := []domain.Room{
			{ID: 1, FermeID: 1, Numero: "101", Genre: domain.GenreFemmes, CapaciteTotale: 4, OccupantsActuels: 0},
		}
		workers := []domain.Worker{
			activeWorker(10, 1, domain.SexeHomme, "101"),
		}

		corrections, _ := Reconcile(workers, rooms)
		assert.Empty(t, corrections)
	})

	t.Run("inactive and unassigned workers never occupy", func(t *testing.T) {
		rooms := []domain.Room{
			{ID: 1, FermeID: 1, Numero: "101", Genre: domain.GenreHommes, CapaciteTotale: 4, OccupantsActuels: 0},
		}
		inactive := activeWorker(10, 1, domain.SexeHomme, "101")
		inactive.Statut = domain.StatutInactif
		workers := []domain.Worker{
			inactive,
			activeWorker(11, 1, domain.SexeHomme, ""),
		}

		corrections, stats := Reconcile(workers, rooms)
		assert.Empty(t, corrections)
		assert.Equal(t, 1, stats.TotalActiveWorkers)
		assert.Equal(t, 1, stats.UnassignedWorkers)
	})

	t.Run("same numero different genre are distinct rooms", func(t *testing.T) {
		rooms := []domain.Room{
			{ID: 1, FermeID: 1, Numero: "101", Genre: domain.GenreHommes, CapaciteTotale: 2, OccupantsActuels: 0},
			{ID: 2, FermeID: 1, Numero: "101", Genre: domain.GenreFemmes, CapaciteTotale: 2, OccupantsActuels: 0},
		}
		workers := []domain.Worker{
			activeWorker(10, 1, domain.SexeHomme, "101"),
			activeWorker(11, 1, domain.SexeFemme, "101"),
		}

		corrections, _ := Reconcile(workers, rooms)

		require.Len(t, corrections, 2)
		assert.Equal(t, []int64{10}, corrections[0].ListeOccupants)
		assert.Equal(t, []int64{11}, corrections[1].ListeOccupants)
	})

	t.Run("malformed sexe is excluded from every group", func(t *testing.T) {
		rooms := []domain.Room{
			{ID: 1, FermeID: 1, Numero: "101", Genre: domain.GenreHommes, CapaciteTotale: 2, OccupantsActuels: 0},
		}
		broken := activeWorker(10, 1, "autre", "101")

		corrections, _ := Reconcile([]domain.Worker{broken}, rooms)
		assert.Empty(t, corrections)
	})
}

func TestReconcile_Idempotence(t *testing.T) {
	rooms := []domain.Room{
		{ID: 1, FermeID: 1, Numero: "101", Genre: domain.GenreHommes, CapaciteTotale: 4, OccupantsActuels: 1},
		{ID: 2, FermeID: 1, Numero: "102", Genre: domain.GenreFemmes, CapaciteTotale: 3, OccupantsActuels: 5},
	}
	workers := []domain.Worker{
		activeWorker(10, 1, domain.SexeHomme, "101"),
		activeWorker(11, 1, domain.SexeHomme, "101"),
		activeWorker(12, 1, domain.SexeFemme, "102"),
	}

	corrections, _ := Reconcile(workers, rooms)
	require.Len(t, corrections, 2)

	// Apply the corrections, then a second pass must be silent
	for _, c := range corrections {
		for i := range rooms {
			if rooms[i].ID == c.RoomID {
				rooms[i].OccupantsActuels = c.OccupantsActuels
				rooms[i].ListeOccupants = pq.Int64Array(c.ListeOccupants)
			}
		}
	}

	corrections, _ = Reconcile(workers, rooms)
	assert.Empty(t, corrections)
}

func TestReconcile_Stats(t *testing.T) {
	t.Run("occupied is capped at room capacity", func(t *testing.T) {
		rooms := []domain.Room{
			{ID: 1, FermeID: 1, Numero: "101", Genre: domain.GenreHommes, CapaciteTotale: 2, OccupantsActuels: 3},
		}
		workers := []domain.Worker{
			activeWorker(10, 1, domain.SexeHomme, "101"),
			activeWorker(11, 1, domain.SexeHomme, "101"),
			activeWorker(12, 1, domain.SexeHomme, "101"),
		}

		_, stats := Reconcile(workers, rooms)

		assert.Equal(t, 2, stats.TotalOccupied)
		assert.Equal(t, 1, stats.OvercapacityRooms)
		assert.Equal(t, 100, stats.OccupancyRate)
		assert.Equal(t, 0, stats.FreeCapacity)
		assert.True(t, stats.NeedsAttention)
	})

	t.Run("rate is zero when capacity is zero", func(t *testing.T) {
		_, stats := Reconcile(nil, nil)
		assert.Equal(t, 0, stats.OccupancyRate)
		assert.False(t, stats.NeedsAttention)
		assert.False(t, stats.WellUtilized)
	})

	t.Run("rate is rounded to nearest integer", func(t *testing.T) {
		rooms := []domain.Room{
			{ID: 1, FermeID: 1, Numero: "101", Genre: domain.GenreHommes, CapaciteTotale: 3, OccupantsActuels: 2},
		}
		workers := []domain.Worker{
			activeWorker(10, 1, domain.SexeHomme, "101"),
			activeWorker(11, 1, domain.SexeHomme, "101"),
		}

		_, stats := Reconcile(workers, rooms)

		// 2/3 = 66.67 -> 67
		assert.Equal(t, 67, stats.OccupancyRate)
		assert.True(t, stats.WellUtilized)
	})

	t.Run("gender splits and room counts", func(t *testing.T) {
		rooms := []domain.Room{
			{ID: 1, FermeID: 1, Numero: "101", Genre: domain.GenreHommes, CapaciteTotale: 4, OccupantsActuels: 1},
			{ID: 2, FermeID: 1, Numero: "201", Genre: domain.GenreFemmes, CapaciteTotale: 4, OccupantsActuels: 0},
			{ID: 3, FermeID: 1, Numero: "202", Genre: domain.GenreFemmes, CapaciteTotale: 4, OccupantsActuels: 0},
		}
		workers := []domain.Worker{
			activeWorker(10, 1, domain.SexeHomme, "101"),
			activeWorker(11, 1, domain.SexeFemme, "201"),
			activeWorker(12, 1, domain.SexeFemme, ""),
		}

		_, stats := Reconcile(workers, rooms)

		assert.Equal(t, 3, stats.TotalActiveWorkers)
		assert.Equal(t, 1, stats.WorkersHommes)
		assert.Equal(t, 2, stats.WorkersFemmes)
		assert.Equal(t, 3, stats.TotalRooms)
		assert.Equal(t, 1, stats.RoomsHommes)
		assert.Equal(t, 2, stats.RoomsFemmes)
		assert.Equal(t, 2, stats.OccupiedRooms)
		assert.Equal(t, 1, stats.EmptyRooms)
		assert.Equal(t, 12, stats.TotalCapacity)
		assert.Equal(t, 2, stats.TotalOccupied)
		assert.Equal(t, 10, stats.FreeCapacity)
		assert.Equal(t, 1, stats.UnassignedWorkers)
		assert.True(t, stats.NeedsAttention)
	})

	t.Run("needs attention above 95 percent", func(t *testing.T) {
		rooms := []domain.Room{
			{ID: 1, FermeID: 1, Numero: "101", Genre: domain.GenreHommes, CapaciteTotale: 25, OccupantsActuels: 24},
		}
		var workers []domain.Worker
		for i := uint(0); i < 24; i++ {
			workers = append(workers, activeWorker(100+i, 1, domain.SexeHomme, "101"))
		}

		_, stats := Reconcile(workers, rooms)

		// 24/25 = 96
		assert.Equal(t, 96, stats.OccupancyRate)
		assert.True(t, stats.NeedsAttention)
		assert.False(t, stats.WellUtilized)
	})
}

func TestDebouncer(t *testing.T) {
	t.Run("burst of triggers coalesces into one pass", func(t *testing.T) {
		var mu sync.Mutex
		calls := make(map[uint]int)

		d := NewDebouncer(20*time.Millisecond, func(fermeID uint) {
			mu.Lock()
			calls[fermeID]++
			mu.Unlock()
		})
		defer d.Stop()

		for i := 0; i < 10; i++ {
			d.Trigger(1)
		}
		d.Trigger(2)

		assert.Eventually(t, func() bool {
			mu.Lock()
			defer mu.Unlock()
			return calls[1] == 1 && calls[2] == 1
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("stop drops pending passes", func(t *testing.T) {
		var mu sync.Mutex
		fired := 0

		d := NewDebouncer(20*time.Millisecond, func(uint) {
			mu.Lock()
			fired++
			mu.Unlock()
		})

		d.Trigger(1)
		d.Stop()

		time.Sleep(60 * time.Millisecond)
		mu.Lock()
		defer mu.Unlock()
		assert.Zero(t, fired)
	})
}
