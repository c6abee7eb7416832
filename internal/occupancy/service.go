package occupancy

import (
	"context"
	"fmt"
	"time"

	"github.com/hallaoui/ferme-ops/internal/housing/domain"
	"github.com/hallaoui/ferme-ops/pkg/logger"
)

// ReconcileResult reports one reconciliation pass over a sector
type ReconcileResult struct {
	FermeID     uint        `json:"ferme_id"`
	Corrections int         `json:"corrections"`
	Applied     int         `json:"applied"`
	Skipped     int         `json:"skipped"`
	Stats       SectorStats `json:"stats"`
}

// Service loads a sector's live occupancy snapshot, runs the reconciler and
// persists the resulting corrections
type Service struct {
	workerRepo domain.WorkerRepository
	roomRepo   domain.RoomRepository
}

// NewService creates a new occupancy service
func NewService(workerRepo domain.WorkerRepository, roomRepo domain.RoomRepository) *Service {
	return &Service{workerRepo: workerRepo, roomRepo: roomRepo}
}

// Stats computes sector statistics without persisting any correction
func (s *Service) Stats(ctx context.Context, fermeID uint) (SectorStats, error) {
	workers, rooms, err := s.snapshot(fermeID)
	if err != nil {
		return SectorStats{}, err
	}

	_, stats := Reconcile(workers, rooms)
	return stats, nil
}

// ReconcileFerme runs one reconciliation pass and applies the corrections.
// A correction that fails to persist is logged and skipped; the remaining
// rooms are still processed.
func (s *Service) ReconcileFerme(ctx context.Context, fermeID uint) (*ReconcileResult, error) {
	workers, rooms, err := s.snapshot(fermeID)
	if err != nil {
		return nil, err
	}

	corrections, stats := Reconcile(workers, rooms)
	result := &ReconcileResult{
		FermeID:     fermeID,
		Corrections: len(corrections),
		Stats:       stats,
	}

	now := time.Now()
	for _, c := range corrections {
		err := s.roomRepo.UpdateOccupancy(c.RoomID, c.OccupantsActuels, c.ListeOccupants, now)
		if err != nil {
			result.Skipped++
			logger.Error(ctx).Err(err).
				Uint("ferme_id", fermeID).
				Uint("room_id", c.RoomID).
				Msg("Failed to persist occupancy correction, skipping room")
			continue
		}
		result.Applied++
	}

	if result.Corrections > 0 {
		logger.Info(ctx).
			Uint("ferme_id", fermeID).
			Int("corrections", result.Corrections).
			Int("applied", result.Applied).
			Int("skipped", result.Skipped).
			Msg("Occupancy reconciled")
	}

	return result, nil
}

func (s *Service) snapshot(fermeID uint) ([]domain.Worker, []domain.Room, error) {
	workers, err := s.workerRepo.FindActiveByFerme(fermeID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load workers: %w", err)
	}

	rooms, err := s.roomRepo.FindByFerme(fermeID, 0, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load rooms: %w", err)
	}

	return workers, rooms, nil
}
