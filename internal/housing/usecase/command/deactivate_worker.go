package command

import (
	"fmt"
	"time"

	"github.com/hallaoui/ferme-ops/internal/housing/domain"
)

// DeactivateWorkerCommand marks a worker as having left the sector. The
// worker stops counting toward occupancy and frees their room slot.
type DeactivateWorkerCommand struct {
	ID         uint
	DateSortie time.Time
}

// DeactivateWorkerHandler handles deactivate worker command
type DeactivateWorkerHandler struct {
	repo domain.WorkerRepository
}

// NewDeactivateWorkerHandler creates a new deactivate worker handler
func NewDeactivateWorkerHandler(repo domain.WorkerRepository) *DeactivateWorkerHandler {
	return &DeactivateWorkerHandler{repo: repo}
}

// Handle executes the deactivate worker command
func (h *DeactivateWorkerHandler) Handle(cmd DeactivateWorkerCommand) (*domain.Worker, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("invalid worker id")
	}

	worker, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("worker not found")
	}

	if worker.Statut == domain.StatutInactif {
		return nil, fmt.Errorf("worker is already inactive")
	}

	dateSortie := cmd.DateSortie
	if dateSortie.IsZero() {
		dateSortie = time.Now()
	}

	worker.Statut = domain.StatutInactif
	worker.Chambre = ""
	worker.DateSortie = &dateSortie
	worker.UpdatedAt = time.Now()

	if err := h.repo.Update(worker); err != nil {
		return nil, fmt.Errorf("failed to deactivate worker: %w", err)
	}

	return worker, nil
}
