package command

import (
	"fmt"
	"time"

	"github.com/hallaoui/ferme-ops/internal/housing/domain"
)

// UpdateWorkerCommand represents the command to update a worker
type UpdateWorkerCommand struct {
	ID        uint
	Nom       string
	Telephone string
	Age       int
	Chambre   string
}

// UpdateWorkerHandler handles update worker command
type UpdateWorkerHandler struct {
	repo domain.WorkerRepository
}

// NewUpdateWorkerHandler creates a new update worker handler
func NewUpdateWorkerHandler(repo domain.WorkerRepository) *UpdateWorkerHandler {
	return &UpdateWorkerHandler{repo: repo}
}

// Handle executes the update worker command
func (h *UpdateWorkerHandler) Handle(cmd UpdateWorkerCommand) (*domain.Worker, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("invalid worker id")
	}
	if cmd.Nom == "" {
		return nil, fmt.Errorf("nom is required")
	}

	worker, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("worker not found")
	}

	worker.Nom = cmd.Nom
	worker.Telephone = cmd.Telephone
	worker.Age = cmd.Age
	worker.Chambre = cmd.Chambre
	worker.UpdatedAt = time.Now()

	if err := h.repo.Update(worker); err != nil {
		return nil, fmt.Errorf("failed to update worker: %w", err)
	}

	return worker, nil
}
