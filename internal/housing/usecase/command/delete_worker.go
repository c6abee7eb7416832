package command

import (
	"fmt"

	"github.com/hallaoui/ferme-ops/internal/housing/domain"
)

// DeleteWorkerCommand represents the command to delete a worker
type DeleteWorkerCommand struct {
	ID uint
}

// DeleteWorkerHandler handles delete worker command
type DeleteWorkerHandler struct {
	repo domain.WorkerRepository
}

// NewDeleteWorkerHandler creates a new delete worker handler
func NewDeleteWorkerHandler(repo domain.WorkerRepository) *DeleteWorkerHandler {
	return &DeleteWorkerHandler{repo: repo}
}

// Handle executes the delete worker command
func (h *DeleteWorkerHandler) Handle(cmd DeleteWorkerCommand) (*domain.Worker, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("invalid worker id")
	}

	worker, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("worker not found")
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		return nil, fmt.Errorf("failed to delete worker: %w", err)
	}

	return worker, nil
}
