package query

import (
	"fmt"

	"github.com/hallaoui/ferme-ops/internal/housing/domain"
)

// GetWorkerQuery represents the query to get a worker by ID
type GetWorkerQuery struct {
	ID uint
}

// GetWorkerHandler handles get worker query
type GetWorkerHandler struct {
	repo domain.WorkerRepository
}

// NewGetWorkerHandler creates a new get worker handler
func NewGetWorkerHandler(repo domain.WorkerRepository) *GetWorkerHandler {
	return &GetWorkerHandler{repo: repo}
}

// Handle executes the get worker query
func (h *GetWorkerHandler) Handle(query GetWorkerQuery) (*domain.Worker, error) {
	if query.ID == 0 {
		return nil, fmt.Errorf("invalid worker id")
	}

	worker, err := h.repo.FindByID(query.ID)
	if err != nil {
		return nil, fmt.Errorf("worker not found")
	}

	return worker, nil
}
