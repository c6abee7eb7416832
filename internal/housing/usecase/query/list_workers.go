package query

import (
	"fmt"

	"github.com/hallaoui/ferme-ops/internal/housing/domain"
)

// ListWorkersQuery represents the query to list workers
type ListWorkersQuery struct {
	FermeID uint // 0 lists workers across every sector
	Statut  string
	Limit   int
	Offset  int
}

// ListWorkersHandler handles list workers query
type ListWorkersHandler struct {
	repo domain.WorkerRepository
}

// NewListWorkersHandler creates a new list workers handler
func NewListWorkersHandler(repo domain.WorkerRepository) *ListWorkersHandler {
	return &ListWorkersHandler{repo: repo}
}

// Handle executes the list workers query
func (h *ListWorkersHandler) Handle(query ListWorkersQuery) ([]domain.Worker, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = 50
	}

	var (
		workers []domain.Worker
		err     error
	)
	if query.FermeID > 0 {
		workers, err = h.repo.FindByFerme(query.FermeID, limit, query.Offset)
	} else {
		workers, err = h.repo.FindAll(limit, query.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}

	if query.Statut == "" {
		return workers, nil
	}

	filtered := workers[:0]
	for _, w := range workers {
		if w.Statut == query.Statut {
			filtered = append(filtered, w)
		}
	}
	return filtered, nil
}
