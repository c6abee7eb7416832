package query

import (
	"fmt"

	"github.com/hallaoui/ferme-ops/internal/housing/domain"
)

// ListFermesQuery represents the query to list sectors
type ListFermesQuery struct {
	Limit  int
	Offset int
}

// ListFermesHandler handles list fermes query
type ListFermesHandler struct {
	repo domain.FermeRepository
}

// NewListFermesHandler creates a new list fermes handler
func NewListFermesHandler(repo domain.FermeRepository) *ListFermesHandler {
	return &ListFermesHandler{repo: repo}
}

// Handle executes the list fermes query
func (h *ListFermesHandler) Handle(query ListFermesQuery) ([]domain.Ferme, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = 50
	}

	fermes, err := h.repo.FindAll(limit, query.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list fermes: %w", err)
	}

	return fermes, nil
}
