package query

import (
	"fmt"

	"github.com/hallaoui/ferme-ops/internal/housing/domain"
)

// GetFermeQuery represents the query to get a sector by ID
type GetFermeQuery struct {
	ID uint
}

// GetFermeHandler handles get ferme query
type GetFermeHandler struct {
	repo domain.FermeRepository
}

// NewGetFermeHandler creates a new get ferme handler
func NewGetFermeHandler(repo domain.FermeRepository) *GetFermeHandler {
	return &GetFermeHandler{repo: repo}
}

// Handle executes the get ferme query
func (h *GetFermeHandler) Handle(query GetFermeQuery) (*domain.Ferme, error) {
	if query.ID == 0 {
		return nil, fmt.Errorf("invalid ferme id")
	}

	ferme, err := h.repo.FindByID(query.ID)
	if err != nil {
		return nil, fmt.Errorf("ferme not found")
	}

	return ferme, nil
}
