package query

import (
	"github.com/hallaoui/ferme-ops/internal/stock/domain"
)

// ListAdditionsQuery represents the query to list additions
type ListAdditionsQuery struct {
	SecteurID uint // 0 lists additions across every sector
	Limit     int
	Offset    int
}

// ListAdditionsHandler handles list additions query
type ListAdditionsHandler struct {
	repo domain.AdditionRepository
}

// NewListAdditionsHandler creates a new list additions handler
func NewListAdditionsHandler(repo domain.AdditionRepository) *ListAdditionsHandler {
	return &ListAdditionsHandler{repo: repo}
}

// Handle executes the list additions query
func (h *ListAdditionsHandler) Handle(query ListAdditionsQuery) ([]domain.StockAddition, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = 50
	}

	if query.SecteurID > 0 {
		return h.repo.FindBySecteur(query.SecteurID, limit, query.Offset)
	}
	return h.repo.FindAll(limit, query.Offset)
}
