package query

import (
	"github.com/hallaoui/ferme-ops/internal/stock/domain"
)

// ListStockQuery represents the query to list stock balances
type ListStockQuery struct {
	SecteurID uint // 0 lists balances across every sector
	Limit     int
	Offset    int
}

// ListStockHandler handles list stock query
type ListStockHandler struct {
	repo domain.StockRepository
}

// NewListStockHandler creates a new list stock handler
func NewListStockHandler(repo domain.StockRepository) *ListStockHandler {
	return &ListStockHandler{repo: repo}
}

// Handle executes the list stock query
func (h *ListStockHandler) Handle(query ListStockQuery) ([]domain.StockItem, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = 50
	}

	if query.SecteurID > 0 {
		return h.repo.FindBySecteur(query.SecteurID, limit, query.Offset)
	}
	return h.repo.FindAll(limit, query.Offset)
}
