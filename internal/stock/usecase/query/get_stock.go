package query

import (
	"fmt"

	"github.com/hallaoui/ferme-ops/internal/stock/domain"
)

// GetStockQuery represents the query to get one sector balance
type GetStockQuery struct {
	SecteurID uint
	Item      string
}

// GetStockHandler handles get stock query
type GetStockHandler struct {
	repo domain.StockRepository
}

// NewGetStockHandler creates a new get stock handler
func NewGetStockHandler(repo domain.StockRepository) *GetStockHandler {
	return &GetStockHandler{repo: repo}
}

// Handle executes the get stock query
func (h *GetStockHandler) Handle(query GetStockQuery) (*domain.StockItem, error) {
	if query.SecteurID == 0 || query.Item == "" {
		return nil, fmt.Errorf("%w: secteur_id and item are required", domain.ErrValidation)
	}
	return h.repo.FindBySecteurAndItem(query.SecteurID, query.Item)
}
