package query

import (
	"github.com/hallaoui/ferme-ops/internal/stock/domain"
)

// ListTransfersQuery represents the query to list transfers
type ListTransfersQuery struct {
	SecteurID uint // 0 lists transfers across every sector
	Limit     int
	Offset    int
}

// ListTransfersHandler handles list transfers query
type ListTransfersHandler struct {
	repo domain.TransferRepository
}

// NewListTransfersHandler creates a new list transfers handler
func NewListTransfersHandler(repo domain.TransferRepository) *ListTransfersHandler {
	return &ListTransfersHandler{repo: repo}
}

// Handle executes the list transfers query
func (h *ListTransfersHandler) Handle(query ListTransfersQuery) ([]domain.StockTransfer, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = 50
	}

	if query.SecteurID > 0 {
		return h.repo.FindBySecteur(query.SecteurID, limit, query.Offset)
	}
	return h.repo.FindAll(limit, query.Offset)
}
