package query

import (
	"github.com/hallaoui/ferme-ops/internal/stock/domain"
)

// DefaultLowStockThreshold is used when the query does not set one
const DefaultLowStockThreshold = 10

// GetStatsQuery represents the query to get ledger statistics
type GetStatsQuery struct {
	// LowStockThreshold bounds the low-stock count; 0 means the default
	LowStockThreshold int
}

// LedgerStats aggregates ledger figures across sectors
type LedgerStats struct {
	TotalItems          int64                    `json:"total_items"`
	PendingTransfers    int64                    `json:"pending_transfers"`
	ConfirmedTransfers  int64                    `json:"confirmed_transfers"`
	PendingAdditions    int64                    `json:"pending_additions"`
	ConfirmedAdditions  int64                    `json:"confirmed_additions"`
	QuantitiesBySecteur []domain.SecteurQuantity `json:"quantities_by_secteur"`
	LowStockThreshold   int                      `json:"low_stock_threshold"`
	LowStockItems       int64                    `json:"low_stock_items"`
}

// GetStatsHandler handles get stats query
type GetStatsHandler struct {
	stockRepo    domain.StockRepository
	transferRepo domain.TransferRepository
	additionRepo domain.AdditionRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(
	stockRepo domain.StockRepository,
	transferRepo domain.TransferRepository,
	additionRepo domain.AdditionRepository,
) *GetStatsHandler {
	return &GetStatsHandler{stockRepo: stockRepo, transferRepo: transferRepo, additionRepo: additionRepo}
}

// Handle executes the get stats query
func (h *GetStatsHandler) Handle(query GetStatsQuery) (*LedgerStats, error) {
	stats := &LedgerStats{}

	var err error
	if stats.TotalItems, err = h.stockRepo.Count(); err != nil {
		return nil, err
	}
	if stats.PendingTransfers, err = h.transferRepo.CountByStatus(domain.StatusPending); err != nil {
		return nil, err
	}
	if stats.ConfirmedTransfers, err = h.transferRepo.CountByStatus(domain.StatusConfirmed); err != nil {
		return nil, err
	}
	if stats.PendingAdditions, err = h.additionRepo.CountByStatus(domain.StatusPending); err != nil {
		return nil, err
	}
	if stats.ConfirmedAdditions, err = h.additionRepo.CountByStatus(domain.StatusConfirmed); err != nil {
		return nil, err
	}
	if stats.QuantitiesBySecteur, err = h.stockRepo.SumQuantityBySecteur(); err != nil {
		return nil, err
	}

	threshold := query.LowStockThreshold
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	stats.LowStockThreshold = threshold
	if stats.LowStockItems, err = h.stockRepo.CountBelowThreshold(threshold); err != nil {
		return nil, err
	}

	return stats, nil
}
