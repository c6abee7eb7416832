package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallaoui/ferme-ops/internal/stock/domain"
)

type fakeStatsStockRepo struct {
	domain.StockRepository
	total         int64
	totals        []domain.SecteurQuantity
	lowThresholds []int
	lowCount      int64
}

func (f *fakeStatsStockRepo) Count() (int64, error) {
	return f.total, nil
}

func (f *fakeStatsStockRepo) SumQuantityBySecteur() ([]domain.SecteurQuantity, error) {
	return f.totals, nil
}

func (f *fakeStatsStockRepo) CountBelowThreshold(threshold int) (int64, error) {
	f.lowThresholds = append(f.lowThresholds, threshold)
	return f.lowCount, nil
}

type fakeStatusTransferRepo struct {
	domain.TransferRepository
	counts map[string]int64
}

func (f *fakeStatusTransferRepo) CountByStatus(status string) (int64, error) {
	return f.counts[status], nil
}

type fakeStatusAdditionRepo struct {
	domain.AdditionRepository
	counts map[string]int64
}

func (f *fakeStatusAdditionRepo) CountByStatus(status string) (int64, error) {
	return f.counts[status], nil
}

func TestGetStats(t *testing.T) {
	stockRepo := &fakeStatsStockRepo{
		total: 5,
		totals: []domain.SecteurQuantity{
			{SecteurID: 1, Quantity: 42},
			{SecteurID: 2, Quantity: 7},
		},
		lowCount: 2,
	}
	transferRepo := &fakeStatusTransferRepo{counts: map[string]int64{
		domain.StatusPending:   3,
		domain.StatusConfirmed: 9,
	}}
	additionRepo := &fakeStatusAdditionRepo{counts: map[string]int64{
		domain.StatusPending:   1,
		domain.StatusConfirmed: 4,
	}}
	h := NewGetStatsHandler(stockRepo, transferRepo, additionRepo)

	t.Run("reports sector totals and low stock count", func(t *testing.T) {
		stats, err := h.Handle(GetStatsQuery{LowStockThreshold: 5})
		require.NoError(t, err)

		assert.Equal(t, int64(5), stats.TotalItems)
		assert.Equal(t, int64(3), stats.PendingTransfers)
		assert.Equal(t, int64(9), stats.ConfirmedTransfers)
		assert.Equal(t, int64(1), stats.PendingAdditions)
		assert.Equal(t, int64(4), stats.ConfirmedAdditions)
		assert.Equal(t, []domain.SecteurQuantity{
			{SecteurID: 1, Quantity: 42},
			{SecteurID: 2, Quantity: 7},
		}, stats.QuantitiesBySecteur)
		assert.Equal(t, 5, stats.LowStockThreshold)
		assert.Equal(t, int64(2), stats.LowStockItems)
	})

	t.Run("zero threshold falls back to the default", func(t *testing.T) {
		stockRepo.lowThresholds = nil

		stats, err := h.Handle(GetStatsQuery{})
		require.NoError(t, err)

		assert.Equal(t, DefaultLowStockThreshold, stats.LowStockThreshold)
		assert.Equal(t, []int{DefaultLowStockThreshold}, stockRepo.lowThresholds)
	})
}
