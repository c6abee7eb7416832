package command

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallaoui/ferme-ops/internal/stock/domain"
)

type stockKey struct {
	secteurID uint
	item      string
}

type fakeStockRepo struct {
	domain.StockRepository
	balances map[stockKey]*domain.StockItem
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{balances: make(map[stockKey]*domain.StockItem)}
}

func (f *fakeStockRepo) FindBySecteurAndItem(secteurID uint, item string) (*domain.StockItem, error) {
	stock, ok := f.balances[stockKey{secteurID, item}]
	if !ok {
		return nil, fmt.Errorf("stock %q in secteur %d: %w", item, secteurID, domain.ErrNotFound)
	}
	copied := *stock
	return &copied, nil
}

func (f *fakeStockRepo) AddQuantity(secteurID uint, item string, quantity int, unit string) error {
	key := stockKey{secteurID, item}
	if stock, ok := f.balances[key]; ok {
		stock.Quantity += quantity
		stock.LastUpdated = time.Now()
		return nil
	}
	f.balances[key] = &domain.StockItem{SecteurID: secteurID, Item: item, Quantity: quantity, Unit: unit}
	return nil
}

type fakeTransferRepo struct {
	domain.TransferRepository
	created []*domain.StockTransfer
}

func (f *fakeTransferRepo) Create(transfer *domain.StockTransfer) error {
	transfer.ID = uint(len(f.created) + 1)
	f.created = append(f.created, transfer)
	return nil
}

type fakeAdditionRepo struct {
	domain.AdditionRepository
	created []*domain.StockAddition
}

func (f *fakeAdditionRepo) Create(addition *domain.StockAddition) error {
	addition.ID = uint(len(f.created) + 1)
	f.created = append(f.created, addition)
	return nil
}

func TestAddStock(t *testing.T) {
	sectorAdmin := Actor{UserID: 7, Role: "admin", SecteurID: 1}
	superAdmin := Actor{UserID: 1, Role: "superadmin"}

	t.Run("rejects non positive quantity", func(t *testing.T) {
		h := NewAddStockHandler(newFakeStockRepo(), &fakeAdditionRepo{})

		_, err := h.Handle(AddStockCommand{Actor: sectorAdmin, SecteurID: 1, Item: "ciment", Quantity: 0})
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = h.Handle(AddStockCommand{Actor: sectorAdmin, SecteurID: 1, Item: "ciment", Quantity: -3})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("sector admin credits the balance directly", func(t *testing.T) {
		stockRepo := newFakeStockRepo()
		additionRepo := &fakeAdditionRepo{}
		h := NewAddStockHandler(stockRepo, additionRepo)

		result, err := h.Handle(AddStockCommand{Actor: sectorAdmin, SecteurID: 1, Item: "ciment", Quantity: 5, Unit: "sac"})
		require.NoError(t, err)
		assert.False(t, result.Pending)
		assert.Equal(t, 5, result.Stock.Quantity)
		assert.Empty(t, additionRepo.created)

		result, err = h.Handle(AddStockCommand{Actor: sectorAdmin, SecteurID: 1, Item: "ciment", Quantity: 3, Unit: "sac"})
		require.NoError(t, err)
		assert.Equal(t, 8, result.Stock.Quantity)
	})

	t.Run("superadmin produces a pending addition without touching the balance", func(t *testing.T) {
		stockRepo := newFakeStockRepo()
		additionRepo := &fakeAdditionRepo{}
		h := NewAddStockHandler(stockRepo, additionRepo)

		result, err := h.Handle(AddStockCommand{Actor: superAdmin, SecteurID: 2, Item: "engrais", Quantity: 10, Unit: "kg"})
		require.NoError(t, err)
		assert.True(t, result.Pending)
		require.NotNil(t, result.Addition)
		assert.Equal(t, domain.StatusPending, result.Addition.Status)
		assert.Equal(t, uint(1), result.Addition.AddedBy)
		assert.Empty(t, stockRepo.balances)
	})
}

func TestCreateTransfer(t *testing.T) {
	t.Run("rejects same secteur on both sides", func(t *testing.T) {
		h := NewCreateTransferHandler(newFakeStockRepo(), &fakeTransferRepo{})

		_, err := h.Handle(CreateTransferCommand{FromSecteurID: 1, ToSecteurID: 1, Item: "ciment", Quantity: 1})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("insufficient stock reports the true available amount", func(t *testing.T) {
		stockRepo := newFakeStockRepo()
		require.NoError(t, stockRepo.AddQuantity(1, "ciment", 10, "sac"))
		h := NewCreateTransferHandler(stockRepo, &fakeTransferRepo{})

		_, err := h.Handle(CreateTransferCommand{FromSecteurID: 1, ToSecteurID: 2, Item: "ciment", Quantity: 15})

		var insufficient *domain.InsufficientStockError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, 10, insufficient.Available)
		assert.Equal(t, 15, insufficient.Requested)
	})

	t.Run("missing sender row reports zero available", func(t *testing.T) {
		h := NewCreateTransferHandler(newFakeStockRepo(), &fakeTransferRepo{})

		_, err := h.Handle(CreateTransferCommand{FromSecteurID: 1, ToSecteurID: 2, Item: "ciment", Quantity: 1})

		var insufficient *domain.InsufficientStockError
		require.ErrorAs(t, err, &insufficient)
		assert.Zero(t, insufficient.Available)
	})

	t.Run("sufficient balance creates a pending row without moving stock", func(t *testing.T) {
		stockRepo := newFakeStockRepo()
		require.NoError(t, stockRepo.AddQuantity(1, "ciment", 10, "sac"))
		transferRepo := &fakeTransferRepo{}
		h := NewCreateTransferHandler(stockRepo, transferRepo)

		transfer, err := h.Handle(CreateTransferCommand{FromSecteurID: 1, ToSecteurID: 2, Item: "ciment", Quantity: 4, Unit: "sac"})
		require.NoError(t, err)

		assert.Equal(t, domain.StatusPending, transfer.Status)
		require.Len(t, transferRepo.created, 1)
		sender, err := stockRepo.FindBySecteurAndItem(1, "ciment")
		require.NoError(t, err)
		assert.Equal(t, 10, sender.Quantity)
	})
}
