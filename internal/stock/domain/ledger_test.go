package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTransfer(t *testing.T) {
	now := time.Now()

	t.Run("moves quantity and conserves the total", func(t *testing.T) {
		transfer := &StockTransfer{FromSecteurID: 1, ToSecteurID: 2, Item: "ciment", Quantity: 4, Unit: "sac", Status: StatusPending}
		sender := &StockItem{SecteurID: 1, Item: "ciment", Quantity: 10}
		receiver := &StockItem{SecteurID: 2, Item: "ciment", Quantity: 3}

		updated, err := ApplyTransfer(transfer, sender, receiver, now)
		require.NoError(t, err)

		assert.Equal(t, StatusConfirmed, transfer.Status)
		require.NotNil(t, transfer.ConfirmedAt)
		assert.Equal(t, 6, sender.Quantity)
		assert.Equal(t, 7, updated.Quantity)
		assert.Equal(t, 13, sender.Quantity+updated.Quantity)
	})

	t.Run("creates the receiver row when absent", func(t *testing.T) {
		transfer := &StockTransfer{FromSecteurID: 1, ToSecteurID: 2, Item: "ciment", Quantity: 4, Unit: "sac", Status: StatusPending}
		sender := &StockItem{SecteurID: 1, Item: "ciment", Quantity: 10}

		updated, err := ApplyTransfer(transfer, sender, nil, now)
		require.NoError(t, err)

		assert.Equal(t, uint(2), updated.SecteurID)
		assert.Equal(t, "ciment", updated.Item)
		assert.Equal(t, "sac", updated.Unit)
		assert.Equal(t, 4, updated.Quantity)
		assert.Equal(t, 6, sender.Quantity)
	})

	t.Run("missing sender skips the debit but still confirms", func(t *testing.T) {
		transfer := &StockTransfer{FromSecteurID: 1, ToSecteurID: 2, Item: "ciment", Quantity: 4, Status: StatusPending}
		receiver := &StockItem{SecteurID: 2, Item: "ciment", Quantity: 3}

		updated, err := ApplyTransfer(transfer, nil, receiver, now)
		require.NoError(t, err)

		assert.Equal(t, StatusConfirmed, transfer.Status)
		assert.Equal(t, 7, updated.Quantity)
	})

	t.Run("confirmed transfer is rejected and untouched", func(t *testing.T) {
		confirmedAt := now.Add(-time.Hour)
		transfer := &StockTransfer{FromSecteurID: 1, ToSecteurID: 2, Item: "ciment", Quantity: 4,
			Status: StatusConfirmed, ConfirmedAt: &confirmedAt}
		sender := &StockItem{SecteurID: 1, Item: "ciment", Quantity: 10}
		receiver := &StockItem{SecteurID: 2, Item: "ciment", Quantity: 3}

		_, err := ApplyTransfer(transfer, sender, receiver, now)

		assert.ErrorIs(t, err, ErrInvalidState)
		assert.Equal(t, 10, sender.Quantity)
		assert.Equal(t, 3, receiver.Quantity)
		assert.Equal(t, confirmedAt, *transfer.ConfirmedAt)
	})
}

func TestApplyAddition(t *testing.T) {
	now := time.Now()

	t.Run("credits an existing balance", func(t *testing.T) {
		addition := &StockAddition{SecteurID: 1, Item: "engrais", Quantity: 5, Status: StatusPending}
		target := &StockItem{SecteurID: 1, Item: "engrais", Quantity: 2}

		updated, err := ApplyAddition(addition, target, now)
		require.NoError(t, err)

		assert.Equal(t, StatusConfirmed, addition.Status)
		assert.Equal(t, 7, updated.Quantity)
	})

	t.Run("creates the balance when absent", func(t *testing.T) {
		addition := &StockAddition{SecteurID: 1, Item: "engrais", Quantity: 5, Unit: "kg", Status: StatusPending}

		updated, err := ApplyAddition(addition, nil, now)
		require.NoError(t, err)

		assert.Equal(t, uint(1), updated.SecteurID)
		assert.Equal(t, "kg", updated.Unit)
		assert.Equal(t, 5, updated.Quantity)
	})

	t.Run("confirmed addition is rejected", func(t *testing.T) {
		addition := &StockAddition{SecteurID: 1, Item: "engrais", Quantity: 5, Status: StatusConfirmed}
		target := &StockItem{SecteurID: 1, Item: "engrais", Quantity: 2}

		_, err := ApplyAddition(addition, target, now)

		assert.ErrorIs(t, err, ErrInvalidState)
		assert.Equal(t, 2, target.Quantity)
	})
}
