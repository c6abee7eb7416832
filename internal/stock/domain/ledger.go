package domain

import "time"

// ApplyTransfer mutates a pending transfer and the two sector balances it
// touches. sender and receiver are the current rows, nil when absent. The
// returned receiver row is newly built when the receiving sector had no
// balance for the item yet.
//
// A nil sender does not fail the confirmation: the debit is skipped and the
// transfer still confirms. Callers should log that case, it breaks quantity
// conservation for the item.
func ApplyTransfer(transfer *StockTransfer, sender, receiver *StockItem, now time.Time) (*StockItem, error) {
	if !transfer.IsPending() {
		return nil, ErrInvalidState
	}

	transfer.Status = StatusConfirmed
	transfer.ConfirmedAt = &now

	if sender != nil {
		sender.Quantity -= transfer.Quantity
		sender.LastUpdated = now
	}

	if receiver == nil {
		receiver = &StockItem{
			SecteurID: transfer.ToSecteurID,
			Item:      transfer.Item,
			Unit:      transfer.Unit,
		}
	}
	receiver.Quantity += transfer.Quantity
	receiver.LastUpdated = now

	return receiver, nil
}

// ApplyAddition mutates a pending addition and the sector balance it credits.
// target is the current row, nil when absent.
func ApplyAddition(addition *StockAddition, target *StockItem, now time.Time) (*StockItem, error) {
	if !addition.IsPending() {
		return nil, ErrInvalidState
	}

	addition.Status = StatusConfirmed
	addition.ConfirmedAt = &now

	if target == nil {
		target = &StockItem{
			SecteurID: addition.SecteurID,
			Item:      addition.Item,
			Unit:      addition.Unit,
		}
	}
	target.Quantity += addition.Quantity
	target.LastUpdated = now

	return target, nil
}
