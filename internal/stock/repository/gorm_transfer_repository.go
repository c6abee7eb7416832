package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hallaoui/ferme-ops/internal/stock/domain"
	"github.com/hallaoui/ferme-ops/pkg/logger"
)

// GormTransferRepository implements TransferRepository using GORM
type GormTransferRepository struct {
	db *gorm.DB
}

// NewGormTransferRepository creates a new GORM transfer repository
func NewGormTransferRepository(db *gorm.DB) *GormTransferRepository {
	return &GormTransferRepository{db: db}
}

func (r *GormTransferRepository) Create(transfer *domain.StockTransfer) error {
	if err := r.db.Create(transfer).Error; err != nil {
		return &domain.StoreError{Op: "create transfer", Err: err}
	}
	return nil
}

func (r *GormTransferRepository) FindByID(id uint) (*domain.StockTransfer, error) {
	var transfer domain.StockTransfer
	if err := r.db.First(&transfer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("transfer %d: %w", id, domain.ErrNotFound)
		}
		return nil, &domain.StoreError{Op: "find transfer", Err: err}
	}
	return &transfer, nil
}

func (r *GormTransferRepository) FindBySecteur(secteurID uint, limit, offset int) ([]domain.StockTransfer, error) {
	var transfers []domain.StockTransfer
	query := r.db.
		Where("from_secteur_id = ? OR to_secteur_id = ?", secteurID, secteurID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&transfers).Error; err != nil {
		return nil, &domain.StoreError{Op: "list transfers", Err: err}
	}
	return transfers, nil
}

func (r *GormTransferRepository) FindAll(limit, offset int) ([]domain.StockTransfer, error) {
	var transfers []domain.StockTransfer
	query := r.db.Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&transfers).Error; err != nil {
		return nil, &domain.StoreError{Op: "list transfers", Err: err}
	}
	return transfers, nil
}

// ConfirmAndMove confirms a pending transfer and moves the quantity between
// the two sector balances inside one database transaction. The row lock on
// the transfer makes a concurrent double confirm fail with ErrInvalidState;
// the row locks taken by findStockInTx serialize balance writes against
// other confirms and direct additions touching the same stock rows.
func (r *GormTransferRepository) ConfirmAndMove(id uint, now time.Time) (*domain.StockTransfer, error) {
	var confirmed *domain.StockTransfer

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var transfer domain.StockTransfer
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&transfer, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("transfer %d: %w", id, domain.ErrNotFound)
			}
			return &domain.StoreError{Op: "find transfer", Err: err}
		}

		sender, err := findStockInTx(tx, transfer.FromSecteurID, transfer.Item)
		if err != nil {
			return err
		}
		if sender == nil {
			logger.Logger.Warn().
				Uint("transfer_id", transfer.ID).
				Uint("from_secteur_id", transfer.FromSecteurID).
				Str("item", transfer.Item).
				Msg("Sender stock row missing, confirming transfer without debit")
		}

		receiver, err := findStockInTx(tx, transfer.ToSecteurID, transfer.Item)
		if err != nil {
			return err
		}

		receiver, err = domain.ApplyTransfer(&transfer, sender, receiver, now)
		if err != nil {
			return err
		}

		result := tx.Model(&domain.StockTransfer{}).
			Where("id = ? AND status = ?", transfer.ID, domain.StatusPending).
			Updates(map[string]interface{}{
				"status":       transfer.Status,
				"confirmed_at": transfer.ConfirmedAt,
			})
		if result.Error != nil {
			return &domain.StoreError{Op: "confirm transfer", Err: result.Error}
		}
		if result.RowsAffected == 0 {
			return domain.ErrInvalidState
		}

		if sender != nil {
			if err := tx.Save(sender).Error; err != nil {
				return &domain.StoreError{Op: "debit sender", Err: err}
			}
		}
		if err := tx.Save(receiver).Error; err != nil {
			return &domain.StoreError{Op: "credit receiver", Err: err}
		}

		confirmed = &transfer
		return nil
	})
	if err != nil {
		return nil, err
	}

	return confirmed, nil
}

func (r *GormTransferRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.StockTransfer{}).Where("status = ?", status).Count(&count).Error
	if err != nil {
		return 0, &domain.StoreError{Op: "count transfers", Err: err}
	}
	return count, nil
}

// findStockInTx reads a balance row under a row lock so that concurrent
// confirms and upserts touching the same row serialize instead of overwriting
// each other's balance. Returns nil without error when the row is absent.
func findStockInTx(tx *gorm.DB, secteurID uint, item string) (*domain.StockItem, error) {
	var stock domain.StockItem
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("secteur_id = ? AND item = ?", secteurID, item).
		First(&stock).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, &domain.StoreError{Op: "find stock", Err: err}
	}
	return &stock, nil
}
