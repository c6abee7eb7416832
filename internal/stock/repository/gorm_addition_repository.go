package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hallaoui/ferme-ops/internal/stock/domain"
)

// GormAdditionRepository implements AdditionRepository using GORM
type GormAdditionRepository struct {
	db *gorm.DB
}

// NewGormAdditionRepository creates a new GORM addition repository
func NewGormAdditionRepository(db *gorm.DB) *GormAdditionRepository {
	return &GormAdditionRepository{db: db}
}

func (r *GormAdditionRepository) Create(addition *domain.StockAddition) error {
	if err := r.db.Create(addition).Error; err != nil {
		return &domain.StoreError{Op: "create addition", Err: err}
	}
	return nil
}

func (r *GormAdditionRepository) FindByID(id uint) (*domain.StockAddition, error) {
	var addition domain.StockAddition
	if err := r.db.First(&addition, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("addition %d: %w", id, domain.ErrNotFound)
		}
		return nil, &domain.StoreError{Op: "find addition", Err: err}
	}
	return &addition, nil
}

func (r *GormAdditionRepository) FindBySecteur(secteurID uint, limit, offset int) ([]domain.StockAddition, error) {
	var additions []domain.StockAddition
	query := r.db.Where("secteur_id = ?", secteurID).Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&additions).Error; err != nil {
		return nil, &domain.StoreError{Op: "list additions", Err: err}
	}
	return additions, nil
}

func (r *GormAdditionRepository) FindAll(limit, offset int) ([]domain.StockAddition, error) {
	var additions []domain.StockAddition
	query := r.db.Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&additions).Error; err != nil {
		return nil, &domain.StoreError{Op: "list additions", Err: err}
	}
	return additions, nil
}

// ConfirmAndApply confirms a pending addition and credits the sector balance
// inside one database transaction
func (r *GormAdditionRepository) ConfirmAndApply(id uint, now time.Time) (*domain.StockAddition, error) {
	var confirmed *domain.StockAddition

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var addition domain.StockAddition
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&addition, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("addition %d: %w", id, domain.ErrNotFound)
			}
			return &domain.StoreError{Op: "find addition", Err: err}
		}

		target, err := findStockInTx(tx, addition.SecteurID, addition.Item)
		if err != nil {
			return err
		}

		target, err = domain.ApplyAddition(&addition, target, now)
		if err != nil {
			return err
		}

		result := tx.Model(&domain.StockAddition{}).
			Where("id = ? AND status = ?", addition.ID, domain.StatusPending).
			Updates(map[string]interface{}{
				"status":       addition.Status,
				"confirmed_at": addition.ConfirmedAt,
			})
		if result.Error != nil {
			return &domain.StoreError{Op: "confirm addition", Err: result.Error}
		}
		if result.RowsAffected == 0 {
			return domain.ErrInvalidState
		}

		if err := tx.Save(target).Error; err != nil {
			return &domain.StoreError{Op: "credit balance", Err: err}
		}

		confirmed = &addition
		return nil
	})
	if err != nil {
		return nil, err
	}

	return confirmed, nil
}

func (r *GormAdditionRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.StockAddition{}).Where("status = ?", status).Count(&count).Error
	if err != nil {
		return 0, &domain.StoreError{Op: "count additions", Err: err}
	}
	return count, nil
}
