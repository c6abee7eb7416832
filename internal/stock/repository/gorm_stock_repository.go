package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hallaoui/ferme-ops/internal/stock/domain"
)

// GormStockRepository implements StockRepository using GORM
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a new GORM stock repository
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

func (r *GormStockRepository) FindBySecteurAndItem(secteurID uint, item string) (*domain.StockItem, error) {
	var stock domain.StockItem
	err := r.db.Where("secteur_id = ? AND item = ?", secteurID, item).First(&stock).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("stock %q in secteur %d: %w", item, secteurID, domain.ErrNotFound)
		}
		return nil, &domain.StoreError{Op: "find stock", Err: err}
	}
	return &stock, nil
}

func (r *GormStockRepository) FindBySecteur(secteurID uint, limit, offset int) ([]domain.StockItem, error) {
	var stocks []domain.StockItem
	query := r.db.Where("secteur_id = ?", secteurID).Order("item ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&stocks).Error; err != nil {
		return nil, &domain.StoreError{Op: "list stock", Err: err}
	}
	return stocks, nil
}

func (r *GormStockRepository) FindAll(limit, offset int) ([]domain.StockItem, error) {
	var stocks []domain.StockItem
	query := r.db.Order("secteur_id ASC, item ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&stocks).Error; err != nil {
		return nil, &domain.StoreError{Op: "list stock", Err: err}
	}
	return stocks, nil
}

// AddQuantity upserts the (secteurID, item) balance with an atomic increment
func (r *GormStockRepository) AddQuantity(secteurID uint, item string, quantity int, unit string) error {
	return addQuantity(r.db, secteurID, item, quantity, unit)
}

func addQuantity(db *gorm.DB, secteurID uint, item string, quantity int, unit string) error {
	now := time.Now()
	stock := domain.StockItem{
		SecteurID:   secteurID,
		Item:        item,
		Quantity:    quantity,
		Unit:        unit,
		LastUpdated: now,
	}

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "secteur_id"}, {Name: "item"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":     gorm.Expr("stocks.quantity + ?", quantity),
			"last_updated": now,
			"updated_at":   now,
		}),
	}).Create(&stock).Error
	if err != nil {
		return &domain.StoreError{Op: "add quantity", Err: err}
	}
	return nil
}

func (r *GormStockRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.StockItem{}).Count(&count).Error; err != nil {
		return 0, &domain.StoreError{Op: "count stock", Err: err}
	}
	return count, nil
}

func (r *GormStockRepository) SumQuantityBySecteur() ([]domain.SecteurQuantity, error) {
	var totals []domain.SecteurQuantity
	err := r.db.Model(&domain.StockItem{}).
		Select("secteur_id, SUM(quantity) AS quantity").
		Group("secteur_id").
		Order("secteur_id ASC").
		Scan(&totals).Error
	if err != nil {
		return nil, &domain.StoreError{Op: "sum stock by secteur", Err: err}
	}
	return totals, nil
}

func (r *GormStockRepository) CountBelowThreshold(threshold int) (int64, error) {
	var count int64
	err := r.db.Model(&domain.StockItem{}).
		Where("quantity < ?", threshold).
		Count(&count).Error
	if err != nil {
		return 0, &domain.StoreError{Op: "count low stock", Err: err}
	}
	return count, nil
}
