package domain

import (
	"time"

	"gorm.io/gorm"
)

// StockItem is a sector's balance for one item. At most one row exists per
// (secteur_id, item) pair.
type StockItem struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	SecteurID   uint           `json:"secteur_id" gorm:"not null;index:idx_stocks_key,unique"`
	Item        string         `json:"item" gorm:"not null;index:idx_stocks_key,unique"`
	Quantity    int            `json:"quantity" gorm:"not null;default:0"`
	Unit        string         `json:"unit"`
	LastUpdated time.Time      `json:"last_updated"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (StockItem) TableName() string {
	return "stocks"
}

// SecteurQuantity is the summed balance of one sector across all its items
type SecteurQuantity struct {
	SecteurID uint  `json:"secteur_id"`
	Quantity  int64 `json:"quantity"`
}

// StockRepository defines the contract for stock balance access
type StockRepository interface {
	FindBySecteurAndItem(secteurID uint, item string) (*StockItem, error)
	FindBySecteur(secteurID uint, limit, offset int) ([]StockItem, error)
	FindAll(limit, offset int) ([]StockItem, error)
	// AddQuantity upserts the (secteurID, item) row, incrementing an existing
	// balance or creating the row with the given quantity
	AddQuantity(secteurID uint, item string, quantity int, unit string) error
	Count() (int64, error)
	// SumQuantityBySecteur returns per-sector quantity totals ordered by
	// sector id
	SumQuantityBySecteur() ([]SecteurQuantity, error)
	// CountBelowThreshold counts balance rows with quantity strictly below
	// the threshold
	CountBelowThreshold(threshold int) (int64, error)
}
