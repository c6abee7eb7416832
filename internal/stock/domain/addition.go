package domain

import (
	"time"

	"gorm.io/gorm"
)

// StockAddition is quantity proposed to be created in a sector's stock,
// subject to approval by that sector's owner
type StockAddition struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	SecteurID   uint           `json:"secteur_id" gorm:"not null;index"`
	Item        string         `json:"item" gorm:"not null"`
	Quantity    int            `json:"quantity" gorm:"not null"`
	Unit        string         `json:"unit"`
	Status      string         `json:"status" gorm:"not null;default:'pending';index"`
	AddedBy     uint           `json:"added_by"`
	ConfirmedAt *time.Time     `json:"confirmed_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (StockAddition) TableName() string {
	return "stock_additions"
}

// IsPending reports whether the addition can still be confirmed
func (a *StockAddition) IsPending() bool {
	return a.Status == StatusPending
}

// AdditionRepository defines the contract for addition data access
type AdditionRepository interface {
	Create(addition *StockAddition) error
	FindByID(id uint) (*StockAddition, error)
	FindBySecteur(secteurID uint, limit, offset int) ([]StockAddition, error)
	FindAll(limit, offset int) ([]StockAddition, error)
	// ConfirmAndApply confirms a pending addition and credits the sector's
	// balance in one storage transaction
	ConfirmAndApply(id uint, now time.Time) (*StockAddition, error)
	CountByStatus(status string) (int64, error)
}
