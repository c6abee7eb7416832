package domain

import (
	"time"

	"gorm.io/gorm"
)

// Workflow states. The only allowed transition is pending to confirmed.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
)

// StockTransfer is a proposed move of quantity between two sector balances.
// Immutable once confirmed.
type StockTransfer struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	FromSecteurID uint           `json:"from_secteur_id" gorm:"not null;index"`
	ToSecteurID   uint           `json:"to_secteur_id" gorm:"not null;index"`
	Item          string         `json:"item" gorm:"not null"`
	Quantity      int            `json:"quantity" gorm:"not null"`
	Unit          string         `json:"unit"`
	Status        string         `json:"status" gorm:"not null;default:'pending';index"`
	ConfirmedAt   *time.Time     `json:"confirmed_at,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (StockTransfer) TableName() string {
	return "stock_transfers"
}

// IsPending reports whether the transfer can still be confirmed
func (t *StockTransfer) IsPending() bool {
	return t.Status == StatusPending
}

// TransferRepository defines the contract for transfer data access
type TransferRepository interface {
	Create(transfer *StockTransfer) error
	FindByID(id uint) (*StockTransfer, error)
	FindBySecteur(secteurID uint, limit, offset int) ([]StockTransfer, error)
	FindAll(limit, offset int) ([]StockTransfer, error)
	// ConfirmAndMove confirms a pending transfer and moves the quantity
	// between the two sector balances in one storage transaction
	ConfirmAndMove(id uint, now time.Time) (*StockTransfer, error)
	CountByStatus(status string) (int64, error)
}
