package domain

import (
	"time"

	"gorm.io/gorm"
)

// Ferme represents a sector: the organizational unit owning workers,
// rooms and a stock balance
type Ferme struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Nom          string         `json:"nom" gorm:"uniqueIndex;not null"`
	Localisation string         `json:"localisation"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Ferme) TableName() string {
	return "fermes"
}

// FermeRepository defines the contract for ferme data access
type FermeRepository interface {
	Create(ferme *Ferme) error
	FindByID(id uint) (*Ferme, error)
	FindAll(limit, offset int) ([]Ferme, error)
	Update(ferme *Ferme) error
	Delete(id uint) error
	Count() (int64, error)
}
