package domain

import (
	"time"

	"gorm.io/gorm"
)

// Worker gender values
const (
	SexeHomme = "homme"
	SexeFemme = "femme"
)

// Worker status values
const (
	StatutActif   = "actif"
	StatutInactif = "inactif"
)

// Worker represents a farm worker housed in a sector
type Worker struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	FermeID    uint           `json:"ferme_id" gorm:"not null;index"`
	Nom        string         `json:"nom" gorm:"not null"`
	CIN        string         `json:"cin" gorm:"uniqueIndex;not null"`
	Telephone  string         `json:"telephone"`
	Sexe       string         `json:"sexe" gorm:"not null"` // homme, femme
	Age        int            `json:"age"`
	Chambre    string         `json:"chambre"` // Assigned room number, may be empty
	Statut     string         `json:"statut" gorm:"not null;default:'actif'"`
	DateEntree time.Time      `json:"date_entree"`
	DateSortie *time.Time     `json:"date_sortie,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Worker) TableName() string {
	return "workers"
}

// IsActive reports whether the worker counts toward occupancy
func (w *Worker) IsActive() bool {
	return w.Statut == StatutActif
}

// GenderLabel maps a worker's sexe to the room genre it matches
func (w *Worker) GenderLabel() string {
	switch w.Sexe {
	case SexeHomme:
		return GenreHommes
	case SexeFemme:
		return GenreFemmes
	default:
		return ""
	}
}

// WorkerRepository defines the contract for worker data access
type WorkerRepository interface {
	Create(worker *Worker) error
	FindByID(id uint) (*Worker, error)
	FindByFerme(fermeID uint, limit, offset int) ([]Worker, error)
	FindActiveByFerme(fermeID uint) ([]Worker, error)
	FindAll(limit, offset int) ([]Worker, error)
	Update(worker *Worker) error
	Delete(id uint) error
	Count() (int64, error)
	CountByStatut(statut string) (int64, error)
}
