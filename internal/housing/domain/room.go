package domain

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Room genre values
const (
	GenreHommes = "hommes"
	GenreFemmes = "femmes"
)

// Room represents a housing room inside a sector. OccupantsActuels and
// ListeOccupants are cached values kept in sync by the occupancy reconciler.
type Room struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	FermeID          uint           `json:"ferme_id" gorm:"not null;index:idx_rooms_key,unique"`
	Numero           string         `json:"numero" gorm:"not null;index:idx_rooms_key,unique"`
	Genre            string         `json:"genre" gorm:"not null;index:idx_rooms_key,unique"` // hommes, femmes
	CapaciteTotale   int            `json:"capacite_totale" gorm:"not null"`
	OccupantsActuels int            `json:"occupants_actuels" gorm:"not null;default:0"`
	ListeOccupants   pq.Int64Array  `json:"liste_occupants" gorm:"type:bigint[]"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Room) TableName() string {
	return "rooms"
}

// RoomKey identifies a room for occupancy matching. Two rooms with the same
// numero but different genre are distinct.
type RoomKey struct {
	FermeID uint
	Numero  string
	Genre   string
}

// Key returns the composite matching key of the room
func (r *Room) Key() RoomKey {
	return RoomKey{FermeID: r.FermeID, Numero: r.Numero, Genre: r.Genre}
}

// RoomRepository defines the contract for room data access
type RoomRepository interface {
	Create(room *Room) error
	FindByID(id uint) (*Room, error)
	FindByKey(key RoomKey) (*Room, error)
	FindByFerme(fermeID uint, limit, offset int) ([]Room, error)
	FindAll(limit, offset int) ([]Room, error)
	Update(room *Room) error
	Delete(id uint) error
	UpdateOccupancy(id uint, occupants int, liste []int64, at time.Time) error
	Count() (int64, error)
}
