package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/hallaoui/ferme-ops/internal/housing/domain"
)

// GormRoomRepository implements RoomRepository using GORM
type GormRoomRepository struct {
	db *gorm.DB
}

// NewGormRoomRepository creates a new GORM room repository
func NewGormRoomRepository(db *gorm.DB) *GormRoomRepository {
	return &GormRoomRepository{db: db}
}

func (r *GormRoomRepository) Create(room *domain.Room) error {
	if err := r.db.Create(room).Error; err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

func (r *GormRoomRepository) FindByID(id uint) (*domain.Room, error) {
	var room domain.Room
	if err := r.db.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("room not found")
		}
		return nil, fmt.Errorf("failed to find room: %w", err)
	}
	return &room, nil
}

func (r *GormRoomRepository) FindByKey(key domain.RoomKey) (*domain.Room, error) {
	var room domain.Room
	err := r.db.
		Where("ferme_id = ? AND numero = ? AND genre = ?", key.FermeID, key.Numero, key.Genre).
		First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("room not found")
		}
		return nil, fmt.Errorf("failed to find room: %w", err)
	}
	return &room, nil
}

func (r *GormRoomRepository) FindByFerme(fermeID uint, limit, offset int) ([]domain.Room, error) {
	var rooms []domain.Room
	query := r.db.Where("ferme_id = ?", fermeID).Order("numero ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to find rooms: %w", err)
	}
	return rooms, nil
}

func (r *GormRoomRepository) FindAll(limit, offset int) ([]domain.Room, error) {
	var rooms []domain.Room
	query := r.db.Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to find rooms: %w", err)
	}
	return rooms, nil
}

func (r *GormRoomRepository) Update(room *domain.Room) error {
	if err := r.db.Save(room).Error; err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}
	return nil
}

func (r *GormRoomRepository) Delete(id uint) error {
	if err := r.db.Delete(&domain.Room{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return nil
}

// UpdateOccupancy overwrites only the cached occupancy fields of a room
func (r *GormRoomRepository) UpdateOccupancy(id uint, occupants int, liste []int64, at time.Time) error {
	err := r.db.Model(&domain.Room{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"occupants_actuels": occupants,
			"liste_occupants":   pq.Int64Array(liste),
			"updated_at":        at,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update room occupancy: %w", err)
	}
	return nil
}

func (r *GormRoomRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.Room{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count rooms: %w", err)
	}
	return count, nil
}
