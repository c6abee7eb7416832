package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hallaoui/ferme-ops/internal/housing/domain"
)

// GormFermeRepository implements FermeRepository using GORM
type GormFermeRepository struct {
	db *gorm.DB
}

// NewGormFermeRepository creates a new GORM ferme repository
func NewGormFermeRepository(db *gorm.DB) *GormFermeRepository {
	return &GormFermeRepository{db: db}
}

func (r *GormFermeRepository) Create(ferme *domain.Ferme) error {
	if err := r.db.Create(ferme).Error; err != nil {
		return fmt.Errorf("failed to create ferme: %w", err)
	}
	return nil
}

func (r *GormFermeRepository) FindByID(id uint) (*domain.Ferme, error) {
	var ferme domain.Ferme
	if err := r.db.First(&ferme, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("ferme not found")
		}
		return nil, fmt.Errorf("failed to find ferme: %w", err)
	}
	return &ferme, nil
}

func (r *GormFermeRepository) FindAll(limit, offset int) ([]domain.Ferme, error) {
	var fermes []domain.Ferme
	query := r.db.Order("nom ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&fermes).Error; err != nil {
		return nil, fmt.Errorf("failed to find fermes: %w", err)
	}
	return fermes, nil
}

func (r *GormFermeRepository) Update(ferme *domain.Ferme) error {
	if err := r.db.Save(ferme).Error; err != nil {
		return fmt.Errorf("failed to update ferme: %w", err)
	}
	return nil
}

func (r *GormFermeRepository) Delete(id uint) error {
	if err := r.db.Delete(&domain.Ferme{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete ferme: %w", err)
	}
	return nil
}

func (r *GormFermeRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.Ferme{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count fermes: %w", err)
	}
	return count, nil
}
