package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hallaoui/ferme-ops/internal/housing/domain"
)

// GormWorkerRepository implements WorkerRepository using GORM
type GormWorkerRepository struct {
	db *gorm.DB
}

// NewGormWorkerRepository creates a new GORM worker repository
func NewGormWorkerRepository(db *gorm.DB) *GormWorkerRepository {
	return &GormWorkerRepository{db: db}
}

func (r *GormWorkerRepository) Create(worker *domain.Worker) error {
	if err := r.db.Create(worker).Error; err != nil {
		return fmt.Errorf("failed to create worker: %w", err)
	}
	return nil
}

func (r *GormWorkerRepository) FindByID(id uint) (*domain.Worker, error) {
	var worker domain.Worker
	if err := r.db.First(&worker, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("worker not found")
		}
		return nil, fmt.Errorf("failed to find worker: %w", err)
	}
	return &worker, nil
}

func (r *GormWorkerRepository) FindByFerme(fermeID uint, limit, offset int) ([]domain.Worker, error) {
	var workers []domain.Worker
	query := r.db.Where("ferme_id = ?", fermeID).Order("nom ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&workers).Error; err != nil {
		return nil, fmt.Errorf("failed to find workers: %w", err)
	}
	return workers, nil
}

func (r *GormWorkerRepository) FindActiveByFerme(fermeID uint) ([]domain.Worker, error) {
	var workers []domain.Worker
	err := r.db.
		Where("ferme_id = ? AND statut = ?", fermeID, domain.StatutActif).
		Find(&workers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find active workers: %w", err)
	}
	return workers, nil
}

func (r *GormWorkerRepository) FindAll(limit, offset int) ([]domain.Worker, error) {
	var workers []domain.Worker
	query := r.db.Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&workers).Error; err != nil {
		return nil, fmt.Errorf("failed to find workers: %w", err)
	}
	return workers, nil
}

func (r *GormWorkerRepository) Update(worker *domain.Worker) error {
	if err := r.db.Save(worker).Error; err != nil {
		return fmt.Errorf("failed to update worker: %w", err)
	}
	return nil
}

func (r *GormWorkerRepository) Delete(id uint) error {
	if err := r.db.Delete(&domain.Worker{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}
	return nil
}

func (r *GormWorkerRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.Worker{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count workers: %w", err)
	}
	return count, nil
}

func (r *GormWorkerRepository) CountByStatut(statut string) (int64, error) {
	var count int64
	if err := r.db.Model(&domain.Worker{}).Where("statut = ?", statut).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count workers by statut: %w", err)
	}
	return count, nil
}
