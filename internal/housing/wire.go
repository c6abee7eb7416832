//go:build wireinject
// +build wireinject

package housing

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/hallaoui/ferme-ops/internal/housing/delivery/http"
	"github.com/hallaoui/ferme-ops/internal/housing/domain"
	"github.com/hallaoui/ferme-ops/internal/housing/repository"
	"github.com/hallaoui/ferme-ops/kafka"
)

// ProvideFermeRepository provides the ferme repository
func ProvideFermeRepository(db *gorm.DB) domain.FermeRepository {
	return repository.NewGormFermeRepository(db)
}

// ProvideWorkerRepository provides the worker repository
func ProvideWorkerRepository(db *gorm.DB) domain.WorkerRepository {
	return repository.NewGormWorkerRepository(db)
}

// ProvideRoomRepository provides the room repository
func ProvideRoomRepository(db *gorm.DB) domain.RoomRepository {
	return repository.NewGormRoomRepositoryWithTracing(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideFermeRepository,
	ProvideWorkerRepository,
	ProvideRoomRepository,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, publisher *kafka.Publisher) (*http.HousingHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewHousingHandler,
	)
	return nil, nil
}
