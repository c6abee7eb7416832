//go:build wireinject
// +build wireinject

package stock

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/hallaoui/ferme-ops/internal/stock/delivery/http"
	"github.com/hallaoui/ferme-ops/internal/stock/domain"
	"github.com/hallaoui/ferme-ops/internal/stock/repository"
	"github.com/hallaoui/ferme-ops/kafka"
)

// ProvideStockRepository provides the stock repository
func ProvideStockRepository(db *gorm.DB) domain.StockRepository {
	return repository.NewGormStockRepository(db)
}

// ProvideTransferRepository provides the transfer repository
func ProvideTransferRepository(db *gorm.DB) domain.TransferRepository {
	return repository.NewGormTransferRepository(db)
}

// ProvideAdditionRepository provides the addition repository
func ProvideAdditionRepository(db *gorm.DB) domain.AdditionRepository {
	return repository.NewGormAdditionRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideStockRepository,
	ProvideTransferRepository,
	ProvideAdditionRepository,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, publisher *kafka.Publisher) (*http.StockHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewStockHandler,
	)
	return nil, nil
}
