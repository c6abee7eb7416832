//go:build integration
// +build integration

package repository

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/hallaoui/ferme-ops/internal/stock/domain"
)

// Run with a live PostgreSQL instance:
//
//	TEST_DATABASE_DSN="host=localhost user=postgres password=postgres dbname=stockdb_test sslmode=disable" \
//	  go test -tags=integration ./internal/stock/repository/

func setupLedgerDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set, skipping integration test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	err = db.AutoMigrate(&domain.StockItem{}, &domain.StockTransfer{}, &domain.StockAddition{})
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// cleanupItem hard-deletes every row tied to the given item so each test
// starts from a known state even after a failed previous run.
func cleanupItem(t *testing.T, db *gorm.DB, item string) {
	t.Helper()

	if err := db.Unscoped().Where("item = ?", item).Delete(&domain.StockItem{}).Error; err != nil {
		t.Fatalf("failed to clean stocks for %s: %v", item, err)
	}
	if err := db.Unscoped().Where("item = ?", item).Delete(&domain.StockTransfer{}).Error; err != nil {
		t.Fatalf("failed to clean transfers for %s: %v", item, err)
	}
	if err := db.Unscoped().Where("item = ?", item).Delete(&domain.StockAddition{}).Error; err != nil {
		t.Fatalf("failed to clean additions for %s: %v", item, err)
	}
}

func seedStock(t *testing.T, db *gorm.DB, secteurID uint, item string, quantity int) {
	t.Helper()

	stock := domain.StockItem{
		SecteurID:   secteurID,
		Item:        item,
		Quantity:    quantity,
		Unit:        "sac",
		LastUpdated: time.Now(),
	}
	if err := db.Create(&stock).Error; err != nil {
		t.Fatalf("failed to seed stock for secteur %d: %v", secteurID, err)
	}
}

func quantityOf(t *testing.T, db *gorm.DB, secteurID uint, item string) int {
	t.Helper()

	var stock domain.StockItem
	err := db.Where("secteur_id = ? AND item = ?", secteurID, item).First(&stock).Error
	if err != nil {
		t.Fatalf("failed to read balance for secteur %d: %v", secteurID, err)
	}
	return stock.Quantity
}

// Two pending transfers debit the same sender row at the same time. Both
// confirmations must commit and the debits must stack: a lost update would
// leave the sender with only the later debit applied.
func TestConfirmAndMove_ConcurrentConfirmsConserveQuantity(t *testing.T) {
	db := setupLedgerDB(t)
	repo := NewGormTransferRepository(db)

	const item = "engrais-npk-concurrent-confirm"
	cleanupItem(t, db, item)
	seedStock(t, db, 1, item, 10)

	first := &domain.StockTransfer{
		FromSecteurID: 1,
		ToSecteurID:   2,
		Item:          item,
		Quantity:      4,
		Unit:          "sac",
		Status:        domain.StatusPending,
	}
	second := &domain.StockTransfer{
		FromSecteurID: 1,
		ToSecteurID:   3,
		Item:          item,
		Quantity:      3,
		Unit:          "sac",
		Status:        domain.StatusPending,
	}
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []uint{first.ID, second.ID} {
		wg.Add(1)
		go func(i int, id uint) {
			defer wg.Done()
			_, errs[i] = repo.ConfirmAndMove(id, time.Now())
		}(i, id)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	assert.Equal(t, 3, quantityOf(t, db, 1, item), "sender must carry both debits")
	assert.Equal(t, 4, quantityOf(t, db, 2, item))
	assert.Equal(t, 3, quantityOf(t, db, 3, item))
}

// A confirm and a direct upsert racing on the same balance row must both
// land: the confirm reads the row under a lock, the upsert increments in SQL.
func TestConfirmAndApply_ConcurrentWithAddQuantity(t *testing.T) {
	db := setupLedgerDB(t)
	additionRepo := NewGormAdditionRepository(db)
	stockRepo := NewGormStockRepository(db)

	const item = "aliment-volaille-concurrent-credit"
	cleanupItem(t, db, item)
	seedStock(t, db, 5, item, 20)

	addition := &domain.StockAddition{
		SecteurID: 5,
		Item:      item,
		Quantity:  7,
		Unit:      "sac",
		Status:    domain.StatusPending,
		AddedBy:   1,
	}
	require.NoError(t, additionRepo.Create(addition))

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = additionRepo.ConfirmAndApply(addition.ID, time.Now())
	}()
	go func() {
		defer wg.Done()
		errs[1] = stockRepo.AddQuantity(5, item, 11, "sac")
	}()
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	assert.Equal(t, 38, quantityOf(t, db, 5, item))
}
