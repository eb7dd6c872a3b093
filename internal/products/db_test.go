package product

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/stan-9/fashion-sales-backend/pkg/db/models"
	"github.com/stan-9/fashion-sales-backend/pkg/enums"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := conn.AutoMigrate(
		&models.Category{},
		&models.Product{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return conn
}

func mustCreateTestCategory(t *testing.T, tx *gorm.DB, name string) *models.Category {
	t.Helper()
	cat := &models.Category{Name: name}
	if err := tx.Create(cat).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	return cat
}

func mustCreateTestProduct(t *testing.T, tx *gorm.DB, name string, price float64, mutate func(*models.Product)) *models.Product {
	t.Helper()
	p := &models.Product{
		Name:          name,
		Price:         decimal.NewFromFloat(price).Round(2),
		Cost:          decimal.Zero,
		StockQuantity: 10,
		MinStockLevel: 5,
		Status:        enums.ProductStatusActive,
	}
	if mutate != nil {
		mutate(p)
	}
	if err := tx.Create(p).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return p
}
