package dashboard

import (
	"context"
	"path/filepath"
	"testing"
	"time"

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
		&models.Product{},
		&models.Customer{},
		&models.Order{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return conn
}

func seedStatsProduct(t *testing.T, conn *gorm.DB, stock, minStock int, status enums.ProductStatus) {
	t.Helper()
	p := &models.Product{
		Name:          "P",
		Price:         decimal.NewFromInt(10),
		StockQuantity: stock,
		MinStockLevel: minStock,
		Status:        status,
	}
	if err := conn.Create(p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
}

func seedStatsOrder(t *testing.T, conn *gorm.DB, total string, status enums.OrderStatus) {
	t.Helper()
	amount := decimal.RequireFromString(total)
	o := &models.Order{
		OrderNumber:   "ORD-" + status.String() + "-" + total + time.Now().Format("150405.000000000"),
		OrderDate:     time.Now(),
		Status:        status,
		Subtotal:      amount,
		Tax:           decimal.Zero,
		Discount:      decimal.Zero,
		Total:         amount,
		PaymentStatus: enums.PaymentStatusPending,
	}
	if err := conn.Omit("Items").Create(o).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
}

func TestStatsCounters(t *testing.T) {
	conn := openTestDB(t)
	svc, err := NewService(conn)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	seedStatsProduct(t, conn, 50, 5, enums.ProductStatusActive)
	seedStatsProduct(t, conn, 3, 5, enums.ProductStatusActive)   // low stock
	seedStatsProduct(t, conn, 0, 5, enums.ProductStatusInactive) // ignored

	for _, c := range []string{"a@example.com", "b@example.com"} {
		email := c
		if err := conn.Create(&models.Customer{FirstName: "T", LastName: "C", Email: &email}).Error; err != nil {
			t.Fatalf("seed customer: %v", err)
		}
	}

	seedStatsOrder(t, conn, "100.00", enums.OrderStatusCompleted)
	seedStatsOrder(t, conn, "40.00", enums.OrderStatusCompleted)
	seedStatsOrder(t, conn, "999.00", enums.OrderStatusPending)
	seedStatsOrder(t, conn, "50.00", enums.OrderStatusCancelled)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	if stats.TotalProducts != 2 {
		t.Fatalf("total products = %d, want 2 active", stats.TotalProducts)
	}
	if stats.TotalCustomers != 2 {
		t.Fatalf("total customers = %d, want 2", stats.TotalCustomers)
	}
	if stats.TotalOrders != 4 {
		t.Fatalf("total orders = %d, want 4 (all statuses)", stats.TotalOrders)
	}
	if stats.TotalRevenue != 140 {
		t.Fatalf("total revenue = %v, want 140 (completed only)", stats.TotalRevenue)
	}
	if stats.LowStockProducts != 1 {
		t.Fatalf("low stock = %d, want 1", stats.LowStockProducts)
	}
}

func TestStatsEmptyDatabase(t *testing.T) {
	conn := openTestDB(t)
	svc, err := NewService(conn)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalRevenue != 0 || stats.TotalOrders != 0 || stats.TotalProducts != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}
