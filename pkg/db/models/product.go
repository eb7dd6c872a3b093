package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stan-9/fashion-sales-backend/pkg/enums"
)

// Product is a catalog listing. Price and cost are stored as numeric(10,2);
// stock levels drive the low-stock dashboard counter.
type Product struct {
	ID            int64               `gorm:"column:id;primaryKey;autoIncrement"`
	Name          string              `gorm:"column:name;not null"`
	Description   *string             `gorm:"column:description"`
	CategoryID    *int64              `gorm:"column:category_id"`
	Price         decimal.Decimal     `gorm:"column:price;type:numeric(10,2);not null"`
	Cost          decimal.Decimal     `gorm:"column:cost;type:numeric(10,2)"`
	SKU           *string             `gorm:"column:sku;uniqueIndex"`
	Size          *string             `gorm:"column:size"`
	Color         *string             `gorm:"column:color"`
	Brand         *string             `gorm:"column:brand"`
	StockQuantity int                 `gorm:"column:stock_quantity;not null;default:0"`
	MinStockLevel int                 `gorm:"column:min_stock_level;not null;default:5"`
	ImageURL      *string             `gorm:"column:image_url"`
	Status        enums.ProductStatus `gorm:"column:status;not null;default:'active'"`
	CreatedAt     time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
