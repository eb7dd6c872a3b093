package product

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stan-9/fashion-sales-backend/pkg/db/models"
	"github.com/stan-9/fashion-sales-backend/pkg/enums"
)

// ProductDTO is the catalog payload returned to clients. Money fields are
// serialized as plain JSON numbers rounded to cents.
type ProductDTO struct {
	ID            int64               `json:"id"`
	Name          string              `json:"name"`
	Description   *string             `json:"description,omitempty"`
	CategoryID    *int64              `json:"category_id,omitempty"`
	CategoryName  *string             `json:"category_name,omitempty"`
	Price         float64             `json:"price"`
	Cost          float64             `json:"cost"`
	SKU           *string             `json:"sku,omitempty"`
	Size          *string             `json:"size,omitempty"`
	Color         *string             `json:"color,omitempty"`
	Brand         *string             `json:"brand,omitempty"`
	StockQuantity int                 `json:"stock_quantity"`
	MinStockLevel int                 `json:"min_stock_level"`
	ImageURL      *string             `json:"image_url,omitempty"`
	Status        enums.ProductStatus `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// CreateProductInput holds the validated payload to create a product.
type CreateProductInput struct {
	Name          string   `json:"name" validate:"required"`
	Description   *string  `json:"description,omitempty"`
	CategoryID    *int64   `json:"category_id,omitempty"`
	Price         float64  `json:"price" validate:"required,gte=0"`
	Cost          *float64 `json:"cost,omitempty" validate:"omitempty,gte=0"`
	SKU           *string  `json:"sku,omitempty"`
	Size          *string  `json:"size,omitempty"`
	Color         *string  `json:"color,omitempty"`
	Brand         *string  `json:"brand,omitempty"`
	StockQuantity *int     `json:"stock_quantity,omitempty" validate:"omitempty,gte=0"`
	MinStockLevel *int     `json:"min_stock_level,omitempty" validate:"omitempty,gte=0"`
	ImageURL      *string  `json:"image_url,omitempty"`
}

// UpdateProductInput holds optional mutation values for a product.
type UpdateProductInput struct {
	Name          *string  `json:"name,omitempty"`
	Description   *string  `json:"description,omitempty"`
	CategoryID    *int64   `json:"category_id,omitempty"`
	Price         *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Cost          *float64 `json:"cost,omitempty" validate:"omitempty,gte=0"`
	SKU           *string  `json:"sku,omitempty"`
	Size          *string  `json:"size,omitempty"`
	Color         *string  `json:"color,omitempty"`
	Brand         *string  `json:"brand,omitempty"`
	StockQuantity *int     `json:"stock_quantity,omitempty" validate:"omitempty,gte=0"`
	MinStockLevel *int     `json:"min_stock_level,omitempty" validate:"omitempty,gte=0"`
	ImageURL      *string  `json:"image_url,omitempty"`
}

// ListProductsInput carries the supported catalog filters.
type ListProductsInput struct {
	CategoryID *int64
	Search     string
	LowStock   bool
}

// ProductWithCategory is the read-model row joining the category name.
type ProductWithCategory struct {
	models.Product
	CategoryName *string `gorm:"column:category_name"`
}

// NewProductDTO builds a DTO from the joined read-model row.
func NewProductDTO(row *ProductWithCategory) *ProductDTO {
	if row == nil {
		return nil
	}
	return &ProductDTO{
		ID:            row.ID,
		Name:          row.Name,
		Description:   row.Description,
		CategoryID:    row.CategoryID,
		CategoryName:  row.CategoryName,
		Price:         row.Price.InexactFloat64(),
		Cost:          row.Cost.InexactFloat64(),
		SKU:           row.SKU,
		Size:          row.Size,
		Color:         row.Color,
		Brand:         row.Brand,
		StockQuantity: row.StockQuantity,
		MinStockLevel: row.MinStockLevel,
		ImageURL:      row.ImageURL,
		Status:        row.Status,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func decimalFromFloat(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value).Round(2)
}
