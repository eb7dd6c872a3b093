package order

import (
	"context"

	"gorm.io/gorm"

	"github.com/stan-9/fashion-sales-backend/pkg/db/models"
)

// Repository provides order persistence helpers.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// List returns orders newest first with the customer identity joined,
// applying the optional filters.
func (r *Repository) List(ctx context.Context, input ListOrdersInput) ([]OrderListRow, error) {
	query := r.db.WithContext(ctx).
		Table("orders o").
		Select("o.*, c.first_name, c.last_name, c.email AS customer_email").
		Joins("LEFT JOIN customers c ON o.customer_id = c.id")

	if input.Status != nil {
		query = query.Where("o.status = ?", *input.Status)
	}
	if input.CustomerID != nil {
		query = query.Where("o.customer_id = ?", *input.CustomerID)
	}

	var rows []OrderListRow
	if err := query.Order("o.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID loads the order with its items.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateHeader inserts the order header only.
func (r *Repository) CreateHeader(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Omit("Items").Create(order).Error
}

// CreateItems inserts the order lines for an existing header.
func (r *Repository) CreateItems(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}
