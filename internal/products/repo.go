package product

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/stan-9/fashion-sales-backend/pkg/db/models"
	"github.com/stan-9/fashion-sales-backend/pkg/enums"
)

// Repository provides product persistence helpers.
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

// List returns active products newest first with the category name joined,
// applying the optional catalog filters.
func (r *Repository) List(ctx context.Context, input ListProductsInput) ([]ProductWithCategory, error) {
	query := r.db.WithContext(ctx).
		Table("products p").
		Select("p.*, c.name AS category_name").
		Joins("LEFT JOIN categories c ON p.category_id = c.id").
		Where("p.status = ?", enums.ProductStatusActive)

	if input.CategoryID != nil {
		query = query.Where("p.category_id = ?", *input.CategoryID)
	}
	if term := strings.TrimSpace(input.Search); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		query = query.Where("LOWER(p.name) LIKE ? OR LOWER(p.description) LIKE ? OR LOWER(p.brand) LIKE ?", like, like, like)
	}
	if input.LowStock {
		query = query.Where("p.stock_quantity <= p.min_stock_level")
	}

	var rows []ProductWithCategory
	if err := query.Order("p.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID loads the product with its category name regardless of status.
func (r *Repository) FindByID(ctx context.Context, id int64) (*ProductWithCategory, error) {
	var row ProductWithCategory
	err := r.db.WithContext(ctx).
		Table("products p").
		Select("p.*, c.name AS category_name").
		Joins("LEFT JOIN categories c ON p.category_id = c.id").
		Where("p.id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// FindActiveByIDs loads active products keyed by id for order line resolution.
func (r *Repository) FindActiveByIDs(ctx context.Context, ids []int64) (map[int64]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("id IN ? AND status = ?", ids, enums.ProductStatusActive).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID, nil
}

// Create inserts the product and returns the stored row.
func (r *Repository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Update persists the full product row.
func (r *Repository) Update(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// SoftDelete marks the product inactive instead of removing the row so
// historical order lines keep their reference.
func (r *Repository) SoftDelete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Update("status", enums.ProductStatusInactive)
	return result.RowsAffected, result.Error
}
