package rating

import (
	"context"

	"gorm.io/gorm"

	"github.com/stan-9/fashion-sales-backend/pkg/db/models"
)

// Repository provides rating persistence helpers. Ratings are append-only.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the rating and returns the stored row.
func (r *Repository) Create(ctx context.Context, rating *models.Rating) (*models.Rating, error) {
	if err := r.db.WithContext(ctx).Create(rating).Error; err != nil {
		return nil, err
	}
	return rating, nil
}

// AverageForProduct returns the average rating and submission count for one
// product. A product with no ratings yields avg 0 and count 0.
func (r *Repository) AverageForProduct(ctx context.Context, productID int64) (float64, int64, error) {
	var row struct {
		AvgRating *float64 `gorm:"column:avg_rating"`
		Count     int64    `gorm:"column:cnt"`
	}
	err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("AVG(rating) AS avg_rating, COUNT(*) AS cnt").
		Where("product_id = ?", productID).
		Take(&row).Error
	if err != nil {
		return 0, 0, err
	}
	if row.AvgRating == nil {
		return 0, 0, nil
	}
	return *row.AvgRating, row.Count, nil
}
