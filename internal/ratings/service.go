package rating

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/stan-9/fashion-sales-backend/pkg/db/models"
	"github.com/stan-9/fashion-sales-backend/pkg/enums"
	pkgerrors "github.com/stan-9/fashion-sales-backend/pkg/errors"
)

// SubmitRatingInput carries one rating submission.
type SubmitRatingInput struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Rating    int   `json:"rating" validate:"required,min=1,max=5"`
}

// RatingDTO is the stored rating returned after submission.
type RatingDTO struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// AverageDTO summarizes a product's ratings. Products without ratings report
// avg_rating 0 and count 0 on this endpoint; the insight projections instead
// omit such products so the forecast penalty can tell the two cases apart.
type AverageDTO struct {
	ProductID int64   `json:"product_id"`
	AvgRating float64 `json:"avg_rating"`
	Count     int64   `json:"count"`
}

// Service exposes rating submission and lookup.
type Service interface {
	SubmitRating(ctx context.Context, input SubmitRatingInput) (*RatingDTO, error)
	ProductAverage(ctx context.Context, productID int64) (*AverageDTO, error)
}

type service struct {
	repo *Repository
	db   *gorm.DB
}

// NewService constructs a rating service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("rating repository required")
	}
	return &service{repo: repo, db: repo.db}, nil
}

func (s *service) SubmitRating(ctx context.Context, input SubmitRatingInput) (*RatingDTO, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}

	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND status = ?", input.ProductID, enums.ProductStatusActive).
		Count(&count).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check product")
	}
	if count == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	stored := &models.Rating{ProductID: input.ProductID, Rating: input.Rating}
	if _, err := s.repo.Create(ctx, stored); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store rating")
	}

	return &RatingDTO{
		ID:        stored.ID,
		ProductID: stored.ProductID,
		Rating:    stored.Rating,
		CreatedAt: stored.CreatedAt,
	}, nil
}

func (s *service) ProductAverage(ctx context.Context, productID int64) (*AverageDTO, error) {
	avg, count, err := s.repo.AverageForProduct(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "average rating")
	}
	return &AverageDTO{
		ProductID: productID,
		AvgRating: avg,
		Count:     count,
	}, nil
}
