package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/stan-9/fashion-sales-backend/pkg/db/models"
	"github.com/stan-9/fashion-sales-backend/pkg/enums"
	pkgerrors "github.com/stan-9/fashion-sales-backend/pkg/errors"
)

// Stats is the storefront dashboard payload. Revenue counts completed
// orders only; the order count spans every status.
type Stats struct {
	TotalProducts    int64   `json:"total_products"`
	TotalCustomers   int64   `json:"total_customers"`
	TotalOrders      int64   `json:"total_orders"`
	TotalRevenue     float64 `json:"total_revenue"`
	LowStockProducts int64   `json:"low_stock_products"`
}

// Service computes the dashboard counters.
type Service interface {
	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	db *gorm.DB
}

// NewService constructs a dashboard service instance.
func NewService(db *gorm.DB) (Service, error) {
	if db == nil {
		return nil, fmt.Errorf("db connection required")
	}
	return &service{db: db}, nil
}

// Stats runs the five counters concurrently and joins the results. Like
// the insight projections there is no cross-query snapshot.
func (s *service) Stats(ctx context.Context) (*Stats, error) {
	var out Stats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Model(&models.Product{}).
			Where("status = ?", enums.ProductStatusActive).
			Count(&out.TotalProducts).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Model(&models.Customer{}).
			Count(&out.TotalCustomers).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Model(&models.Order{}).
			Count(&out.TotalOrders).Error
	})
	g.Go(func() error {
		var revenue *float64
		err := s.db.WithContext(gctx).
			Model(&models.Order{}).
			Select("SUM(total)").
			Where("status = ?", enums.OrderStatusCompleted).
			Scan(&revenue).Error
		if err != nil {
			return err
		}
		if revenue != nil {
			out.TotalRevenue = *revenue
		}
		return nil
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Model(&models.Product{}).
			Where("stock_quantity <= min_stock_level AND status = ?", enums.ProductStatusActive).
			Count(&out.LowStockProducts).Error
	})
	if err := g.Wait(); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeAggregation, err, "dashboard stats failed")
	}

	return &out, nil
}
