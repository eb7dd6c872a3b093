package insights

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	pkgerrors "github.com/stan-9/fashion-sales-backend/pkg/errors"
)

// Querier is the projection surface the assembler consumes.
type Querier interface {
	ProductSales(ctx context.Context, windowStart time.Time) ([]SalesRow, error)
	ProductRatings(ctx context.Context) ([]RatingRow, error)
	OrderSummary(ctx context.Context) (*SummaryRow, error)
	CategoryRevenue(ctx context.Context) ([]CategoryRow, error)
}

// Service assembles the insight payload.
type Service interface {
	BuildPayload(ctx context.Context) (*Payload, error)
}

type service struct {
	queries Querier
	now     func() time.Time
}

// NewService constructs the insight assembler.
func NewService(queries Querier) (Service, error) {
	if queries == nil {
		return nil, fmt.Errorf("insight querier required")
	}
	return &service{queries: queries, now: time.Now}, nil
}

// BuildPayload fans the four projections out concurrently, fails fast on
// the first error, and left-joins ratings onto sales before attaching the
// forecast, best sellers, and summary.
func (s *service) BuildPayload(ctx context.Context) (*Payload, error) {
	windowStart := s.now().UTC().AddDate(0, -3, 0)

	var (
		sales      []SalesRow
		ratings    []RatingRow
		summary    *SummaryRow
		categories []CategoryRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sales, err = s.queries.ProductSales(gctx, windowStart)
		return err
	})
	g.Go(func() error {
		var err error
		ratings, err = s.queries.ProductRatings(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = s.queries.OrderSummary(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.queries.CategoryRevenue(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeAggregation, err, "insight projection failed")
	}

	ratingByProduct := make(map[int64]RatingRow, len(ratings))
	for _, row := range ratings {
		ratingByProduct[row.ProductID] = row
	}

	products := make([]ProductInsight, 0, len(sales))
	for _, row := range sales {
		// products absent from ratingByProduct keep avg 0, which feeds
		// the 0.7 factor in the forecast
		rating := ratingByProduct[row.ProductID]
		products = append(products, ProductInsight{
			ProductID:            row.ProductID,
			ProductName:          row.ProductName,
			AvgRating:            Round2(rating.AvgRating),
			RatingCount:          rating.RatingCount,
			QtyLast3M:            row.QtyLast3M,
			QtyAllTime:           row.QtyAllTime,
			RevenueLast3M:        row.RevenueLast3M,
			RevenueAllTime:       row.RevenueAllTime,
			ForecastQtyNextMonth: Round2(ForecastNextMonth(row.QtyLast3M, rating.AvgRating)),
		})
	}

	out := &Payload{
		Products:    products,
		BestSellers: BestSellers(products),
	}
	if summary != nil {
		out.Summary.TotalRevenue = summary.TotalRevenue
		out.Summary.TotalOrders = summary.TotalOrders
		out.Summary.AvgOrderValue = summary.AvgOrderValue
	}
	if len(categories) > 0 {
		top := categories[0]
		name := top.CategoryName
		out.Summary.TopCategory = &name
		out.Summary.TopCategoryRevenue = top.TotalRevenue
	}
	return out, nil
}
