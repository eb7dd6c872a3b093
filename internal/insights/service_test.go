package insights

import (
	"context"
	"errors"
	"testing"
	"time"

	pkgerrors "github.com/stan-9/fashion-sales-backend/pkg/errors"
)

type fakeQuerier struct {
	sales      []SalesRow
	ratings    []RatingRow
	summary    SummaryRow
	categories []CategoryRow

	salesErr   error
	ratingsErr error
}

func (f *fakeQuerier) ProductSales(ctx context.Context, windowStart time.Time) ([]SalesRow, error) {
	return f.sales, f.salesErr
}

func (f *fakeQuerier) ProductRatings(ctx context.Context) ([]RatingRow, error) {
	return f.ratings, f.ratingsErr
}

func (f *fakeQuerier) OrderSummary(ctx context.Context) (*SummaryRow, error) {
	s := f.summary
	return &s, nil
}

func (f *fakeQuerier) CategoryRevenue(ctx context.Context) ([]CategoryRow, error) {
	return f.categories, nil
}

func TestBuildPayloadAssemblesLeftJoin(t *testing.T) {
	queries := &fakeQuerier{
		sales: []SalesRow{
			{ProductID: 1, ProductName: "Shirt", QtyLast3M: 9, QtyAllTime: 40, RevenueLast3M: 269.91, RevenueAllTime: 1199.60},
			{ProductID: 2, ProductName: "Jeans", QtyLast3M: 30, QtyAllTime: 31, RevenueLast3M: 2399.70, RevenueAllTime: 2479.69},
			{ProductID: 3, ProductName: "Scarf"},
		},
		ratings: []RatingRow{
			{ProductID: 1, AvgRating: 4, RatingCount: 6},
		},
		summary: SummaryRow{TotalOrders: 12, TotalRevenue: 3679.30, AvgOrderValue: 306.61},
		categories: []CategoryRow{
			{CategoryName: "Bottoms", TotalRevenue: 2479.69},
			{CategoryName: "Tops", TotalRevenue: 1199.60},
		},
	}
	svc, err := NewService(queries)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	payload, err := svc.BuildPayload(context.Background())
	if err != nil {
		t.Fatalf("build payload: %v", err)
	}

	if len(payload.Products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(payload.Products))
	}

	rated := payload.Products[0]
	if rated.AvgRating != 4 || rated.RatingCount != 6 {
		t.Fatalf("rating not joined: %+v", rated)
	}
	if rated.ForecastQtyNextMonth != 3.3 {
		t.Fatalf("forecast = %v, want 3.3", rated.ForecastQtyNextMonth)
	}

	unrated := payload.Products[1]
	if unrated.AvgRating != 0 || unrated.RatingCount != 0 {
		t.Fatalf("unrated product should default to zero: %+v", unrated)
	}
	// 30/3 * 0.7 = 7
	if unrated.ForecastQtyNextMonth != 7 {
		t.Fatalf("unrated forecast = %v, want 7 (0.7 penalty)", unrated.ForecastQtyNextMonth)
	}

	zeroSales := payload.Products[2]
	if zeroSales.QtyLast3M != 0 || zeroSales.ForecastQtyNextMonth != 0 {
		t.Fatalf("zero-sales product mishandled: %+v", zeroSales)
	}

	if len(payload.BestSellers) != 3 || payload.BestSellers[0].ProductID != 2 {
		t.Fatalf("unexpected best sellers %+v", payload.BestSellers)
	}

	if payload.Summary.TotalOrders != 12 || payload.Summary.TotalRevenue != 3679.30 {
		t.Fatalf("summary not attached: %+v", payload.Summary)
	}
	if payload.Summary.TopCategory == nil || *payload.Summary.TopCategory != "Bottoms" {
		t.Fatalf("top category = %v, want Bottoms", payload.Summary.TopCategory)
	}
	if payload.Summary.TopCategoryRevenue != 2479.69 {
		t.Fatalf("top category revenue = %v", payload.Summary.TopCategoryRevenue)
	}
}

func TestBuildPayloadEmptyCatalog(t *testing.T) {
	svc, err := NewService(&fakeQuerier{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	payload, err := svc.BuildPayload(context.Background())
	if err != nil {
		t.Fatalf("build payload: %v", err)
	}
	if len(payload.Products) != 0 || len(payload.BestSellers) != 0 {
		t.Fatalf("expected empty lists, got %+v", payload)
	}
	if payload.Summary.TopCategory != nil {
		t.Fatalf("expected nil top category, got %v", *payload.Summary.TopCategory)
	}
}

func TestBuildPayloadFailsFast(t *testing.T) {
	boom := errors.New("disk went away")
	svc, err := NewService(&fakeQuerier{ratingsErr: boom})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.BuildPayload(context.Background())
	if err == nil {
		t.Fatal("expected aggregation error")
	}
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeAggregation {
		t.Fatalf("expected aggregation code, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("cause not preserved: %v", err)
	}
}
