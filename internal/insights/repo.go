package insights

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// The four projections are plain read-only SQL shared by SQLite and
// Postgres. No transaction spans them; the payload is an approximate
// snapshot by design of the read path.
const salesQuery = `
SELECT
  p.id AS product_id,
  p.name AS product_name,
  COALESCE(SUM(CASE WHEN o.order_date >= ? THEN oi.quantity ELSE 0 END), 0) AS qty_last_3m,
  COALESCE(SUM(CASE WHEN o.order_date >= ? THEN oi.quantity * oi.unit_price ELSE 0 END), 0) AS revenue_last_3m,
  COALESCE(SUM(oi.quantity), 0) AS qty_all_time,
  COALESCE(SUM(oi.quantity * oi.unit_price), 0) AS revenue_all_time
FROM products p
LEFT JOIN order_items oi ON oi.product_id = p.id
LEFT JOIN orders o ON o.id = oi.order_id
WHERE p.status = 'active'
GROUP BY p.id, p.name
ORDER BY p.id
`

const ratingsQuery = `
SELECT
  product_id,
  AVG(rating) AS avg_rating,
  COUNT(*) AS rating_count
FROM ratings
GROUP BY product_id
`

const summaryQuery = `
SELECT
  COUNT(*) AS total_orders,
  COALESCE(SUM(total), 0) AS total_revenue,
  COALESCE(AVG(total), 0) AS avg_order_value
FROM orders
WHERE status != 'cancelled'
`

const categoryQuery = `
SELECT
  c.name AS category_name,
  COALESCE(SUM(oi.quantity * oi.unit_price), 0) AS total_revenue
FROM categories c
LEFT JOIN products p ON p.category_id = c.id
LEFT JOIN order_items oi ON oi.product_id = p.id
LEFT JOIN orders o ON o.id = oi.order_id
WHERE p.status = 'active'
GROUP BY c.id, c.name
ORDER BY total_revenue DESC
`

// Repository issues the read-only insight projections.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ProductSales returns per-product quantities and revenue, with the
// trailing window anchored at now minus three months.
func (r *Repository) ProductSales(ctx context.Context, windowStart time.Time) ([]SalesRow, error) {
	var rows []SalesRow
	err := r.db.WithContext(ctx).
		Raw(salesQuery, windowStart, windowStart).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ProductRatings returns the rating aggregate for every rated product.
// Unrated products are absent from the result on purpose.
func (r *Repository) ProductRatings(ctx context.Context) ([]RatingRow, error) {
	var rows []RatingRow
	if err := r.db.WithContext(ctx).Raw(ratingsQuery).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// OrderSummary returns order count, revenue, and average value across all
// non-cancelled orders.
func (r *Repository) OrderSummary(ctx context.Context) (*SummaryRow, error) {
	var row SummaryRow
	if err := r.db.WithContext(ctx).Raw(summaryQuery).Scan(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// CategoryRevenue returns revenue per category, highest first.
func (r *Repository) CategoryRevenue(ctx context.Context) ([]CategoryRow, error) {
	var rows []CategoryRow
	if err := r.db.WithContext(ctx).Raw(categoryQuery).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
