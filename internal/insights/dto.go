package insights

// SalesRow is the per-product sales projection. Active products with no
// sales still appear with zero quantities.
type SalesRow struct {
	ProductID      int64   `gorm:"column:product_id"`
	ProductName    string  `gorm:"column:product_name"`
	QtyLast3M      int64   `gorm:"column:qty_last_3m"`
	RevenueLast3M  float64 `gorm:"column:revenue_last_3m"`
	QtyAllTime     int64   `gorm:"column:qty_all_time"`
	RevenueAllTime float64 `gorm:"column:revenue_all_time"`
}

// RatingRow is the per-product rating projection. Products without ratings
// have no row at all; absence and a zero average are different signals and
// the forecast penalty depends on keeping them apart.
type RatingRow struct {
	ProductID   int64   `gorm:"column:product_id"`
	AvgRating   float64 `gorm:"column:avg_rating"`
	RatingCount int64   `gorm:"column:rating_count"`
}

// SummaryRow is the global order summary excluding cancelled orders.
type SummaryRow struct {
	TotalOrders   int64   `gorm:"column:total_orders"`
	TotalRevenue  float64 `gorm:"column:total_revenue"`
	AvgOrderValue float64 `gorm:"column:avg_order_value"`
}

// CategoryRow is per-category revenue, ordered highest first.
type CategoryRow struct {
	CategoryName string  `gorm:"column:category_name"`
	TotalRevenue float64 `gorm:"column:total_revenue"`
}

// ProductInsight is one assembled row of the insight payload.
type ProductInsight struct {
	ProductID            int64   `json:"product_id"`
	ProductName          string  `json:"product_name"`
	AvgRating            float64 `json:"avg_rating"`
	RatingCount          int64   `json:"rating_count"`
	QtyLast3M            int64   `json:"qty_last_3m"`
	QtyAllTime           int64   `json:"qty_all_time"`
	RevenueLast3M        float64 `json:"revenue_last_3m"`
	RevenueAllTime       float64 `json:"revenue_all_time"`
	ForecastQtyNextMonth float64 `json:"forecast_qty_next_month"`
}

// Summary is the headline block of the insight payload.
type Summary struct {
	TotalRevenue       float64 `json:"total_revenue"`
	TotalOrders        int64   `json:"total_orders"`
	AvgOrderValue      float64 `json:"avg_order_value"`
	TopCategory        *string `json:"top_category"`
	TopCategoryRevenue float64 `json:"top_category_revenue"`
}

// Payload is the full insight response.
type Payload struct {
	Summary     Summary          `json:"summary"`
	Products    []ProductInsight `json:"products"`
	BestSellers []ProductInsight `json:"best_sellers"`
}
