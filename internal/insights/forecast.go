package insights

import (
	"math"
	"sort"
)

const (
	windowMonths    = 3.0
	ratingBaseline  = 3.0
	ratingStep      = 0.1
	bestSellerLimit = 5
)

// RatingFactor scales the monthly run rate by how far the average rating
// sits from the 3-star baseline. A product with no ratings passes avg 0
// here and lands on 0.7, a deliberate penalty below every rated product.
func RatingFactor(avgRating float64) float64 {
	return 1 + (avgRating-ratingBaseline)*ratingStep
}

// ForecastNextMonth projects next month's unit sales from the trailing
// three-month quantity and the average rating, clamped at zero.
func ForecastNextMonth(qtyLast3M int64, avgRating float64) float64 {
	avgMonthly := float64(qtyLast3M) / windowMonths
	return math.Max(0, avgMonthly*RatingFactor(avgRating))
}

// Round2 rounds for display. Forecast math upstream keeps full precision.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// BestSellers returns up to five products with the highest trailing
// three-month quantity. The sort is stable so ties keep their list order.
func BestSellers(products []ProductInsight) []ProductInsight {
	ranked := make([]ProductInsight, len(products))
	copy(ranked, products)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].QtyLast3M > ranked[j].QtyLast3M
	})
	if len(ranked) > bestSellerLimit {
		ranked = ranked[:bestSellerLimit]
	}
	return ranked
}
