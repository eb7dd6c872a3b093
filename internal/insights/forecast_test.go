package insights

import (
	"math"
	"testing"
)

func TestForecastNextMonthExample(t *testing.T) {
	// 9 units over 3 months at a 4-star average: (9/3) * 1.1 = 3.3
	got := Round2(ForecastNextMonth(9, 4))
	if got != 3.3 {
		t.Fatalf("forecast = %v, want 3.3", got)
	}
}

func TestForecastMonotonicInRating(t *testing.T) {
	prev := -1.0
	for _, rating := range []float64{1, 2, 3, 3.5, 4, 4.5, 5} {
		got := ForecastNextMonth(30, rating)
		if got <= prev {
			t.Fatalf("forecast not increasing at rating %v: %v <= %v", rating, got, prev)
		}
		prev = got
	}
}

func TestForecastUnratedPenalty(t *testing.T) {
	if factor := RatingFactor(0); factor != 0.7 {
		t.Fatalf("unrated factor = %v, want 0.7", factor)
	}

	unrated := ForecastNextMonth(30, 0)
	worstRated := ForecastNextMonth(30, 1)
	if unrated >= worstRated {
		t.Fatalf("unrated forecast %v should fall below 1-star forecast %v", unrated, worstRated)
	}
}

func TestForecastNeverNegative(t *testing.T) {
	// a sufficiently bad rating would drive the factor negative
	if got := ForecastNextMonth(30, -50); got != 0 {
		t.Fatalf("forecast = %v, want clamp at 0", got)
	}
	if got := ForecastNextMonth(0, 5); got != 0 {
		t.Fatalf("zero sales forecast = %v, want 0", got)
	}
}

func TestRound2(t *testing.T) {
	cases := map[float64]float64{
		4.7984:  4.8,
		3.30001: 3.3,
		0:       0,
		2.555:   2.56,
	}
	for in, want := range cases {
		if got := Round2(in); math.Abs(got-want) > 1e-9 {
			t.Fatalf("Round2(%v) = %v, want %v", in, got, want)
		}
	}
}

func insightRow(id int64, qty int64) ProductInsight {
	return ProductInsight{ProductID: id, QtyLast3M: qty}
}

func TestBestSellersTopFiveStable(t *testing.T) {
	products := []ProductInsight{
		insightRow(1, 10),
		insightRow(2, 50),
		insightRow(3, 10),
		insightRow(4, 0),
		insightRow(5, 30),
		insightRow(6, 20),
		insightRow(7, 5),
	}

	best := BestSellers(products)
	if len(best) != 5 {
		t.Fatalf("expected 5 best sellers, got %d", len(best))
	}

	wantOrder := []int64{2, 5, 6, 1, 3}
	for i, want := range wantOrder {
		if best[i].ProductID != want {
			t.Fatalf("position %d: got product %d, want %d (stable desc order)", i, best[i].ProductID, want)
		}
	}

	for i := 1; i < len(best); i++ {
		if best[i].QtyLast3M > best[i-1].QtyLast3M {
			t.Fatalf("best sellers not sorted desc at %d", i)
		}
	}

	// input order untouched
	if products[0].ProductID != 1 || products[1].ProductID != 2 {
		t.Fatal("BestSellers must not reorder its input")
	}
}

func TestBestSellersShortList(t *testing.T) {
	best := BestSellers([]ProductInsight{insightRow(1, 3), insightRow(2, 9)})
	if len(best) != 2 {
		t.Fatalf("expected 2, got %d", len(best))
	}
	if best[0].ProductID != 2 {
		t.Fatalf("expected product 2 first, got %d", best[0].ProductID)
	}
}
