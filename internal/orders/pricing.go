package order

import (
	"github.com/shopspring/decimal"

	pkgerrors "github.com/stan-9/fashion-sales-backend/pkg/errors"
)

// TaxRate is the flat sales tax applied to the discounted base.
var TaxRate = decimal.NewFromFloat(0.08)

// PricingLine is one cart line with its resolved unit price.
type PricingLine struct {
	Quantity  int
	UnitPrice decimal.Decimal
}

// Pricing is the computed money breakdown for an order. Tax and Total carry
// full precision; rounding to cents happens only at the persistence and
// presentation edges.
type Pricing struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// CalculatePricing derives subtotal, tax, and total from the cart lines.
// The discount is subtracted before tax and the taxable base never goes
// negative, so a discount larger than the subtotal taxes as zero while the
// total still reflects the full discount.
func CalculatePricing(lines []PricingLine, discount decimal.Decimal) (*Pricing, error) {
	if len(lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one item is required")
	}
	if discount.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "discount must be non-negative")
	}

	subtotal := decimal.Zero
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
		}
		if line.UnitPrice.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unit price must be non-negative")
		}
		subtotal = subtotal.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	taxable := subtotal.Sub(discount)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}
	tax := taxable.Mul(TaxRate)
	total := subtotal.Sub(discount).Add(tax)

	return &Pricing{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    total,
	}, nil
}
