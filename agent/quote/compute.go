package quote

import (
	"github.com/shopspring/decimal"

	catalogx "github.com/tanpawarit/Chative-Sales-Assistant/agent/catalog"
)

var (
	taxRate      = decimal.NewFromFloat(0.18)
	baseShipping = decimal.NewFromFloat(25.0)
	perUnitFee   = decimal.NewFromFloat(2.0)
	oneHundred   = decimal.NewFromInt(100)
)

// ShippingCost is the flat quote-time shipping model: a base fee plus a
// per-unit fee, independent of weight and destination. The shipping
// estimator carries the realistic model; this one exists so quote totals
// stay reproducible without a rate-table lookup.
func ShippingCost(quantity int) decimal.Decimal {
	return baseShipping.Add(perUnitFee.Mul(decimal.NewFromInt(int64(quantity)))).Round(2)
}

// Compute prices a single-product quote. Every currency amount is rounded to
// 2 decimal places at the point of computation, and the total is the exact
// sum of the already-rounded subtotal, shipping cost, and tax.
func Compute(product *catalogx.Product, customer *catalogx.Customer, quantity int) Quote {
	unitPrice := product.BasePrice
	qty := decimal.NewFromInt(int64(quantity))

	baseTotal := unitPrice.Mul(qty)
	rate := catalogx.DiscountRate(customer.Tier, customer.Verified)
	discountTotal := baseTotal.Mul(rate).Round(2)
	subtotal := baseTotal.Sub(baseTotal.Mul(rate)).Round(2)

	shippingCost := ShippingCost(quantity)
	tax := subtotal.Add(shippingCost).Mul(taxRate).Round(2)
	total := subtotal.Add(shippingCost).Add(tax)

	return Quote{
		CustomerID:   customer.ID,
		CustomerName: customer.FullName,
		Items: []LineItem{{
			ProductID:       product.ID,
			ProductName:     product.Name,
			UnitPrice:       unitPrice,
			Quantity:        quantity,
			DiscountPercent: rate.Mul(oneHundred).Round(2),
			DiscountTotal:   discountTotal,
			Subtotal:        subtotal,
		}},
		Subtotal:     subtotal,
		ShippingCost: shippingCost,
		Tax:          tax,
		Total:        total,
		Currency:     "USD",
		Status:       StatusGenerated,
	}
}
