package quote

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	// StatusGenerated marks a quote that has been priced and saved but not
	// yet turned into an order.
	StatusGenerated Status = "generated"
	// StatusConsumed marks a quote an order has been created from. The quote
	// row itself is immutable; consumption is a logical flag.
	StatusConsumed Status = "consumed"
)

// LineItem snapshots one product line at quote time. Unit price is the price
// at the moment of quoting, not a live catalog reference.
type LineItem struct {
	ProductID       int64           `json:"product_id"`
	ProductName     string          `json:"product_name"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Quantity        int             `json:"quantity"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	DiscountTotal   decimal.Decimal `json:"discount_total"`
	Subtotal        decimal.Decimal `json:"subtotal"`
}

// Quote is a priced, saved proposal for a purchase. Once created it is
// immutable; all amounts are rounded to 2 decimal places so persisted and
// returned values match exactly.
type Quote struct {
	QuoteID      string          `json:"quote_id"`
	CustomerID   int64           `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Items        []LineItem      `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	ShippingCost decimal.Decimal `json:"shipping_cost"`
	Tax          decimal.Decimal `json:"tax"`
	Total        decimal.Decimal `json:"total"`
	Currency     string          `json:"currency"`
	Status       Status          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}
