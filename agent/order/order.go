package order

import (
	"time"

	"github.com/shopspring/decimal"

	quotex "github.com/tanpawarit/Chative-Sales-Assistant/agent/quote"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusFulfilled Status = "fulfilled"
	StatusCancelled Status = "cancelled"
)

// Order is a committed purchase derived from a quote. Line items and
// financial totals are copied verbatim from the quote; the order never
// re-prices anything.
type Order struct {
	OrderID        string            `json:"order_id"`
	QuoteID        string            `json:"quote_id"`
	CustomerID     int64             `json:"customer_id"`
	Items          []quotex.LineItem `json:"items"`
	Subtotal       decimal.Decimal   `json:"subtotal"`
	Tax            decimal.Decimal   `json:"tax"`
	ShippingCost   decimal.Decimal   `json:"shipping_cost"`
	Total          decimal.Decimal   `json:"total"`
	Currency       string            `json:"currency"`
	ShipToAddress  string            `json:"ship_to_address"`
	BillingAddress string            `json:"billing_address,omitempty"`
	PaymentMethod  string            `json:"payment_method,omitempty"`
	PaymentStatus  PaymentStatus     `json:"payment_status"`
	OrderStatus    Status            `json:"order_status"`
	ShippingMethod string            `json:"shipping_method,omitempty"`
	Notes          string            `json:"notes,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}
