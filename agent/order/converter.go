package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	contractx "github.com/tanpawarit/Chative-Sales-Assistant/agent/contract"
	quotex "github.com/tanpawarit/Chative-Sales-Assistant/agent/quote"
)

// Store is the persistence contract for order conversion. PlaceOrder must
// execute the order insert, every inventory decrement, and the quote
// consumption mark as one atomic unit: if any line cannot be decremented
// without going negative, nothing persists.
type Store interface {
	QuoteByID(ctx context.Context, quoteID string) (*quotex.Quote, error)
	PlaceOrder(ctx context.Context, o *Order) error
}

// PlacementRequest carries the caller-supplied order details. The quote is
// trusted as pre-validated at generation time; only the ship-to address is
// required on top of it.
type PlacementRequest struct {
	QuoteID        string `json:"quote_id"`
	ShipToAddress  string `json:"ship_to_address"`
	BillingAddress string `json:"billing_address,omitempty"`
	PaymentMethod  string `json:"payment_method,omitempty"`
	ShippingMethod string `json:"shipping_method,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// Placement echoes the identifiers and totals of a freshly placed order.
type Placement struct {
	OrderID      string          `json:"order_id"`
	QuoteID      string          `json:"quote_id"`
	CustomerID   int64           `json:"customer_id"`
	ShippingCost decimal.Decimal `json:"shipping_cost"`
	Total        decimal.Decimal `json:"total"`
	Currency     string          `json:"currency"`
	Status       Status          `json:"status"`
}

type Converter struct {
	store Store
	now   func() time.Time
}

func NewConverter(store Store) *Converter {
	return &Converter{store: store, now: time.Now}
}

// Place converts a previously generated quote into an order. The quote's
// line items and totals are copied verbatim; inventory is decremented per
// line inside the same transaction as the order insert. Any decrement that
// would drive a warehouse quantity below zero aborts the whole placement.
func (c *Converter) Place(ctx context.Context, req PlacementRequest) (*Placement, error) {
	if req.QuoteID == "" {
		return nil, fmt.Errorf("quote id is required")
	}
	if req.ShipToAddress == "" {
		return nil, fmt.Errorf("ship-to address is required")
	}

	q, err := c.store.QuoteByID(ctx, req.QuoteID)
	if err != nil {
		return nil, err
	}

	o := &Order{
		OrderID:        NewOrderID(),
		QuoteID:        q.QuoteID,
		CustomerID:     q.CustomerID,
		Items:          q.Items,
		Subtotal:       q.Subtotal,
		Tax:            q.Tax,
		ShippingCost:   q.ShippingCost,
		Total:          q.Total,
		Currency:       q.Currency,
		ShipToAddress:  req.ShipToAddress,
		BillingAddress: req.BillingAddress,
		PaymentMethod:  req.PaymentMethod,
		PaymentStatus:  PaymentPending,
		OrderStatus:    StatusPending,
		ShippingMethod: req.ShippingMethod,
		Notes:          req.Notes,
		CreatedAt:      c.now().UTC(),
	}

	if err := c.store.PlaceOrder(ctx, o); err != nil {
		return nil, fmt.Errorf("%w: %w", contractx.ErrOrderPlacementFailed, err)
	}

	return &Placement{
		OrderID:      o.OrderID,
		QuoteID:      o.QuoteID,
		CustomerID:   o.CustomerID,
		ShippingCost: o.ShippingCost,
		Total:        o.Total,
		Currency:     o.Currency,
		Status:       o.OrderStatus,
	}, nil
}

// NewOrderID mints an order identifier: "O-" plus 8 hex characters of a
// random UUID.
func NewOrderID() string {
	return "O-" + uuid.New().String()[:8]
}
