package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	catalogx "github.com/tanpawarit/Chative-Sales-Assistant/agent/catalog"
	orderx "github.com/tanpawarit/Chative-Sales-Assistant/agent/order"
	quotex "github.com/tanpawarit/Chative-Sales-Assistant/agent/quote"
)

type productRow struct {
	bun.BaseModel `bun:"table:products,alias:p"`

	ID               int64           `bun:"id,pk,autoincrement"`
	ProductName      string          `bun:"product_name"`
	Category         string          `bun:"category"`
	ShortDescription string          `bun:"short_description"`
	LongDescription  string          `bun:"long_description"`
	TechSpecs        json.RawMessage `bun:"tech_specs"`
	BasePrice        decimal.Decimal `bun:"base_price"`
	StockStatus      string          `bun:"stock_status"`
}

func (r *productRow) toDomain() (*catalogx.Product, error) {
	var specs catalogx.TechSpecs
	if len(r.TechSpecs) > 0 {
		if err := json.Unmarshal(r.TechSpecs, &specs); err != nil {
			return nil, fmt.Errorf("decode tech specs for product %d: %w", r.ID, err)
		}
	}
	return &catalogx.Product{
		ID:               r.ID,
		Name:             r.ProductName,
		Category:         r.Category,
		ShortDescription: r.ShortDescription,
		LongDescription:  r.LongDescription,
		TechSpecs:        specs,
		BasePrice:        r.BasePrice,
		StockStatus:      catalogx.StockStatus(r.StockStatus),
	}, nil
}

type inventoryRow struct {
	bun.BaseModel `bun:"table:inventory,alias:i"`

	ID                int64     `bun:"id,pk,autoincrement"`
	ProductID         int64     `bun:"product_id"`
	WarehouseLocation string    `bun:"warehouse_location"`
	QuantityLeft      int       `bun:"quantity_left"`
	LastCounted       time.Time `bun:"last_counted"`
}

func (r *inventoryRow) toDomain() catalogx.InventoryRecord {
	return catalogx.InventoryRecord{
		ID:                r.ID,
		ProductID:         r.ProductID,
		WarehouseLocation: r.WarehouseLocation,
		QuantityLeft:      r.QuantityLeft,
		LastCounted:       r.LastCounted,
	}
}

type userRow struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID       int64  `bun:"id,pk,autoincrement"`
	FullName string `bun:"full_name"`
	Email    string `bun:"email"`
	Company  string `bun:"company"`
	UserType string `bun:"user_type"`
	Verified string `bun:"verified"`
	Country  string `bun:"country"`
}

func (r *userRow) toDomain() *catalogx.Customer {
	return &catalogx.Customer{
		ID:       r.ID,
		FullName: r.FullName,
		Email:    r.Email,
		Company:  r.Company,
		Tier:     catalogx.DiscountTier(r.UserType),
		Verified: r.Verified == "yes",
		Country:  r.Country,
	}
}

type shippingRuleRow struct {
	bun.BaseModel `bun:"table:shipping_rules,alias:sr"`

	Country    string          `bun:"country,pk"`
	BaseRate   decimal.Decimal `bun:"base_rate"`
	PerKGRate  decimal.Decimal `bun:"per_kg_rate"`
	HazmatFee  decimal.Decimal `bun:"hazmat_fee"`
	AvgETADays int             `bun:"avg_eta_days"`
}

func (r *shippingRuleRow) toDomain() *catalogx.ShippingRule {
	return &catalogx.ShippingRule{
		Country:    r.Country,
		BaseRate:   r.BaseRate,
		PerKGRate:  r.PerKGRate,
		HazmatFee:  r.HazmatFee,
		AvgETADays: r.AvgETADays,
	}
}

type quoteRow struct {
	bun.BaseModel `bun:"table:quotes,alias:q"`

	QuoteID      string          `bun:"quote_id,pk"`
	CustomerID   int64           `bun:"customer_id"`
	CustomerName string          `bun:"customer_name"`
	Items        json.RawMessage `bun:"items"`
	Subtotal     decimal.Decimal `bun:"subtotal"`
	ShippingCost decimal.Decimal `bun:"shipping_cost"`
	Tax          decimal.Decimal `bun:"tax"`
	Total        decimal.Decimal `bun:"total"`
	Currency     string          `bun:"currency"`
	Status       string          `bun:"status"`
	CreatedAt    time.Time       `bun:"created_at"`
}

func newQuoteRow(q *quotex.Quote) (*quoteRow, error) {
	items, err := json.Marshal(q.Items)
	if err != nil {
		return nil, fmt.Errorf("encode quote items: %w", err)
	}
	return &quoteRow{
		QuoteID:      q.QuoteID,
		CustomerID:   q.CustomerID,
		CustomerName: q.CustomerName,
		Items:        items,
		Subtotal:     q.Subtotal,
		ShippingCost: q.ShippingCost,
		Tax:          q.Tax,
		Total:        q.Total,
		Currency:     q.Currency,
		Status:       string(q.Status),
		CreatedAt:    q.CreatedAt,
	}, nil
}

func (r *quoteRow) toDomain() (*quotex.Quote, error) {
	var items []quotex.LineItem
	if len(r.Items) > 0 {
		if err := json.Unmarshal(r.Items, &items); err != nil {
			return nil, fmt.Errorf("decode items for quote %s: %w", r.QuoteID, err)
		}
	}
	return &quotex.Quote{
		QuoteID:      r.QuoteID,
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
		Items:        items,
		Subtotal:     r.Subtotal,
		ShippingCost: r.ShippingCost,
		Tax:          r.Tax,
		Total:        r.Total,
		Currency:     r.Currency,
		Status:       quotex.Status(r.Status),
		CreatedAt:    r.CreatedAt,
	}, nil
}

type orderRow struct {
	bun.BaseModel `bun:"table:orders,alias:o"`

	OrderID        string          `bun:"order_id,pk"`
	QuoteID        string          `bun:"quote_id"`
	CustomerID     int64           `bun:"customer_id"`
	Items          json.RawMessage `bun:"items"`
	Subtotal       decimal.Decimal `bun:"subtotal"`
	Tax            decimal.Decimal `bun:"tax"`
	ShippingCost   decimal.Decimal `bun:"shipping_cost"`
	Total          decimal.Decimal `bun:"total"`
	Currency       string          `bun:"currency"`
	ShipToAddress  string          `bun:"ship_to_address"`
	BillingAddress string          `bun:"billing_address"`
	PaymentMethod  string          `bun:"payment_method"`
	PaymentStatus  string          `bun:"payment_status"`
	OrderStatus    string          `bun:"order_status"`
	ShippingMethod string          `bun:"shipping_method"`
	Notes          string          `bun:"notes"`
	CreatedAt      time.Time       `bun:"created_at"`
}

func newOrderRow(o *orderx.Order) (*orderRow, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return nil, fmt.Errorf("encode order items: %w", err)
	}
	return &orderRow{
		OrderID:        o.OrderID,
		QuoteID:        o.QuoteID,
		CustomerID:     o.CustomerID,
		Items:          items,
		Subtotal:       o.Subtotal,
		Tax:            o.Tax,
		ShippingCost:   o.ShippingCost,
		Total:          o.Total,
		Currency:       o.Currency,
		ShipToAddress:  o.ShipToAddress,
		BillingAddress: o.BillingAddress,
		PaymentMethod:  o.PaymentMethod,
		PaymentStatus:  string(o.PaymentStatus),
		OrderStatus:    string(o.OrderStatus),
		ShippingMethod: o.ShippingMethod,
		Notes:          o.Notes,
		CreatedAt:      o.CreatedAt,
	}, nil
}

func (r *orderRow) toDomain() (*orderx.Order, error) {
	var items []quotex.LineItem
	if len(r.Items) > 0 {
		if err := json.Unmarshal(r.Items, &items); err != nil {
			return nil, fmt.Errorf("decode items for order %s: %w", r.OrderID, err)
		}
	}
	return &orderx.Order{
		OrderID:        r.OrderID,
		QuoteID:        r.QuoteID,
		CustomerID:     r.CustomerID,
		Items:          items,
		Subtotal:       r.Subtotal,
		Tax:            r.Tax,
		ShippingCost:   r.ShippingCost,
		Total:          r.Total,
		Currency:       r.Currency,
		ShipToAddress:  r.ShipToAddress,
		BillingAddress: r.BillingAddress,
		PaymentMethod:  r.PaymentMethod,
		PaymentStatus:  orderx.PaymentStatus(r.PaymentStatus),
		OrderStatus:    orderx.Status(r.OrderStatus),
		ShippingMethod: r.ShippingMethod,
		Notes:          r.Notes,
		CreatedAt:      r.CreatedAt,
	}, nil
}

type chatlogRow struct {
	bun.BaseModel `bun:"table:chatlogs,alias:c"`

	MessageID      int64     `bun:"message_id,pk,autoincrement"`
	SessionID      string    `bun:"session_id"`
	UserMessage    string    `bun:"user_message"`
	BotReply       string    `bun:"bot_reply"`
	IntentDetected string    `bun:"intent_detected"`
	Timestamp      time.Time `bun:"timestamp,nullzero,default:now()"`
}

type supportTicketRow struct {
	bun.BaseModel `bun:"table:support_tickets,alias:st"`

	ID         int64  `bun:"id,pk,autoincrement"`
	CustomerID int64  `bun:"customer_id"`
	ProductID  int64  `bun:"product_id"`
	IssueText  string `bun:"issue_text"`
	Status     string `bun:"status"`
}

type leadRow struct {
	bun.BaseModel `bun:"table:leads,alias:l"`

	ID          int64  `bun:"id,pk,autoincrement"`
	CustomerID  int64  `bun:"customer_id"`
	BudgetRange string `bun:"budget_range"`
	ProjectType string `bun:"project_type"`
	Urgency     string `bun:"urgency"`
	Qualified   string `bun:"qualified"`
}
