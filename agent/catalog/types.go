package catalog

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StockStatus is derived from inventory, never authoritative: it is
// recomputed from the inventory rows whenever they change.
type StockStatus string

const (
	StockStatusInStock      StockStatus = "In Stock"
	StockStatusOutOfStock   StockStatus = "Out of Stock"
	StockStatusPreorder     StockStatus = "Preorder"
	StockStatusDiscontinued StockStatus = "Discontinued"
)

// StockStatusFor derives the status from total availability across warehouses.
func StockStatusFor(totalQuantity int) StockStatus {
	if totalQuantity <= 0 {
		return StockStatusOutOfStock
	}
	return StockStatusInStock
}

// TechSpecs maps attribute name to a numeric or string value.
type TechSpecs map[string]any

// WeightKG returns the product weight, falling back to 1.0 when the spec
// is absent or malformed.
func (s TechSpecs) WeightKG() float64 {
	raw, ok := s["weight_kg"]
	if !ok {
		return 1.0
	}
	switch v := raw.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 1.0
		}
		return f
	default:
		return 1.0
	}
}

type Product struct {
	ID               int64           `json:"id"`
	Name             string          `json:"product_name"`
	Category         string          `json:"category"`
	ShortDescription string          `json:"short_description,omitempty"`
	LongDescription  string          `json:"long_description,omitempty"`
	TechSpecs        TechSpecs       `json:"tech_specs,omitempty"`
	BasePrice        decimal.Decimal `json:"base_price"`
	StockStatus      StockStatus     `json:"stock_status"`
}

type InventoryRecord struct {
	ID                int64     `json:"id"`
	ProductID         int64     `json:"product_id"`
	WarehouseLocation string    `json:"warehouse_location"`
	QuantityLeft      int       `json:"quantity_left"`
	LastCounted       time.Time `json:"last_counted"`
}

// TotalAvailable sums quantity on hand across all warehouses.
func TotalAvailable(records []InventoryRecord) int {
	total := 0
	for _, r := range records {
		total += r.QuantityLeft
	}
	return total
}

// DiscountTier classifies a customer for discount resolution.
type DiscountTier string

const (
	TierMilitary  DiscountTier = "military"
	TierCorporate DiscountTier = "corporate"
	TierResearch  DiscountTier = "research"
	TierGuest     DiscountTier = "guest"
)

var discountTable = map[DiscountTier]decimal.Decimal{
	TierMilitary:  decimal.NewFromFloat(0.15),
	TierCorporate: decimal.NewFromFloat(0.10),
	TierResearch:  decimal.NewFromFloat(0.05),
	TierGuest:     decimal.NewFromFloat(0.0),
}

var verifiedBonus = decimal.NewFromFloat(0.02)

// DiscountRate resolves the flat discount rate for a tier, plus the verified
// bonus. The bonus is additive, not multiplicative.
func DiscountRate(tier DiscountTier, verified bool) decimal.Decimal {
	rate, ok := discountTable[DiscountTier(strings.ToLower(string(tier)))]
	if !ok {
		rate = decimal.Zero
	}
	if verified {
		rate = rate.Add(verifiedBonus)
	}
	return rate
}

type Customer struct {
	ID       int64        `json:"id"`
	FullName string       `json:"full_name"`
	Email    string       `json:"email"`
	Company  string       `json:"company,omitempty"`
	Tier     DiscountTier `json:"user_type"`
	Verified bool         `json:"verified"`
	Country  string       `json:"country"`
}

// ShippingRule is one row of the per-country shipping-rate table.
type ShippingRule struct {
	Country    string          `json:"country"`
	BaseRate   decimal.Decimal `json:"base_rate"`
	PerKGRate  decimal.Decimal `json:"per_kg_rate"`
	HazmatFee  decimal.Decimal `json:"hazmat_fee"`
	AvgETADays int             `json:"avg_eta_days"`
}
