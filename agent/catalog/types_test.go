package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDiscountRate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		tier     DiscountTier
		verified bool
		want     string
	}{
		{"military", TierMilitary, false, "0.15"},
		{"corporate", TierCorporate, false, "0.1"},
		{"research", TierResearch, false, "0.05"},
		{"guest", TierGuest, false, "0"},
		{"unknown tier treated as guest", DiscountTier("wholesale"), false, "0"},
		{"verified adds flat bonus", TierCorporate, true, "0.12"},
		{"verified guest still gets bonus", TierGuest, true, "0.02"},
		{"tier is case insensitive", DiscountTier("Military"), false, "0.15"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := DiscountRate(tc.tier, tc.verified)
			if !got.Equal(decimal.RequireFromString(tc.want)) {
				t.Fatalf("DiscountRate(%s, %v) = %s, want %s", tc.tier, tc.verified, got, tc.want)
			}
		})
	}
}

func TestStockStatusFor(t *testing.T) {
	t.Parallel()

	if got := StockStatusFor(0); got != StockStatusOutOfStock {
		t.Fatalf("zero stock: %s", got)
	}
	if got := StockStatusFor(-3); got != StockStatusOutOfStock {
		t.Fatalf("negative stock: %s", got)
	}
	if got := StockStatusFor(1); got != StockStatusInStock {
		t.Fatalf("positive stock: %s", got)
	}
}

func TestWeightKGFallback(t *testing.T) {
	t.Parallel()

	if got := (TechSpecs{"weight_kg": 2.5}).WeightKG(); got != 2.5 {
		t.Fatalf("unexpected weight: %v", got)
	}
	if got := (TechSpecs{}).WeightKG(); got != 1.0 {
		t.Fatalf("missing weight must fall back to 1.0, got %v", got)
	}
	if got := (TechSpecs{"weight_kg": "heavy"}).WeightKG(); got != 1.0 {
		t.Fatalf("malformed weight must fall back to 1.0, got %v", got)
	}
	if got := (TechSpecs(nil)).WeightKG(); got != 1.0 {
		t.Fatalf("nil specs must fall back to 1.0, got %v", got)
	}
}

func TestTotalAvailable(t *testing.T) {
	t.Parallel()

	records := []InventoryRecord{
		{WarehouseLocation: "Austin", QuantityLeft: 3},
		{WarehouseLocation: "Reno", QuantityLeft: 0},
		{WarehouseLocation: "Hamburg", QuantityLeft: 4},
	}
	if got := TotalAvailable(records); got != 7 {
		t.Fatalf("unexpected total: %d", got)
	}
	if got := TotalAvailable(nil); got != 0 {
		t.Fatalf("empty inventory must total 0, got %d", got)
	}
}
