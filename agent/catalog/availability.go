package catalog

import (
	"context"
	"fmt"

	contractx "github.com/tanpawarit/Chative-Sales-Assistant/agent/contract"
)

// InventorySource is the slice of the catalog store the availability
// checker needs.
type InventorySource interface {
	InventoryByProduct(ctx context.Context, productID int64) ([]InventoryRecord, error)
	SetStockStatus(ctx context.Context, productID int64, status StockStatus) error
}

// AvailabilityReport is the real-time stock answer for one product.
type AvailabilityReport struct {
	ProductID     int64             `json:"product_id"`
	TotalQuantity int               `json:"total_quantity"`
	StockStatus   StockStatus       `json:"stock_status"`
	Records       []InventoryRecord `json:"records"`

	// RequestedQuantity and Fulfillable are set only when the caller asked
	// about a specific quantity.
	RequestedQuantity int  `json:"requested_quantity,omitempty"`
	Fulfillable       bool `json:"fulfillable,omitempty"`
}

type AvailabilityChecker struct {
	inv InventorySource
}

func NewAvailabilityChecker(inv InventorySource) *AvailabilityChecker {
	return &AvailabilityChecker{inv: inv}
}

// Check reads live stock for a product and refreshes the product's derived
// stock status. When requestedQuantity > 0 the report also answers whether
// that quantity can be fulfilled from total availability.
func (c *AvailabilityChecker) Check(ctx context.Context, productID int64, requestedQuantity int) (*AvailabilityReport, error) {
	records, err := c.inv.InventoryByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("read inventory for product %d: %w", productID, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no inventory rows for product %d", contractx.ErrProductNotFound, productID)
	}

	total := TotalAvailable(records)
	status := StockStatusFor(total)
	if err := c.inv.SetStockStatus(ctx, productID, status); err != nil {
		return nil, fmt.Errorf("refresh stock status for product %d: %w", productID, err)
	}

	report := &AvailabilityReport{
		ProductID:     productID,
		TotalQuantity: total,
		StockStatus:   status,
		Records:       records,
	}
	if requestedQuantity > 0 {
		report.RequestedQuantity = requestedQuantity
		report.Fulfillable = total >= requestedQuantity
	}
	return report, nil
}
