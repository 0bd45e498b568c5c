// Package shipping estimates freight cost and delivery ETA from product
// weight, destination country, and the shipping-rate table. It is
// independent of the quote engine's flat shipping model.
package shipping

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	catalogx "github.com/tanpawarit/Chative-Sales-Assistant/agent/catalog"
	contractx "github.com/tanpawarit/Chative-Sales-Assistant/agent/contract"
)

// Catalog is the read-only slice of the catalog store the estimator needs.
type Catalog interface {
	CustomerByID(ctx context.Context, id int64) (*catalogx.Customer, error)
	ProductByID(ctx context.Context, id int64) (*catalogx.Product, error)
	InventoryByProduct(ctx context.Context, productID int64) ([]catalogx.InventoryRecord, error)
	ShippingRuleByCountry(ctx context.Context, country string) (*catalogx.ShippingRule, error)
}

type Estimate struct {
	FreightCost           decimal.Decimal `json:"freight_cost"`
	ETADays               int             `json:"eta_days"`
	EstimatedDeliveryDate string          `json:"estimated_delivery_date"`
	WarehouseLocation     string          `json:"warehouse_location"`
}

type Estimator struct {
	catalog Catalog
	now     func() time.Time
}

func NewEstimator(catalog Catalog) *Estimator {
	return &Estimator{catalog: catalog, now: time.Now}
}

// Estimate computes freight cost and ETA for shipping quantity units to the
// customer's country. The source warehouse is the first inventory row with
// positive stock; no cost-optimal warehouse selection is attempted.
func (e *Estimator) Estimate(ctx context.Context, customerID, productID int64, quantity int, hazmat bool) (*Estimate, error) {
	customer, err := e.catalog.CustomerByID(ctx, customerID)
	if err != nil {
		return nil, asUserLookup(err)
	}

	product, err := e.catalog.ProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	records, err := e.catalog.InventoryByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	warehouse := ""
	for _, r := range records {
		if r.QuantityLeft > 0 {
			warehouse = r.WarehouseLocation
			break
		}
	}
	if warehouse == "" {
		return nil, fmt.Errorf("%w: product %d has no stocked warehouse", contractx.ErrOutOfStock, productID)
	}

	rule, err := e.catalog.ShippingRuleByCountry(ctx, customer.Country)
	if err != nil {
		return nil, err
	}

	totalWeight := decimal.NewFromFloat(product.TechSpecs.WeightKG()).Mul(decimal.NewFromInt(int64(quantity)))
	freight := rule.BaseRate.Add(totalWeight.Mul(rule.PerKGRate))
	if hazmat {
		freight = freight.Add(rule.HazmatFee)
	}

	deliveryDate := e.now().AddDate(0, 0, rule.AvgETADays).Format("2006-01-02")

	return &Estimate{
		FreightCost:           freight.Round(2),
		ETADays:               rule.AvgETADays,
		EstimatedDeliveryDate: deliveryDate,
		WarehouseLocation:     warehouse,
	}, nil
}

// The estimator historically reports a missing customer as USER_NOT_FOUND
// rather than the quote engine's CUSTOMER_NOT_FOUND.
func asUserLookup(err error) error {
	if contractx.Code(err) == contractx.CodeCustomerNotFound {
		return fmt.Errorf("%w: %v", contractx.ErrUserNotFound, err)
	}
	return err
}
