package catalog

import (
	"context"
	"errors"
	"testing"

	contractx "github.com/tanpawarit/Chative-Sales-Assistant/agent/contract"
)

type fakeInventorySource struct {
	records []InventoryRecord
	readErr error

	statusSet StockStatus
	setErr    error
}

func (f *fakeInventorySource) InventoryByProduct(_ context.Context, _ int64) ([]InventoryRecord, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.records, nil
}

func (f *fakeInventorySource) SetStockStatus(_ context.Context, _ int64, status StockStatus) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.statusSet = status
	return nil
}

func TestCheckReportsTotalsAndRefreshesStatus(t *testing.T) {
	t.Parallel()

	inv := &fakeInventorySource{records: []InventoryRecord{
		{WarehouseLocation: "Austin", QuantityLeft: 3},
		{WarehouseLocation: "Reno", QuantityLeft: 4},
	}}
	checker := NewAvailabilityChecker(inv)

	report, err := checker.Check(context.Background(), 10, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.TotalQuantity != 7 {
		t.Fatalf("unexpected total: %d", report.TotalQuantity)
	}
	if report.StockStatus != StockStatusInStock {
		t.Fatalf("unexpected status: %s", report.StockStatus)
	}
	if !report.Fulfillable || report.RequestedQuantity != 5 {
		t.Fatalf("5 of 7 must be fulfillable: %+v", report)
	}
	if inv.statusSet != StockStatusInStock {
		t.Fatalf("derived status must be written back, got %q", inv.statusSet)
	}
}

func TestCheckNotFulfillable(t *testing.T) {
	t.Parallel()

	inv := &fakeInventorySource{records: []InventoryRecord{{QuantityLeft: 2}}}
	report, err := NewAvailabilityChecker(inv).Check(context.Background(), 10, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Fulfillable {
		t.Fatal("2 units cannot fulfill a request for 5")
	}
}

func TestCheckWithoutRequestedQuantity(t *testing.T) {
	t.Parallel()

	inv := &fakeInventorySource{records: []InventoryRecord{{QuantityLeft: 2}}}
	report, err := NewAvailabilityChecker(inv).Check(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.RequestedQuantity != 0 || report.Fulfillable {
		t.Fatalf("quantity fields must stay zero-valued: %+v", report)
	}
}

func TestCheckUnknownProduct(t *testing.T) {
	t.Parallel()

	_, err := NewAvailabilityChecker(&fakeInventorySource{}).Check(context.Background(), 99, 1)
	if !errors.Is(err, contractx.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCheckStatusWriteFailure(t *testing.T) {
	t.Parallel()

	inv := &fakeInventorySource{
		records: []InventoryRecord{{QuantityLeft: 1}},
		setErr:  errors.New("db down"),
	}
	if _, err := NewAvailabilityChecker(inv).Check(context.Background(), 10, 1); err == nil {
		t.Fatal("expected status refresh failure to surface")
	}
}
