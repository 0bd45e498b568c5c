package support

import (
	"context"
	"errors"
	"testing"

	orderx "github.com/tanpawarit/Chative-Sales-Assistant/agent/order"
	quotex "github.com/tanpawarit/Chative-Sales-Assistant/agent/quote"
)

type fakeSupportStore struct {
	orders    []orderx.Order
	ordersErr error

	nextTicketID int64
	inserted     *Ticket
	insertErr    error
}

func (f *fakeSupportStore) OrdersByCustomer(_ context.Context, _ int64) ([]orderx.Order, error) {
	if f.ordersErr != nil {
		return nil, f.ordersErr
	}
	return f.orders, nil
}

func (f *fakeSupportStore) InsertTicket(_ context.Context, t *Ticket) (int64, error) {
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	f.inserted = t
	return f.nextTicketID, nil
}

func ordersWithProduct(productID int64) []orderx.Order {
	return []orderx.Order{{
		OrderID:    "O-aa11bb22",
		CustomerID: 7,
		Items:      []quotex.LineItem{{ProductID: productID, ProductName: "Centrifuge", Quantity: 1}},
	}}
}

func TestCreateTicketForOwnedProduct(t *testing.T) {
	t.Parallel()

	store := &fakeSupportStore{orders: ordersWithProduct(10), nextTicketID: 42}
	desk := NewDesk(store)

	res, err := desk.CreateTicket(context.Background(), 7, 10, "rotor is rattling", StatusOpen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Created || res.TicketID != 42 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Answer != "Support ticket #42 created successfully." {
		t.Fatalf("unexpected answer: %q", res.Answer)
	}
	if store.inserted == nil || store.inserted.Status != StatusOpen {
		t.Fatalf("ticket not persisted as open: %+v", store.inserted)
	}
}

func TestCreateTicketNoOrders(t *testing.T) {
	t.Parallel()

	desk := NewDesk(&fakeSupportStore{})

	res, err := desk.CreateTicket(context.Background(), 7, 10, "broken", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Created {
		t.Fatal("ticket must not be created without orders")
	}
	if res.Answer != "No orders found for customer ID 7." {
		t.Fatalf("unexpected answer: %q", res.Answer)
	}
}

func TestCreateTicketProductNotOrdered(t *testing.T) {
	t.Parallel()

	store := &fakeSupportStore{orders: ordersWithProduct(10)}
	desk := NewDesk(store)

	res, err := desk.CreateTicket(context.Background(), 7, 99, "broken", StatusOpen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Created {
		t.Fatal("ticket must not be created for a product the customer never ordered")
	}
	if res.Answer != "Cannot create ticket." {
		t.Fatalf("unexpected answer: %q", res.Answer)
	}
	if store.inserted != nil {
		t.Fatal("refusal must not persist anything")
	}
}

func TestCreateTicketInvalidStatus(t *testing.T) {
	t.Parallel()

	desk := NewDesk(&fakeSupportStore{orders: ordersWithProduct(10)})
	if _, err := desk.CreateTicket(context.Background(), 7, 10, "broken", "escalated"); err == nil {
		t.Fatal("expected error for invalid status")
	}
}

func TestCreateTicketStoreFailures(t *testing.T) {
	t.Parallel()

	desk := NewDesk(&fakeSupportStore{ordersErr: errors.New("db down")})
	if _, err := desk.CreateTicket(context.Background(), 7, 10, "broken", StatusOpen); err == nil {
		t.Fatal("expected order read failure to surface")
	}

	desk = NewDesk(&fakeSupportStore{orders: ordersWithProduct(10), insertErr: errors.New("db down")})
	if _, err := desk.CreateTicket(context.Background(), 7, 10, "broken", StatusOpen); err == nil {
		t.Fatal("expected insert failure to surface")
	}
}
