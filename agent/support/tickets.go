// Package support creates support tickets for products a customer has
// actually ordered.
package support

import (
	"context"
	"fmt"

	orderx "github.com/tanpawarit/Chative-Sales-Assistant/agent/order"
)

type TicketStatus string

const (
	StatusOpen     TicketStatus = "open"
	StatusResolved TicketStatus = "resolved"
)

type Ticket struct {
	ID         int64        `json:"ticket_id"`
	CustomerID int64        `json:"customer_id"`
	ProductID  int64        `json:"product_id"`
	IssueText  string       `json:"issue_text"`
	Status     TicketStatus `json:"status"`
}

// Store reads a customer's order history and persists tickets.
type Store interface {
	OrdersByCustomer(ctx context.Context, customerID int64) ([]orderx.Order, error)
	InsertTicket(ctx context.Context, t *Ticket) (int64, error)
}

// Result mirrors the conversational answer shape the assistant relays.
type Result struct {
	TicketID    int64  `json:"ticket_id,omitempty"`
	Created     bool   `json:"created"`
	Answer      string `json:"answer"`
	Explanation string `json:"explanation"`
}

type Desk struct {
	store Store
}

func NewDesk(store Store) *Desk {
	return &Desk{store: store}
}

// CreateTicket opens a ticket only when the product appears in one of the
// customer's orders; otherwise it refuses without persisting anything.
func (d *Desk) CreateTicket(ctx context.Context, customerID, productID int64, issueText string, status TicketStatus) (*Result, error) {
	if status == "" {
		status = StatusOpen
	}
	if status != StatusOpen && status != StatusResolved {
		return nil, fmt.Errorf("invalid ticket status %q", status)
	}

	orders, err := d.store.OrdersByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("read orders for customer %d: %w", customerID, err)
	}
	if len(orders) == 0 {
		return &Result{
			Created:     false,
			Answer:      fmt.Sprintf("No orders found for customer ID %d.", customerID),
			Explanation: "Customer has no orders in the database.",
		}, nil
	}

	if !ordersContainProduct(orders, productID) {
		return &Result{
			Created:     false,
			Answer:      "Cannot create ticket.",
			Explanation: "No order found containing this product for your customer ID.",
		}, nil
	}

	ticket := &Ticket{
		CustomerID: customerID,
		ProductID:  productID,
		IssueText:  issueText,
		Status:     status,
	}
	ticketID, err := d.store.InsertTicket(ctx, ticket)
	if err != nil {
		return nil, fmt.Errorf("persist ticket for customer %d: %w", customerID, err)
	}

	return &Result{
		TicketID:    ticketID,
		Created:     true,
		Answer:      fmt.Sprintf("Support ticket #%d created successfully.", ticketID),
		Explanation: "Your issue has been logged and will be addressed shortly.",
	}, nil
}

func ordersContainProduct(orders []orderx.Order, productID int64) bool {
	for _, o := range orders {
		for _, item := range o.Items {
			if item.ProductID == productID {
				return true
			}
		}
	}
	return false
}
