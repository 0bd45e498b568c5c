package tool

import (
	"context"
	"errors"
	"testing"

	catalogx "github.com/tanpawarit/Chative-Sales-Assistant/agent/catalog"
	contractx "github.com/tanpawarit/Chative-Sales-Assistant/agent/contract"
	leadx "github.com/tanpawarit/Chative-Sales-Assistant/agent/lead"
	orderx "github.com/tanpawarit/Chative-Sales-Assistant/agent/order"
	quotex "github.com/tanpawarit/Chative-Sales-Assistant/agent/quote"
	shippingx "github.com/tanpawarit/Chative-Sales-Assistant/agent/shipping"
	supportx "github.com/tanpawarit/Chative-Sales-Assistant/agent/support"
)

type fakeDirectory struct {
	customerErr error
}

func (f *fakeDirectory) CustomerByID(_ context.Context, id int64) (*catalogx.Customer, error) {
	if f.customerErr != nil {
		return nil, f.customerErr
	}
	return &catalogx.Customer{ID: id, FullName: "Dana Reyes"}, nil
}

func (f *fakeDirectory) ProductByName(_ context.Context, name string) (*catalogx.Product, error) {
	return &catalogx.Product{ID: 10, Name: name}, nil
}

type fakeQuotes struct {
	gotCustomerID int64
	gotProduct    string
	gotQuantity   int
	err           error
}

func (f *fakeQuotes) Generate(_ context.Context, customerID int64, productName string, quantity int) (*quotex.Quote, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.gotCustomerID = customerID
	f.gotProduct = productName
	f.gotQuantity = quantity
	return &quotex.Quote{QuoteID: "Q-1a2b3c4d", CustomerID: customerID}, nil
}

type fakeOrders struct {
	got orderx.PlacementRequest
}

func (f *fakeOrders) Place(_ context.Context, req orderx.PlacementRequest) (*orderx.Placement, error) {
	f.got = req
	return &orderx.Placement{OrderID: "O-aa11bb22", QuoteID: req.QuoteID}, nil
}

type fakeShipping struct {
	gotQuantity int
	gotHazmat   bool
}

func (f *fakeShipping) Estimate(_ context.Context, _, _ int64, quantity int, hazmat bool) (*shippingx.Estimate, error) {
	f.gotQuantity = quantity
	f.gotHazmat = hazmat
	return &shippingx.Estimate{ETADays: 6}, nil
}

type fakeAvailability struct{}

func (fakeAvailability) Check(_ context.Context, productID int64, requested int) (*catalogx.AvailabilityReport, error) {
	return &catalogx.AvailabilityReport{ProductID: productID, RequestedQuantity: requested}, nil
}

type fakeSupport struct {
	gotStatus supportx.TicketStatus
}

func (f *fakeSupport) CreateTicket(_ context.Context, _, _ int64, _ string, status supportx.TicketStatus) (*supportx.Result, error) {
	f.gotStatus = status
	return &supportx.Result{Created: true, TicketID: 42}, nil
}

type fakeLeads struct {
	gotUrgency leadx.Urgency
}

func (f *fakeLeads) Qualify(_ context.Context, _ int64, _, _ string, urgency leadx.Urgency) (*leadx.Result, error) {
	f.gotUrgency = urgency
	return &leadx.Result{LeadScore: leadx.ScoreWarm, Qualified: true}, nil
}

func sampleToolset() (Toolset, *fakeQuotes, *fakeOrders, *fakeShipping, *fakeSupport, *fakeLeads) {
	quotes := &fakeQuotes{}
	orders := &fakeOrders{}
	shipping := &fakeShipping{}
	support := &fakeSupport{}
	leads := &fakeLeads{}
	ts := Toolset{
		Directory:    &fakeDirectory{},
		Quotes:       quotes,
		Orders:       orders,
		Shipping:     shipping,
		Availability: fakeAvailability{},
		Support:      support,
		Leads:        leads,
	}
	return ts, quotes, orders, shipping, support, leads
}

func TestInfosCoverEveryDispatchedTool(t *testing.T) {
	t.Parallel()

	ts, _, _, _, _, _ := sampleToolset()
	executor := ts.NewExecutor()

	args := map[string]any{
		"customer_id":     float64(7),
		"product_id":      float64(10),
		"product_name":    "scale",
		"quantity":        float64(2),
		"quote_id":        "Q-1a2b3c4d",
		"ship_to_address": "1 Lab Way",
		"issue":           "broken",
		"budget_range":    "10000-50000",
		"urgency":         "medium",
		"message":         "hola",
	}

	for _, info := range Infos() {
		out, err := executor(context.Background(), info.Name, args)
		if err != nil {
			t.Fatalf("tool %s: unexpected error: %v", info.Name, err)
		}
		if out.Error != "" {
			t.Fatalf("tool %s: unexpected tool error: %s", info.Name, out.Error)
		}
		if out.Tool != info.Name {
			t.Fatalf("tool %s: echoed name %s", info.Name, out.Tool)
		}
	}
}

func TestExecutorQuoteGenerateCoercesJSONNumbers(t *testing.T) {
	t.Parallel()

	ts, quotes, _, _, _, _ := sampleToolset()
	executor := ts.NewExecutor()

	out, err := executor(context.Background(), ToolQuoteGenerate, map[string]any{
		"customer_id":  float64(7),
		"product_name": "scale",
		"quantity":     float64(5),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Error != "" {
		t.Fatalf("unexpected tool error: %s", out.Error)
	}
	if quotes.gotCustomerID != 7 || quotes.gotProduct != "scale" || quotes.gotQuantity != 5 {
		t.Fatalf("arguments not decoded: %+v", quotes)
	}
}

func TestExecutorBusinessErrorBecomesCode(t *testing.T) {
	t.Parallel()

	ts, quotes, _, _, _, _ := sampleToolset()
	quotes.err = contractx.ErrInsufficientStock
	executor := ts.NewExecutor()

	out, err := executor(context.Background(), ToolQuoteGenerate, map[string]any{
		"customer_id":  float64(7),
		"product_name": "scale",
		"quantity":     float64(500),
	})
	if err != nil {
		t.Fatalf("business failure must not surface as an error: %v", err)
	}
	if out.Error != contractx.CodeInsufficientStock {
		t.Fatalf("unexpected code: %s", out.Error)
	}
}

func TestExecutorSystemErrorSurfaces(t *testing.T) {
	t.Parallel()

	ts, _, _, _, _, _ := sampleToolset()
	ts.Directory = &fakeDirectory{customerErr: errors.New("dial tcp: refused")}
	executor := ts.NewExecutor()

	_, err := executor(context.Background(), ToolUserLookup, map[string]any{"customer_id": float64(7)})
	if err == nil {
		t.Fatal("infrastructure failure must surface as an error")
	}
}

func TestExecutorMissingRequiredArgumentBecomesPayload(t *testing.T) {
	t.Parallel()

	ts, _, _, _, _, _ := sampleToolset()
	executor := ts.NewExecutor()

	out, err := executor(context.Background(), ToolOrderPlace, map[string]any{"quote_id": "Q-1a2b3c4d"})
	if err != nil {
		t.Fatalf("argument failure must not surface as an error: %v", err)
	}
	if out.Error != "ship_to_address is required" {
		t.Fatalf("unexpected tool error: %q", out.Error)
	}
}

func TestExecutorMistypedArgumentBecomesPayload(t *testing.T) {
	t.Parallel()

	ts, _, _, _, _, _ := sampleToolset()
	executor := ts.NewExecutor()

	out, err := executor(context.Background(), ToolQuoteGenerate, map[string]any{
		"customer_id":  float64(7),
		"product_name": "scale",
		"quantity":     "five",
	})
	if err != nil {
		t.Fatalf("argument failure must not surface as an error: %v", err)
	}
	if out.Error != "quantity must be an integer" {
		t.Fatalf("unexpected tool error: %q", out.Error)
	}
}

func TestExecutorUnknownTool(t *testing.T) {
	t.Parallel()

	ts, _, _, _, _, _ := sampleToolset()
	executor := ts.NewExecutor()

	if _, err := executor(context.Background(), "time.travel", nil); err == nil {
		t.Fatal("expected error for unknown tool")
	}
}

func TestExecutorShippingDefaults(t *testing.T) {
	t.Parallel()

	ts, _, _, shipping, _, _ := sampleToolset()
	executor := ts.NewExecutor()

	_, err := executor(context.Background(), ToolShippingEstimate, map[string]any{
		"customer_id": float64(7),
		"product_id":  float64(10),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shipping.gotQuantity != 1 || shipping.gotHazmat {
		t.Fatalf("defaults not applied: quantity=%d hazmat=%v", shipping.gotQuantity, shipping.gotHazmat)
	}
}

func TestExecutorLeadUrgencyLowercased(t *testing.T) {
	t.Parallel()

	ts, _, _, _, _, leads := sampleToolset()
	executor := ts.NewExecutor()

	_, err := executor(context.Background(), ToolLeadQualify, map[string]any{
		"customer_id":  float64(7),
		"budget_range": "10000-50000",
		"urgency":      "HIGH",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if leads.gotUrgency != leadx.UrgencyHigh {
		t.Fatalf("urgency not normalized: %s", leads.gotUrgency)
	}
}

func TestExecutorLanguageDetect(t *testing.T) {
	t.Parallel()

	ts, _, _, _, _, _ := sampleToolset()
	executor := ts.NewExecutor()

	out, err := executor(context.Background(), ToolLanguageDetect, map[string]any{"message": "hola amigo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	detected, ok := out.Result.(LanguageDetectOutput)
	if !ok {
		t.Fatalf("unexpected result type: %T", out.Result)
	}
	if detected.Language != "spanish" {
		t.Fatalf("unexpected language: %s", detected.Language)
	}
}
