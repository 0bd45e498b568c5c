package tool

import (
	"context"
	"errors"
	"fmt"
	"strings"

	catalogx "github.com/tanpawarit/Chative-Sales-Assistant/agent/catalog"
	contractx "github.com/tanpawarit/Chative-Sales-Assistant/agent/contract"
	leadx "github.com/tanpawarit/Chative-Sales-Assistant/agent/lead"
	"github.com/tanpawarit/Chative-Sales-Assistant/agent/language"
	orderx "github.com/tanpawarit/Chative-Sales-Assistant/agent/order"
	quotex "github.com/tanpawarit/Chative-Sales-Assistant/agent/quote"
	shippingx "github.com/tanpawarit/Chative-Sales-Assistant/agent/shipping"
	supportx "github.com/tanpawarit/Chative-Sales-Assistant/agent/support"
)

type Executor func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error)

// Directory covers the read-only lookups the conversational tools need.
type Directory interface {
	CustomerByID(ctx context.Context, id int64) (*catalogx.Customer, error)
	ProductByName(ctx context.Context, name string) (*catalogx.Product, error)
}

type QuoteService interface {
	Generate(ctx context.Context, customerID int64, productName string, quantity int) (*quotex.Quote, error)
}

type OrderService interface {
	Place(ctx context.Context, req orderx.PlacementRequest) (*orderx.Placement, error)
}

type ShippingService interface {
	Estimate(ctx context.Context, customerID, productID int64, quantity int, hazmat bool) (*shippingx.Estimate, error)
}

type AvailabilityService interface {
	Check(ctx context.Context, productID int64, requestedQuantity int) (*catalogx.AvailabilityReport, error)
}

type SupportService interface {
	CreateTicket(ctx context.Context, customerID, productID int64, issueText string, status supportx.TicketStatus) (*supportx.Result, error)
}

type LeadService interface {
	Qualify(ctx context.Context, customerID int64, budgetRange, projectType string, urgency leadx.Urgency) (*leadx.Result, error)
}

// Toolset binds the tool catalog to concrete domain services.
type Toolset struct {
	Directory    Directory
	Quotes       QuoteService
	Orders       OrderService
	Shipping     ShippingService
	Availability AvailabilityService
	Support      SupportService
	Leads        LeadService
}

type LanguageDetectOutput struct {
	Language string `json:"language"`
	Reply    string `json:"reply"`
}

// NewExecutor returns a dispatcher for every tool in Infos. Business
// failures and bad arguments come back inside ToolResult.Error so the model
// can correct itself; only infrastructure failures surface as a Go error.
func (t Toolset) NewExecutor() Executor {
	return func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error) {
		out, err := t.dispatch(ctx, tool, args)
		if err != nil {
			var argErr *argError
			if errors.As(err, &argErr) {
				return contractx.ToolResult{Tool: tool, Error: argErr.Error()}, nil
			}
			if contractx.IsBusiness(err) {
				return contractx.ToolResult{Tool: tool, Error: contractx.Code(err)}, nil
			}
			return contractx.ToolResult{}, err
		}
		return contractx.ToolResult{Tool: tool, Result: out}, nil
	}
}

func (t Toolset) dispatch(ctx context.Context, tool string, args map[string]any) (any, error) {
	switch tool {
	case ToolUserLookup:
		id, err := intArg(args, "customer_id")
		if err != nil {
			return nil, err
		}
		return t.Directory.CustomerByID(ctx, id)

	case ToolProductDiscover:
		name, err := stringArg(args, "product_name")
		if err != nil {
			return nil, err
		}
		return t.Directory.ProductByName(ctx, name)

	case ToolAvailabilityCheck:
		id, err := intArg(args, "product_id")
		if err != nil {
			return nil, err
		}
		qty := optionalIntArg(args, "quantity", 0)
		return t.Availability.Check(ctx, id, qty)

	case ToolQuoteGenerate:
		customerID, err := intArg(args, "customer_id")
		if err != nil {
			return nil, err
		}
		name, err := stringArg(args, "product_name")
		if err != nil {
			return nil, err
		}
		qty, err := intArg(args, "quantity")
		if err != nil {
			return nil, err
		}
		return t.Quotes.Generate(ctx, customerID, name, int(qty))

	case ToolOrderPlace:
		quoteID, err := stringArg(args, "quote_id")
		if err != nil {
			return nil, err
		}
		shipTo, err := stringArg(args, "ship_to_address")
		if err != nil {
			return nil, err
		}
		return t.Orders.Place(ctx, orderx.PlacementRequest{
			QuoteID:        quoteID,
			ShipToAddress:  shipTo,
			BillingAddress: optionalStringArg(args, "billing_address"),
			PaymentMethod:  optionalStringArg(args, "payment_method"),
			ShippingMethod: optionalStringArg(args, "shipping_method"),
			Notes:          optionalStringArg(args, "notes"),
		})

	case ToolShippingEstimate:
		customerID, err := intArg(args, "customer_id")
		if err != nil {
			return nil, err
		}
		productID, err := intArg(args, "product_id")
		if err != nil {
			return nil, err
		}
		qty := optionalIntArg(args, "quantity", 1)
		return t.Shipping.Estimate(ctx, customerID, productID, qty, boolArg(args, "hazmat"))

	case ToolSupportTicket:
		customerID, err := intArg(args, "customer_id")
		if err != nil {
			return nil, err
		}
		productID, err := intArg(args, "product_id")
		if err != nil {
			return nil, err
		}
		issue, err := stringArg(args, "issue")
		if err != nil {
			return nil, err
		}
		return t.Support.CreateTicket(ctx, customerID, productID, issue, supportx.StatusOpen)

	case ToolLeadQualify:
		customerID, err := intArg(args, "customer_id")
		if err != nil {
			return nil, err
		}
		budget, err := stringArg(args, "budget_range")
		if err != nil {
			return nil, err
		}
		urgency, err := stringArg(args, "urgency")
		if err != nil {
			return nil, err
		}
		project := optionalStringArg(args, "project_type")
		return t.Leads.Qualify(ctx, customerID, budget, project, leadx.Urgency(strings.ToLower(urgency)))

	case ToolLanguageDetect:
		message, err := stringArg(args, "message")
		if err != nil {
			return nil, err
		}
		lang, reply := language.Detect(message)
		return LanguageDetectOutput{Language: lang, Reply: reply}, nil

	default:
		return nil, fmt.Errorf("unknown tool %q", tool)
	}
}

// argError marks a tool-argument failure the model caused and can fix by
// calling again with corrected arguments.
type argError struct {
	msg string
}

func (e *argError) Error() string { return e.msg }

func intArg(args map[string]any, key string) (int64, error) {
	raw, ok := args[key]
	if !ok {
		return 0, &argError{msg: key + " is required"}
	}
	switch v := raw.(type) {
	case float64:
		return int64(v), nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	default:
		return 0, &argError{msg: key + " must be an integer"}
	}
}

func optionalIntArg(args map[string]any, key string, fallback int) int {
	n, err := intArg(args, key)
	if err != nil {
		return fallback
	}
	return int(n)
}

func stringArg(args map[string]any, key string) (string, error) {
	raw, ok := args[key]
	if !ok {
		return "", &argError{msg: key + " is required"}
	}
	s, ok := raw.(string)
	if !ok {
		return "", &argError{msg: key + " must be a string"}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", &argError{msg: key + " is empty"}
	}
	return s, nil
}

func optionalStringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return strings.TrimSpace(s)
}

func boolArg(args map[string]any, key string) bool {
	b, _ := args[key].(bool)
	return b
}
