package contract

import "errors"

var (
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrQuoteNotFound        = errors.New("quote not found")
	ErrOutOfStock           = errors.New("out of stock")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrNoShippingRule       = errors.New("no shipping rule for destination country")
	ErrOrderPlacementFailed = errors.New("order placement failed")
	ErrSystem               = errors.New("system error")
)

const (
	CodeCustomerNotFound     = "CUSTOMER_NOT_FOUND"
	CodeUserNotFound         = "USER_NOT_FOUND"
	CodeProductNotFound      = "PRODUCT_NOT_FOUND"
	CodeQuoteNotFound        = "QUOTE_NOT_FOUND"
	CodeOutOfStock           = "OUT_OF_STOCK"
	CodeInsufficientStock    = "INSUFFICIENT_STOCK"
	CodeNoShippingRule       = "NO_SHIPPING_RULE"
	CodeOrderPlacementFailed = "ORDER_PLACEMENT_FAILED"
	CodeSystemError          = "SYSTEM_ERROR"
)

// Code maps an error to the fixed string code surfaced to tool callers.
// Callers are expected to branch on the code, not on the message.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrCustomerNotFound):
		return CodeCustomerNotFound
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrProductNotFound):
		return CodeProductNotFound
	case errors.Is(err, ErrQuoteNotFound):
		return CodeQuoteNotFound
	// An aborted placement wraps its cause; the placement code wins so
	// callers see one failure kind for the whole transaction.
	case errors.Is(err, ErrOrderPlacementFailed):
		return CodeOrderPlacementFailed
	case errors.Is(err, ErrOutOfStock):
		return CodeOutOfStock
	case errors.Is(err, ErrInsufficientStock):
		return CodeInsufficientStock
	case errors.Is(err, ErrNoShippingRule):
		return CodeNoShippingRule
	default:
		return CodeSystemError
	}
}

// IsBusiness reports whether err is a lookup failure or business-rule
// violation, as opposed to a store/transport failure.
func IsBusiness(err error) bool {
	return err != nil && Code(err) != CodeSystemError
}
