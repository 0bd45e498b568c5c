// Package tool exposes the assistant's capabilities to the model as a flat
// catalog of callable tools and dispatches model-issued calls to the domain
// services behind them.
package tool

import (
	contractx "github.com/tanpawarit/Chative-Sales-Assistant/agent/contract"
)

const (
	ToolUserLookup        = "user.lookup"
	ToolProductDiscover   = "product.discover"
	ToolAvailabilityCheck = "availability.check"
	ToolQuoteGenerate     = "quote.generate"
	ToolOrderPlace        = "order.place"
	ToolShippingEstimate  = "shipping.estimate"
	ToolSupportTicket     = "support.ticket"
	ToolLeadQualify       = "lead.qualify"
	ToolLanguageDetect    = "language.detect"
)

func Infos() []contractx.ToolInfo {
	return []contractx.ToolInfo{
		{
			Name: ToolUserLookup,
			Desc: "Look up a customer profile (name, company, tier, verification, country) by customer id.",
			Params: map[string]*contractx.ParameterInfo{
				"customer_id": {Type: contractx.Integer, Desc: "Customer id", Required: true},
			},
		},
		{
			Name: ToolProductDiscover,
			Desc: "Find a product by name and return its description, specs, price, and stock status.",
			Params: map[string]*contractx.ParameterInfo{
				"product_name": {Type: contractx.String, Desc: "Product name or a distinctive fragment of it", Required: true},
			},
		},
		{
			Name: ToolAvailabilityCheck,
			Desc: "Check warehouse availability for a product and whether a requested quantity is fulfillable.",
			Params: map[string]*contractx.ParameterInfo{
				"product_id": {Type: contractx.Integer, Desc: "Product id", Required: true},
				"quantity":   {Type: contractx.Integer, Desc: "Requested quantity", Required: false},
			},
		},
		{
			Name: ToolQuoteGenerate,
			Desc: "Generate a priced quote for a customer, product, and quantity. Does not reserve stock.",
			Params: map[string]*contractx.ParameterInfo{
				"customer_id":  {Type: contractx.Integer, Desc: "Customer id", Required: true},
				"product_name": {Type: contractx.String, Desc: "Product name", Required: true},
				"quantity":     {Type: contractx.Integer, Desc: "Units to quote", Required: true},
			},
		},
		{
			Name: ToolOrderPlace,
			Desc: "Convert a previously generated quote into an order and decrement inventory.",
			Params: map[string]*contractx.ParameterInfo{
				"quote_id":        {Type: contractx.String, Desc: "Quote id, e.g. Q-1a2b3c4d", Required: true},
				"ship_to_address": {Type: contractx.String, Desc: "Delivery address", Required: true},
				"billing_address": {Type: contractx.String, Desc: "Billing address if different from delivery", Required: false},
				"payment_method":  {Type: contractx.String, Desc: "Payment method", Required: false},
				"shipping_method": {Type: contractx.String, Desc: "Shipping method", Required: false},
				"notes":           {Type: contractx.String, Desc: "Free-form order notes", Required: false},
			},
		},
		{
			Name: ToolShippingEstimate,
			Desc: "Estimate freight cost and delivery date for shipping a product to a customer's country.",
			Params: map[string]*contractx.ParameterInfo{
				"customer_id": {Type: contractx.Integer, Desc: "Customer id", Required: true},
				"product_id":  {Type: contractx.Integer, Desc: "Product id", Required: true},
				"quantity":    {Type: contractx.Integer, Desc: "Units to ship, default 1", Required: false},
				"hazmat":      {Type: contractx.Boolean, Desc: "Whether the shipment needs hazmat handling", Required: false},
			},
		},
		{
			Name: ToolSupportTicket,
			Desc: "Open a support ticket for a product the customer has previously ordered.",
			Params: map[string]*contractx.ParameterInfo{
				"customer_id": {Type: contractx.Integer, Desc: "Customer id", Required: true},
				"product_id":  {Type: contractx.Integer, Desc: "Product id the issue is about", Required: true},
				"issue":       {Type: contractx.String, Desc: "Issue description", Required: true},
			},
		},
		{
			Name: ToolLeadQualify,
			Desc: "Score and record a sales lead from budget range, project type, and urgency.",
			Params: map[string]*contractx.ParameterInfo{
				"customer_id":  {Type: contractx.Integer, Desc: "Customer id", Required: true},
				"budget_range": {Type: contractx.String, Desc: "Budget range, e.g. 10000-50000", Required: true},
				"project_type": {Type: contractx.String, Desc: "What the customer is building", Required: false},
				"urgency":      {Type: contractx.String, Desc: "low, medium, or high", Required: true},
			},
		},
		{
			Name: ToolLanguageDetect,
			Desc: "Detect the language of a greeting and return a reply in that language.",
			Params: map[string]*contractx.ParameterInfo{
				"message": {Type: contractx.String, Desc: "The user's message", Required: true},
			},
		},
	}
}
