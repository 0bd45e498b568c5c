package quote

import (
	"fmt"
	"strings"
)

// Document renders a quote as a printable plain-text document. The output is
// a pure function of the quote value; the actual typesetting (PDF or
// otherwise) belongs to the external renderer this text is handed to.
func Document(q *Quote) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Quote ID: %s\n", q.QuoteID)
	fmt.Fprintf(&b, "Customer: %s (ID: %d)\n\n", q.CustomerName, q.CustomerID)

	fmt.Fprintf(&b, "%-30s %12s %8s %10s %14s %12s\n",
		"Product Name", "Unit Price", "Qty", "Discount %", "Discount Total", "Subtotal")
	for _, item := range q.Items {
		fmt.Fprintf(&b, "%-30s %12s %8d %10s %14s %12s\n",
			item.ProductName,
			item.UnitPrice.StringFixed(2)+" "+q.Currency,
			item.Quantity,
			item.DiscountPercent.StringFixed(2)+"%",
			item.DiscountTotal.StringFixed(2)+" "+q.Currency,
			item.Subtotal.StringFixed(2)+" "+q.Currency)
	}

	fmt.Fprintf(&b, "\nSubtotal: %s %s\n", q.Subtotal.StringFixed(2), q.Currency)
	fmt.Fprintf(&b, "Shipping: %s %s\n", q.ShippingCost.StringFixed(2), q.Currency)
	fmt.Fprintf(&b, "Tax: %s %s\n", q.Tax.StringFixed(2), q.Currency)
	fmt.Fprintf(&b, "Total: %s %s\n", q.Total.StringFixed(2), q.Currency)

	return b.String()
}
