package quote

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	catalogx "github.com/tanpawarit/Chative-Sales-Assistant/agent/catalog"
)

func TestDocumentContainsIdentityAndTotals(t *testing.T) {
	t.Parallel()

	product := &catalogx.Product{ID: 1, Name: "Precision Scale", BasePrice: decimal.NewFromFloat(100.0)}
	customer := &catalogx.Customer{ID: 7, FullName: "Dana Reyes", Tier: catalogx.TierGuest}
	q := Compute(product, customer, 5)
	q.QuoteID = "Q-deadbeef"

	doc := Document(&q)

	for _, want := range []string{
		"Quote ID: Q-deadbeef",
		"Customer: Dana Reyes (ID: 7)",
		"Precision Scale",
		"Total: 631.30 USD",
		"Shipping: 35.00 USD",
		"Tax: 96.30 USD",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("document missing %q:\n%s", want, doc)
		}
	}
}

func TestDocumentLineItemsAlignWithHeader(t *testing.T) {
	t.Parallel()

	product := &catalogx.Product{ID: 1, Name: "Precision Scale", BasePrice: decimal.NewFromFloat(100.0)}
	customer := &catalogx.Customer{ID: 7, FullName: "Dana Reyes", Tier: catalogx.TierCorporate}
	q := Compute(product, customer, 5)
	q.QuoteID = "Q-deadbeef"

	lines := strings.Split(Document(&q), "\n")

	var header string
	var items []string
	for _, line := range lines {
		if strings.HasPrefix(line, "Product Name") {
			header = line
			continue
		}
		if strings.HasPrefix(line, "Precision Scale") {
			items = append(items, line)
		}
	}
	if header == "" || len(items) == 0 {
		t.Fatalf("table not found in document:\n%s", strings.Join(lines, "\n"))
	}
	for _, item := range items {
		if len(item) != len(header) {
			t.Fatalf("row width %d does not match header width %d:\nheader: %q\nrow:    %q",
				len(item), len(header), header, item)
		}
	}
}
