package quote

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	catalogx "github.com/tanpawarit/Chative-Sales-Assistant/agent/catalog"
	contractx "github.com/tanpawarit/Chative-Sales-Assistant/agent/contract"
)

// Catalog is the read-only slice of the catalog store the engine needs.
type Catalog interface {
	CustomerByID(ctx context.Context, id int64) (*catalogx.Customer, error)
	// ProductByName resolves the first case-insensitive substring match.
	// Ambiguous names silently resolve to the first row; callers tolerate
	// that imprecision.
	ProductByName(ctx context.Context, name string) (*catalogx.Product, error)
	InventoryByProduct(ctx context.Context, productID int64) ([]catalogx.InventoryRecord, error)
}

// Store persists generated quotes.
type Store interface {
	InsertQuote(ctx context.Context, q *Quote) error
}

// Renderer hands a finished quote to the external document renderer.
// Rendering is best-effort and never fails quote generation.
type Renderer interface {
	Render(ctx context.Context, q *Quote) error
}

type Engine struct {
	catalog  Catalog
	quotes   Store
	renderer Renderer
	now      func() time.Time
}

func NewEngine(catalog Catalog, quotes Store, renderer Renderer) *Engine {
	return &Engine{
		catalog:  catalog,
		quotes:   quotes,
		renderer: renderer,
		now:      time.Now,
	}
}

// Generate prices a quote for quantity units of the product whose name
// matches productName, persists it, and returns it. Inventory is checked but
// never reserved: quote generation does not mutate stock.
func (e *Engine) Generate(ctx context.Context, customerID int64, productName string, quantity int) (*Quote, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d", quantity)
	}

	customer, err := e.catalog.CustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	product, err := e.catalog.ProductByName(ctx, productName)
	if err != nil {
		return nil, err
	}

	records, err := e.catalog.InventoryByProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	available := catalogx.TotalAvailable(records)
	if available <= 0 {
		return nil, fmt.Errorf("%w: product %q", contractx.ErrOutOfStock, product.Name)
	}
	if quantity > available {
		return nil, fmt.Errorf("%w: only %d units of %q are available", contractx.ErrInsufficientStock, available, product.Name)
	}

	q := Compute(product, customer, quantity)
	q.QuoteID = NewQuoteID()
	q.CreatedAt = e.now().UTC()

	if err := e.quotes.InsertQuote(ctx, &q); err != nil {
		return nil, fmt.Errorf("persist quote %s: %w", q.QuoteID, err)
	}

	if e.renderer != nil {
		if err := e.renderer.Render(ctx, &q); err != nil {
			log.Warn().Err(err).Str("quote_id", q.QuoteID).Msg("quote document rendering failed")
		}
	}

	return &q, nil
}

// NewQuoteID mints an externally visible quote identifier: "Q-" plus the
// first 8 hex characters of a random UUID.
func NewQuoteID() string {
	return "Q-" + uuid.NewString()[:8]
}
