package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	contractx "github.com/tanpawarit/Chative-Sales-Assistant/agent/contract"
	quotex "github.com/tanpawarit/Chative-Sales-Assistant/agent/quote"
)

func (p *Postgres) InsertQuote(ctx context.Context, q *quotex.Quote) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	row, err := newQuoteRow(q)
	if err != nil {
		return err
	}
	if _, err := p.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return fmt.Errorf("insert quote %s: %w", q.QuoteID, err)
	}
	return nil
}

func (p *Postgres) QuoteByID(ctx context.Context, quoteID string) (*quotex.Quote, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	row := new(quoteRow)
	err := p.db.NewSelect().Model(row).Where("q.quote_id = ?", quoteID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", contractx.ErrQuoteNotFound, quoteID)
	}
	if err != nil {
		return nil, fmt.Errorf("select quote %s: %w", quoteID, err)
	}
	return row.toDomain()
}
