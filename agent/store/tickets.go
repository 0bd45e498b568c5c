package store

import (
	"context"
	"fmt"

	leadx "github.com/tanpawarit/Chative-Sales-Assistant/agent/lead"
	supportx "github.com/tanpawarit/Chative-Sales-Assistant/agent/support"
)

func (p *Postgres) InsertTicket(ctx context.Context, t *supportx.Ticket) (int64, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	row := &supportTicketRow{
		CustomerID: t.CustomerID,
		ProductID:  t.ProductID,
		IssueText:  t.IssueText,
		Status:     string(t.Status),
	}
	if _, err := p.db.NewInsert().Model(row).Returning("id").Exec(ctx); err != nil {
		return 0, fmt.Errorf("insert support ticket for customer %d: %w", t.CustomerID, err)
	}
	t.ID = row.ID
	return row.ID, nil
}

func (p *Postgres) InsertLead(ctx context.Context, l *leadx.Lead) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	qualified := "no"
	if l.Qualified {
		qualified = "yes"
	}
	row := &leadRow{
		CustomerID:  l.CustomerID,
		BudgetRange: l.BudgetRange,
		ProjectType: l.ProjectType,
		Urgency:     string(l.Urgency),
		Qualified:   qualified,
	}
	if _, err := p.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return fmt.Errorf("insert lead for customer %d: %w", l.CustomerID, err)
	}
	return nil
}
