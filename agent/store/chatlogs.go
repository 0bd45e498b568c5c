package store

import (
	"context"
	"fmt"

	sessionx "github.com/tanpawarit/Chative-Sales-Assistant/agent/session"
)

func (p *Postgres) AppendPair(ctx context.Context, pair sessionx.TurnPair) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	row := &chatlogRow{
		SessionID:      pair.SessionID,
		UserMessage:    pair.UserMessage,
		BotReply:       pair.BotReply,
		IntentDetected: pair.Intent,
	}
	if _, err := p.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return fmt.Errorf("insert chatlog for session %s: %w", pair.SessionID, err)
	}
	return nil
}

func (p *Postgres) PairsBySession(ctx context.Context, sessionID string) ([]sessionx.TurnPair, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	var rows []chatlogRow
	err := p.db.NewSelect().
		Model(&rows).
		Where("c.session_id = ?", sessionID).
		Order("c.message_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select chatlogs for session %s: %w", sessionID, err)
	}

	pairs := make([]sessionx.TurnPair, 0, len(rows))
	for _, r := range rows {
		pairs = append(pairs, sessionx.TurnPair{
			SessionID:   r.SessionID,
			UserMessage: r.UserMessage,
			BotReply:    r.BotReply,
			Intent:      r.IntentDetected,
		})
	}
	return pairs, nil
}

func (p *Postgres) DeleteSession(ctx context.Context, sessionID string) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	_, err := p.db.NewDelete().
		Model((*chatlogRow)(nil)).
		Where("session_id = ?", sessionID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete chatlogs for session %s: %w", sessionID, err)
	}
	return nil
}
