package session

import (
	"context"
	"errors"
	"testing"
)

type fakeLog struct {
	pairs []TurnPair

	appendErr error
	readErr   error
	deleteErr error
	deleted   []string
}

func (f *fakeLog) AppendPair(_ context.Context, pair TurnPair) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.pairs = append(f.pairs, pair)
	return nil
}

func (f *fakeLog) PairsBySession(_ context.Context, sessionID string) ([]TurnPair, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	out := make([]TurnPair, 0, len(f.pairs))
	for _, p := range f.pairs {
		if p.SessionID == sessionID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeLog) DeleteSession(_ context.Context, sessionID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, sessionID)
	kept := f.pairs[:0]
	for _, p := range f.pairs {
		if p.SessionID != sessionID {
			kept = append(kept, p)
		}
	}
	f.pairs = kept
	return nil
}

func TestAppendTurnsStoresPairs(t *testing.T) {
	t.Parallel()

	l := &fakeLog{}
	store := NewStore(l)

	store.AppendTurns(context.Background(), "s1", []Turn{
		{Role: RoleUser, Content: "do you have scales?", Intent: "product_inquiry"},
		{Role: RoleAssistant, Content: "Yes, we stock three models."},
	})

	if len(l.pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(l.pairs))
	}
	p := l.pairs[0]
	if p.SessionID != "s1" || p.Intent != "product_inquiry" {
		t.Fatalf("unexpected pair: %+v", p)
	}
	if p.UserMessage != "do you have scales?" || p.BotReply != "Yes, we stock three models." {
		t.Fatalf("unexpected pair content: %+v", p)
	}
}

func TestAppendTurnsDropsTrailingUnpairedTurn(t *testing.T) {
	t.Parallel()

	l := &fakeLog{}
	store := NewStore(l)

	store.AppendTurns(context.Background(), "s1", []Turn{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
		{Role: RoleUser, Content: "dangling"},
	})

	if len(l.pairs) != 1 {
		t.Fatalf("expected trailing turn to be dropped, got %d pairs", len(l.pairs))
	}
}

func TestAppendTurnsDefaultsIntent(t *testing.T) {
	t.Parallel()

	l := &fakeLog{}
	store := NewStore(l)

	store.AppendTurns(context.Background(), "s1", []Turn{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
	})

	if l.pairs[0].Intent != "unknown" {
		t.Fatalf("expected default intent, got %q", l.pairs[0].Intent)
	}
}

func TestAppendTurnsSwallowsWriteFailures(t *testing.T) {
	t.Parallel()

	store := NewStore(&fakeLog{appendErr: errors.New("db down")})

	// must not panic or surface the failure
	store.AppendTurns(context.Background(), "s1", []Turn{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
	})
}

func TestLoadTurnsExpandsPairsInOrder(t *testing.T) {
	t.Parallel()

	l := &fakeLog{pairs: []TurnPair{
		{SessionID: "s1", UserMessage: "first q", BotReply: "first a", Intent: "greeting"},
		{SessionID: "s1", UserMessage: "second q", BotReply: "second a", Intent: "pricing"},
		{SessionID: "other", UserMessage: "noise", BotReply: "noise"},
	}}
	store := NewStore(l)

	turns := store.LoadTurns(context.Background(), "s1", 0)
	if len(turns) != 4 {
		t.Fatalf("expected 4 turns, got %d", len(turns))
	}
	if turns[0].Role != RoleUser || turns[0].Content != "first q" || turns[0].Intent != "greeting" {
		t.Fatalf("unexpected first turn: %+v", turns[0])
	}
	if turns[3].Role != RoleAssistant || turns[3].Content != "second a" {
		t.Fatalf("unexpected last turn: %+v", turns[3])
	}
}

func TestLoadTurnsTailLimit(t *testing.T) {
	t.Parallel()

	l := &fakeLog{pairs: []TurnPair{
		{SessionID: "s1", UserMessage: "q1", BotReply: "a1"},
		{SessionID: "s1", UserMessage: "q2", BotReply: "a2"},
		{SessionID: "s1", UserMessage: "q3", BotReply: "a3"},
	}}
	store := NewStore(l)

	turns := store.LoadTurns(context.Background(), "s1", 2)
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
	if turns[0].Content != "q3" || turns[1].Content != "a3" {
		t.Fatalf("limit must keep the most recent turns: %+v", turns)
	}
}

func TestLoadTurnsReadFailureYieldsEmpty(t *testing.T) {
	t.Parallel()

	store := NewStore(&fakeLog{readErr: errors.New("db down")})
	if turns := store.LoadTurns(context.Background(), "s1", 0); len(turns) != 0 {
		t.Fatalf("expected empty result, got %+v", turns)
	}
}

func TestClearSessionIdempotent(t *testing.T) {
	t.Parallel()

	l := &fakeLog{pairs: []TurnPair{{SessionID: "s1", UserMessage: "q", BotReply: "a"}}}
	store := NewStore(l)

	store.ClearSession(context.Background(), "s1")
	store.ClearSession(context.Background(), "s1")

	if len(l.pairs) != 0 {
		t.Fatalf("session should be empty, got %+v", l.pairs)
	}
	if len(l.deleted) != 2 {
		t.Fatalf("expected both deletes to run, got %d", len(l.deleted))
	}
}
