// Package session keeps the durable, append-only record of a conversation.
// Turns are stored as user/assistant pairs keyed by an explicit session id;
// persistence failures are logged and swallowed so conversation logging can
// never block the conversation itself.
package session

import (
	"context"

	"github.com/rs/zerolog/log"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in a conversation as the agent runtime sees it.
// Content may arrive wrapped in structured or markdown decoration; the store
// normalizes it to plain prose before persisting. That normalization is
// lossy and one-directional.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
	Intent  string `json:"intent,omitempty"`
}

// TurnPair is the persisted unit: one user message with its assistant reply.
type TurnPair struct {
	SessionID   string
	UserMessage string
	BotReply    string
	Intent      string
}

// Log is the persistence contract for conversation turns, append-only except
// for whole-session deletion.
type Log interface {
	AppendPair(ctx context.Context, pair TurnPair) error
	PairsBySession(ctx context.Context, sessionID string) ([]TurnPair, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type Store struct {
	log Log
}

func NewStore(l Log) *Store {
	return &Store{log: l}
}

// AppendTurns persists turns two at a time (user, then assistant), dropping
// any trailing unpaired turn since replay assumes strict pairing. The intent
// label comes from the user turn, defaulting to "unknown". Write failures
// are logged per pair and swallowed.
func (s *Store) AppendTurns(ctx context.Context, sessionID string, turns []Turn) {
	for i := 0; i+1 < len(turns); i += 2 {
		intent := turns[i].Intent
		if intent == "" {
			intent = "unknown"
		}
		pair := TurnPair{
			SessionID:   sessionID,
			UserMessage: Normalize(turns[i].Content),
			BotReply:    Normalize(turns[i+1].Content),
			Intent:      intent,
		}
		if err := s.log.AppendPair(ctx, pair); err != nil {
			log.Error().Err(err).Str("session_id", sessionID).Msg("chatlog write failed")
		}
	}
}

// LoadTurns returns the session's turns in chronological order, each stored
// pair expanded back into a user entry followed by an assistant entry. A
// positive limit keeps only the last limit entries. Read failures are logged
// and yield an empty result.
func (s *Store) LoadTurns(ctx context.Context, sessionID string, limit int) []Turn {
	pairs, err := s.log.PairsBySession(ctx, sessionID)
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("chatlog read failed")
		return nil
	}

	turns := make([]Turn, 0, 2*len(pairs))
	for _, p := range pairs {
		turns = append(turns,
			Turn{Role: RoleUser, Content: p.UserMessage, Intent: p.Intent},
			Turn{Role: RoleAssistant, Content: p.BotReply},
		)
	}
	if limit > 0 && len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}
	return turns
}

// ClearSession deletes every turn of the session. Idempotent: clearing an
// empty or unknown session is not an error.
func (s *Store) ClearSession(ctx context.Context, sessionID string) {
	if err := s.log.DeleteSession(ctx, sessionID); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("chatlog clear failed")
	}
}
