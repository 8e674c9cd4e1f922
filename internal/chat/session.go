// Package chat keeps the in-progress conversation with the travel assistant.
// A session is ephemeral: only exchanges the user explicitly saves reach the
// chat_logs table.
package chat

import (
	"context"
)

const (
	// Placeholder is shown while the assistant has not answered yet.
	Placeholder = "..."
	// FailureText replaces the placeholder when the assistant call fails.
	FailureText = "Sorry, there was an error processing your request."
	// EmptyResponseText replaces the placeholder when the assistant answers with nothing.
	EmptyResponseText = "No response received"
)

// Exchange is one prompt and its reply.
type Exchange struct {
	Prompt   string `json:"prompt"`
	Response string `json:"response"`
	Pending  bool   `json:"pending"`
	Failed   bool   `json:"failed"`
}

// Session is a chat history plus the current interest qualifier.
// Generation increases on every reset; replies started under an older
// generation are dropped.
type Session struct {
	ID         string     `json:"id"`
	Interest   string     `json:"interest"`
	Exchanges  []Exchange `json:"exchanges"`
	Generation int64      `json:"generation"`
}

func (s Session) clone() Session {
	out := s
	out.Exchanges = make([]Exchange, len(s.Exchanges))
	copy(out.Exchanges, s.Exchanges)
	return out
}

// SessionStore persists sessions between requests.
// Get returns domain.ErrNotFound for an unknown id.
type SessionStore interface {
	Get(ctx context.Context, id string) (Session, error)
	Put(ctx context.Context, s Session) error
}
