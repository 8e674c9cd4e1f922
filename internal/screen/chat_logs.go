package screen

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkordes/travel-tracker/internal/domain"
)

// ChatLogStore is satisfied by *service.ChatLogService.
type ChatLogStore interface {
	List(ctx context.Context) ([]domain.ChatLog, error)
	Remove(ctx context.Context, id int64) error
}

// ChatLogsScreen lists saved assistant answers.
type ChatLogsScreen struct {
	store ChatLogStore
	guard Guard

	mu   sync.Mutex
	logs []domain.ChatLog
}

// NewChatLogsScreen returns an empty saved-logs screen backed by store.
func NewChatLogsScreen(store ChatLogStore) *ChatLogsScreen {
	return &ChatLogsScreen{store: store, logs: []domain.ChatLog{}}
}

func (s *ChatLogsScreen) Logs() []domain.ChatLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.ChatLog{}, s.logs...)
}

func (s *ChatLogsScreen) Refresh(ctx context.Context) error {
	ticket := s.guard.Begin()
	logs, err := s.store.List(ctx)
	if err != nil {
		return fmt.Errorf("screen.ChatLogsScreen.Refresh: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.guard.Current(ticket) {
		s.logs = logs
	}
	return nil
}

// Remove deletes a log and drops it from the local list. A failed delete
// leaves the list as it was.
func (s *ChatLogsScreen) Remove(ctx context.Context, id int64) error {
	if err := s.store.Remove(ctx, id); err != nil {
		return fmt.Errorf("screen.ChatLogsScreen.Remove: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := make([]domain.ChatLog, 0, len(s.logs))
	for _, l := range s.logs {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	s.logs = kept
	return nil
}
