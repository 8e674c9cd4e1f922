package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkordes/travel-tracker/internal/domain"
	"github.com/pkordes/travel-tracker/internal/repo"
)

// ChatLogService implements business logic for saved assistant exchanges.
type ChatLogService struct {
	repo repo.ChatLogRepo
}

// NewChatLogService constructs a ChatLogService backed by the provided ChatLogRepo.
func NewChatLogService(r repo.ChatLogRepo) *ChatLogService {
	return &ChatLogService{repo: r}
}

// Save persists one question/answer pair.
func (s *ChatLogService) Save(ctx context.Context, query, response string) (domain.ChatLog, error) {
	if strings.TrimSpace(query) == "" {
		return domain.ChatLog{}, fmt.Errorf("service.ChatLogService.Save: %w: query is required", domain.ErrValidation)
	}

	id, err := s.repo.Create(ctx, query, response)
	if err != nil {
		return domain.ChatLog{}, fmt.Errorf("service.ChatLogService.Save: %w", err)
	}
	return domain.ChatLog{ID: id, Query: query, Response: response}, nil
}

// List returns every saved pair in store order. Never nil.
func (s *ChatLogService) List(ctx context.Context) ([]domain.ChatLog, error) {
	logs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ChatLogService.List: %w", err)
	}
	if logs == nil {
		logs = []domain.ChatLog{}
	}
	return logs, nil
}

// Remove deletes one pair. Removing an id that does not exist succeeds.
func (s *ChatLogService) Remove(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ChatLogService.Remove: %w", err)
	}
	return nil
}
