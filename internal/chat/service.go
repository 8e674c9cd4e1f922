package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pkordes/travel-tracker/internal/assistant"
	"github.com/pkordes/travel-tracker/internal/domain"
)

// LogSaver persists an answered exchange. *service.ChatLogService satisfies it.
type LogSaver interface {
	Save(ctx context.Context, query, response string) (domain.ChatLog, error)
}

// Service drives chat sessions against the assistant gateway.
type Service struct {
	store   SessionStore
	gateway assistant.Gateway
	logs    LogSaver
	logger  zerolog.Logger

	// mu serialises read-modify-write cycles on the store. The gateway call
	// itself runs outside it.
	mu sync.Mutex
}

// NewService constructs the chat service. logs receives saved exchanges.
func NewService(store SessionStore, gateway assistant.Gateway, logs LogSaver, logger zerolog.Logger) *Service {
	return &Service{
		store:   store,
		gateway: gateway,
		logs:    logs,
		logger:  logger.With().Str("component", "chat").Logger(),
	}
}

// Start creates an empty session.
func (s *Service) Start(ctx context.Context) (Session, error) {
	sess := Session{ID: uuid.NewString(), Exchanges: []Exchange{}}
	if err := s.store.Put(ctx, sess); err != nil {
		return Session{}, fmt.Errorf("chat.Service.Start: %w", err)
	}
	return sess, nil
}

func (s *Service) Get(ctx context.Context, id string) (Session, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return Session{}, fmt.Errorf("chat.Service.Get: %w", err)
	}
	return sess, nil
}

// Send appends a pending exchange, asks the gateway and resolves that one
// entry with the reply. A gateway failure is not returned as an error: the
// entry gets FailureText and Failed, and earlier exchanges are untouched.
func (s *Service) Send(ctx context.Context, id, prompt, interest string) (Exchange, error) {
	if strings.TrimSpace(prompt) == "" {
		return Exchange{}, fmt.Errorf("chat.Service.Send: %w: prompt is required", domain.ErrValidation)
	}

	// In-flight calls are never cancelled; the gateway timeout bounds them.
	ctx = context.WithoutCancel(ctx)

	idx, gen, err := s.appendPending(ctx, id, prompt, interest)
	if err != nil {
		return Exchange{}, fmt.Errorf("chat.Service.Send: %w", err)
	}

	ex := Exchange{Prompt: prompt}
	reply, askErr := s.gateway.Ask(ctx, prompt, interest)
	switch {
	case askErr != nil:
		s.logger.Error().Err(askErr).Str("session_id", id).Msg("assistant call failed")
		ex.Response = FailureText
		ex.Failed = true
	case reply == "":
		ex.Response = EmptyResponseText
	default:
		ex.Response = reply
	}

	if err := s.resolve(ctx, id, idx, gen, ex); err != nil {
		return Exchange{}, fmt.Errorf("chat.Service.Send: %w", err)
	}
	return ex, nil
}

func (s *Service) appendPending(ctx context.Context, id, prompt, interest string) (int, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return 0, 0, err
	}
	sess.Interest = interest
	sess.Exchanges = append(sess.Exchanges, Exchange{Prompt: prompt, Response: Placeholder, Pending: true})
	if err := s.store.Put(ctx, sess); err != nil {
		return 0, 0, err
	}
	return len(sess.Exchanges) - 1, sess.Generation, nil
}

func (s *Service) resolve(ctx context.Context, id string, idx int, gen int64, ex Exchange) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if sess.Generation != gen || idx >= len(sess.Exchanges) {
		s.logger.Debug().Str("session_id", id).Msg("dropping reply for a reset session")
		return nil
	}
	sess.Exchanges[idx] = ex
	return s.store.Put(ctx, sess)
}

// Reset clears the history and the interest qualifier.
func (s *Service) Reset(ctx context.Context, id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return Session{}, fmt.Errorf("chat.Service.Reset: %w", err)
	}
	sess.Exchanges = []Exchange{}
	sess.Interest = ""
	sess.Generation++
	if err := s.store.Put(ctx, sess); err != nil {
		return Session{}, fmt.Errorf("chat.Service.Reset: %w", err)
	}
	return sess, nil
}

// SaveExchange stores the exchange at index as a chat log.
func (s *Service) SaveExchange(ctx context.Context, id string, index int) (domain.ChatLog, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return domain.ChatLog{}, fmt.Errorf("chat.Service.SaveExchange: %w", err)
	}
	if index < 0 || index >= len(sess.Exchanges) {
		return domain.ChatLog{}, fmt.Errorf("chat.Service.SaveExchange: exchange %d: %w", index, domain.ErrNotFound)
	}
	ex := sess.Exchanges[index]
	if ex.Pending {
		return domain.ChatLog{}, fmt.Errorf("chat.Service.SaveExchange: %w: exchange is still pending", domain.ErrValidation)
	}
	if ex.Failed {
		return domain.ChatLog{}, fmt.Errorf("chat.Service.SaveExchange: %w: exchange has no answer", domain.ErrValidation)
	}

	log, err := s.logs.Save(ctx, ex.Prompt, ex.Response)
	if err != nil {
		return domain.ChatLog{}, fmt.Errorf("chat.Service.SaveExchange: %w", err)
	}
	return log, nil
}
