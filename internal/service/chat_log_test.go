package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-tracker/internal/domain"
	"github.com/pkordes/travel-tracker/internal/repo"
	"github.com/pkordes/travel-tracker/internal/service"
)

type mockChatLogRepo struct {
	create func(ctx context.Context, query, response string) (int64, error)
	list   func(ctx context.Context) ([]domain.ChatLog, error)
	delete func(ctx context.Context, id int64) error
}

func (m *mockChatLogRepo) Create(ctx context.Context, query, response string) (int64, error) {
	return m.create(ctx, query, response)
}
func (m *mockChatLogRepo) List(ctx context.Context) ([]domain.ChatLog, error) {
	return m.list(ctx)
}
func (m *mockChatLogRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

var _ repo.ChatLogRepo = (*mockChatLogRepo)(nil)

func TestChatLogService_Save(t *testing.T) {
	svc := service.NewChatLogService(&mockChatLogRepo{
		create: func(_ context.Context, _, _ string) (int64, error) { return 12, nil },
	})

	got, err := svc.Save(context.Background(), "Where to eat?", "- Here")

	require.NoError(t, err)
	assert.Equal(t, domain.ChatLog{ID: 12, Query: "Where to eat?", Response: "- Here"}, got)
}

func TestChatLogService_Save_BlankQuery(t *testing.T) {
	svc := service.NewChatLogService(&mockChatLogRepo{})

	_, err := svc.Save(context.Background(), "  ", "answer")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestChatLogService_Save_RepoError(t *testing.T) {
	repoErr := errors.New("locked")
	svc := service.NewChatLogService(&mockChatLogRepo{
		create: func(_ context.Context, _, _ string) (int64, error) { return 0, repoErr },
	})

	_, err := svc.Save(context.Background(), "q", "a")

	assert.ErrorIs(t, err, repoErr)
}

func TestChatLogService_List_NeverNil(t *testing.T) {
	svc := service.NewChatLogService(&mockChatLogRepo{
		list: func(_ context.Context) ([]domain.ChatLog, error) { return nil, nil },
	})

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestChatLogService_Remove(t *testing.T) {
	var removed int64
	svc := service.NewChatLogService(&mockChatLogRepo{
		delete: func(_ context.Context, id int64) error { removed = id; return nil },
	})

	require.NoError(t, svc.Remove(context.Background(), 5))
	assert.Equal(t, int64(5), removed)
}
