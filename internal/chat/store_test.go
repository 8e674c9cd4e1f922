package chat_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-tracker/internal/chat"
	"github.com/pkordes/travel-tracker/internal/domain"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*chat.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err, "start miniredis")
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return chat.NewRedisStore(rdb, ttl), mr
}

// stores runs the shared contract against both implementations.
func stores(t *testing.T) map[string]chat.SessionStore {
	rs, _ := newRedisStore(t, time.Hour)
	return map[string]chat.SessionStore{
		"memory": chat.NewMemoryStore(),
		"redis":  rs,
	}
}

func TestSessionStore_PutGet(t *testing.T) {
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			in := chat.Session{
				ID:         "s1",
				Interest:   "museums",
				Generation: 2,
				Exchanges: []chat.Exchange{
					{Prompt: "Paris?", Response: "- Louvre"},
					{Prompt: "Rome?", Response: chat.Placeholder, Pending: true},
				},
			}
			require.NoError(t, st.Put(ctx, in))

			got, err := st.Get(ctx, "s1")

			require.NoError(t, err)
			assert.Equal(t, in, got)
		})
	}
}

func TestSessionStore_GetUnknown(t *testing.T) {
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := st.Get(context.Background(), "missing")
			assert.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	st := chat.NewMemoryStore()
	require.NoError(t, st.Put(ctx, chat.Session{ID: "s1", Exchanges: []chat.Exchange{{Prompt: "a"}}}))

	got, err := st.Get(ctx, "s1")
	require.NoError(t, err)
	got.Exchanges[0].Prompt = "mutated"

	again, err := st.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "a", again.Exchanges[0].Prompt)
}

func TestRedisStore_Expires(t *testing.T) {
	ctx := context.Background()
	st, mr := newRedisStore(t, time.Minute)
	require.NoError(t, st.Put(ctx, chat.Session{ID: "s1", Exchanges: []chat.Exchange{}}))

	mr.FastForward(2 * time.Minute)

	_, err := st.Get(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRedisStore_EmptyHistoryDecodesNonNil(t *testing.T) {
	ctx := context.Background()
	st, mr := newRedisStore(t, time.Minute)
	require.NoError(t, mr.Set("travel:chat:session:s1", `{"id":"s1","exchanges":null}`))

	got, err := st.Get(ctx, "s1")

	require.NoError(t, err)
	assert.NotNil(t, got.Exchanges)
}
