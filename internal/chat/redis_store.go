package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pkordes/travel-tracker/internal/domain"
)

// RedisStore keeps sessions as JSON values that expire after ttl without use.
type RedisStore struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewRedisStore stores sessions in rdb; each Put refreshes the ttl.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{redis: rdb, ttl: ttl}
}

func (r *RedisStore) key(id string) string {
	return "travel:chat:session:" + id
}

func (r *RedisStore) Get(ctx context.Context, id string) (Session, error) {
	raw, err := r.redis.Get(ctx, r.key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return Session{}, fmt.Errorf("chat.RedisStore.Get: %w", domain.ErrNotFound)
	}
	if err != nil {
		return Session{}, fmt.Errorf("chat.RedisStore.Get: %w", err)
	}
	var s Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return Session{}, fmt.Errorf("chat.RedisStore.Get: decode: %w", err)
	}
	if s.Exchanges == nil {
		s.Exchanges = []Exchange{}
	}
	return s, nil
}

func (r *RedisStore) Put(ctx context.Context, s Session) error {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("chat.RedisStore.Put: encode: %w", err)
	}
	if err := r.redis.Set(ctx, r.key(s.ID), b, r.ttl).Err(); err != nil {
		return fmt.Errorf("chat.RedisStore.Put: %w", err)
	}
	return nil
}
