// Package watermark implements the per-session polling watermark store.
package watermark

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"helpdesk/internal/shared/config"
)

const (
	keyPrefix = "helpdesk:watermark:"
	// Watermarks outlive idle sessions a little; a lapsed entry just
	// re-baselines the next poll.
	ttl = 24 * time.Hour
)

// RedisStore keeps watermarks in redis so they survive process restarts
// and are shared across replicas.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(cfg *config.RedisConfig) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.GetAddr(),
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (time.Time, bool, error) {
	val, err := s.client.Get(ctx, keyPrefix+sessionID).Int64()
	if err == redis.Nil {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to read watermark: %w", err)
	}
	return time.UnixMilli(val), true, nil
}

func (s *RedisStore) Set(ctx context.Context, sessionID string, t time.Time) error {
	if err := s.client.Set(ctx, keyPrefix+sessionID, t.UnixMilli(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to write watermark: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
