package redisStore

import (
	"context"
	"time"
)

func (s *Store) ListPush(ctx context.Context, key string, value interface{}) error {
	return s.client.RPush(ctx, key, value).Err()
}

// ListTrimTail keeps only the newest maxLen entries of a list.
func (s *Store) ListTrimTail(ctx context.Context, key string, maxLen int64) error {
	return s.client.LTrim(ctx, key, -maxLen, -1).Err()
}

func (s *Store) ListGetTail(ctx context.Context, key string, count int64) ([]string, error) {
	if count < 1 {
		return []string{}, nil
	}
	return s.client.LRange(ctx, key, -count, -1).Result()
}

func (s *Store) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return s.client.Expire(ctx, key, ttl).Err()
}
