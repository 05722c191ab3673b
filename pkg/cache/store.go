package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// WindowCounter counts hits per key inside a fixed window. Used by the rate limiter.
type WindowCounter struct {
	client *redis.Client
}

func NewWindowCounter(client *redis.Client) *WindowCounter {
	return &WindowCounter{client: client}
}

func (w *WindowCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := w.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		w.client.Expire(ctx, key, window)
	}
	return count, nil
}

// SessionStore records revoked admin session ids until their token would have expired.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func sessionKey(id string) string {
	return fmt.Sprintf("admin_session:revoked:%s", id)
}

func (s *SessionStore) Revoke(ctx context.Context, id string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, sessionKey(id), "1", ttl).Err()
}

func (s *SessionStore) IsRevoked(ctx context.Context, id string) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKey(id)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
