package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResetNonceStore records consumed password-reset nonces in Redis.
// Key format: reset_nonce:<nonce>
type ResetNonceStore struct {
	client *redis.Client
}

// NewResetNonceStore creates a ResetNonceStore wrapping the given Redis client.
func NewResetNonceStore(client *redis.Client) *ResetNonceStore {
	return &ResetNonceStore{client: client}
}

// Consume atomically marks nonce as used and reports whether it already was.
// SETNX makes check-and-mark a single operation: of two concurrent resets
// with the same token, exactly one wins. The key expires after ttl, once the
// token itself can no longer verify.
func (s *ResetNonceStore) Consume(ctx context.Context, nonce string, ttl time.Duration) (bool, error) {
	set, err := s.client.SetNX(ctx, s.key(nonce), "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("consume reset nonce: %w", err)
	}
	return !set, nil
}

func (s *ResetNonceStore) key(nonce string) string {
	return fmt.Sprintf("reset_nonce:%s", nonce)
}
