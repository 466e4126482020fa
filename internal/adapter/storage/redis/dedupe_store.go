package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DedupeStore implements ports.DedupeStore using Redis SET NX, keyed by
// the host chain transfer id.
type DedupeStore struct {
	client *goredis.Client
	prefix string
}

// NewDedupeStore creates a new Redis-backed deposit dedupe store.
func NewDedupeStore(client *goredis.Client) *DedupeStore {
	return &DedupeStore{
		client: client,
		prefix: "deposit:",
	}
}

// CheckAndSet atomically records a transfer id if unseen.
// Returns true if the id is new, false if the deposit was already processed.
func (s *DedupeStore) CheckAndSet(ctx context.Context, transferID string, ttl time.Duration) (bool, error) {
	key := s.prefix + transferID
	result, err := s.client.SetArgs(ctx, key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("redis deposit dedupe: %w", err)
	}
	return result == "OK", nil
}
