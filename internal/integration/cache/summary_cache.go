// Package cache implements cache adapters backed by Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kakeibo/backend/internal/application/adapter"
)

const summaryKeyPrefix = "summary:"

// summaryCache implements adapter.SummaryCache on top of Redis. Entries
// expire after the configured TTL; invalidation on writes keeps readers
// from serving stale months before that.
type summaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSummaryCache creates a new Redis-backed summary cache instance.
func NewSummaryCache(client *redis.Client, ttl time.Duration) adapter.SummaryCache {
	return &summaryCache{
		client: client,
		ttl:    ttl,
	}
}

// Get retrieves the cached payload for a month.
func (c *summaryCache) Get(ctx context.Context, month string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, summaryKeyPrefix+month).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read summary cache: %w", err)
	}
	return payload, true, nil
}

// Set stores the payload for a month.
func (c *summaryCache) Set(ctx context.Context, month string, payload []byte) error {
	if err := c.client.Set(ctx, summaryKeyPrefix+month, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write summary cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached payloads for the given months.
func (c *summaryCache) Invalidate(ctx context.Context, months ...string) error {
	if len(months) == 0 {
		return nil
	}

	keys := make([]string, len(months))
	for i, m := range months {
		keys[i] = summaryKeyPrefix + m
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate summary cache: %w", err)
	}
	return nil
}
