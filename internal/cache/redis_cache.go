package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/povarna/generative-ai-agents/aoc-solver/internal/puzzle"
	"github.com/redis/go-redis/v9"
)

const KeyPrefix = "aoc:answer:"

// RedisAnswerCache stores puzzle answers in Redis, keyed by a digest of the
// puzzle key and the normalized input.
type RedisAnswerCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisAnswerCache(client *redis.Client, ttl time.Duration) *RedisAnswerCache {
	return &RedisAnswerCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached answer. A missing key is a miss, not an error.
func (c *RedisAnswerCache) Get(ctx context.Context, key puzzle.Key, input string) (string, bool, error) {
	answer, err := c.client.Get(ctx, CacheKey(key, input)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read cached answer: %w", err)
	}
	return answer, true, nil
}

func (c *RedisAnswerCache) Set(ctx context.Context, key puzzle.Key, input string, answer string) error {
	if err := c.client.Set(ctx, CacheKey(key, input), answer, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache answer: %w", err)
	}
	return nil
}

// CacheKey is KeyPrefix followed by the hex SHA-256 of "day/part/variant"
// and the input, separated by a newline.
func CacheKey(key puzzle.Key, input string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%d/%d/%s\n", key.Day, key.Part, key.Variant)
	h.Write([]byte(input))
	return KeyPrefix + hex.EncodeToString(h.Sum(nil))
}
