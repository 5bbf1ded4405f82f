package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	opTimeout = 5 * time.Second

	// KeyPrefix namespaces search responses, e.g. "spotify:artist,album:AC/DC".
	KeyPrefix = "spotify:"
)

var (
	ErrCacheMiss = errors.New("cache: key not found")
)

// Cache stores raw search responses in redis under KeyPrefix.
type Cache struct {
	redisClient *redis.Client
	defaultTTL  time.Duration
}

func NewCache(
	redisClient *redis.Client,
	defaultTTL time.Duration,
) *Cache {
	return &Cache{
		redisClient: redisClient,
		defaultTTL:  defaultTTL,
	}
}

// Get returns the response stored for key, which is "<types>:<query>".
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	body, err := c.redisClient.Get(ctx, KeyPrefix+key).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return "", ErrCacheMiss
	case err != nil:
		return "", err
	case body == "":
		// an empty body is never a valid search response
		return "", ErrCacheMiss
	}

	return body, nil
}

// Set falls back to the default TTL when ttl is zero. Empty bodies are skipped.
func (c *Cache) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	if len(body) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if ttl == 0 {
		ttl = c.defaultTTL
	}

	return c.redisClient.Set(ctx, KeyPrefix+key, body, ttl).Err()
}
