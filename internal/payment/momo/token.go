package momo

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"
)

// TokenCache stores bearer tokens until shortly before they expire.
type TokenCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, token string, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

type memoryEntry struct {
	token     string
	expiresAt time.Time
}

type MemoryTokenCache struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]memoryEntry
}

func NewMemoryTokenCache() *MemoryTokenCache {
	return &MemoryTokenCache{
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (c *MemoryTokenCache) Get(_ context.Context, key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		return "", false
	}
	return e.token, true
}

func (c *MemoryTokenCache) Set(_ context.Context, key, token string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryEntry{token: token, expiresAt: c.now().Add(ttl)}
}

func (c *MemoryTokenCache) Delete(_ context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// RedisTokenCache shares one token across all instances. Redis failures
// degrade to a token exchange per call, never to a failed payment.
type RedisTokenCache struct {
	client *redis.Client
	logger logger.Logger
}

func NewRedisTokenCache(client *redis.Client, log logger.Logger) *RedisTokenCache {
	return &RedisTokenCache{client: client, logger: log}
}

func (c *RedisTokenCache) Get(ctx context.Context, key string) (string, bool) {
	token, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("token cache read failed", logger.String("error", err.Error()))
		}
		return "", false
	}
	return token, token != ""
}

func (c *RedisTokenCache) Set(ctx context.Context, key, token string, ttl time.Duration) {
	if err := c.client.Set(ctx, key, token, ttl).Err(); err != nil {
		c.logger.Warn("token cache write failed", logger.String("error", err.Error()))
	}
}

func (c *RedisTokenCache) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logger.Warn("token cache delete failed", logger.String("error", err.Error()))
	}
}
