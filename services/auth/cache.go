package auth

import (
	"context"
	"errors"
	"time"

	"hdmonks/models"
	"hdmonks/utils"

	"github.com/go-redis/redis/v8"
)

// SessionCache remembers which token hashes are live so most requests skip
// the principal lookup. MongoDB stays authoritative.
type SessionCache interface {
	Set(ctx context.Context, role models.Role, tokenHash, principalID string, ttl time.Duration) error
	// Get returns "" on a miss.
	Get(ctx context.Context, role models.Role, tokenHash string) (string, error)
	Delete(ctx context.Context, role models.Role, tokenHash string) error
}

// RedisSessionCache stores session:<role>:<hash> -> principal id.
type RedisSessionCache struct {
	Client *redis.Client
}

func NewRedisSessionCache(client *redis.Client) *RedisSessionCache {
	return &RedisSessionCache{Client: client}
}

func cacheKey(role models.Role, tokenHash string) string {
	return utils.SessionCachePrefix + string(role) + ":" + tokenHash
}

func (c *RedisSessionCache) Set(ctx context.Context, role models.Role, tokenHash, principalID string, ttl time.Duration) error {
	return c.Client.Set(ctx, cacheKey(role, tokenHash), principalID, ttl).Err()
}

func (c *RedisSessionCache) Get(ctx context.Context, role models.Role, tokenHash string) (string, error) {
	id, err := c.Client.Get(ctx, cacheKey(role, tokenHash)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return id, err
}

func (c *RedisSessionCache) Delete(ctx context.Context, role models.Role, tokenHash string) error {
	return c.Client.Del(ctx, cacheKey(role, tokenHash)).Err()
}

// NopSessionCache always misses.
type NopSessionCache struct{}

func (NopSessionCache) Set(context.Context, models.Role, string, string, time.Duration) error {
	return nil
}

func (NopSessionCache) Get(context.Context, models.Role, string) (string, error) { return "", nil }

func (NopSessionCache) Delete(context.Context, models.Role, string) error { return nil }
