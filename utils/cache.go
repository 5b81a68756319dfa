// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"hdmonks/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AuthCacheClient is the dedicated client for the session registry.
var AuthCacheClient *redis.Client

// InitAuthCache connects the session registry client. A failed ping is
// logged, not fatal: session checks fall back to MongoDB.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := AuthCacheClient.Ping(ctx).Err(); err != nil {
		GetLogger().Warn("Redis auth cache unreachable, sessions will be checked against MongoDB", zap.Error(err))
	}
}

// GetAuthCacheClient returns the Redis client for session caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}
