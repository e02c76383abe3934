// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"luxesalon/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (booking sessions, reservation blobs).
	CacheClient *redis.Client
	// CodeCacheClient is the dedicated client for login verification codes.
	CodeCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client (using DB from AppConfig for general caching).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitCodeCache initializes the Redis client for login verification codes.
func InitCodeCache() {
	CodeCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCodeDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CodeCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Code Cache): %v", err)
	}
}

// GetCodeCacheClient returns the Redis client for login verification codes.
func GetCodeCacheClient() *redis.Client {
	if CodeCacheClient == nil {
		InitCodeCache()
	}
	return CodeCacheClient
}

// InitRedis initializes all Redis clients eagerly at startup.
func InitRedis() {
	InitCache()
	InitCodeCache()
}
