package database

import (
	"context"
	"time"

	"venue-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// InitRedis creates a Redis client for venue caching.
// Returns nil when REDIS_URL is not configured, caching is optional.
func InitRedis(config utils.RedisConfig, logger *zap.Logger) (*redis.Client, error) {
	if config.URL == "" {
		logger.Info("Redis URL not configured, venue cache disabled")
		return nil, nil
	}

	opt, err := redis.ParseURL(config.URL)
	if err != nil {
		return nil, err
	}

	opt.PoolSize = 20
	opt.MinIdleConns = 5
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	logger.Info("Redis connected successfully")
	return client, nil
}

// CloseRedis closes the Redis connection if one was opened
func CloseRedis(client *redis.Client, logger *zap.Logger) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		logger.Error("Failed to close Redis connection", zap.Error(err))
	}
}
