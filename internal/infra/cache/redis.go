// Package cache provides the Redis connection used for short-lived caching.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/farm-manager/backend/config"
)

// NewRedisClient connects to Redis and verifies the connection with a ping.
// A URL without a scheme is treated as a plain host:port address.
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		opt = &redis.Options{
			Addr: cfg.URL,
			DB:   cfg.DB,
		}
	}
	if cfg.Password != "" {
		opt.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opt.DB = cfg.DB
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	slog.Info("Redis connection established", "addr", opt.Addr, "db", opt.DB)

	return client, nil
}

// HealthCheck reports whether client answers a ping within two seconds.
func HealthCheck(ctx context.Context, client *redis.Client) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		slog.WarnContext(ctx, "Redis health check failed", "error", err)
		return false
	}
	return true
}
