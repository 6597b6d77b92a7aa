// Package cache provides the Redis-backed catalog cache.
package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ClientConfig holds configuration for the Redis client.
type ClientConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewClient creates a Redis client and verifies connectivity.
func NewClient(ctx context.Context, cfg ClientConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}
