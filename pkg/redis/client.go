package redis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	client     *redis.Client
	clientOnce sync.Once
	clientErr  error
)

// Client returns the singleton Redis client instance.
// Returns nil if Redis is not configured or connection failed.
func Client() *redis.Client {
	return client
}

// Initialize initializes the Redis client from a redis:// or rediss://
// URL. Should be called once at application startup; safe for concurrent
// calls, only the first one initializes.
func Initialize(rawURL, password string) error {
	clientOnce.Do(func() {
		if rawURL == "" {
			clientErr = errors.New("redis: REDIS_URL not configured")
			return
		}

		opts, err := redis.ParseURL(rawURL)
		if err != nil {
			clientErr = fmt.Errorf("redis: invalid URL: %w", err)
			return
		}

		if password != "" {
			opts.Password = password
		}
		opts.DialTimeout = 5 * time.Second
		opts.ReadTimeout = 3 * time.Second
		opts.WriteTimeout = 3 * time.Second
		opts.PoolSize = 10
		opts.MinIdleConns = 2

		c := redis.NewClient(opts)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := c.Ping(ctx).Err(); err != nil {
			clientErr = fmt.Errorf("redis: connection failed: %w", err)
			_ = c.Close()
			return
		}
		client = c
	})

	return clientErr
}

// Close closes the Redis connection gracefully.
func Close() error {
	if client != nil {
		return client.Close()
	}
	return nil
}
