// Package redis provides the post service's Redis connection and the
// validated-principal cache that fronts remote token validation.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultTimeout = 5 * time.Second
	defaultAddr    = "localhost:6379"
	clientName     = "bloghub-postservice"
)

// Config captures the settings for establishing a Redis connection.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect initialises a Redis client and validates connectivity with a ping.
// Zero-value fields fall back to the local development defaults. The post
// service treats a failed connect as a degradation, not a startup error.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	addr := cfg.Addr
	if addr == "" {
		addr = defaultAddr
	}

	client := redis.NewClient(&redis.Options{
		Addr:       addr,
		DB:         cfg.DB,
		ClientName: clientName,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
