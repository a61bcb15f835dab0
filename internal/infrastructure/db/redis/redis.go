package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// Config captures the settings for establishing a Redis connection. Addr is
// either host:port or a redis:// (rediss://) URL; a URL may carry its own
// credentials and database, in which case DB is ignored.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

func (c Config) options() (*redis.Options, error) {
	if strings.HasPrefix(c.Addr, "redis://") || strings.HasPrefix(c.Addr, "rediss://") {
		opts, err := redis.ParseURL(c.Addr)
		if err != nil {
			return nil, fmt.Errorf("redis url: %w", err)
		}
		return opts, nil
	}
	return &redis.Options{Addr: c.Addr, DB: c.DB}, nil
}

// Connect builds a client for the registration lock and pings it. The
// client is closed again when the ping fails.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	opts, err := cfg.options()
	if err != nil {
		return nil, err
	}
	opts.DialTimeout = timeout
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// Pinger adapts a client ping to a readiness check.
func Pinger(client *redis.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}
