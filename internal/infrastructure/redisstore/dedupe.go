package redisstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 7 * 24 * time.Hour

// Dedupe records processed ledger logs in Redis.
type Dedupe struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewDedupe(client redis.UniversalClient, ttl time.Duration) *Dedupe {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Dedupe{client: client, ttl: ttl}
}

// Connect parses url and pings the server.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(strings.TrimSpace(url))
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (d *Dedupe) Seen(ctx context.Context, key string) (bool, error) {
	n, err := d.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (d *Dedupe) Mark(ctx context.Context, key string) error {
	return d.client.SetNX(ctx, key, time.Now().UTC().Unix(), d.ttl).Err()
}

// Noop is used when no Redis is configured.
type Noop struct{}

func (Noop) Seen(context.Context, string) (bool, error) { return false, nil }
func (Noop) Mark(context.Context, string) error         { return nil }
