package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadheryan/cart-reservation/cmd/config"
	"github.com/redis/go-redis/v9"
)

var client *redis.Client

const pingTimeout = 5 * time.Second

// New connects the client backing the hold snapshot store and verifies the
// server is reachable. Callers treat a failure as "run without persistence".
func New(cfg config.RedisConfig) error {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	c := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("unable to ping redis at %s: %w", addr, err)
	}

	client = c
	return nil
}

func Get() *redis.Client {
	return client
}

func Close() error {
	if client == nil {
		return nil
	}
	return client.Close()
}
