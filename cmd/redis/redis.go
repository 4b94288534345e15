package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadheryan/student-marketplace/cmd/config"
	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

var client *redis.Client

// New connects the shared client used for sessions and send locks.
func New(cfg config.RedisConfig) error {
	c := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr(),
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return fmt.Errorf("ping redis at %s: %w", cfg.Addr(), err)
	}

	client = c
	return nil
}

// Get returns nil until New succeeds; repositories then behave as if Redis
// were disabled.
func Get() *redis.Client {
	return client
}

func Close() error {
	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	return err
}
