package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"shipping/internal/pkg/config"
	"shipping/pkg/logger"
	"shipping/pkg/retrier"
	"shipping/pkg/retrier/backoff_adapter"
)

// NewClient клиент хранилища nonce. Возвращается после успешного PING.
func NewClient(ctx context.Context, log logger.Logger, cfg *config.Redis) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	r := backoff_adapter.New(retrier.DialConfig(time.Second))
	probe := func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}

	if err := retrier.Connect(ctx, r, log.With(logger.NewField("addr", cfg.Addr)), "redis", probe); err != nil {
		return nil, errors.Join(err, client.Close())
	}

	return client, nil
}

// Ping для healthcheck реплики.
func Ping(client *goredis.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis ping: %w", err)
		}
		return nil
	}
}
