package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"shipping/internal/handlers/rest/healthcheck_head"
	"shipping/internal/pkg/config"
	"shipping/internal/pkg/kafka"
	"shipping/internal/pkg/postgres"
	"shipping/internal/pkg/redis"
	"shipping/pkg/logger"
)

// infra внешние зависимости реплики, закрываются в обратном порядке.
type infra struct {
	pool     *pgxpool.Pool
	redis    *goredis.Client
	producer *kafka.Producer
}

func openInfra(ctx context.Context, log logger.Logger, cfg *config.Replica) (*infra, error) {
	var (
		deps infra
		err  error
	)

	deps.pool, err = postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return nil, err
	}
	if err = postgres.Migrate(ctx, deps.pool); err != nil {
		deps.close(log)
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	deps.redis, err = redis.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		deps.close(log)
		return nil, err
	}

	deps.producer, err = kafka.NewProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		deps.close(log)
		return nil, err
	}

	return &deps, nil
}

func (i *infra) close(log logger.Logger) {
	var errs []error
	if i.producer != nil {
		errs = append(errs, i.producer.Close())
	}
	if i.redis != nil {
		errs = append(errs, i.redis.Close())
	}
	if i.pool != nil {
		i.pool.Close()
	}

	if err := errors.Join(errs...); err != nil {
		log.Warn("infra closed with errors", logger.NewField("error", err))
	}
}

func (i *infra) healthChecks() []healthcheck_head.Check {
	return []healthcheck_head.Check{
		i.pool.Ping,
		redis.Ping(i.redis),
	}
}
