package postgres

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"shipping/internal/pkg/config"
	"shipping/pkg/logger"
	"shipping/pkg/retrier"
	"shipping/pkg/retrier/backoff_adapter"
)

// Реплика держит небольшой пул: запись идет одним dispatcher'ом.
const (
	poolMaxConns     int32 = 10
	poolMinConns     int32 = 2
	poolConnLifetime       = time.Hour
	poolIdleTime           = 10 * time.Minute
)

// NewConnPool открывает пул и ждет, пока база начнет отвечать.
func NewConnPool(ctx context.Context, log logger.Logger, cfg *config.Database) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(ConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}
	poolCfg.MaxConns = poolMaxConns
	poolCfg.MinConns = poolMinConns
	poolCfg.MaxConnLifetime = poolConnLifetime
	poolCfg.MaxConnIdleTime = poolIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}

	pgLog := log.With(
		logger.NewField("host", cfg.Host),
		logger.NewField("db", cfg.DBName),
	)
	r := backoff_adapter.New(retrier.DialConfig(2 * time.Second))

	if err := retrier.Connect(ctx, r, pgLog, "postgres", pool.Ping); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// ConnString собирает DSN. Логин и пароль экранируются.
func ConnString(cfg *config.Database) string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     cfg.Host + ":" + cfg.Port,
		Path:     "/" + cfg.DBName,
		RawQuery: url.Values{"sslmode": []string{cfg.SSLMode}}.Encode(),
	}
	return dsn.String()
}
