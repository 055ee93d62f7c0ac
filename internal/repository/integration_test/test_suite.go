package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"shipping/internal/pkg/config"
	"shipping/internal/pkg/postgres"
	"shipping/pkg/logger/zap_adapter"
	"shipping/pkg/querier"
)

const postgresImage = "postgres:16-alpine"

var (
	querierInstance *querier.Querier
	querierOnce     sync.Once
)

// GetQuerier пул на мигрированной базе. POSTGRES_HOST из окружения (Makefile) имеет приоритет,
// без него поднимается контейнер testcontainers, один на пакет.
func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter(zap_adapter.WithLevel("warn"))
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			_ = zapLogger.Sync()
		}()

		cfg := databaseFromEnv()
		if cfg.Host == "" {
			cfg, err = startContainer(ctx)
			if err != nil {
				log.Fatalf("failed to start postgres container: %v", err)
			}
		}

		connPool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			log.Fatalf("failed to connect postgres: %v", err)
		}

		if err := postgres.Migrate(ctx, connPool); err != nil {
			log.Fatalf("failed to migrate postgres: %v", err)
		}

		querierInstance = querier.New(connPool)
	})

	return querierInstance
}

func databaseFromEnv() *config.Database {
	return &config.Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
}

func startContainer(ctx context.Context) (*config.Database, error) {
	ctr, err := tcpostgres.Run(ctx, postgresImage,
		tcpostgres.WithDatabase("shipping_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	host, err := ctr.Host(ctx)
	if err != nil {
		return nil, err
	}
	port, err := ctr.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return nil, err
	}

	return &config.Database{
		Host:     host,
		Port:     port.Port(),
		User:     "postgres",
		Password: "postgres",
		DBName:   "shipping_test",
		SSLMode:  "disable",
	}, nil
}

func SetupDB(t *testing.T, setupSql string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE tracking_events, return_requests, shipments, drivers, users RESTART IDENTITY CASCADE;
		ALTER SEQUENCE shipment_number_seq RESTART WITH 1;
		ALTER SEQUENCE return_request_number_seq RESTART WITH 1;
	`)
	require.NoError(t, err)
}
