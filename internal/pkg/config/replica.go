package config

import (
	"fmt"
	"time"
)

const defaultIngressLeeway = 30 * time.Second

type Replica struct {
	Server   HTTPServer
	GRPC     GRPCHealth
	Database Database
	Redis    Redis
	Ingress  Ingress
	Tasks    Tasks
	Kafka    Kafka
}

func LoadReplica() (*Replica, error) {
	e := &env{}

	cfg := &Replica{
		Server: HTTPServer{
			Port:             e.str("PORT", ""),
			RequestTimeout:   e.duration("MIDDLEWARE_REQUEST_TIMEOUT", 0),
			RateLimiterQPS:   e.int("MIDDLEWARE_RATE_LIMIT_QPS", 0),
			RateLimiterBurst: e.int("MIDDLEWARE_RATE_LIMIT_BURST", 0),
			PprofEnabled:     e.bool("PPROF_ENABLED", false),
			PprofPort:        e.str("PPROF_PORT", ""),
		},
		GRPC:     GRPCHealth{Port: e.str("GRPC_HEALTH_PORT", "")},
		Database: loadDatabase(e),
		Redis: Redis{
			Addr:     e.str("REDIS_ADDR", ""),
			Password: e.str("REDIS_PASSWORD", ""),
			DB:       e.int("REDIS_DB", 0),
		},
		Ingress: Ingress{
			CanisterID: e.str("CANISTER_ID_BACKEND", DefaultCanisterID),
			Leeway:     e.duration("INGRESS_LEEWAY", defaultIngressLeeway),
			RootKey:    e.str("REPLICA_ROOT_KEY", ""),
		},
		Tasks: Tasks{
			StatsSnapshotInterval: e.duration("BACKGROUND_STATS_SNAPSHOT_INTERVAL", 0),
		},
		Kafka: Kafka{
			Brokers: e.str("KAFKA_BROKERS", ""),
			Topic:   e.str("KAFKA_TOPIC", ""),
			Sarama:  Sarama{Version: e.str("KAFKA_SARAMA_VERSION", "")},
		},
	}

	require(e, "PORT", cfg.Server.Port)
	require(e, "MIDDLEWARE_REQUEST_TIMEOUT", cfg.Server.RequestTimeout)
	require(e, "MIDDLEWARE_RATE_LIMIT_QPS", cfg.Server.RateLimiterQPS)
	require(e, "MIDDLEWARE_RATE_LIMIT_BURST", cfg.Server.RateLimiterBurst)
	e.check(!cfg.Server.PprofEnabled || cfg.Server.PprofPort != "", "PPROF_PORT is required when PPROF_ENABLED")
	require(e, "GRPC_HEALTH_PORT", cfg.GRPC.Port)
	require(e, "REDIS_ADDR", cfg.Redis.Addr)
	require(e, "REPLICA_ROOT_KEY", cfg.Ingress.RootKey)
	require(e, "BACKGROUND_STATS_SNAPSHOT_INTERVAL", cfg.Tasks.StatsSnapshotInterval)
	require(e, "KAFKA_BROKERS", cfg.Kafka.Brokers)
	require(e, "KAFKA_TOPIC", cfg.Kafka.Topic)
	require(e, "KAFKA_SARAMA_VERSION", cfg.Kafka.Sarama.Version)

	if err := e.err(); err != nil {
		return nil, fmt.Errorf("replica config: %w", err)
	}
	return cfg, nil
}

func loadDatabase(e *env) Database {
	db := Database{
		Host:     e.str("POSTGRES_HOST", ""),
		Port:     e.str("POSTGRES_PORT", "5432"),
		User:     e.str("POSTGRES_USER", ""),
		Password: e.str("POSTGRES_PASSWORD", ""),
		DBName:   e.str("POSTGRES_DB", ""),
		SSLMode:  e.str("POSTGRES_SSLMODE", "disable"),
	}

	require(e, "POSTGRES_HOST", db.Host)
	require(e, "POSTGRES_USER", db.User)
	require(e, "POSTGRES_PASSWORD", db.Password)
	require(e, "POSTGRES_DB", db.DBName)
	return db
}
