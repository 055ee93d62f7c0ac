package config

import (
	"strings"
	"time"
)

type (
	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter refill
		RateLimiterBurst int           // middleware rate limiter capacity
		PprofEnabled     bool
		PprofPort        string
	}

	GRPCHealth struct {
		Port string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	// Ingress параметры проверки подписанных конвертов на реплике.
	Ingress struct {
		CanisterID string
		Leeway     time.Duration
		RootKey    string
	}

	Tasks struct {
		StatsSnapshotInterval time.Duration
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		ShipmentStatusChanged ShipmentStatusChanged
	}

	ShipmentStatusChanged struct {
		ProcessTimeout time.Duration
	}

	// Canister адрес реплики для клиентов канистры.
	Canister struct {
		Host         string
		CanisterID   string
		CallTimeout  time.Duration
		FetchRootKey bool
	}

	ReplicaHealth struct {
		GRPCHost string
	}
)

// BrokerList брокеры из KAFKA_BROKERS через запятую.
func (k Kafka) BrokerList() []string {
	parts := strings.Split(k.Brokers, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}
