package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"shipping/internal/pkg/config"
	"shipping/pkg/logger"
	"shipping/pkg/retrier"
	"shipping/pkg/retrier/backoff_adapter"
)

// NewProducerConfig идемпотентный синхронный продюсер с подтверждением от всех реплик.
func NewProducerConfig(version string) (*sarama.Config, error) {
	cfg, err := baseConfig(version, "shipping-replica")
	if err != nil {
		return nil, err
	}

	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Return.Successes = true
	cfg.Net.MaxOpenRequests = 1

	return cfg, nil
}

// NewConsumerConfig читает топик с самого старого оффсета, партиции раздаются round-robin.
func NewConsumerConfig(sc config.Sarama) (*sarama.Config, error) {
	cfg, err := baseConfig(sc.Version, "shipping-status-worker")
	if err != nil {
		return nil, err
	}

	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	cfg.Consumer.Offsets.AutoCommit.Enable = sc.ConsumerOffsetsAutocommit
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{
		sarama.NewBalanceStrategyRoundRobin(),
	}

	return cfg, nil
}

func baseConfig(version, clientID string) (*sarama.Config, error) {
	v, err := sarama.ParseKafkaVersion(version)
	if err != nil {
		return nil, fmt.Errorf("kafka version %q: %w", version, err)
	}

	cfg := sarama.NewConfig()
	cfg.Version = v
	cfg.ClientID = clientID
	return cfg, nil
}

// waitBrokers ждет, пока брокеры начнут отдавать метаданные топиков.
func waitBrokers(ctx context.Context, log logger.Logger, brokers []string, cfg *sarama.Config) error {
	r := backoff_adapter.New(retrier.DialConfig(time.Second))

	return retrier.Connect(ctx, r, log, "kafka", func(context.Context) error {
		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}
		defer client.Close() //nolint:errcheck // пробное соединение

		_, err = client.Topics()
		return err
	})
}
