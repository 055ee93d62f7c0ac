package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/IBM/sarama"
	"shipping/internal/pkg/config"
	"shipping/pkg/logger"
)

// Consumer читает события смены статуса в составе consumer group.
type Consumer struct {
	log     logger.Logger
	group   sarama.ConsumerGroup
	topic   string
	handler sarama.ConsumerGroupHandler
}

func NewConsumer(ctx context.Context, log logger.Logger, cfg *config.Kafka, handler sarama.ConsumerGroupHandler) (*Consumer, error) {
	saramaConfig, err := NewConsumerConfig(cfg.Sarama)
	if err != nil {
		return nil, err
	}

	brokers := cfg.BrokerList()
	log = log.With(
		logger.NewField("group", cfg.ConsumerGroup),
		logger.NewField("topic", cfg.Topic),
	)

	if err := waitBrokers(ctx, log, brokers, saramaConfig); err != nil {
		return nil, err
	}

	group, err := sarama.NewConsumerGroup(brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("join consumer group %s: %w", cfg.ConsumerGroup, err)
	}

	return &Consumer{
		log:     log,
		group:   group,
		topic:   cfg.Topic,
		handler: handler,
	}, nil
}

// Run крутит сессии группы: Consume возвращается на каждом ребалансе.
// Отмена ctx и закрытие группы считаются штатной остановкой.
func (c *Consumer) Run(ctx context.Context) error {
	for session := 1; ; session++ {
		err := c.group.Consume(ctx, []string{c.topic}, c.handler)
		switch {
		case errors.Is(err, sarama.ErrClosedConsumerGroup), ctx.Err() != nil:
			c.log.Info("consumer group left", logger.NewField("sessions", session))
			return nil
		case err != nil:
			return fmt.Errorf("consume %s: %w", c.topic, err)
		}
	}
}

func (c *Consumer) Close() error {
	return c.group.Close()
}
