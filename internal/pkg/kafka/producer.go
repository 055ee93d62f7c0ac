package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"shipping/internal/entities"
	"shipping/internal/pkg/config"
	"shipping/pkg/logger"
)

// Producer публикует события смены статуса посылок. Ключ сообщения - id посылки,
// события одной посылки попадают в одну партицию.
type Producer struct {
	log      logger.Logger
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (*Producer, error) {
	saramaConfig, err := NewProducerConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, err
	}

	brokers := cfg.BrokerList()
	kafkaLog := log.With(logger.NewField("topic", cfg.Topic))

	if err := waitBrokers(ctx, kafkaLog, brokers, saramaConfig); err != nil {
		return nil, err
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("open sync producer: %w", err)
	}

	return WrapSyncProducer(kafkaLog, producer, cfg.Topic), nil
}

func WrapSyncProducer(log logger.Logger, producer sarama.SyncProducer, topic string) *Producer {
	return &Producer{
		log:      log,
		producer: producer,
		topic:    topic,
	}
}

func (p *Producer) PublishStatusChanged(ctx context.Context, event entities.ShipmentStatusChanged) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := EncodeStatusChanged(event)
	if err != nil {
		return fmt.Errorf("encode shipment status event: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.ShipmentID),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("send shipment %s status event: %w", event.ShipmentID, err)
	}

	p.log.Info("shipment status event published",
		logger.NewField("shipment", event.ShipmentID),
		logger.NewField("status", event.Status.String()),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	)
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
