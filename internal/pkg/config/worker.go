package config

import "fmt"

type Worker struct {
	Kafka         Kafka
	Canister      Canister
	ReplicaHealth ReplicaHealth
}

func LoadWorker() (*Worker, error) {
	e := &env{}

	cfg := &Worker{
		Kafka: Kafka{
			Brokers:         e.str("KAFKA_BROKERS", ""),
			Topic:           e.str("KAFKA_TOPIC", ""),
			ConsumerGroup:   e.str("KAFKA_CONSUMER_GROUP", ""),
			PortHealthcheck: e.str("KAFKA_HTTP_HEALTHCHECK_PORT", ""),
			Sarama: Sarama{
				Version:                   e.str("KAFKA_SARAMA_VERSION", ""),
				ConsumerOffsetsAutocommit: e.bool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT", false),
			},
			Handlers: KafkaHandlers{
				ShipmentStatusChanged: ShipmentStatusChanged{
					ProcessTimeout: e.duration("KAFKA_HANDLER_SHIPMENT_STATUS_CHANGED_PROCESS_TIMEOUT", 0),
				},
			},
		},
		// Воркер ходит в локальную реплику, ее ключ берется из /api/v2/status.
		Canister: Canister{
			Host:         e.str("REPLICA_HOST", DefaultLocalHost),
			CanisterID:   e.str("CANISTER_ID_BACKEND", DefaultCanisterID),
			CallTimeout:  e.duration("CALL_TIMEOUT", defaultCallTimeout),
			FetchRootKey: true,
		},
		ReplicaHealth: ReplicaHealth{GRPCHost: e.str("REPLICA_GRPC_HEALTH_HOST", "")},
	}

	require(e, "KAFKA_BROKERS", cfg.Kafka.Brokers)
	require(e, "KAFKA_TOPIC", cfg.Kafka.Topic)
	require(e, "KAFKA_CONSUMER_GROUP", cfg.Kafka.ConsumerGroup)
	require(e, "KAFKA_HTTP_HEALTHCHECK_PORT", cfg.Kafka.PortHealthcheck)
	require(e, "KAFKA_SARAMA_VERSION", cfg.Kafka.Sarama.Version)
	require(e, "KAFKA_HANDLER_SHIPMENT_STATUS_CHANGED_PROCESS_TIMEOUT", cfg.Kafka.Handlers.ShipmentStatusChanged.ProcessTimeout)
	require(e, "REPLICA_GRPC_HEALTH_HOST", cfg.ReplicaHealth.GRPCHost)

	if err := e.err(); err != nil {
		return nil, fmt.Errorf("worker config: %w", err)
	}
	return cfg, nil
}
