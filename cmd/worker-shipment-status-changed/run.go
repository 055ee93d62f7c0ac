package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"shipping/internal/app"
	"shipping/internal/handlers/rest/healthcheck_head"
	"shipping/internal/pkg/config"
	"shipping/internal/pkg/grpcclient"
	"shipping/internal/pkg/kafka"
	"shipping/pkg/logger"
)

const (
	readinessDrainDelay = 5 * time.Second
	shutdownPeriod      = 15 * time.Second
)

//nolint:contextcheck // consumeCtx и shutdownCtx наследуются от context.Background()
func run(ctx context.Context, log logger.Logger, cfg *config.Worker) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Консьюмер стартует только после того, как реплика ответила SERVING.
	replica, err := grpcclient.DialReplicaHealth(ctx, log, &cfg.ReplicaHealth)
	if err != nil {
		return err
	}
	defer closeWith(log, "replica health connection", replica.Close)

	worker, err := app.InitializeStatusWorker(ctx, log, &http.Client{Timeout: cfg.Canister.CallTimeout}, cfg)
	if err != nil {
		return fmt.Errorf("assemble worker: %w", err)
	}

	consumer, err := kafka.NewConsumer(ctx, log, &cfg.Kafka, worker.Handler)
	if err != nil {
		return err
	}
	defer closeWith(log, "kafka consumer", consumer.Close)

	var draining atomic.Bool

	// consumeCtx переживает сигнал: сессия группы дочитывает текущий батч до Close.
	consumeCtx, stopConsuming := context.WithCancel(context.Background())
	defer stopConsuming()

	probe := &http.Server{
		Addr:              ":" + cfg.Kafka.PortHealthcheck,
		Handler:           probeRouter(&draining, replica.Check),
		BaseContext:       func(net.Listener) context.Context { return consumeCtx },
		ReadHeaderTimeout: 5 * time.Second, // gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	failed := make(chan error, 2)
	go func() {
		if err := probe.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			failed <- fmt.Errorf("probe server: %w", err)
		}
	}()
	go func() {
		if err := consumer.Run(consumeCtx); err != nil {
			failed <- err
		}
	}()

	log.Info("consuming shipment status events",
		logger.NewField("topic", cfg.Kafka.Topic),
		logger.NewField("group", cfg.Kafka.ConsumerGroup),
		logger.NewField("probe_port", cfg.Kafka.PortHealthcheck),
	)

	select {
	case <-ctx.Done():
	case err := <-failed:
		return err
	}

	log.Info("termination signal, draining")
	draining.Store(true)
	time.Sleep(readinessDrainDelay)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()
	if err := probe.Shutdown(shutdownCtx); err != nil {
		log.Warn("probe server shutdown", logger.NewField("error", err))
	}
	stopConsuming()

	log.Info("worker stopped")
	return nil
}

func probeRouter(draining *atomic.Bool, replicaHealth healthcheck_head.Check) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("HEAD /healthcheck", healthcheck_head.New(draining, replicaHealth))
	mux.Handle("GET /metrics", promhttp.Handler())
	return mux
}

func closeWith(log logger.Logger, what string, closeFn func() error) {
	if err := closeFn(); err != nil {
		log.Warn("close "+what, logger.NewField("error", err))
	}
}
