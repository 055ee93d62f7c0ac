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

	application "shipping/internal/app"
	"shipping/internal/pkg/config"
	"shipping/internal/pkg/grpcserver"
	"shipping/pkg/logger"
)

const (
	readinessDrainDelay = 5 * time.Second
	shutdownPeriod      = 15 * time.Second
	shutdownHardPeriod  = 3 * time.Second
)

// listeners все, что реплика слушает: REST, pprof и grpc health.
type listeners struct {
	http     []*http.Server
	health   *grpcserver.HealthServer
	draining atomic.Bool

	// ongoing живет дольше сигнала: отменяется после Shutdown, чтобы in-flight вызовы доработали.
	ongoing       context.Context
	cancelOngoing context.CancelFunc
}

//nolint:contextcheck // ongoing и shutdown контексты наследуются от context.Background()
func run(ctx context.Context, log logger.Logger, cfg *config.Replica) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	deps, err := openInfra(ctx, log, cfg)
	if err != nil {
		return err
	}
	defer deps.close(log)

	replica, err := application.InitializeReplica(log, deps.pool, deps.redis, deps.producer, cfg)
	if err != nil {
		return fmt.Errorf("assemble replica: %w", err)
	}

	workersCtx, stopWorkers := context.WithCancel(ctx)
	if err := replica.BackgroundWorkers.Start(workersCtx); err != nil {
		stopWorkers()
		return fmt.Errorf("start background tasks: %w", err)
	}
	defer func() {
		stopWorkers()
		replica.BackgroundWorkers.Wait()
	}()

	health, err := grpcserver.NewHealthServer(log, &cfg.GRPC)
	if err != nil {
		return err
	}

	l := &listeners{health: health}
	l.ongoing, l.cancelOngoing = context.WithCancel(context.Background())
	defer l.cancelOngoing()

	l.http = append(l.http, l.newServer(cfg.Server.Port,
		initRouter(log, &l.draining, replica, deps, cfg), 15*time.Second))
	if cfg.Server.PprofEnabled {
		l.http = append(l.http, l.newServer(cfg.Server.PprofPort,
			initPprofRouter(&l.draining), time.Minute))
	}

	failed := l.serve(log)
	health.SetServing(true)
	log.Info("replica is serving",
		logger.NewField("canister", cfg.Ingress.CanisterID),
		logger.NewField("port", cfg.Server.Port),
	)

	select {
	case <-ctx.Done():
		log.Info("termination signal, draining")
		l.shutdown(log, readinessDrainDelay)
		return nil
	case err := <-failed:
		l.shutdown(log, 0)
		return err
	}
}

func (l *listeners) newServer(port string, handler http.Handler, writeTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:    ":" + port,
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return l.ongoing
		},

		ReadHeaderTimeout: 5 * time.Second, // gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       time.Minute,
	}
}

// serve запускает все слушатели, первая ошибка любого из них приходит в канал.
func (l *listeners) serve(log logger.Logger) <-chan error {
	failed := make(chan error, len(l.http)+1)

	for _, srv := range l.http {
		go func() {
			log.Info("http listener up", logger.NewField("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				failed <- fmt.Errorf("http %s: %w", srv.Addr, err)
			}
		}()
	}

	go func() {
		if err := l.health.Serve(); err != nil {
			failed <- err
		}
	}()

	return failed
}

func (l *listeners) shutdown(log logger.Logger, drainDelay time.Duration) {
	l.draining.Store(true)
	l.health.SetServing(false)
	time.Sleep(drainDelay)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	errs := make([]error, 0, len(l.http))
	for _, srv := range l.http {
		errs = append(errs, srv.Shutdown(shutdownCtx))
	}
	l.health.Stop()
	l.cancelOngoing()

	if err := errors.Join(errs...); err != nil {
		log.Warn("in-flight requests outlived shutdown period", logger.NewField("error", err))
		time.Sleep(shutdownHardPeriod)
	}
	log.Info("replica stopped")
}
