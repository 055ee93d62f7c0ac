package main

import (
	"context"
	stdlog "log"
	"os"

	"shipping/internal/pkg/config"
	"shipping/internal/pkg/dotenv"
	"shipping/pkg/logger"
	"shipping/pkg/logger/zap_adapter"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter(zap_adapter.WithLevel(os.Getenv("LOG_LEVEL")))
	if err != nil {
		stdlog.Fatalf("init logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("sync logger: %v", err)
		}
	}()

	log := zapLogger.With(logger.NewField("process", "worker-shipment-status-changed"))

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			log.Error("read .env", logger.NewField("error", err))
			return
		}
	}

	cfg, err := config.LoadWorker()
	if err != nil {
		log.Error("worker config is invalid", logger.NewField("error", err))
		return
	}

	if err := run(context.Background(), log, cfg); err != nil {
		log.Error("worker stopped with error", logger.NewField("error", err))
		os.Exit(1)
	}
}
