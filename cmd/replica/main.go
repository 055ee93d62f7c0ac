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

// implVersion отдается в /api/v2/status, подставляется через -ldflags.
var implVersion = "dev"

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

	log := zapLogger.With(logger.NewField("process", "replica"), logger.NewField("version", implVersion))

	if err := loadEnv(); err != nil {
		log.Error("read .env", logger.NewField("error", err))
		return
	}

	cfg, err := config.LoadReplica()
	if err != nil {
		log.Error("replica config is invalid", logger.NewField("error", err))
		return
	}

	if err := run(context.Background(), log, cfg); err != nil {
		log.Error("replica stopped with error", logger.NewField("error", err))
		os.Exit(1)
	}
}

func loadEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	return dotenv.Load()
}
