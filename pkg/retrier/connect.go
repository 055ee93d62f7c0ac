package retrier

import (
	"context"
	"fmt"
	"time"

	"shipping/pkg/logger"
)

// DialConfig параметры ожидания внешней зависимости при старте процесса.
func DialConfig(initial time.Duration) Config {
	return Config{
		InitialInterval: initial,
		MaxInterval:     30 * time.Second,
		MaxElapsedTime:  2 * time.Minute,
		Randomization:   0.5,
		Multiplier:      2,
	}
}

// Connect повторяет probe до первого успеха. target попадает в логи
// и в текст ошибки ("postgres", "redis", "kafka" и т.п.).
func Connect(ctx context.Context, r Retrier, log logger.Logger, target string, probe func(context.Context) error) error {
	log = log.With(logger.NewField("target", target))

	var attempt uint64
	err := r.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		if err := probe(ctx); err != nil {
			log.With(
				logger.NewField("attempt", attempt),
				logger.NewField("error", err),
			).Warn("dependency not reachable yet")
			return err
		}
		return nil
	})
	if err != nil {
		log.With(
			logger.NewField("attempts", attempt),
			logger.NewField("error", err),
		).Error("giving up on dependency")
		return fmt.Errorf("%s unreachable after %d attempts: %w", target, attempt, err)
	}

	log.With(logger.NewField("attempts", attempt)).Info("dependency reachable")
	return nil
}
