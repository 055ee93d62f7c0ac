//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stats_snapshot_test
package stats_snapshot

import (
	"context"

	"shipping/internal/entities"
	"shipping/pkg/logger"
)

type Service interface {
	Get(ctx context.Context) (*entities.PlatformStats, error)
}

type Gauges interface {
	Set(stats entities.PlatformStats)
}

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
}
