//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stats_test
package stats

import (
	"context"

	"shipping/internal/entities"
)

type Repository interface {
	Get(ctx context.Context) (*entities.PlatformStats, error)
}
