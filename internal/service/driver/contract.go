//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_test
package driver

import (
	"context"

	"shipping/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, driver entities.Driver) (*entities.Driver, error)
	ListAvailable(ctx context.Context) ([]entities.Driver, error)
}
