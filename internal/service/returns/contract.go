//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=returns_test
package returns

import (
	"context"

	"shipping/internal/entities"
)

type Repository interface {
	NextID(ctx context.Context) (string, error)
	Create(ctx context.Context, request entities.ReturnRequest) (*entities.ReturnRequest, error)
	ListByRequester(ctx context.Context, requesterID entities.Principal) ([]entities.ReturnRequest, error)
}

// ShipmentReader возвращает nil без ошибки, если посылки нет.
type ShipmentReader interface {
	Get(ctx context.Context, id string) (*entities.Shipment, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
