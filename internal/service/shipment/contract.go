//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"

	"shipping/internal/entities"
	"shipping/pkg/logger"
)

type Repository interface {
	NextID(ctx context.Context) (string, error)
	Create(ctx context.Context, shipment entities.Shipment) error
	GetByID(ctx context.Context, id string) (*entities.Shipment, error)
	ListBySender(ctx context.Context, senderID entities.Principal) ([]entities.Shipment, error)
	Update(ctx context.Context, modify entities.ShipmentModify) error
	AppendEvent(ctx context.Context, shipmentID string, event entities.TrackingEvent) error
}

// UserReader возвращает nil без ошибки для незарегистрированного principal.
type UserReader interface {
	Get(ctx context.Context, id entities.Principal) (*entities.User, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type CostCalculator interface {
	Calculate(pickup, delivery entities.Address, pkg entities.PackageDetails) float64
}

type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, event entities.ShipmentStatusChanged) error
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
}
