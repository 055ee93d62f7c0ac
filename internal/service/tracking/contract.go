//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"

	"shipping/internal/entities"
)

// ShipmentGateway анонимный query get_shipment к реплике.
type ShipmentGateway interface {
	GetShipment(ctx context.Context, shipmentID string) (*entities.Shipment, error)
}

type ExecuteFn func(ctx context.Context, shipment *entities.Shipment, event entities.ShipmentStatusChanged) error

type HandlerFactory interface {
	GetHandler(status entities.ShipmentStatus) (ExecuteFn, error)
}
