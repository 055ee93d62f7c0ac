//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=canister_test
package canister

import (
	"context"

	"shipping/internal/entities"
	"shipping/pkg/logger"
)

type UserService interface {
	Register(ctx context.Context, caller entities.Principal, reg entities.UserRegistration) (*entities.User, error)
	Get(ctx context.Context, id entities.Principal) (*entities.User, error)
}

type ShipmentService interface {
	Create(ctx context.Context, caller entities.Principal, create entities.ShipmentCreate) (*entities.Shipment, error)
	Get(ctx context.Context, id string) (*entities.Shipment, error)
	ListBySender(ctx context.Context, caller entities.Principal) ([]entities.Shipment, error)
	UpdateStatus(ctx context.Context, caller entities.Principal, update entities.ShipmentStatusUpdate) (*entities.Shipment, error)
	AssignDriver(ctx context.Context, caller entities.Principal, shipmentID string, driverID entities.Principal) (*entities.Shipment, error)
}

type DriverService interface {
	Register(ctx context.Context, caller entities.Principal, reg entities.DriverRegistration) (*entities.Driver, error)
	ListAvailable(ctx context.Context) ([]entities.Driver, error)
}

type ReturnService interface {
	Create(ctx context.Context, caller entities.Principal, shipmentID string, reason string) (*entities.ReturnRequest, error)
	ListByRequester(ctx context.Context, caller entities.Principal) ([]entities.ReturnRequest, error)
}

type StatsService interface {
	Get(ctx context.Context) (*entities.PlatformStats, error)
}

type dispatcherLogger interface {
	Error(msg string, fields ...logger.Field)
}
