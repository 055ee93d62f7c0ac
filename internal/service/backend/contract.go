//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=backend_test
package backend

import (
	"context"

	"shipping/internal/entities"
	"shipping/internal/pkg/identity"
	"shipping/pkg/logger"
)

// Actor call handle, привязанный к identity.
type Actor interface {
	RegisterUser(ctx context.Context, reg entities.UserRegistration) (*entities.User, error)
	GetUser(ctx context.Context, id entities.Principal) (*entities.User, error)
	GetCurrentUser(ctx context.Context) (*entities.User, error)
	CreateShipment(ctx context.Context, create entities.ShipmentCreate) (*entities.Shipment, error)
	GetShipment(ctx context.Context, shipmentID string) (*entities.Shipment, error)
	GetUserShipments(ctx context.Context) ([]entities.Shipment, error)
	UpdateShipmentStatus(ctx context.Context, update entities.ShipmentStatusUpdate) (*entities.Shipment, error)
	RegisterDriver(ctx context.Context, reg entities.DriverRegistration) (*entities.Driver, error)
	GetAvailableDrivers(ctx context.Context) ([]entities.Driver, error)
	AssignDriverToShipment(ctx context.Context, shipmentID string, driverID entities.Principal) (*entities.Shipment, error)
	CreateReturnRequest(ctx context.Context, shipmentID, reason string) (*entities.ReturnRequest, error)
	GetReturnRequests(ctx context.Context) ([]entities.ReturnRequest, error)
	GetPlatformStats(ctx context.Context) (*entities.PlatformStats, error)
}

type ActorFactory interface {
	NewActor(ctx context.Context, id *identity.Identity) (Actor, error)
}

type SessionStore interface {
	Load() (*identity.Session, error)
	Save(id *identity.Identity) (*identity.Session, error)
	Delete() error
}

type IdentityProvider interface {
	Authenticate(ctx context.Context) (*identity.Identity, error)
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
