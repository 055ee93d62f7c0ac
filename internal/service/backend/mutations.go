package backend

import (
	"context"

	"shipping/internal/entities"
)

// Изменяющие вызовы требуют входа. Ошибка канистры возвращается без обертки,
// чтобы ее текст дошел до вызывающего как есть.

func (s *Service) RegisterUser(ctx context.Context, reg entities.UserRegistration) (*entities.User, error) {
	actor, err := s.authenticatedActor()
	if err != nil {
		return nil, err
	}
	return actor.RegisterUser(ctx, reg)
}

func (s *Service) CreateShipment(ctx context.Context, create entities.ShipmentCreate) (*entities.Shipment, error) {
	actor, err := s.authenticatedActor()
	if err != nil {
		return nil, err
	}
	return actor.CreateShipment(ctx, create)
}

func (s *Service) UpdateShipmentStatus(ctx context.Context, update entities.ShipmentStatusUpdate) (*entities.Shipment, error) {
	actor, err := s.authenticatedActor()
	if err != nil {
		return nil, err
	}
	return actor.UpdateShipmentStatus(ctx, update)
}

func (s *Service) RegisterDriver(ctx context.Context, reg entities.DriverRegistration) (*entities.Driver, error) {
	actor, err := s.authenticatedActor()
	if err != nil {
		return nil, err
	}
	return actor.RegisterDriver(ctx, reg)
}

func (s *Service) AssignDriverToShipment(ctx context.Context, shipmentID string, driverID entities.Principal) (*entities.Shipment, error) {
	actor, err := s.authenticatedActor()
	if err != nil {
		return nil, err
	}
	return actor.AssignDriverToShipment(ctx, shipmentID, driverID)
}

func (s *Service) CreateReturnRequest(ctx context.Context, shipmentID, reason string) (*entities.ReturnRequest, error) {
	actor, err := s.authenticatedActor()
	if err != nil {
		return nil, err
	}
	return actor.CreateReturnRequest(ctx, shipmentID, reason)
}
