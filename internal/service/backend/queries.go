package backend

import (
	"context"

	"shipping/internal/entities"
)

// Запросы не возвращают ошибок: без call handle или при сбое отдают пустое значение.

func (s *Service) GetUser(ctx context.Context, id entities.Principal) *entities.User {
	actor := s.actor()
	if actor == nil {
		return nil
	}
	user, err := actor.GetUser(ctx, id)
	if err != nil {
		s.logQueryError("get_user", err)
		return nil
	}
	return user
}

func (s *Service) GetCurrentUser(ctx context.Context) *entities.User {
	actor := s.actor()
	if actor == nil {
		return nil
	}
	user, err := actor.GetCurrentUser(ctx)
	if err != nil {
		s.logQueryError("get_current_user", err)
		return nil
	}
	return user
}

func (s *Service) GetShipment(ctx context.Context, shipmentID string) *entities.Shipment {
	actor := s.actor()
	if actor == nil {
		return nil
	}
	shipment, err := actor.GetShipment(ctx, shipmentID)
	if err != nil {
		s.logQueryError("get_shipment", err)
		return nil
	}
	return shipment
}

func (s *Service) GetUserShipments(ctx context.Context) []entities.Shipment {
	actor := s.actor()
	if actor == nil {
		return []entities.Shipment{}
	}
	shipments, err := actor.GetUserShipments(ctx)
	if err != nil {
		s.logQueryError("get_user_shipments", err)
		return []entities.Shipment{}
	}
	return shipments
}

func (s *Service) GetAvailableDrivers(ctx context.Context) []entities.Driver {
	actor := s.actor()
	if actor == nil {
		return []entities.Driver{}
	}
	drivers, err := actor.GetAvailableDrivers(ctx)
	if err != nil {
		s.logQueryError("get_available_drivers", err)
		return []entities.Driver{}
	}
	return drivers
}

func (s *Service) GetReturnRequests(ctx context.Context) []entities.ReturnRequest {
	actor := s.actor()
	if actor == nil {
		return []entities.ReturnRequest{}
	}
	requests, err := actor.GetReturnRequests(ctx)
	if err != nil {
		s.logQueryError("get_return_requests", err)
		return []entities.ReturnRequest{}
	}
	return requests
}

func (s *Service) GetPlatformStats(ctx context.Context) *entities.PlatformStats {
	actor := s.actor()
	if actor == nil {
		return nil
	}
	stats, err := actor.GetPlatformStats(ctx)
	if err != nil {
		s.logQueryError("get_platform_stats", err)
		return nil
	}
	return stats
}
