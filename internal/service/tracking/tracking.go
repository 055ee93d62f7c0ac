package tracking

import (
	"context"
	"errors"
	"fmt"

	"shipping/internal/entities"
)

// Service сверяет событие смены статуса с текущим состоянием посылки на реплике
// и выполняет обработчик статуса.
type Service struct {
	shipmentGateway ShipmentGateway
	statusFactory   HandlerFactory
}

func New(shipmentGateway ShipmentGateway, statusFactory HandlerFactory) *Service {
	return &Service{
		shipmentGateway: shipmentGateway,
		statusFactory:   statusFactory,
	}
}

func (s *Service) ProcessStatusChange(ctx context.Context, event entities.ShipmentStatusChanged) (*entities.Shipment, error) {
	if event.ShipmentID == "" || !event.Status.Valid() {
		return nil, fmt.Errorf("shipment id and valid status are required")
	}

	shipment, err := s.shipmentGateway.GetShipment(ctx, event.ShipmentID)
	if err != nil {
		return nil, fmt.Errorf("get shipment from replica: %w", err)
	}
	if shipment == nil {
		return nil, fmt.Errorf("%w: %s", ErrShipmentNotFound, event.ShipmentID)
	}

	// событие устарело: посылка уже ушла дальше, обработается свое событие
	if shipment.Status != event.Status {
		return shipment, fmt.Errorf("%w: event %s, replica %s", ErrStatusMismatch, event.Status, shipment.Status)
	}

	executeFn, err := s.statusFactory.GetHandler(shipment.Status)
	if err != nil {
		if errors.Is(err, ErrUndefinedStatus) {
			return shipment, nil
		}
		return shipment, err
	}

	if err := executeFn(ctx, shipment, event); err != nil {
		return nil, err
	}

	return shipment, nil
}
