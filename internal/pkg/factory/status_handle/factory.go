package status_handle

import (
	"context"
	"fmt"

	"shipping/internal/entities"
	"shipping/internal/service/tracking"
)

type StatusHandlerFactory struct {
	recorder Recorder
}

func NewStatusHandlerFactory(recorder Recorder) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		recorder: recorder,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.ShipmentStatus) (tracking.ExecuteFn, error) {
	switch status {
	case entities.ShipmentPickupScheduled:
		return f.pickupScheduledHandler, nil
	case entities.ShipmentDelivered:
		return f.deliveredHandler, nil
	case entities.ShipmentFailed, entities.ShipmentReturned, entities.ShipmentCancelled:
		return f.terminalHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", tracking.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) pickupScheduledHandler(_ context.Context, shipment *entities.Shipment, event entities.ShipmentStatusChanged) error {
	wait := event.OccurredAt.Sub(shipment.CreatedAt)
	if wait < 0 {
		return fmt.Errorf("shipment %s scheduled before creation", shipment.ID)
	}
	f.recorder.ObservePickupWait(wait)
	return nil
}

func (f *StatusHandlerFactory) deliveredHandler(_ context.Context, shipment *entities.Shipment, event entities.ShipmentStatusChanged) error {
	deliveredAt := event.OccurredAt
	if shipment.ActualDelivery != nil {
		deliveredAt = *shipment.ActualDelivery
	}

	latency := deliveredAt.Sub(shipment.CreatedAt)
	if latency < 0 {
		return fmt.Errorf("shipment %s delivered before creation", shipment.ID)
	}
	f.recorder.ObserveDeliveryLatency(latency)
	return nil
}

func (f *StatusHandlerFactory) terminalHandler(_ context.Context, shipment *entities.Shipment, _ entities.ShipmentStatusChanged) error {
	f.recorder.IncTerminal(shipment.Status)
	return nil
}
