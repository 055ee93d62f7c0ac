//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_status_changed_test
package shipment_status_changed

import (
	"context"

	"shipping/internal/entities"
	"shipping/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

type Service interface {
	ProcessStatusChange(ctx context.Context, event entities.ShipmentStatusChanged) (*entities.Shipment, error)
}

type EventRecorder interface {
	IncEvent(status entities.ShipmentStatus, outcome string)
}
