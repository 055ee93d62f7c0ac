package kafka

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shipping/internal/entities"
)

var ErrBadEvent = errors.New("bad shipment status event")

// StatusChangedEvent сообщение топика shipment.status.changed.
type StatusChangedEvent struct {
	EventID    string    `json:"event_id"`
	ShipmentID string    `json:"shipment_id"`
	Status     string    `json:"status"`
	UpdatedBy  string    `json:"updated_by"`
	OccurredAt time.Time `json:"occurred_at"`
}

func EncodeStatusChanged(e entities.ShipmentStatusChanged) ([]byte, error) {
	return json.Marshal(StatusChangedEvent{
		EventID:    e.EventID,
		ShipmentID: e.ShipmentID,
		Status:     e.Status.String(),
		UpdatedBy:  e.UpdatedBy.String(),
		OccurredAt: e.OccurredAt.UTC(),
	})
}

// DecodeStatusChanged разбирает сообщение, пустой id посылки и неизвестный статус отклоняются.
func DecodeStatusChanged(data []byte) (entities.ShipmentStatusChanged, error) {
	var event StatusChangedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return entities.ShipmentStatusChanged{}, fmt.Errorf("%w: %w", ErrBadEvent, err)
	}

	status := entities.ShipmentStatus(event.Status)
	if event.ShipmentID == "" || !status.Valid() {
		return entities.ShipmentStatusChanged{}, fmt.Errorf("%w: shipment %q status %q", ErrBadEvent, event.ShipmentID, event.Status)
	}

	return entities.ShipmentStatusChanged{
		EventID:    event.EventID,
		ShipmentID: event.ShipmentID,
		Status:     status,
		UpdatedBy:  entities.Principal(event.UpdatedBy),
		OccurredAt: event.OccurredAt,
	}, nil
}
