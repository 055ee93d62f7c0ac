package stats

import (
	"context"
	"fmt"

	"shipping/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Get считает все показатели одним запросом, чтобы они были согласованы между собой.
func (r *Repository) Get(ctx context.Context) (*entities.PlatformStats, error) {
	query := `SELECT
		(SELECT COUNT(*) FROM users),
		(SELECT COUNT(*) FROM shipments),
		(SELECT COUNT(*) FROM drivers),
		(SELECT COUNT(*) FROM shipments WHERE status = $1),
		(SELECT COUNT(*) FROM shipments WHERE status NOT IN ($1, $2))`

	var users, shipments, drivers, delivered, pending int64
	err := r.querier.QueryRow(
		ctx,
		query,
		entities.ShipmentDelivered.String(),
		entities.ShipmentCancelled.String(),
	).Scan(&users, &shipments, &drivers, &delivered, &pending)
	if err != nil {
		return nil, fmt.Errorf("unexpected stats repository get error: %w", err)
	}

	return &entities.PlatformStats{
		TotalUsers:         uint32(users),
		TotalShipments:     uint32(shipments),
		TotalDrivers:       uint32(drivers),
		DeliveredShipments: uint32(delivered),
		PendingShipments:   uint32(pending),
	}, nil
}
