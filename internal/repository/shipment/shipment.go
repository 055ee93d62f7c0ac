package shipment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"shipping/internal/entities"
	"shipping/internal/service/shipment"
)

const shipmentIDFormat = "SH%06d"

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var shipmentColumns = []string{
	"id", "sender_id", "recipient_name", "recipient_phone",
	"pickup_address", "delivery_address", "package_details",
	"status", "driver_id", "created_at", "updated_at",
	"estimated_delivery", "actual_delivery", "payment_status", "cost",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// NextID следующий номер из последовательности в формате SH000001.
func (r *Repository) NextID(ctx context.Context) (string, error) {
	var n int64
	err := r.querier.QueryRow(ctx, `SELECT nextval('shipment_number_seq')`).Scan(&n)
	if err != nil {
		return "", fmt.Errorf("unexpected shipment repository nextid error: %w", err)
	}
	return fmt.Sprintf(shipmentIDFormat, n), nil
}

func (r *Repository) Create(ctx context.Context, s entities.Shipment) error {
	model := FromDomain(&s)

	query, args, err := qb.
		Insert("shipments").
		Columns(shipmentColumns...).
		Values(
			model.ID, model.SenderID, model.RecipientName, model.RecipientPhone,
			model.PickupAddress, model.DeliveryAddress, model.PackageDetails,
			model.Status, model.DriverID, model.CreatedAt, model.UpdatedAt,
			model.EstimatedDelivery, model.ActualDelivery, model.PaymentStatus, model.Cost,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	if _, err := r.querier.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	for _, event := range s.TrackingHistory {
		if err := r.AppendEvent(ctx, s.ID, event); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Shipment, error) {
	query, args, err := qb.
		Select(shipmentColumns...).
		From("shipments").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getbyid error: %w", err)
	}

	model, err := scanShipment(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository getbyid error: %w", err)
	}

	events, err := r.events(ctx, []string{model.ID})
	if err != nil {
		return nil, err
	}

	return ToDomain(model, events[model.ID]), nil
}

func (r *Repository) ListBySender(ctx context.Context, senderID entities.Principal) ([]entities.Shipment, error) {
	query, args, err := qb.
		Select(shipmentColumns...).
		From("shipments").
		Where(sq.Eq{"sender_id": senderID.String()}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository listbysender error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository listbysender error: %w", err)
	}
	defer rows.Close()

	models := make([]*ShipmentDB, 0, 8)
	ids := make([]string, 0, 8)
	for rows.Next() {
		model, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository listbysender error: %w", err)
		}
		models = append(models, model)
		ids = append(ids, model.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected shipment repository listbysender error: %w", err)
	}

	events, err := r.events(ctx, ids)
	if err != nil {
		return nil, err
	}

	shipments := make([]entities.Shipment, 0, len(models))
	for _, model := range models {
		shipments = append(shipments, *ToDomain(model, events[model.ID]))
	}
	return shipments, nil
}

func (r *Repository) Update(ctx context.Context, modify entities.ShipmentModify) error {
	model := FromDomainModify(&modify)

	builder := qb.Update("shipments")

	if model.Status != nil {
		builder = builder.Set("status", model.Status)
	}
	if model.DriverID != nil {
		builder = builder.Set("driver_id", model.DriverID)
	}
	if model.ActualDelivery != nil {
		builder = builder.Set("actual_delivery", model.ActualDelivery)
	}
	if model.PaymentStatus != nil {
		builder = builder.Set("payment_status", model.PaymentStatus)
	}
	if model.UpdatedAt != nil {
		builder = builder.Set("updated_at", model.UpdatedAt)
	} else {
		builder = builder.Set("updated_at", sq.Expr("NOW()"))
	}

	query, args, err := builder.
		Where(sq.Eq{"id": model.ID}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	var id string
	if err := r.querier.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shipment.ErrShipmentNotFound
		}
		return fmt.Errorf("unexpected shipment repository update error: %w", err)
	}
	return nil
}

func (r *Repository) AppendEvent(ctx context.Context, shipmentID string, event entities.TrackingEvent) error {
	model := EventFromDomain(shipmentID, event)
	query := `INSERT INTO tracking_events (shipment_id, occurred_at, status, location, description, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.querier.Exec(
		ctx,
		query,
		model.ShipmentID,
		model.OccurredAt,
		model.Status,
		model.Location,
		model.Description,
		model.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository appendevent error: %w", err)
	}
	return nil
}

func (r *Repository) events(ctx context.Context, shipmentIDs []string) (map[string][]TrackingEventDB, error) {
	result := make(map[string][]TrackingEventDB, len(shipmentIDs))
	if len(shipmentIDs) == 0 {
		return result, nil
	}

	query := `SELECT shipment_id, occurred_at, status, location, description, updated_by
		FROM tracking_events
		WHERE shipment_id = ANY($1)
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, shipmentIDs)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository events error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e TrackingEventDB
		if err := rows.Scan(&e.ShipmentID, &e.OccurredAt, &e.Status, &e.Location, &e.Description, &e.UpdatedBy); err != nil {
			return nil, fmt.Errorf("unexpected shipment repository events error: %w", err)
		}
		result[e.ShipmentID] = append(result[e.ShipmentID], e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected shipment repository events error: %w", err)
	}
	return result, nil
}

func scanShipment(row pgx.Row) (*ShipmentDB, error) {
	var model ShipmentDB
	err := row.Scan(
		&model.ID,
		&model.SenderID,
		&model.RecipientName,
		&model.RecipientPhone,
		&model.PickupAddress,
		&model.DeliveryAddress,
		&model.PackageDetails,
		&model.Status,
		&model.DriverID,
		&model.CreatedAt,
		&model.UpdatedAt,
		&model.EstimatedDelivery,
		&model.ActualDelivery,
		&model.PaymentStatus,
		&model.Cost,
	)
	if err != nil {
		return nil, err
	}
	return &model, nil
}
