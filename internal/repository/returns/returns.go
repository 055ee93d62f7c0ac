package returns

import (
	"context"
	"fmt"

	"shipping/internal/entities"
)

const returnIDFormat = "RT%06d"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// NextID следующий номер возврата в формате RT000001.
func (r *Repository) NextID(ctx context.Context) (string, error) {
	var n int64
	err := r.querier.QueryRow(ctx, `SELECT nextval('return_request_number_seq')`).Scan(&n)
	if err != nil {
		return "", fmt.Errorf("unexpected return repository nextid error: %w", err)
	}
	return fmt.Sprintf(returnIDFormat, n), nil
}

func (r *Repository) Create(ctx context.Context, request entities.ReturnRequest) (*entities.ReturnRequest, error) {
	model := FromDomain(&request)
	query := `INSERT INTO return_requests (id, shipment_id, requester_id, reason, status, created_at, processed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, shipment_id, requester_id, reason, status, created_at, processed_at`

	var created ReturnRequestDB
	err := r.querier.QueryRow(
		ctx,
		query,
		model.ID,
		model.ShipmentID,
		model.RequesterID,
		model.Reason,
		model.Status,
		model.CreatedAt,
		model.ProcessedAt,
	).Scan(
		&created.ID,
		&created.ShipmentID,
		&created.RequesterID,
		&created.Reason,
		&created.Status,
		&created.CreatedAt,
		&created.ProcessedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected return repository create error: %w", err)
	}

	return ToDomain(&created), nil
}

func (r *Repository) ListByRequester(ctx context.Context, requesterID entities.Principal) ([]entities.ReturnRequest, error) {
	query := `SELECT id, shipment_id, requester_id, reason, status, created_at, processed_at
		FROM return_requests
		WHERE requester_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, requesterID.String())
	if err != nil {
		return nil, fmt.Errorf("unexpected return repository listbyrequester error: %w", err)
	}
	defer rows.Close()

	requests := make([]entities.ReturnRequest, 0, 4)
	for rows.Next() {
		var model ReturnRequestDB
		err := rows.Scan(
			&model.ID,
			&model.ShipmentID,
			&model.RequesterID,
			&model.Reason,
			&model.Status,
			&model.CreatedAt,
			&model.ProcessedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected return repository listbyrequester error: %w", err)
		}
		requests = append(requests, *ToDomain(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected return repository listbyrequester error: %w", err)
	}

	return requests, nil
}
