package driver

import (
	"context"
	"fmt"

	"shipping/internal/entities"
	"shipping/internal/repository"
	"shipping/internal/service/driver"
)

const driverColumns = `id, name, phone, vehicle_type, license_plate, capacity,
	latitude, longitude, is_available, rating, total_deliveries, joined_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, d entities.Driver) (*entities.Driver, error) {
	model := FromDomain(&d)
	query := `INSERT INTO drivers (` + driverColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + driverColumns

	var created DriverDB
	err := scanDriver(r.querier.QueryRow(
		ctx,
		query,
		model.ID,
		model.Name,
		model.Phone,
		model.VehicleType,
		model.LicensePlate,
		model.Capacity,
		model.Latitude,
		model.Longitude,
		model.IsAvailable,
		model.Rating,
		model.TotalDeliveries,
		model.JoinedAt,
	), &created)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, driver.ErrDriverAlreadyRegistered
		}
		return nil, fmt.Errorf("unexpected driver repository create error: %w", err)
	}

	return ToDomain(&created), nil
}

func (r *Repository) ListAvailable(ctx context.Context) ([]entities.Driver, error) {
	query := `SELECT ` + driverColumns + `
		FROM drivers
		WHERE is_available
		ORDER BY joined_at, id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository listavailable error: %w", err)
	}
	defer rows.Close()

	models := make([]DriverDB, 0, 8)
	for rows.Next() {
		var model DriverDB
		if err := scanDriver(rows, &model); err != nil {
			return nil, fmt.Errorf("unexpected driver repository listavailable error: %w", err)
		}
		models = append(models, model)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected driver repository listavailable error: %w", err)
	}

	return ToDomainList(models), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDriver(row scanner, model *DriverDB) error {
	return row.Scan(
		&model.ID,
		&model.Name,
		&model.Phone,
		&model.VehicleType,
		&model.LicensePlate,
		&model.Capacity,
		&model.Latitude,
		&model.Longitude,
		&model.IsAvailable,
		&model.Rating,
		&model.TotalDeliveries,
		&model.JoinedAt,
	)
}
