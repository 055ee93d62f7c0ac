package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"shipping/internal/entities"
	"shipping/internal/repository"
	"shipping/internal/service/user"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, u entities.User) (*entities.User, error) {
	model := FromDomain(&u)
	query := `INSERT INTO users (id, name, email, phone, user_type, created_at, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, email, phone, user_type, created_at, is_active`

	var created UserDB
	err := r.querier.QueryRow(
		ctx,
		query,
		model.ID,
		model.Name,
		model.Email,
		model.Phone,
		model.UserType,
		model.CreatedAt,
		model.IsActive,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Email,
		&created.Phone,
		&created.UserType,
		&created.CreatedAt,
		&created.IsActive,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, user.ErrUserAlreadyRegistered
		}
		return nil, fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return ToDomain(&created), nil
}

func (r *Repository) GetByID(ctx context.Context, id entities.Principal) (*entities.User, error) {
	query := `SELECT id, name, email, phone, user_type, created_at, is_active
		FROM users
		WHERE id = $1`

	var model UserDB
	err := r.querier.QueryRow(ctx, query, id.String()).
		Scan(
			&model.ID,
			&model.Name,
			&model.Email,
			&model.Phone,
			&model.UserType,
			&model.CreatedAt,
			&model.IsActive,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository getbyid error: %w", err)
	}

	return ToDomain(&model), nil
}
