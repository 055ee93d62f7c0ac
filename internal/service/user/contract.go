//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"shipping/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, user entities.User) (*entities.User, error)
	GetByID(ctx context.Context, id entities.Principal) (*entities.User, error)
}
