package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shipping/internal/entities"
)

type Service struct {
	repository Repository
	now        func() time.Time
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
		now:        time.Now,
	}
}

func (s *Service) Register(ctx context.Context, caller entities.Principal, reg entities.UserRegistration) (*entities.User, error) {
	if !reg.UserType.Valid() {
		return nil, ErrInvalidUserType
	}

	user, err := s.repository.Create(ctx, entities.User{
		ID:        caller,
		UserType:  reg.UserType,
		Name:      reg.Name,
		Email:     reg.Email,
		Phone:     reg.Phone,
		CreatedAt: s.now(),
		IsActive:  true,
	})
	if err != nil {
		if errors.Is(err, ErrUserAlreadyRegistered) {
			return nil, ErrUserAlreadyRegistered
		}
		return nil, fmt.Errorf("register user: %w", err)
	}
	return user, nil
}

// Get nil без ошибки, если пользователь не зарегистрирован.
func (s *Service) Get(ctx context.Context, id entities.Principal) (*entities.User, error) {
	user, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
