package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shipping/internal/entities"
)

const initialRating = 5.0

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

func (s *Service) Register(ctx context.Context, caller entities.Principal, reg entities.DriverRegistration) (*entities.Driver, error) {
	driver, err := s.repository.Create(ctx, entities.Driver{
		ID:          caller,
		Name:        reg.Name,
		Phone:       reg.Phone,
		VehicleInfo: reg.VehicleInfo,
		IsAvailable: true,
		Rating:      initialRating,
		JoinedAt:    s.now(),
	})
	if err != nil {
		if errors.Is(err, ErrDriverAlreadyRegistered) {
			return nil, ErrDriverAlreadyRegistered
		}
		return nil, fmt.Errorf("register driver: %w", err)
	}
	return driver, nil
}

func (s *Service) ListAvailable(ctx context.Context) ([]entities.Driver, error) {
	drivers, err := s.repository.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("list available drivers: %w", err)
	}
	return drivers, nil
}
