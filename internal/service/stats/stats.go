package stats

import (
	"context"
	"fmt"

	"shipping/internal/entities"
)

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

func (s *Service) Get(ctx context.Context) (*entities.PlatformStats, error) {
	stats, err := s.repository.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("platform stats: %w", err)
	}
	return stats, nil
}
