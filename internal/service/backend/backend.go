package backend

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"shipping/internal/entities"
	"shipping/internal/pkg/identity"
	"shipping/pkg/logger"
)

// Service клиент бэкенд-канистры. Один экземпляр на сессию.
type Service struct {
	factory  ActorFactory
	sessions SessionStore
	provider IdentityProvider
	log      serviceLogger

	mu   sync.RWMutex
	conn ConnectionDescriptor
}

func New(factory ActorFactory, sessions SessionStore, provider IdentityProvider, log serviceLogger) *Service {
	return &Service{
		factory:  factory,
		sessions: sessions,
		provider: provider,
		log:      log,
	}
}

// Init восстанавливает сохраненную сессию. Ошибки только логируются.
func (s *Service) Init(ctx context.Context) {
	session, err := s.sessions.Load()
	if err != nil {
		if errors.Is(err, identity.ErrNoSession) || errors.Is(err, identity.ErrSessionExpired) {
			s.log.Info("no session to restore", logger.NewField("reason", err.Error()))
			return
		}
		s.log.Warn("failed to load session", logger.NewField("error", err))
		return
	}

	actor, err := s.factory.NewActor(ctx, session.Identity)
	if err != nil {
		s.log.Error("failed to build actor for restored session", logger.NewField("error", err))
		return
	}

	s.connect(session.Identity, actor)
	s.log.Info("session restored",
		logger.NewField("principal", session.Identity.Principal().String()),
		logger.NewField("expires_at", session.ExpiresAt),
	)
}

// Login запускает внешний поток identity-провайдера.
func (s *Service) Login(ctx context.Context) (bool, error) {
	id, err := s.provider.Authenticate(ctx)
	if err != nil {
		return false, fmt.Errorf("login: %w", err)
	}

	actor, err := s.factory.NewActor(ctx, id)
	if err != nil {
		return false, fmt.Errorf("login: build actor: %w", err)
	}

	if _, err := s.sessions.Save(id); err != nil {
		s.log.Warn("failed to persist session", logger.NewField("error", err))
	}

	s.connect(id, actor)
	s.log.Info("logged in", logger.NewField("principal", id.Principal().String()))
	return true, nil
}

// Logout идемпотентен.
func (s *Service) Logout() error {
	s.mu.Lock()
	s.conn = ConnectionDescriptor{}
	s.mu.Unlock()

	if err := s.sessions.Delete(); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (s *Service) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conn.IsAuthenticated
}

// Principal текущего identity, анонимный при отсутствии входа.
func (s *Service) Principal() entities.Principal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conn.principal()
}

func (s *Service) connect(id *identity.Identity, actor Actor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn = ConnectionDescriptor{
		Identity:        id,
		Actor:           actor,
		IsAuthenticated: true,
	}
}

func (s *Service) actor() Actor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conn.Actor
}

func (s *Service) authenticatedActor() (Actor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.conn.IsAuthenticated || s.conn.Actor == nil {
		return nil, ErrNotAuthenticated
	}
	return s.conn.Actor, nil
}

func (s *Service) logQueryError(method string, err error) {
	s.log.Error("query failed",
		logger.NewField("method", method),
		logger.NewField("error", err),
	)
}
