package wallet

import (
	"context"
	"fmt"
	"sync"

	"shipping/pkg/logger"
)

// Service состояние подключения кошелька.
type Service struct {
	provider Provider
	log      serviceLogger

	mu      sync.RWMutex
	account string
	chainID uint64
}

func New(provider Provider, log serviceLogger) *Service {
	return &Service{
		provider: provider,
		log:      log,
	}
}

// Init подхватывает уже разрешенный аккаунт без запроса пользователю. Ошибки логируются.
func (s *Service) Init(ctx context.Context) {
	accounts, err := s.provider.Accounts(ctx)
	if err != nil {
		s.log.Warn("failed to read wallet accounts", logger.NewField("error", err))
		return
	}
	if len(accounts) == 0 {
		return
	}

	chainID, err := s.provider.ChainID(ctx)
	if err != nil {
		s.log.Warn("failed to read chain id", logger.NewField("error", err))
		return
	}

	s.set(accounts[0], chainID)
	s.log.Info("wallet restored", logger.NewField("account", accounts[0]))
}

func (s *Service) Connect(ctx context.Context) (string, error) {
	accounts, err := s.provider.RequestAccounts(ctx)
	if err != nil {
		return "", fmt.Errorf("connect wallet: %w", err)
	}
	if len(accounts) == 0 {
		return "", fmt.Errorf("connect wallet: %w", ErrNoAccounts)
	}

	chainID, err := s.provider.ChainID(ctx)
	if err != nil {
		return "", fmt.Errorf("connect wallet: %w", err)
	}

	s.set(accounts[0], chainID)
	s.log.Info("wallet connected",
		logger.NewField("account", accounts[0]),
		logger.NewField("network", NetworkName(chainID)),
	)
	return accounts[0], nil
}

// Disconnect только локальный: провайдеры EIP-1193 не умеют отзывать доступ.
func (s *Service) Disconnect() {
	s.set("", 0)
}

func (s *Service) IsConnected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.account != ""
}

func (s *Service) Account() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.account
}

func (s *Service) NetworkName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.account == "" {
		return ""
	}
	return NetworkName(s.chainID)
}

// Balance баланс подключенного аккаунта в ETH.
func (s *Service) Balance(ctx context.Context) (string, error) {
	account := s.Account()
	if account == "" {
		return "", ErrNotConnected
	}

	wei, err := s.provider.Balance(ctx, account)
	if err != nil {
		return "", fmt.Errorf("wallet balance: %w", err)
	}
	return FormatEther(wei), nil
}

func (s *Service) set(account string, chainID uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = account
	s.chainID = chainID
}
