//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=connection_test
package connection

import (
	"context"

	"shipping/internal/entities"
	"shipping/pkg/logger"
)

type BackendRail interface {
	Init(ctx context.Context)
	Login(ctx context.Context) (bool, error)
	Logout() error
	IsAuthenticated() bool
	Principal() entities.Principal
}

type WalletRail interface {
	Init(ctx context.Context)
	Connect(ctx context.Context) (string, error)
	Disconnect()
	IsConnected() bool
	Account() string
	NetworkName() string
	Balance(ctx context.Context) (string, error)
}

type presenterLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
