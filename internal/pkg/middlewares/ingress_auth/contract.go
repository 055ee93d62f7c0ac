//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ingress_auth_test
package ingress_auth

import (
	"context"
	"time"

	"shipping/internal/pkg/identity"
	"shipping/pkg/logger"
)

type Verifier interface {
	Verify(token string) (*identity.Verified, error)
}

type NonceStore interface {
	Claim(ctx context.Context, nonce string, ttl time.Duration) (bool, error)
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
