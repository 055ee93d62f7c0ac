package ingress_auth

import (
	"context"

	"shipping/internal/entities"
)

type principalKey struct{}

func WithPrincipal(ctx context.Context, p entities.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// Principal отправитель запроса, без подписи - анонимный.
func Principal(ctx context.Context) entities.Principal {
	p, ok := ctx.Value(principalKey{}).(entities.Principal)
	if !ok || p == "" {
		return entities.AnonymousPrincipal
	}
	return p
}
