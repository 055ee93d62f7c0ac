package backend

import (
	"context"

	"shipping/internal/entities"
	"shipping/internal/pkg/identity"
)

// ActorFactoryFunc позволяет передать функцию как ActorFactory.
type ActorFactoryFunc func(ctx context.Context, id *identity.Identity) (Actor, error)

func (f ActorFactoryFunc) NewActor(ctx context.Context, id *identity.Identity) (Actor, error) {
	return f(ctx, id)
}

// ConnectionDescriptor пустой до входа, заполняется при Login/Init, очищается Logout.
type ConnectionDescriptor struct {
	Identity        *identity.Identity
	Actor           Actor
	IsAuthenticated bool
}

func (d ConnectionDescriptor) principal() entities.Principal {
	if d.Identity == nil {
		return entities.AnonymousPrincipal
	}
	return d.Identity.Principal()
}
