package canister

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"shipping/internal/pkg/agent"
	"shipping/internal/pkg/identity"
)

// Factory собирает шлюзы поверх агентов с общим HTTP клиентом и ключом корня доверия.
type Factory struct {
	client        *http.Client
	cfg           agent.Config
	ingressExpiry time.Duration

	mu      sync.Mutex
	rootKey []byte
}

func NewFactory(client *http.Client, cfg agent.Config, ingressExpiry time.Duration) *Factory {
	return &Factory{
		client:        client,
		cfg:           cfg,
		ingressExpiry: ingressExpiry,
	}
}

// NewAnonymous шлюз без подписи: вызывающий - анонимный principal.
func (f *Factory) NewAnonymous(ctx context.Context) (*Gateway, error) {
	return f.newGateway(ctx, nil)
}

// NewActor шлюз, подписывающий каждый вызов ключом identity.
func (f *Factory) NewActor(ctx context.Context, id *identity.Identity) (*Gateway, error) {
	if id == nil {
		return nil, fmt.Errorf("new actor: %w", identity.ErrNoSession)
	}
	return f.newGateway(ctx, identity.NewSigner(id, f.cfg.CanisterID, f.ingressExpiry))
}

func (f *Factory) newGateway(ctx context.Context, signer *identity.Signer) (*Gateway, error) {
	rootKey, err := f.ensureRootKey(ctx)
	if err != nil {
		return nil, err
	}

	opts := []agent.Option{agent.WithRootKey(rootKey)}

	var a *agent.Agent
	if signer != nil {
		a = agent.New(f.client, f.cfg, signer, opts...)
	} else {
		a = agent.New(f.client, f.cfg, nil, opts...)
	}

	return New(a, f.cfg.CanisterID), nil
}

func (f *Factory) ensureRootKey(ctx context.Context) ([]byte, error) {
	if !f.cfg.FetchRootKey {
		return nil, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.rootKey) > 0 {
		return f.rootKey, nil
	}

	probe := agent.New(f.client, f.cfg, nil)
	if err := probe.FetchRootKey(ctx); err != nil {
		return nil, err
	}
	f.rootKey = probe.RootKey()
	return f.rootKey, nil
}
