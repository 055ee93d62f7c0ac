package connection

import (
	"context"
	"fmt"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"
	"shipping/pkg/logger"
)

const (
	actionConnectBackend    = "connect backend"
	actionDisconnectBackend = "disconnect backend"
	actionConnectWallet     = "connect wallet"
	actionDisconnectWallet  = "disconnect wallet"
)

// Presenter отражает состояние двух независимых каналов подключения.
type Presenter struct {
	backend BackendRail
	wallet  WalletRail
	log     presenterLogger

	mu     sync.Mutex
	banner Banner
}

func New(backend BackendRail, wallet WalletRail, log presenterLogger) *Presenter {
	return &Presenter{
		backend: backend,
		wallet:  wallet,
		log:     log,
		banner:  Banner{Phase: PhaseIdle},
	}
}

// Mount инициализирует оба канала. Init сам логирует ошибки, поэтому Mount не падает.
func (p *Presenter) Mount(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p.backend.Init(gctx)
		return nil
	})
	g.Go(func() error {
		p.wallet.Init(gctx)
		return nil
	})

	return g.Wait()
}

func (p *Presenter) ConnectBackend(ctx context.Context) error {
	return p.run(actionConnectBackend, func() (string, error) {
		if _, err := p.backend.Login(ctx); err != nil {
			return "", err
		}
		return "Connected as " + p.backend.Principal().String(), nil
	})
}

func (p *Presenter) DisconnectBackend() error {
	return p.run(actionDisconnectBackend, func() (string, error) {
		if err := p.backend.Logout(); err != nil {
			return "", err
		}
		return "Disconnected from Internet Identity", nil
	})
}

func (p *Presenter) ConnectWallet(ctx context.Context) error {
	return p.run(actionConnectWallet, func() (string, error) {
		account, err := p.wallet.Connect(ctx)
		if err != nil {
			return "", err
		}
		return "Wallet connected: " + account, nil
	})
}

func (p *Presenter) DisconnectWallet() error {
	return p.run(actionDisconnectWallet, func() (string, error) {
		p.wallet.Disconnect()
		return "Wallet disconnected", nil
	})
}

func (p *Presenter) run(action string, fn func() (string, error)) error {
	p.setBanner(Banner{Phase: PhaseLoading, Message: action + "..."})

	message, err := fn()
	if err != nil {
		p.log.Error("action failed",
			logger.NewField("action", action),
			logger.NewField("error", err),
		)
		p.setBanner(Banner{Phase: PhaseError, Message: fmt.Sprintf("Failed to %s: %v", action, err)})
		return err
	}

	p.setBanner(Banner{Phase: PhaseSuccess, Message: message})
	return nil
}

func (p *Presenter) setBanner(b Banner) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.banner = b
}

// Banner последнее сообщение действия.
func (p *Presenter) Banner() Banner {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.banner
}

// State собирает снимок. Баланс запрашивается только у подключенного кошелька.
func (p *Presenter) State(ctx context.Context) State {
	state := State{
		BackendConnected: p.backend.IsAuthenticated(),
		WalletConnected:  p.wallet.IsConnected(),
		Banner:           p.Banner(),
	}
	if state.BackendConnected {
		state.Principal = p.backend.Principal().String()
	}
	if state.WalletConnected {
		state.Account = p.wallet.Account()
		state.Network = p.wallet.NetworkName()

		balance, err := p.wallet.Balance(ctx)
		if err != nil {
			p.log.Warn("failed to fetch wallet balance", logger.NewField("error", err))
		} else {
			state.Balance = balance
		}
	}
	state.Combination = combine(state.BackendConnected, state.WalletConnected)
	return state
}

func (p *Presenter) Render(ctx context.Context, w io.Writer) error {
	return Render(w, p.State(ctx))
}
