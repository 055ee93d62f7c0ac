package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"shipping/internal/wire"
	retrierconfig "shipping/pkg/retrier"
	"shipping/pkg/retrier/backoff_adapter"
)

const (
	maxErrorBody = 4 << 10

	initialInterval = 500 * time.Millisecond
	maxInterval     = 5 * time.Second
	maxElapsedTime  = 30 * time.Second
	randomization   = 0.5
	multiplier      = 2
)

type Config struct {
	Host        string
	CanisterID  string
	CallTimeout time.Duration

	// Для локальной сети ключ корня доверия запрашивается у реплики перед первым вызовом.
	FetchRootKey bool
}

// Agent привязанный к канистре и (опционально) к identity транспорт вызовов.
type Agent struct {
	client  httpDoer
	cfg     Config
	signer  envelopeSigner
	retrier retrier
	rootKey []byte
}

type Option func(*Agent)

// WithRetrier заменяет политику повторов для запроса root key.
func WithRetrier(r retrier) Option {
	return func(a *Agent) {
		a.retrier = r
	}
}

// WithRootKey переиспользует уже полученный ключ.
func WithRootKey(key []byte) Option {
	return func(a *Agent) {
		a.rootKey = key
	}
}

// New создает агента. signer == nil - анонимные вызовы.
func New(client httpDoer, cfg Config, signer envelopeSigner, opts ...Option) *Agent {
	a := &Agent{
		client: client,
		cfg:    cfg,
		signer: signer,
		retrier: backoff_adapter.New(retrierconfig.Config{
			InitialInterval: initialInterval,
			MaxInterval:     maxInterval,
			MaxElapsedTime:  maxElapsedTime,
			Randomization:   randomization,
			Multiplier:      multiplier,
		}),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Agent) CanisterID() string {
	return a.cfg.CanisterID
}

func (a *Agent) RootKey() []byte {
	return a.rootKey
}

// FetchRootKey запрашивает ключ у реплики. Только для локальной сети.
func (a *Agent) FetchRootKey(ctx context.Context) error {
	var status wire.StatusResponse
	err := a.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.cfg.Host+"/api/v2/status", http.NoBody)
		if err != nil {
			return err
		}

		resp, err := a.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return httpError(resp)
		}
		if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
			return fmt.Errorf("%w: %w", ErrUnexpectedReply, err)
		}
		if status.ReplicaHealthStatus != wire.HealthStatusHealthy {
			return fmt.Errorf("%w: %s", ErrReplicaUnhealthy, status.ReplicaHealthStatus)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("fetch root key: %w", err)
	}
	if len(status.RootKey) == 0 {
		return fmt.Errorf("fetch root key: %w: empty key", ErrUnexpectedReply)
	}

	a.rootKey = status.RootKey
	return nil
}

func (a *Agent) Query(ctx context.Context, method string, args []json.RawMessage, out any) error {
	return a.invoke(ctx, wire.ModeQuery, method, args, out)
}

func (a *Agent) Call(ctx context.Context, method string, args []json.RawMessage, out any) error {
	return a.invoke(ctx, wire.ModeUpdate, method, args, out)
}

func (a *Agent) invoke(ctx context.Context, mode wire.Mode, method string, args []json.RawMessage, out any) error {
	if a.cfg.FetchRootKey && len(a.rootKey) == 0 {
		return ErrRootKeyMissing
	}

	if a.cfg.CallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.CallTimeout)
		defer cancel()
	}

	if args == nil {
		args = []json.RawMessage{}
	}
	body, err := json.Marshal(wire.Request{Args: args})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/v2/canister/%s/%s/%s", a.cfg.Host, a.cfg.CanisterID, callPath(mode), method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if a.signer != nil {
		token, err := a.signer.Sign(method, body)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", mode, method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return httpError(resp)
	}

	var envelope wire.Response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("%w: %w", ErrUnexpectedReply, err)
	}

	switch envelope.Status {
	case wire.StatusReplied:
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(envelope.Reply, out); err != nil {
			return fmt.Errorf("decode %s reply: %w", method, err)
		}
		return nil
	case wire.StatusRejected:
		return &RejectError{Method: method, Code: envelope.RejectCode, Message: envelope.RejectMessage}
	default:
		return fmt.Errorf("%w: status %q", ErrUnexpectedReply, envelope.Status)
	}
}

func callPath(mode wire.Mode) string {
	if mode == wire.ModeQuery {
		return "query"
	}
	return "call"
}

func httpError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
}
