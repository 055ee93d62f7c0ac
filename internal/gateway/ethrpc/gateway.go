package ethrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	"golang.org/x/time/rate"
)

const (
	methodAccounts        = "eth_accounts"
	methodRequestAccounts = "eth_requestAccounts"
	methodGetBalance      = "eth_getBalance"
	methodChainID         = "eth_chainId"

	jsonRPCVersion = "2.0"
)

type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
}

// Gateway клиент EIP-1193 провайдера поверх JSON-RPC 2.0.
type Gateway struct {
	client  httpDoer
	url     string
	limiter *rate.Limiter
	nextID  atomic.Uint64
}

// New создает шлюз. rps <= 0 отключает ограничение частоты запросов.
func New(client httpDoer, url string, rps float64, burst int) *Gateway {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if rps > 0 {
		limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
	return &Gateway{
		client:  client,
		url:     url,
		limiter: limiter,
	}
}

// Accounts уже разрешенные аккаунты, без запроса пользователю.
func (g *Gateway) Accounts(ctx context.Context) ([]string, error) {
	var accounts []string
	if err := g.call(ctx, methodAccounts, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// RequestAccounts интерактивный запрос доступа к аккаунтам.
func (g *Gateway) RequestAccounts(ctx context.Context) ([]string, error) {
	var accounts []string
	if err := g.call(ctx, methodRequestAccounts, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// Balance баланс в wei на последнем блоке.
func (g *Gateway) Balance(ctx context.Context, account string) (*big.Int, error) {
	var hexBalance string
	if err := g.call(ctx, methodGetBalance, &hexBalance, account, "latest"); err != nil {
		return nil, err
	}

	balance, ok := new(big.Int).SetString(strings.TrimPrefix(hexBalance, "0x"), 16)
	if !ok {
		return nil, fmt.Errorf("%w: balance %q", ErrInvalidResult, hexBalance)
	}
	return balance, nil
}

func (g *Gateway) ChainID(ctx context.Context) (uint64, error) {
	var hexID string
	if err := g.call(ctx, methodChainID, &hexID); err != nil {
		return 0, err
	}

	id, err := strconv.ParseUint(strings.TrimPrefix(hexID, "0x"), 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: chain id %q", ErrInvalidResult, hexID)
	}
	return id, nil
}

func (g *Gateway) call(ctx context.Context, method string, out any, params ...any) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	if params == nil {
		params = []any{}
	}
	body, err := json.Marshal(request{
		JSONRPC: jsonRPCVersion,
		ID:      g.nextID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("%s: marshal: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: build request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %d", method, resp.StatusCode)
	}

	var rpcResp response
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrInvalidResult, err)
	}
	if rpcResp.Error != nil {
		return fmt.Errorf("%s: %w", method, rpcResp.Error)
	}
	if err := json.Unmarshal(rpcResp.Result, out); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrInvalidResult, err)
	}
	return nil
}
