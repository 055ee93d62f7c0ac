package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	NetworkLocal = "local"
	NetworkIC    = "ic"

	DefaultCanisterID      = "rrkah-fqaaa-aaaaa-aaaaq-cai"
	DefaultLocalHost       = "http://127.0.0.1:4943"
	DefaultProductionHost  = "https://icp-api.io"
	DefaultKeyringService  = "shipctl"
	defaultSessionTTL      = 7 * 24 * time.Hour
	defaultCallTimeout     = 30 * time.Second
	defaultIngressExpiry   = 5 * time.Minute
	defaultWalletRPCURL    = "http://127.0.0.1:8545"
	defaultWalletRateLimit = 5
)

// Client настройки shipctl. Файл профиля читается первым, переменные окружения его перекрывают.
type Client struct {
	Network        string        `yaml:"network"`
	CanisterID     string        `yaml:"canister_id"`
	LocalHost      string        `yaml:"local_host"`
	ProductionHost string        `yaml:"production_host"`
	CallTimeout    time.Duration `yaml:"call_timeout"`
	IngressExpiry  time.Duration `yaml:"ingress_expiry"`
	SessionTTL     time.Duration `yaml:"session_ttl"`
	KeyringService string        `yaml:"keyring_service"`
	WalletRPCURL   string        `yaml:"wallet_rpc_url"`
	WalletRPS      float64       `yaml:"wallet_rps"`
	LogLevel       string        `yaml:"log_level"`
}

func LoadClient() (*Client, error) {
	cfg := defaultClient()

	if path := os.Getenv("SHIPPING_CONFIG_FILE"); path != "" {
		if err := loadClientFile(path, cfg); err != nil {
			return nil, fmt.Errorf("profile loading: %w", err)
		}
	}

	if err := loadClientFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateClient(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// Canister адрес канистры для выбранной сети.
func (c *Client) Canister() Canister {
	host := c.ProductionHost
	if c.Network == NetworkLocal {
		host = c.LocalHost
	}
	return Canister{
		Host:         host,
		CanisterID:   c.CanisterID,
		CallTimeout:  c.CallTimeout,
		FetchRootKey: c.Network == NetworkLocal,
	}
}

func defaultClient() *Client {
	return &Client{
		Network:        NetworkLocal,
		CanisterID:     DefaultCanisterID,
		LocalHost:      DefaultLocalHost,
		ProductionHost: DefaultProductionHost,
		CallTimeout:    defaultCallTimeout,
		IngressExpiry:  defaultIngressExpiry,
		SessionTTL:     defaultSessionTTL,
		KeyringService: DefaultKeyringService,
		WalletRPCURL:   defaultWalletRPCURL,
		WalletRPS:      defaultWalletRateLimit,
		LogLevel:       "info",
	}
}

func loadClientFile(path string, cfg *Client) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func loadClientFromEnv(cfg *Client) error {
	e := &env{}

	cfg.Network = e.str("DFX_NETWORK", cfg.Network)
	cfg.CanisterID = e.str("CANISTER_ID_BACKEND", cfg.CanisterID)
	cfg.LocalHost = e.str("IC_HOST_LOCAL", cfg.LocalHost)
	cfg.ProductionHost = e.str("IC_HOST_PRODUCTION", cfg.ProductionHost)
	cfg.KeyringService = e.str("KEYRING_SERVICE", cfg.KeyringService)
	cfg.WalletRPCURL = e.str("WALLET_RPC_URL", cfg.WalletRPCURL)
	cfg.LogLevel = e.str("LOG_LEVEL", cfg.LogLevel)
	cfg.CallTimeout = e.duration("CALL_TIMEOUT", cfg.CallTimeout)
	cfg.IngressExpiry = e.duration("INGRESS_EXPIRY", cfg.IngressExpiry)
	cfg.SessionTTL = e.duration("SESSION_TTL", cfg.SessionTTL)
	cfg.WalletRPS = e.float("WALLET_RPS", cfg.WalletRPS)

	return e.err()
}

func validateClient(cfg *Client) error {
	if cfg.Network != NetworkLocal && cfg.Network != NetworkIC {
		return fmt.Errorf("DFX_NETWORK must be %q or %q, got %q", NetworkLocal, NetworkIC, cfg.Network)
	}
	if cfg.CanisterID == "" {
		return errors.New("CANISTER_ID_BACKEND is required")
	}
	if cfg.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if cfg.IngressExpiry <= 0 {
		return errors.New("INGRESS_EXPIRY must be positive")
	}
	return nil
}
