package main

import (
	"fmt"
	stdlog "log"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"shipping/internal/app"
	"shipping/internal/pkg/config"
	"shipping/internal/pkg/dotenv"
	"shipping/pkg/logger"
	"shipping/pkg/logger/zap_adapter"
)

// session общее состояние команд: клиент собирается один раз в PersistentPreRunE.
type session struct {
	client *app.Client
	log    logger.Logger
	sync   func() error
}

func newRootCommand() *cobra.Command {
	s := &session{}

	root := &cobra.Command{
		Use:           "shipctl",
		Short:         "Shipping platform client: backend canister and wallet",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.open(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			s.close()
		},
	}

	root.AddCommand(
		newStatusCommand(s),
		newLoginCommand(s),
		newLogoutCommand(s),
		newWalletConnectCommand(s),
		newWalletDisconnectCommand(s),
		newWhoamiCommand(s),
		newRegisterUserCommand(s),
		newCreateShipmentCommand(s),
		newUpdateStatusCommand(s),
		newRegisterDriverCommand(s),
		newAssignDriverCommand(s),
		newCreateReturnCommand(s),
		newShipmentCommand(s),
		newShipmentsCommand(s),
		newDriversCommand(s),
		newReturnsCommand(s),
		newStatsCommand(s),
		newUserCommand(s),
	)
	return root
}

func (s *session) open(cmd *cobra.Command) error {
	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			return fmt.Errorf("load .env: %w", err)
		}
	}

	cfg, err := config.LoadClient()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(
		zap_adapter.WithStderr(),
		zap_adapter.WithLevel(cfg.LogLevel),
	)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	s.log = zapLogger.With(logger.NewField("network", cfg.Network))
	s.sync = zapLogger.Sync

	httpClient := &http.Client{Timeout: cfg.CallTimeout}

	client, err := app.InitializeClient(s.log, httpClient, cfg, cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("initialize client: %w", err)
	}
	s.client = client

	return client.Presenter.Mount(cmd.Context())
}

func (s *session) close() {
	if s.sync == nil {
		return
	}
	if err := s.sync(); err != nil {
		stdlog.Printf("failed to sync logger: %v", err)
	}
}
