//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"io"
	"net/http"

	"shipping/internal/gateway/canister"
	"shipping/internal/gateway/ethrpc"
	"shipping/internal/handlers/kafka-consumer/shipment_status_changed"
	"shipping/internal/handlers/tasks/stats_snapshot"
	"shipping/internal/pkg/config"
	"shipping/internal/pkg/factory/shipping_cost"
	"shipping/internal/pkg/factory/status_handle"
	"shipping/internal/pkg/identity"
	"shipping/internal/pkg/kafka"
	"shipping/internal/pkg/metrics"
	"shipping/internal/presenter/connection"

	driverRepo "shipping/internal/repository/driver"
	returnsRepo "shipping/internal/repository/returns"
	shipmentRepo "shipping/internal/repository/shipment"
	statsRepo "shipping/internal/repository/stats"
	userRepo "shipping/internal/repository/user"
	backendService "shipping/internal/service/backend"
	driverService "shipping/internal/service/driver"
	returnsService "shipping/internal/service/returns"
	shipmentService "shipping/internal/service/shipment"
	statsService "shipping/internal/service/stats"
	trackingService "shipping/internal/service/tracking"
	userService "shipping/internal/service/user"
	walletService "shipping/internal/service/wallet"

	"shipping/pkg/logger"
	"shipping/pkg/tx"

	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
)

// InitializeReplica для локальной реплики (cmd/replica)
func InitializeReplica(
	log logger.Logger,
	pool *pgxpool.Pool,
	redisClient *goredis.Client,
	publisher *kafka.Producer,
	cfg *config.Replica,
) (*Replica, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideUserRepository,
		provideShipmentRepository,
		provideDriverRepository,
		provideReturnsRepository,
		provideStatsRepository,
		provideNonceRepository,

		shipping_cost.New,
		provideUserService,
		provideShipmentService,
		provideDriverService,
		provideReturnsService,
		provideStatsService,
		provideDispatcher,
		provideVerifier,

		stats_snapshot.NewPromGauges,
		provideStatsSnapshotTask,
		metrics.NewSystemCollector,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Replica), "*"),

		wire.Bind(new(userService.Repository), new(*userRepo.Repository)),
		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),
		wire.Bind(new(returnsService.Repository), new(*returnsRepo.Repository)),
		wire.Bind(new(statsService.Repository), new(*statsRepo.Repository)),

		wire.Bind(new(shipmentService.UserReader), new(*userService.Service)),
		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(shipmentService.CostCalculator), new(*shipping_cost.CostFactory)),
		wire.Bind(new(shipmentService.EventPublisher), new(*kafka.Producer)),
		wire.Bind(new(returnsService.ShipmentReader), new(*shipmentService.Service)),
		wire.Bind(new(returnsService.TxManager), new(*tx.Manager)),

		wire.Bind(new(stats_snapshot.Service), new(*statsService.Service)),
		wire.Bind(new(stats_snapshot.Gauges), new(*stats_snapshot.PromGauges)),
	)
	return &Replica{}, nil
}

// InitializeStatusWorker для Kafka воркера (cmd/worker-shipment-status-changed)
func InitializeStatusWorker(
	ctx context.Context,
	log logger.Logger,
	client *http.Client,
	cfg *config.Worker,
) (*StatusWorker, error) {
	wire.Build(
		provideWorkerCanisterFactory,
		provideAnonymousGateway,
		metrics.NewShipmentRecorder,
		status_handle.NewStatusHandlerFactory,
		trackingService.New,
		provideStatusChangedHandler,

		wire.Bind(new(trackingService.ShipmentGateway), new(*canister.Gateway)),
		wire.Bind(new(trackingService.HandlerFactory), new(*status_handle.StatusHandlerFactory)),
		wire.Bind(new(status_handle.Recorder), new(*metrics.ShipmentRecorder)),
		wire.Bind(new(shipment_status_changed.Service), new(*trackingService.Service)),
		wire.Bind(new(shipment_status_changed.EventRecorder), new(*metrics.ShipmentRecorder)),

		wire.Struct(new(StatusWorker), "*"),
	)
	return nil, nil
}

// InitializeClient для shipctl (cmd/shipctl)
func InitializeClient(
	log logger.Logger,
	client *http.Client,
	cfg *config.Client,
	in io.Reader,
	out io.Writer,
) (*Client, error) {
	wire.Build(
		provideClientCanisterFactory,
		provideActorFactory,
		provideSessionStore,
		identity.NewPromptProvider,
		provideBackendService,
		provideWalletGateway,
		provideWalletService,
		providePresenter,

		wire.Bind(new(backendService.SessionStore), new(*identity.KeyringStore)),
		wire.Bind(new(backendService.IdentityProvider), new(*identity.PromptProvider)),
		wire.Bind(new(walletService.Provider), new(*ethrpc.Gateway)),
		wire.Bind(new(connection.BackendRail), new(*backendService.Service)),
		wire.Bind(new(connection.WalletRail), new(*walletService.Service)),

		wire.Struct(new(Client), "*"),
	)
	return nil, nil
}
