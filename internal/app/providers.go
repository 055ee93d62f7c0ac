package app

import (
	"context"
	"net/http"
	"time"

	"shipping/internal/gateway/canister"
	"shipping/internal/gateway/ethrpc"
	"shipping/internal/handlers/kafka-consumer/shipment_status_changed"
	"shipping/internal/handlers/tasks/stats_snapshot"
	"shipping/internal/pkg/agent"
	"shipping/internal/pkg/config"
	"shipping/internal/pkg/identity"
	"shipping/internal/pkg/metrics"
	"shipping/internal/presenter/connection"

	driverRepo "shipping/internal/repository/driver"
	nonceRepo "shipping/internal/repository/nonce"
	returnsRepo "shipping/internal/repository/returns"
	shipmentRepo "shipping/internal/repository/shipment"
	statsRepo "shipping/internal/repository/stats"
	userRepo "shipping/internal/repository/user"
	backendService "shipping/internal/service/backend"
	canisterService "shipping/internal/service/canister"
	driverService "shipping/internal/service/driver"
	returnsService "shipping/internal/service/returns"
	shipmentService "shipping/internal/service/shipment"
	statsService "shipping/internal/service/stats"
	userService "shipping/internal/service/user"
	walletService "shipping/internal/service/wallet"

	"shipping/pkg/background"
	"shipping/pkg/logger"
	"shipping/pkg/querier"
	"shipping/pkg/tx"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
)

const (
	walletRPCBurst      = 1
	workerIngressExpiry = time.Minute
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool) *querier.Querier {
	return querier.New(pool)
}

func provideUserRepository(q *querier.Querier) *userRepo.Repository {
	return userRepo.New(q)
}

func provideShipmentRepository(q *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(q)
}

func provideDriverRepository(q *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(q)
}

func provideReturnsRepository(q *querier.Querier) *returnsRepo.Repository {
	return returnsRepo.New(q)
}

func provideStatsRepository(q *querier.Querier) *statsRepo.Repository {
	return statsRepo.New(q)
}

func provideNonceRepository(client *goredis.Client) *nonceRepo.Repository {
	return nonceRepo.New(client)
}

func provideUserService(repository userService.Repository) *userService.Service {
	return userService.New(repository)
}

func provideShipmentService(
	repository shipmentService.Repository,
	users shipmentService.UserReader,
	txManager shipmentService.TxManager,
	cost shipmentService.CostCalculator,
	publisher shipmentService.EventPublisher,
	log logger.Logger,
) *shipmentService.Service {
	return shipmentService.New(repository, users, txManager, cost, publisher, log.With(logger.NewField("component", "shipment")))
}

func provideDriverService(repository driverService.Repository) *driverService.Service {
	return driverService.New(repository)
}

func provideReturnsService(
	repository returnsService.Repository,
	shipments returnsService.ShipmentReader,
	txManager returnsService.TxManager,
) *returnsService.Service {
	return returnsService.New(repository, shipments, txManager)
}

func provideStatsService(repository statsService.Repository) *statsService.Service {
	return statsService.New(repository)
}

func provideDispatcher(
	users *userService.Service,
	shipments *shipmentService.Service,
	drivers *driverService.Service,
	returns *returnsService.Service,
	stats *statsService.Service,
	log logger.Logger,
) *canisterService.Dispatcher {
	return canisterService.New(users, shipments, drivers, returns, stats, log.With(logger.NewField("component", "dispatcher")))
}

func provideVerifier(cfg *config.Replica) *identity.Verifier {
	return identity.NewVerifier(cfg.Ingress.CanisterID, cfg.Ingress.Leeway)
}

func provideStatsSnapshotTask(
	log logger.Logger,
	service stats_snapshot.Service,
	gauges stats_snapshot.Gauges,
	cfg *config.Replica,
) *stats_snapshot.StatsSnapshot {
	return stats_snapshot.NewStatsSnapshot(log, service, gauges, cfg.Tasks.StatsSnapshotInterval)
}

func provideTaskList(
	statsSnapshotTask *stats_snapshot.StatsSnapshot,
	systemCollector *metrics.SystemCollector,
) []background.Task {
	return []background.Task{
		statsSnapshotTask,
		systemCollector,
	}
}

func provideBackgroundWorkers(log logger.Logger, tasks []background.Task) *background.Worker {
	return background.New(log, tasks...)
}

func agentConfig(c config.Canister) agent.Config {
	return agent.Config{
		Host:         c.Host,
		CanisterID:   c.CanisterID,
		CallTimeout:  c.CallTimeout,
		FetchRootKey: c.FetchRootKey,
	}
}

func provideWorkerCanisterFactory(client *http.Client, cfg *config.Worker) *canister.Factory {
	return canister.NewFactory(client, agentConfig(cfg.Canister), workerIngressExpiry)
}

func provideAnonymousGateway(ctx context.Context, factory *canister.Factory) (*canister.Gateway, error) {
	return factory.NewAnonymous(ctx)
}

func provideStatusChangedHandler(
	log logger.Logger,
	service shipment_status_changed.Service,
	recorder shipment_status_changed.EventRecorder,
	cfg *config.Worker,
) *shipment_status_changed.Handler {
	return shipment_status_changed.New(log, service, recorder, cfg.Kafka.Handlers.ShipmentStatusChanged.ProcessTimeout)
}

func provideClientCanisterFactory(client *http.Client, cfg *config.Client) *canister.Factory {
	return canister.NewFactory(client, agentConfig(cfg.Canister()), cfg.IngressExpiry)
}

func provideActorFactory(factory *canister.Factory) backendService.ActorFactory {
	return backendService.ActorFactoryFunc(func(ctx context.Context, id *identity.Identity) (backendService.Actor, error) {
		gateway, err := factory.NewActor(ctx, id)
		if err != nil {
			return nil, err
		}
		return gateway, nil
	})
}

func provideSessionStore(cfg *config.Client) *identity.KeyringStore {
	return identity.NewKeyringStore(cfg.KeyringService, cfg.SessionTTL)
}

func provideBackendService(
	factory backendService.ActorFactory,
	sessions backendService.SessionStore,
	provider backendService.IdentityProvider,
	log logger.Logger,
) *backendService.Service {
	return backendService.New(factory, sessions, provider, log.With(logger.NewField("component", "backend")))
}

func provideWalletGateway(client *http.Client, cfg *config.Client) *ethrpc.Gateway {
	return ethrpc.New(client, cfg.WalletRPCURL, cfg.WalletRPS, walletRPCBurst)
}

func provideWalletService(provider walletService.Provider, log logger.Logger) *walletService.Service {
	return walletService.New(provider, log.With(logger.NewField("component", "wallet")))
}

func providePresenter(
	backend connection.BackendRail,
	wallet connection.WalletRail,
	log logger.Logger,
) *connection.Presenter {
	return connection.New(backend, wallet, log.With(logger.NewField("component", "presenter")))
}
