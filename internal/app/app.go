package app

import (
	"shipping/internal/handlers/kafka-consumer/shipment_status_changed"
	"shipping/internal/pkg/identity"
	"shipping/internal/presenter/connection"
	nonceRepo "shipping/internal/repository/nonce"
	backendService "shipping/internal/service/backend"
	canisterService "shipping/internal/service/canister"
	walletService "shipping/internal/service/wallet"
	"shipping/pkg/background"
)

// Replica зависимости HTTP транспорта реплики.
type Replica struct {
	Dispatcher        *canisterService.Dispatcher
	Verifier          *identity.Verifier
	Nonces            *nonceRepo.Repository
	BackgroundWorkers *background.Worker
}

type StatusWorker struct {
	Handler *shipment_status_changed.Handler
}

type Client struct {
	Backend   *backendService.Service
	Wallet    *walletService.Service
	Presenter *connection.Presenter
}
