package returns

import (
	"context"
	"fmt"
	"time"

	"shipping/internal/entities"
	"shipping/internal/service/shipment"
)

type Service struct {
	repository Repository
	shipments  ShipmentReader
	txManager  TxManager
	now        func() time.Time
}

func New(repository Repository, shipments ShipmentReader, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		shipments:  shipments,
		txManager:  txManager,
		now:        time.Now,
	}
}

// Create оформляет возврат доставленной посылки от имени ее отправителя.
func (s *Service) Create(ctx context.Context, caller entities.Principal, shipmentID, reason string) (*entities.ReturnRequest, error) {
	sh, err := s.shipments.Get(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("create return request: %w", err)
	}
	if sh == nil {
		return nil, shipment.ErrShipmentNotFound
	}
	if sh.SenderID != caller {
		return nil, ErrUnauthorizedReturn
	}
	if sh.Status != entities.ShipmentDelivered {
		return nil, ErrNotDelivered
	}

	var created *entities.ReturnRequest
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		id, err := s.repository.NextID(ctx)
		if err != nil {
			return err
		}
		created, err = s.repository.Create(ctx, entities.ReturnRequest{
			ID:          id,
			ShipmentID:  shipmentID,
			RequesterID: caller,
			Reason:      reason,
			Status:      entities.ReturnRequested,
			CreatedAt:   s.now(),
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create return request: %w", err)
	}

	return created, nil
}

func (s *Service) ListByRequester(ctx context.Context, caller entities.Principal) ([]entities.ReturnRequest, error) {
	requests, err := s.repository.ListByRequester(ctx, caller)
	if err != nil {
		return nil, fmt.Errorf("list return requests: %w", err)
	}
	return requests, nil
}
