package shipment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"shipping/internal/entities"
	"shipping/pkg/logger"
)

const assignDescription = "Driver assigned and pickup scheduled"

type Service struct {
	repository Repository
	users      UserReader
	txManager  TxManager
	cost       CostCalculator
	publisher  EventPublisher
	log        serviceLogger
	now        func() time.Time
}

func New(
	repository Repository,
	users UserReader,
	txManager TxManager,
	cost CostCalculator,
	publisher EventPublisher,
	log serviceLogger,
) *Service {
	return &Service{
		repository: repository,
		users:      users,
		txManager:  txManager,
		cost:       cost,
		publisher:  publisher,
		log:        log,
		now:        time.Now,
	}
}

func (s *Service) Create(ctx context.Context, caller entities.Principal, create entities.ShipmentCreate) (*entities.Shipment, error) {
	user, err := s.users.Get(ctx, caller)
	if err != nil {
		return nil, fmt.Errorf("create shipment: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotRegistered
	}
	if !user.UserType.CanCreateShipments() {
		return nil, ErrUnauthorizedCreate
	}

	now := s.now()
	shipment := entities.Shipment{
		SenderID:        caller,
		RecipientName:   create.RecipientName,
		RecipientPhone:  create.RecipientPhone,
		PickupAddress:   create.PickupAddress,
		DeliveryAddress: create.DeliveryAddress,
		PackageDetails:  create.PackageDetails,
		Status:          entities.ShipmentCreated,
		CreatedAt:       now,
		UpdatedAt:       now,
		TrackingHistory: []entities.TrackingEvent{},
		PaymentStatus:   entities.PaymentPending,
		Cost:            s.cost.Calculate(create.PickupAddress, create.DeliveryAddress, create.PackageDetails),
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		id, err := s.repository.NextID(ctx)
		if err != nil {
			return err
		}
		shipment.ID = id
		return s.repository.Create(ctx, shipment)
	})
	if err != nil {
		return nil, fmt.Errorf("create shipment: %w", err)
	}

	return &shipment, nil
}

// Get nil без ошибки, если посылки нет.
func (s *Service) Get(ctx context.Context, id string) (*entities.Shipment, error) {
	shipment, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrShipmentNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return shipment, nil
}

func (s *Service) ListBySender(ctx context.Context, caller entities.Principal) ([]entities.Shipment, error) {
	shipments, err := s.repository.ListBySender(ctx, caller)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	return shipments, nil
}

// UpdateStatus меняет статус и добавляет ровно одно событие в историю.
func (s *Service) UpdateStatus(ctx context.Context, caller entities.Principal, update entities.ShipmentStatusUpdate) (*entities.Shipment, error) {
	if !update.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	var shipment *entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		shipment, err = s.repository.GetByID(ctx, update.ShipmentID)
		if err != nil {
			return err
		}

		if err := s.authorizeUpdate(ctx, caller, shipment); err != nil {
			return err
		}

		now := s.now()
		event := entities.TrackingEvent{
			Timestamp:   now,
			Status:      update.Status,
			Location:    update.Location,
			Description: update.Description,
			UpdatedBy:   caller,
		}

		modify := entities.ShipmentModify{
			ID:        shipment.ID,
			Status:    &update.Status,
			UpdatedAt: &now,
		}
		if update.Status == entities.ShipmentDelivered {
			modify.ActualDelivery = &now
			shipment.ActualDelivery = &now
		}

		if err := s.repository.Update(ctx, modify); err != nil {
			return err
		}
		if err := s.repository.AppendEvent(ctx, shipment.ID, event); err != nil {
			return err
		}

		shipment.Status = update.Status
		shipment.UpdatedAt = now
		shipment.TrackingHistory = append(shipment.TrackingHistory, event)
		return nil
	})
	if err != nil {
		return nil, wrapDomain("update shipment status", err)
	}

	s.publish(ctx, shipment, caller)
	return shipment, nil
}

// AssignDriver назначает водителя: вызывающий должен быть админом или самим водителем.
func (s *Service) AssignDriver(ctx context.Context, caller entities.Principal, shipmentID string, driverID entities.Principal) (*entities.Shipment, error) {
	user, err := s.users.Get(ctx, caller)
	if err != nil {
		return nil, fmt.Errorf("assign driver: %w", err)
	}
	if user == nil || (user.UserType != entities.UserAdmin && caller != driverID) {
		return nil, ErrUnauthorizedAssign
	}

	var shipment *entities.Shipment
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		shipment, err = s.repository.GetByID(ctx, shipmentID)
		if err != nil {
			return err
		}

		now := s.now()
		status := entities.ShipmentPickupScheduled
		event := entities.TrackingEvent{
			Timestamp:   now,
			Status:      status,
			Description: assignDescription,
			UpdatedBy:   caller,
		}

		err = s.repository.Update(ctx, entities.ShipmentModify{
			ID:        shipment.ID,
			Status:    &status,
			DriverID:  &driverID,
			UpdatedAt: &now,
		})
		if err != nil {
			return err
		}
		if err := s.repository.AppendEvent(ctx, shipment.ID, event); err != nil {
			return err
		}

		shipment.DriverID = &driverID
		shipment.Status = status
		shipment.UpdatedAt = now
		shipment.TrackingHistory = append(shipment.TrackingHistory, event)
		return nil
	})
	if err != nil {
		return nil, wrapDomain("assign driver", err)
	}

	s.publish(ctx, shipment, caller)
	return shipment, nil
}

func (s *Service) authorizeUpdate(ctx context.Context, caller entities.Principal, shipment *entities.Shipment) error {
	if shipment.SenderID == caller {
		return nil
	}
	if shipment.DriverID != nil && *shipment.DriverID == caller {
		return nil
	}

	user, err := s.users.Get(ctx, caller)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotRegistered
	}
	if user.UserType != entities.UserAdmin {
		return ErrUnauthorizedUpdate
	}
	return nil
}

// TODO: перенести публикацию в outbox-таблицу внутри транзакции, сейчас событие теряется при падении брокера.
func (s *Service) publish(ctx context.Context, shipment *entities.Shipment, caller entities.Principal) {
	err := s.publisher.PublishStatusChanged(ctx, entities.ShipmentStatusChanged{
		EventID:    uuid.NewString(),
		ShipmentID: shipment.ID,
		Status:     shipment.Status,
		UpdatedBy:  caller,
		OccurredAt: shipment.UpdatedAt,
	})
	if err != nil {
		s.log.Warn("failed to publish shipment status change",
			logger.NewField("shipment_id", shipment.ID),
			logger.NewField("status", shipment.Status.String()),
			logger.NewField("error", err),
		)
	}
}

// wrapDomain доменные ошибки возвращаются как есть, чтобы их текст дошел до клиента.
func wrapDomain(op string, err error) error {
	switch {
	case errors.Is(err, ErrShipmentNotFound),
		errors.Is(err, ErrUserNotRegistered),
		errors.Is(err, ErrUnauthorizedUpdate):
		return err
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
