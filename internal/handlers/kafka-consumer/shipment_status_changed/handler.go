package shipment_status_changed

import (
	"context"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"shipping/internal/pkg/kafka"
	"shipping/internal/service/tracking"
	"shipping/pkg/logger"
)

const (
	outcomeProcessed = "processed"
	outcomeStale     = "stale"
	outcomeNotFound  = "not_found"
	outcomeFailed    = "failed"
)

type Handler struct {
	trackingService          Service
	recorder                 EventRecorder
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, trackingService Service, recorder EventRecorder, timeout time.Duration) *Handler {
	return &Handler{
		trackingService:          trackingService,
		recorder:                 recorder,
		log:                      log,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("shipment.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("shipment.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если контекст отменен и сообщение надо перечитать.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	event, err := kafka.DecodeStatusChanged(message.Value)
	if err != nil {
		h.log.Error("shipment.status.changed handler received bad message",
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		)
		sess.MarkMessage(message, "")
		return false
	}

	fields := []logger.Field{
		logger.NewField("shipment", event.ShipmentID),
		logger.NewField("status", event.Status.String()),
		logger.NewField("event_id", event.EventID),
		logger.NewField("offset", message.Offset),
	}

	shipment, err := h.trackingService.ProcessStatusChange(ctx, event)
	if err != nil {
		fields = append(fields, logger.NewField("error", err))

		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			h.log.Warn("shipment.status.changed handler context cancelled, message will be reprocessed", fields...)
			return true

		case errors.Is(err, tracking.ErrStatusMismatch):
			h.recorder.IncEvent(event.Status, outcomeStale)
			h.log.Info("shipment.status.changed handler skipped stale event", fields...)

		case errors.Is(err, tracking.ErrShipmentNotFound):
			h.recorder.IncEvent(event.Status, outcomeNotFound)
			h.log.Warn("shipment.status.changed handler shipment not found on replica", fields...)

		default:
			h.recorder.IncEvent(event.Status, outcomeFailed)
			h.log.Warn("shipment.status.changed handler failed to process shipment", fields...)
		}
		sess.MarkMessage(message, "")
		return false
	}

	h.recorder.IncEvent(shipment.Status, outcomeProcessed)
	h.log.Info("shipment.status.changed: processed", fields...)

	sess.MarkMessage(message, "")
	return false
}
