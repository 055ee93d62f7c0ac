package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"shipping/internal/entities"
)

var (
	ShipmentStatusEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shipment_status_events_total",
			Help: "Shipment status change events consumed by the worker",
		},
		[]string{"status", "outcome"},
	)

	ShipmentDeliveryLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shipment_delivery_latency_seconds",
			Help:    "Time from shipment creation to delivery",
			Buckets: prometheus.ExponentialBuckets(60, 4, 10),
		},
	)

	ShipmentPickupWait = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shipment_pickup_wait_seconds",
			Help:    "Time from shipment creation to driver assignment",
			Buckets: prometheus.ExponentialBuckets(30, 4, 10),
		},
	)

	ShipmentTerminalTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shipment_terminal_total",
			Help: "Shipments that ended without delivery",
		},
		[]string{"status"},
	)
)

// ShipmentRecorder пишет метрики жизненного цикла посылок в глобальный registry.
type ShipmentRecorder struct{}

func NewShipmentRecorder() *ShipmentRecorder {
	return &ShipmentRecorder{}
}

func (r *ShipmentRecorder) ObserveDeliveryLatency(d time.Duration) {
	ShipmentDeliveryLatency.Observe(d.Seconds())
}

func (r *ShipmentRecorder) ObservePickupWait(d time.Duration) {
	ShipmentPickupWait.Observe(d.Seconds())
}

func (r *ShipmentRecorder) IncTerminal(status entities.ShipmentStatus) {
	ShipmentTerminalTotal.WithLabelValues(status.String()).Inc()
}

func (r *ShipmentRecorder) IncEvent(status entities.ShipmentStatus, outcome string) {
	ShipmentStatusEventsTotal.WithLabelValues(status.String(), outcome).Inc()
}
