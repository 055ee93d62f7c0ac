package stats_snapshot

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"shipping/internal/entities"
)

var platformStats = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "platform_stats",
		Help: "Platform totals as returned by get_platform_stats",
	},
	[]string{"kind"},
)

type PromGauges struct{}

func NewPromGauges() *PromGauges {
	return &PromGauges{}
}

func (PromGauges) Set(stats entities.PlatformStats) {
	platformStats.WithLabelValues("users").Set(float64(stats.TotalUsers))
	platformStats.WithLabelValues("shipments").Set(float64(stats.TotalShipments))
	platformStats.WithLabelValues("drivers").Set(float64(stats.TotalDrivers))
	platformStats.WithLabelValues("delivered").Set(float64(stats.DeliveredShipments))
	platformStats.WithLabelValues("pending").Set(float64(stats.PendingShipments))
}
