package stats_snapshot

import (
	"context"
	"time"

	"shipping/internal/entities"
	"shipping/pkg/logger"
)

type StatsSnapshot struct {
	log      taskLogger
	service  Service
	gauges   Gauges
	interval time.Duration

	last entities.PlatformStats
}

func NewStatsSnapshot(log taskLogger, service Service, gauges Gauges, interval time.Duration) *StatsSnapshot {
	return &StatsSnapshot{
		log:      log,
		service:  service,
		gauges:   gauges,
		interval: interval,
	}
}

func (s *StatsSnapshot) TTL() time.Duration {
	return s.interval
}

// Do выгружает get_platform_stats в gauges, лог пишется только при изменениях.
func (s *StatsSnapshot) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	stats, err := s.service.Get(ctxWithTimeout)
	if err != nil {
		return err
	}

	s.gauges.Set(*stats)

	if *stats != s.last {
		s.log.Info("platform stats snapshot",
			logger.NewField("total_users", stats.TotalUsers),
			logger.NewField("total_shipments", stats.TotalShipments),
			logger.NewField("total_drivers", stats.TotalDrivers),
			logger.NewField("delivered_shipments", stats.DeliveredShipments),
			logger.NewField("pending_shipments", stats.PendingShipments),
		)
		s.last = *stats
	}

	return nil
}

func (s *StatsSnapshot) Info() string {
	return "platform stats snapshot"
}
