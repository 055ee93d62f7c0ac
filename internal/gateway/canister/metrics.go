package canister

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "canister_gateway_request_duration_seconds",
			Help:    "Duration of backend canister calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"canister", "method", "outcome"},
	)

	GatewayRemoteRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "canister_gateway_remote_rejections_total",
			Help: "Total number of Err results returned by the backend canister",
		},
		[]string{"canister", "method"},
	)
)
