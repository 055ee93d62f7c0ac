package health

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	retrierconfig "shipping/pkg/retrier"
	"shipping/pkg/retrier/backoff_adapter"
)

// ServiceName имя, под которым реплика регистрирует статус в grpc health.
const ServiceName = "shipping.replica"

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 1 * time.Second
	maxElapsedTime  = 2 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type HealthGateway struct {
	client  client
	retrier retrier
}

func New(client client) *HealthGateway {
	return &HealthGateway{
		client: client,
		retrier: backoff_adapter.New(retrierconfig.Config{
			InitialInterval: initialInterval,
			MaxInterval:     maxInterval,
			MaxElapsedTime:  maxElapsedTime,
			Randomization:   randomization,
			Multiplier:      multiplier,
			ShouldRetry:     isRetryableCode,
		}),
	}
}

// Check nil только при SERVING.
func (g *HealthGateway) Check(ctx context.Context) error {
	var resp *healthpb.HealthCheckResponse

	err := g.executeWithMetrics(ctx, func(ctx context.Context) error {
		var err error
		resp, err = g.client.Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
		return err
	})
	if err != nil {
		return fmt.Errorf("gateway health, check %s: %w", ServiceName, err)
	}

	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("%w: %s", ErrNotServing, resp.GetStatus())
	}
	return nil
}

func isRetryableCode(err error) bool {
	st, ok := status.FromError(err)
	if !ok || err == nil {
		return false
	}

	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return true
	default:
		return false
	}
}

func (g *HealthGateway) executeWithMetrics(ctx context.Context, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	grpcCode := status.Code(err).String()
	GatewayRequestDuration.WithLabelValues(ServiceName, grpcCode).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(ServiceName, grpcCode).Inc()
	}

	return err
}
