package grpcclient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"shipping/internal/gateway/grpc/health"
	"shipping/internal/pkg/config"
	"shipping/pkg/logger"
	"shipping/pkg/retrier"
	"shipping/pkg/retrier/backoff_adapter"
)

var keepaliveParams = keepalive.ClientParameters{
	Time:    5 * time.Minute,
	Timeout: 3 * time.Second,
}

// ReplicaHealth соединение с grpc health реплики и gateway поверх него.
type ReplicaHealth struct {
	*health.HealthGateway
	conn *grpc.ClientConn
}

// DialReplicaHealth возвращается, только когда реплика отвечает SERVING.
func DialReplicaHealth(ctx context.Context, log logger.Logger, cfg *config.ReplicaHealth) (*ReplicaHealth, error) {
	conn, err := grpc.NewClient(
		cfg.GRPCHost,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepaliveParams),
	)
	if err != nil {
		return nil, fmt.Errorf("grpc client for %s: %w", cfg.GRPCHost, err)
	}

	rh := &ReplicaHealth{
		HealthGateway: health.New(healthpb.NewHealthClient(conn)),
		conn:          conn,
	}

	r := backoff_adapter.New(retrier.DialConfig(time.Second))
	if err := retrier.Connect(ctx, r, log.With(logger.NewField("host", cfg.GRPCHost)), "replica-health", rh.Check); err != nil {
		return nil, errors.Join(err, conn.Close())
	}

	return rh, nil
}

func (r *ReplicaHealth) Close() error {
	return r.conn.Close()
}
