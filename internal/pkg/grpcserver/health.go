package grpcserver

import (
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	healthgateway "shipping/internal/gateway/grpc/health"
	"shipping/internal/pkg/config"
	"shipping/pkg/logger"
)

// HealthServer grpc health реплики: воркер ждет SERVING перед стартом консьюмера.
type HealthServer struct {
	log    logger.Logger
	server *grpc.Server
	health *health.Server
	lis    net.Listener
}

func NewHealthServer(log logger.Logger, cfg *config.GRPCHealth) (*HealthServer, error) {
	lis, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return nil, fmt.Errorf("listen grpc health port %s: %w", cfg.Port, err)
	}
	return newHealthServer(log, lis), nil
}

func newHealthServer(log logger.Logger, lis net.Listener) *HealthServer {
	server := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)
	reflection.Register(server)

	healthServer.SetServingStatus(healthgateway.ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &HealthServer{
		log:    log.With(logger.NewField("component", "grpc-health"), logger.NewField("addr", lis.Addr().String())),
		server: server,
		health: healthServer,
		lis:    lis,
	}
}

// Serve блокирует до Stop.
func (s *HealthServer) Serve() error {
	s.log.Info("gRPC health server starting")
	if err := s.server.Serve(s.lis); err != nil {
		return fmt.Errorf("grpc health serve: %w", err)
	}
	return nil
}

func (s *HealthServer) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus(healthgateway.ServiceName, status)
	s.log.Info("gRPC health status changed", logger.NewField("status", status.String()))
}

func (s *HealthServer) Stop() {
	s.health.Shutdown()
	s.server.GracefulStop()
}
