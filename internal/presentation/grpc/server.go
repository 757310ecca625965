package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/bibbank/cdbsim/pkg/auth"
)

// Server wraps a gRPC server for the simulation service.
type Server struct {
	server  *grpc.Server
	handler *SimulationHandler
	logger  *slog.Logger
	port    int
}

func NewServer(handler *SimulationHandler, port int, logger *slog.Logger, jwtService *auth.JWTService, opts ...grpc.ServerOption) *Server {
	// Add auth interceptor, skipping health check methods.
	authInterceptor := auth.UnaryAuthInterceptor(jwtService, []string{
		"/grpc.health.v1.Health/Check",
		"/grpc.health.v1.Health/Watch",
	})
	opts = append(opts, grpc.UnaryInterceptor(authInterceptor))

	srv := grpc.NewServer(opts...)

	// Register health check.
	healthSrv := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthSrv)
	healthSrv.SetServingStatus("cdbsim", grpc_health_v1.HealthCheckResponse_SERVING)

	// Register the SimulationService handler.
	RegisterSimulationServiceServer(srv, handler)

	// Only enable reflection when GRPC_REFLECTION=true.
	if os.Getenv("GRPC_REFLECTION") == "true" {
		reflection.Register(srv)
	}

	return &Server{
		server:  srv,
		handler: handler,
		port:    port,
		logger:  logger,
	}
}

func (s *Server) Start(ctx context.Context) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("listen on port %d: %w", s.port, err)
	}

	s.logger.Info("gRPC server starting", "port", s.port)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down gRPC server")
		s.server.GracefulStop()
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Server) Stop() {
	s.server.GracefulStop()
}
