package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bibbank/cdbsim/internal/application/usecase"
	"github.com/bibbank/cdbsim/internal/domain/service"
	"github.com/bibbank/cdbsim/internal/infrastructure/config"
	grpcPresentation "github.com/bibbank/cdbsim/internal/presentation/grpc"
	"github.com/bibbank/cdbsim/internal/presentation/rest"
	"github.com/bibbank/cdbsim/pkg/auth"
	"github.com/bibbank/cdbsim/pkg/observability"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slog.SetDefault(logger)

	logger.Info("starting cdbsim",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Initialize tracing
	shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Endpoint:    cfg.Telemetry.OTLPEndpoint,
		Insecure:    true,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer shutdown(ctx)
	}

	// Initialize metrics
	_, metricsHandler, err := observability.InitMetrics()
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}

	// Wire dependencies (DI via constructors)
	engine := service.NewValuationEngine()
	runSimulationUC := usecase.NewRunSimulation(engine)

	// JWT service (validation-only: public key preferred, secret as fallback).
	jwtCfg := auth.JWTConfig{
		Issuer: cfg.Auth.Issuer,
	}
	if cfg.Auth.JWTPublicKeyFile != "" {
		keyData, err := auth.LoadKeyFromFile(cfg.Auth.JWTPublicKeyFile)
		if err != nil {
			logger.Error("failed to load JWT public key file", "error", err)
			os.Exit(1)
		}
		jwtCfg.PublicKeyPEM = string(keyData)
	} else {
		jwtSecret := cfg.Auth.JWTSecret
		if jwtSecret == "" {
			jwtSecret = "dev-secret-change-in-prod" // development only
		}
		jwtCfg.Secret = jwtSecret
	}
	jwtSvc, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// gRPC server
	handler := grpcPresentation.NewSimulationHandler(runSimulationUC)
	grpcServer := grpcPresentation.NewServer(handler, cfg.GRPCPort, logger, jwtSvc)

	// HTTP server (health checks, metrics, REST simulation)
	mux := http.NewServeMux()
	rest.NewHealthHandler().RegisterRoutes(mux)
	rest.NewSimulationHandler(runSimulationUC, logger).RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: mux,
	}

	// Start servers
	errCh := make(chan error, 2)

	go func() {
		errCh <- grpcServer.Start(ctx)
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for shutdown
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown
	httpServer.Shutdown(context.Background())
	grpcServer.Stop()
	logger.Info("cdbsim stopped")
}
