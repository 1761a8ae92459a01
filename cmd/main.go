package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mycoordinator/adapters/gormstore"
	"mycoordinator/adapters/memstore"
	"mycoordinator/adapters/myredis"
	"mycoordinator/adapters/probe"
	"mycoordinator/adapters/supervisor"
	"mycoordinator/handlers"
	"mycoordinator/interfaces"
	"mycoordinator/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting MyCoordinator service")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"service_port_grpc", config.GRPCPort,
		"storage_backend", config.Storage,
		"production", config.Production,
		"lease_ttl", config.Coordinator.Registry.LeaseTTL,
		"supervisor_url", config.SupervisorURL,
	)

	var (
		repository interfaces.InstanceRepository
		closeStore func() error
	)
	{
		repository, closeStore, err = newRepository(config, logger)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to initialize storage", "backend", config.Storage, "err", err)
			os.Exit(1)
		}
	}

	var (
		metrics  *service.Metrics
		registry *prometheus.Registry
	)
	if config.MetricsEnabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics = service.NewMetrics(registry)
	}

	var starter interfaces.ServiceStarter
	{
		starter = supervisor.Noop()
		if config.SupervisorURL != "" {
			starter = supervisor.SupervisorHTTP(config.SupervisorURL, &http.Client{Timeout: 10 * time.Second})
		}
	}

	now := func() time.Time {
		return time.Now().UTC()
	}

	coordinator := service.NewCoordinator(service.CoordinatorDeps{
		Repository: repository,
		Clock:      service.NewTimeProvider(now),
		Starter:    starter,
		Prober:     probe.New(&http.Client{Timeout: config.Coordinator.ProbeTimeout}),
		Metrics:    metrics,
		Logger:     logger,
	}, config.Coordinator)

	// Create HTTPServer
	var httpServer handlers.ServerInterface
	{
		httpServer = handlers.NewHTTPServer(coordinator.Registry, coordinator.Orchestrator, coordinator.Sequencer, logger)
	}

	// Create HTTP server (Echo)
	var e *echo.Echo
	{
		validator, err := handlers.NewRequestValidator()
		if err != nil {
			level.Error(logger).Log("msg", "Failed to load OpenAPI spec", "err", err)
			os.Exit(1)
		}
		e = echo.New()
		e.HideBanner = true
		e.Use(validator)
		service.RegisterErrorHandler(e, logger)
		handlers.RegisterHandlers(e, httpServer)
		if registry != nil {
			handlers.RegisterMetrics(e, registry)
		}
	}

	var (
		grpcServer   *grpc.Server
		healthServer *health.Server
	)
	if config.GRPCPort != 0 {
		grpcServer = grpc.NewServer()
		healthServer = health.NewServer()
		healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
		grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
		reflection.Register(grpcServer)

		lis, err := net.Listen("tcp", fmt.Sprintf(":%d", config.GRPCPort))
		if err != nil {
			level.Error(logger).Log("msg", "Failed to listen", "err", err)
			os.Exit(1)
		}
		go func() {
			level.Info(logger).Log("msg", "Starting gRPC health server", "addr", lis.Addr())
			if err := grpcServer.Serve(lis); err != nil {
				level.Error(logger).Log("msg", "gRPC server error", "err", err)
			}
		}()
	}

	// Start periodic cleanup and health sweep
	runCtx, stopRun := context.WithCancel(context.Background())
	defer stopRun()
	coordinator.Start(runCtx)

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
		}
	}()

	// Wait for interrupt signal
	<-quit
	level.Info(logger).Log("msg", "Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if healthServer != nil {
		healthServer.Shutdown()
	}
	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}
	if err := coordinator.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during coordinator shutdown", "err", err)
	}
	stopRun()
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	if err := closeStore(); err != nil {
		level.Error(logger).Log("msg", "Error closing storage", "err", err)
	}

	level.Info(logger).Log("msg", "Server stopped")
}

// newRepository builds the InstanceRepository for config.Storage and returns its close function.
func newRepository(config *Config, logger log.Logger) (interfaces.InstanceRepository, func() error, error) {
	switch config.Storage {
	case StorageRedis:
		redisClient, err := myredis.NewRedisUniversalClient(config.RedisAddr)
		if err != nil {
			return nil, nil, fmt.Errorf("create redis client: %w", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			_ = redisClient.Close()
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}
		level.Info(logger).Log("msg", "Connected to Redis")
		return myredis.NewRepository(redisClient, "mycoordinator"), redisClient.Close, nil
	case StorageSQLite, StoragePostgres:
		store, err := gormstore.New(&config.Database)
		if err != nil {
			return nil, nil, err
		}
		level.Info(logger).Log("msg", "Connected to database", "type", config.Database.Type)
		return store, store.Close, nil
	default:
		return memstore.NewRepository(), func() error { return nil }, nil
	}
}
