package service

import (
	"context"
	"errors"
	"time"

	"mycoordinator/helpers"
	"mycoordinator/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// CoordinatorConfig gathers the settings of every component plus the periodic task timings.
type CoordinatorConfig struct {
	Registry     RegistryConfig
	Orchestrator OrchestratorConfig
	Sequencer    SequencerConfig

	CleanupInterval     time.Duration
	CleanupGrace        time.Duration
	HealthCheckInterval time.Duration
	ProbeTimeout        time.Duration
}

// CoordinatorDeps are the external collaborators. Metrics may be nil.
type CoordinatorDeps struct {
	Repository interfaces.InstanceRepository
	Clock      interfaces.TimeProvider
	Starter    interfaces.ServiceStarter
	Prober     interfaces.HealthProber
	Metrics    *Metrics
	Logger     log.Logger
}

// Coordinator is the process-wide context object: it is built once in cmd/main, handed to the HTTP
// layer and torn down on shutdown. It owns the registry, the orchestrator, the sequencer and the two
// periodic tasks (stale cleanup and health sweep).
type Coordinator struct {
	Registry     interfaces.Registry
	Orchestrator interfaces.Orchestrator
	Sequencer    interfaces.Sequencer

	cfg     CoordinatorConfig
	sweep   *healthSweep
	cleanup *periodicTask
	health  *periodicTask
	logger  log.Logger
}

// NewCoordinator wires every component. Panics on missing collaborators.
func NewCoordinator(deps CoordinatorDeps, cfg CoordinatorConfig) *Coordinator {
	logger := helpers.NilPanic(deps.Logger, "service.coordinator.go: logger is required")

	registry := NewLeaseRegistry(deps.Repository, deps.Clock, cfg.Registry, deps.Metrics, logger)
	orchestrator := NewOrchestrator(registry, deps.Clock, cfg.Orchestrator, deps.Metrics, logger)
	sequencer := NewSequencer(registry, orchestrator, deps.Starter, deps.Prober, deps.Clock, cfg.Sequencer, deps.Metrics, logger)

	c := &Coordinator{
		Registry:     registry,
		Orchestrator: orchestrator,
		Sequencer:    sequencer,
		cfg:          cfg,
		sweep:        newHealthSweep(registry, deps.Prober, deps.Clock, cfg.ProbeTimeout, deps.Metrics, logger),
		logger:       log.With(logger, "component", "coordinator"),
	}
	c.cleanup = newPeriodicTask("stale_cleanup", cfg.CleanupInterval, c.runCleanup, logger)
	c.health = newPeriodicTask("health_sweep", cfg.HealthCheckInterval, c.sweep.Run, logger)
	return c
}

// runCleanup is one cleanup tick; errors are logged and retried on the next tick.
func (c *Coordinator) runCleanup(ctx context.Context) {
	removed, err := c.Registry.CleanupStale(ctx, c.cfg.CleanupGrace)
	if err != nil {
		level.Error(c.logger).Log("msg", "stale cleanup failed", "removed", removed, "err", err)
		return
	}
	if removed > 0 {
		level.Info(c.logger).Log("msg", "stale cleanup finished", "count", removed)
	}
}

// Start launches the periodic tasks. They stop when ctx is cancelled or on Shutdown.
func (c *Coordinator) Start(ctx context.Context) {
	c.cleanup.Start(ctx)
	c.health.Start(ctx)
	level.Info(c.logger).Log("msg", "coordinator started",
		"cleanup_interval", c.cfg.CleanupInterval, "health_check_interval", c.cfg.HealthCheckInterval)
}

// Shutdown stops both periodic tasks and waits for in-flight runs until ctx expires.
func (c *Coordinator) Shutdown(ctx context.Context) error {
	err := errors.Join(c.cleanup.Stop(ctx), c.health.Stop(ctx))
	level.Info(c.logger).Log("msg", "coordinator stopped", "err", err)
	return err
}
