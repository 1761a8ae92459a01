package service

import (
	"context"
	"time"

	"mycoordinator/domain"
	"mycoordinator/helpers"
	"mycoordinator/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"
)

const healthSweepConcurrency = 16

// healthSweep probes every active instance and stores the result: an expired lease is unknown without a
// probe, otherwise healthy or unhealthy by probe outcome. Results carry the snapshot time so a heartbeat
// that lands mid-sweep is not overwritten. The lease itself is never renewed here.
type healthSweep struct {
	registry     interfaces.Registry
	prober       interfaces.HealthProber
	clock        interfaces.TimeProvider
	probeTimeout time.Duration
	metrics      *Metrics
	logger       log.Logger
}

func newHealthSweep(registry interfaces.Registry, prober interfaces.HealthProber, clock interfaces.TimeProvider,
	probeTimeout time.Duration, metrics *Metrics, logger log.Logger) *healthSweep {
	if probeTimeout <= 0 {
		probeTimeout = 5 * time.Second
	}
	return &healthSweep{
		registry:     helpers.NilPanic(registry, "service.health_sweep.go: registry is required"),
		prober:       helpers.NilPanic(prober, "service.health_sweep.go: prober is required"),
		clock:        helpers.NilPanic(clock, "service.health_sweep.go: clock is required"),
		probeTimeout: probeTimeout,
		metrics:      metrics,
		logger:       log.With(helpers.NilPanic(logger, "service.health_sweep.go: logger is required"), "component", "health_sweep"),
	}
}

// Run performs one sweep. Failures are logged per instance and never abort the sweep.
func (h *healthSweep) Run(ctx context.Context) {
	instances, err := h.registry.GetAll(ctx)
	if err != nil {
		level.Error(h.logger).Log("msg", "health sweep can't list instances", "err", err)
		return
	}
	h.metrics.setActiveInstances(len(instances))

	now := h.clock.Now()
	var g errgroup.Group
	g.SetLimit(healthSweepConcurrency)
	for _, inst := range instances {
		g.Go(func() error {
			status := h.check(ctx, inst, now)
			h.metrics.recordHealthProbe(string(status))
			if err := h.registry.SetHealthStatus(ctx, inst.ID, status, now); err != nil && !IsEntityNotFoundError(err) {
				level.Error(h.logger).Log("msg", "store health status failed", "service_id", inst.ID, "err", err)
			}
			return nil
		})
	}
	_ = g.Wait()
	level.Debug(h.logger).Log("msg", "health sweep finished", "count", len(instances))
}

func (h *healthSweep) check(ctx context.Context, inst domain.ServiceInstance, now time.Time) domain.HealthStatus {
	if inst.LeaseExpired(now) {
		return domain.HealthStatusUnknown
	}
	ctx, cancel := context.WithTimeout(ctx, h.probeTimeout)
	defer cancel()
	if err := h.prober.Probe(ctx, inst.HealthURL()); err != nil {
		level.Debug(h.logger).Log("msg", "probe failed", "service", inst.Name, "service_id", inst.ID, "err", err)
		return domain.HealthStatusUnhealthy
	}
	return domain.HealthStatusHealthy
}
