package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"mycoordinator/domain"
	"mycoordinator/helpers"
	"mycoordinator/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"
)

// SequencerConfig holds wave execution settings (YAML `startup:` block).
type SequencerConfig struct {
	// InterWaveDelay is slept between waves (not after the last one).
	InterWaveDelay time.Duration
	// HealthCheckRetries is the number of probes before a service is failed.
	HealthCheckRetries int
	// HealthCheckInterval is the pause between probes.
	HealthCheckInterval time.Duration
	// MaxParallel bounds concurrent starts inside one wave; 0 means unbounded.
	MaxParallel int
	// OptimizationEnabled turns on parallel execution of waves with more than one service.
	OptimizationEnabled bool
}

// startOutcome is the result of starting one service.
type startOutcome struct {
	service      string
	duration     time.Duration
	alreadyReady bool
	err          *MyError
}

// startupSequencer implements interfaces.Sequencer. Only one Execute runs at a time (running);
// stats is guarded by mu.
type startupSequencer struct {
	registry     interfaces.Registry
	orchestrator interfaces.Orchestrator
	starter      interfaces.ServiceStarter
	prober       interfaces.HealthProber
	clock        interfaces.TimeProvider
	cfg          SequencerConfig
	metrics      *Metrics
	logger       log.Logger

	optimization atomic.Bool
	running      atomic.Bool

	mu         sync.Mutex
	executions int
	last       *domain.StartupResult
}

// NewSequencer creates the startup sequencer. Panics on nil collaborators (metrics may be nil).
//
// Parameters: registry: instances to start and probe; orchestrator: order, clearance and status
// reports; starter: start hook (supervisor webhook or no-op); prober: HTTP/gRPC health checks;
// cfg: retries default to 15 and interval to 1s when unset.
//
// Called from NewCoordinator.
func NewSequencer(
	registry interfaces.Registry,
	orchestrator interfaces.Orchestrator,
	starter interfaces.ServiceStarter,
	prober interfaces.HealthProber,
	clock interfaces.TimeProvider,
	cfg SequencerConfig,
	metrics *Metrics,
	logger log.Logger,
) interfaces.Sequencer {
	if cfg.HealthCheckRetries <= 0 {
		cfg.HealthCheckRetries = 15
	}
	if cfg.HealthCheckInterval <= 0 {
		cfg.HealthCheckInterval = time.Second
	}
	s := &startupSequencer{
		registry:     helpers.NilPanic(registry, "service.sequencer.go: registry is required"),
		orchestrator: helpers.NilPanic(orchestrator, "service.sequencer.go: orchestrator is required"),
		starter:      helpers.NilPanic(starter, "service.sequencer.go: starter is required"),
		prober:       helpers.NilPanic(prober, "service.sequencer.go: prober is required"),
		clock:        helpers.NilPanic(clock, "service.sequencer.go: clock is required"),
		cfg:          cfg,
		metrics:      metrics,
		logger:       log.With(helpers.NilPanic(logger, "service.sequencer.go: logger is required"), "component", "sequencer"),
	}
	s.optimization.Store(cfg.OptimizationEnabled)
	return s
}

func (s *startupSequencer) SetOptimization(enabled bool) {
	s.optimization.Store(enabled)
	level.Info(s.logger).Log("msg", "startup optimization toggled", "enabled", enabled)
}

func (s *startupSequencer) Analytics() domain.StartupStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := domain.StartupStats{
		OptimizationEnabled: s.optimization.Load(),
		TotalExecutions:     s.executions,
	}
	if s.last != nil {
		last := *s.last
		stats.LastResult = &last
	}
	return stats
}

// Preview returns the plan without touching any status. Estimates assume one probe interval per service.
func (s *startupSequencer) Preview(ctx context.Context) (domain.StartupPlan, error) {
	order, err := s.orchestrator.GetStartupOrder(ctx)
	if err != nil {
		return domain.StartupPlan{}, err
	}
	tiers, err := s.orchestrator.ComputeTiers(ctx)
	if err != nil {
		return domain.StartupPlan{}, err
	}
	cycles, err := s.orchestrator.DetectCircularDependencies(ctx)
	if err != nil {
		return domain.StartupPlan{}, err
	}

	plan := domain.StartupPlan{
		Waves:                   order.Waves,
		Tiers:                   tiers.Tiers,
		HasCircularDependencies: len(cycles) > 0,
		CircularDependencies:    cycles,
		OptimizationEnabled:     s.optimization.Load(),
	}
	unit := s.cfg.HealthCheckInterval
	for _, w := range order.Waves {
		plan.TotalServices += len(w.Services)
		if len(w.Services) > plan.MaxParallelism {
			plan.MaxParallelism = len(w.Services)
		}
	}
	var delays time.Duration
	if n := len(order.Waves); n > 1 {
		delays = time.Duration(n-1) * s.cfg.InterWaveDelay
	}
	plan.EstimatedSequentialDuration = time.Duration(plan.TotalServices)*unit + delays
	plan.EstimatedDuration = plan.EstimatedSequentialDuration
	if plan.OptimizationEnabled {
		var est time.Duration
		for _, w := range order.Waves {
			est += time.Duration(s.waveSlots(len(w.Services))) * unit
		}
		plan.EstimatedDuration = est + delays
	}
	return plan, nil
}

// waveSlots is the number of sequential rounds a wave of n services needs under MaxParallel.
func (s *startupSequencer) waveSlots(n int) int {
	if n == 0 {
		return 0
	}
	if s.cfg.MaxParallel <= 0 || s.cfg.MaxParallel >= n {
		return 1
	}
	return (n + s.cfg.MaxParallel - 1) / s.cfg.MaxParallel
}

// Execute runs the waves in order. A failed service never stops later waves; dependents of it are
// refused clearance and stay pending while independent branches proceed.
func (s *startupSequencer) Execute(ctx context.Context) (domain.StartupResult, error) {
	if !s.running.CompareAndSwap(false, true) {
		return domain.StartupResult{}, NewConflictError("startup sequence is already running", nil)
	}
	defer s.running.Store(false)

	began := time.Now()
	result := domain.StartupResult{
		StartedAt:       s.clock.Now(),
		ServicesStarted: []string{},
		AlreadyReady:    []string{},
		Errors:          []domain.ServiceError{},
	}

	order, err := s.orchestrator.GetStartupOrder(ctx)
	if err != nil {
		return domain.StartupResult{}, err
	}
	instances, err := s.registry.GetAll(ctx)
	if err != nil {
		return domain.StartupResult{}, NewPersistenceError("can't read registry snapshot", err)
	}
	byName := groupByName(instances)

	level.Info(s.logger).Log("msg", "startup sequence started", "waves", len(order.Waves), "degraded", order.Degraded)

	var sequential time.Duration
	analytics := domain.StartupAnalytics{WaveDurations: []time.Duration{}}
	for i, wave := range order.Waves {
		if ctx.Err() != nil {
			for _, w := range order.Waves[i:] {
				for _, name := range w.Services {
					result.Errors = append(result.Errors, domain.ServiceError{
						Service: name, Code: ErrTimeout, Error: "startup sequence cancelled: " + ctx.Err().Error(),
					})
				}
			}
			break
		}

		waveStart := time.Now()
		outcomes := s.runWave(ctx, wave, byName)
		waveDuration := time.Since(waveStart)
		s.metrics.observeWave(waveDuration)
		analytics.WaveDurations = append(analytics.WaveDurations, waveDuration)
		result.WavesExecuted++

		failed := 0
		for _, out := range outcomes {
			sequential += out.duration
			switch {
			case out.alreadyReady:
				result.AlreadyReady = append(result.AlreadyReady, out.service)
			case out.err != nil:
				failed++
				result.Errors = append(result.Errors, domain.ServiceError{Service: out.service, Code: out.err.Code, Error: out.err.Message})
			default:
				result.ServicesStarted = append(result.ServicesStarted, out.service)
			}
		}
		level.Info(s.logger).Log("msg", "wave completed", "wave", wave.Number, "services", len(wave.Services),
			"failed", failed, "degraded", wave.Degraded, "duration_ms", waveDuration.Milliseconds())

		if i < len(order.Waves)-1 {
			sleepCtx(ctx, s.cfg.InterWaveDelay)
		}
	}

	result.TotalDuration = time.Since(began)
	result.Success = len(result.Errors) == 0
	result.Analytics = buildAnalytics(order, analytics, sequential)
	s.metrics.observeStartup(result.TotalDuration)

	s.mu.Lock()
	s.executions++
	last := result
	s.last = &last
	s.mu.Unlock()

	logger := level.Info(s.logger)
	if !result.Success {
		logger = level.Warn(s.logger)
	}
	logger.Log("msg", "startup sequence finished", "success", result.Success, "started", len(result.ServicesStarted),
		"errors", len(result.Errors), "duration_ms", result.TotalDuration.Milliseconds())
	return result, nil
}

func buildAnalytics(order domain.StartupOrder, a domain.StartupAnalytics, sequential time.Duration) domain.StartupAnalytics {
	a.SequentialDuration = sequential
	var executing time.Duration
	for _, d := range a.WaveDurations {
		executing += d
	}
	if executing > 0 && sequential > 0 {
		a.ParallelizationGain = float64(sequential) / float64(executing)
		if reduction := float64(sequential-executing) / float64(sequential) * 100; reduction > 0 {
			a.TimeReductionPercent = reduction
		}
	}
	total := 0
	for _, w := range order.Waves {
		total += len(w.Services)
		if len(w.Services) > a.MaxParallelism {
			a.MaxParallelism = len(w.Services)
		}
	}
	if len(order.Waves) > 0 {
		a.AverageWaveSize = float64(total) / float64(len(order.Waves))
	}
	return a
}

// runWave starts every service of the wave and joins on all of them. Siblings never cancel each other.
func (s *startupSequencer) runWave(ctx context.Context, wave domain.StartupWave, byName map[string][]domain.ServiceInstance) []startOutcome {
	outcomes := make([]startOutcome, len(wave.Services))

	if !s.optimization.Load() || len(wave.Services) < 2 {
		for i, name := range wave.Services {
			outcomes[i] = s.startService(ctx, wave, name, byName)
		}
		return outcomes
	}

	var g errgroup.Group
	if s.cfg.MaxParallel > 0 {
		g.SetLimit(s.cfg.MaxParallel)
	}
	for i, name := range wave.Services {
		g.Go(func() error {
			outcomes[i] = s.startService(ctx, wave, name, byName)
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

func (s *startupSequencer) startService(ctx context.Context, wave domain.StartupWave, name string, byName map[string][]domain.ServiceInstance) startOutcome {
	began := time.Now()
	out := startOutcome{service: name}
	fail := func(e *MyError) startOutcome {
		out.err = e
		out.duration = time.Since(began)
		if err := s.orchestrator.ReportServiceFailure(ctx, name, e); err != nil && !IsConflictError(err) {
			level.Error(s.logger).Log("msg", "report failure failed", "service", name, "err", err)
		}
		s.metrics.recordServiceStart("failed")
		level.Warn(s.logger).Log("msg", "service start failed", "service", name, "wave", wave.Number, "code", e.Code, "err", e.Message)
		return out
	}
	// refuse leaves the status untouched so the service is retried once its dependencies recover.
	refuse := func(e *MyError) startOutcome {
		out.err = e
		out.duration = time.Since(began)
		s.metrics.recordServiceStart("refused")
		level.Warn(s.logger).Log("msg", "service start refused", "service", name, "wave", wave.Number, "code", e.Code, "err", e.Message)
		return out
	}

	if st, ok := s.orchestrator.GetServiceStatus(name); ok && st.Status == domain.NodeStatusReady {
		out.alreadyReady = true
		s.metrics.recordServiceStart("skipped")
		return out
	}

	instances := byName[name]
	if !wave.Degraded {
		if notReady := s.unreadyDependencies(instances, byName); len(notReady) > 0 {
			return refuse(NewValidationFailureError(fmt.Sprintf("hard dependencies not ready: %v", notReady), nil))
		}
	}

	ok, res, err := s.orchestrator.RequestStartupClearance(ctx, name)
	if err != nil {
		return refuse(NewInternalServerError("clearance failed", err))
	}
	if !ok {
		msg := fmt.Sprintf("dependencies not satisfied: missing=%v failed=%v", res.Missing, res.Failed)
		if res.Satisfied {
			msg = fmt.Sprintf("service %s is in failed state", name)
		}
		return refuse(NewValidationFailureError(msg, nil))
	}

	if err := s.starter.Start(ctx, name, instances); err != nil {
		return fail(NewInternalServerError(fmt.Sprintf("start hook failed: %v", err), err))
	}

	if err := s.awaitHealthy(ctx, name, instances); err != nil {
		return fail(ToMyError(err))
	}
	if err := s.orchestrator.ReportServiceReady(ctx, name); err != nil {
		return fail(NewInternalServerError("report ready failed", err))
	}
	out.duration = time.Since(began)
	s.metrics.recordServiceStart("ready")
	level.Info(s.logger).Log("msg", "service started", "service", name, "wave", wave.Number, "duration_ms", out.duration.Milliseconds())
	return out
}

// unreadyDependencies returns registered blocking dependencies that are not ready. Unregistered ones are
// left to clearance, which reports them as missing.
func (s *startupSequencer) unreadyDependencies(instances []domain.ServiceInstance, byName map[string][]domain.ServiceInstance) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, inst := range instances {
		for _, dep := range inst.Dependencies {
			if !dep.IsBlocking() {
				continue
			}
			if _, ok := seen[dep.Name]; ok {
				continue
			}
			seen[dep.Name] = struct{}{}
			if _, registered := byName[dep.Name]; !registered {
				continue
			}
			if st, ok := s.orchestrator.GetServiceStatus(dep.Name); !ok || st.Status != domain.NodeStatusReady {
				out = append(out, dep.Name)
			}
		}
	}
	sort.Strings(out)
	return out
}

// awaitHealthy probes the instances up to HealthCheckRetries times. One healthy instance, or a ready
// report that arrived meanwhile, is enough.
func (s *startupSequencer) awaitHealthy(ctx context.Context, name string, instances []domain.ServiceInstance) error {
	var lastErr error
	for attempt := 1; attempt <= s.cfg.HealthCheckRetries; attempt++ {
		if st, ok := s.orchestrator.GetServiceStatus(name); ok && st.Status == domain.NodeStatusReady {
			return nil
		}
		for _, inst := range instances {
			err := s.prober.Probe(ctx, inst.HealthURL())
			if err == nil {
				return nil
			}
			lastErr = err
		}
		if attempt < s.cfg.HealthCheckRetries && !sleepCtx(ctx, s.cfg.HealthCheckInterval) {
			lastErr = errors.Join(lastErr, ctx.Err())
			break
		}
	}
	return NewTimeoutError(fmt.Sprintf("service %s not healthy after %d attempts", name, s.cfg.HealthCheckRetries), lastErr)
}

func groupByName(instances []domain.ServiceInstance) map[string][]domain.ServiceInstance {
	out := make(map[string][]domain.ServiceInstance)
	for _, inst := range instances {
		out[inst.Name] = append(out[inst.Name], inst)
	}
	return out
}

// sleepCtx waits d or until ctx is done. Returns false on cancellation.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
