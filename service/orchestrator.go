package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mycoordinator/domain"
	"mycoordinator/helpers"
	"mycoordinator/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// OrchestratorConfig holds readiness waiting settings.
type OrchestratorConfig struct {
	// PollInterval is the WaitForServiceReady polling step.
	PollInterval time.Duration
	// DefaultWaitTimeout is used when WaitForServiceReady gets a non-positive timeout.
	DefaultWaitTimeout time.Duration
}

const (
	defaultReadyPollInterval = 250 * time.Millisecond
	defaultReadyWaitTimeout  = 30 * time.Second
)

// dependencyGraphOrchestrator implements interfaces.Orchestrator. The graph itself is rebuilt from the
// registry on every call; only the per-service status map (states, guarded by mu) lives across rebuilds.
type dependencyGraphOrchestrator struct {
	registry interfaces.Registry
	clock    interfaces.TimeProvider
	cfg      OrchestratorConfig
	metrics  *Metrics
	logger   log.Logger

	mu     sync.RWMutex
	states map[string]*domain.NodeState
}

// NewOrchestrator creates the dependency graph orchestrator. Panics on nil registry, clock or logger.
//
// Parameters: registry: snapshot source; clock: timestamps for startedAt/readyAt; cfg: zero values
// fall back to 250ms polling and a 30s wait; metrics: optional; logger: base logger.
//
// Called from NewCoordinator.
func NewOrchestrator(
	registry interfaces.Registry,
	clock interfaces.TimeProvider,
	cfg OrchestratorConfig,
	metrics *Metrics,
	logger log.Logger,
) interfaces.Orchestrator {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultReadyPollInterval
	}
	if cfg.DefaultWaitTimeout <= 0 {
		cfg.DefaultWaitTimeout = defaultReadyWaitTimeout
	}
	return &dependencyGraphOrchestrator{
		registry: helpers.NilPanic(registry, "service.orchestrator.go: registry is required"),
		clock:    helpers.NilPanic(clock, "service.orchestrator.go: clock is required"),
		cfg:      cfg,
		metrics:  metrics,
		logger:   log.With(helpers.NilPanic(logger, "service.orchestrator.go: logger is required"), "component", "orchestrator"),
		states:   make(map[string]*domain.NodeState),
	}
}

// build takes a registry snapshot, creates pending states for new names, drops states of names with no
// active instance left and copies state into the nodes.
func (o *dependencyGraphOrchestrator) build(ctx context.Context) (*dependencyGraph, error) {
	instances, err := o.registry.GetAll(ctx)
	if err != nil {
		return nil, NewPersistenceError("can't read registry snapshot", err)
	}
	g := newDependencyGraph(instances)

	o.mu.Lock()
	defer o.mu.Unlock()
	for name := range o.states {
		if !g.has(name) {
			delete(o.states, name)
			level.Debug(o.logger).Log("msg", "service state dropped", "service", name)
		}
	}
	for _, name := range g.names {
		st, ok := o.states[name]
		if !ok {
			st = &domain.NodeState{Status: domain.NodeStatusPending}
			o.states[name] = st
		}
		g.nodes[name].State = *st
	}
	return g, nil
}

func (o *dependencyGraphOrchestrator) BuildDependencyGraph(ctx context.Context) error {
	_, err := o.build(ctx)
	return err
}

func (o *dependencyGraphOrchestrator) GetGraph(ctx context.Context) (domain.DependencyGraph, error) {
	g, err := o.build(ctx)
	if err != nil {
		return domain.DependencyGraph{}, err
	}
	tiers, _ := g.tiers()

	stats := domain.GraphStatistics{
		TotalServices:       len(g.names),
		TotalEdges:          len(g.edges),
		MissingDependencies: g.missing(),
		StatusCounts: map[domain.NodeStatus]int{
			domain.NodeStatusPending:  0,
			domain.NodeStatusStarting: 0,
			domain.NodeStatusReady:    0,
			domain.NodeStatusFailed:   0,
		},
	}
	for _, e := range g.edges {
		if e.Kind == domain.DependencySoft {
			stats.SoftEdges++
		} else {
			stats.HardEdges++
		}
	}

	nodes := make([]domain.GraphNode, 0, len(g.names))
	for _, name := range g.names {
		node := *g.nodes[name]
		node.Tier = tiers[name]
		if node.Tier > stats.MaxTier {
			stats.MaxTier = node.Tier
		}
		stats.StatusCounts[node.State.Status]++
		nodes = append(nodes, node)
	}

	return domain.DependencyGraph{
		Nodes:                nodes,
		Edges:                g.edges,
		Statistics:           stats,
		CircularDependencies: g.cycles(),
	}, nil
}

func (o *dependencyGraphOrchestrator) ComputeTiers(ctx context.Context) (domain.TierAssignment, error) {
	g, err := o.build(ctx)
	if err != nil {
		return domain.TierAssignment{}, err
	}
	tiers, cyclic := g.tiers()
	if len(cyclic) > 0 {
		level.Warn(o.logger).Log("msg", "tier computation hit a cycle", "services", fmt.Sprint(cyclic))
	}
	return domain.TierAssignment{Tiers: tiers, Cyclic: cyclic}, nil
}

// GetStartupOrder always terminates. A degraded wave means the graph has a cycle or a missing hard
// dependency; it is logged at error level and counted so it can be alerted on.
func (o *dependencyGraphOrchestrator) GetStartupOrder(ctx context.Context) (domain.StartupOrder, error) {
	g, err := o.build(ctx)
	if err != nil {
		return domain.StartupOrder{}, err
	}
	order := domain.StartupOrder{Waves: g.waves()}
	cycles := g.cycles()
	order.HasCircularDependencies = len(cycles) > 0

	if n := len(order.Waves); n > 0 && order.Waves[n-1].Degraded {
		order.Degraded = true
		o.metrics.recordDegradedWave()
		level.Error(o.logger).Log(
			"msg", "startup order fell back to a degraded wave",
			"wave", order.Waves[n-1].Number,
			"services", fmt.Sprint(order.Waves[n-1].Services),
			"cycles", fmt.Sprint(cycles),
			"missing", fmt.Sprint(g.missing()),
		)
	}
	return order, nil
}

func (o *dependencyGraphOrchestrator) DetectCircularDependencies(ctx context.Context) ([][]string, error) {
	g, err := o.build(ctx)
	if err != nil {
		return nil, err
	}
	cycles := g.cycles()
	if len(cycles) > 0 {
		level.Warn(o.logger).Log("msg", "circular dependencies detected", "count", len(cycles), "cycles", fmt.Sprint(cycles))
	}
	return cycles, nil
}

func (o *dependencyGraphOrchestrator) ValidateServiceDependencies(ctx context.Context, name string) (domain.ValidationResult, error) {
	g, err := o.build(ctx)
	if err != nil {
		return domain.ValidationResult{}, err
	}
	return o.validate(g, name)
}

// validate checks blocking edges only: an unregistered target is missing, a failed target is failed.
// Soft and optional dependencies never refuse clearance, so an unregistered soft target is not reported
// here; GetGraph lists it under MissingDependencies.
func (o *dependencyGraphOrchestrator) validate(g *dependencyGraph, name string) (domain.ValidationResult, error) {
	if !g.has(name) {
		return domain.ValidationResult{}, NewEntityNotFoundError(fmt.Sprintf("service %s not found", name), nil)
	}
	res := domain.ValidationResult{Missing: []string{}, Failed: []string{}}
	for _, dep := range g.blocking[name] {
		dn, ok := g.nodes[dep]
		if !ok {
			res.Missing = append(res.Missing, dep)
			continue
		}
		if dn.State.Status == domain.NodeStatusFailed {
			res.Failed = append(res.Failed, dep)
		}
	}
	res.Satisfied = len(res.Missing) == 0 && len(res.Failed) == 0
	return res, nil
}

// RequestStartupClearance grants clearance once validation passes. pending moves to starting;
// starting and ready are granted again without change; failed is refused.
func (o *dependencyGraphOrchestrator) RequestStartupClearance(ctx context.Context, name string) (bool, domain.ValidationResult, error) {
	g, err := o.build(ctx)
	if err != nil {
		return false, domain.ValidationResult{}, err
	}
	res, err := o.validate(g, name)
	if err != nil {
		return false, res, err
	}
	if !res.Satisfied {
		level.Info(o.logger).Log("msg", "startup clearance refused", "service", name,
			"missing", fmt.Sprint(res.Missing), "failed", fmt.Sprint(res.Failed))
		return false, res, nil
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	st := o.stateLocked(name)
	switch st.Status {
	case domain.NodeStatusPending:
		st.Status = domain.NodeStatusStarting
		st.StartedAt = o.clock.Now()
		st.Error = ""
		level.Info(o.logger).Log("msg", "startup clearance granted", "service", name)
		return true, res, nil
	case domain.NodeStatusFailed:
		return false, res, nil
	default:
		return true, res, nil
	}
}

func (o *dependencyGraphOrchestrator) stateLocked(name string) *domain.NodeState {
	st, ok := o.states[name]
	if !ok {
		st = &domain.NodeState{Status: domain.NodeStatusPending}
		o.states[name] = st
	}
	return st
}

// ensureKnown rebuilds the graph when name has no state yet, so reports for services registered since
// the last rebuild are accepted.
func (o *dependencyGraphOrchestrator) ensureKnown(ctx context.Context, name string) error {
	o.mu.RLock()
	_, ok := o.states[name]
	o.mu.RUnlock()
	if ok {
		return nil
	}
	g, err := o.build(ctx)
	if err != nil {
		return err
	}
	if !g.has(name) {
		return NewEntityNotFoundError(fmt.Sprintf("service %s not found", name), nil)
	}
	return nil
}

// ReportServiceReady is idempotent on ready and allowed from every other status.
func (o *dependencyGraphOrchestrator) ReportServiceReady(ctx context.Context, name string) error {
	if err := o.ensureKnown(ctx, name); err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	st := o.stateLocked(name)
	if st.Status == domain.NodeStatusReady {
		return nil
	}
	now := o.clock.Now()
	if st.StartedAt.IsZero() {
		st.StartedAt = now
	}
	st.Status = domain.NodeStatusReady
	st.ReadyAt = now
	st.Error = ""
	level.Info(o.logger).Log("msg", "service ready", "service", name, "startup_ms", now.Sub(st.StartedAt).Milliseconds())
	return nil
}

// ReportServiceFailure is refused with conflict once the service is ready; a second failure only
// replaces the recorded error.
func (o *dependencyGraphOrchestrator) ReportServiceFailure(ctx context.Context, name string, cause error) error {
	if err := o.ensureKnown(ctx, name); err != nil {
		return err
	}
	msg := "unknown error"
	if cause != nil {
		msg = cause.Error()
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	st := o.stateLocked(name)
	switch st.Status {
	case domain.NodeStatusReady:
		return NewConflictError(fmt.Sprintf("service %s is already ready", name), nil)
	case domain.NodeStatusFailed:
		st.Error = msg
		return nil
	}
	if st.StartedAt.IsZero() {
		st.StartedAt = o.clock.Now()
	}
	st.Status = domain.NodeStatusFailed
	st.Error = msg
	level.Warn(o.logger).Log("msg", "service failed", "service", name, "err", msg)
	return nil
}

// ResetServiceStatus runs after every registration. A failed node moves back to pending. A ready node
// starts over as pending when none of its active instances was registered before it became ready, so a
// service whose leases lapsed is sequenced again once it comes back.
func (o *dependencyGraphOrchestrator) ResetServiceStatus(ctx context.Context, name string) {
	st, ok := o.GetServiceStatus(name)
	if !ok {
		return
	}
	switch {
	case domain.CanTransition(st.Status, domain.NodeStatusPending):
	case st.Status == domain.NodeStatusReady:
		instances, err := o.registry.GetAll(ctx)
		if err != nil {
			level.Warn(o.logger).Log("msg", "can't check instances for reset", "service", name, "err", err)
			return
		}
		for _, inst := range instances {
			if inst.Name == name && !inst.RegisteredAt.After(st.ReadyAt) {
				return
			}
		}
	default:
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	cur, ok := o.states[name]
	if !ok || cur.Status != st.Status || !cur.ReadyAt.Equal(st.ReadyAt) {
		return
	}
	o.states[name] = &domain.NodeState{Status: domain.NodeStatusPending}
	level.Info(o.logger).Log("msg", "service status reset", "service", name, "from", st.Status)
}

func (o *dependencyGraphOrchestrator) GetServiceStatus(name string) (domain.NodeState, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	st, ok := o.states[name]
	if !ok {
		return domain.NodeState{}, false
	}
	return *st, true
}

// WaitForServiceReady polls the status map. It never returns an error: timeout and cancellation are
// both reported as false.
func (o *dependencyGraphOrchestrator) WaitForServiceReady(ctx context.Context, name string, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = o.cfg.DefaultWaitTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(o.cfg.PollInterval)
	defer ticker.Stop()
	for {
		if st, ok := o.GetServiceStatus(name); ok && st.Status == domain.NodeStatusReady {
			return true
		}
		select {
		case <-ctx.Done():
			level.Debug(o.logger).Log("msg", "wait for ready timed out", "service", name, "timeout", timeout)
			return false
		case <-ticker.C:
		}
	}
}
