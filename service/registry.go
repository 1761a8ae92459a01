package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"mycoordinator/domain"
	"mycoordinator/helpers"
	"mycoordinator/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
)

// RegistryConfig holds lease arithmetic settings.
type RegistryConfig struct {
	// LeaseTTL is the lease length granted by a registration or heartbeat.
	LeaseTTL time.Duration
	// RenewalBuffer is added on top of LeaseTTL on every renewal.
	RenewalBuffer time.Duration
	// RegistrationGrace replaces RenewalBuffer for brand-new (or reactivated) rows.
	RegistrationGrace time.Duration
}

// leaseRegistry implements interfaces.Registry on top of an InstanceRepository. Fields: repo, clock, cfg,
// metrics (nil = disabled), logger; locks serializes mutations per instance id, addrLocks per (name, host, port).
type leaseRegistry struct {
	repo    interfaces.InstanceRepository
	clock   interfaces.TimeProvider
	cfg     RegistryConfig
	metrics *Metrics
	logger  log.Logger

	locks     *keyedMutex
	addrLocks *keyedMutex
}

// NewLeaseRegistry creates the lease registry. Panics on nil repo, clock or logger; metrics may be nil.
//
// Parameters: repo: storage (memstore, myredis or gormstore); clock: time source for lease arithmetic;
// cfg: lease settings (LeaseTTL must be positive); metrics: optional Prometheus metrics; logger: base logger.
//
// Called from cmd/main through NewCoordinator.
func NewLeaseRegistry(
	repo interfaces.InstanceRepository,
	clock interfaces.TimeProvider,
	cfg RegistryConfig,
	metrics *Metrics,
	logger log.Logger,
) interfaces.Registry {
	if cfg.LeaseTTL <= 0 {
		panic("service.registry.go: lease TTL must be positive")
	}
	return &leaseRegistry{
		repo:      helpers.NilPanic(repo, "service.registry.go: repo is required"),
		clock:     helpers.NilPanic(clock, "service.registry.go: clock is required"),
		cfg:       cfg,
		metrics:   metrics,
		logger:    log.With(helpers.NilPanic(logger, "service.registry.go: logger is required"), "component", "registry"),
		locks:     newKeyedMutex(),
		addrLocks: newKeyedMutex(),
	}
}

// Register upserts by (name, host, port). An active row is updated and gets a regular renewal; an
// inactive row is reactivated with the registration grace window; otherwise a new row is created.
// Surplus rows for the same address are hard-deleted.
func (r *leaseRegistry) Register(ctx context.Context, reg domain.Registration) (domain.ServiceInstance, error) {
	if err := validateRegistration(reg); err != nil {
		return domain.ServiceInstance{}, err
	}

	addrKey := reg.Name + "|" + reg.Host + "|" + strconv.Itoa(reg.Port)
	unlockAddr := r.addrLocks.Lock(addrKey)
	defer unlockAddr()

	rows, err := r.repo.FindByAddress(ctx, reg.Name, reg.Host, reg.Port)
	if err != nil {
		r.metrics.recordRegistration("error")
		level.Error(r.logger).Log("msg", "find by address failed", "service", reg.Name, "err", err)
		return domain.ServiceInstance{}, NewPersistenceError("can't read registry", err)
	}

	now := r.clock.Now()
	keeper := pickKeeper(rows)
	if keeper == nil {
		inst := domain.ServiceInstance{
			ID:            uuid.NewString(),
			Status:        domain.HealthStatusUnknown,
			IsActive:      true,
			RegisteredAt:  now,
			LastHeartbeat: now,
			LeaseTTL:      r.cfg.LeaseTTL,
			LeaseExpiryAt: now.Add(r.cfg.LeaseTTL + r.cfg.RegistrationGrace),
		}
		applyRegistration(&inst, reg, now)
		if err := r.repo.Create(ctx, inst); err != nil {
			r.metrics.recordRegistration("error")
			level.Error(r.logger).Log("msg", "create instance failed", "service", reg.Name, "err", err)
			return domain.ServiceInstance{}, NewPersistenceError("can't store instance", err)
		}
		r.metrics.recordRegistration("created")
		level.Info(r.logger).Log("msg", "instance registered", "service", inst.Name, "service_id", inst.ID, "addr", inst.Address())
		return inst, nil
	}

	unlock := r.locks.Lock(keeper.ID)
	defer unlock()

	for _, row := range rows {
		if row.ID == keeper.ID {
			continue
		}
		if err := r.repo.Delete(ctx, row.ID); err != nil {
			level.Warn(r.logger).Log("msg", "dedup delete failed", "service_id", row.ID, "err", err)
			continue
		}
		level.Info(r.logger).Log("msg", "duplicate instance row removed", "service", reg.Name, "service_id", row.ID)
	}

	// Re-read under the id lock: a cleanup sweep may have deactivated it since FindByAddress.
	inst, err := r.repo.Get(ctx, keeper.ID)
	if err != nil {
		r.metrics.recordRegistration("error")
		return domain.ServiceInstance{}, NewPersistenceError("can't read instance", err)
	}

	result := "updated"
	inst.LastHeartbeat = now
	inst.LeaseTTL = r.cfg.LeaseTTL
	if inst.IsActive && !inst.LeaseExpired(now) {
		inst.LeaseExpiryAt = now.Add(r.cfg.LeaseTTL + r.cfg.RenewalBuffer)
	} else {
		// A lapsed or soft-deleted row starts a new lease life.
		result = "reactivated"
		inst.IsActive = true
		inst.Status = domain.HealthStatusUnknown
		inst.RegisteredAt = now
		inst.LeaseExpiryAt = now.Add(r.cfg.LeaseTTL + r.cfg.RegistrationGrace)
	}
	applyRegistration(&inst, reg, now)

	if err := r.repo.Update(ctx, inst); err != nil {
		r.metrics.recordRegistration("error")
		level.Error(r.logger).Log("msg", "update instance failed", "service_id", inst.ID, "err", err)
		return domain.ServiceInstance{}, NewPersistenceError("can't store instance", err)
	}
	r.metrics.recordRegistration(result)
	level.Info(r.logger).Log("msg", "instance re-registered", "service", inst.Name, "service_id", inst.ID, "result", result)
	return inst, nil
}

// pickKeeper prefers the oldest active row, then the oldest row. rows are ordered oldest first.
func pickKeeper(rows []domain.ServiceInstance) *domain.ServiceInstance {
	for i := range rows {
		if rows[i].IsActive {
			return &rows[i]
		}
	}
	if len(rows) > 0 {
		return &rows[0]
	}
	return nil
}

func applyRegistration(inst *domain.ServiceInstance, reg domain.Registration, now time.Time) {
	inst.Name = reg.Name
	inst.Host = reg.Host
	inst.Port = reg.Port
	inst.HealthEndpoint = reg.HealthEndpoint
	inst.UpdatedAt = now
	inst.Metadata = domain.ServiceInstance{Metadata: reg.Metadata}.Clone().Metadata
	inst.Dependencies = nil
	for _, dep := range reg.Dependencies {
		inst.Dependencies = append(inst.Dependencies, dep.Ref())
	}
}

func validateRegistration(reg domain.Registration) error {
	switch {
	case reg.Name == "":
		return NewBadParameterError("name is required", nil)
	case reg.Host == "":
		return NewBadParameterError("host is required", nil)
	case reg.Port <= 0 || reg.Port > 65535:
		return NewBadParameterError(fmt.Sprintf("port %d is out of range", reg.Port), nil)
	}
	for _, dep := range reg.Dependencies {
		if dep.Name == "" {
			return NewBadParameterError("dependency name is required", nil)
		}
		if dep.Kind != "" && dep.Kind != domain.DependencyHard && dep.Kind != domain.DependencySoft {
			return NewBadParameterError(fmt.Sprintf("dependency %q has unknown type %q", dep.Name, dep.Kind), nil)
		}
		if dep.TimeoutMs != nil && *dep.TimeoutMs < 0 {
			return NewBadParameterError(fmt.Sprintf("dependency %q has negative timeout", dep.Name), nil)
		}
	}
	return nil
}

// Heartbeat renews the lease of one active instance. Unknown or inactive ids are logged and reported as entity_not_found.
func (r *leaseRegistry) Heartbeat(ctx context.Context, id string) error {
	unlock := r.locks.Lock(id)
	defer unlock()

	now := r.clock.Now()
	renewed, err := r.repo.RenewLeases(ctx, []domain.LeaseRenewal{r.renewal(id, now)})
	if err != nil {
		r.metrics.recordHeartbeats("error", 1)
		level.Error(r.logger).Log("msg", "heartbeat write failed", "service_id", id, "err", err)
		return NewPersistenceError("can't renew lease", err)
	}
	if len(renewed) == 0 {
		r.metrics.recordHeartbeats("not_found", 1)
		level.Warn(r.logger).Log("msg", "heartbeat for unknown instance", "service_id", id)
		return NewEntityNotFoundError(fmt.Sprintf("service %s not found", id), nil)
	}
	r.metrics.recordHeartbeats("ok", 1)
	return nil
}

func (r *leaseRegistry) renewal(id string, at time.Time) domain.LeaseRenewal {
	return domain.LeaseRenewal{
		InstanceID: id,
		At:         at,
		ExpiresAt:  at.Add(r.cfg.LeaseTTL + r.cfg.RenewalBuffer),
	}
}

// BatchHeartbeat applies all heartbeats in one repository write. A zero timestamp means now and
// timestamps from the future are clamped to now. Repeated ids keep the last entry.
func (r *leaseRegistry) BatchHeartbeat(ctx context.Context, heartbeats []domain.Heartbeat) (domain.BatchHeartbeatResult, error) {
	result := domain.BatchHeartbeatResult{Processed: []string{}, Failed: []domain.HeartbeatFailure{}}
	if len(heartbeats) == 0 {
		return result, nil
	}

	now := r.clock.Now()
	order := make([]string, 0, len(heartbeats))
	byID := make(map[string]domain.LeaseRenewal, len(heartbeats))
	for _, hb := range heartbeats {
		if hb.InstanceID == "" {
			result.Failed = append(result.Failed, domain.HeartbeatFailure{Reason: "serviceId is required"})
			continue
		}
		at := hb.At
		if at.IsZero() || at.After(now) {
			at = now
		}
		if _, ok := byID[hb.InstanceID]; !ok {
			order = append(order, hb.InstanceID)
		}
		byID[hb.InstanceID] = r.renewal(hb.InstanceID, at)
	}

	renewals := make([]domain.LeaseRenewal, 0, len(order))
	for _, id := range order {
		renewals = append(renewals, byID[id])
	}

	unlock := r.locks.LockAll(order)
	defer unlock()

	renewed, err := r.repo.RenewLeases(ctx, renewals)
	if err != nil {
		r.metrics.recordHeartbeats("error", len(renewals))
		level.Error(r.logger).Log("msg", "batch heartbeat write failed", "count", len(renewals), "err", err)
		return domain.BatchHeartbeatResult{}, NewPersistenceError("can't renew leases", err)
	}

	ok := make(map[string]struct{}, len(renewed))
	for _, id := range renewed {
		ok[id] = struct{}{}
	}
	for _, id := range order {
		if _, found := ok[id]; found {
			result.Processed = append(result.Processed, id)
			continue
		}
		result.Failed = append(result.Failed, domain.HeartbeatFailure{InstanceID: id, Reason: "service not found"})
	}

	r.metrics.recordHeartbeats("ok", len(result.Processed))
	r.metrics.recordHeartbeats("not_found", len(result.Failed))
	if len(result.Failed) > 0 {
		level.Warn(r.logger).Log("msg", "batch heartbeat had failures", "processed", len(result.Processed), "failed", len(result.Failed))
	}
	return result, nil
}

// CleanupStale soft-deletes active instances whose lease expired before now-grace. Each candidate is
// re-read under its lock, so a heartbeat that landed after ListStale wins. Per-row failures are logged
// and retried on the next tick; they are returned joined alongside the count of rows removed.
func (r *leaseRegistry) CleanupStale(ctx context.Context, grace time.Duration) (int, error) {
	cutoff := r.clock.Now().Add(-grace)
	stale, err := r.repo.ListStale(ctx, cutoff)
	if err != nil {
		level.Error(r.logger).Log("msg", "list stale failed", "err", err)
		return 0, NewPersistenceError("can't list stale instances", err)
	}

	removed := 0
	var errs []error
	for _, candidate := range stale {
		ok, err := r.deactivateIfStale(ctx, candidate.ID, cutoff)
		if err != nil {
			level.Error(r.logger).Log("msg", "deactivate stale instance failed", "service_id", candidate.ID, "err", err)
			errs = append(errs, err)
			continue
		}
		if ok {
			removed++
			level.Info(r.logger).Log("msg", "stale instance removed", "service", candidate.Name, "service_id", candidate.ID,
				"lease_expiry", candidate.LeaseExpiryAt.Format(time.RFC3339))
		}
	}
	r.metrics.recordStaleRemoved(removed)
	if len(errs) > 0 {
		return removed, NewPersistenceError("cleanup partially failed", errors.Join(errs...))
	}
	return removed, nil
}

func (r *leaseRegistry) deactivateIfStale(ctx context.Context, id string, cutoff time.Time) (bool, error) {
	unlock := r.locks.Lock(id)
	defer unlock()

	inst, err := r.repo.Get(ctx, id)
	if errors.Is(err, domain.ErrInstanceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !inst.IsActive || !inst.LeaseExpiryAt.Before(cutoff) {
		return false, nil
	}
	if err := r.repo.Deactivate(ctx, id, r.clock.Now()); err != nil {
		return false, err
	}
	return true, nil
}

// Deregister soft-deletes one instance. Deregistering an inactive instance is a no-op.
func (r *leaseRegistry) Deregister(ctx context.Context, id string) error {
	unlock := r.locks.Lock(id)
	defer unlock()

	inst, err := r.repo.Get(ctx, id)
	if err != nil {
		return NewPersistenceError(fmt.Sprintf("service %s not found", id), err)
	}
	if !inst.IsActive {
		return nil
	}
	if err := r.repo.Deactivate(ctx, id, r.clock.Now()); err != nil {
		level.Error(r.logger).Log("msg", "deregister failed", "service_id", id, "err", err)
		return NewPersistenceError("can't deregister instance", err)
	}
	level.Info(r.logger).Log("msg", "instance deregistered", "service", inst.Name, "service_id", id)
	return nil
}

// SetHealthStatus stores a health check outcome observed at observedAt (zero means now). The lease is left
// untouched. The write is dropped when the row was renewed after the observation: a heartbeat that
// landed meanwhile is the fresher answer.
func (r *leaseRegistry) SetHealthStatus(ctx context.Context, id string, status domain.HealthStatus, observedAt time.Time) error {
	unlock := r.locks.Lock(id)
	defer unlock()

	inst, err := r.repo.Get(ctx, id)
	if err != nil {
		return NewPersistenceError(fmt.Sprintf("service %s not found", id), err)
	}
	if !inst.IsActive {
		return NewEntityNotFoundError(fmt.Sprintf("service %s is not active", id), nil)
	}
	if observedAt.IsZero() {
		observedAt = r.clock.Now()
	}
	if inst.LastHeartbeat.After(observedAt) || (status == domain.HealthStatusUnknown && !inst.LeaseExpired(observedAt)) {
		level.Debug(r.logger).Log("msg", "stale health status dropped", "service_id", id, "status", status)
		return nil
	}
	if inst.Status == status {
		return nil
	}
	inst.Status = status
	inst.UpdatedAt = r.clock.Now()
	if err := r.repo.Update(ctx, inst); err != nil {
		return NewPersistenceError("can't store health status", err)
	}
	return nil
}

func (r *leaseRegistry) GetByID(ctx context.Context, id string) (domain.ServiceInstance, error) {
	inst, err := r.repo.Get(ctx, id)
	if err != nil {
		return domain.ServiceInstance{}, NewPersistenceError(fmt.Sprintf("service %s not found", id), err)
	}
	return inst, nil
}

func (r *leaseRegistry) GetAll(ctx context.Context) ([]domain.ServiceInstance, error) {
	instances, err := r.repo.List(ctx, true)
	if err != nil {
		level.Error(r.logger).Log("msg", "list instances failed", "err", err)
		return nil, NewPersistenceError("can't list instances", err)
	}
	return instances, nil
}

func (r *leaseRegistry) GetHealthy(ctx context.Context) ([]domain.ServiceInstance, error) {
	instances, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	healthy := make([]domain.ServiceInstance, 0, len(instances))
	for _, inst := range instances {
		if inst.IsActive && inst.Status == domain.HealthStatusHealthy {
			healthy = append(healthy, inst)
		}
	}
	return healthy, nil
}

func (r *leaseRegistry) Ping(ctx context.Context) error {
	if err := r.repo.Ping(ctx); err != nil {
		return NewPersistenceError("storage is unreachable", err)
	}
	return nil
}
