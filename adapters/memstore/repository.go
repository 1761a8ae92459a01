// Package memstore is the in-process InstanceRepository used when STORAGE_BACKEND=memory and in tests.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"mycoordinator/domain"
	"mycoordinator/interfaces"
)

type repository struct {
	mu   sync.RWMutex
	rows map[string]domain.ServiceInstance
	seq  map[string]int64 // insertion order, FindByAddress returns oldest first
	next int64
}

// NewRepository creates an empty in-memory repository.
func NewRepository() interfaces.InstanceRepository {
	return &repository{
		rows: make(map[string]domain.ServiceInstance),
		seq:  make(map[string]int64),
	}
}

func (r *repository) Create(_ context.Context, instance domain.ServiceInstance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[instance.ID]; ok {
		return fmt.Errorf("instance %s already exists", instance.ID)
	}
	r.rows[instance.ID] = instance.Clone()
	r.next++
	r.seq[instance.ID] = r.next
	return nil
}

func (r *repository) Update(_ context.Context, instance domain.ServiceInstance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[instance.ID]; !ok {
		return fmt.Errorf("update %s: %w", instance.ID, domain.ErrInstanceNotFound)
	}
	r.rows[instance.ID] = instance.Clone()
	return nil
}

func (r *repository) Get(_ context.Context, id string) (domain.ServiceInstance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.rows[id]
	if !ok {
		return domain.ServiceInstance{}, fmt.Errorf("get %s: %w", id, domain.ErrInstanceNotFound)
	}
	return row.Clone(), nil
}

func (r *repository) FindByAddress(_ context.Context, name, host string, port int) ([]domain.ServiceInstance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.ServiceInstance, 0, 1)
	for _, row := range r.rows {
		if row.Name == name && row.Host == host && row.Port == port {
			out = append(out, row.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return r.seq[out[i].ID] < r.seq[out[j].ID] })
	return out, nil
}

func (r *repository) List(_ context.Context, activeOnly bool) ([]domain.ServiceInstance, error) {
	return r.filter(func(row domain.ServiceInstance) bool { return !activeOnly || row.IsActive }), nil
}

func (r *repository) ListStale(_ context.Context, cutoff time.Time) ([]domain.ServiceInstance, error) {
	return r.filter(func(row domain.ServiceInstance) bool {
		return row.IsActive && row.LeaseExpiryAt.Before(cutoff)
	}), nil
}

func (r *repository) filter(keep func(domain.ServiceInstance) bool) []domain.ServiceInstance {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.ServiceInstance, 0, len(r.rows))
	for _, row := range r.rows {
		if keep(row) {
			out = append(out, row.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return r.seq[out[i].ID] < r.seq[out[j].ID] })
	return out
}

// RenewLeases applies the whole batch under one write lock.
func (r *repository) RenewLeases(_ context.Context, renewals []domain.LeaseRenewal) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	renewed := make([]string, 0, len(renewals))
	for _, rn := range renewals {
		row, ok := r.rows[rn.InstanceID]
		if !ok || !row.IsActive {
			continue
		}
		row.Status = domain.HealthStatusHealthy
		row.LastHeartbeat = rn.At
		row.LeaseExpiryAt = rn.ExpiresAt
		row.UpdatedAt = rn.At
		r.rows[rn.InstanceID] = row
		renewed = append(renewed, rn.InstanceID)
	}
	return renewed, nil
}

func (r *repository) Deactivate(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return fmt.Errorf("deactivate %s: %w", id, domain.ErrInstanceNotFound)
	}
	row.IsActive = false
	row.UpdatedAt = at
	row.Dependencies = nil
	r.rows[id] = row
	return nil
}

func (r *repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return fmt.Errorf("delete %s: %w", id, domain.ErrInstanceNotFound)
	}
	delete(r.rows, id)
	delete(r.seq, id)
	return nil
}

func (r *repository) Ping(context.Context) error {
	return nil
}
