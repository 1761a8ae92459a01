// Package myredis is the redis-backed InstanceRepository used when STORAGE_BACKEND=redis.
//
// Layout under the namespace prefix:
//
//	<ns>:instance:<id>                   JSON instance row with its dependency rows inlined
//	<ns>:address:<name>|<host>|<port>    SET of instance ids registered for that address
//	<ns>:seq                             insertion counter, orders rows oldest first
package myredis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"mycoordinator/domain"
	"mycoordinator/helpers"
	"mycoordinator/interfaces"

	"github.com/go-redis/redis/v8"
)

// maxTxRetries bounds optimistic WATCH/MULTI retries when another writer touched a watched key.
const maxTxRetries = 5

type dependencyRecord struct {
	Name            string `json:"name"`
	Kind            string `json:"kind"`
	TimeoutMs       *int   `json:"timeoutMs,omitempty"`
	HealthCheckPath string `json:"healthCheckPath,omitempty"`
	Required        bool   `json:"required"`
}

type instanceRecord struct {
	ID             string             `json:"id"`
	Seq            int64              `json:"seq"`
	Name           string             `json:"name"`
	Host           string             `json:"host"`
	Port           int                `json:"port"`
	HealthEndpoint string             `json:"healthEndpoint,omitempty"`
	Status         string             `json:"status"`
	IsActive       bool               `json:"isActive"`
	LeaseTTLMs     int64              `json:"leaseTtlMs"`
	LeaseExpiryAt  time.Time          `json:"leaseExpiryAt"`
	LastHeartbeat  time.Time          `json:"lastHeartbeat"`
	RegisteredAt   time.Time          `json:"registeredAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
	Metadata       map[string]any     `json:"metadata,omitempty"`
	Dependencies   []dependencyRecord `json:"dependencies,omitempty"`
}

func toRecord(s domain.ServiceInstance, seq int64) instanceRecord {
	rec := instanceRecord{
		ID:             s.ID,
		Seq:            seq,
		Name:           s.Name,
		Host:           s.Host,
		Port:           s.Port,
		HealthEndpoint: s.HealthEndpoint,
		Status:         string(s.Status),
		IsActive:       s.IsActive,
		LeaseTTLMs:     s.LeaseTTL.Milliseconds(),
		LeaseExpiryAt:  s.LeaseExpiryAt.UTC(),
		LastHeartbeat:  s.LastHeartbeat.UTC(),
		RegisteredAt:   s.RegisteredAt.UTC(),
		UpdatedAt:      s.UpdatedAt.UTC(),
		Metadata:       s.Metadata,
	}
	for _, d := range s.Dependencies {
		rec.Dependencies = append(rec.Dependencies, dependencyRecord{
			Name:            d.Name,
			Kind:            string(d.Kind),
			TimeoutMs:       d.TimeoutMs,
			HealthCheckPath: d.HealthCheckPath,
			Required:        d.Required,
		})
	}
	return rec
}

func (rec instanceRecord) toDomain() domain.ServiceInstance {
	s := domain.ServiceInstance{
		ID:             rec.ID,
		Name:           rec.Name,
		Host:           rec.Host,
		Port:           rec.Port,
		HealthEndpoint: rec.HealthEndpoint,
		Status:         domain.HealthStatus(rec.Status),
		IsActive:       rec.IsActive,
		LeaseTTL:       time.Duration(rec.LeaseTTLMs) * time.Millisecond,
		LeaseExpiryAt:  rec.LeaseExpiryAt,
		LastHeartbeat:  rec.LastHeartbeat,
		RegisteredAt:   rec.RegisteredAt,
		UpdatedAt:      rec.UpdatedAt,
		Metadata:       rec.Metadata,
	}
	for _, d := range rec.Dependencies {
		s.Dependencies = append(s.Dependencies, domain.DependencyRef{
			Name:            d.Name,
			Kind:            domain.DependencyKind(d.Kind),
			TimeoutMs:       d.TimeoutMs,
			HealthCheckPath: d.HealthCheckPath,
			Required:        d.Required,
		})
	}
	return s
}

func marshalRecord(rec instanceRecord) ([]byte, error) { return json.Marshal(rec) }

func unmarshalRecord(b []byte) (instanceRecord, error) {
	var rec instanceRecord
	err := json.Unmarshal(b, &rec)
	return rec, err
}

type repository struct {
	client    redis.UniversalClient
	namespace string
	instances *cache[instanceRecord]
}

// NewRepository creates a redis repository whose keys all live under namespace.
func NewRepository(client redis.UniversalClient, namespace string) interfaces.InstanceRepository {
	client = helpers.NilPanic(client, "myredis.repository.go: client is required")
	namespace = helpers.StrPanic(namespace, "myredis.repository.go: namespace is required")
	return &repository{
		client:    client,
		namespace: namespace,
		instances: newCache(client, namespace+":instance", marshalRecord, unmarshalRecord),
	}
}

func (r *repository) addressKey(name, host string, port int) string {
	return r.namespace + ":address:" + name + "|" + host + "|" + strconv.Itoa(port)
}

func (r *repository) seqKey() string {
	return r.namespace + ":seq"
}

// watch runs fn inside WATCH on the given instance keys and retries when the transaction was aborted.
func (r *repository) watch(ctx context.Context, fn func(tx *redis.Tx) error, ids ...string) error {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.instances.generateKey(id)
	}
	var err error
	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err = r.client.Watch(ctx, fn, keys...)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return fmt.Errorf("redis transaction aborted after %d attempts: %w", maxTxRetries, err)
}

func (r *repository) Create(ctx context.Context, instance domain.ServiceInstance) error {
	seq, err := r.client.Incr(ctx, r.seqKey()).Result()
	if err != nil {
		return fmt.Errorf("can't allocate sequence for instance %s: %w", instance.ID, err)
	}
	rec := toRecord(instance, seq)
	return r.watch(ctx, func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, r.instances.generateKey(instance.ID)).Result()
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("instance %s already exists", instance.ID)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if err := r.instances.WriteValue(ctx, pipe, rec.ID, rec); err != nil {
				return err
			}
			return pipe.SAdd(ctx, r.addressKey(rec.Name, rec.Host, rec.Port), rec.ID).Err()
		})
		return err
	}, instance.ID)
}

func (r *repository) Update(ctx context.Context, instance domain.ServiceInstance) error {
	return r.watch(ctx, func(tx *redis.Tx) error {
		prev, err := r.instances.ReadValue(ctx, tx, instance.ID)
		if err != nil {
			return fmt.Errorf("update: %w", err)
		}
		rec := toRecord(instance, prev.Seq)
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if err := r.instances.WriteValue(ctx, pipe, rec.ID, rec); err != nil {
				return err
			}
			oldKey, newKey := r.addressKey(prev.Name, prev.Host, prev.Port), r.addressKey(rec.Name, rec.Host, rec.Port)
			if oldKey != newKey {
				pipe.SRem(ctx, oldKey, rec.ID)
			}
			return pipe.SAdd(ctx, newKey, rec.ID).Err()
		})
		return err
	}, instance.ID)
}

func (r *repository) Get(ctx context.Context, id string) (domain.ServiceInstance, error) {
	rec, err := r.instances.ReadValue(ctx, r.client, id)
	if err != nil {
		return domain.ServiceInstance{}, fmt.Errorf("get: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *repository) FindByAddress(ctx context.Context, name, host string, port int) ([]domain.ServiceInstance, error) {
	ids, err := r.client.SMembers(ctx, r.addressKey(name, host, port)).Result()
	if err != nil {
		return nil, fmt.Errorf("can't read address index: %w", err)
	}
	recs := make([]instanceRecord, 0, len(ids))
	for _, id := range ids {
		rec, err := r.instances.ReadValue(ctx, r.client, id)
		if errors.Is(err, domain.ErrInstanceNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return sortedInstances(recs, nil), nil
}

func (r *repository) List(ctx context.Context, activeOnly bool) ([]domain.ServiceInstance, error) {
	recs, err := r.instances.ListAllValues(ctx)
	if err != nil {
		return nil, err
	}
	return sortedInstances(recs, func(rec instanceRecord) bool { return !activeOnly || rec.IsActive }), nil
}

func (r *repository) ListStale(ctx context.Context, cutoff time.Time) ([]domain.ServiceInstance, error) {
	recs, err := r.instances.ListAllValues(ctx)
	if err != nil {
		return nil, err
	}
	return sortedInstances(recs, func(rec instanceRecord) bool {
		return rec.IsActive && rec.LeaseExpiryAt.Before(cutoff)
	}), nil
}

// RenewLeases watches every affected row and writes the renewed ones in a single MULTI block.
func (r *repository) RenewLeases(ctx context.Context, renewals []domain.LeaseRenewal) ([]string, error) {
	if len(renewals) == 0 {
		return []string{}, nil
	}
	ids := make([]string, len(renewals))
	for i, rn := range renewals {
		ids[i] = rn.InstanceID
	}

	var renewed []string
	err := r.watch(ctx, func(tx *redis.Tx) error {
		renewed = make([]string, 0, len(renewals))
		updates := make([]instanceRecord, 0, len(renewals))
		for _, rn := range renewals {
			rec, err := r.instances.ReadValue(ctx, tx, rn.InstanceID)
			if errors.Is(err, domain.ErrInstanceNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			if !rec.IsActive {
				continue
			}
			rec.Status = string(domain.HealthStatusHealthy)
			rec.LastHeartbeat = rn.At.UTC()
			rec.LeaseExpiryAt = rn.ExpiresAt.UTC()
			rec.UpdatedAt = rn.At.UTC()
			updates = append(updates, rec)
			renewed = append(renewed, rn.InstanceID)
		}
		if len(updates) == 0 {
			return nil
		}
		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, rec := range updates {
				if err := r.instances.WriteValue(ctx, pipe, rec.ID, rec); err != nil {
					return err
				}
			}
			return nil
		})
		return err
	}, ids...)
	if err != nil {
		return nil, fmt.Errorf("renew leases: %w", err)
	}
	return renewed, nil
}

func (r *repository) Deactivate(ctx context.Context, id string, at time.Time) error {
	return r.watch(ctx, func(tx *redis.Tx) error {
		rec, err := r.instances.ReadValue(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("deactivate: %w", err)
		}
		rec.IsActive = false
		rec.UpdatedAt = at.UTC()
		rec.Dependencies = nil
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			return r.instances.WriteValue(ctx, pipe, rec.ID, rec)
		})
		return err
	}, id)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.watch(ctx, func(tx *redis.Tx) error {
		rec, err := r.instances.ReadValue(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("delete: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if err := r.instances.DeleteValue(ctx, pipe, id); err != nil {
				return err
			}
			return pipe.SRem(ctx, r.addressKey(rec.Name, rec.Host, rec.Port), id).Err()
		})
		return err
	}, id)
}

func (r *repository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func sortedInstances(recs []instanceRecord, keep func(instanceRecord) bool) []domain.ServiceInstance {
	sort.Slice(recs, func(i, j int) bool { return recs[i].Seq < recs[j].Seq })
	out := make([]domain.ServiceInstance, 0, len(recs))
	for _, rec := range recs {
		if keep == nil || keep(rec) {
			out = append(out, rec.toDomain())
		}
	}
	return out
}
