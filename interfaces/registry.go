package interfaces

import (
	"context"
	"time"

	"mycoordinator/domain"
)

// Registry is the lease registry: the source of truth for which instances exist and whether they are alive.
//
// Every mutation of one instance is serialized per id, so a heartbeat and a cleanup sweep on the same
// instance never both act on a stale read.
//
// Implemented by service.leaseRegistry. Used by handlers.HTTPServer, service.dependencyGraphOrchestrator
// (snapshot reads), service.startupSequencer (instances to start and probe) and the periodic tasks.
//
//go:generate moq -stub -out mock/registry.go -pkg mock . Registry
type Registry interface {
	// Register upserts by (name, host, port).
	// Returns:
	// 1) (instance, nil) with the stored row;
	// 2) (zero, bad_parameter) on invalid registration;
	// 3) (zero, persistence_failure) on storage error.
	Register(ctx context.Context, registration domain.Registration) (domain.ServiceInstance, error)

	// Heartbeat renews the lease of an active instance and marks it healthy.
	// Returns nil, entity_not_found for unknown or inactive ids (logged, not fatal), or persistence_failure.
	Heartbeat(ctx context.Context, id string) error

	// BatchHeartbeat applies all heartbeats in one atomic storage write.
	// Returns the per-id outcome; the error is non-nil only when the batch write itself failed.
	BatchHeartbeat(ctx context.Context, heartbeats []domain.Heartbeat) (domain.BatchHeartbeatResult, error)

	// CleanupStale soft-deletes active instances whose lease expired more than grace ago and drops their
	// dependency rows. Returns the number of instances removed.
	CleanupStale(ctx context.Context, grace time.Duration) (int, error)

	// Deregister soft-deletes one instance. Returns entity_not_found for unknown ids.
	Deregister(ctx context.Context, id string) error

	// SetHealthStatus records a probe outcome for an active instance without touching its lease.
	// A row renewed after observedAt keeps its status.
	SetHealthStatus(ctx context.Context, id string, status domain.HealthStatus, observedAt time.Time) error

	// GetByID returns one instance, active or not. Returns entity_not_found for unknown ids.
	GetByID(ctx context.Context, id string) (domain.ServiceInstance, error)

	// GetAll returns a snapshot of all active instances.
	GetAll(ctx context.Context) ([]domain.ServiceInstance, error)

	// GetHealthy returns active instances whose status is healthy.
	GetHealthy(ctx context.Context) ([]domain.ServiceInstance, error)

	// Ping checks the storage behind the registry.
	Ping(ctx context.Context) error
}
