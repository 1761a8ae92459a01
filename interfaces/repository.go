package interfaces

import (
	"context"
	"time"

	"mycoordinator/domain"
)

// InstanceRepository is the storage boundary of the lease registry: a flat table of ServiceInstance rows
// keyed by id, each owning its outgoing DependencyRef rows.
//
// Rows are never hard-deleted except by Delete, which the registry only uses to collapse duplicate rows
// for one (name, host, port). Implementations must not import the service package: a missing row is
// reported as an error wrapping domain.ErrInstanceNotFound, every other failure is returned as is.
//
// Implemented by adapters/memstore, adapters/myredis and adapters/gormstore.
//
//go:generate moq -stub -out mock/instance_repository.go -pkg mock . InstanceRepository
type InstanceRepository interface {
	// Create inserts a new row. Returns an error if a row with the same id exists.
	Create(ctx context.Context, instance domain.ServiceInstance) error

	// Update replaces the row (including its dependency rows) identified by instance.ID.
	// Returns:
	// 1) nil on success;
	// 2) error wrapping domain.ErrInstanceNotFound when the row is absent;
	// 3) any storage error.
	Update(ctx context.Context, instance domain.ServiceInstance) error

	// Get returns one row by id, active or not.
	// Returns (instance, nil) or (zero, error wrapping domain.ErrInstanceNotFound).
	Get(ctx context.Context, id string) (domain.ServiceInstance, error)

	// FindByAddress returns every row (active and inactive) registered for (name, host, port), oldest first.
	FindByAddress(ctx context.Context, name, host string, port int) ([]domain.ServiceInstance, error)

	// List returns every row; activeOnly filters soft-deleted rows out. Empty storage yields an empty slice.
	List(ctx context.Context, activeOnly bool) ([]domain.ServiceInstance, error)

	// ListStale returns active rows whose LeaseExpiryAt is strictly before cutoff.
	ListStale(ctx context.Context, cutoff time.Time) ([]domain.ServiceInstance, error)

	// RenewLeases applies all renewals atomically (single transaction / MULTI block). Rows that are absent or
	// inactive are skipped and not reported as renewed.
	// Returns the ids actually renewed.
	RenewLeases(ctx context.Context, renewals []domain.LeaseRenewal) ([]string, error)

	// Deactivate soft-deletes the row (IsActive=false, UpdatedAt=at) and deletes its dependency rows.
	Deactivate(ctx context.Context, id string, at time.Time) error

	// Delete hard-deletes the row and its dependency rows.
	Delete(ctx context.Context, id string) error

	// Ping checks that storage is reachable.
	Ping(ctx context.Context) error
}
