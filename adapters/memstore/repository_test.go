package memstore

import (
	"context"
	"testing"
	"time"

	"mycoordinator/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 2, 21, 12, 0, 0, 0, time.UTC)

func newInstance(id, name string, port int) domain.ServiceInstance {
	return domain.ServiceInstance{
		ID:            id,
		Name:          name,
		Host:          "10.0.0.1",
		Port:          port,
		Status:        domain.HealthStatusUnknown,
		IsActive:      true,
		LeaseTTL:      30 * time.Second,
		LeaseExpiryAt: baseTime.Add(time.Minute),
		LastHeartbeat: baseTime,
		RegisteredAt:  baseTime,
		UpdatedAt:     baseTime,
		Metadata:      map[string]any{"zone": "a"},
		Dependencies:  []domain.DependencyRef{{Name: "db", Kind: domain.DependencyHard, Required: true}},
	}
}

func TestRepository_CreateGet(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	inst := newInstance("i1", "api", 8080)

	require.NoError(t, repo.Create(ctx, inst))
	assert.Error(t, repo.Create(ctx, inst))

	got, err := repo.Get(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, inst, got)

	t.Run("returned rows are copies", func(t *testing.T) {
		got.Metadata["zone"] = "b"
		got.Dependencies[0].Name = "cache"
		again, err := repo.Get(ctx, "i1")
		require.NoError(t, err)
		assert.Equal(t, "a", again.Metadata["zone"])
		assert.Equal(t, "db", again.Dependencies[0].Name)
	})

	t.Run("missing id wraps ErrInstanceNotFound", func(t *testing.T) {
		_, err := repo.Get(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrInstanceNotFound)
		assert.ErrorIs(t, repo.Update(ctx, newInstance("nope", "x", 1)), domain.ErrInstanceNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, "nope"), domain.ErrInstanceNotFound)
		assert.ErrorIs(t, repo.Deactivate(ctx, "nope", baseTime), domain.ErrInstanceNotFound)
	})
}

func TestRepository_FindByAddress_OldestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	require.NoError(t, repo.Create(ctx, newInstance("b", "api", 8080)))
	require.NoError(t, repo.Create(ctx, newInstance("a", "api", 8080)))
	require.NoError(t, repo.Create(ctx, newInstance("c", "api", 9090)))

	rows, err := repo.FindByAddress(ctx, "api", "10.0.0.1", 8080)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "b", rows[0].ID)
	assert.Equal(t, "a", rows[1].ID)
}

func TestRepository_ListStaleAndDeactivate(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	fresh := newInstance("fresh", "api", 1)
	stale := newInstance("stale", "api", 2)
	stale.LeaseExpiryAt = baseTime.Add(-time.Minute)
	require.NoError(t, repo.Create(ctx, fresh))
	require.NoError(t, repo.Create(ctx, stale))

	rows, err := repo.ListStale(ctx, baseTime)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "stale", rows[0].ID)

	require.NoError(t, repo.Deactivate(ctx, "stale", baseTime))
	got, err := repo.Get(ctx, "stale")
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.Empty(t, got.Dependencies)

	rows, err = repo.ListStale(ctx, baseTime)
	require.NoError(t, err)
	assert.Empty(t, rows)

	active, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 1)
	all, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRepository_RenewLeases(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	require.NoError(t, repo.Create(ctx, newInstance("a", "api", 1)))
	inactive := newInstance("b", "api", 2)
	inactive.IsActive = false
	require.NoError(t, repo.Create(ctx, inactive))

	at := baseTime.Add(10 * time.Second)
	renewed, err := repo.RenewLeases(ctx, []domain.LeaseRenewal{
		{InstanceID: "a", At: at, ExpiresAt: at.Add(35 * time.Second)},
		{InstanceID: "b", At: at, ExpiresAt: at.Add(35 * time.Second)},
		{InstanceID: "missing", At: at, ExpiresAt: at.Add(35 * time.Second)},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, renewed)

	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, domain.HealthStatusHealthy, got.Status)
	assert.Equal(t, at, got.LastHeartbeat)
	assert.Equal(t, at.Add(35*time.Second), got.LeaseExpiryAt)
}
