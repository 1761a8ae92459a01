package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"mycoordinator/domain"
	"mycoordinator/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthSweep_Run(t *testing.T) {
	ctx := context.Background()
	reg, _, clock := newTestRegistry(t)
	up, err := reg.Register(ctx, registration("up", 7001))
	require.NoError(t, err)
	down, err := reg.Register(ctx, registration("down", 7002))
	require.NoError(t, err)
	expired, err := reg.Register(ctx, registration("expired", 7003))
	require.NoError(t, err)

	// Keep up and down alive, let expired run past its lease.
	clock.Advance(59 * time.Second)
	require.NoError(t, reg.Heartbeat(ctx, up.ID))
	require.NoError(t, reg.Heartbeat(ctx, down.ID))
	clock.Advance(2 * time.Second)

	prober := &mock.HealthProberMock{
		ProbeFunc: func(ctx context.Context, target string) error {
			if strings.Contains(target, ":7002") {
				return errors.New("503")
			}
			return nil
		},
	}
	sweep := newHealthSweep(reg, prober, clock, time.Second, nil, log.NewNopLogger())
	sweep.Run(ctx)

	want := map[string]domain.HealthStatus{
		up.ID:      domain.HealthStatusHealthy,
		down.ID:    domain.HealthStatusUnhealthy,
		expired.ID: domain.HealthStatusUnknown,
	}
	for id, status := range want {
		got, err := reg.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, status, got.Status, got.Name)
	}
	assert.Len(t, prober.ProbeCalls(), 2)

	t.Run("lease is not renewed by the sweep", func(t *testing.T) {
		got, err := reg.GetByID(ctx, expired.ID)
		require.NoError(t, err)
		assert.Equal(t, expired.LeaseExpiryAt, got.LeaseExpiryAt)
	})
}

func TestHealthSweep_HeartbeatDuringSweepWins(t *testing.T) {
	ctx := context.Background()
	reg, _, clock := newTestRegistry(t)
	inst, err := reg.Register(ctx, registration("flaky", 7001))
	require.NoError(t, err)

	prober := &mock.HealthProberMock{
		ProbeFunc: func(ctx context.Context, target string) error {
			// the instance checks in while its health check is in flight
			clock.Advance(time.Second)
			assert.NoError(t, reg.Heartbeat(ctx, inst.ID))
			return errors.New("connection reset")
		},
	}
	sweep := newHealthSweep(reg, prober, clock, time.Second, nil, log.NewNopLogger())
	sweep.Run(ctx)

	got, err := reg.GetByID(ctx, inst.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.HealthStatusHealthy, got.Status)
	require.Len(t, prober.ProbeCalls(), 1)
}

func TestHealthSweep_PassesSnapshotTime(t *testing.T) {
	clock := newFakeClock()
	inst := domain.ServiceInstance{ID: "id-1", Name: "api", Host: "10.0.0.1", Port: 80, IsActive: true, LeaseExpiryAt: clock.Now().Add(-time.Second)}
	reg := &mock.RegistryMock{
		GetAllFunc: func(ctx context.Context) ([]domain.ServiceInstance, error) {
			return []domain.ServiceInstance{inst}, nil
		},
	}
	sweep := newHealthSweep(reg, &mock.HealthProberMock{}, clock, 0, nil, log.NewNopLogger())
	sweep.Run(context.Background())

	calls := reg.SetHealthStatusCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, domain.HealthStatusUnknown, calls[0].Status)
	assert.Equal(t, clock.Now(), calls[0].ObservedAt)
}

func TestHealthSweep_RegistryError(t *testing.T) {
	reg := &mock.RegistryMock{
		GetAllFunc: func(ctx context.Context) ([]domain.ServiceInstance, error) {
			return nil, errors.New("db down")
		},
	}
	prober := &mock.HealthProberMock{}
	sweep := newHealthSweep(reg, prober, newFakeClock(), 0, nil, log.NewNopLogger())
	sweep.Run(context.Background())
	assert.Empty(t, prober.ProbeCalls())
	assert.Empty(t, reg.SetHealthStatusCalls())
}
