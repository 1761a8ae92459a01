package service

import (
	"context"
	"testing"
	"time"

	"mycoordinator/adapters/memstore"
	"mycoordinator/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinator_StartAndShutdown(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	prober := &mock.HealthProberMock{}
	c := NewCoordinator(CoordinatorDeps{
		Repository: memstore.NewRepository(),
		Clock:      clock,
		Starter:    &mock.ServiceStarterMock{},
		Prober:     prober,
		Logger:     log.NewNopLogger(),
	}, CoordinatorConfig{
		Registry:            testRegistryConfig,
		Sequencer:           testSequencerConfig,
		CleanupInterval:     5 * time.Millisecond,
		CleanupGrace:        time.Second,
		HealthCheckInterval: 5 * time.Millisecond,
	})

	stale, err := c.Registry.Register(ctx, registration("stale", 7001))
	require.NoError(t, err)
	live, err := c.Registry.Register(ctx, registration("live", 7002))
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)
	require.NoError(t, c.Registry.Heartbeat(ctx, live.ID))

	c.Start(ctx)
	require.Eventually(t, func() bool {
		got, err := c.Registry.GetByID(ctx, stale.ID)
		return err == nil && !got.IsActive
	}, time.Second, time.Millisecond)
	require.Eventually(t, func() bool { return len(prober.ProbeCalls()) > 0 }, time.Second, time.Millisecond)

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, c.Shutdown(shutdownCtx))

	got, err := c.Registry.GetByID(ctx, live.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
}

func TestNewCoordinator_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "service.coordinator.go: logger is required", func() {
		NewCoordinator(CoordinatorDeps{}, CoordinatorConfig{})
	})
}
