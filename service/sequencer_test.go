package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"mycoordinator/domain"
	"mycoordinator/interfaces"
	"mycoordinator/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sequencerFixture struct {
	registry     interfaces.Registry
	orchestrator interfaces.Orchestrator
	starter      *mock.ServiceStarterMock
	prober       *mock.HealthProberMock
	sequencer    interfaces.Sequencer
}

var testSequencerConfig = SequencerConfig{
	InterWaveDelay:      time.Millisecond,
	HealthCheckRetries:  3,
	HealthCheckInterval: time.Millisecond,
	OptimizationEnabled: true,
}

func newSequencerFixture(t *testing.T, cfg SequencerConfig) *sequencerFixture {
	t.Helper()
	reg, _, clock := newTestRegistry(t)
	metrics := NewMetrics(prometheus.NewRegistry())
	orch := NewOrchestrator(reg, clock, OrchestratorConfig{PollInterval: time.Millisecond}, metrics, log.NewNopLogger())
	f := &sequencerFixture{
		registry:     reg,
		orchestrator: orch,
		starter:      &mock.ServiceStarterMock{},
		prober:       &mock.HealthProberMock{},
	}
	f.sequencer = NewSequencer(reg, orch, f.starter, f.prober, clock, cfg, metrics, log.NewNopLogger())
	return f
}

func (f *sequencerFixture) register(t *testing.T, name string, port int, deps ...domain.DependencySpec) {
	t.Helper()
	_, err := f.registry.Register(context.Background(), registration(name, port, deps...))
	require.NoError(t, err)
}

func (f *sequencerFixture) status(name string) domain.NodeStatus {
	st, _ := f.orchestrator.GetServiceStatus(name)
	return st.Status
}

func TestNewSequencer_Panics(t *testing.T) {
	reg := &mock.RegistryMock{}
	orch := &mock.OrchestratorMock{}
	starter := &mock.ServiceStarterMock{}
	prober := &mock.HealthProberMock{}
	clock := newFakeClock()
	logger := log.NewNopLogger()

	tests := []struct {
		name string
		msg  string
		fn   func()
	}{
		{"registry_nil", "service.sequencer.go: registry is required", func() {
			NewSequencer(nil, orch, starter, prober, clock, SequencerConfig{}, nil, logger)
		}},
		{"orchestrator_nil", "service.sequencer.go: orchestrator is required", func() {
			NewSequencer(reg, nil, starter, prober, clock, SequencerConfig{}, nil, logger)
		}},
		{"starter_nil", "service.sequencer.go: starter is required", func() {
			NewSequencer(reg, orch, nil, prober, clock, SequencerConfig{}, nil, logger)
		}},
		{"prober_nil", "service.sequencer.go: prober is required", func() {
			NewSequencer(reg, orch, starter, nil, clock, SequencerConfig{}, nil, logger)
		}},
		{"logger_nil", "service.sequencer.go: logger is required", func() {
			NewSequencer(reg, orch, starter, prober, clock, SequencerConfig{}, nil, nil)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.PanicsWithValue(t, tt.msg, tt.fn)
		})
	}
}

func TestSequencer_Execute_AllHealthy(t *testing.T) {
	ctx := context.Background()
	f := newSequencerFixture(t, testSequencerConfig)
	f.register(t, "A", 7001)
	f.register(t, "B", 7002, hard("A"))
	f.register(t, "C", 7003, hard("A"), soft("D"))

	res, err := f.sequencer.Execute(ctx)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 2, res.WavesExecuted)
	assert.ElementsMatch(t, []string{"A", "B", "C"}, res.ServicesStarted)
	assert.Empty(t, res.Errors)
	assert.Len(t, f.starter.StartCalls(), 3)
	assert.Equal(t, "A", f.starter.StartCalls()[0].Name)
	for _, name := range []string{"A", "B", "C"} {
		assert.Equal(t, domain.NodeStatusReady, f.status(name))
	}
	assert.Equal(t, 1.5, res.Analytics.AverageWaveSize)
	assert.Equal(t, 2, res.Analytics.MaxParallelism)
	assert.Len(t, res.Analytics.WaveDurations, 2)

	t.Run("second run skips ready services", func(t *testing.T) {
		again, err := f.sequencer.Execute(ctx)
		require.NoError(t, err)
		assert.True(t, again.Success)
		assert.Empty(t, again.ServicesStarted)
		assert.ElementsMatch(t, []string{"A", "B", "C"}, again.AlreadyReady)
		assert.Len(t, f.starter.StartCalls(), 3)
	})

	stats := f.sequencer.Analytics()
	assert.Equal(t, 2, stats.TotalExecutions)
	require.NotNil(t, stats.LastResult)
	assert.True(t, stats.OptimizationEnabled)
}

func TestSequencer_Execute_FailureIsolation(t *testing.T) {
	ctx := context.Background()
	f := newSequencerFixture(t, testSequencerConfig)
	f.register(t, "A", 7001)
	f.register(t, "B", 7002, hard("A"))
	f.register(t, "E", 7005)
	f.register(t, "F", 7006, hard("E"))
	f.prober.ProbeFunc = func(ctx context.Context, target string) error {
		if strings.Contains(target, ":7001") {
			return errors.New("connection refused")
		}
		return nil
	}

	res, err := f.sequencer.Execute(ctx)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, 2, res.WavesExecuted)
	assert.ElementsMatch(t, []string{"E", "F"}, res.ServicesStarted)
	require.Len(t, res.Errors, 2)

	byService := map[string]domain.ServiceError{}
	for _, e := range res.Errors {
		byService[e.Service] = e
	}
	assert.Equal(t, ErrTimeout, byService["A"].Code)
	assert.Equal(t, ErrValidationFailure, byService["B"].Code)

	assert.Equal(t, domain.NodeStatusFailed, f.status("A"))
	assert.Equal(t, domain.NodeStatusPending, f.status("B"))
	assert.Equal(t, domain.NodeStatusReady, f.status("F"))

	// A was probed HealthCheckRetries times, B was never started.
	probesA := 0
	for _, c := range f.prober.ProbeCalls() {
		if strings.Contains(c.Target, ":7001") {
			probesA++
		}
	}
	assert.Equal(t, 3, probesA)
	for _, c := range f.starter.StartCalls() {
		assert.NotEqual(t, "B", c.Name)
	}

	t.Run("dependent starts once its dependency recovers", func(t *testing.T) {
		require.NoError(t, f.orchestrator.ReportServiceReady(ctx, "A"))

		again, err := f.sequencer.Execute(ctx)
		require.NoError(t, err)
		assert.True(t, again.Success)
		assert.Equal(t, []string{"B"}, again.ServicesStarted)
		assert.ElementsMatch(t, []string{"A", "E", "F"}, again.AlreadyReady)
		assert.Equal(t, domain.NodeStatusReady, f.status("B"))
	})
}

func TestSequencer_Execute_RefusedDependentStaysPending(t *testing.T) {
	ctx := context.Background()
	reg, _, clock := newTestRegistry(t)
	orch := &mock.OrchestratorMock{
		GetStartupOrderFunc: func(ctx context.Context) (domain.StartupOrder, error) {
			return domain.StartupOrder{Waves: []domain.StartupWave{{Number: 1, Services: []string{"B"}}}}, nil
		},
		GetServiceStatusFunc: func(name string) (domain.NodeState, bool) {
			return domain.NodeState{Status: domain.NodeStatusPending}, true
		},
		RequestStartupClearanceFunc: func(ctx context.Context, name string) (bool, domain.ValidationResult, error) {
			return false, domain.ValidationResult{Missing: []string{}, Failed: []string{"A"}}, nil
		},
	}
	_, err := reg.Register(ctx, registration("B", 7002))
	require.NoError(t, err)
	seq := NewSequencer(reg, orch, &mock.ServiceStarterMock{}, &mock.HealthProberMock{}, clock,
		testSequencerConfig, nil, log.NewNopLogger())

	res, err := seq.Execute(ctx)
	require.NoError(t, err)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, ErrValidationFailure, res.Errors[0].Code)
	assert.Contains(t, res.Errors[0].Error, "failed=[A]")
	assert.Empty(t, orch.ReportServiceFailureCalls())
	assert.Empty(t, orch.ReportServiceReadyCalls())
}

func TestSequencer_Execute_StartHookError(t *testing.T) {
	f := newSequencerFixture(t, testSequencerConfig)
	f.register(t, "A", 7001)
	f.starter.StartFunc = func(ctx context.Context, name string, instances []domain.ServiceInstance) error {
		return errors.New("supervisor unavailable")
	}

	res, err := f.sequencer.Execute(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Success)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, ErrInternalServerError, res.Errors[0].Code)
	assert.Empty(t, f.prober.ProbeCalls())
}

func TestSequencer_Execute_CycleRunsDegradedWave(t *testing.T) {
	f := newSequencerFixture(t, testSequencerConfig)
	f.register(t, "A", 7001, hard("B"))
	f.register(t, "B", 7002, hard("A"))

	res, err := f.sequencer.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 1, res.WavesExecuted)
	assert.ElementsMatch(t, []string{"A", "B"}, res.ServicesStarted)
}

func TestSequencer_Execute_Parallelism(t *testing.T) {
	run := func(t *testing.T, cfg SequencerConfig) int32 {
		f := newSequencerFixture(t, cfg)
		for i, name := range []string{"a", "b", "c", "d"} {
			f.register(t, name, 7001+i)
		}
		var current, peak atomic.Int32
		f.starter.StartFunc = func(ctx context.Context, name string, instances []domain.ServiceInstance) error {
			n := current.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(30 * time.Millisecond)
			current.Add(-1)
			return nil
		}
		res, err := f.sequencer.Execute(context.Background())
		require.NoError(t, err)
		require.True(t, res.Success)
		return peak.Load()
	}

	t.Run("unbounded", func(t *testing.T) {
		assert.Greater(t, run(t, testSequencerConfig), int32(1))
	})
	t.Run("bounded by max_parallel", func(t *testing.T) {
		cfg := testSequencerConfig
		cfg.MaxParallel = 2
		assert.LessOrEqual(t, run(t, cfg), int32(2))
	})
	t.Run("optimization disabled is sequential", func(t *testing.T) {
		cfg := testSequencerConfig
		cfg.OptimizationEnabled = false
		assert.Equal(t, int32(1), run(t, cfg))
	})
}

func TestSequencer_Execute_RejectsConcurrentRun(t *testing.T) {
	f := newSequencerFixture(t, testSequencerConfig)
	f.register(t, "A", 7001)
	entered := make(chan struct{})
	release := make(chan struct{})
	f.starter.StartFunc = func(ctx context.Context, name string, instances []domain.ServiceInstance) error {
		close(entered)
		<-release
		return nil
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = f.sequencer.Execute(context.Background())
	}()
	<-entered

	_, err := f.sequencer.Execute(context.Background())
	assert.True(t, IsConflictError(err))
	close(release)
	wg.Wait()
}

func TestSequencer_Execute_Cancelled(t *testing.T) {
	f := newSequencerFixture(t, testSequencerConfig)
	f.register(t, "A", 7001)
	f.register(t, "B", 7002, hard("A"))
	ctx, cancel := context.WithCancel(context.Background())
	f.starter.StartFunc = func(ctx context.Context, name string, instances []domain.ServiceInstance) error {
		cancel()
		return nil
	}

	res, err := f.sequencer.Execute(ctx)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, 1, res.WavesExecuted)
	require.NotEmpty(t, res.Errors)
	assert.Equal(t, "B", res.Errors[len(res.Errors)-1].Service)
}

func TestSequencer_Preview(t *testing.T) {
	cfg := testSequencerConfig
	cfg.HealthCheckInterval = time.Second
	cfg.InterWaveDelay = 500 * time.Millisecond
	f := newSequencerFixture(t, cfg)
	f.register(t, "A", 7001)
	f.register(t, "B", 7002, hard("A"))
	f.register(t, "C", 7003, hard("A"))

	plan, err := f.sequencer.Preview(context.Background())
	require.NoError(t, err)
	assert.Len(t, plan.Waves, 2)
	assert.Equal(t, 3, plan.TotalServices)
	assert.Equal(t, 2, plan.MaxParallelism)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 1}, plan.Tiers)
	assert.False(t, plan.HasCircularDependencies)
	assert.Equal(t, 2500*time.Millisecond, plan.EstimatedDuration)
	assert.Equal(t, 3500*time.Millisecond, plan.EstimatedSequentialDuration)

	assert.Equal(t, domain.NodeStatusPending, f.status("A"))
	assert.Empty(t, f.starter.StartCalls())

	f.sequencer.SetOptimization(false)
	plan, err = f.sequencer.Preview(context.Background())
	require.NoError(t, err)
	assert.False(t, plan.OptimizationEnabled)
	assert.Equal(t, plan.EstimatedSequentialDuration, plan.EstimatedDuration)
}

func TestSequencer_Execute_OrchestratorError(t *testing.T) {
	orch := &mock.OrchestratorMock{
		GetStartupOrderFunc: func(ctx context.Context) (domain.StartupOrder, error) {
			return domain.StartupOrder{}, NewPersistenceError("snapshot", errors.New("db down"))
		},
	}
	seq := NewSequencer(&mock.RegistryMock{}, orch, &mock.ServiceStarterMock{}, &mock.HealthProberMock{},
		newFakeClock(), testSequencerConfig, nil, log.NewNopLogger())
	_, err := seq.Execute(context.Background())
	assert.True(t, IsPersistenceError(err))
	assert.Zero(t, seq.Analytics().TotalExecutions)
}

func TestBuildAnalytics(t *testing.T) {
	order := domain.StartupOrder{Waves: []domain.StartupWave{
		{Services: []string{"a"}},
		{Services: []string{"b", "c", "d"}},
	}}
	a := buildAnalytics(order, domain.StartupAnalytics{WaveDurations: []time.Duration{time.Second, time.Second}}, 4*time.Second)
	assert.Equal(t, 2.0, a.ParallelizationGain)
	assert.Equal(t, 50.0, a.TimeReductionPercent)
	assert.Equal(t, 3, a.MaxParallelism)
	assert.Equal(t, 2.0, a.AverageWaveSize)
}
