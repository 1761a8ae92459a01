package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"mycoordinator/helpers"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// periodicTask runs fn every interval on its own goroutine. A tick that fires while the previous run
// is still going is skipped, never queued.
type periodicTask struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context)
	logger   log.Logger

	running atomic.Bool
	skipped atomic.Int64

	mu      sync.Mutex
	started bool
	stopped bool
	cancel  context.CancelFunc
	done    chan struct{}
	wg      sync.WaitGroup
}

// newPeriodicTask creates a stopped task. Panics on nil fn or logger and on a non-positive interval.
func newPeriodicTask(name string, interval time.Duration, fn func(ctx context.Context), logger log.Logger) *periodicTask {
	if interval <= 0 {
		panic("service.scheduler.go: interval must be positive")
	}
	return &periodicTask{
		name:     helpers.StrPanic(name, "service.scheduler.go: name is required"),
		interval: interval,
		fn:       helpers.NilPanic(fn, "service.scheduler.go: fn is required"),
		logger:   log.With(helpers.NilPanic(logger, "service.scheduler.go: logger is required"), "task", name),
		done:     make(chan struct{}),
	}
}

// Start launches the ticker loop. Calling it again, or after Stop, is a no-op.
func (t *periodicTask) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started || t.stopped {
		return
	}
	t.started = true
	ctx, t.cancel = context.WithCancel(ctx)
	go t.loop(ctx)
}

func (t *periodicTask) loop(ctx context.Context) {
	defer close(t.done)
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.tick(ctx)
		}
	}
}

// tick runs fn in its own goroutine so a slow run never delays the ticker.
func (t *periodicTask) tick(ctx context.Context) {
	if !t.running.CompareAndSwap(false, true) {
		t.skipped.Add(1)
		level.Warn(t.logger).Log("msg", "previous run still in progress, tick skipped")
		return
	}
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		defer t.running.Store(false)
		defer func() {
			if r := recover(); r != nil {
				level.Error(t.logger).Log("msg", "periodic task panicked", "panic", r)
			}
		}()
		t.fn(ctx)
	}()
}

// Stop cancels the loop and waits for an in-flight run or ctx, whichever comes first.
func (t *periodicTask) Stop(ctx context.Context) error {
	t.mu.Lock()
	if !t.stopped {
		t.stopped = true
		if t.started {
			t.cancel()
		} else {
			close(t.done)
		}
	}
	t.mu.Unlock()

	finished := make(chan struct{})
	go func() {
		<-t.done
		t.wg.Wait()
		close(finished)
	}()
	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
