package service

import (
	"time"

	"mycoordinator/helpers"
	"mycoordinator/interfaces"
)

// timeProvider implements interfaces.TimeProvider. It returns the current time via the injected now func.
// Used by the registry for lease arithmetic and by the orchestrator for startedAt/readyAt stamps.
type timeProvider struct {
	now func() time.Time
}

// NewTimeProvider creates a TimeProvider that returns time via the given now func. Panics on nil now.
//
// Parameter now: no-arg function returning current time (in prod: time.Now().UTC, in tests: fixed time).
//
// Called from cmd/main when building the coordinator.
func NewTimeProvider(now func() time.Time) interfaces.TimeProvider {
	return &timeProvider{now: helpers.NilPanic(now, "service.time_provider.go: now is required")}
}

// Now returns current time from the injected function.
func (t *timeProvider) Now() time.Time {
	return t.now()
}
