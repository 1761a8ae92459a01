package interfaces

import "time"

// TimeProvider supplies the current time for lease arithmetic and status timestamps.
// Injected so tests can move a fixed clock instead of sleeping.
//
// Constructed in cmd/main as service.NewTimeProvider(func() time.Time { return time.Now().UTC() }).
//
//go:generate moq -stub -out mock/time_provider.go -pkg mock . TimeProvider
type TimeProvider interface {
	// Now returns the current time (UTC in production).
	Now() time.Time
}
