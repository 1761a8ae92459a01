package interfaces

import (
	"context"

	"mycoordinator/domain"
)

// Sequencer turns the startup order into time-bounded waves and drives them.
//
// Implemented by service.startupSequencer. Used by handlers.HTTPServer.
//
//go:generate moq -stub -out mock/sequencer.go -pkg mock . Sequencer
type Sequencer interface {
	// Preview returns the plan Execute would follow, without side effects.
	Preview(ctx context.Context) (domain.StartupPlan, error)

	// Execute runs every wave. Per-service failures are reported in the result, not as an error.
	// Returns conflict when another execution is running, persistence_failure when the graph cannot be read.
	Execute(ctx context.Context) (domain.StartupResult, error)

	// Analytics returns the last execution and the number of executions so far.
	Analytics() domain.StartupStats

	// SetOptimization enables or disables parallel execution of waves.
	SetOptimization(enabled bool)
}

// ServiceStarter is the process-supervisor boundary: it asks the supervisor to start a service.
//
// Implemented by adapters/supervisor (HTTP webhook) and supervisor.Noop (services start themselves).
// Called from service.startupSequencer once clearance has been granted.
//
//go:generate moq -stub -out mock/service_starter.go -pkg mock . ServiceStarter
type ServiceStarter interface {
	// Start requests a start of service name running as instances. Returns nil once the request is accepted.
	Start(ctx context.Context, name string, instances []domain.ServiceInstance) error
}

// HealthProber checks a health/ready endpoint.
//
// Implemented by adapters/probe (HTTP and gRPC health). Called from service.startupSequencer while polling
// readiness and from the health-check sweep.
//
//go:generate moq -stub -out mock/health_prober.go -pkg mock . HealthProber
type HealthProber interface {
	// Probe returns nil when target reports healthy (HTTP 2xx or gRPC SERVING), an error otherwise.
	Probe(ctx context.Context, target string) error
}
