package interfaces

import (
	"context"
	"time"

	"mycoordinator/domain"
)

// Orchestrator projects the registry into a dependency graph keyed by service name and owns the per-service
// status state machine (pending -> starting -> ready | failed).
//
// The graph is rebuilt from a registry snapshot by every read operation below; node status survives
// rebuilds. Cycles and missing dependencies are reported as data, never as errors.
//
// Implemented by service.dependencyGraphOrchestrator. Used by handlers.HTTPServer and service.startupSequencer.
//
//go:generate moq -stub -out mock/orchestrator.go -pkg mock . Orchestrator
type Orchestrator interface {
	// BuildDependencyGraph rebuilds nodes and edges from the registry. Idempotent.
	// Returns persistence_failure when the registry snapshot cannot be read.
	BuildDependencyGraph(ctx context.Context) error

	// GetGraph rebuilds and returns nodes, edges, statistics and detected cycles.
	GetGraph(ctx context.Context) (domain.DependencyGraph, error)

	// ComputeTiers rebuilds and returns the tier of every node.
	ComputeTiers(ctx context.Context) (domain.TierAssignment, error)

	// GetStartupOrder rebuilds and returns the layered startup order. Always terminates; unresolvable services
	// are grouped into a degraded wave.
	GetStartupOrder(ctx context.Context) (domain.StartupOrder, error)

	// DetectCircularDependencies rebuilds and returns every distinct cycle over blocking edges.
	DetectCircularDependencies(ctx context.Context) ([][]string, error)

	// ValidateServiceDependencies reports missing and failed blocking dependencies of name.
	// Returns entity_not_found when name is not registered.
	ValidateServiceDependencies(ctx context.Context, name string) (domain.ValidationResult, error)

	// RequestStartupClearance validates and, on success, moves the node to starting.
	// Returns (false, result, nil) when validation fails or the node is failed; the status is left unchanged.
	RequestStartupClearance(ctx context.Context, name string) (bool, domain.ValidationResult, error)

	// ReportServiceReady moves the node to ready.
	ReportServiceReady(ctx context.Context, name string) error

	// ReportServiceFailure moves the node to failed and records cause.
	ReportServiceFailure(ctx context.Context, name string, cause error) error

	// ResetServiceStatus is called after a registration. It moves a failed node back to pending, and a
	// ready node too when all of its live instances registered after it became ready.
	ResetServiceStatus(ctx context.Context, name string)

	// GetServiceStatus returns the state of name and whether it is known.
	GetServiceStatus(name string) (domain.NodeState, bool)

	// WaitForServiceReady polls until name is ready or timeout elapses (timeout <= 0 uses the default).
	// Returns false on timeout or cancellation, never an error.
	WaitForServiceReady(ctx context.Context, name string, timeout time.Duration) bool
}
