package domain

import "time"

// StartupPlan is the preview of what Execute would do.
type StartupPlan struct {
	Waves                       []StartupWave
	Tiers                       map[string]int
	TotalServices               int
	MaxParallelism              int
	HasCircularDependencies     bool
	CircularDependencies        [][]string
	OptimizationEnabled         bool
	EstimatedDuration           time.Duration
	EstimatedSequentialDuration time.Duration
}

// ServiceError records why a single service did not start.
type ServiceError struct {
	Service string
	Code    string
	Error   string
}

// StartupAnalytics is observability-only data about an execution.
type StartupAnalytics struct {
	SequentialDuration   time.Duration // sum of per-service start times
	ParallelizationGain  float64       // SequentialDuration / actual duration
	TimeReductionPercent float64
	MaxParallelism       int
	AverageWaveSize      float64
	WaveDurations        []time.Duration
}

// StartupResult summarises an execution. Success is true iff Errors is empty.
type StartupResult struct {
	Success         bool
	StartedAt       time.Time
	TotalDuration   time.Duration
	WavesExecuted   int
	ServicesStarted []string
	AlreadyReady    []string
	Errors          []ServiceError
	Analytics       StartupAnalytics
}

// StartupStats is the analytics view across executions.
type StartupStats struct {
	OptimizationEnabled bool
	TotalExecutions     int
	LastResult          *StartupResult
}
