package handlers

import "time"

// Request and response bodies of the HTTP API described by openapi.yaml.

// DependencyInfo is a declared dependency edge. Type defaults to hard and IsRequired to true.
type DependencyInfo struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Timeout     *int   `json:"timeout,omitempty"`
	HealthCheck string `json:"healthCheck,omitempty"`
	IsRequired  *bool  `json:"isRequired,omitempty"`
}

type RegisterRequest struct {
	Name           string           `json:"name"`
	Host           string           `json:"host"`
	Port           int              `json:"port"`
	HealthEndpoint string           `json:"healthEndpoint,omitempty"`
	Metadata       map[string]any   `json:"metadata,omitempty"`
	Dependencies   []DependencyInfo `json:"dependencies,omitempty"`
}

type RegisterResponse struct {
	Success        bool             `json:"success"`
	ServiceID      string           `json:"serviceId"`
	Status         string           `json:"status"`
	Dependencies   []DependencyInfo `json:"dependencies"`
	HealthURL      string           `json:"healthUrl"`
	LeaseExpiresAt time.Time        `json:"leaseExpiresAt"`
}

type HeartbeatRequest struct {
	ServiceID string `json:"serviceId"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type BatchHeartbeatEntry struct {
	ServiceID string     `json:"serviceId"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

type BatchHeartbeatRequest struct {
	Services       []BatchHeartbeatEntry `json:"services"`
	BatchTimestamp *time.Time            `json:"batchTimestamp,omitempty"`
}

type BatchResults struct {
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
	Total     int `json:"total"`
}

type BatchFailure struct {
	ServiceID string `json:"serviceId"`
	Reason    string `json:"reason"`
}

type BatchHeartbeatResponse struct {
	Success  bool           `json:"success"`
	Results  BatchResults   `json:"results"`
	Failures []BatchFailure `json:"failures,omitempty"`
}

type ServiceInfo struct {
	ServiceID      string           `json:"serviceId"`
	Name           string           `json:"name"`
	Host           string           `json:"host"`
	Port           int              `json:"port"`
	HealthEndpoint string           `json:"healthEndpoint,omitempty"`
	HealthURL      string           `json:"healthUrl"`
	Status         string           `json:"status"`
	IsActive       bool             `json:"isActive"`
	LeaseTTLMs     int64            `json:"leaseTtlMs"`
	LeaseExpiresAt time.Time        `json:"leaseExpiresAt"`
	LastHeartbeat  time.Time        `json:"lastHeartbeat"`
	RegisteredAt   time.Time        `json:"registeredAt"`
	Metadata       map[string]any   `json:"metadata,omitempty"`
	Dependencies   []DependencyInfo `json:"dependencies"`
}

type ServiceResponse struct {
	Success bool        `json:"success"`
	Service ServiceInfo `json:"service"`
}

type ServicesResponse struct {
	Success  bool          `json:"success"`
	Services []ServiceInfo `json:"services"`
	Total    int           `json:"total"`
}

type GraphNodeInfo struct {
	Name         string           `json:"name"`
	InstanceIDs  []string         `json:"instanceIds"`
	Tier         int              `json:"tier"`
	Status       string           `json:"status"`
	StartedAt    *time.Time       `json:"startedAt,omitempty"`
	ReadyAt      *time.Time       `json:"readyAt,omitempty"`
	Error        string           `json:"error,omitempty"`
	Dependencies []DependencyInfo `json:"dependencies"`
}

type GraphEdgeInfo struct {
	From        string `json:"from"`
	To          string `json:"to"`
	Type        string `json:"type"`
	IsRequired  bool   `json:"isRequired"`
	Timeout     *int   `json:"timeout,omitempty"`
	HealthCheck string `json:"healthCheck,omitempty"`
}

type GraphInfo struct {
	Nodes []GraphNodeInfo `json:"nodes"`
	Edges []GraphEdgeInfo `json:"edges"`
}

type GraphStatisticsInfo struct {
	TotalServices       int            `json:"totalServices"`
	TotalEdges          int            `json:"totalEdges"`
	HardEdges           int            `json:"hardEdges"`
	SoftEdges           int            `json:"softEdges"`
	MissingDependencies []string       `json:"missingDependencies"`
	MaxTier             int            `json:"maxTier"`
	StatusCounts        map[string]int `json:"statusCounts"`
}

type GraphResponse struct {
	Success                 bool                `json:"success"`
	Graph                   GraphInfo           `json:"graph"`
	Statistics              GraphStatisticsInfo `json:"statistics"`
	CircularDependencies    [][]string          `json:"circularDependencies"`
	HasCircularDependencies bool                `json:"hasCircularDependencies"`
}

type StartupOrderResponse struct {
	Success                 bool       `json:"success"`
	StartupOrder            [][]string `json:"startupOrder"`
	TotalWaves              int        `json:"totalWaves"`
	HasCircularDependencies bool       `json:"hasCircularDependencies"`
	Degraded                bool       `json:"degraded"`
}

type ValidationInfo struct {
	Satisfied bool     `json:"satisfied"`
	Missing   []string `json:"missing"`
	Failed    []string `json:"failed"`
}

type ValidationResponse struct {
	Success     bool           `json:"success"`
	ServiceName string         `json:"serviceName"`
	Validation  ValidationInfo `json:"validation"`
}

type ClearanceResponse struct {
	Success     bool           `json:"success"`
	ServiceName string         `json:"serviceName"`
	Cleared     bool           `json:"cleared"`
	Status      string         `json:"status"`
	Validation  ValidationInfo `json:"validation"`
}

type ReportRequest struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type StatusResponse struct {
	Success     bool   `json:"success"`
	ServiceName string `json:"serviceName"`
	Status      string `json:"status"`
}

type WaitResponse struct {
	Success     bool   `json:"success"`
	ServiceName string `json:"serviceName"`
	Ready       bool   `json:"ready"`
	Status      string `json:"status"`
}

type WaveInfo struct {
	Wave             int      `json:"wave"`
	Services         []string `json:"services"`
	HardDependencies []string `json:"hardDependencies"`
	Parallelizable   bool     `json:"parallelizable"`
	Degraded         bool     `json:"degraded"`
}

type PlanInfo struct {
	Waves                         []WaveInfo     `json:"waves"`
	Tiers                         map[string]int `json:"tiers"`
	TotalServices                 int            `json:"totalServices"`
	TotalWaves                    int            `json:"totalWaves"`
	MaxParallelism                int            `json:"maxParallelism"`
	HasCircularDependencies       bool           `json:"hasCircularDependencies"`
	CircularDependencies          [][]string     `json:"circularDependencies"`
	OptimizationEnabled           bool           `json:"optimizationEnabled"`
	EstimatedDurationMs           int64          `json:"estimatedDurationMs"`
	EstimatedSequentialDurationMs int64          `json:"estimatedSequentialDurationMs"`
}

type PreviewResponse struct {
	Success bool     `json:"success"`
	Plan    PlanInfo `json:"plan"`
}

type ServiceErrorInfo struct {
	Service string `json:"service"`
	Code    string `json:"code"`
	Error   string `json:"error"`
}

type AnalyticsInfo struct {
	SequentialDurationMs int64   `json:"sequentialDurationMs"`
	ParallelizationGain  float64 `json:"parallelizationGain"`
	TimeReductionPercent float64 `json:"timeReductionPercent"`
	MaxParallelism       int     `json:"maxParallelism"`
	AverageWaveSize      float64 `json:"averageWaveSize"`
	WaveDurationsMs      []int64 `json:"waveDurationsMs"`
}

// ExecuteResponse is returned with HTTP 200 even when services failed; Success is false then.
type ExecuteResponse struct {
	Success         bool               `json:"success"`
	StartedAt       time.Time          `json:"startedAt"`
	TotalDurationMs int64              `json:"totalDurationMs"`
	WavesExecuted   int                `json:"wavesExecuted"`
	ServicesStarted []string           `json:"servicesStarted"`
	AlreadyReady    []string           `json:"alreadyReady"`
	Errors          []ServiceErrorInfo `json:"errors"`
	Analytics       AnalyticsInfo      `json:"analytics"`
}

type AnalyticsResponse struct {
	Success             bool             `json:"success"`
	OptimizationEnabled bool             `json:"optimizationEnabled"`
	TotalExecutions     int              `json:"totalExecutions"`
	LastExecution       *ExecuteResponse `json:"lastExecution,omitempty"`
}

type ToggleRequest struct {
	Enabled *bool `json:"enabled"`
}

type ToggleResponse struct {
	Success             bool `json:"success"`
	OptimizationEnabled bool `json:"optimizationEnabled"`
}

type HealthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}
