package domain

import "time"

// NodeStatus is the startup state of a service in the dependency graph.
//
// pending -> starting -> ready; pending/starting -> failed. failed is terminal until the
// service re-registers (back to pending) or explicitly reports ready.
type NodeStatus string

const (
	NodeStatusPending  NodeStatus = "pending"
	NodeStatusStarting NodeStatus = "starting"
	NodeStatusReady    NodeStatus = "ready"
	NodeStatusFailed   NodeStatus = "failed"
)

var nodeTransitions = map[NodeStatus][]NodeStatus{
	NodeStatusPending:  {NodeStatusStarting, NodeStatusReady, NodeStatusFailed},
	NodeStatusStarting: {NodeStatusReady, NodeStatusFailed},
	NodeStatusReady:    {},
	NodeStatusFailed:   {NodeStatusPending, NodeStatusReady},
}

// CanTransition reports whether a node may move from one status to another.
func CanTransition(from, to NodeStatus) bool {
	for _, s := range nodeTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// NodeState is the part of a GraphNode that survives graph rebuilds.
type NodeState struct {
	Status    NodeStatus
	StartedAt time.Time
	ReadyAt   time.Time
	Error     string
}

// GraphNode is the projection of all active instances sharing a service name.
type GraphNode struct {
	Name         string
	InstanceIDs  []string
	Dependencies []DependencyRef
	Tier         int
	State        NodeState
}

// GraphEdge is a dependency edge From -> To. Duplicate edges are kept: per-edge metadata may differ.
type GraphEdge struct {
	From            string
	To              string
	Kind            DependencyKind
	Required        bool
	TimeoutMs       *int
	HealthCheckPath string
}

// GraphStatistics summarises a DependencyGraph.
type GraphStatistics struct {
	TotalServices       int
	TotalEdges          int
	HardEdges           int
	SoftEdges           int
	MissingDependencies []string
	MaxTier             int
	StatusCounts        map[NodeStatus]int
}

// DependencyGraph is a snapshot of nodes and edges with cycle information.
type DependencyGraph struct {
	Nodes                []GraphNode
	Edges                []GraphEdge
	Statistics           GraphStatistics
	CircularDependencies [][]string
}

// TierAssignment is the result of tier computation. Cyclic lists nodes reached mid-recursion.
type TierAssignment struct {
	Tiers  map[string]int
	Cyclic []string
}

// StartupWave is a set of services that may start together.
// Every blocking dependency of a service in wave N sits in a wave < N, except in a Degraded wave.
type StartupWave struct {
	Number           int
	Services         []string
	HardDependencies []string
	Parallelizable   bool
	Degraded         bool // forced grouping of services whose dependencies never resolved
}

// StartupOrder is the layered ordering of the whole graph.
type StartupOrder struct {
	Waves                   []StartupWave
	HasCircularDependencies bool
	Degraded                bool
}

// Names returns the ordering as a list of waves of service names.
func (o StartupOrder) Names() [][]string {
	out := make([][]string, 0, len(o.Waves))
	for _, w := range o.Waves {
		out = append(out, append([]string(nil), w.Services...))
	}
	return out
}

// ValidationResult is the outcome of validating a service's dependencies.
type ValidationResult struct {
	Satisfied bool
	Missing   []string
	Failed    []string
}
