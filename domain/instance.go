package domain

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// ErrInstanceNotFound is returned by repositories when no row exists for the requested id.
var ErrInstanceNotFound = errors.New("service instance not found")

// HealthStatus is the liveness status reported for a ServiceInstance.
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
	HealthStatusUnknown   HealthStatus = "unknown"
)

// DependencyKind is hard (blocks the dependent until ready) or soft (best-effort).
type DependencyKind string

const (
	DependencyHard DependencyKind = "hard"
	DependencySoft DependencyKind = "soft"
)

// DependencyRef is an outgoing dependency edge declared by a registering instance.
// Edges reference dependencies by service name and are resolved at graph build time.
type DependencyRef struct {
	Name            string
	Kind            DependencyKind
	TimeoutMs       *int
	HealthCheckPath string
	Required        bool
}

// IsBlocking reports whether the edge gates startup: a required hard dependency.
func (d DependencyRef) IsBlocking() bool {
	return d.Kind == DependencyHard && d.Required
}

// ServiceInstance is one registered instance and its lease.
// Invariant: LeaseExpiryAt = LastHeartbeat + LeaseTTL + renewal buffer (registration grace for new rows).
type ServiceInstance struct {
	ID             string
	Name           string
	Host           string
	Port           int
	HealthEndpoint string // path ("/health"), absolute http(s) URL or grpc://host:port
	Status         HealthStatus
	IsActive       bool // false is a soft delete; the row is kept for audit
	LeaseTTL       time.Duration
	LeaseExpiryAt  time.Time
	LastHeartbeat  time.Time
	RegisteredAt   time.Time
	UpdatedAt      time.Time
	Metadata       map[string]any
	Dependencies   []DependencyRef
}

// Address returns host:port.
func (s ServiceInstance) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// HealthURL resolves HealthEndpoint against the instance address. Absolute http(s) and grpc URLs are returned as is.
func (s ServiceInstance) HealthURL() string {
	endpoint := strings.TrimSpace(s.HealthEndpoint)
	if strings.Contains(endpoint, "://") {
		return endpoint
	}
	if endpoint == "" {
		endpoint = "/health"
	}
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	return fmt.Sprintf("http://%s%s", s.Address(), endpoint)
}

// LeaseExpired reports whether the lease ran out at now.
func (s ServiceInstance) LeaseExpired(now time.Time) bool {
	return now.After(s.LeaseExpiryAt)
}

// Clone returns a deep copy so stored rows never share maps or slices with callers.
func (s ServiceInstance) Clone() ServiceInstance {
	out := s
	if s.Metadata != nil {
		out.Metadata = make(map[string]any, len(s.Metadata))
		for k, v := range s.Metadata {
			out.Metadata[k] = v
		}
	}
	if s.Dependencies != nil {
		out.Dependencies = make([]DependencyRef, len(s.Dependencies))
		for i, d := range s.Dependencies {
			if d.TimeoutMs != nil {
				t := *d.TimeoutMs
				d.TimeoutMs = &t
			}
			out.Dependencies[i] = d
		}
	}
	return out
}

// Registration is the payload of a register call. Re-registering the same (Name, Host, Port) updates the existing row.
type Registration struct {
	Name           string
	Host           string
	Port           int
	HealthEndpoint string
	Metadata       map[string]any
	Dependencies   []DependencySpec
}

// DependencySpec is a dependency as declared by a registering instance. An empty Kind means hard and a
// nil Required means required.
type DependencySpec struct {
	Name            string
	Kind            DependencyKind
	TimeoutMs       *int
	HealthCheckPath string
	Required        *bool
}

// Ref resolves the defaults into the stored edge.
func (d DependencySpec) Ref() DependencyRef {
	ref := DependencyRef{
		Name:            d.Name,
		Kind:            d.Kind,
		HealthCheckPath: d.HealthCheckPath,
		Required:        d.Required == nil || *d.Required,
	}
	if ref.Kind == "" {
		ref.Kind = DependencyHard
	}
	if d.TimeoutMs != nil {
		t := *d.TimeoutMs
		ref.TimeoutMs = &t
	}
	return ref
}

// Heartbeat is one liveness report. A zero At means "now".
type Heartbeat struct {
	InstanceID string
	At         time.Time
}

// LeaseRenewal is the write applied by a heartbeat: status=healthy, LastHeartbeat=At, LeaseExpiryAt=ExpiresAt.
type LeaseRenewal struct {
	InstanceID string
	At         time.Time
	ExpiresAt  time.Time
}

// HeartbeatFailure describes a heartbeat in a batch that was not applied.
type HeartbeatFailure struct {
	InstanceID string
	Reason     string
}

// BatchHeartbeatResult summarises a batch heartbeat.
type BatchHeartbeatResult struct {
	Processed []string
	Failed    []HeartbeatFailure
}

// Total is the number of heartbeats in the batch.
func (r BatchHeartbeatResult) Total() int {
	return len(r.Processed) + len(r.Failed)
}
