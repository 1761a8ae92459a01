package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestServiceInstance_HealthURL(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		expected string
	}{
		{name: "default", endpoint: "", expected: "http://10.0.0.1:8080/health"},
		{name: "path", endpoint: "/ready", expected: "http://10.0.0.1:8080/ready"},
		{name: "path without slash", endpoint: "status", expected: "http://10.0.0.1:8080/status"},
		{name: "absolute http", endpoint: "https://billing.internal/healthz", expected: "https://billing.internal/healthz"},
		{name: "grpc", endpoint: "grpc://10.0.0.1:9000", expected: "grpc://10.0.0.1:9000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst := ServiceInstance{Host: "10.0.0.1", Port: 8080, HealthEndpoint: tt.endpoint}
			assert.Equal(t, tt.expected, inst.HealthURL())
		})
	}

	ipv6 := ServiceInstance{Host: "::1", Port: 80}
	assert.Equal(t, "http://[::1]:80/health", ipv6.HealthURL())
}

func TestServiceInstance_LeaseExpired(t *testing.T) {
	expiry := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	inst := ServiceInstance{LeaseExpiryAt: expiry}

	assert.False(t, inst.LeaseExpired(expiry.Add(-time.Second)))
	assert.False(t, inst.LeaseExpired(expiry))
	assert.True(t, inst.LeaseExpired(expiry.Add(time.Millisecond)))
}

func TestServiceInstance_Clone(t *testing.T) {
	timeout := 500
	orig := ServiceInstance{
		ID:           "id-1",
		Metadata:     map[string]any{"zone": "a"},
		Dependencies: []DependencyRef{{Name: "users", Kind: DependencyHard, Required: true, TimeoutMs: &timeout}},
	}

	cp := orig.Clone()
	assert.Equal(t, orig, cp)

	cp.Metadata["zone"] = "b"
	cp.Dependencies[0].Name = "mailer"
	*cp.Dependencies[0].TimeoutMs = 1
	assert.Equal(t, "a", orig.Metadata["zone"])
	assert.Equal(t, "users", orig.Dependencies[0].Name)
	assert.Equal(t, 500, *orig.Dependencies[0].TimeoutMs)

	assert.Nil(t, ServiceInstance{}.Clone().Metadata)
}

func TestDependencyRef_IsBlocking(t *testing.T) {
	assert.True(t, DependencyRef{Kind: DependencyHard, Required: true}.IsBlocking())
	assert.False(t, DependencyRef{Kind: DependencyHard}.IsBlocking())
	assert.False(t, DependencyRef{Kind: DependencySoft, Required: true}.IsBlocking())
}

func TestDependencySpec_Ref(t *testing.T) {
	no := false
	timeout := 250
	tests := []struct {
		name     string
		spec     DependencySpec
		expected DependencyRef
	}{
		{name: "defaults", spec: DependencySpec{Name: "db"}, expected: DependencyRef{Name: "db", Kind: DependencyHard, Required: true}},
		{name: "optional", spec: DependencySpec{Name: "db", Required: &no}, expected: DependencyRef{Name: "db", Kind: DependencyHard}},
		{
			name:     "soft with timeout",
			spec:     DependencySpec{Name: "mailer", Kind: DependencySoft, TimeoutMs: &timeout, HealthCheckPath: "/ping"},
			expected: DependencyRef{Name: "mailer", Kind: DependencySoft, TimeoutMs: &timeout, HealthCheckPath: "/ping", Required: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.spec.Ref())
		})
	}

	spec := DependencySpec{Name: "db", TimeoutMs: &timeout}
	ref := spec.Ref()
	*ref.TimeoutMs = 1
	assert.Equal(t, 250, timeout)
}

func TestBatchHeartbeatResult_Total(t *testing.T) {
	res := BatchHeartbeatResult{Processed: []string{"a", "b"}, Failed: []HeartbeatFailure{{InstanceID: "c"}}}
	assert.Equal(t, 3, res.Total())
	assert.Zero(t, BatchHeartbeatResult{}.Total())
}
