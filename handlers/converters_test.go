package handlers

import (
	"testing"
	"time"

	"mycoordinator/domain"
	"mycoordinator/helpers"
	"mycoordinator/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRegisterRequest(t *testing.T) {
	tests := []struct {
		name        string
		req         RegisterRequest
		expected    domain.Registration
		expectedErr string
	}{
		{
			name: "defaults",
			req: RegisterRequest{
				Name: " billing ", Host: "10.0.0.1", Port: 80,
				Dependencies: []DependencyInfo{{Name: "users"}},
			},
			expected: domain.Registration{
				Name: "billing", Host: "10.0.0.1", Port: 80,
				Dependencies: []domain.DependencySpec{{Name: "users", Kind: domain.DependencyHard}},
			},
		},
		{
			name: "soft optional dependency",
			req: RegisterRequest{
				Name: "billing", Host: "h", Port: 80, HealthEndpoint: "grpc://h:9000",
				Dependencies: []DependencyInfo{{Name: "mailer", Type: "soft", Timeout: helpers.Ptr(500), IsRequired: helpers.Ptr(false)}},
			},
			expected: domain.Registration{
				Name: "billing", Host: "h", Port: 80, HealthEndpoint: "grpc://h:9000",
				Dependencies: []domain.DependencySpec{{Name: "mailer", Kind: domain.DependencySoft, TimeoutMs: helpers.Ptr(500), Required: helpers.Ptr(false)}},
			},
		},
		{name: "missing name", req: RegisterRequest{Host: "h", Port: 80}, expectedErr: "name is required"},
		{name: "missing host", req: RegisterRequest{Name: "x", Port: 80}, expectedErr: "host is required"},
		{name: "missing port", req: RegisterRequest{Name: "x", Host: "h"}, expectedErr: "port is required"},
		{
			name:        "blank dependency name",
			req:         RegisterRequest{Name: "x", Host: "h", Port: 80, Dependencies: []DependencyInfo{{Name: " "}}},
			expectedErr: "dependency name is required",
		},
		{
			name:        "unknown type",
			req:         RegisterRequest{Name: "x", Host: "h", Port: 80, Dependencies: []DependencyInfo{{Name: "y", Type: "optional"}}},
			expectedErr: `dependency "y" has unknown type "optional"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fromRegisterRequest(tt.req)
			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.True(t, service.IsBadParameterError(err))
				assert.Contains(t, err.Error(), tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFromBatchHeartbeatRequest(t *testing.T) {
	entry := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	batch := entry.Add(time.Minute)

	got := fromBatchHeartbeatRequest(BatchHeartbeatRequest{
		Services: []BatchHeartbeatEntry{{ServiceID: "a", Timestamp: &entry}, {ServiceID: "b"}},
	})
	assert.Equal(t, []domain.Heartbeat{{InstanceID: "a", At: entry}, {InstanceID: "b"}}, got)

	got = fromBatchHeartbeatRequest(BatchHeartbeatRequest{
		Services:       []BatchHeartbeatEntry{{ServiceID: "a", Timestamp: &entry}, {ServiceID: "b"}},
		BatchTimestamp: &batch,
	})
	assert.Equal(t, []domain.Heartbeat{{InstanceID: "a", At: entry}, {InstanceID: "b", At: batch}}, got)

	assert.Empty(t, fromBatchHeartbeatRequest(BatchHeartbeatRequest{}))
}

func TestFromWaitTimeout(t *testing.T) {
	d, err := fromWaitTimeout(nil)
	require.NoError(t, err)
	assert.Zero(t, d)

	d, err = fromWaitTimeout(helpers.Ptr(1500))
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, d)

	_, err = fromWaitTimeout(helpers.Ptr(-1))
	assert.True(t, service.IsBadParameterError(err))
}

func TestToGraphResponse(t *testing.T) {
	readyAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	g := domain.DependencyGraph{
		Nodes: []domain.GraphNode{
			{Name: "A", InstanceIDs: []string{"id-a"}, State: domain.NodeState{Status: domain.NodeStatusReady, ReadyAt: readyAt}},
			{Name: "B", Tier: 1, State: domain.NodeState{Status: domain.NodeStatusPending}},
		},
		Edges: []domain.GraphEdge{{From: "B", To: "A", Kind: domain.DependencyHard, Required: true}},
		Statistics: domain.GraphStatistics{
			TotalServices: 2,
			TotalEdges:    1,
			HardEdges:     1,
			MaxTier:       1,
			StatusCounts:  map[domain.NodeStatus]int{domain.NodeStatusReady: 1, domain.NodeStatusPending: 1},
		},
	}

	resp := toGraphResponse(g)
	assert.True(t, resp.Success)
	require.Len(t, resp.Graph.Nodes, 2)
	assert.Equal(t, &readyAt, resp.Graph.Nodes[0].ReadyAt)
	assert.Nil(t, resp.Graph.Nodes[0].StartedAt)
	assert.Equal(t, []string{}, resp.Graph.Nodes[1].InstanceIDs)
	assert.Equal(t, []GraphEdgeInfo{{From: "B", To: "A", Type: "hard", IsRequired: true}}, resp.Graph.Edges)
	assert.Equal(t, map[string]int{"ready": 1, "pending": 1}, resp.Statistics.StatusCounts)
	assert.Equal(t, []string{}, resp.Statistics.MissingDependencies)
	assert.Equal(t, [][]string{}, resp.CircularDependencies)
	assert.False(t, resp.HasCircularDependencies)
}

func TestToExecuteResponse(t *testing.T) {
	res := domain.StartupResult{
		Success:       false,
		TotalDuration: 3 * time.Second,
		WavesExecuted: 2,
		Errors:        []domain.ServiceError{{Service: "B", Code: service.ErrTimeout, Error: "not healthy"}},
		Analytics: domain.StartupAnalytics{
			SequentialDuration: 4 * time.Second,
			WaveDurations:      []time.Duration{time.Second, 2 * time.Second},
			MaxParallelism:     2,
		},
	}

	resp := toExecuteResponse(res)
	assert.False(t, resp.Success)
	assert.Equal(t, int64(3000), resp.TotalDurationMs)
	assert.Equal(t, []string{}, resp.ServicesStarted)
	assert.Equal(t, []ServiceErrorInfo{{Service: "B", Code: service.ErrTimeout, Error: "not healthy"}}, resp.Errors)
	assert.Equal(t, []int64{1000, 2000}, resp.Analytics.WaveDurationsMs)
	assert.Equal(t, int64(4000), resp.Analytics.SequentialDurationMs)
}
