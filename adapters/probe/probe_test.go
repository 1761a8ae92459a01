package probe

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

func TestNew_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "probe.probe.go: http client is required", func() {
		New(nil)
	})
}

func TestProbe_HTTP(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantErr    bool
	}{
		{name: "ok", statusCode: http.StatusOK},
		{name: "no_content", statusCode: http.StatusNoContent},
		{name: "unavailable", statusCode: http.StatusServiceUnavailable, wantErr: true},
		{name: "not_found", statusCode: http.StatusNotFound, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/health", r.URL.Path)
				w.WriteHeader(tt.statusCode)
			}))
			defer srv.Close()

			err := New(srv.Client()).Probe(context.Background(), srv.URL+"/health")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		target := srv.URL + "/health"
		srv.Close()
		assert.Error(t, New(&http.Client{Timeout: time.Second}).Probe(context.Background(), target))
	})
}

func startHealthServer(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("billing", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	go func() { _ = grpcServer.Serve(lis) }()
	t.Cleanup(grpcServer.Stop)
	return lis.Addr().String()
}

func TestProbe_GRPC(t *testing.T) {
	addr := startHealthServer(t)
	p := New(http.DefaultClient)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.NoError(t, p.Probe(ctx, "grpc://"+addr))

	err := p.Probe(ctx, "grpc://"+addr+"/billing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOT_SERVING")

	assert.Error(t, p.Probe(ctx, "grpc://"+addr+"/unknown"))
	assert.Error(t, p.Probe(ctx, "grpc://"))
}
