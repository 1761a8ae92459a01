package supervisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mycoordinator/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupervisorHTTP_Panics(t *testing.T) {
	t.Run("baseURL_empty", func(t *testing.T) {
		assert.PanicsWithValue(t, "supervisor.supervisor.go: baseURL is required", func() {
			SupervisorHTTP("", &http.Client{})
		})
	})
	t.Run("client_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "supervisor.supervisor.go: http client is required", func() {
			SupervisorHTTP("http://localhost:9000", nil)
		})
	})
}

func TestSupervisorHTTP_Start(t *testing.T) {
	instances := []domain.ServiceInstance{{ID: "i1", Name: "billing api", Host: "10.0.0.1", Port: 8080}}

	tests := []struct {
		name       string
		statusCode int
		wantErr    string
	}{
		{name: "accepted", statusCode: http.StatusAccepted},
		{name: "ok", statusCode: http.StatusOK},
		{name: "rejected", statusCode: http.StatusConflict, wantErr: "supervisor start billing api returned 409"},
		{name: "server_error", statusCode: http.StatusInternalServerError, wantErr: "returned 500"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath, gotMethod string
			var gotBody startRequest
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.EscapedPath()
				gotMethod = r.Method
				_ = json.NewDecoder(r.Body).Decode(&gotBody)
				w.WriteHeader(tt.statusCode)
			}))
			defer srv.Close()

			err := SupervisorHTTP(srv.URL, srv.Client()).Start(context.Background(), "billing api", instances)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, http.MethodPost, gotMethod)
			assert.Equal(t, "/v1/services/billing%20api/start", gotPath)
			assert.Equal(t, "billing api", gotBody.Service)
			assert.Equal(t, []instanceEntry{{ID: "i1", Host: "10.0.0.1", Port: 8080}}, gotBody.Instances)
		})
	}
}

func TestSupervisorHTTP_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := SupervisorHTTP(srv.URL, srv.Client()).Start(ctx, "api", nil)
	assert.Error(t, err)
}

func TestSupervisorHTTP_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	assert.Error(t, SupervisorHTTP(url, &http.Client{Timeout: time.Second}).Start(context.Background(), "api", nil))
}

func TestNoop(t *testing.T) {
	assert.NoError(t, Noop().Start(context.Background(), "api", nil))
}
