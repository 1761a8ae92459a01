package handlers

import (
	"net/http"
	"testing"

	"mycoordinator/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSpec(t *testing.T) {
	doc, err := LoadSpec()
	require.NoError(t, err)
	for _, path := range []string{
		"/services/register",
		"/services/heartbeat/batch",
		"/dependencies/wait/{serviceName}",
		"/startup/optimization/toggle",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
}

func TestRequestValidator(t *testing.T) {
	validator, err := NewRequestValidator()
	require.NoError(t, err)

	e := echo.New()
	e.Use(validator)
	service.RegisterErrorHandler(e, log.NewNopLogger())
	ok := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }
	e.POST("/services/heartbeat", ok)
	e.GET("/dependencies/wait/:serviceName", ok)
	e.POST("/dependencies/report/:serviceName", ok)
	e.GET("/metrics", ok)

	tests := []struct {
		name           string
		method         string
		target         string
		body           string
		expectedStatus int
	}{
		{name: "valid body", method: http.MethodPost, target: "/services/heartbeat", body: `{"serviceId":"a"}`, expectedStatus: http.StatusNoContent},
		{name: "missing required property", method: http.MethodPost, target: "/services/heartbeat", body: `{"id":"a"}`, expectedStatus: http.StatusBadRequest},
		{name: "wrong property type", method: http.MethodPost, target: "/services/heartbeat", body: `{"serviceId":5}`, expectedStatus: http.StatusBadRequest},
		{name: "query out of range", method: http.MethodGet, target: "/dependencies/wait/billing?timeoutMs=-1", expectedStatus: http.StatusBadRequest},
		{name: "query in range", method: http.MethodGet, target: "/dependencies/wait/billing?timeoutMs=100", expectedStatus: http.StatusNoContent},
		{name: "enum violation", method: http.MethodPost, target: "/dependencies/report/billing", body: `{"status":"starting"}`, expectedStatus: http.StatusBadRequest},
		{name: "undocumented route passes through", method: http.MethodGet, target: "/metrics", expectedStatus: http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(e, tt.method, tt.target, tt.body)
			require.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
			if rec.Code == http.StatusBadRequest {
				resp := decode[service.ErrResponse](t, rec)
				require.NotNil(t, resp.Error)
				assert.Equal(t, service.ErrBadParameter, resp.Error.Code)
			}
		})
	}
}
