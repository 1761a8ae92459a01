package service

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrorCodeToStatusCodeMaps(t *testing.T) {
	m := NewErrorCodeToStatusCodeMaps()
	require.NotNil(t, m)
	assert.Equal(t, http.StatusBadRequest, m[ErrBadParameter])
	assert.Equal(t, http.StatusNotFound, m[ErrEntityNotFound])
	assert.Equal(t, http.StatusUnprocessableEntity, m[ErrValidationFailure])
	assert.Equal(t, http.StatusConflict, m[ErrConflict])
	assert.Equal(t, http.StatusGatewayTimeout, m[ErrTimeout])
	assert.Equal(t, http.StatusServiceUnavailable, m[ErrPersistenceFailure])
	assert.Equal(t, http.StatusInternalServerError, m[ErrInternalServerError])
}

func serveError(t *testing.T, method string, err error) (*httptest.ResponseRecorder, ErrResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), log.NewNopLogger())
	handler.Handler(err, c)

	var body ErrResponse
	if rec.Body.Len() > 0 {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	}
	return rec, body
}

func TestHTTPErrorHandler_Handler(t *testing.T) {
	reqErr := &openapi3filter.RequestError{Err: assert.AnError}
	withRequestErr := echo.NewHTTPError(http.StatusBadRequest, "request body has an error")
	withRequestErr.Internal = reqErr

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"bad parameter", NewBadParameterError("invalid body", nil), http.StatusBadRequest, ErrBadParameter},
		{"not found", NewEntityNotFoundError("gone", nil), http.StatusNotFound, ErrEntityNotFound},
		{"conflict", NewConflictError("busy", nil), http.StatusConflict, ErrConflict},
		{"persistence", NewPersistenceError("db", errors.New("down")), http.StatusServiceUnavailable, ErrPersistenceFailure},
		{"plain error", assert.AnError, http.StatusInternalServerError, ErrInternalServerError},
		{"openapi request error", withRequestErr, http.StatusBadRequest, ErrBadParameter},
		{"echo not found", echo.ErrNotFound, http.StatusNotFound, ErrEntityNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := serveError(t, http.MethodGet, tt.err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestHTTPErrorHandler_Handler_HeadRequestHasNoBody(t *testing.T) {
	rec, _ := serveError(t, http.MethodHead, echo.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestRegisterErrorHandler(t *testing.T) {
	e := echo.New()
	RegisterErrorHandler(e, log.NewNopLogger())
	require.NotNil(t, e.HTTPErrorHandler)
}
