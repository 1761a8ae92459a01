package service

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// RegisterErrorHandler register custom error handler.
func RegisterErrorHandler(e *echo.Echo, logger log.Logger) {
	e.HTTPErrorHandler = NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), logger).Handler
}

// NewErrorCodeToStatusCodeMaps creates an error code to http status mapping.
func NewErrorCodeToStatusCodeMaps() map[string]int {
	var errorCodeToStatusCodeMaps = make(map[string]int)
	errorCodeToStatusCodeMaps[ErrBadParameter] = http.StatusBadRequest
	errorCodeToStatusCodeMaps[ErrEntityNotFound] = http.StatusNotFound
	errorCodeToStatusCodeMaps[ErrValidationFailure] = http.StatusUnprocessableEntity
	errorCodeToStatusCodeMaps[ErrCycleDetected] = http.StatusConflict
	errorCodeToStatusCodeMaps[ErrConflict] = http.StatusConflict
	errorCodeToStatusCodeMaps[ErrTimeout] = http.StatusGatewayTimeout
	errorCodeToStatusCodeMaps[ErrPersistenceFailure] = http.StatusServiceUnavailable
	errorCodeToStatusCodeMaps[ErrInternalServerError] = http.StatusInternalServerError

	return errorCodeToStatusCodeMaps
}

// HTTPErrorHandler is an error handler.
type HTTPErrorHandler struct {
	errorCodeToHTTPStatusCodeMap map[string]int
	logger                       log.Logger
}

// NewHTTPErrorHandler creates a new instance of the HTTPErrorHandler.
func NewHTTPErrorHandler(errorCodeToStatusCodeMaps map[string]int, logger log.Logger) *HTTPErrorHandler {
	return &HTTPErrorHandler{
		errorCodeToHTTPStatusCodeMap: errorCodeToStatusCodeMaps,
		logger:                       logger,
	}
}

func (h *HTTPErrorHandler) getStatusCode(errorCode string) int {
	status, ok := h.errorCodeToHTTPStatusCodeMap[errorCode]
	if ok {
		return status
	}

	return http.StatusInternalServerError
}

// Handler handles error returned by echo Handlers.
func (h *HTTPErrorHandler) Handler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	myErr := ToMyError(err)
	if myErr == nil {
		myErr = NewMyError(ErrInternalServerError, "an internal server error has occurred", err)
	}

	var statusCode int
	var he *echo.HTTPError
	if errors.As(err, &he) {
		codeStr := ErrInternalServerError
		switch he.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			codeStr = ErrEntityNotFound
		case http.StatusBadRequest:
			codeStr = ErrBadParameter
		}
		if he.Internal != nil {
			if herr, ok := he.Internal.(*echo.HTTPError); ok {
				he = herr
			}
			var requestError *openapi3filter.RequestError
			if errors.As(he.Internal, &requestError) {
				codeStr = ErrBadParameter
			}
		}

		m, ok := he.Message.(string)
		if !ok {
			m = http.StatusText(he.Code)
		}
		myErr = NewMyError(codeStr, m, err)
		statusCode = he.Code
	} else {
		statusCode = h.getStatusCode(myErr.Code)
	}

	logger := level.Warn(h.logger)
	if statusCode >= http.StatusInternalServerError {
		logger = level.Error(h.logger)
	}
	logger.Log(
		"msg", "HTTP request error",
		"method", c.Request().Method,
		"path", c.Path(),
		"status", statusCode,
		"err", err,
	)

	// Send response
	if c.Request().Method == http.MethodHead && he != nil {
		_ = c.NoContent(he.Code)
	} else {
		_ = c.JSON(statusCode, ErrResponse{Success: false, Error: myErr})
	}
}

// ErrResponse from server.
type ErrResponse struct {
	Success bool     `json:"success"`
	Error   *MyError `json:"error,omitempty"`
}
