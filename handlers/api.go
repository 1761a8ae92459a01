package handlers

import (
	"github.com/labstack/echo/v4"
)

// ServerInterface lists the operations of openapi.yaml. Path and query parameters are extracted by
// ServerInterfaceWrapper; bodies are bound by the implementation.
type ServerInterface interface {
	// (POST /services/register)
	RegisterService(ctx echo.Context) error
	// (POST /services/heartbeat)
	Heartbeat(ctx echo.Context) error
	// (POST /services/heartbeat/batch)
	BatchHeartbeat(ctx echo.Context) error
	// (POST /services/unregister/{serviceId})
	UnregisterService(ctx echo.Context, serviceID string) error
	// (GET /services)
	ListServices(ctx echo.Context, params ListServicesParams) error
	// (GET /services/{serviceId})
	GetService(ctx echo.Context, serviceID string) error
	// (GET /dependencies/graph)
	GetDependencyGraph(ctx echo.Context) error
	// (GET /dependencies/startup-order)
	GetStartupOrder(ctx echo.Context) error
	// (GET /dependencies/validate/{serviceName})
	ValidateDependencies(ctx echo.Context, serviceName string) error
	// (POST /dependencies/clearance/{serviceName})
	RequestClearance(ctx echo.Context, serviceName string) error
	// (POST /dependencies/report/{serviceName})
	ReportStatus(ctx echo.Context, serviceName string) error
	// (GET /dependencies/wait/{serviceName})
	WaitForReady(ctx echo.Context, serviceName string, params WaitForReadyParams) error
	// (GET /startup/preview)
	PreviewStartup(ctx echo.Context) error
	// (POST /startup/execute)
	ExecuteStartup(ctx echo.Context) error
	// (GET /startup/analytics)
	GetStartupAnalytics(ctx echo.Context) error
	// (POST /startup/optimization/toggle)
	ToggleOptimization(ctx echo.Context) error
	// (GET /health)
	GetHealth(ctx echo.Context) error
}

// ListServicesParams defines parameters for ListServices.
type ListServicesParams struct {
	HealthyOnly *bool
}

// WaitForReadyParams defines parameters for WaitForReady.
type WaitForReadyParams struct {
	TimeoutMs *int
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) UnregisterService(ctx echo.Context) error {
	return w.Handler.UnregisterService(ctx, ctx.Param("serviceId"))
}

func (w *ServerInterfaceWrapper) ListServices(ctx echo.Context) error {
	var params ListServicesParams
	var healthyOnly bool
	if ctx.QueryParam("healthyOnly") != "" {
		if err := echo.QueryParamsBinder(ctx).Bool("healthyOnly", &healthyOnly).BindError(); err != nil {
			return err
		}
		params.HealthyOnly = &healthyOnly
	}
	return w.Handler.ListServices(ctx, params)
}

func (w *ServerInterfaceWrapper) GetService(ctx echo.Context) error {
	return w.Handler.GetService(ctx, ctx.Param("serviceId"))
}

func (w *ServerInterfaceWrapper) ValidateDependencies(ctx echo.Context) error {
	return w.Handler.ValidateDependencies(ctx, ctx.Param("serviceName"))
}

func (w *ServerInterfaceWrapper) RequestClearance(ctx echo.Context) error {
	return w.Handler.RequestClearance(ctx, ctx.Param("serviceName"))
}

func (w *ServerInterfaceWrapper) ReportStatus(ctx echo.Context) error {
	return w.Handler.ReportStatus(ctx, ctx.Param("serviceName"))
}

func (w *ServerInterfaceWrapper) WaitForReady(ctx echo.Context) error {
	var params WaitForReadyParams
	var timeoutMs int
	if ctx.QueryParam("timeoutMs") != "" {
		if err := echo.QueryParamsBinder(ctx).Int("timeoutMs", &timeoutMs).BindError(); err != nil {
			return err
		}
		params.TimeoutMs = &timeoutMs
	}
	return w.Handler.WaitForReady(ctx, ctx.Param("serviceName"), params)
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.POST("/services/register", si.RegisterService)
	router.POST("/services/heartbeat", si.Heartbeat)
	router.POST("/services/heartbeat/batch", si.BatchHeartbeat)
	router.POST("/services/unregister/:serviceId", w.UnregisterService)
	router.GET("/services", w.ListServices)
	router.GET("/services/:serviceId", w.GetService)

	router.GET("/dependencies/graph", si.GetDependencyGraph)
	router.GET("/dependencies/startup-order", si.GetStartupOrder)
	router.GET("/dependencies/validate/:serviceName", w.ValidateDependencies)
	router.POST("/dependencies/clearance/:serviceName", w.RequestClearance)
	router.POST("/dependencies/report/:serviceName", w.ReportStatus)
	router.GET("/dependencies/wait/:serviceName", w.WaitForReady)

	router.GET("/startup/preview", si.PreviewStartup)
	router.POST("/startup/execute", si.ExecuteStartup)
	router.GET("/startup/analytics", si.GetStartupAnalytics)
	router.POST("/startup/optimization/toggle", si.ToggleOptimization)

	router.GET("/health", si.GetHealth)
}
