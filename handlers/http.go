// Package handlers contains the HTTP API of mycoordinator: the OpenAPI document, its request validator
// and the echo handlers on top of service.Coordinator.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"mycoordinator/domain"
	"mycoordinator/helpers"
	"mycoordinator/interfaces"
	"mycoordinator/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPServer implements ServerInterface.
type HTTPServer struct {
	registry     interfaces.Registry
	orchestrator interfaces.Orchestrator
	sequencer    interfaces.Sequencer
	logger       log.Logger
}

// NewHTTPServer creates a new HTTPServer. Panics on nil collaborators.
func NewHTTPServer(registry interfaces.Registry, orchestrator interfaces.Orchestrator, sequencer interfaces.Sequencer, logger log.Logger) *HTTPServer {
	logger = helpers.NilPanic(logger, "handlers.http.go: logger is required")
	return &HTTPServer{
		registry:     helpers.NilPanic(registry, "handlers.http.go: registry is required"),
		orchestrator: helpers.NilPanic(orchestrator, "handlers.http.go: orchestrator is required"),
		sequencer:    helpers.NilPanic(sequencer, "handlers.http.go: sequencer is required"),
		logger:       log.WithPrefix(logger, "component", "HTTPServer"),
	}
}

// RegisterMetrics exposes gatherer on GET /metrics.
func RegisterMetrics(router EchoRouter, gatherer prometheus.Gatherer) {
	router.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

// RegisterService (POST /services/register) creates or refreshes the instance for (name, host, port).
// A previously failed node goes back to pending so the next startup run retries it.
func (h *HTTPServer) RegisterService(ectx echo.Context) error {
	var req RegisterRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	registration, err := fromRegisterRequest(req)
	if err != nil {
		return fmt.Errorf("registerService failed to convert request, err: %w", err)
	}

	ctx := ectx.Request().Context()
	inst, err := h.registry.Register(ctx, registration)
	if err != nil {
		return fmt.Errorf("registerService failed to register %s, err: %w", registration.Name, err)
	}
	h.orchestrator.ResetServiceStatus(ctx, inst.Name)

	return ectx.JSON(http.StatusCreated, toRegisterResponse(inst))
}

// Heartbeat (POST /services/heartbeat) renews one lease. Unknown or inactive ids are 404.
func (h *HTTPServer) Heartbeat(ectx echo.Context) error {
	var req HeartbeatRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}
	if req.ServiceID == "" {
		return service.NewBadParameterError("serviceId is required", nil)
	}

	if err := h.registry.Heartbeat(ectx.Request().Context(), req.ServiceID); err != nil {
		return fmt.Errorf("heartbeat failed for %s, err: %w", req.ServiceID, err)
	}
	return ectx.JSON(http.StatusOK, MessageResponse{Success: true, Message: "heartbeat received"})
}

// BatchHeartbeat (POST /services/heartbeat/batch) renews many leases in one storage write.
// Unknown ids are reported per entry, not as a request failure.
func (h *HTTPServer) BatchHeartbeat(ectx echo.Context) error {
	var req BatchHeartbeatRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	res, err := h.registry.BatchHeartbeat(ectx.Request().Context(), fromBatchHeartbeatRequest(req))
	if err != nil {
		return fmt.Errorf("batchHeartbeat failed, err: %w", err)
	}
	if len(res.Failed) > 0 {
		level.Debug(h.logger).Log("msg", "batch heartbeat partially applied", "processed", len(res.Processed), "failed", len(res.Failed))
	}
	return ectx.JSON(http.StatusOK, toBatchHeartbeatResponse(res))
}

// UnregisterService (POST /services/unregister/{serviceId}) soft-deletes the instance.
func (h *HTTPServer) UnregisterService(ectx echo.Context, serviceID string) error {
	if err := h.registry.Deregister(ectx.Request().Context(), serviceID); err != nil {
		return fmt.Errorf("unregisterService failed for %s, err: %w", serviceID, err)
	}
	return ectx.JSON(http.StatusOK, MessageResponse{Success: true, Message: "service unregistered"})
}

// ListServices (GET /services) lists active instances, optionally only healthy ones.
func (h *HTTPServer) ListServices(ectx echo.Context, params ListServicesParams) error {
	ctx := ectx.Request().Context()
	var (
		instances []domain.ServiceInstance
		err       error
	)
	if params.HealthyOnly != nil && *params.HealthyOnly {
		instances, err = h.registry.GetHealthy(ctx)
	} else {
		instances, err = h.registry.GetAll(ctx)
	}
	if err != nil {
		return fmt.Errorf("listServices failed, err: %w", err)
	}
	return ectx.JSON(http.StatusOK, toServicesResponse(instances))
}

// GetService (GET /services/{serviceId}) returns one instance, active or not.
func (h *HTTPServer) GetService(ectx echo.Context, serviceID string) error {
	inst, err := h.registry.GetByID(ectx.Request().Context(), serviceID)
	if err != nil {
		return fmt.Errorf("getService failed for %s, err: %w", serviceID, err)
	}
	return ectx.JSON(http.StatusOK, ServiceResponse{Success: true, Service: toServiceInfo(inst)})
}

// GetDependencyGraph (GET /dependencies/graph) rebuilds the graph from active instances.
func (h *HTTPServer) GetDependencyGraph(ectx echo.Context) error {
	g, err := h.orchestrator.GetGraph(ectx.Request().Context())
	if err != nil {
		return fmt.Errorf("getDependencyGraph failed, err: %w", err)
	}
	return ectx.JSON(http.StatusOK, toGraphResponse(g))
}

// GetStartupOrder (GET /dependencies/startup-order) returns the wave grouping. Cycles still produce an order.
func (h *HTTPServer) GetStartupOrder(ectx echo.Context) error {
	order, err := h.orchestrator.GetStartupOrder(ectx.Request().Context())
	if err != nil {
		return fmt.Errorf("getStartupOrder failed, err: %w", err)
	}
	return ectx.JSON(http.StatusOK, toStartupOrderResponse(order))
}

// ValidateDependencies (GET /dependencies/validate/{serviceName}) returns missing and failed hard
// dependencies as data. Only an unknown service name is an error.
func (h *HTTPServer) ValidateDependencies(ectx echo.Context, serviceName string) error {
	v, err := h.orchestrator.ValidateServiceDependencies(ectx.Request().Context(), serviceName)
	if err != nil {
		return fmt.Errorf("validateDependencies failed for %s, err: %w", serviceName, err)
	}
	return ectx.JSON(http.StatusOK, ValidationResponse{
		Success:     true,
		ServiceName: serviceName,
		Validation:  toValidationInfo(v),
	})
}

// RequestClearance (POST /dependencies/clearance/{serviceName}) asks to start serviceName. A refusal is
// 200 with cleared=false so the caller can retry later.
func (h *HTTPServer) RequestClearance(ectx echo.Context, serviceName string) error {
	ctx := ectx.Request().Context()
	cleared, v, err := h.orchestrator.RequestStartupClearance(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("requestClearance failed for %s, err: %w", serviceName, err)
	}
	state, _ := h.orchestrator.GetServiceStatus(serviceName)
	return ectx.JSON(http.StatusOK, ClearanceResponse{
		Success:     true,
		ServiceName: serviceName,
		Cleared:     cleared,
		Status:      string(state.Status),
		Validation:  toValidationInfo(v),
	})
}

// ReportStatus (POST /dependencies/report/{serviceName}) records a ready or failed report from the service itself.
func (h *HTTPServer) ReportStatus(ectx echo.Context, serviceName string) error {
	var req ReportRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	ctx := ectx.Request().Context()
	var err error
	switch domain.NodeStatus(req.Status) {
	case domain.NodeStatusReady:
		err = h.orchestrator.ReportServiceReady(ctx, serviceName)
	case domain.NodeStatusFailed:
		cause := req.Error
		if cause == "" {
			cause = "reported failed"
		}
		err = h.orchestrator.ReportServiceFailure(ctx, serviceName, errors.New(cause))
	default:
		return service.NewBadParameterError(fmt.Sprintf("status must be ready or failed, got %q", req.Status), nil)
	}
	if err != nil {
		return fmt.Errorf("reportStatus failed for %s, err: %w", serviceName, err)
	}

	state, _ := h.orchestrator.GetServiceStatus(serviceName)
	return ectx.JSON(http.StatusOK, StatusResponse{Success: true, ServiceName: serviceName, Status: string(state.Status)})
}

// WaitForReady (GET /dependencies/wait/{serviceName}) blocks until the service is ready or the timeout
// passes. A timeout is 200 with ready=false, never an error.
func (h *HTTPServer) WaitForReady(ectx echo.Context, serviceName string, params WaitForReadyParams) error {
	timeout, err := fromWaitTimeout(params.TimeoutMs)
	if err != nil {
		return err
	}

	ready := h.orchestrator.WaitForServiceReady(ectx.Request().Context(), serviceName, timeout)
	status := "unknown"
	if state, ok := h.orchestrator.GetServiceStatus(serviceName); ok {
		status = string(state.Status)
	}
	return ectx.JSON(http.StatusOK, WaitResponse{Success: true, ServiceName: serviceName, Ready: ready, Status: status})
}

// PreviewStartup (GET /startup/preview) returns the plan without starting anything.
func (h *HTTPServer) PreviewStartup(ectx echo.Context) error {
	plan, err := h.sequencer.Preview(ectx.Request().Context())
	if err != nil {
		return fmt.Errorf("previewStartup failed, err: %w", err)
	}
	return ectx.JSON(http.StatusOK, toPreviewResponse(plan))
}

// ExecuteStartup (POST /startup/execute) runs every wave. Per-service failures are 200 with success=false;
// only a concurrent run (409) or unreadable registry (503) fail the request.
func (h *HTTPServer) ExecuteStartup(ectx echo.Context) error {
	// The run outlives the request: a dropped connection must not fail services mid-start.
	res, err := h.sequencer.Execute(context.WithoutCancel(ectx.Request().Context()))
	if err != nil {
		return fmt.Errorf("executeStartup failed, err: %w", err)
	}
	return ectx.JSON(http.StatusOK, toExecuteResponse(res))
}

// GetStartupAnalytics (GET /startup/analytics) returns the last run and the execution count.
func (h *HTTPServer) GetStartupAnalytics(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, toAnalyticsResponse(h.sequencer.Analytics()))
}

// ToggleOptimization (POST /startup/optimization/toggle) switches parallel waves on or off.
func (h *HTTPServer) ToggleOptimization(ectx echo.Context) error {
	var req ToggleRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}
	if req.Enabled == nil {
		return service.NewBadParameterError("enabled is required", nil)
	}

	h.sequencer.SetOptimization(*req.Enabled)
	level.Info(h.logger).Log("msg", "startup optimization toggled", "enabled", *req.Enabled)
	return ectx.JSON(http.StatusOK, ToggleResponse{Success: true, OptimizationEnabled: *req.Enabled})
}

// GetHealth (GET /health) reports whether storage is reachable.
func (h *HTTPServer) GetHealth(ectx echo.Context) error {
	if err := h.registry.Ping(ectx.Request().Context()); err != nil {
		return fmt.Errorf("getHealth failed, err: %w", err)
	}
	return ectx.JSON(http.StatusOK, HealthResponse{Success: true, Status: "ok"})
}
