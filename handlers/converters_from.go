package handlers

import (
	"fmt"
	"strings"
	"time"

	"mycoordinator/domain"
	"mycoordinator/service"
)

// fromRegisterRequest converts RegisterRequest to domain.Registration.
// Returns service.BadParameterError on validation failure.
func fromRegisterRequest(req RegisterRequest) (domain.Registration, error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.Registration{}, service.NewBadParameterError("name is required", nil)
	}
	if strings.TrimSpace(req.Host) == "" {
		return domain.Registration{}, service.NewBadParameterError("host is required", nil)
	}
	if req.Port == 0 {
		return domain.Registration{}, service.NewBadParameterError("port is required", nil)
	}

	deps := make([]domain.DependencySpec, 0, len(req.Dependencies))
	for _, d := range req.Dependencies {
		dep, err := fromDependencyInfo(d)
		if err != nil {
			return domain.Registration{}, err
		}
		deps = append(deps, dep)
	}

	return domain.Registration{
		Name:           strings.TrimSpace(req.Name),
		Host:           strings.TrimSpace(req.Host),
		Port:           req.Port,
		HealthEndpoint: req.HealthEndpoint,
		Metadata:       req.Metadata,
		Dependencies:   deps,
	}, nil
}

// fromDependencyInfo maps the wire dependency. An omitted isRequired stays nil and resolves to required.
func fromDependencyInfo(d DependencyInfo) (domain.DependencySpec, error) {
	if strings.TrimSpace(d.Name) == "" {
		return domain.DependencySpec{}, service.NewBadParameterError("dependency name is required", nil)
	}
	kind := domain.DependencyHard
	switch d.Type {
	case "", string(domain.DependencyHard):
	case string(domain.DependencySoft):
		kind = domain.DependencySoft
	default:
		return domain.DependencySpec{}, service.NewBadParameterError(fmt.Sprintf("dependency %q has unknown type %q", d.Name, d.Type), nil)
	}
	return domain.DependencySpec{
		Name:            strings.TrimSpace(d.Name),
		Kind:            kind,
		TimeoutMs:       d.Timeout,
		HealthCheckPath: d.HealthCheck,
		Required:        d.IsRequired,
	}, nil
}

// fromBatchHeartbeatRequest converts the batch to domain heartbeats. An entry without its own timestamp takes
// batchTimestamp; with neither, At stays zero and the registry uses its clock.
func fromBatchHeartbeatRequest(req BatchHeartbeatRequest) []domain.Heartbeat {
	out := make([]domain.Heartbeat, 0, len(req.Services))
	for _, s := range req.Services {
		var at time.Time
		switch {
		case s.Timestamp != nil:
			at = *s.Timestamp
		case req.BatchTimestamp != nil:
			at = *req.BatchTimestamp
		}
		out = append(out, domain.Heartbeat{InstanceID: s.ServiceID, At: at})
	}
	return out
}

// fromWaitTimeout converts the timeoutMs query value; nil or zero means the orchestrator default.
func fromWaitTimeout(timeoutMs *int) (time.Duration, error) {
	if timeoutMs == nil {
		return 0, nil
	}
	if *timeoutMs < 0 {
		return 0, service.NewBadParameterError("timeoutMs must not be negative", nil)
	}
	return time.Duration(*timeoutMs) * time.Millisecond, nil
}
