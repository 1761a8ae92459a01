package handlers

import (
	"time"

	"mycoordinator/domain"
)

func toDependencyInfos(deps []domain.DependencyRef) []DependencyInfo {
	out := make([]DependencyInfo, 0, len(deps))
	for _, d := range deps {
		required := d.Required
		out = append(out, DependencyInfo{
			Name:        d.Name,
			Type:        string(d.Kind),
			Timeout:     d.TimeoutMs,
			HealthCheck: d.HealthCheckPath,
			IsRequired:  &required,
		})
	}
	return out
}

// toRegisterResponse converts the stored instance to the 201 body of POST /services/register.
func toRegisterResponse(inst domain.ServiceInstance) RegisterResponse {
	return RegisterResponse{
		Success:        true,
		ServiceID:      inst.ID,
		Status:         "registered",
		Dependencies:   toDependencyInfos(inst.Dependencies),
		HealthURL:      inst.HealthURL(),
		LeaseExpiresAt: inst.LeaseExpiryAt,
	}
}

func toBatchHeartbeatResponse(res domain.BatchHeartbeatResult) BatchHeartbeatResponse {
	out := BatchHeartbeatResponse{
		Success: true,
		Results: BatchResults{
			Processed: len(res.Processed),
			Failed:    len(res.Failed),
			Total:     res.Total(),
		},
	}
	for _, f := range res.Failed {
		out.Failures = append(out.Failures, BatchFailure{ServiceID: f.InstanceID, Reason: f.Reason})
	}
	return out
}

func toServiceInfo(inst domain.ServiceInstance) ServiceInfo {
	return ServiceInfo{
		ServiceID:      inst.ID,
		Name:           inst.Name,
		Host:           inst.Host,
		Port:           inst.Port,
		HealthEndpoint: inst.HealthEndpoint,
		HealthURL:      inst.HealthURL(),
		Status:         string(inst.Status),
		IsActive:       inst.IsActive,
		LeaseTTLMs:     inst.LeaseTTL.Milliseconds(),
		LeaseExpiresAt: inst.LeaseExpiryAt,
		LastHeartbeat:  inst.LastHeartbeat,
		RegisteredAt:   inst.RegisteredAt,
		Metadata:       inst.Metadata,
		Dependencies:   toDependencyInfos(inst.Dependencies),
	}
}

func toServicesResponse(instances []domain.ServiceInstance) ServicesResponse {
	out := make([]ServiceInfo, 0, len(instances))
	for _, inst := range instances {
		out = append(out, toServiceInfo(inst))
	}
	return ServicesResponse{Success: true, Services: out, Total: len(out)}
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func toGraphResponse(g domain.DependencyGraph) GraphResponse {
	nodes := make([]GraphNodeInfo, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		nodes = append(nodes, GraphNodeInfo{
			Name:         n.Name,
			InstanceIDs:  nonNil(n.InstanceIDs),
			Tier:         n.Tier,
			Status:       string(n.State.Status),
			StartedAt:    timePtr(n.State.StartedAt),
			ReadyAt:      timePtr(n.State.ReadyAt),
			Error:        n.State.Error,
			Dependencies: toDependencyInfos(n.Dependencies),
		})
	}
	edges := make([]GraphEdgeInfo, 0, len(g.Edges))
	for _, e := range g.Edges {
		edges = append(edges, GraphEdgeInfo{
			From:        e.From,
			To:          e.To,
			Type:        string(e.Kind),
			IsRequired:  e.Required,
			Timeout:     e.TimeoutMs,
			HealthCheck: e.HealthCheckPath,
		})
	}
	counts := make(map[string]int, len(g.Statistics.StatusCounts))
	for status, n := range g.Statistics.StatusCounts {
		counts[string(status)] = n
	}
	cycles := nonNilCycles(g.CircularDependencies)
	return GraphResponse{
		Success: true,
		Graph:   GraphInfo{Nodes: nodes, Edges: edges},
		Statistics: GraphStatisticsInfo{
			TotalServices:       g.Statistics.TotalServices,
			TotalEdges:          g.Statistics.TotalEdges,
			HardEdges:           g.Statistics.HardEdges,
			SoftEdges:           g.Statistics.SoftEdges,
			MissingDependencies: nonNil(g.Statistics.MissingDependencies),
			MaxTier:             g.Statistics.MaxTier,
			StatusCounts:        counts,
		},
		CircularDependencies:    cycles,
		HasCircularDependencies: len(cycles) > 0,
	}
}

func toStartupOrderResponse(order domain.StartupOrder) StartupOrderResponse {
	return StartupOrderResponse{
		Success:                 true,
		StartupOrder:            order.Names(),
		TotalWaves:              len(order.Waves),
		HasCircularDependencies: order.HasCircularDependencies,
		Degraded:                order.Degraded,
	}
}

func toValidationInfo(v domain.ValidationResult) ValidationInfo {
	return ValidationInfo{
		Satisfied: v.Satisfied,
		Missing:   nonNil(v.Missing),
		Failed:    nonNil(v.Failed),
	}
}

func toWaveInfos(waves []domain.StartupWave) []WaveInfo {
	out := make([]WaveInfo, 0, len(waves))
	for _, w := range waves {
		out = append(out, WaveInfo{
			Wave:             w.Number,
			Services:         nonNil(w.Services),
			HardDependencies: nonNil(w.HardDependencies),
			Parallelizable:   w.Parallelizable,
			Degraded:         w.Degraded,
		})
	}
	return out
}

func toPreviewResponse(plan domain.StartupPlan) PreviewResponse {
	tiers := plan.Tiers
	if tiers == nil {
		tiers = map[string]int{}
	}
	return PreviewResponse{
		Success: true,
		Plan: PlanInfo{
			Waves:                         toWaveInfos(plan.Waves),
			Tiers:                         tiers,
			TotalServices:                 plan.TotalServices,
			TotalWaves:                    len(plan.Waves),
			MaxParallelism:                plan.MaxParallelism,
			HasCircularDependencies:       plan.HasCircularDependencies,
			CircularDependencies:          nonNilCycles(plan.CircularDependencies),
			OptimizationEnabled:           plan.OptimizationEnabled,
			EstimatedDurationMs:           plan.EstimatedDuration.Milliseconds(),
			EstimatedSequentialDurationMs: plan.EstimatedSequentialDuration.Milliseconds(),
		},
	}
}

func toExecuteResponse(res domain.StartupResult) ExecuteResponse {
	errs := make([]ServiceErrorInfo, 0, len(res.Errors))
	for _, e := range res.Errors {
		errs = append(errs, ServiceErrorInfo{Service: e.Service, Code: e.Code, Error: e.Error})
	}
	waves := make([]int64, 0, len(res.Analytics.WaveDurations))
	for _, d := range res.Analytics.WaveDurations {
		waves = append(waves, d.Milliseconds())
	}
	return ExecuteResponse{
		Success:         res.Success,
		StartedAt:       res.StartedAt,
		TotalDurationMs: res.TotalDuration.Milliseconds(),
		WavesExecuted:   res.WavesExecuted,
		ServicesStarted: nonNil(res.ServicesStarted),
		AlreadyReady:    nonNil(res.AlreadyReady),
		Errors:          errs,
		Analytics: AnalyticsInfo{
			SequentialDurationMs: res.Analytics.SequentialDuration.Milliseconds(),
			ParallelizationGain:  res.Analytics.ParallelizationGain,
			TimeReductionPercent: res.Analytics.TimeReductionPercent,
			MaxParallelism:       res.Analytics.MaxParallelism,
			AverageWaveSize:      res.Analytics.AverageWaveSize,
			WaveDurationsMs:      waves,
		},
	}
}

func toAnalyticsResponse(stats domain.StartupStats) AnalyticsResponse {
	out := AnalyticsResponse{
		Success:             true,
		OptimizationEnabled: stats.OptimizationEnabled,
		TotalExecutions:     stats.TotalExecutions,
	}
	if stats.LastResult != nil {
		last := toExecuteResponse(*stats.LastResult)
		out.LastExecution = &last
	}
	return out
}

// nonNil keeps empty lists as [] rather than null in JSON.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilCycles(c [][]string) [][]string {
	if c == nil {
		return [][]string{}
	}
	return c
}
