package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "mycoordinator"

// Metrics tracks Prometheus metrics for the registry, orchestrator and sequencer.
//
// Methods handle a nil receiver, so a nil *Metrics is a no-op when METRICS_ENABLED=false.
type Metrics struct {
	// Registrations counts register calls by outcome.
	// Labels: result=[created, updated, reactivated, error]
	Registrations *prometheus.CounterVec

	// Heartbeats counts heartbeats by outcome.
	// Labels: result=[ok, not_found, error]
	Heartbeats *prometheus.CounterVec

	// StaleRemoved counts instances soft-deleted by the cleanup sweep.
	StaleRemoved prometheus.Counter

	// ActiveInstances is the number of active instances seen by the last sweep.
	ActiveInstances prometheus.Gauge

	// HealthProbes counts health sweep probes by resulting status.
	// Labels: status=[healthy, unhealthy, unknown]
	HealthProbes *prometheus.CounterVec

	// DegradedWaves counts startup orders that had to fall back to a degraded wave.
	DegradedWaves prometheus.Counter

	// ServiceStarts counts per-service start outcomes.
	// Labels: result=[ready, failed, skipped]
	ServiceStarts *prometheus.CounterVec

	// WaveDuration tracks wall time of a single wave.
	WaveDuration prometheus.Histogram

	// StartupDuration tracks wall time of a full execution.
	StartupDuration prometheus.Histogram
}

// NewMetrics creates and registers the coordinator metrics. If registerer is nil, prometheus.DefaultRegisterer is used.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		Registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "registry",
			Name:      "registrations_total",
			Help:      "Total register calls by result",
		}, []string{"result"}),
		Heartbeats: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "registry",
			Name:      "heartbeats_total",
			Help:      "Total heartbeats by result",
		}, []string{"result"}),
		StaleRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "registry",
			Name:      "stale_removed_total",
			Help:      "Total instances soft-deleted by the cleanup sweep",
		}),
		ActiveInstances: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "registry",
			Name:      "active_instances",
			Help:      "Active instances seen by the last health sweep",
		}),
		HealthProbes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "registry",
			Name:      "health_probes_total",
			Help:      "Total health sweep results by status",
		}, []string{"status"}),
		DegradedWaves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "orchestrator",
			Name:      "degraded_waves_total",
			Help:      "Startup orders that grouped unresolvable services into a fallback wave",
		}),
		ServiceStarts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "sequencer",
			Name:      "service_starts_total",
			Help:      "Per-service start outcomes",
		}, []string{"result"}),
		WaveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "sequencer",
			Name:      "wave_duration_seconds",
			Help:      "Duration of a single startup wave",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
		}),
		StartupDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "sequencer",
			Name:      "startup_duration_seconds",
			Help:      "Duration of a full startup execution",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
		}),
	}

	registerer.MustRegister(
		m.Registrations,
		m.Heartbeats,
		m.StaleRemoved,
		m.ActiveInstances,
		m.HealthProbes,
		m.DegradedWaves,
		m.ServiceStarts,
		m.WaveDuration,
		m.StartupDuration,
	)
	return m
}

func (m *Metrics) recordRegistration(result string) {
	if m == nil {
		return
	}
	m.Registrations.WithLabelValues(result).Inc()
}

func (m *Metrics) recordHeartbeats(result string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.Heartbeats.WithLabelValues(result).Add(float64(n))
}

func (m *Metrics) recordStaleRemoved(n int) {
	if m == nil {
		return
	}
	m.StaleRemoved.Add(float64(n))
}

func (m *Metrics) setActiveInstances(n int) {
	if m == nil {
		return
	}
	m.ActiveInstances.Set(float64(n))
}

func (m *Metrics) recordHealthProbe(status string) {
	if m == nil {
		return
	}
	m.HealthProbes.WithLabelValues(status).Inc()
}

func (m *Metrics) recordDegradedWave() {
	if m == nil {
		return
	}
	m.DegradedWaves.Inc()
}

func (m *Metrics) recordServiceStart(result string) {
	if m == nil {
		return
	}
	m.ServiceStarts.WithLabelValues(result).Inc()
}

func (m *Metrics) observeWave(d time.Duration) {
	if m == nil {
		return
	}
	m.WaveDuration.Observe(d.Seconds())
}

func (m *Metrics) observeStartup(d time.Duration) {
	if m == nil {
		return
	}
	m.StartupDuration.Observe(d.Seconds())
}
