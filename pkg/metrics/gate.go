package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Gate outcomes. "anonymous" covers requests that never presented a token.
const (
	GateOutcomeAuthenticated = "authenticated"
	GateOutcomeAnonymous     = "anonymous"
	GateOutcomeExpired       = "expired"
	GateOutcomeInvalid       = "invalid"
	GateOutcomePreflight     = "preflight"
	GateOutcomePublic        = "public"
)

// GateMetrics tracks request-gate decisions.
type GateMetrics struct {
	outcomes *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewGateMetrics registers the gate metrics on the provided registerer.
func NewGateMetrics(reg prometheus.Registerer) *GateMetrics {
	if reg == nil {
		return &GateMetrics{}
	}
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_gate_requests_total",
		Help: "Request gate decisions by outcome.",
	}, []string{"outcome"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "auth_gate_duration_seconds",
		Help:    "Time spent resolving a principal at the gate.",
		Buckets: prometheus.DefBuckets,
	})
	reg.MustRegister(outcomes, duration)
	return &GateMetrics{outcomes: outcomes, duration: duration}
}

// IncOutcome increments the counter for a gate decision.
func (g *GateMetrics) IncOutcome(outcome string) {
	if g == nil || g.outcomes == nil {
		return
	}
	if outcome == "" {
		outcome = "unknown"
	}
	g.outcomes.WithLabelValues(outcome).Inc()
}

// ObserveDuration records how long the gate took.
func (g *GateMetrics) ObserveDuration(d time.Duration) {
	if g == nil || g.duration == nil {
		return
	}
	g.duration.Observe(d.Seconds())
}

// Handler exposes the registry in Prometheus text format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
