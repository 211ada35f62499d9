package monitoring

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for API client activity.
//
// All methods are nil-safe so the client can run unmetered.
type Metrics struct {
	CallsTotal   *prometheus.CounterVec
	CallDuration *prometheus.HistogramVec
	BreakerState prometheus.Gauge
}

// New creates the collectors and registers them with reg. The registerer is
// caller-supplied so library consumers keep control of their registry (and
// tests can use a fresh one per case).
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		CallsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rt_client_api_calls_total",
				Help: "Total number of Request Tracker API calls",
			},
			[]string{"resource", "operation", "status"},
		),
		CallDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rt_client_api_call_duration_seconds",
				Help:    "Request Tracker API call duration in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"resource", "operation"},
		),
		BreakerState: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "rt_client_breaker_state",
				Help: "Circuit breaker state (0 closed, 1 half-open, 2 open)",
			},
		),
	}
}

// ObserveCall records one completed API call.
func (m *Metrics) ObserveCall(resource, operation string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.CallsTotal.WithLabelValues(resource, operation, strconv.Itoa(status)).Inc()
	m.CallDuration.WithLabelValues(resource, operation).Observe(duration.Seconds())
}

// SetBreakerState records the breaker state after a call.
func (m *Metrics) SetBreakerState(state int) {
	if m == nil {
		return
	}
	m.BreakerState.Set(float64(state))
}
