package router

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of a router. A nil *Metrics
// records nothing.
type Metrics struct {
	dispatches      prometheus.Counter
	matchedRoutes   prometheus.Histogram
	unhandledErrors prometheus.Counter
	routes          prometheus.Gauge
}

// NewMetrics creates the router collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		dispatches: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "routux",
				Subsystem: "router",
				Name:      "dispatch_total",
				Help:      "Total number of dispatch cycles run",
			},
		),
		matchedRoutes: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "routux",
				Subsystem: "router",
				Name:      "matched_routes",
				Help:      "Number of routes matched per dispatch cycle",
				Buckets:   []float64{0, 1, 2, 3, 5, 8, 13},
			},
		),
		unhandledErrors: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "routux",
				Subsystem: "router",
				Name:      "unhandled_errors_total",
				Help:      "Total number of errors left in flight when a chain was exhausted",
			},
		),
		routes: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "routux",
				Subsystem: "router",
				Name:      "routes",
				Help:      "Number of registered routes",
			},
		),
	}
}

func (m *Metrics) observeDispatch(matched int) {
	if m == nil {
		return
	}
	m.dispatches.Inc()
	m.matchedRoutes.Observe(float64(matched))
}

func (m *Metrics) unhandledError() {
	if m == nil {
		return
	}
	m.unhandledErrors.Inc()
}

func (m *Metrics) routeRegistered() {
	if m == nil {
		return
	}
	m.routes.Inc()
}
