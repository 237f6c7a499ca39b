package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the widget.
type Metrics struct {
	Searches         *prometheus.CounterVec // labels: outcome={success,empty_input,fetch_failure}
	SearchesInFlight prometheus.Gauge
	StaleCompletions prometheus.Counter

	// Provider metrics.
	ProviderRequests    *prometheus.CounterVec // labels: outcome={success,http_error,network_error,decode_error}
	ProviderAPIDuration prometheus.Histogram

	// Lookup event metrics.
	LookupEvents        *prometheus.CounterVec // labels: result={published,failed}
	LookupEventsEnabled prometheus.Gauge
}

// NewMetrics creates and registers all widget metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.Searches,
		m.SearchesInFlight,
		m.StaleCompletions,
		m.ProviderRequests,
		m.ProviderAPIDuration,
		m.LookupEvents,
		m.LookupEventsEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_widget",
			Name:      "searches_total",
			Help:      "Submitted searches by outcome.",
		}, []string{"outcome"}),
		SearchesInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "weather_widget",
			Name:      "searches_in_flight",
			Help:      "Provider requests currently outstanding.",
		}),
		StaleCompletions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_widget",
			Name:      "stale_completions_total",
			Help:      "Provider responses discarded because a newer search was issued.",
		}),
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_widget",
			Name:      "provider_requests_total",
			Help:      "Weather provider requests by outcome.",
		}, []string{"outcome"}),
		ProviderAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_widget",
			Name:      "provider_api_duration_seconds",
			Help:      "Weather provider request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		LookupEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_widget",
			Name:      "lookup_events_total",
			Help:      "Lookup events sent to the event sink by result.",
		}, []string{"result"}),
		LookupEventsEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "weather_widget",
			Name:      "lookup_events_enabled",
			Help:      "1 when lookup events are published, 0 otherwise.",
		}),
	}
}
