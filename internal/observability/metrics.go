package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the lookup pipeline.
type Metrics struct {
	LookupsTotal            *prometheus.CounterVec // labels: outcome={success,invalid_input,not_found,transient_error}
	ProviderRequestDuration prometheus.Histogram
	RecommendationsTotal    *prometheus.CounterVec // labels: category
}

func newMetrics() *Metrics {
	return &Metrics{
		LookupsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_wear",
			Name:      "lookups_total",
			Help:      "Postal code lookups by outcome.",
		}, []string{"outcome"}),
		ProviderRequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_wear",
			Name:      "provider_request_duration_seconds",
			Help:      "Duration of weather provider requests in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		RecommendationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_wear",
			Name:      "recommendations_total",
			Help:      "Clothing recommendations returned by category.",
		}, []string{"category"}),
	}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.LookupsTotal,
		m.ProviderRequestDuration,
		m.RecommendationsTotal,
	)

	return m
}

// NewMetricsForTesting returns unregistered collectors so tests can create
// as many as they need.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
