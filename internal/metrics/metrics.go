package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "weather_lookup"

var (
	ProviderRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "provider_requests_total",
		Help:      "Calls made to the upstream weather provider by endpoint and outcome",
	}, []string{"provider", "endpoint", "outcome"})

	ProviderLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "provider_request_duration_seconds",
		Help:      "Latency of upstream weather provider calls",
		Buckets:   prometheus.DefBuckets,
	}, []string{"provider", "endpoint"})

	HistoricalDaysSkipped = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "historical_days_skipped_total",
		Help:      "Days dropped from historical lookups because the provider call failed",
	})

	LandmarkLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "landmark_lookups_total",
		Help:      "Landmark substitutions attempted for place-name lookups",
	}, []string{"result"})

	RecordsRefreshed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_refreshed_total",
		Help:      "Weather records refreshed by the scheduler",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(ProviderRequests, ProviderLatency, HistoricalDaysSkipped, LandmarkLookups, RecordsRefreshed)
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
