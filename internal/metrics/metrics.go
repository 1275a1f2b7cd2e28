// Package metrics provides the centralized Prometheus metrics registry for
// both computation pipelines.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	QuotesIngestedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "propsedge",
		Name:      "quotes_ingested_total",
		Help:      "Total number of quotes accepted by the ledger",
	})
	QuotesDroppedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "propsedge",
		Name:      "quotes_dropped_total",
		Help:      "Total number of feed rows dropped for unavailable prices",
	})
	OpportunitiesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "propsedge",
		Name:      "opportunities_total",
		Help:      "Total number of opportunities computed, by de-vig method",
	}, []string{"devig_method"})
	HitRateComputationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "propsedge",
		Name:      "hit_rate_computations_total",
		Help:      "Total number of hit-rate window computations",
	})
	FilterReclampsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "propsedge",
		Name:      "filter_reclamps_total",
		Help:      "Total number of filter reclamp passes after record-set changes",
	})
	MemoHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "propsedge",
		Name:      "memo_hits_total",
		Help:      "Total number of memo table hits",
	})
	MemoMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "propsedge",
		Name:      "memo_misses_total",
		Help:      "Total number of memo table misses",
	})
)

// Histogram metrics
var (
	PricingDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "propsedge",
		Name:      "pricing_duration_seconds",
		Help:      "Duration of a full opportunity computation in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	FilterDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "propsedge",
		Name:      "filter_duration_seconds",
		Help:      "Duration of a filter apply pass in seconds",
		Buckets:   prometheus.DefBuckets,
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(QuotesIngestedTotal)
		registry.MustRegister(QuotesDroppedTotal)
		registry.MustRegister(OpportunitiesTotal)
		registry.MustRegister(HitRateComputationsTotal)
		registry.MustRegister(FilterReclampsTotal)
		registry.MustRegister(MemoHitsTotal)
		registry.MustRegister(MemoMissesTotal)

		registry.MustRegister(PricingDuration)
		registry.MustRegister(FilterDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordQuotes records an ingestion pass.
func RecordQuotes(ingested, dropped int) {
	QuotesIngestedTotal.Add(float64(ingested))
	QuotesDroppedTotal.Add(float64(dropped))
}

// RecordOpportunity records a computed opportunity.
func RecordOpportunity(devigMethod string, durationSeconds float64) {
	OpportunitiesTotal.WithLabelValues(devigMethod).Inc()
	PricingDuration.Observe(durationSeconds)
}

// RecordHitRate records a hit-rate window computation.
func RecordHitRate() {
	HitRateComputationsTotal.Inc()
}

// RecordReclamp records a filter reclamp pass.
func RecordReclamp() {
	FilterReclampsTotal.Inc()
}

// RecordFilterDuration records a filter apply pass.
func RecordFilterDuration(durationSeconds float64) {
	FilterDuration.Observe(durationSeconds)
}

// RecordMemoHit records a memo table hit.
func RecordMemoHit() {
	MemoHitsTotal.Inc()
}

// RecordMemoMiss records a memo table miss.
func RecordMemoMiss() {
	MemoMissesTotal.Inc()
}
