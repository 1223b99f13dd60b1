package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector handles metrics collection and reporting for the optimizer API
type Collector struct {
	registry *prometheus.Registry
	metrics  map[string]prometheus.Collector
}

// NewCollector creates a new metrics collector
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	optimizationDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "optimization_duration_seconds",
			Help:    "Time taken to score the catalog for one request",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	optimizationScores := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "optimization_score",
			Help:    "Distribution of top-result optimization scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11), // 0-100 in tens
		},
	)

	resultCount := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "optimization_result_count",
			Help:    "Number of recipes returned per request",
			Buckets: prometheus.LinearBuckets(0, 5, 10),
		},
		[]string{"operation"},
	)

	catalogSize := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_recipes",
			Help: "Recipes currently in the catalog",
		},
	)

	// Create metrics map
	metrics := map[string]prometheus.Collector{
		"duration":     optimizationDuration,
		"score":        optimizationScores,
		"result_count": resultCount,
		"catalog_size": catalogSize,
	}

	// Register metrics
	for _, metric := range metrics {
		registry.MustRegister(metric)
	}

	return &Collector{
		registry: registry,
		metrics:  metrics,
	}
}

// RecordOptimization records duration and result count for one request
func (c *Collector) RecordOptimization(operation string, duration time.Duration, results int) {
	if histogram, ok := c.metrics["duration"].(*prometheus.HistogramVec); ok {
		histogram.WithLabelValues(operation).Observe(duration.Seconds())
	}
	if histogram, ok := c.metrics["result_count"].(*prometheus.HistogramVec); ok {
		histogram.WithLabelValues(operation).Observe(float64(results))
	}
}

// RecordScore records a top-result optimization score
func (c *Collector) RecordScore(score int) {
	if histogram, ok := c.metrics["score"].(prometheus.Histogram); ok {
		histogram.Observe(float64(score))
	}
}

// SetCatalogSize records the current catalog size
func (c *Collector) SetCatalogSize(size int) {
	if gauge, ok := c.metrics["catalog_size"].(prometheus.Gauge); ok {
		gauge.Set(float64(size))
	}
}

// Handler returns the scrape handler for this collector's registry
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
