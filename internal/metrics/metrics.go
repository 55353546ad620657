// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Catalog Metrics
	CatalogRestaurants = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_restaurants",
			Help: "Number of restaurants in the loaded catalog",
		},
	)

	CatalogLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_loads_total",
			Help: "Total number of catalog load attempts",
		},
		[]string{"source", "result"}, // result: "success", "failure"
	)

	CatalogRejectedRecords = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_rejected_records_total",
			Help: "Catalog records skipped because they failed validation",
		},
	)

	// Annotation Metrics
	AnnotationWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "annotation_writes_total",
			Help: "Total number of annotation persistence operations",
		},
		[]string{"operation", "result"}, // operation: "update", "clear"
	)

	AnnotationCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "annotations_stored",
			Help: "Number of restaurants with a stored annotation",
		},
	)

	// Recommendation Metrics
	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Time spent scoring recommendation candidates",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	RecommendationResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_results",
			Help:    "Number of recommendations returned per run",
			Buckets: []float64{0, 1, 2, 5, 10},
		},
	)

	RecommendationLikedSeeds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommendation_liked_seeds",
			Help: "Number of liked restaurants used as seeds in the last run",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordCatalogLoad records the outcome of a catalog load.
func RecordCatalogLoad(source string, restaurants int, err error) {
	if err != nil {
		CatalogLoads.WithLabelValues(source, "failure").Inc()
		CatalogRestaurants.Set(0)
		return
	}
	CatalogLoads.WithLabelValues(source, "success").Inc()
	CatalogRestaurants.Set(float64(restaurants))
}

// RecordRecommendation records one recommendation run.
func RecordRecommendation(duration time.Duration, liked, results int) {
	RecommendationDuration.Observe(duration.Seconds())
	RecommendationResults.Observe(float64(results))
	RecommendationLikedSeeds.Set(float64(liked))
}

// StatusLabel converts an HTTP status code to a label value.
func StatusLabel(code int) string {
	return strconv.Itoa(code)
}
