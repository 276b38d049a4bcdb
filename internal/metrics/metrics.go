// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "skillmatch"

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "API request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "api_active_requests",
			Help:      "Current number of active API requests",
		},
	)

	// Recommendation Metrics
	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommend_duration_seconds",
			Help:      "Time spent scoring and ranking one query",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
	)

	RecommendResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommend_results",
			Help:      "Number of results returned per query",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
		},
	)

	RecommendEmptyQueries = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommend_empty_queries_total",
			Help:      "Queries rejected because they were empty after trimming",
		},
	)

	// Catalog Metrics
	CatalogRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_records",
			Help:      "Number of records in the served catalog",
		},
	)

	CatalogVocabularyTerms = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_vocabulary_terms",
			Help:      "Number of distinct terms in the fitted text index",
		},
	)

	CatalogReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_reloads_total",
			Help:      "Catalog reload attempts by result (success, unchanged, error)",
		},
		[]string{"result"},
	)

	CatalogLastReload = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_last_reload_timestamp_seconds",
			Help:      "Unix time of the last successful catalog load",
		},
	)

	// Scraper Metrics
	ScraperPagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scraper_pages_total",
			Help:      "Catalog listing pages fetched by result (success, http_error, network_error, circuit_open, parse_error)",
		},
		[]string{"result"},
	)

	ScraperRecordsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scraper_records_total",
			Help:      "Assessment rows extracted by the scraper",
		},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_transitions_total",
			Help:      "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)
)

// Reload results
const (
	ReloadSuccess   = "success"
	ReloadUnchanged = "unchanged"
	ReloadError     = "error"
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, status string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
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

// RecordRecommendation records one answered query.
func RecordRecommendation(duration time.Duration, results int, emptyQuery bool) {
	if emptyQuery {
		RecommendEmptyQueries.Inc()
		return
	}
	RecommendDuration.Observe(duration.Seconds())
	RecommendResults.Observe(float64(results))
}

// RecordCatalogLoad updates the catalog gauges after a successful load.
func RecordCatalogLoad(records, vocabulary int) {
	CatalogRecords.Set(float64(records))
	CatalogVocabularyTerms.Set(float64(vocabulary))
	CatalogLastReload.Set(float64(time.Now().Unix()))
}

// RecordCatalogReload counts a reload attempt.
func RecordCatalogReload(result string) {
	CatalogReloadsTotal.WithLabelValues(result).Inc()
}

// RecordScraperPage counts a fetched listing page and the rows it yielded.
func RecordScraperPage(result string, records int) {
	ScraperPagesTotal.WithLabelValues(result).Inc()
	if records > 0 {
		ScraperRecordsTotal.Add(float64(records))
	}
}

// RecordCircuitBreakerTransition publishes a breaker state change. to is
// exported as 0 (closed), 1 (half-open) or 2 (open) on the state gauge.
func RecordCircuitBreakerTransition(name, from, to string, state int) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
