// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed at /metrics:

	curl http://localhost:8000/metrics

# Available Metrics

API:
  - skillmatch_api_requests_total{method,endpoint,status}
  - skillmatch_api_request_duration_seconds{method,endpoint}
  - skillmatch_api_active_requests

Recommendation:
  - skillmatch_recommend_duration_seconds
  - skillmatch_recommend_results
  - skillmatch_recommend_empty_queries_total

Catalog:
  - skillmatch_catalog_records
  - skillmatch_catalog_vocabulary_terms
  - skillmatch_catalog_reloads_total{result}
  - skillmatch_catalog_last_reload_timestamp_seconds

Scraper:
  - skillmatch_scraper_pages_total{result}
  - skillmatch_scraper_records_total
  - skillmatch_circuit_breaker_state{name}
  - skillmatch_circuit_breaker_transitions_total{name,from,to}

Endpoint labels are chi route patterns, never raw paths, so cardinality is
bounded by the route table.
*/
package metrics
