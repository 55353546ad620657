// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

/*
Package metrics provides Prometheus metrics for the tracker.

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8087/metrics

# Available Metrics

HTTP Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
  - api_active_requests: In-flight requests (gauge)

Catalog Metrics:
  - catalog_restaurants: Restaurants in the loaded catalog (gauge)
  - catalog_loads_total: Load attempts by source and result (counter)
  - catalog_rejected_records_total: Records that failed validation (counter)

Annotation Metrics:
  - annotation_writes_total: Persistence operations by operation and result (counter)
  - annotations_stored: Restaurants with a stored annotation (gauge)

Recommendation Metrics:
  - recommendation_duration_seconds: Scoring time per run (histogram)
  - recommendation_results: Results returned per run (histogram)
  - recommendation_liked_seeds: Liked restaurants in the last run (gauge)

Circuit Breaker Metrics:
  - circuit_breaker_state, circuit_breaker_requests_total,
    circuit_breaker_state_transitions_total (catalog HTTP source)
*/
package metrics
