// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

/*
Package middleware provides HTTP middleware shared by the tracker API.

Key Components:

  - Request ID: UUID-based request tracking, propagated into the logging context
  - Prometheus Metrics: request counter, latency histogram and in-flight gauge

Both are plain func(http.HandlerFunc) http.HandlerFunc wrappers so they can be
adapted to chi with a one-line shim:

	r.Use(chiMiddleware(middleware.PrometheusMetrics))

Metrics are labelled with the chi route pattern ("/api/v1/restaurants/{id}")
rather than the raw path, which keeps label cardinality bounded.
*/
package middleware
