// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package models

import (
	"time"
)

// APIResponse is the envelope returned by every HTTP endpoint.
//
// Status is "success" (see Data) or "error" (see Error).
//
//	{
//	  "status": "success",
//	  "data": [...],
//	  "metadata": {"timestamp": "2026-01-02T12:00:00Z", "count": 12}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries response bookkeeping.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Count       int       `json:"count,omitempty"`
	Tab         string    `json:"tab,omitempty"`
}

// APIError is the machine-readable error payload.
//
// Codes used by the tracker API:
//   - VALIDATION_ERROR: request body or query failed validation
//   - INVALID_ID: the path id is not an integer
//   - NOT_FOUND: no restaurant with the id exists in the catalog
//   - PERSISTENCE_ERROR: the annotation backend rejected a write
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is the payload of GET /api/v1/health.
type HealthStatus struct {
	Status        string  `json:"status"` // "healthy" or "degraded"
	Version       string  `json:"version"`
	Restaurants   int     `json:"restaurants"`
	CatalogSource string  `json:"catalog_source,omitempty"`
	CatalogError  string  `json:"catalog_error,omitempty"`
	Uptime        float64 `json:"uptime_seconds"`
}
