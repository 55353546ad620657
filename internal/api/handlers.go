// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package api

import (
	"time"

	"github.com/tomtom215/restotrack/internal/tracker"
)

// Version is reported by the health endpoint. Overridden at build time.
var Version = "dev"

// Handler serves the tracker API. Catalog status for the health endpoint is
// read from the controller, which the catalog loader keeps current.
type Handler struct {
	tracker   *tracker.Controller
	startTime time.Time
}

// NewHandler creates a handler over the given controller.
func NewHandler(ctrl *tracker.Controller) *Handler {
	return &Handler{
		tracker:   ctrl,
		startTime: time.Now(),
	}
}
