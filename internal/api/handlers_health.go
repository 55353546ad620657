// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/restotrack/internal/models"
)

// Health reports catalog status. The service stays up with an empty catalog
// when loading failed, so a load error marks it degraded rather than down
// until a retry succeeds.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	cat := h.tracker.CatalogStatus()

	status := "healthy"
	var catalogErr string
	if cat.Err != nil {
		status = "degraded"
		catalogErr = cat.Err.Error()
	}

	health := models.HealthStatus{
		Status:        status,
		Version:       Version,
		Restaurants:   cat.Restaurants,
		CatalogSource: cat.Source,
		CatalogError:  catalogErr,
		Uptime:        time.Since(h.startTime).Seconds(),
	}

	respondSuccess(w, health, models.Metadata{})
}
