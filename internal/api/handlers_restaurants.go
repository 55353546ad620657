// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/restotrack/internal/models"
	"github.com/tomtom215/restotrack/internal/tracker"
)

// Restaurants applies the tab and filter parameters to the controller and
// returns the resulting view.
func (h *Handler) Restaurants(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := parseRestaurantsRequest(r.URL.Query())
	if apiErr := validateRequest(req); apiErr != nil {
		respondAPIError(w, apiErr)
		return
	}

	tab, _ := req.tab()
	items, current, err := h.tracker.Apply(tab, req.apply)
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	respondSuccess(w, items, models.Metadata{
		QueryTimeMS: time.Since(start).Milliseconds(),
		Count:       len(items),
		Tab:         current.String(),
	})
}

// Restaurant returns one restaurant with its annotation.
func (h *Handler) Restaurant(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	detail, err := h.tracker.Restaurant(id)
	if errors.Is(err, tracker.ErrRestaurantNotFound) {
		respondError(w, http.StatusNotFound, CodeNotFound, "Restaurant not found", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load restaurant", err)
		return
	}

	respondSuccess(w, detail, models.Metadata{})
}

// Stats returns the summary counters.
func (h *Handler) Stats(w http.ResponseWriter, _ *http.Request) {
	respondSuccess(w, h.tracker.Stats(), models.Metadata{})
}

// Cuisines returns the distinct cuisines offered by the cuisine filter.
func (h *Handler) Cuisines(w http.ResponseWriter, _ *http.Request) {
	cuisines := h.tracker.Cuisines()
	respondSuccess(w, cuisines, models.Metadata{Count: len(cuisines)})
}

// ResetFilters clears every filter and restores the default sort. The
// current tab is kept.
func (h *Handler) ResetFilters(w http.ResponseWriter, _ *http.Request) {
	criteria, tab := h.tracker.ResetFilters()
	respondSuccess(w, criteria, models.Metadata{Tab: tab.String()})
}
