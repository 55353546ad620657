// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package query

import (
	"strings"

	"github.com/tomtom215/restotrack/internal/models"
)

// Filter returns the restaurants that satisfy every set criterion.
//
//nolint:gocritic // Criteria passed by value, it is small and read-only
func Filter(list []models.Restaurant, c Criteria) []models.Restaurant {
	search := strings.ToLower(c.Search)
	maxDist, hasMax := c.maxDistance()

	out := make([]models.Restaurant, 0, len(list))
	for i := range list {
		r := &list[i]

		if search != "" && !strings.Contains(strings.ToLower(r.SearchText()), search) {
			continue
		}
		if c.Cuisine != "" && r.Cuisine != c.Cuisine {
			continue
		}
		if c.PriceRange != "" && r.PriceRange != c.PriceRange {
			continue
		}
		if hasMax && r.Distance > maxDist {
			continue
		}

		out = append(out, *r)
	}
	return out
}
