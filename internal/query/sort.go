// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package query

import (
	"sort"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tomtom215/restotrack/internal/models"
)

// RatingFunc returns the user's rating for a restaurant id, 0 when unrated.
type RatingFunc func(id int) int

// Sort returns a stably sorted copy of list. An unknown key returns the
// copy in input order. rating may be nil, in which case every restaurant
// counts as unrated.
func Sort(list []models.Restaurant, key SortKey, rating RatingFunc) []models.Restaurant {
	sorted := make([]models.Restaurant, len(list))
	copy(sorted, list)

	switch key {
	case SortByName:
		// Collators keep internal buffers and are not safe for concurrent use.
		col := collate.New(language.Und)
		sort.SliceStable(sorted, func(i, j int) bool {
			return col.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	case SortByDistance:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Distance < sorted[j].Distance
		})
	case SortByRating:
		if rating == nil {
			break
		}
		ratings := make(map[int]int, len(sorted))
		for _, r := range sorted {
			ratings[r.ID] = rating(r.ID)
		}
		sort.SliceStable(sorted, func(i, j int) bool {
			return ratings[sorted[i].ID] > ratings[sorted[j].ID]
		})
	case SortByPrice:
		sort.SliceStable(sorted, func(i, j int) bool {
			return utf8.RuneCountInString(sorted[i].PriceRange) < utf8.RuneCountInString(sorted[j].PriceRange)
		})
	}

	return sorted
}
