// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package tracker

import (
	"math"
	"strconv"

	"github.com/tomtom215/restotrack/internal/models"
	"github.com/tomtom215/restotrack/internal/query"
	"github.com/tomtom215/restotrack/internal/recommend"
)

// State is everything a view depends on.
type State struct {
	Restaurants []models.Restaurant
	Annotations recommend.AnnotationLookup
	Tab         Tab
	Criteria    query.Criteria
}

// ViewItem is one rendered card: the restaurant, the user's annotation and,
// on the recommendations tab, the recommendation score and reason.
type ViewItem struct {
	models.Restaurant
	Annotation models.Annotation `json:"annotation"`
	Score      *float64          `json:"recommendationScore,omitempty"`
	Reason     string            `json:"recommendationReason,omitempty"`
}

// Stats are the summary counters shown next to the view.
type Stats struct {
	Total   int `json:"total"`
	Visited int `json:"visited"`
	ToVisit int `json:"toVisit"`

	// AverageRating is the mean of non-zero ratings with one decimal, or "-"
	// when nothing is rated.
	AverageRating string `json:"averageRating"`
}

// NoRating is the AverageRating shown when no restaurant is rated.
const NoRating = "-"

// DeriveView selects the tab subset of s.Restaurants, then filters and sorts
// it with s.Criteria. engine is only used on the recommendations tab.
//
//nolint:gocritic // State is passed by value so callers cannot share it
func DeriveView(s State, engine *recommend.Engine) []ViewItem {
	lookup := s.Annotations
	if lookup == nil {
		lookup = func(int) models.Annotation { return models.Annotation{} }
	}

	var list []models.Restaurant
	var scored map[int]models.ScoredRestaurant

	switch s.Tab {
	case TabVisited:
		list = selectRestaurants(s.Restaurants, func(a models.Annotation) bool { return a.Visited }, lookup)
	case TabToVisit:
		list = selectRestaurants(s.Restaurants, models.Annotation.Pending, lookup)
	case TabRecommendations:
		var recs []models.ScoredRestaurant
		if engine != nil {
			recs = engine.Recommend(s.Restaurants, lookup)
		}
		list = make([]models.Restaurant, len(recs))
		scored = make(map[int]models.ScoredRestaurant, len(recs))
		for i := range recs {
			list[i] = recs[i].Restaurant
			scored[recs[i].ID] = recs[i]
		}
	default:
		list = s.Restaurants
	}

	key := s.Criteria.Sort
	if key == "" {
		key = query.DefaultSortKey
	}
	list = query.Sort(query.Filter(list, s.Criteria), key, func(id int) int {
		return lookup(id).Rating
	})

	items := make([]ViewItem, len(list))
	for i := range list {
		items[i] = ViewItem{
			Restaurant: list[i],
			Annotation: lookup(list[i].ID),
		}
		if rec, ok := scored[list[i].ID]; ok {
			score := rec.Score
			items[i].Score = &score
			items[i].Reason = rec.Reason()
		}
	}
	return items
}

// ComputeStats summarizes the annotations of the catalog restaurants.
// Annotations for ids outside restaurants are not counted.
func ComputeStats(restaurants []models.Restaurant, lookup recommend.AnnotationLookup) Stats {
	stats := Stats{Total: len(restaurants), AverageRating: NoRating}

	sum, rated := 0, 0
	for i := range restaurants {
		a := lookup(restaurants[i].ID)
		if a.Visited {
			stats.Visited++
		}
		if a.Pending() {
			stats.ToVisit++
		}
		if a.IsRated() {
			sum += a.Rating
			rated++
		}
	}

	if rated > 0 {
		stats.AverageRating = formatAverage(float64(sum) / float64(rated))
	}
	return stats
}

// formatAverage renders v with one decimal. Values exactly halfway between
// two tenths (x.25, x.75) round up; everything else rounds to nearest.
func formatAverage(v float64) string {
	if q := v * 4; q == math.Trunc(q) && math.Mod(q, 2) == 1 {
		v += 0.05
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func selectRestaurants(list []models.Restaurant, keep func(models.Annotation) bool, lookup recommend.AnnotationLookup) []models.Restaurant {
	out := make([]models.Restaurant, 0, len(list))
	for i := range list {
		if keep(lookup(list[i].ID)) {
			out = append(out, list[i])
		}
	}
	return out
}
