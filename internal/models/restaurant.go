// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package models

import "strings"

// Restaurant is a catalog record. Records are read-only for the lifetime of
// the process; nothing in the tracker mutates them after loading.
type Restaurant struct {
	// ID is the unique catalog identifier.
	ID int `json:"id" validate:"gt=0"`

	// Name is the display name.
	Name string `json:"name" validate:"required"`

	// Cuisine is the cuisine label (e.g. "Italian").
	Cuisine string `json:"cuisine"`

	// Address is the street address.
	Address string `json:"address"`

	// PriceRange is the price tier written as dollar signs ("$" to "$$$$").
	PriceRange string `json:"priceRange" validate:"omitempty,oneof=$ $$ $$$ $$$$"`

	// Distance is the distance from the user in miles.
	Distance float64 `json:"distance" validate:"gte=0"`

	// Category is the set of tags attached to the restaurant.
	Category []string `json:"category"`
}

// SearchText returns the text matched by free-text search: name, cuisine and
// address joined by single spaces.
//
//nolint:gocritic // value receiver keeps Restaurant immutable
func (r Restaurant) SearchText() string {
	return r.Name + " " + r.Cuisine + " " + r.Address
}

// SharedCategories counts the tags present in both restaurants.
//
//nolint:gocritic // value receiver keeps Restaurant immutable
func (r Restaurant) SharedCategories(other Restaurant) int {
	if len(r.Category) == 0 || len(other.Category) == 0 {
		return 0
	}
	theirs := make(map[string]struct{}, len(other.Category))
	for _, c := range other.Category {
		theirs[c] = struct{}{}
	}
	shared := 0
	for _, c := range r.Category {
		if _, ok := theirs[c]; ok {
			shared++
		}
	}
	return shared
}

// CatalogDocument is the wire shape of a catalog source.
type CatalogDocument struct {
	Restaurants []Restaurant `json:"restaurants"`
}

// ScoredRestaurant is a recommendation candidate with its accumulated score.
type ScoredRestaurant struct {
	Restaurant

	// Score is the accumulated recommendation score. Higher is more relevant.
	Score float64 `json:"recommendationScore"`

	// Reasons lists the "Similar to ..." explanations in the order they were found.
	Reasons []string `json:"recommendationReasons"`
}

// DefaultReason is shown when a recommendation has no cuisine-based reason.
const DefaultReason = "Based on your preferences"

// Reason returns the primary explanation for the recommendation.
func (s *ScoredRestaurant) Reason() string {
	for _, r := range s.Reasons {
		if strings.TrimSpace(r) != "" {
			return r
		}
	}
	return DefaultReason
}
