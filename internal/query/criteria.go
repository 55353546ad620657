// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package query

import "strings"

// SortKey selects the ordering applied by Sort.
type SortKey string

const (
	// SortByName orders by name using locale-aware collation.
	SortByName SortKey = "name"
	// SortByDistance orders by distance, nearest first.
	SortByDistance SortKey = "distance"
	// SortByRating orders by the user's rating, highest first.
	SortByRating SortKey = "rating"
	// SortByPrice orders by the length of the price symbol, cheapest first.
	SortByPrice SortKey = "price"
)

// DefaultSortKey is the ordering used when none is chosen.
const DefaultSortKey = SortByName

// ParseSortKey converts s to a SortKey. It reports false for unknown keys.
func ParseSortKey(s string) (SortKey, bool) {
	switch key := SortKey(strings.ToLower(strings.TrimSpace(s))); key {
	case SortByName, SortByDistance, SortByRating, SortByPrice:
		return key, true
	default:
		return "", false
	}
}

// Criteria holds the user's filter selections. Empty strings mean unset.
type Criteria struct {
	// Search is matched case-insensitively against name, cuisine and address.
	Search string `json:"search" validate:"max=200"`

	// Cuisine must equal the restaurant cuisine exactly.
	Cuisine string `json:"cuisine"`

	// PriceRange must equal the restaurant price range exactly.
	PriceRange string `json:"priceRange" validate:"omitempty,oneof=$ $$ $$$ $$$$"`

	// MaxDistance is an inclusive upper bound in miles, kept as text the way
	// the user entered it.
	MaxDistance string `json:"maxDistance"`

	// Sort selects the ordering.
	Sort SortKey `json:"sort" validate:"omitempty,oneof=name distance rating price"`
}

// DefaultCriteria returns criteria with no filters and the default sort.
func DefaultCriteria() Criteria {
	return Criteria{Sort: DefaultSortKey}
}

// maxDistance returns the distance bound read from the leading number of
// MaxDistance. ok is false when there is no leading number, in which case it
// imposes no constraint.
func (c Criteria) maxDistance() (float64, bool) {
	if c.MaxDistance == "" {
		return 0, false
	}
	return parseLeadingFloat(c.MaxDistance)
}

// IsZero reports whether no filter is set. Sort is not considered.
func (c Criteria) IsZero() bool {
	return c.Search == "" && c.Cuisine == "" && c.PriceRange == "" && c.MaxDistance == ""
}
