// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package recommend

import (
	"fmt"

	"github.com/tomtom215/restotrack/internal/models"
)

// Config contains the scoring weights of the recommendation engine.
type Config struct {
	// LikedThreshold is the minimum rating for a visited restaurant to seed
	// recommendations.
	LikedThreshold int `json:"liked_threshold"`

	// CuisineWeight multiplies the seed rating when cuisines match.
	CuisineWeight float64 `json:"cuisine_weight"`

	// PriceWeight multiplies the seed rating when price ranges match.
	PriceWeight float64 `json:"price_weight"`

	// CategoryWeight multiplies seed rating times shared category count.
	CategoryWeight float64 `json:"category_weight"`

	// DistancePivot is the distance in miles at which the distance term is zero.
	DistancePivot float64 `json:"distance_pivot"`

	// DistanceWeight scales the distance term.
	DistanceWeight float64 `json:"distance_weight"`

	// Limit is the maximum number of recommendations returned.
	Limit int `json:"limit"`
}

// DefaultConfig returns the standard weights.
func DefaultConfig() *Config {
	return &Config{
		LikedThreshold: 4,
		CuisineWeight:  3,
		PriceWeight:    2,
		CategoryWeight: 1,
		DistancePivot:  3,
		DistanceWeight: 0.5,
		Limit:          10,
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.LikedThreshold < models.MinRating+1 || c.LikedThreshold > models.MaxRating {
		return fmt.Errorf("liked_threshold must be between %d and %d, got %d", models.MinRating+1, models.MaxRating, c.LikedThreshold)
	}
	if c.CuisineWeight < 0 || c.PriceWeight < 0 || c.CategoryWeight < 0 || c.DistanceWeight < 0 {
		return fmt.Errorf("weights must be non-negative")
	}
	if c.DistancePivot < 0 {
		return fmt.Errorf("distance_pivot must be non-negative, got %f", c.DistancePivot)
	}
	if c.Limit < 1 {
		return fmt.Errorf("limit must be at least 1, got %d", c.Limit)
	}
	return nil
}
