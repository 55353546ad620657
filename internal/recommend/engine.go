// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package recommend

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/restotrack/internal/metrics"
	"github.com/tomtom215/restotrack/internal/models"
)

// AnnotationLookup returns the annotation for a restaurant id. It must
// return the default annotation for unknown ids.
type AnnotationLookup func(id int) models.Annotation

// Engine scores unvisited restaurants against the user's liked ones.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger
}

// NewEngine creates a new recommendation engine. A nil cfg uses DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Engine{
		config: cfg,
		logger: logger,
	}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return *e.config
}

// seed is a liked restaurant together with its rating.
type seed struct {
	restaurant *models.Restaurant
	rating     float64
}

// Recommend returns the top recommendations for catalog, best first.
// The result is empty when no visited restaurant is rated at or above the
// liked threshold.
func (e *Engine) Recommend(catalog []models.Restaurant, lookup AnnotationLookup) []models.ScoredRestaurant {
	start := time.Now()

	var liked []seed
	for i := range catalog {
		a := lookup(catalog[i].ID)
		if a.Visited && a.Rating >= e.config.LikedThreshold {
			liked = append(liked, seed{restaurant: &catalog[i], rating: float64(a.Rating)})
		}
	}
	if len(liked) == 0 {
		metrics.RecordRecommendation(time.Since(start), 0, 0)
		return []models.ScoredRestaurant{}
	}

	scored := make([]models.ScoredRestaurant, 0, len(catalog))
	for i := range catalog {
		candidate := &catalog[i]
		if lookup(candidate.ID).Visited {
			continue
		}

		s := e.score(candidate, liked)
		if s.Score > 0 {
			scored = append(scored, s)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > e.config.Limit {
		scored = scored[:e.config.Limit]
	}

	metrics.RecordRecommendation(time.Since(start), len(liked), len(scored))
	e.logger.Debug().
		Int("liked", len(liked)).
		Int("candidates", len(catalog)).
		Int("results", len(scored)).
		Msg("Recommendations scored")

	return scored
}

// score accumulates the candidate score over every liked restaurant.
func (e *Engine) score(candidate *models.Restaurant, liked []seed) models.ScoredRestaurant {
	var score float64
	reasons := []string{}

	for _, l := range liked {
		if candidate.Cuisine == l.restaurant.Cuisine {
			score += l.rating * e.config.CuisineWeight
			reasons = append(reasons, fmt.Sprintf("Similar to %s (%s)", l.restaurant.Name, l.restaurant.Cuisine))
		}
		if candidate.PriceRange == l.restaurant.PriceRange {
			score += l.rating * e.config.PriceWeight
		}
		score += float64(candidate.SharedCategories(*l.restaurant)) * l.rating * e.config.CategoryWeight
	}

	score += (e.config.DistancePivot - candidate.Distance) * e.config.DistanceWeight

	return models.ScoredRestaurant{
		Restaurant: *candidate,
		Score:      score,
		Reasons:    reasons,
	}
}
