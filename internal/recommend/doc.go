// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

// Package recommend implements content-based restaurant recommendations.
//
// # Algorithm
//
// Seeds are the "liked" restaurants: visited and rated at or above
// Config.LikedThreshold. Every unvisited restaurant is a candidate and is
// scored against each seed:
//
//	score += seed.rating * CuisineWeight   (same cuisine, adds a reason)
//	score += seed.rating * PriceWeight     (same price range)
//	score += shared_categories * seed.rating * CategoryWeight
//
// followed by a single distance term per candidate:
//
//	score += (DistancePivot - candidate.distance) * DistanceWeight
//
// Candidates with a score at or below zero are dropped, the rest are sorted
// by score (stable, so ties keep catalog order) and truncated to
// Config.Limit.
//
// Without any seed the result is empty; there is no popularity fallback.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	recs := engine.Recommend(catalog.All(), store.Get)
package recommend
