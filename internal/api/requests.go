// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package api

import (
	"net/url"
	"strings"

	"github.com/tomtom215/restotrack/internal/query"
	"github.com/tomtom215/restotrack/internal/tracker"
)

// List query parameter names.
const (
	paramTab      = "tab"
	paramSearch   = "search"
	paramCuisine  = "cuisine"
	paramPrice    = "price"
	paramDistance = "distance"
	paramSort     = "sort"
)

// RestaurantsRequest holds the list query parameters. A field is only
// applied when its parameter is present, so a client can change one control
// at a time the way the browser UI does. An empty value clears the control.
type RestaurantsRequest struct {
	Tab         string `json:"tab" validate:"omitempty,oneof=all visited to-visit recommendations"`
	Search      string `json:"search" validate:"max=200"`
	Cuisine     string `json:"cuisine" validate:"max=100"`
	PriceRange  string `json:"price" validate:"omitempty,oneof=$ $$ $$$ $$$$"`
	MaxDistance string `json:"distance" validate:"max=32"`
	Sort        string `json:"sort" validate:"omitempty,oneof=name distance rating price"`

	present map[string]bool
}

// parseRestaurantsRequest reads the list parameters from q. Tab and sort are
// lowercased so they match the canonical names.
func parseRestaurantsRequest(q url.Values) *RestaurantsRequest {
	req := &RestaurantsRequest{present: make(map[string]bool)}
	get := func(key string) string {
		if q.Has(key) {
			req.present[key] = true
		}
		return strings.TrimSpace(q.Get(key))
	}
	req.Tab = strings.ToLower(get(paramTab))
	req.Search = get(paramSearch)
	req.Cuisine = get(paramCuisine)
	req.PriceRange = get(paramPrice)
	req.MaxDistance = get(paramDistance)
	req.Sort = strings.ToLower(get(paramSort))
	return req
}

// apply merges the present parameters into the current criteria.
func (req *RestaurantsRequest) apply(cr query.Criteria) query.Criteria {
	if req.present[paramSearch] {
		cr.Search = req.Search
	}
	if req.present[paramCuisine] {
		cr.Cuisine = req.Cuisine
	}
	if req.present[paramPrice] {
		cr.PriceRange = req.PriceRange
	}
	if req.present[paramDistance] {
		cr.MaxDistance = req.MaxDistance
	}
	if req.present[paramSort] {
		cr.Sort = query.SortKey(req.Sort)
	}
	return cr
}

// tab returns the requested tab, if a non-empty one was given.
func (req *RestaurantsRequest) tab() (tracker.Tab, bool) {
	if req.Tab == "" {
		return "", false
	}
	return tracker.ParseTab(req.Tab)
}

// RatingRequest is the body of PUT /restaurants/{id}/rating.
type RatingRequest struct {
	Rating *int `json:"rating" validate:"required,min=0,max=5"`
}

// CommentRequest is the body of PUT /restaurants/{id}/comment.
type CommentRequest struct {
	Comment *string `json:"comment" validate:"required,max=2000"`
}
