// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package models

// Rating bounds. A rating of zero means the restaurant is unrated.
const (
	MinRating = 0
	MaxRating = 5
)

// Annotation is the user's mutable state for one restaurant.
// The zero value is the default annotation returned for restaurants the user
// has never touched.
type Annotation struct {
	Visited bool   `json:"visited"`
	ToVisit bool   `json:"toVisit"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// IsRated reports whether the user has given a rating.
func (a Annotation) IsRated() bool {
	return a.Rating > 0
}

// Pending reports whether the restaurant is on the want-to-visit list and
// has not been visited yet.
func (a Annotation) Pending() bool {
	return a.ToVisit && !a.Visited
}

// AnnotationPatch is a partial update. Nil fields are left unchanged.
type AnnotationPatch struct {
	Visited *bool   `json:"visited,omitempty"`
	ToVisit *bool   `json:"toVisit,omitempty"`
	Rating  *int    `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=2000"`
}

// Apply merges the patch into a and returns the result.
func (p AnnotationPatch) Apply(a Annotation) Annotation {
	if p.Visited != nil {
		a.Visited = *p.Visited
	}
	if p.ToVisit != nil {
		a.ToVisit = *p.ToVisit
	}
	if p.Rating != nil {
		a.Rating = *p.Rating
	}
	if p.Comment != nil {
		a.Comment = *p.Comment
	}
	return a
}

// IsEmpty reports whether the patch changes nothing.
func (p AnnotationPatch) IsEmpty() bool {
	return p.Visited == nil && p.ToVisit == nil && p.Rating == nil && p.Comment == nil
}

// Bool returns a pointer to v, for building patches.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v, for building patches.
func Int(v int) *int { return &v }

// String returns a pointer to v, for building patches.
func String(v string) *string { return &v }
