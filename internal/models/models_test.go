// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package models

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestAnnotationPatch_Apply(t *testing.T) {
	t.Parallel()

	base := Annotation{Visited: true, Rating: 3, Comment: "ok"}

	tests := []struct {
		name  string
		patch AnnotationPatch
		want  Annotation
	}{
		{
			name:  "empty patch leaves annotation unchanged",
			patch: AnnotationPatch{},
			want:  base,
		},
		{
			name:  "rating only",
			patch: AnnotationPatch{Rating: Int(5)},
			want:  Annotation{Visited: true, Rating: 5, Comment: "ok"},
		},
		{
			name:  "explicit false is applied",
			patch: AnnotationPatch{Visited: Bool(false), ToVisit: Bool(true)},
			want:  Annotation{ToVisit: true, Rating: 3, Comment: "ok"},
		},
		{
			name:  "empty comment clears text",
			patch: AnnotationPatch{Comment: String("")},
			want:  Annotation{Visited: true, Rating: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.patch.Apply(base)
			if got != tt.want {
				t.Errorf("Apply() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAnnotationPatch_IsEmpty(t *testing.T) {
	t.Parallel()

	if !(AnnotationPatch{}).IsEmpty() {
		t.Error("zero patch should be empty")
	}
	if (AnnotationPatch{Comment: String("")}).IsEmpty() {
		t.Error("patch with comment pointer should not be empty")
	}
}

func TestAnnotation_Pending(t *testing.T) {
	t.Parallel()

	if !(Annotation{ToVisit: true}).Pending() {
		t.Error("toVisit without visit should be pending")
	}
	if (Annotation{ToVisit: true, Visited: true}).Pending() {
		t.Error("visited restaurant should not be pending")
	}
}

func TestRestaurant_SearchText(t *testing.T) {
	t.Parallel()

	r := Restaurant{Name: "Luigi's", Cuisine: "Italian", Address: "1 Pizza Lane"}
	if got, want := r.SearchText(), "Luigi's Italian 1 Pizza Lane"; got != want {
		t.Errorf("SearchText() = %q, want %q", got, want)
	}
}

func TestRestaurant_SharedCategories(t *testing.T) {
	t.Parallel()

	a := Restaurant{Category: []string{"pasta", "wine", "date-night"}}
	b := Restaurant{Category: []string{"wine", "pasta", "brunch"}}
	if got := a.SharedCategories(b); got != 2 {
		t.Errorf("SharedCategories() = %d, want 2", got)
	}
	if got := a.SharedCategories(Restaurant{}); got != 0 {
		t.Errorf("SharedCategories(empty) = %d, want 0", got)
	}
}

func TestScoredRestaurant_Reason(t *testing.T) {
	t.Parallel()

	withReason := &ScoredRestaurant{Reasons: []string{"Similar to Luigi's (Italian)", "Similar to Roma (Italian)"}}
	if got := withReason.Reason(); got != "Similar to Luigi's (Italian)" {
		t.Errorf("Reason() = %q, want first reason", got)
	}

	without := &ScoredRestaurant{}
	if got := without.Reason(); got != DefaultReason {
		t.Errorf("Reason() = %q, want %q", got, DefaultReason)
	}
}

func TestCatalogDocument_Decode(t *testing.T) {
	t.Parallel()

	raw := `{"restaurants":[{"id":7,"name":"Taco Spot","cuisine":"Mexican","address":"9 Main St","priceRange":"$","distance":0.8,"category":["tacos","casual"]}]}`

	var doc CatalogDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(doc.Restaurants) != 1 {
		t.Fatalf("len(Restaurants) = %d, want 1", len(doc.Restaurants))
	}
	r := doc.Restaurants[0]
	if r.ID != 7 || r.PriceRange != "$" || r.Distance != 0.8 || len(r.Category) != 2 {
		t.Errorf("decoded restaurant = %+v", r)
	}
}
