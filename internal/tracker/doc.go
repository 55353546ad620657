// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

// Package tracker coordinates the catalog, the annotation store and the
// recommendation engine into the views a presentation layer renders.
//
// # View Pipeline
//
// A view is derived from an explicit State value by DeriveView:
//
//  1. Tab selection: all, visited, to-visit (wanted and not yet visited) or
//     recommendations (output of the recommendation engine).
//  2. query.Filter with the current criteria.
//  3. query.Sort with the current sort key.
//
// The recommendations tab goes through the same filter and sort steps, so a
// sort other than the score order reorders recommendations.
//
// # Mutations
//
// The Controller owns the current tab and criteria and is the only writer
// of annotations. It enforces that a restaurant is never both visited and
// on the want-to-visit list:
//
//   - RecordVisit toggles visited and always clears toVisit.
//   - RecordToVisit toggles toVisit only while the restaurant is unvisited.
//   - SaveDetails applies rating, comment and both flags in one write.
//
// Mutations accept any id. An id missing from the catalog operates on the
// default annotation, like any untouched restaurant.
//
// # Thread Safety
//
// Every Controller method holds a single mutex, so concurrent callers see
// the same results as if the calls ran one after another. Apply switches the
// tab, merges criteria and derives the view in one call; use it instead of
// SetTab, SetCriteria and View when other callers may interleave.
//
// SetCatalog swaps in a catalog loaded after startup and records the load
// outcome reported by CatalogStatus.
package tracker
