// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

/*
Package models defines the data structures shared by the tracker packages.

Key Components:

  - Restaurant: immutable catalog record loaded from the catalog source
  - CatalogDocument: wire shape of the catalog source ({"restaurants": [...]})
  - Annotation: the user's visited / want-to-visit / rating / comment state
  - AnnotationPatch: partial annotation update with nil meaning "unchanged"
  - ScoredRestaurant: recommendation candidate with score and reasons
  - APIResponse: envelope used by the HTTP adapter

JSON field names follow the catalog file and the persisted annotation
mapping, so both round-trip with data written by earlier versions of the
tracker.
*/
package models
