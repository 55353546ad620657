// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

// Package catalog holds the immutable list of known restaurants.
//
// The catalog is loaded once at startup from a Loader: a JSON file on disk
// (FileLoader) or an HTTP endpoint guarded by a circuit breaker
// (HTTPLoader). Both sources return a document of the form
//
//	{"restaurants": [{"id": 1, "name": "...", ...}, ...]}
//
// Load never fails hard. When the source cannot be read it returns an empty
// catalog together with the error so the caller can report it and keep
// serving. Records that fail validation, and records repeating an earlier
// id, are skipped with a warning.
package catalog
