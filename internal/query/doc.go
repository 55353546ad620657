// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

// Package query narrows and orders restaurant lists.
//
// Filter and Sort are pure: they never modify their input slice and return
// a new slice. Every Sort is stable, so restaurants that compare equal keep
// their input order.
package query
