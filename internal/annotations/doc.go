// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

// Package annotations owns the user's per-restaurant annotations.
//
// The Store keeps the whole annotation mapping in memory and writes the full
// mapping to a Backend after every mutation. A Backend is a single-key
// key-value resource: the mapping lives under StorageKey as a JSON object
// keyed by restaurant id (as a string).
//
// # Backends
//
//   - memory: process-local, used in tests and for ephemeral sessions
//   - file: a JSON file on disk
//   - badger: BadgerDB for durable storage
//
// # Corrupt Data
//
// If the stored value cannot be decoded, Open logs a warning and starts from
// an empty mapping. The corrupt value stays in the backend until the next
// write replaces it.
package annotations
