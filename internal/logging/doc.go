// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

// Package logging provides the process-wide zerolog logger.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("addr", addr).Msg("Server starting")
//	logging.Error().Err(err).Msg("Catalog load failed")
//
// Components receive a zerolog.Logger and add their own component field:
//
//	store, err := annotations.Open(ctx, backend, logging.Logger())
//	// logs carry "component":"annotations"
//
// HTTP handlers use Ctx to attach the request ID set by the API middleware:
//
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("Failed to save annotation")
//
// # Configuration
//
// Level, format and caller are set from the logging section of the
// configuration file or the RESTOTRACK_LOGGING_* environment variables.
//
// # slog Bridge
//
// The supervisor tree logs through sutureslog, which takes an *slog.Logger.
// NewSlogLogger returns one that writes through zerolog, so all output
// shares one format.
package logging
