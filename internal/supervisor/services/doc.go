// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

/*
Package services provides suture.Service wrappers for Restotrack components.

Each wrapper translates a component's own lifecycle into suture's
context-aware Serve pattern and implements fmt.Stringer so supervisor logs
name the service.

Available Services:

  - HTTPServerService: wraps *http.Server, shutting it down gracefully when
    the context is canceled
  - StorageGCService: periodically reclaims badger value log space for the
    annotation backend
  - CatalogLoadService: retries a failed startup catalog load and installs
    the result into the tracker

Each depends on small interfaces (HTTPServer, GarbageCollector,
CatalogInstaller) rather than concrete types, so tests run against mocks.
*/
package services
