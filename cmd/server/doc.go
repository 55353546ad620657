// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

/*
Restotrack is a personal restaurant tracker served over a local HTTP API.

Startup sequence:

 1. Load configuration (defaults, optional YAML file, RESTOTRACK_* environment)
 2. Initialize the zerolog global logger
 3. Open the annotation backend (badger by default, or memory or file) and
    load the store
 4. Load the restaurant catalog from a file or URL with a timeout
 5. Build the recommendation engine and tracker controller
 6. Start the supervisor tree hosting the HTTP server, the badger value log
    garbage collector and, after a failed catalog load, the catalog retry

A catalog that fails to load does not stop the server: it runs with an empty
catalog and GET /api/v1/health reports the error until a retry succeeds
(RESTOTRACK_CATALOG_RETRY_ATTEMPTS, RESTOTRACK_CATALOG_RETRY_INTERVAL).

Usage:

	RESTOTRACK_CATALOG_PATH=./restaurants.json \
	RESTOTRACK_STORAGE_PATH=./data \
	restotrack

Set CONFIG_PATH to read a YAML configuration file instead of config.yaml in
the working directory.

SIGINT and SIGTERM trigger a graceful shutdown bounded by
RESTOTRACK_SERVER_SHUTDOWN_TIMEOUT.
*/
package main
