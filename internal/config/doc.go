// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

// Package config loads the server configuration with Koanf v2.
//
// Sources are layered, later ones overriding earlier ones:
//
//  1. Built-in defaults (localhost:8080, restaurants.json, badger storage in ./data)
//  2. An optional YAML file: $CONFIG_PATH, ./config.yaml, ./config.yml or
//     /etc/restotrack/config.yaml
//  3. RESTOTRACK_* environment variables
//
// Example config.yaml:
//
//	server:
//	  port: 9000
//	catalog:
//	  url: https://example.com/restaurants.json
//	  path: ""
//	storage:
//	  backend: badger
//	  path: /var/lib/restotrack
//	recommend:
//	  limit: 5
//	logging:
//	  level: debug
//	  format: console
//
// Environment variables use explicit names, for example
// RESTOTRACK_SERVER_PORT, RESTOTRACK_STORAGE_BACKEND, RESTOTRACK_LOG_LEVEL
// and RESTOTRACK_CORS_ORIGINS (comma-separated). Unknown RESTOTRACK_
// variables are ignored.
//
// The loaded Config is validated before it is returned.
package config
