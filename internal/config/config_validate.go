// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package config

import (
	"fmt"
	"net/url"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.validateStorage(); err != nil {
		return err
	}

	if err := c.Recommend.EngineConfig().Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}

	if err := c.validateRateLimits(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("RESTOTRACK_SERVER_PORT must be between 1 and 65535")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("RESTOTRACK_SERVER_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// validateCatalog requires exactly one catalog source.
func (c *Config) validateCatalog() error {
	switch {
	case c.Catalog.Path == "" && c.Catalog.URL == "":
		return fmt.Errorf("one of RESTOTRACK_CATALOG_PATH or RESTOTRACK_CATALOG_URL is required")
	case c.Catalog.Path != "" && c.Catalog.URL != "":
		return fmt.Errorf("RESTOTRACK_CATALOG_PATH and RESTOTRACK_CATALOG_URL are mutually exclusive")
	}

	if c.Catalog.URL != "" {
		u, err := url.Parse(c.Catalog.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("RESTOTRACK_CATALOG_URL must be an http(s) URL, got %q", c.Catalog.URL)
		}
	}

	if c.Catalog.LoadTimeout <= 0 {
		return fmt.Errorf("RESTOTRACK_CATALOG_LOAD_TIMEOUT must be positive")
	}
	if c.Catalog.RetryAttempts < 0 {
		return fmt.Errorf("RESTOTRACK_CATALOG_RETRY_ATTEMPTS must not be negative")
	}
	if c.Catalog.RetryAttempts > 0 && c.Catalog.RetryInterval <= 0 {
		return fmt.Errorf("RESTOTRACK_CATALOG_RETRY_INTERVAL must be positive when retries are enabled")
	}
	return nil
}

// validStorageBackends defines the allowed annotation backends
var validStorageBackends = map[string]bool{
	"memory": true,
	"file":   true,
	"badger": true,
}

// validateStorage validates the annotation backend selection
func (c *Config) validateStorage() error {
	if !validStorageBackends[c.Storage.Backend] {
		return fmt.Errorf("RESTOTRACK_STORAGE_BACKEND must be one of: memory, file, badger")
	}
	if c.Storage.Backend != "memory" && c.Storage.Path == "" {
		return fmt.Errorf("RESTOTRACK_STORAGE_PATH is required for the %s backend", c.Storage.Backend)
	}
	if c.Storage.GCInterval < 0 {
		return fmt.Errorf("RESTOTRACK_STORAGE_GC_INTERVAL must not be negative")
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RESTOTRACK_RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RESTOTRACK_RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("RESTOTRACK_LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("RESTOTRACK_LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
