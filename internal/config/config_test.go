// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr string
	}{
		{name: "defaults", modify: func(c *Config) {}},
		{name: "port zero", modify: func(c *Config) { c.Server.Port = 0 }, wantErr: "SERVER_PORT"},
		{name: "port too high", modify: func(c *Config) { c.Server.Port = 70000 }, wantErr: "SERVER_PORT"},
		{name: "no shutdown timeout", modify: func(c *Config) { c.Server.ShutdownTimeout = 0 }, wantErr: "SHUTDOWN_TIMEOUT"},
		{name: "no catalog source", modify: func(c *Config) { c.Catalog.Path = "" }, wantErr: "is required"},
		{name: "two catalog sources", modify: func(c *Config) { c.Catalog.URL = "https://x.example/r.json" }, wantErr: "mutually exclusive"},
		{
			name:   "catalog url only",
			modify: func(c *Config) { c.Catalog.Path = ""; c.Catalog.URL = "http://localhost:9000/restaurants.json" },
		},
		{
			name:    "catalog url bad scheme",
			modify:  func(c *Config) { c.Catalog.Path = ""; c.Catalog.URL = "ftp://x.example/r.json" },
			wantErr: "CATALOG_URL",
		},
		{name: "catalog timeout", modify: func(c *Config) { c.Catalog.LoadTimeout = 0 }, wantErr: "LOAD_TIMEOUT"},
		{name: "negative catalog retries", modify: func(c *Config) { c.Catalog.RetryAttempts = -1 }, wantErr: "RETRY_ATTEMPTS"},
		{name: "catalog retries without interval", modify: func(c *Config) { c.Catalog.RetryInterval = 0 }, wantErr: "RETRY_INTERVAL"},
		{name: "catalog retries disabled", modify: func(c *Config) { c.Catalog.RetryAttempts = 0; c.Catalog.RetryInterval = 0 }},
		{name: "file backend", modify: func(c *Config) { c.Storage.Backend = "file" }},
		{name: "unknown backend", modify: func(c *Config) { c.Storage.Backend = "redis" }, wantErr: "STORAGE_BACKEND"},
		{name: "badger without path", modify: func(c *Config) { c.Storage.Backend = "badger"; c.Storage.Path = "" }, wantErr: "STORAGE_PATH"},
		{name: "memory without path", modify: func(c *Config) { c.Storage.Backend = "memory"; c.Storage.Path = "" }},
		{name: "negative gc interval", modify: func(c *Config) { c.Storage.GCInterval = -time.Second }, wantErr: "GC_INTERVAL"},
		{name: "gc disabled", modify: func(c *Config) { c.Storage.GCInterval = 0 }},
		{name: "bad threshold", modify: func(c *Config) { c.Recommend.LikedThreshold = 9 }, wantErr: "recommend"},
		{name: "bad limit", modify: func(c *Config) { c.Recommend.Limit = 0 }, wantErr: "recommend"},
		{name: "rate limit zero", modify: func(c *Config) { c.Security.RateLimitReqs = 0 }, wantErr: "RATE_LIMIT_REQUESTS"},
		{name: "rate limit disabled skips bounds", modify: func(c *Config) { c.Security.RateLimitReqs = 0; c.Security.RateLimitDisabled = true }},
		{name: "rate window too short", modify: func(c *Config) { c.Security.RateLimitWindow = time.Millisecond }, wantErr: "RATE_LIMIT_WINDOW"},
		{name: "bad log level", modify: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "LOG_LEVEL"},
		{name: "bad log format", modify: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_AllLogLevels(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error"} {
		cfg := defaultConfig()
		cfg.Logging.Level = level
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() with level %q error = %v", level, err)
		}
	}
}
