// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package config

import (
	"time"

	"github.com/tomtom215/restotrack/internal/recommend"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Storage   StorageConfig   `koanf:"storage"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// CatalogConfig selects the catalog source. Exactly one of Path and URL is set.
type CatalogConfig struct {
	Path        string        `koanf:"path"` // JSON file on disk
	URL         string        `koanf:"url"`  // http(s) endpoint returning the same document
	LoadTimeout time.Duration `koanf:"load_timeout"`

	// RetryAttempts is how many more loads are tried after a failed startup
	// load. Zero disables retrying.
	RetryAttempts int           `koanf:"retry_attempts"`
	RetryInterval time.Duration `koanf:"retry_interval"`
}

// StorageConfig selects the annotation backend.
type StorageConfig struct {
	Backend string `koanf:"backend"` // memory, file or badger
	Path    string `koanf:"path"`    // directory for file and badger

	// GCInterval is how often the badger value log is garbage collected.
	// Zero disables the collector. Ignored by other backends.
	GCInterval time.Duration `koanf:"gc_interval"`
}

// RecommendConfig holds the recommendation weights.
type RecommendConfig struct {
	LikedThreshold int     `koanf:"liked_threshold"`
	CuisineWeight  float64 `koanf:"cuisine_weight"`
	PriceWeight    float64 `koanf:"price_weight"`
	CategoryWeight float64 `koanf:"category_weight"`
	DistancePivot  float64 `koanf:"distance_pivot"`
	DistanceWeight float64 `koanf:"distance_weight"`
	Limit          int     `koanf:"limit"`
}

// EngineConfig converts the section to the engine's configuration.
func (r RecommendConfig) EngineConfig() *recommend.Config {
	return &recommend.Config{
		LikedThreshold: r.LikedThreshold,
		CuisineWeight:  r.CuisineWeight,
		PriceWeight:    r.PriceWeight,
		CategoryWeight: r.CategoryWeight,
		DistancePivot:  r.DistancePivot,
		DistanceWeight: r.DistanceWeight,
		Limit:          r.Limit,
	}
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load is the entry point for loading configuration.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
