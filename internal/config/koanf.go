// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/restotrack/internal/recommend"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/restotrack/config.yaml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// EnvPrefix is the prefix of every configuration environment variable.
const EnvPrefix = "RESTOTRACK_"

// defaultConfig returns a Config with all default values.
func defaultConfig() *Config {
	weights := recommend.DefaultConfig()

	return &Config{
		Server: ServerConfig{
			Host:            "127.0.0.1",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Catalog: CatalogConfig{
			Path:          "restaurants.json",
			LoadTimeout:   10 * time.Second,
			RetryAttempts: 20,
			RetryInterval: 15 * time.Second,
		},
		Storage: StorageConfig{
			Backend:    "badger",
			Path:       "data",
			GCInterval: 10 * time.Minute,
		},
		Recommend: RecommendConfig{
			LikedThreshold: weights.LikedThreshold,
			CuisineWeight:  weights.CuisineWeight,
			PriceWeight:    weights.PriceWeight,
			CategoryWeight: weights.CategoryWeight,
			DistancePivot:  weights.DistancePivot,
			DistanceWeight: weights.DistanceWeight,
			Limit:          weights.Limit,
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"http://localhost:8080", "http://127.0.0.1:8080"},
			RateLimitReqs:   300,
			RateLimitWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadWithKoanf loads configuration with layered sources:
//  1. Defaults
//  2. Config file: optional YAML file
//  3. Environment variables (RESTOTRACK_ prefix)
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// RESTOTRACK_SERVER_PORT -> server.port
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first config file found, or "" if none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment names, without the prefix, to config paths.
var envMappings = map[string]string{
	// Server
	"server_host":             "server.host",
	"server_port":             "server.port",
	"server_read_timeout":     "server.read_timeout",
	"server_write_timeout":    "server.write_timeout",
	"server_idle_timeout":     "server.idle_timeout",
	"server_shutdown_timeout": "server.shutdown_timeout",

	// Catalog
	"catalog_path":           "catalog.path",
	"catalog_url":            "catalog.url",
	"catalog_load_timeout":   "catalog.load_timeout",
	"catalog_retry_attempts": "catalog.retry_attempts",
	"catalog_retry_interval": "catalog.retry_interval",

	// Storage
	"storage_backend":     "storage.backend",
	"storage_path":        "storage.path",
	"storage_gc_interval": "storage.gc_interval",

	// Recommendation weights
	"recommend_liked_threshold": "recommend.liked_threshold",
	"recommend_cuisine_weight":  "recommend.cuisine_weight",
	"recommend_price_weight":    "recommend.price_weight",
	"recommend_category_weight": "recommend.category_weight",
	"recommend_distance_pivot":  "recommend.distance_pivot",
	"recommend_distance_weight": "recommend.distance_weight",
	"recommend_limit":           "recommend.limit",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps RESTOTRACK_* variable names to koanf paths.
// Unknown names return "" and are skipped.
//
// Examples:
//   - RESTOTRACK_SERVER_PORT -> server.port
//   - RESTOTRACK_STORAGE_BACKEND -> storage.backend
//   - RESTOTRACK_LOG_LEVEL -> logging.level
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	return envMappings[key]
}
