// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tomtom215/restotrack/internal/annotations"
	"github.com/tomtom215/restotrack/internal/catalog"
	"github.com/tomtom215/restotrack/internal/config"
	"github.com/tomtom215/restotrack/internal/logging"
)

// initStore opens the configured backend and loads the annotation store.
// The backend is returned too so optional maintenance services can use it.
func initStore(ctx context.Context, cfg *config.Config) (*annotations.Store, annotations.Backend, error) {
	backend, err := annotations.OpenBackend(annotations.BackendType(cfg.Storage.Backend), cfg.Storage.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s backend: %w", cfg.Storage.Backend, err)
	}

	store, err := annotations.Open(ctx, backend, logging.WithComponent("annotations"))
	if err != nil {
		if closeErr := backend.Close(); closeErr != nil {
			logging.Error().Err(closeErr).Msg("Error closing annotation backend")
		}
		return nil, nil, err
	}

	logging.Info().
		Str("backend", cfg.Storage.Backend).
		Str("path", cfg.Storage.Path).
		Int("annotations", store.Len()).
		Msg("Annotation store opened")
	return store, backend, nil
}

// newCatalogLoader picks the loader for the configured source. Validation
// guarantees exactly one of path and url is set.
func newCatalogLoader(cfg *config.Config) catalog.Loader {
	if cfg.Catalog.URL != "" {
		client := &http.Client{Timeout: cfg.Catalog.LoadTimeout}
		return catalog.NewHTTPLoader(cfg.Catalog.URL, catalog.WithHTTPClient(client))
	}
	return catalog.NewFileLoader(cfg.Catalog.Path)
}

// initCatalog loads the catalog once. On failure it returns an empty catalog
// with the error so the server can still start; the loader is returned so
// retries share its circuit breaker.
func initCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, catalog.Loader, error) {
	loader := newCatalogLoader(cfg)

	loadCtx, cancel := context.WithTimeout(ctx, cfg.Catalog.LoadTimeout)
	defer cancel()

	cat, err := catalog.Load(loadCtx, loader, logging.WithComponent("catalog"))
	if err != nil {
		logging.Error().Err(err).Str("source", loader.Source()).Msg("Failed to load restaurant catalog, continuing with an empty catalog")
		return cat, loader, err
	}
	return cat, loader, nil
}
