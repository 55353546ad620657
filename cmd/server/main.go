// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/tomtom215/restotrack/internal/api"
	"github.com/tomtom215/restotrack/internal/config"
	"github.com/tomtom215/restotrack/internal/logging"
	"github.com/tomtom215/restotrack/internal/recommend"
	"github.com/tomtom215/restotrack/internal/supervisor"
	"github.com/tomtom215/restotrack/internal/supervisor/services"
	"github.com/tomtom215/restotrack/internal/tracker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("addr", cfg.Addr()).
		Str("storage_backend", cfg.Storage.Backend).
		Msg("Starting Restotrack")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, backend, err := initStore(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open annotation store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing annotation store")
		}
	}()

	// A failed catalog load leaves an empty catalog; the error is surfaced
	// through the health endpoint until a retry succeeds.
	cat, loader, catalogErr := initCatalog(ctx, cfg)

	engine, err := recommend.NewEngine(cfg.Recommend.EngineConfig(), logging.WithComponent("recommend"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Invalid recommendation configuration")
	}

	controller, err := tracker.NewController(cat, store, engine, logging.WithComponent("tracker"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create tracker")
	}

	controller.SetCatalog(nil, loader.Source(), catalogErr)

	handler := api.NewHandler(controller)
	router := api.NewRouter(handler, cfg.Security)

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (RESTOTRACK_DISABLE_RATE_LIMIT=true)")
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if gc, ok := backend.(services.GarbageCollector); ok && cfg.Storage.GCInterval > 0 {
		tree.AddStorageService(services.NewStorageGCService(gc, cfg.Storage.GCInterval, logging.WithComponent("storage-gc")))
		logging.Info().Dur("interval", cfg.Storage.GCInterval).Msg("Storage garbage collection scheduled")
	}
	if catalogErr != nil && cfg.Catalog.RetryAttempts > 0 {
		tree.AddStorageService(services.NewCatalogLoadService(loader, controller, services.CatalogRetryConfig{
			Attempts: cfg.Catalog.RetryAttempts,
			Interval: cfg.Catalog.RetryInterval,
			Timeout:  cfg.Catalog.LoadTimeout,
		}, logging.WithComponent("catalog")))
		logging.Info().
			Int("attempts", cfg.Catalog.RetryAttempts).
			Dur("interval", cfg.Catalog.RetryInterval).
			Msg("Catalog load will be retried")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	logging.Info().Str("addr", cfg.Addr()).Msg("HTTP server listening")
	errCh := tree.ServeBackground(ctx)

	var treeErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
		treeErr = <-errCh
	case treeErr = <-errCh:
	}
	if treeErr != nil && !errors.Is(treeErr, context.Canceled) {
		logging.Error().Err(treeErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Restotrack stopped")
}
