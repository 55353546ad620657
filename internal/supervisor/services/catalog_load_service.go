// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/restotrack/internal/catalog"
)

// CatalogInstaller receives catalog load outcomes. *tracker.Controller
// satisfies it.
type CatalogInstaller interface {
	SetCatalog(cat *catalog.Catalog, source string, loadErr error)
}

// CatalogRetryConfig bounds the retry loop.
type CatalogRetryConfig struct {
	Attempts int           // loads tried after the failed startup load
	Interval time.Duration // wait before each attempt
	Timeout  time.Duration // per-attempt load timeout
}

// CatalogLoadService retries a failed startup catalog load. It installs
// every outcome into the target so the health endpoint reports the latest
// error, and stops for good after the first success or the last attempt.
//
// Reusing the startup loader matters for HTTP sources: its circuit breaker
// has already counted the startup failure, so a source that keeps failing
// trips it and later attempts are rejected without a request until the
// breaker lets a trial request through.
type CatalogLoadService struct {
	loader catalog.Loader
	target CatalogInstaller
	cfg    CatalogRetryConfig
	logger zerolog.Logger
	name   string
}

// NewCatalogLoadService creates the retry service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogLoadService(loader catalog.Loader, target CatalogInstaller, cfg CatalogRetryConfig, logger zerolog.Logger) *CatalogLoadService {
	if cfg.Interval <= 0 {
		cfg.Interval = 15 * time.Second
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &CatalogLoadService{
		loader: loader,
		target: target,
		cfg:    cfg,
		logger: logger,
		name:   "catalog-loader",
	}
}

// Serve implements suture.Service. It returns suture.ErrDoNotRestart once
// retrying is over, whatever the outcome.
func (s *CatalogLoadService) Serve(ctx context.Context) error {
	timer := time.NewTimer(s.cfg.Interval)
	defer timer.Stop()

	for attempt := 1; attempt <= s.cfg.Attempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		cat, err := s.load(ctx)
		if err == nil {
			s.target.SetCatalog(cat, s.loader.Source(), nil)
			s.logger.Info().Int("attempt", attempt).Int("restaurants", cat.Len()).Msg("Catalog loaded after retry")
			return suture.ErrDoNotRestart
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		s.target.SetCatalog(nil, s.loader.Source(), err)
		s.logger.Warn().Err(err).Int("attempt", attempt).Int("max_attempts", s.cfg.Attempts).Msg("Catalog retry failed")
		timer.Reset(s.cfg.Interval)
	}

	s.logger.Error().Int("attempts", s.cfg.Attempts).Msg("Giving up on catalog load, serving an empty catalog")
	return suture.ErrDoNotRestart
}

func (s *CatalogLoadService) load(ctx context.Context) (*catalog.Catalog, error) {
	loadCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()
	return catalog.Load(loadCtx, s.loader, s.logger)
}

// String implements fmt.Stringer for logging.
func (s *CatalogLoadService) String() string {
	return s.name
}
