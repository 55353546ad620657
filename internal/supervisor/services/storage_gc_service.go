// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// GarbageCollector is satisfied by *annotations.BadgerBackend.
type GarbageCollector interface {
	RunGC() error
}

// maxConsecutiveGCFailures is how many failed runs in a row are tolerated
// before Serve returns an error and lets the supervisor restart it.
const maxConsecutiveGCFailures = 3

// StorageGCService runs the backend garbage collector on a fixed interval.
//
//	if gc, ok := backend.(services.GarbageCollector); ok {
//	    tree.AddStorageService(services.NewStorageGCService(gc, cfg.Storage.GCInterval, logger))
//	}
type StorageGCService struct {
	gc       GarbageCollector
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewStorageGCService creates a collector service. A non-positive interval
// falls back to ten minutes.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStorageGCService(gc GarbageCollector, interval time.Duration, logger zerolog.Logger) *StorageGCService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &StorageGCService{
		gc:       gc,
		interval: interval,
		logger:   logger,
		name:     "storage-gc",
	}
}

// Serve implements suture.Service. Individual failures are logged; only
// repeated failures are returned to the supervisor.
func (s *StorageGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	failures := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			start := time.Now()
			err := s.gc.RunGC()
			if err == nil {
				failures = 0
				s.logger.Debug().Dur("duration", time.Since(start)).Msg("Storage garbage collection complete")
				continue
			}

			failures++
			s.logger.Warn().Err(err).Int("consecutive_failures", failures).Msg("Storage garbage collection failed")
			if failures >= maxConsecutiveGCFailures {
				return fmt.Errorf("storage gc failed %d times in a row: %w", failures, err)
			}
		}
	}
}

// String implements fmt.Stringer for logging.
func (s *StorageGCService) String() string {
	return s.name
}
