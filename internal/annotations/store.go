// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package annotations

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/restotrack/internal/metrics"
	"github.com/tomtom215/restotrack/internal/models"
)

// Store owns the annotation mapping. Reads are served from memory; every
// mutation writes the full mapping to the backend before it becomes visible.
type Store struct {
	backend Backend
	logger  zerolog.Logger

	mu   sync.RWMutex
	data map[int]models.Annotation
}

// Open loads the stored mapping from backend. A backend read failure is
// returned; undecodable data is logged and replaced by an empty mapping.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Open(ctx context.Context, backend Backend, logger zerolog.Logger) (*Store, error) {
	if backend == nil {
		return nil, errors.New("annotation store requires a backend")
	}

	s := &Store{
		backend: backend,
		logger:  logger,
		data:    make(map[int]models.Annotation),
	}

	raw, err := backend.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load annotations: %w", err)
	}

	if len(raw) > 0 {
		decoded, err := decode(raw)
		if err != nil {
			s.logger.Warn().Err(err).Int("bytes", len(raw)).Msg("Stored annotations are malformed, starting empty")
		} else {
			s.data = decoded
		}
	}

	metrics.AnnotationCount.Set(float64(len(s.data)))
	s.logger.Debug().Int("annotations", len(s.data)).Msg("Annotation store opened")
	return s, nil
}

// Get returns the annotation for id, or the default annotation when none is stored.
func (s *Store) Get(id int) models.Annotation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[id]
}

// All returns a copy of every stored annotation.
func (s *Store) All() map[int]models.Annotation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[int]models.Annotation, len(s.data))
	for id, a := range s.data {
		out[id] = a
	}
	return out
}

// Len returns the number of stored annotations.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Update merges patch into the current annotation for id and persists the
// full mapping. On a backend error the in-memory mapping is left unchanged.
func (s *Store) Update(ctx context.Context, id int, patch models.AnnotationPatch) (models.Annotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := patch.Apply(s.data[id])

	next := make(map[int]models.Annotation, len(s.data)+1)
	for k, v := range s.data {
		next[k] = v
	}
	next[id] = updated

	raw, err := encode(next)
	if err != nil {
		metrics.AnnotationWrites.WithLabelValues("update", "error").Inc()
		return s.data[id], fmt.Errorf("encode annotations: %w", err)
	}
	if err := s.backend.SetAll(ctx, raw); err != nil {
		metrics.AnnotationWrites.WithLabelValues("update", "error").Inc()
		s.logger.Error().Err(err).Int("restaurant_id", id).Msg("Failed to persist annotation")
		return s.data[id], fmt.Errorf("persist annotations: %w", err)
	}

	s.data = next
	metrics.AnnotationWrites.WithLabelValues("update", "success").Inc()
	metrics.AnnotationCount.Set(float64(len(s.data)))
	return updated, nil
}

// ClearAll removes every annotation and deletes the stored key.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Delete(ctx); err != nil {
		metrics.AnnotationWrites.WithLabelValues("clear", "error").Inc()
		return fmt.Errorf("clear annotations: %w", err)
	}

	cleared := len(s.data)
	s.data = make(map[int]models.Annotation)
	metrics.AnnotationWrites.WithLabelValues("clear", "success").Inc()
	metrics.AnnotationCount.Set(0)
	s.logger.Info().Int("cleared", cleared).Msg("All annotations cleared")
	return nil
}

// Close closes the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// encode serializes the mapping keyed by the decimal restaurant id.
func encode(data map[int]models.Annotation) ([]byte, error) {
	wire := make(map[string]models.Annotation, len(data))
	for id, a := range data {
		wire[strconv.Itoa(id)] = a
	}
	return json.Marshal(wire)
}

// decode parses a stored mapping. Keys must be integers and ratings must be
// within the rating bounds.
func decode(raw []byte) (map[int]models.Annotation, error) {
	var wire map[string]models.Annotation
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("decode annotations: %w", err)
	}

	out := make(map[int]models.Annotation, len(wire))
	for key, a := range wire {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("annotation key %q is not a restaurant id", key)
		}
		if a.Rating < models.MinRating || a.Rating > models.MaxRating {
			return nil, fmt.Errorf("annotation %d has rating %d outside %d..%d", id, a.Rating, models.MinRating, models.MaxRating)
		}
		out[id] = a
	}
	return out, nil
}
