// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/restotrack/internal/metrics"
	"github.com/tomtom215/restotrack/internal/models"
	"github.com/tomtom215/restotrack/internal/validation"
)

// ErrEmptySource is returned when a catalog source has no content at all.
var ErrEmptySource = errors.New("catalog source is empty")

// Loader reads a catalog document from a source.
type Loader interface {
	// Load fetches and decodes the document.
	Load(ctx context.Context) (*models.CatalogDocument, error)

	// Source names the loader kind for logs and metrics ("file", "http").
	Source() string
}

// Catalog is an ordered, read-only set of restaurants.
type Catalog struct {
	restaurants []models.Restaurant
	index       map[int]int
}

// New builds a catalog from list. The caller must not modify list afterwards.
func New(list []models.Restaurant) *Catalog {
	index := make(map[int]int, len(list))
	for i := range list {
		index[list[i].ID] = i
	}
	return &Catalog{restaurants: list, index: index}
}

// Empty returns a catalog with no restaurants.
func Empty() *Catalog {
	return New(nil)
}

// All returns a copy of the restaurants in source order.
func (c *Catalog) All() []models.Restaurant {
	out := make([]models.Restaurant, len(c.restaurants))
	copy(out, c.restaurants)
	return out
}

// Len returns the number of restaurants.
func (c *Catalog) Len() int {
	return len(c.restaurants)
}

// ByID returns the restaurant with the given id.
func (c *Catalog) ByID(id int) (models.Restaurant, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.Restaurant{}, false
	}
	return c.restaurants[i], true
}

// Cuisines returns the distinct cuisines in order of first appearance.
func (c *Catalog) Cuisines() []string {
	seen := make(map[string]struct{})
	out := []string{}
	for i := range c.restaurants {
		cuisine := c.restaurants[i].Cuisine
		if _, ok := seen[cuisine]; ok {
			continue
		}
		seen[cuisine] = struct{}{}
		out = append(out, cuisine)
	}
	return out
}

// Load reads the catalog from loader. On failure it returns an empty catalog
// and the error; the returned catalog is never nil.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Load(ctx context.Context, loader Loader, logger zerolog.Logger) (*Catalog, error) {
	logger = logger.With().Str("source", loader.Source()).Logger()

	doc, err := loader.Load(ctx)
	if err != nil {
		metrics.RecordCatalogLoad(loader.Source(), 0, err)
		return Empty(), fmt.Errorf("load catalog: %w", err)
	}

	list := make([]models.Restaurant, 0, len(doc.Restaurants))
	seen := make(map[int]struct{}, len(doc.Restaurants))
	for i := range doc.Restaurants {
		r := doc.Restaurants[i]
		if verr := validation.ValidateStruct(&r); verr != nil {
			metrics.CatalogRejectedRecords.Inc()
			logger.Warn().Int("index", i).Int("id", r.ID).Str("reason", verr.Error()).Msg("Skipping invalid restaurant record")
			continue
		}
		if _, dup := seen[r.ID]; dup {
			metrics.CatalogRejectedRecords.Inc()
			logger.Warn().Int("index", i).Int("id", r.ID).Msg("Skipping restaurant with duplicate id")
			continue
		}
		seen[r.ID] = struct{}{}
		list = append(list, r)
	}

	metrics.RecordCatalogLoad(loader.Source(), len(list), nil)
	logger.Info().Int("restaurants", len(list)).Int("skipped", len(doc.Restaurants)-len(list)).Msg("Catalog loaded")

	return New(list), nil
}
