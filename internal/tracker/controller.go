// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tomtom215/restotrack/internal/annotations"
	"github.com/tomtom215/restotrack/internal/catalog"
	"github.com/tomtom215/restotrack/internal/models"
	"github.com/tomtom215/restotrack/internal/query"
	"github.com/tomtom215/restotrack/internal/recommend"
)

var (
	// ErrRestaurantNotFound is returned when an id is not in the catalog.
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrUnknownTab is returned by SetTab for a tab that does not exist.
	ErrUnknownTab = errors.New("unknown tab")
)

// Details is the full edit applied by SaveDetails.
type Details struct {
	Rating  int    `json:"rating" validate:"min=0,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
	Visited bool   `json:"visited"`
	ToVisit bool   `json:"toVisit"`
}

// Detail is a single restaurant with its annotation.
type Detail struct {
	Restaurant models.Restaurant `json:"restaurant"`
	Annotation models.Annotation `json:"annotation"`
}

// CatalogStatus describes the catalog currently served.
type CatalogStatus struct {
	Source      string
	Err         error
	Restaurants int
}

// Controller owns the current tab and filter criteria and routes every
// annotation change through the store.
type Controller struct {
	mu       sync.Mutex
	catalog  *catalog.Catalog
	store    *annotations.Store
	engine   *recommend.Engine
	logger   zerolog.Logger
	tab      Tab
	criteria query.Criteria

	catalogSource string
	catalogErr    error
}

// NewController creates a controller showing the default tab with no filters.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewController(cat *catalog.Catalog, store *annotations.Store, engine *recommend.Engine, logger zerolog.Logger) (*Controller, error) {
	if cat == nil {
		return nil, errors.New("catalog is required")
	}
	if store == nil {
		return nil, errors.New("annotation store is required")
	}
	if engine == nil {
		return nil, errors.New("recommendation engine is required")
	}

	return &Controller{
		catalog:  cat,
		store:    store,
		engine:   engine,
		logger:   logger,
		tab:      DefaultTab,
		criteria: query.DefaultCriteria(),
	}, nil
}

// State returns a snapshot of the inputs of the current view.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Controller) stateLocked() State {
	return State{
		Restaurants: c.catalog.All(),
		Annotations: c.store.Get,
		Tab:         c.tab,
		Criteria:    c.criteria,
	}
}

// View returns the current tab, filtered and sorted.
func (c *Controller) View() []ViewItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return DeriveView(c.stateLocked(), c.engine)
}

// Apply switches to tab (unless tab is empty), replaces the criteria with
// merge(current) and returns the resulting view with the tab it was derived
// for. The whole sequence runs under one lock so concurrent callers observe
// each other's changes in some sequential order.
func (c *Controller) Apply(tab Tab, merge func(query.Criteria) query.Criteria) ([]ViewItem, Tab, error) {
	if tab != "" {
		parsed, ok := ParseTab(string(tab))
		if !ok {
			return nil, "", fmt.Errorf("%w: %q", ErrUnknownTab, tab)
		}
		tab = parsed
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if tab != "" {
		c.tab = tab
	}
	if merge != nil {
		cr := merge(c.criteria)
		if cr.Sort == "" {
			cr.Sort = query.DefaultSortKey
		}
		c.criteria = cr
	}
	return DeriveView(c.stateLocked(), c.engine), c.tab, nil
}

// Recommendations returns the raw recommendation list in score order,
// without the current filters.
func (c *Controller) Recommendations() []models.ScoredRestaurant {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Recommend(c.catalog.All(), c.store.Get)
}

// Tab returns the current tab.
func (c *Controller) Tab() Tab {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tab
}

// SetTab switches the current tab.
func (c *Controller) SetTab(t Tab) error {
	parsed, ok := ParseTab(string(t))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTab, t)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.tab = parsed
	return nil
}

// Criteria returns the current filter criteria.
func (c *Controller) Criteria() query.Criteria {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.criteria
}

// SetCriteria replaces the filter criteria. An empty sort key selects the
// default sort.
//
//nolint:gocritic // Criteria is a small value type
func (c *Controller) SetCriteria(cr query.Criteria) {
	if cr.Sort == "" {
		cr.Sort = query.DefaultSortKey
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria = cr
}

// ResetFilters clears every filter and restores the default sort.
// The current tab is kept and returned with the new criteria.
func (c *Controller) ResetFilters() (query.Criteria, Tab) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria = query.DefaultCriteria()
	return c.criteria, c.tab
}

// Cuisines returns the distinct catalog cuisines for the cuisine filter.
func (c *Controller) Cuisines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalog.Cuisines()
}

// Len returns the number of catalog restaurants.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalog.Len()
}

// SetCatalog records the outcome of a catalog load. A nil cat keeps the
// current catalog, so a failed reload never discards loaded restaurants.
func (c *Controller) SetCatalog(cat *catalog.Catalog, source string, loadErr error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cat != nil {
		c.catalog = cat
	}
	c.catalogSource = source
	c.catalogErr = loadErr
}

// CatalogStatus returns the source, last load error and size of the catalog.
func (c *Controller) CatalogStatus() CatalogStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CatalogStatus{
		Source:      c.catalogSource,
		Err:         c.catalogErr,
		Restaurants: c.catalog.Len(),
	}
}

// Restaurant returns the catalog entry for id with its annotation.
func (c *Controller) Restaurant(id int) (Detail, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	r, ok := c.catalog.ByID(id)
	if !ok {
		return Detail{}, fmt.Errorf("%w: id %d", ErrRestaurantNotFound, id)
	}
	return Detail{Restaurant: r, Annotation: c.store.Get(id)}, nil
}

// Annotation returns the annotation for id, or the default one.
func (c *Controller) Annotation(id int) models.Annotation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Get(id)
}

// Stats returns the summary counters over the catalog.
func (c *Controller) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ComputeStats(c.catalog.All(), c.store.Get)
}

// RecordVisit toggles the visited flag and always clears toVisit.
func (c *Controller) RecordVisit(ctx context.Context, id int) (models.Annotation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.store.Get(id)
	return c.update(ctx, id, "visit", models.AnnotationPatch{
		Visited: models.Bool(!current.Visited),
		ToVisit: models.Bool(false),
	})
}

// RecordToVisit toggles the want-to-visit flag. It does nothing for a
// visited restaurant.
func (c *Controller) RecordToVisit(ctx context.Context, id int) (models.Annotation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.store.Get(id)
	if current.Visited {
		return current, nil
	}
	return c.update(ctx, id, "to_visit", models.AnnotationPatch{
		ToVisit: models.Bool(!current.ToVisit),
	})
}

// SetRating sets the rating, clamped to 0..5. Zero clears it.
func (c *Controller) SetRating(ctx context.Context, id, rating int) (models.Annotation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.update(ctx, id, "rating", models.AnnotationPatch{
		Rating: models.Int(clampRating(rating)),
	})
}

// SetComment stores text as the comment, unchanged.
func (c *Controller) SetComment(ctx context.Context, id int, text string) (models.Annotation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.update(ctx, id, "comment", models.AnnotationPatch{
		Comment: models.String(text),
	})
}

// SaveDetails applies a full edit in one write. The comment is trimmed, the
// rating clamped, and toVisit is dropped when visited is set.
//
//nolint:gocritic // Details is a small value type
func (c *Controller) SaveDetails(ctx context.Context, id int, d Details) (models.Annotation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.update(ctx, id, "details", models.AnnotationPatch{
		Rating:  models.Int(clampRating(d.Rating)),
		Comment: models.String(strings.TrimSpace(d.Comment)),
		Visited: models.Bool(d.Visited),
		ToVisit: models.Bool(d.ToVisit && !d.Visited),
	})
}

// ClearAll removes every annotation.
func (c *Controller) ClearAll(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.ClearAll(ctx); err != nil {
		return fmt.Errorf("clear annotations: %w", err)
	}
	c.logger.Info().Msg("All annotations cleared")
	return nil
}

func (c *Controller) update(ctx context.Context, id int, action string, patch models.AnnotationPatch) (models.Annotation, error) {
	a, err := c.store.Update(ctx, id, patch)
	if err != nil {
		c.logger.Error().Err(err).Int("id", id).Str("action", action).Msg("Failed to save annotation")
		return c.store.Get(id), fmt.Errorf("%s restaurant %d: %w", action, id, err)
	}

	c.logger.Debug().Int("id", id).Str("action", action).
		Bool("visited", a.Visited).Bool("to_visit", a.ToVisit).Int("rating", a.Rating).
		Msg("Annotation updated")
	return a, nil
}

func clampRating(v int) int {
	switch {
	case v < models.MinRating:
		return models.MinRating
	case v > models.MaxRating:
		return models.MaxRating
	default:
		return v
	}
}
