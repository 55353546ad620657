// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package tracker

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/restotrack/internal/annotations"
	"github.com/tomtom215/restotrack/internal/catalog"
	"github.com/tomtom215/restotrack/internal/models"
	"github.com/tomtom215/restotrack/internal/query"
	"github.com/tomtom215/restotrack/internal/recommend"
)

// writeFailBackend fails writes once failWrites is set.
type writeFailBackend struct {
	*annotations.MemoryBackend
	failWrites bool
}

var errDiskFull = errors.New("disk full")

func (b *writeFailBackend) SetAll(ctx context.Context, data []byte) error {
	if b.failWrites {
		return errDiskFull
	}
	return b.MemoryBackend.SetAll(ctx, data)
}

func (b *writeFailBackend) Delete(ctx context.Context) error {
	if b.failWrites {
		return errDiskFull
	}
	return b.MemoryBackend.Delete(ctx)
}

func sampleRestaurants() []models.Restaurant {
	return []models.Restaurant{
		{ID: 1, Name: "Luigi's", Cuisine: "Italian", Address: "1 Main St", PriceRange: "$$", Distance: 1, Category: []string{"pasta"}},
		{ID: 2, Name: "Bella", Cuisine: "Italian", Address: "12 Pizza Lane", PriceRange: "$$", Distance: 2, Category: []string{"pasta"}},
		{ID: 3, Name: "Sakura", Cuisine: "Japanese", Address: "9 Elm St", PriceRange: "$$$", Distance: 0.5, Category: []string{"sushi"}},
		{ID: 4, Name: "El Toro", Cuisine: "Mexican", Address: "4 Oak Ave", PriceRange: "$", Distance: 4, Category: []string{"tacos"}},
	}
}

func newTestController(t *testing.T, backend annotations.Backend) *Controller {
	t.Helper()
	if backend == nil {
		backend = annotations.NewMemoryBackend()
	}
	store, err := annotations.Open(context.Background(), backend, zerolog.Nop())
	if err != nil {
		t.Fatalf("annotations.Open() error = %v", err)
	}
	engine, err := recommend.NewEngine(nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("recommend.NewEngine() error = %v", err)
	}
	c, err := NewController(catalog.New(sampleRestaurants()), store, engine, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewController() error = %v", err)
	}
	return c
}

func viewIDs(items []ViewItem) []int {
	out := make([]int, len(items))
	for i := range items {
		out[i] = items[i].ID
	}
	return out
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewController_RequiresDependencies(t *testing.T) {
	store, _ := annotations.Open(context.Background(), annotations.NewMemoryBackend(), zerolog.Nop())
	engine, _ := recommend.NewEngine(nil, zerolog.Nop())
	cat := catalog.Empty()

	tests := []struct {
		name   string
		cat    *catalog.Catalog
		store  *annotations.Store
		engine *recommend.Engine
	}{
		{name: "no catalog", store: store, engine: engine},
		{name: "no store", cat: cat, engine: engine},
		{name: "no engine", cat: cat, store: store},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewController(tt.cat, tt.store, tt.engine, zerolog.Nop()); err == nil {
				t.Error("NewController() error = nil, want error")
			}
		})
	}
}

func TestController_Defaults(t *testing.T) {
	c := newTestController(t, nil)

	if c.Tab() != TabAll {
		t.Errorf("Tab() = %q, want all", c.Tab())
	}
	if c.Criteria() != query.DefaultCriteria() {
		t.Errorf("Criteria() = %+v, want defaults", c.Criteria())
	}
	for _, r := range sampleRestaurants() {
		if got := c.Annotation(r.ID); got != (models.Annotation{}) {
			t.Errorf("Annotation(%d) = %+v, want default", r.ID, got)
		}
	}

	// Default sort is by name.
	if got := viewIDs(c.View()); !equalIDs(got, []int{2, 4, 1, 3}) {
		t.Errorf("View() ids = %v, want [2 4 1 3]", got)
	}
}

func TestController_RecordVisit(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, nil)

	if _, err := c.RecordToVisit(ctx, 1); err != nil {
		t.Fatalf("RecordToVisit() error = %v", err)
	}

	a, err := c.RecordVisit(ctx, 1)
	if err != nil {
		t.Fatalf("RecordVisit() error = %v", err)
	}
	if !a.Visited || a.ToVisit {
		t.Errorf("after first visit = %+v, want visited and not toVisit", a)
	}

	a, err = c.RecordVisit(ctx, 1)
	if err != nil {
		t.Fatalf("RecordVisit() error = %v", err)
	}
	if a.Visited || a.ToVisit {
		t.Errorf("after second visit = %+v, want neither flag", a)
	}
}

func TestController_RecordToVisit(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, nil)

	a, _ := c.RecordToVisit(ctx, 2)
	if !a.ToVisit {
		t.Fatalf("RecordToVisit() = %+v, want toVisit", a)
	}
	a, _ = c.RecordToVisit(ctx, 2)
	if a.ToVisit {
		t.Fatalf("second RecordToVisit() = %+v, want toVisit cleared", a)
	}

	// Visited restaurants ignore the want-to-visit toggle.
	_, _ = c.RecordVisit(ctx, 3)
	a, err := c.RecordToVisit(ctx, 3)
	if err != nil {
		t.Fatalf("RecordToVisit() error = %v", err)
	}
	if !a.Visited || a.ToVisit {
		t.Errorf("RecordToVisit() on visited = %+v, want unchanged", a)
	}
}

func TestController_NeverVisitedAndToVisit(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, nil)

	ops := []func(int) (models.Annotation, error){
		func(id int) (models.Annotation, error) { return c.RecordVisit(ctx, id) },
		func(id int) (models.Annotation, error) { return c.RecordToVisit(ctx, id) },
	}
	// Walk a fixed pseudo-random sequence of toggles over two ids.
	seq := []int{1, 1, 0, 1, 0, 0, 1, 1, 1, 0, 1, 0, 0, 0, 1, 1}
	for step, op := range seq {
		id := 1 + step%2
		a, err := ops[op](id)
		if err != nil {
			t.Fatalf("step %d: error = %v", step, err)
		}
		if a.Visited && a.ToVisit {
			t.Fatalf("step %d: annotation %d is both visited and toVisit", step, id)
		}
	}
}

func TestController_SetRating(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, nil)

	tests := []struct {
		in   int
		want int
	}{
		{in: 3, want: 3},
		{in: 0, want: 0},
		{in: 5, want: 5},
		{in: 9, want: 5},
		{in: -2, want: 0},
	}
	for _, tt := range tests {
		a, err := c.SetRating(ctx, 1, tt.in)
		if err != nil {
			t.Fatalf("SetRating(%d) error = %v", tt.in, err)
		}
		if a.Rating != tt.want {
			t.Errorf("SetRating(%d) rating = %d, want %d", tt.in, a.Rating, tt.want)
		}
	}
}

func TestController_SetComment(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, nil)

	a, err := c.SetComment(ctx, 4, "  great tacos  ")
	if err != nil {
		t.Fatalf("SetComment() error = %v", err)
	}
	if a.Comment != "  great tacos  " {
		t.Errorf("Comment = %q, want text stored as given", a.Comment)
	}
	if a.Visited || a.ToVisit || a.Rating != 0 {
		t.Errorf("SetComment() changed other fields: %+v", a)
	}
}

func TestController_SaveDetails(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		in   Details
		want models.Annotation
	}{
		{
			name: "full edit",
			in:   Details{Rating: 4, Comment: "  lovely  ", Visited: true},
			want: models.Annotation{Visited: true, Rating: 4, Comment: "lovely"},
		},
		{
			name: "visited wins over toVisit",
			in:   Details{Visited: true, ToVisit: true},
			want: models.Annotation{Visited: true},
		},
		{
			name: "want to visit",
			in:   Details{ToVisit: true, Comment: "later"},
			want: models.Annotation{ToVisit: true, Comment: "later"},
		},
		{
			name: "rating clamped",
			in:   Details{Rating: 11},
			want: models.Annotation{Rating: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(t, nil)
			_, _ = c.SetComment(ctx, 2, "old")

			got, err := c.SaveDetails(ctx, 2, tt.in)
			if err != nil {
				t.Fatalf("SaveDetails() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("SaveDetails() = %+v, want %+v", got, tt.want)
			}
			if stored := c.Annotation(2); stored != tt.want {
				t.Errorf("stored = %+v, want %+v", stored, tt.want)
			}
		})
	}
}

func TestController_UnknownIDIsTotal(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, nil)

	a, err := c.RecordVisit(ctx, 999)
	if err != nil {
		t.Fatalf("RecordVisit(999) error = %v", err)
	}
	if !a.Visited {
		t.Errorf("RecordVisit(999) = %+v, want visited", a)
	}
	// Not in the catalog, so not counted.
	if s := c.Stats(); s.Visited != 0 {
		t.Errorf("Stats().Visited = %d, want 0", s.Visited)
	}
}

func TestController_Tabs(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, nil)

	_, _ = c.RecordVisit(ctx, 1)
	_, _ = c.SetRating(ctx, 1, 5)
	_, _ = c.RecordToVisit(ctx, 3)
	_, _ = c.RecordToVisit(ctx, 4)
	_, _ = c.RecordVisit(ctx, 4)

	tests := []struct {
		tab  Tab
		want []int
	}{
		{tab: TabAll, want: []int{2, 4, 1, 3}},
		{tab: TabVisited, want: []int{4, 1}},
		{tab: TabToVisit, want: []int{3}},
		{tab: TabRecommendations, want: []int{2, 3}},
	}
	for _, tt := range tests {
		t.Run(string(tt.tab), func(t *testing.T) {
			if err := c.SetTab(tt.tab); err != nil {
				t.Fatalf("SetTab() error = %v", err)
			}
			if got := viewIDs(c.View()); !equalIDs(got, tt.want) {
				t.Errorf("View() ids = %v, want %v", got, tt.want)
			}
		})
	}

	if err := c.SetTab("favorites"); !errors.Is(err, ErrUnknownTab) {
		t.Errorf("SetTab(favorites) error = %v, want ErrUnknownTab", err)
	}
	if c.Tab() != TabRecommendations {
		t.Errorf("Tab() = %q after invalid SetTab, want recommendations", c.Tab())
	}
}

func TestController_RecommendationItems(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, nil)

	_, _ = c.SaveDetails(ctx, 1, Details{Visited: true, Rating: 5})
	_ = c.SetTab(TabRecommendations)

	// Sakura scores only its distance bonus; El Toro is too far and dropped.
	items := c.View()
	if got := viewIDs(items); !equalIDs(got, []int{2, 3}) {
		t.Fatalf("View() ids = %v, want [2 3]", got)
	}
	if items[0].Score == nil || *items[0].Score != 30.5 {
		t.Errorf("Score = %v, want 30.5", items[0].Score)
	}
	if items[0].Reason != "Similar to Luigi's (Italian)" {
		t.Errorf("Reason = %q", items[0].Reason)
	}
	if items[1].Score == nil || *items[1].Score != 1.25 {
		t.Errorf("Score = %v, want 1.25", items[1].Score)
	}
	if items[1].Reason != models.DefaultReason {
		t.Errorf("Reason = %q, want default", items[1].Reason)
	}

	recs := c.Recommendations()
	if len(recs) != 2 || recs[0].ID != 2 || recs[1].ID != 3 {
		t.Errorf("Recommendations() = %v, want [2 3]", recs)
	}

	_ = c.SetTab(TabAll)
	for _, item := range c.View() {
		if item.Score != nil {
			t.Errorf("all tab item %d has a score", item.ID)
		}
	}
}

func TestController_RecommendationsAreFilteredAndSorted(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, nil)

	// Sakura is liked, so the other three are scored.
	_, _ = c.SaveDetails(ctx, 3, Details{Visited: true, Rating: 5})
	_ = c.SetTab(TabRecommendations)

	// Score order is by distance bonus alone: 1, 2, then 4 is dropped.
	c.SetCriteria(query.Criteria{Sort: query.SortByDistance})
	if got := viewIDs(c.View()); !equalIDs(got, []int{1, 2}) {
		t.Fatalf("distance sort ids = %v, want [1 2]", got)
	}

	c.SetCriteria(query.Criteria{Sort: query.SortByName})
	if got := viewIDs(c.View()); !equalIDs(got, []int{2, 1}) {
		t.Errorf("name sort ids = %v, want [2 1]", got)
	}

	c.SetCriteria(query.Criteria{Search: "pizza"})
	if got := viewIDs(c.View()); !equalIDs(got, []int{2}) {
		t.Errorf("search ids = %v, want [2]", got)
	}
}

func TestController_FiltersAndReset(t *testing.T) {
	c := newTestController(t, nil)

	c.SetCriteria(query.Criteria{Cuisine: "Italian", MaxDistance: "1.5"})
	if got := viewIDs(c.View()); !equalIDs(got, []int{1}) {
		t.Errorf("filtered ids = %v, want [1]", got)
	}
	if c.Criteria().Sort != query.SortByName {
		t.Errorf("Criteria().Sort = %q, want default", c.Criteria().Sort)
	}

	_ = c.SetTab(TabVisited)
	cr, tab := c.ResetFilters()
	if cr != query.DefaultCriteria() || tab != TabVisited {
		t.Errorf("ResetFilters() = %+v, %q, want defaults on visited", cr, tab)
	}
	if c.Criteria() != query.DefaultCriteria() {
		t.Errorf("Criteria() after reset = %+v", c.Criteria())
	}
	if c.Tab() != TabVisited {
		t.Errorf("ResetFilters() changed tab to %q", c.Tab())
	}
}

func TestController_Apply(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, nil)
	_, _ = c.RecordVisit(ctx, 2)

	items, tab, err := c.Apply(TabVisited, nil)
	if err != nil {
		t.Fatalf("Apply(visited) error = %v", err)
	}
	if tab != TabVisited || !equalIDs(viewIDs(items), []int{2}) {
		t.Errorf("Apply(visited) = %v on %q, want [2] on visited", viewIDs(items), tab)
	}

	italian := func(cr query.Criteria) query.Criteria {
		cr.Cuisine = "Italian"
		cr.Sort = ""
		return cr
	}
	items, tab, err = c.Apply("", italian)
	if err != nil {
		t.Fatalf("Apply(\"\", italian) error = %v", err)
	}
	if tab != TabVisited || !equalIDs(viewIDs(items), []int{2}) {
		t.Errorf("Apply(\"\", italian) = %v on %q, want [2] on visited", viewIDs(items), tab)
	}
	if got := c.Criteria(); got.Cuisine != "Italian" || got.Sort != query.SortByName {
		t.Errorf("Criteria() = %+v, want Italian sorted by name", got)
	}

	if _, _, err := c.Apply("favorites", italian); !errors.Is(err, ErrUnknownTab) {
		t.Errorf("Apply(favorites) error = %v, want ErrUnknownTab", err)
	}
	if c.Tab() != TabVisited {
		t.Errorf("Tab() = %q after rejected Apply, want visited", c.Tab())
	}
}

func TestController_ApplyConcurrentTabs(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, nil)
	_, _ = c.RecordVisit(ctx, 1)

	want := map[Tab]int{TabAll: 4, TabVisited: 1}
	var wg sync.WaitGroup
	for i := 0; i < 500; i++ {
		tab := TabAll
		if i%2 == 1 {
			tab = TabVisited
		}
		wg.Add(1)
		go func(tab Tab) {
			defer wg.Done()
			items, got, err := c.Apply(tab, func(cr query.Criteria) query.Criteria { return cr })
			if err != nil {
				t.Errorf("Apply(%q) error = %v", tab, err)
				return
			}
			if got != tab || len(items) != want[tab] {
				t.Errorf("Apply(%q) = %d items on %q, want %d on %q", tab, len(items), got, want[tab], tab)
			}
		}(tab)
	}
	wg.Wait()
}

func TestController_SetCatalog(t *testing.T) {
	c := newTestController(t, nil)
	if c.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", c.Len())
	}

	loadErr := errors.New("connection refused")
	c.SetCatalog(catalog.Empty(), "http", loadErr)
	st := c.CatalogStatus()
	if st.Source != "http" || !errors.Is(st.Err, loadErr) || st.Restaurants != 0 {
		t.Errorf("CatalogStatus() = %+v, want empty http catalog with error", st)
	}
	if len(c.View()) != 0 || len(c.Cuisines()) != 0 {
		t.Errorf("View() and Cuisines() should be empty with an empty catalog")
	}

	// A failed retry keeps the current catalog.
	c.SetCatalog(catalog.New(sampleRestaurants()), "http", nil)
	c.SetCatalog(nil, "http", loadErr)
	if c.Len() != 4 || !errors.Is(c.CatalogStatus().Err, loadErr) {
		t.Errorf("after failed reload Len() = %d, Err = %v", c.Len(), c.CatalogStatus().Err)
	}

	c.SetCatalog(nil, "http", nil)
	if st := c.CatalogStatus(); st.Err != nil || st.Restaurants != 4 {
		t.Errorf("CatalogStatus() = %+v, want 4 restaurants without error", st)
	}
}

func TestController_Stats(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, nil)

	if s := c.Stats(); s != (Stats{Total: 4, AverageRating: NoRating}) {
		t.Errorf("Stats() empty = %+v", s)
	}

	_, _ = c.SetRating(ctx, 1, 0)
	_, _ = c.SetRating(ctx, 2, 3)
	_, _ = c.SetRating(ctx, 3, 5)
	_, _ = c.RecordVisit(ctx, 2)
	_, _ = c.RecordToVisit(ctx, 4)

	want := Stats{Total: 4, Visited: 1, ToVisit: 1, AverageRating: "4.0"}
	if s := c.Stats(); s != want {
		t.Errorf("Stats() = %+v, want %+v", s, want)
	}
}

func TestController_CuisinesAndRestaurant(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, nil)

	got := c.Cuisines()
	want := []string{"Italian", "Japanese", "Mexican"}
	if len(got) != len(want) {
		t.Fatalf("Cuisines() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Cuisines() = %v, want %v", got, want)
		}
	}

	_, _ = c.SetComment(ctx, 3, "omakase")
	d, err := c.Restaurant(3)
	if err != nil {
		t.Fatalf("Restaurant(3) error = %v", err)
	}
	if d.Restaurant.Name != "Sakura" || d.Annotation.Comment != "omakase" {
		t.Errorf("Restaurant(3) = %+v", d)
	}

	if _, err := c.Restaurant(42); !errors.Is(err, ErrRestaurantNotFound) {
		t.Errorf("Restaurant(42) error = %v, want ErrRestaurantNotFound", err)
	}
}

func TestController_ClearAll(t *testing.T) {
	ctx := context.Background()
	backend := annotations.NewMemoryBackend()
	c := newTestController(t, backend)

	_, _ = c.RecordVisit(ctx, 1)
	_, _ = c.SetRating(ctx, 1, 4)
	if err := c.ClearAll(ctx); err != nil {
		t.Fatalf("ClearAll() error = %v", err)
	}

	if a := c.Annotation(1); a != (models.Annotation{}) {
		t.Errorf("Annotation(1) after ClearAll = %+v", a)
	}
	raw, err := backend.GetAll(ctx)
	if err != nil || raw != nil {
		t.Errorf("backend after ClearAll = %q, %v; want key removed", raw, err)
	}
	if s := c.Stats(); s.Visited != 0 || s.AverageRating != NoRating {
		t.Errorf("Stats() after ClearAll = %+v", s)
	}
}

func TestController_PersistenceFailure(t *testing.T) {
	ctx := context.Background()
	backend := &writeFailBackend{MemoryBackend: annotations.NewMemoryBackend()}
	c := newTestController(t, backend)

	_, _ = c.RecordVisit(ctx, 1)
	backend.failWrites = true

	a, err := c.RecordVisit(ctx, 1)
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("RecordVisit() error = %v, want errDiskFull", err)
	}
	if !a.Visited {
		t.Errorf("returned annotation = %+v, want the unchanged stored one", a)
	}
	if !c.Annotation(1).Visited {
		t.Error("failed write changed in-memory state")
	}

	if err := c.ClearAll(ctx); !errors.Is(err, errDiskFull) {
		t.Errorf("ClearAll() error = %v, want errDiskFull", err)
	}
}

func TestController_ConcurrentToggles(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.RecordVisit(ctx, 1)
			_ = c.View()
			_ = c.Stats()
		}()
	}
	wg.Wait()

	if c.Annotation(1).Visited {
		t.Error("an even number of toggles left restaurant 1 visited")
	}
}

func TestController_ComponentFieldWrittenOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).With().Str("component", "tracker").Logger()

	store, err := annotations.Open(context.Background(), annotations.NewMemoryBackend(), zerolog.Nop())
	if err != nil {
		t.Fatalf("annotations.Open() error = %v", err)
	}
	engine, err := recommend.NewEngine(nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("recommend.NewEngine() error = %v", err)
	}
	c, err := NewController(catalog.New(sampleRestaurants()), store, engine, logger)
	if err != nil {
		t.Fatalf("NewController() error = %v", err)
	}
	if err := c.ClearAll(context.Background()); err != nil {
		t.Fatalf("ClearAll() error = %v", err)
	}

	line := strings.TrimSpace(buf.String())
	if n := strings.Count(line, `"component"`); n != 1 {
		t.Errorf("log line has %d component fields, want 1: %s", n, line)
	}
}
