// Package catalog holds the in-memory meal catalog, its derived view and the
// detail selection. Network work happens outside the lock so a failed request
// never leaves the store half updated.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"mealdeck/internal/domain"
	"mealdeck/internal/eventbus"
	"mealdeck/internal/mealdb"
)

// Operation names a store entry point for error bookkeeping
type Operation string

const (
	OpLoadInitial    Operation = "load-initial"
	OpLoadRemaining  Operation = "load-remaining"
	OpLoadAreas      Operation = "load-areas"
	OpLoadMealDetail Operation = "load-meal-detail"
)

var (
	defaultSeeds    = []string{"a", "b"}
	defaultAlphabet = []string{
		"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
		"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	}
)

// LoadReport summarises a LoadRemaining run
type LoadReport struct {
	Letters []string         // letters attempted, in order
	Added   int              // meals appended to the catalog
	Failed  map[string]error // letter -> failure
}

// Err joins the per-letter failures, nil when every letter succeeded
func (r LoadReport) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.Failed))
	for _, letter := range r.Letters {
		if err, ok := r.Failed[letter]; ok {
			errs = append(errs, fmt.Errorf("letter %s: %w", letter, err))
		}
	}
	return errors.Join(errs...)
}

// Store is the catalog state container shared with the presentation layer
type Store struct {
	client  mealdb.Client
	ratings RatingSource
	bus     eventbus.EventBus
	logger  *zap.Logger

	seeds         []string
	alphabet      []string
	concurrency   int
	composeSearch bool

	mu            sync.RWMutex
	catalog       []domain.Meal
	ids           map[string]bool
	view          []domain.Meal
	areas         []string
	selectedArea  string
	sortOption    domain.SortOption
	searchQuery   string
	selection     domain.Selection
	initialLoaded bool
	lastErr       map[Operation]error
}

// Option configures a Store
type Option func(*Store)

// WithRatings replaces the random rating source
func WithRatings(r RatingSource) Option {
	return func(s *Store) { s.ratings = r }
}

// WithBus publishes store events on bus
func WithBus(bus eventbus.EventBus) Option {
	return func(s *Store) { s.bus = bus }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithLetters sets the seed letters and the full alphabet
func WithLetters(seeds, alphabet []string) Option {
	return func(s *Store) {
		if len(seeds) > 0 {
			s.seeds = seeds
		}
		if len(alphabet) > 0 {
			s.alphabet = alphabet
		}
	}
}

// WithConcurrency fetches up to n letters at once in LoadRemaining
func WithConcurrency(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithComposedSearch makes SearchByName narrow the area/sort view instead of
// searching the whole catalog
func WithComposedSearch(enabled bool) Option {
	return func(s *Store) { s.composeSearch = enabled }
}

// WithDefaults sets the initially selected area and sort option
func WithDefaults(area string, option domain.SortOption) Option {
	return func(s *Store) {
		s.selectedArea = area
		if option != "" {
			s.sortOption = option
		}
	}
}

// New creates an empty store backed by client
func New(client mealdb.Client, opts ...Option) *Store {
	s := &Store{
		client:      client,
		ratings:     RandomRatings{},
		logger:      zap.NewNop(),
		seeds:       defaultSeeds,
		alphabet:    defaultAlphabet,
		concurrency: 1,
		sortOption:  domain.SortRelevance,
		ids:         make(map[string]bool),
		lastErr:     make(map[Operation]error),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.Named("catalog")
	return s
}

// LoadInitial fetches the seed letters and replaces the catalog with them.
// The view mirrors the full, unfiltered catalog afterwards.
func (s *Store) LoadInitial(ctx context.Context) error {
	var meals []domain.Meal
	for _, letter := range s.seeds {
		fetched, err := s.client.SearchByLetter(ctx, letter)
		if err != nil {
			err = fmt.Errorf("letter %s: %w", letter, err)
			s.fail(OpLoadInitial, err)
			return err
		}
		meals = append(meals, fetched...)
	}
	s.rate(meals)

	s.mu.Lock()
	s.catalog = s.catalog[:0:0]
	s.ids = make(map[string]bool, len(meals))
	for _, m := range meals {
		if s.ids[m.ID] {
			continue
		}
		s.ids[m.ID] = true
		s.catalog = append(s.catalog, m)
	}
	s.view = slices.Clone(s.catalog)
	s.searchQuery = ""
	s.initialLoaded = true
	delete(s.lastErr, OpLoadInitial)
	count := len(s.catalog)
	s.mu.Unlock()

	s.logger.Info("initial load complete", zap.Strings("letters", s.seeds), zap.Int("meals", count))
	s.publish(domain.CatalogReplacedEvent{Count: count})
	s.publish(domain.ViewChangedEvent{Count: count})
	return nil
}

// RemainingLetters returns the alphabet without the seed letters
func (s *Store) RemainingLetters() []string {
	var letters []string
	for _, l := range s.alphabet {
		if !slices.Contains(s.seeds, l) {
			letters = append(letters, l)
		}
	}
	return letters
}

type letterResult struct {
	meals []domain.Meal
	err   error
	done  bool
}

// LoadRemaining appends the meals of every non-seed letter to the catalog.
// A failing letter is logged, recorded in the report and skipped; the other
// letters still load. The view mirrors the full catalog after each append.
func (s *Store) LoadRemaining(ctx context.Context) (LoadReport, error) {
	letters := s.RemainingLetters()
	report := LoadReport{Letters: letters, Failed: make(map[string]error)}

	if s.concurrency <= 1 {
		for _, letter := range letters {
			if err := ctx.Err(); err != nil {
				return report, err
			}
			meals, err := s.client.SearchByLetter(ctx, letter)
			s.settleLetter(&report, letter, letterResult{meals: meals, err: err, done: true})
		}
	} else {
		results := make([]letterResult, len(letters))
		var g errgroup.Group
		g.SetLimit(s.concurrency)
		for i, letter := range letters {
			g.Go(func() error {
				if ctx.Err() != nil {
					return nil
				}
				meals, err := s.client.SearchByLetter(ctx, letter)
				results[i] = letterResult{meals: meals, err: err, done: true}
				return nil
			})
		}
		_ = g.Wait()

		// Appending in alphabet order keeps the catalog identical to a sequential run
		for i, letter := range letters {
			if results[i].done {
				s.settleLetter(&report, letter, results[i])
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return report, err
	}

	err := report.Err()
	s.mu.Lock()
	if err != nil {
		s.lastErr[OpLoadRemaining] = err
	} else {
		delete(s.lastErr, OpLoadRemaining)
	}
	total := len(s.catalog)
	s.mu.Unlock()

	s.logger.Info("remaining letters loaded",
		zap.Int("letters", len(letters)),
		zap.Int("added", report.Added),
		zap.Int("failed", len(report.Failed)),
		zap.Int("total", total))
	return report, err
}

func (s *Store) settleLetter(report *LoadReport, letter string, res letterResult) {
	if res.err != nil {
		report.Failed[letter] = res.err
		s.fail(OpLoadRemaining, fmt.Errorf("letter %s: %w", letter, res.err))
		return
	}
	report.Added += s.appendLetter(letter, res.meals)
}

// appendLetter adds meals not yet in the catalog and resets the view to the
// full catalog. It returns the number of meals added.
func (s *Store) appendLetter(letter string, meals []domain.Meal) int {
	if len(meals) == 0 {
		return 0
	}
	s.rate(meals)

	s.mu.Lock()
	added := 0
	for _, m := range meals {
		if s.ids[m.ID] {
			continue
		}
		s.ids[m.ID] = true
		s.catalog = append(s.catalog, m)
		added++
	}
	s.view = slices.Clone(s.catalog)
	s.searchQuery = ""
	total := len(s.catalog)
	s.mu.Unlock()

	s.publish(domain.CatalogExtendedEvent{Letter: letter, Added: added, Total: total})
	s.publish(domain.ViewChangedEvent{Count: total})
	return added
}

// SearchByName narrows the view to meals whose name contains query, ignoring
// case. An empty query restores the full catalog. Unless composed search is
// enabled the selected area and sort option are ignored.
func (s *Store) SearchByName(query string) {
	s.mu.Lock()
	s.searchQuery = query
	base := s.catalog
	if s.composeSearch {
		base = deriveView(s.catalog, s.selectedArea, s.sortOption)
	}
	if query == "" {
		s.view = slices.Clone(base)
	} else {
		s.view = matchName(base, query)
	}
	count := len(s.view)
	s.mu.Unlock()

	s.publish(domain.ViewChangedEvent{Count: count})
}

// SetAreaFilter selects an area ("" for all) and recomputes the view
func (s *Store) SetAreaFilter(area string) {
	s.mu.Lock()
	s.selectedArea = area
	count := s.applyLocked()
	s.mu.Unlock()

	s.publish(domain.ViewChangedEvent{Count: count})
}

// SetSortOption selects the ordering and recomputes the view
func (s *Store) SetSortOption(option domain.SortOption) {
	s.mu.Lock()
	s.sortOption = option
	count := s.applyLocked()
	s.mu.Unlock()

	s.publish(domain.ViewChangedEvent{Count: count})
}

// ApplyFilters recomputes the view from the catalog, area and sort option
func (s *Store) ApplyFilters() {
	s.mu.Lock()
	count := s.applyLocked()
	s.mu.Unlock()

	s.publish(domain.ViewChangedEvent{Count: count})
}

func (s *Store) applyLocked() int {
	s.view = deriveView(s.catalog, s.selectedArea, s.sortOption)
	if s.composeSearch && s.searchQuery != "" {
		s.view = matchName(s.view, s.searchQuery)
	} else {
		s.searchQuery = ""
	}
	return len(s.view)
}

// LoadAreas fetches the area list; duplicates are kept as sent
func (s *Store) LoadAreas(ctx context.Context) error {
	areas, err := s.client.ListAreas(ctx)
	if err != nil {
		s.fail(OpLoadAreas, err)
		return err
	}

	s.mu.Lock()
	s.areas = areas
	delete(s.lastErr, OpLoadAreas)
	s.mu.Unlock()

	s.logger.Debug("areas loaded", zap.Int("count", len(areas)))
	s.publish(domain.AreasLoadedEvent{Areas: slices.Clone(areas)})
	return nil
}

// LoadMealDetail fetches one meal and opens the detail modal on success.
// On failure the selection is left as it was.
func (s *Store) LoadMealDetail(ctx context.Context, id string) error {
	meal, err := s.client.LookupMeal(ctx, id)
	if err != nil {
		s.fail(OpLoadMealDetail, err)
		return err
	}

	s.mu.Lock()
	meal.Rating = s.ratingOfLocked(meal.ID)
	if meal.Rating == 0 {
		meal.Rating = s.ratings.Rate()
	}
	s.selection = domain.Selection{Detail: &meal, Open: true}
	delete(s.lastErr, OpLoadMealDetail)
	s.mu.Unlock()

	s.logger.Debug("meal detail opened", zap.String("id", meal.ID), zap.String("name", meal.Name))
	s.publish(domain.DetailOpenedEvent{MealID: meal.ID})
	return nil
}

// CloseDetail clears the selection; closing a closed modal is a no-op
func (s *Store) CloseDetail() {
	s.mu.Lock()
	wasOpen := s.selection.Open
	s.selection = domain.Selection{}
	s.mu.Unlock()

	if wasOpen {
		s.publish(domain.DetailClosedEvent{})
	}
}

func (s *Store) ratingOfLocked(id string) int {
	for _, m := range s.catalog {
		if m.ID == id {
			return m.Rating
		}
	}
	return 0
}

func (s *Store) rate(meals []domain.Meal) {
	for i := range meals {
		meals[i].Rating = s.ratings.Rate()
	}
}

func (s *Store) fail(op Operation, err error) {
	s.logger.Error("operation failed", zap.String("op", string(op)), zap.Error(err))

	s.mu.Lock()
	s.lastErr[op] = err
	s.mu.Unlock()

	s.publish(domain.LoadFailedEvent{Operation: string(op), Message: err.Error(), Err: err})
}

func (s *Store) publish(event domain.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}

// View returns the derived, filtered and sorted meals
func (s *Store) View() []domain.Meal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.view)
}

// Catalog returns every loaded meal in arrival order
func (s *Store) Catalog() []domain.Meal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.catalog)
}

// Areas returns the area names as loaded
func (s *Store) Areas() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.areas)
}

// SelectedDetail returns the meal shown in the detail modal, if any
func (s *Store) SelectedDetail() (domain.Meal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selection.Detail == nil {
		return domain.Meal{}, false
	}
	return *s.selection.Detail, true
}

// IsDetailOpen reports whether the detail modal is visible
func (s *Store) IsDetailOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection.Open
}

func (s *Store) SelectedArea() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedArea
}

func (s *Store) SortOption() domain.SortOption {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortOption
}

func (s *Store) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchQuery
}

// InitialLoaded reports whether LoadInitial has completed at least once
func (s *Store) InitialLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialLoaded
}

// LastError returns the most recent failure of op, nil after a success
func (s *Store) LastError(op Operation) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr[op]
}
