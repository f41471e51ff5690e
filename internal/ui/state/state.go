package state

import (
	"mealdeck/internal/domain"
)

// AppState contains all the presentation state. It is only touched from the
// bubbletea update loop; the catalog store remains the source of truth for
// meals and is re-read after every change notification.
type AppState struct {
	// Snapshot of the store
	Meals        []domain.Meal
	Areas        []string
	SelectedArea string
	SortOption   domain.SortOption
	SearchQuery  string

	// Cursor
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int

	// Loading
	Loading     bool
	LoadedCount int
	FailedCount int

	// Detail modal
	ShowDetail    bool
	DetailID      string
	DetailContent string
	PendingDetail string // id requested but not answered yet

	// Option pickers
	AreaOptionIndex int
	SortOptionIndex int

	StatusMessage string
	StatusIsError bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		SortOption:     domain.SortRelevance,
		ViewportHeight: 20, // Default until the first WindowSizeMsg
	}
}

// CurrentMeal returns the meal under the cursor
func (s *AppState) CurrentMeal() (domain.Meal, bool) {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Meals) {
		return domain.Meal{}, false
	}
	return s.Meals[s.SelectedIndex], true
}

// SetStatus shows an informational message in the status bar
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = false
}

// SetError shows an error message in the status bar
func (s *AppState) SetError(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = true
}

// ClearStatus clears the status bar
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}

// AreaOptions returns the choices of the area picker: "" (all areas)
// followed by the loaded areas
func (s *AppState) AreaOptions() []string {
	return append([]string{""}, s.Areas...)
}
