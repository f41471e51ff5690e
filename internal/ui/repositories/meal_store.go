package repositories

import (
	"context"

	"mealdeck/internal/domain"
)

// MealStore is the catalog as the presentation layer sees it: read-only
// accessors plus the commands bound to keys
type MealStore interface {
	// Accessors
	View() []domain.Meal
	Catalog() []domain.Meal
	Areas() []string
	SelectedDetail() (domain.Meal, bool)
	IsDetailOpen() bool
	SelectedArea() string
	SortOption() domain.SortOption
	SearchQuery() string
	InitialLoaded() bool

	// Commands
	SearchByName(query string)
	SetAreaFilter(area string)
	SetSortOption(option domain.SortOption)
	ApplyFilters()
	LoadMealDetail(ctx context.Context, id string) error
	CloseDetail()
}

// Loader runs the background catalog load
type Loader interface {
	Start(ctx context.Context) error
	IsLoading() bool
}
