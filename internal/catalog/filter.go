package catalog

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"mealdeck/internal/domain"
)

// deriveView filters meals by area (skipped when empty) and orders them per option.
// The input slice is never modified.
func deriveView(meals []domain.Meal, area string, option domain.SortOption) []domain.Meal {
	view := make([]domain.Meal, 0, len(meals))
	for _, m := range meals {
		if area == "" || m.Area == area {
			view = append(view, m)
		}
	}
	sortMeals(view, option)
	return view
}

// matchName keeps meals whose name contains query, ignoring case
func matchName(meals []domain.Meal, query string) []domain.Meal {
	q := strings.ToLower(query)
	out := make([]domain.Meal, 0, len(meals))
	for _, m := range meals {
		if strings.Contains(strings.ToLower(m.Name), q) {
			out = append(out, m)
		}
	}
	return out
}

// sortMeals orders meals in place. Equal keys keep their relative order;
// relevance and unknown options leave the order untouched.
func sortMeals(meals []domain.Meal, option domain.SortOption) {
	switch option {
	case domain.SortRatingAsc:
		slices.SortStableFunc(meals, func(a, b domain.Meal) int {
			return cmp.Compare(a.Rating, b.Rating)
		})

	case domain.SortRatingDesc:
		slices.SortStableFunc(meals, func(a, b domain.Meal) int {
			return cmp.Compare(b.Rating, a.Rating)
		})

	case domain.SortAlphaAsc:
		col := newCollator()
		slices.SortStableFunc(meals, func(a, b domain.Meal) int {
			return col.CompareString(a.Name, b.Name)
		})

	case domain.SortAlphaDesc:
		col := newCollator()
		slices.SortStableFunc(meals, func(a, b domain.Meal) int {
			return col.CompareString(b.Name, a.Name)
		})
	}
}

// A Collator is not safe for concurrent use, so each sort gets its own
func newCollator() *collate.Collator {
	return collate.New(language.English)
}
