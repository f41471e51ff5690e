package input

import (
	"mealdeck/internal/domain"
	"mealdeck/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
}

// CurrentIndex returns the current selected index
func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

// TotalItems returns the number of meals in the list
func (c *ModelContext) TotalItems() int {
	return len(c.State.Meals)
}

// CurrentMealID returns the id of the meal under the cursor, "" for an empty list
func (c *ModelContext) CurrentMealID() string {
	if meal, ok := c.State.CurrentMeal(); ok {
		return meal.ID
	}
	return ""
}

func (c *ModelContext) AreaOptions() []string {
	return c.State.AreaOptions()
}

func (c *ModelContext) SelectedArea() string {
	return c.State.SelectedArea
}

func (c *ModelContext) CurrentSort() domain.SortOption {
	return c.State.SortOption
}

// SearchQuery returns the current search query
func (c *ModelContext) SearchQuery() string {
	return c.State.SearchQuery
}
