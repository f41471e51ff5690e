package domain

// Meal represents a single recipe record with its locally assigned rating
type Meal struct {
	ID           string
	Name         string
	Category     string
	Area         string // country/region of origin, the only filter dimension
	Thumbnail    string
	Instructions string
	Tags         []string
	YouTube      string
	Source       string
	Ingredients  []Ingredient
	Rating       int // 1-5, assigned at fetch time, never sent upstream
}

// Ingredient is one ingredient line of a meal
type Ingredient struct {
	Name    string
	Measure string
}

// SortOption selects how the view is ordered
type SortOption string

const (
	SortRelevance  SortOption = "relevance"
	SortRatingAsc  SortOption = "rating-asc"
	SortRatingDesc SortOption = "rating-desc"
	SortAlphaAsc   SortOption = "alpha-asc"
	SortAlphaDesc  SortOption = "alpha-desc"
)

// SortOptions lists the known options in display order
var SortOptions = []SortOption{
	SortRelevance,
	SortRatingAsc,
	SortRatingDesc,
	SortAlphaAsc,
	SortAlphaDesc,
}

// Label returns a human readable name for the option
func (o SortOption) Label() string {
	switch o {
	case SortRatingAsc:
		return "Rating (low to high)"
	case SortRatingDesc:
		return "Rating (high to low)"
	case SortAlphaAsc:
		return "Name (A-Z)"
	case SortAlphaDesc:
		return "Name (Z-A)"
	default:
		return "Relevance"
	}
}

// Selection is the meal currently inspected in the detail modal
type Selection struct {
	Detail *Meal
	Open   bool
}

// LoadProgress represents the current background loading state
type LoadProgress struct {
	IsLoading   bool
	MealsLoaded int
	Letter      string
}
