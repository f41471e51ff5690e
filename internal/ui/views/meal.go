package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mealdeck/internal/domain"
)

// MealRenderer renders one row of the meal list
type MealRenderer struct {
	styles      *Styles
	showRatings bool
	showArea    bool
}

// NewMealRenderer creates a new meal row renderer
func NewMealRenderer(styles *Styles, showRatings, showArea bool) *MealRenderer {
	return &MealRenderer{
		styles:      styles,
		showRatings: showRatings,
		showArea:    showArea,
	}
}

// RenderMeal renders a meal row; the search query, when set, is highlighted in the name
func (r *MealRenderer) RenderMeal(meal domain.Meal, isSelected bool, searchQuery string) string {
	bg := lipgloss.NewStyle()
	if isSelected {
		bg = bg.Background(lipgloss.Color(selectionColor))
	}

	var parts []string

	cursor := "  "
	if isSelected {
		cursor = "▸ "
	}
	parts = append(parts, bg.Render(cursor))

	if r.showRatings {
		parts = append(parts, r.renderRating(meal.Rating, bg), bg.Render(" "))
	}

	if searchQuery != "" {
		parts = append(parts, r.highlightMatch(meal.Name, searchQuery, bg.Foreground(lipgloss.Color("226")).Bold(true), bg))
	} else {
		parts = append(parts, bg.Render(meal.Name))
	}

	if r.showArea && meal.Area != "" {
		areaStyle := r.styles.Area
		if isSelected {
			areaStyle = areaStyle.Background(lipgloss.Color(selectionColor))
		}
		parts = append(parts, bg.Render(" "), areaStyle.Render("("+meal.Area+")"))
	}

	return strings.Join(parts, "")
}

// renderRating draws a five star gauge
func (r *MealRenderer) renderRating(rating int, bg lipgloss.Style) string {
	rating = clampRating(rating)
	full := r.styles.Rating.Inherit(bg).Render(strings.Repeat("★", rating))
	empty := r.styles.RatingEmpty.Inherit(bg).Render(strings.Repeat("☆", 5-rating))
	return full + empty
}

func clampRating(rating int) int {
	if rating < 0 {
		return 0
	}
	if rating > 5 {
		return 5
	}
	return rating
}

// highlightMatch highlights the first case-insensitive match of query in text
func (r *MealRenderer) highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	index := strings.Index(strings.ToLower(text), strings.ToLower(query))
	// Lowercasing can change byte lengths for some scripts, fall back to plain text then
	if index == -1 || index+len(query) > len(text) ||
		!strings.EqualFold(text[index:index+len(query)], query) {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}
	return strings.Join(result, "")
}
