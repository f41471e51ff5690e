package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"mealdeck/internal/domain"
)

// DetailRenderer turns a meal into a markdown recipe card and renders it for
// the terminal
type DetailRenderer struct {
	term      *glamour.TermRenderer
	termWidth int
}

// NewDetailRenderer creates a new detail renderer
func NewDetailRenderer() *DetailRenderer {
	return &DetailRenderer{}
}

// Markdown returns the recipe card of meal as markdown
func (r *DetailRenderer) Markdown(meal domain.Meal) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", meal.Name)

	var facts []string
	if meal.Category != "" {
		facts = append(facts, meal.Category)
	}
	if meal.Area != "" {
		facts = append(facts, meal.Area)
	}
	if len(facts) > 0 {
		fmt.Fprintf(&b, "*%s*\n\n", strings.Join(facts, " · "))
	}
	fmt.Fprintf(&b, "Rating: %s\n\n", stars(meal.Rating))

	if len(meal.Ingredients) > 0 {
		b.WriteString("## Ingredients\n\n")
		for _, ing := range meal.Ingredients {
			if ing.Measure != "" {
				fmt.Fprintf(&b, "- %s %s\n", ing.Measure, ing.Name)
			} else {
				fmt.Fprintf(&b, "- %s\n", ing.Name)
			}
		}
		b.WriteString("\n")
	}

	if instructions := strings.TrimSpace(meal.Instructions); instructions != "" {
		b.WriteString("## Instructions\n\n")
		// The API separates steps with CRLF; markdown needs blank lines
		for _, para := range strings.FieldsFunc(instructions, func(r rune) bool { return r == '\n' || r == '\r' }) {
			if para = strings.TrimSpace(para); para != "" {
				b.WriteString(para)
				b.WriteString("\n\n")
			}
		}
	}

	if len(meal.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n\n", strings.Join(meal.Tags, ", "))
	}

	var links []string
	if meal.YouTube != "" {
		links = append(links, fmt.Sprintf("[Video](%s)", meal.YouTube))
	}
	if meal.Source != "" {
		links = append(links, fmt.Sprintf("[Source](%s)", meal.Source))
	}
	if len(links) > 0 {
		b.WriteString(strings.Join(links, " · "))
		b.WriteString("\n")
	}

	return b.String()
}

// Render renders the recipe card wrapped to width. If glamour fails the plain
// markdown is returned along with the error.
func (r *DetailRenderer) Render(meal domain.Meal, width int) (string, error) {
	md := r.Markdown(meal)

	term, err := r.renderer(width)
	if err != nil {
		return md, err
	}
	out, err := term.Render(md)
	if err != nil {
		return md, err
	}
	return strings.TrimRight(out, "\n"), nil
}

func (r *DetailRenderer) renderer(width int) (*glamour.TermRenderer, error) {
	if width < 20 {
		width = 20
	}
	if r.term != nil && r.termWidth == width {
		return r.term, nil
	}

	// Fixed style: auto detection queries the terminal, which bubbletea owns
	term, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	r.term = term
	r.termWidth = width
	return term, nil
}

func stars(rating int) string {
	rating = clampRating(rating)
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
