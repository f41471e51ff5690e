package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mealdeck/internal/domain"
	"mealdeck/internal/ui/logic"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Meals          []domain.Meal
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int
	InitialLoaded  bool
	Loading        bool
	Spinner        string
	LoadedCount    int
	StatusMessage  string
	StatusIsError  bool
	SearchQuery    string
	SelectedArea   string
	SortOption     domain.SortOption
	InputMode      string // "", "search", "area" or "sort"
	TextInput      string
	AreaOptions    []string
	AreaIndex      int
	SortIndex      int
	ShowDetail     bool
	DetailContent  string
	DetailFooter   string
	HelpLine       string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	mealRender  *MealRenderer
	popupRender *PopupRenderer
	navigator   *logic.Navigator
}

// NewRenderer creates a new renderer
func NewRenderer(showRatings, showArea bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		mealRender:  NewMealRenderer(styles, showRatings, showArea),
		popupRender: NewPopupRenderer(styles),
		navigator:   logic.NewNavigator(),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.ShowDetail {
		return r.popupRender.RenderPopup(state.DetailContent, state.DetailFooter, state.Height, state.Width)
	}

	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n\n")

	if state.InputMode != "" {
		content.WriteString(r.renderInput(state))
		content.WriteString("\n\n")
	}

	switch {
	case len(state.Meals) > 0:
		content.WriteString(r.renderMealList(state))
	case !state.InitialLoaded && state.Loading:
		content.WriteString(r.styles.Dim.Render("Fetching meals..."))
	case state.SearchQuery != "":
		content.WriteString(r.styles.Dim.Render(fmt.Sprintf("No meals match %q.", state.SearchQuery)))
	case state.SelectedArea != "":
		content.WriteString(r.styles.Dim.Render(fmt.Sprintf("No %s meals loaded.", state.SelectedArea)))
	default:
		content.WriteString(r.styles.Dim.Render("No meals loaded. Press r to reload."))
	}

	footer := r.renderFooter(state)

	// Push the footer to the bottom of the screen
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2 // Main padding
	if availableLines <= 0 {
		availableLines = 22
	}
	footerLines := strings.Count(footer, "\n") + 1
	if padding := availableLines - currentLines - footerLines; padding > 0 {
		content.WriteString(strings.Repeat("\n", padding))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// renderTitleLine renders the logo with loading and filter indicators on the right
func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.Render("mealdeck")

	var indicators []string
	if state.Loading {
		indicators = append(indicators, r.styles.StatusLoading.Render(
			fmt.Sprintf("%s Loading %d meals", state.Spinner, state.LoadedCount)))
	} else {
		indicators = append(indicators, r.styles.Dim.Render(fmt.Sprintf("%d meals", len(state.Meals))))
	}
	if state.SelectedArea != "" {
		indicators = append(indicators, r.styles.Filter.Render(fmt.Sprintf("[Area: %s]", state.SelectedArea)))
	}
	if state.SortOption != "" && state.SortOption != domain.SortRelevance {
		indicators = append(indicators, r.styles.Filter.Render(fmt.Sprintf("[Sort: %s]", state.SortOption.Label())))
	}
	if state.SearchQuery != "" {
		indicators = append(indicators, r.styles.Filter.Render(fmt.Sprintf("[Search: %s]", state.SearchQuery)))
	}
	right := strings.Join(indicators, "  ")

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	paddingWidth := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if paddingWidth < 2 {
		paddingWidth = 2
	}
	return logo + strings.Repeat(" ", paddingWidth) + right
}

func (r *Renderer) renderInput(state ViewState) string {
	switch state.InputMode {
	case "area":
		labels := make([]string, len(state.AreaOptions))
		for i, area := range state.AreaOptions {
			if area == "" {
				area = "All areas"
			}
			labels[i] = area
		}
		return r.renderOptions("Area", labels, state.AreaIndex, state.Width)
	case "sort":
		labels := make([]string, len(domain.SortOptions))
		for i, option := range domain.SortOptions {
			labels[i] = option.Label()
		}
		return r.renderOptions("Sort by", labels, state.SortIndex, state.Width)
	default:
		return r.styles.Prompt.Render("Search: ") + state.TextInput
	}
}

// renderOptions shows a picker as a single wrapping line with the current option marked
func (r *Renderer) renderOptions(label string, options []string, index, width int) string {
	parts := make([]string, len(options))
	for i, opt := range options {
		if i == index {
			parts[i] = r.styles.OptionActive.Render("[" + opt + "]")
		} else {
			parts[i] = r.styles.Option.Render(opt)
		}
	}
	line := r.styles.Prompt.Render(label+": ") + strings.Join(parts, " ")
	if width > 4 {
		line = lipgloss.NewStyle().Width(width - 4).Render(line)
	}
	helpLine := r.styles.Dim.Render("↑/↓ or j/k to change • Enter to accept • Esc to cancel")
	return line + "\n" + helpLine
}

// renderMealList renders the visible slice of the list with scroll indicators
func (r *Renderer) renderMealList(state ViewState) string {
	r.navigator.UpdateState(state.SelectedIndex, state.ViewportOffset, state.ViewportHeight, len(state.Meals))
	start, end := r.navigator.VisibleRange()

	var lines []string
	if r.navigator.NeedsTopIndicator() {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", start)))
	}
	for i := start; i < end; i++ {
		lines = append(lines, r.mealRender.RenderMeal(state.Meals[i], i == state.SelectedIndex, state.SearchQuery))
	}
	if r.navigator.NeedsBottomIndicator() {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", len(state.Meals)-end)))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderFooter(state ViewState) string {
	var lines []string
	if state.StatusMessage != "" {
		style := r.styles.StatusInfo
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		lines = append(lines, style.Render(state.StatusMessage))
	}
	if state.HelpLine != "" {
		lines = append(lines, r.styles.Help.Render(state.HelpLine))
	}
	return strings.Join(lines, "\n")
}
