package views

import (
	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// PopupSize returns the inner size available to modal content on a
// width x height screen, leaving a margin around the box
func PopupSize(width, height int) (int, int) {
	w := width - 8
	if w > 100 {
		w = 100
	}
	h := height - 6
	if w < 20 {
		w = 20
	}
	if h < 5 {
		h = 5
	}
	return w, h
}

// RenderPopup centres popupContent in a bordered box on a width x height
// screen. The list behind it is not drawn.
func (pr *PopupRenderer) RenderPopup(popupContent, footer string, height, width int) string {
	innerW, _ := PopupSize(width, height)
	body := popupContent
	if footer != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, popupContent, "", pr.styles.Help.Render(footer))
	}
	box := pr.styles.DetailBox.Width(innerW).Render(body)

	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
