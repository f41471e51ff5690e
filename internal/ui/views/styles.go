package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Prompt        lipgloss.Style
	Filter        lipgloss.Style
	DetailBox     lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	SelectionBg   lipgloss.Style
	Area          lipgloss.Style
	Rating        lipgloss.Style
	RatingEmpty   lipgloss.Style
	Option        lipgloss.Style
	OptionActive  lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	StatusInfo    lipgloss.Style
}

const selectionColor = "238"

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Prompt: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		DetailBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("208")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color(selectionColor)),
		Area:          lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Rating:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		RatingEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Option:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		OptionActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}
