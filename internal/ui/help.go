package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"mealdeck/internal/domain"
)

// errNoProgram is returned when the pager is requested before SetProgram
var errNoProgram = errors.New("program not set")

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("208")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(14)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	line := func(keys, desc string) {
		fmt.Fprintf(&help, "  %s %s\n", keyStyle.Render(keys), descStyle.Render(desc))
	}

	help.WriteString(titleStyle.Render("mealdeck Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	line("↑/↓, j/k", "Move up/down")
	line("PgUp/PgDn", "Page up/down")
	line("gg/G", "Go to top/bottom")
	line("Enter", "Show the recipe of the selected meal")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Recipe"))
	help.WriteString("\n")
	line("↑/↓, j/k", "Scroll")
	line("Esc, q", "Close the recipe")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Search & Filter"))
	help.WriteString("\n")
	line("/", "Search meals by name")
	line("Esc", "Clear the search")
	line("a", "Filter by area")
	line("s", "Sort")
	help.WriteString("\n")

	sortStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	labels := make([]string, len(domain.SortOptions))
	for i, option := range domain.SortOptions {
		labels[i] = option.Label()
	}
	help.WriteString(sortStyle.Render("  Sort options: " + strings.Join(labels, ", ")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	line("r", "Reload all meals")
	line("?", "Show this help")
	line("q", "Quit")

	return strings.TrimRight(help.String(), "\n")
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h == nil || h.program == nil {
		return errNoProgram
	}

	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Give ov time to leave the alternate screen before bubbletea takes it back
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Don't print the document when ov exits, it would land on our screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
