package handlers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"mealdeck/internal/catalog"
	"mealdeck/internal/eventbus"
	"mealdeck/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state        *state.AppState
	refresh      func()
	startSpinner func() tea.Cmd
}

// NewEventHandler creates a new event handler. refresh re-reads the store
// into the state; startSpinner returns the command animating the loading
// indicator.
func NewEventHandler(appState *state.AppState, refresh func(), startSpinner func() tea.Cmd) *EventHandler {
	return &EventHandler{
		state:        appState,
		refresh:      refresh,
		startSpinner: startSpinner,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.LoadStartedEvent:
		wasLoading := h.state.Loading
		h.state.Loading = true
		h.state.LoadedCount = 0
		h.state.FailedCount = 0
		h.state.SetStatus("Loading meals...")
		if !wasLoading && h.startSpinner != nil {
			return h.startSpinner()
		}

	case eventbus.CatalogReplacedEvent:
		h.state.LoadedCount = e.Count
		h.refresh()

	case eventbus.CatalogExtendedEvent:
		h.state.LoadedCount = e.Total
		h.refresh()

	case eventbus.ViewChangedEvent:
		h.refresh()

	case eventbus.AreasLoadedEvent:
		h.state.Areas = e.Areas

	case eventbus.DetailClosedEvent:
		h.state.ShowDetail = false
		h.state.DetailID = ""
		h.state.DetailContent = ""

	case eventbus.LoadFailedEvent:
		// Detail lookups report through their own command result
		if e.Operation == string(catalog.OpLoadMealDetail) {
			return nil
		}
		h.state.FailedCount++
		h.state.SetError(fmt.Sprintf("Error: %s", e.Message))

	case eventbus.LoadCompletedEvent:
		h.state.Loading = false
		h.state.LoadedCount = e.Total
		h.refresh()
		if e.Failed > 0 {
			h.state.SetError(fmt.Sprintf("Loaded %d meals, %d requests failed", e.Total, e.Failed))
		} else {
			h.state.SetStatus(fmt.Sprintf("Loaded %d meals", e.Total))
		}
	}

	return nil
}
