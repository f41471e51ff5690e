package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"mealdeck/internal/domain"
)

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct {
	Mode Mode
}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Detail actions
type OpenDetailAction struct {
	MealID string
}

func (a OpenDetailAction) Type() string { return "open_detail" }

type CloseDetailAction struct{}

func (a CloseDetailAction) Type() string { return "close_detail" }

// ScrollDetailAction forwards a key to the detail viewport
type ScrollDetailAction struct {
	Key tea.KeyMsg
}

func (a ScrollDetailAction) Type() string { return "scroll_detail" }

// Filter actions
type SetAreaAction struct {
	Area string // "" for all areas
}

func (a SetAreaAction) Type() string { return "set_area" }

type UpdateAreaIndexAction struct {
	Index int
}

func (a UpdateAreaIndexAction) Type() string { return "update_area_index" }

type SetSortAction struct {
	Option domain.SortOption
}

func (a SetSortAction) Type() string { return "set_sort" }

type UpdateSortIndexAction struct {
	Index int
}

func (a UpdateSortIndexAction) Type() string { return "update_sort_index" }

// Command actions
type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
