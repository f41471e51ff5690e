package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"mealdeck/internal/domain"
	"mealdeck/internal/ui/input/types"
)

// picker walks a wrapping list of options. The option under the cursor is
// applied immediately; cancelling goes back to the one active on entry.
type picker struct {
	index    int
	original int
}

func (p *picker) start(current int) {
	p.index = current
	p.original = current
}

// step moves by delta and reports whether the key was a movement key
func (p *picker) step(msg tea.KeyMsg, count int) bool {
	if count == 0 {
		return false
	}
	switch msg.String() {
	case "up", "k":
		p.index--
		if p.index < 0 {
			p.index = count - 1
		}
	case "down", "j":
		p.index++
		if p.index >= count {
			p.index = 0
		}
	default:
		return false
	}
	return true
}

func isCancel(msg tea.KeyMsg) bool {
	s := msg.String()
	return s == "esc" || s == "q"
}

func isAccept(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyEnter
}

// SortSelectMode chooses one of domain.SortOptions
type SortSelectMode struct {
	picker
}

func NewSortSelectMode() *SortSelectMode {
	return &SortSelectMode{}
}

func (m *SortSelectMode) Name() string {
	return "sort"
}

func (m *SortSelectMode) Enter(ctx types.Context) []types.Action {
	current := 0
	for i, option := range domain.SortOptions {
		if option == ctx.CurrentSort() {
			current = i
			break
		}
	}
	m.start(current)
	return []types.Action{types.UpdateSortIndexAction{Index: m.index}}
}

func (m *SortSelectMode) Exit(ctx types.Context) []types.Action {
	return nil
}

// HandleKey processes key messages for sort selection
func (m *SortSelectMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}
	switch {
	case isCancel(msg):
		return []types.Action{
			types.SetSortAction{Option: domain.SortOptions[m.original]},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case isAccept(msg):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case m.step(msg, len(domain.SortOptions)):
		return []types.Action{
			types.UpdateSortIndexAction{Index: m.index},
			types.SetSortAction{Option: domain.SortOptions[m.index]},
		}, true
	}
	return nil, true
}

// GetCurrentIndex returns the current sort option index
func (m *SortSelectMode) GetCurrentIndex() int {
	return m.index
}
