package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"mealdeck/internal/ui/input/types"
)

// AreaSelectMode chooses an area filter; the first option means all areas
type AreaSelectMode struct {
	picker
	options []string
}

func NewAreaSelectMode() *AreaSelectMode {
	return &AreaSelectMode{}
}

func (m *AreaSelectMode) Name() string {
	return "area"
}

func (m *AreaSelectMode) Enter(ctx types.Context) []types.Action {
	m.options = ctx.AreaOptions()
	current := 0
	for i, area := range m.options {
		if area == ctx.SelectedArea() {
			current = i
			break
		}
	}
	m.start(current)
	return []types.Action{types.UpdateAreaIndexAction{Index: m.index}}
}

func (m *AreaSelectMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *AreaSelectMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}
	switch {
	case isCancel(msg):
		return []types.Action{
			types.SetAreaAction{Area: m.areaAt(m.original)},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case isAccept(msg):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case m.step(msg, len(m.options)):
		return []types.Action{
			types.UpdateAreaIndexAction{Index: m.index},
			types.SetAreaAction{Area: m.areaAt(m.index)},
		}, true
	}
	return nil, true
}

func (m *AreaSelectMode) areaAt(i int) string {
	if i < 0 || i >= len(m.options) {
		return ""
	}
	return m.options[i]
}
