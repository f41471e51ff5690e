package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"mealdeck/internal/ui/input/types"
)

// DetailMode is active while the meal detail modal is open
type DetailMode struct{}

func NewDetailMode() *DetailMode {
	return &DetailMode{}
}

func (m *DetailMode) Name() string {
	return "detail"
}

func (m *DetailMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *DetailMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *DetailMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}
	if isCancel(msg) {
		return []types.Action{
			types.CloseDetailAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	// Everything else scrolls the recipe
	return []types.Action{types.ScrollDetailAction{Key: msg}}, true
}
