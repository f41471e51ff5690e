package modes

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"mealdeck/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	}

	switch {
	case key.Matches(msg, Keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, Keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case key.Matches(msg, Keys.Open):
		if id := ctx.CurrentMealID(); id != "" {
			return []types.Action{types.OpenDetailAction{MealID: id}}, true
		}
		return nil, true

	case key.Matches(msg, Keys.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case key.Matches(msg, Keys.Area):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeArea}}, true

	case key.Matches(msg, Keys.Sort):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSort}}, true

	case key.Matches(msg, Keys.Reload):
		return []types.Action{types.ReloadAction{}}, true

	case key.Matches(msg, Keys.Help):
		return []types.Action{types.ShowHelpAction{}}, true

	case key.Matches(msg, Keys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	switch msg.String() {
	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case "esc":
		// Esc clears an active search
		if ctx.SearchQuery() != "" {
			return []types.Action{types.CancelTextAction{Mode: types.ModeSearch}}, true
		}
		return nil, true

	default:
		m.lastKeyWasG = false
	}

	return nil, false
}
