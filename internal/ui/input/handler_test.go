package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealdeck/internal/domain"
	"mealdeck/internal/ui/input/types"
	"mealdeck/internal/ui/state"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newContext() *ModelContext {
	st := state.NewAppState()
	st.Meals = []domain.Meal{
		{ID: "1", Name: "Aloo Gobi", Area: "Indian"},
		{ID: "2", Name: "Carbonara", Area: "Italian"},
	}
	st.Areas = []string{"Indian", "Italian"}
	return &ModelContext{State: st}
}

func TestNormalModeNavigation(t *testing.T) {
	h := New()
	ctx := newContext()

	actions, _ := h.HandleKey(runes("j"), ctx)
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "down"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyUp}, ctx)
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "up"}}, actions)

	actions, _ = h.HandleKey(runes("G"), ctx)
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "end"}}, actions)

	actions, _ = h.HandleKey(runes("g"), ctx)
	assert.Empty(t, actions)
	actions, _ = h.HandleKey(runes("g"), ctx)
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "home"}}, actions)
}

func TestEnterOpensCurrentMeal(t *testing.T) {
	h := New()
	ctx := newContext()
	ctx.State.SelectedIndex = 1

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.OpenDetailAction{MealID: "2"}}, actions)

	ctx.State.Meals = nil
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Empty(t, actions)
}

func TestQuitKeys(t *testing.T) {
	h := New()
	ctx := newContext()

	actions, _ := h.HandleKey(runes("q"), ctx)
	assert.Equal(t, []types.Action{types.QuitAction{Force: false}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC}, ctx)
	assert.Equal(t, []types.Action{types.QuitAction{Force: true}}, actions)
}

func TestSearchModeTypesAndSubmits(t *testing.T) {
	h := New()
	ctx := newContext()

	_, cmd := h.HandleKey(runes("/"), ctx)
	assert.NotNil(t, cmd)
	require.Equal(t, types.ModeSearch, h.CurrentMode())
	require.NotNil(t, h.TextInput())
	assert.Equal(t, "Search: ", h.Prompt())

	actions, _ := h.HandleKey(runes("c"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "c"}}, actions)
	actions, _ = h.HandleKey(runes("h"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "ch"}}, actions)

	// q is text while searching, not quit
	actions, _ = h.HandleKey(runes("q"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "chq"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.SubmitTextAction{Text: "chq", Mode: types.ModeSearch}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestSearchModeEscCancels(t *testing.T) {
	h := New()
	ctx := newContext()

	h.HandleKey(runes("/"), ctx)
	h.HandleKey(runes("x"), ctx)
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)

	assert.Equal(t, []types.Action{types.CancelTextAction{Mode: types.ModeSearch}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestSortModeAppliesAndRestores(t *testing.T) {
	h := New()
	ctx := newContext()
	ctx.State.SortOption = domain.SortRatingAsc

	actions, _ := h.HandleKey(runes("s"), ctx)
	assert.Equal(t, []types.Action{types.UpdateSortIndexAction{Index: 1}}, actions)
	assert.Equal(t, types.ModeSort, h.CurrentMode())

	actions, _ = h.HandleKey(runes("j"), ctx)
	assert.Equal(t, []types.Action{
		types.UpdateSortIndexAction{Index: 2},
		types.SetSortAction{Option: domain.SortRatingDesc},
	}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{types.SetSortAction{Option: domain.SortRatingAsc}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestSortModeWraps(t *testing.T) {
	h := New()
	ctx := newContext()

	h.HandleKey(runes("s"), ctx)
	actions, _ := h.HandleKey(runes("k"), ctx)
	last := len(domain.SortOptions) - 1
	assert.Equal(t, []types.Action{
		types.UpdateSortIndexAction{Index: last},
		types.SetSortAction{Option: domain.SortOptions[last]},
	}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestAreaModeOffersAllPlusAreas(t *testing.T) {
	h := New()
	ctx := newContext()
	ctx.State.SelectedArea = "Italian"

	actions, _ := h.HandleKey(runes("a"), ctx)
	assert.Equal(t, []types.Action{types.UpdateAreaIndexAction{Index: 2}}, actions)

	actions, _ = h.HandleKey(runes("j"), ctx)
	assert.Equal(t, []types.Action{
		types.UpdateAreaIndexAction{Index: 0},
		types.SetAreaAction{Area: ""},
	}, actions)

	actions, _ = h.HandleKey(runes("q"), ctx)
	assert.Equal(t, []types.Action{types.SetAreaAction{Area: "Italian"}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestDetailModeClosesAndScrolls(t *testing.T) {
	h := New()
	ctx := newContext()

	h.ChangeMode(types.ModeDetail, ctx)
	require.Equal(t, types.ModeDetail, h.CurrentMode())

	down := runes("j")
	actions, _ := h.HandleKey(down, ctx)
	assert.Equal(t, []types.Action{types.ScrollDetailAction{Key: down}}, actions)

	actions, _ = h.HandleKey(runes("q"), ctx)
	assert.Equal(t, []types.Action{types.CloseDetailAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestChangeModeToCurrentIsNoop(t *testing.T) {
	h := New()
	assert.Nil(t, h.ChangeMode(types.ModeNormal, newContext()))
}
