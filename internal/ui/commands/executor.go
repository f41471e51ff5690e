package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"mealdeck/internal/domain"
	"mealdeck/internal/ui/repositories"
	"mealdeck/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(ctx context.Context, state *state.AppState, store repositories.MealStore, loader repositories.Loader) *Executor {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Executor{
		ctx: &CommandContext{
			Ctx:    ctx,
			State:  state,
			Store:  store,
			Loader: loader,
		},
	}
}

// ExecuteOpenDetail creates and executes an open detail command
func (e *Executor) ExecuteOpenDetail(mealID string) tea.Cmd {
	return NewOpenDetailCommand(e.ctx, mealID).Execute()
}

// ExecuteCloseDetail creates and executes a close detail command
func (e *Executor) ExecuteCloseDetail() tea.Cmd {
	return NewCloseDetailCommand(e.ctx).Execute()
}

// ExecuteSearch creates and executes a search command
func (e *Executor) ExecuteSearch(query string) tea.Cmd {
	return NewSearchCommand(e.ctx, query).Execute()
}

// ExecuteClearSearch creates and executes a clear search command
func (e *Executor) ExecuteClearSearch() tea.Cmd {
	return NewClearSearchCommand(e.ctx).Execute()
}

// ExecuteSetArea creates and executes an area filter command
func (e *Executor) ExecuteSetArea(area string) tea.Cmd {
	return NewSetAreaCommand(e.ctx, area).Execute()
}

// ExecuteSetSort creates and executes a sort command
func (e *Executor) ExecuteSetSort(option domain.SortOption) tea.Cmd {
	return NewSetSortCommand(e.ctx, option).Execute()
}

// ExecuteReload creates and executes a reload command
func (e *Executor) ExecuteReload() tea.Cmd {
	return NewReloadCommand(e.ctx).Execute()
}
