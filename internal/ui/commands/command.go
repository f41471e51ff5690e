package commands

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"mealdeck/internal/domain"
	"mealdeck/internal/loader"
	"mealdeck/internal/ui/repositories"
	"mealdeck/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	Ctx    context.Context
	State  *state.AppState
	Store  repositories.MealStore
	Loader repositories.Loader
}

// DetailLoadedMsg reports the end of a meal lookup
type DetailLoadedMsg struct {
	MealID string
	Err    error
}

// OpenDetailCommand looks a meal up and opens the detail modal
type OpenDetailCommand struct {
	ctx    *CommandContext
	mealID string
}

// NewOpenDetailCommand creates a new open detail command
func NewOpenDetailCommand(ctx *CommandContext, mealID string) *OpenDetailCommand {
	return &OpenDetailCommand{ctx: ctx, mealID: mealID}
}

// Execute starts the lookup; the result arrives as a DetailLoadedMsg
func (c *OpenDetailCommand) Execute() tea.Cmd {
	if c.mealID == "" || c.ctx.State.PendingDetail != "" {
		return nil
	}
	c.ctx.State.PendingDetail = c.mealID
	c.ctx.State.SetStatus("Loading recipe...")

	store, ctx, id := c.ctx.Store, c.ctx.Ctx, c.mealID
	return func() tea.Msg {
		return DetailLoadedMsg{MealID: id, Err: store.LoadMealDetail(ctx, id)}
	}
}

// CloseDetailCommand closes the detail modal
type CloseDetailCommand struct {
	ctx *CommandContext
}

// NewCloseDetailCommand creates a new close detail command
func NewCloseDetailCommand(ctx *CommandContext) *CloseDetailCommand {
	return &CloseDetailCommand{ctx: ctx}
}

func (c *CloseDetailCommand) Execute() tea.Cmd {
	c.ctx.Store.CloseDetail()
	c.ctx.State.ShowDetail = false
	c.ctx.State.DetailID = ""
	c.ctx.State.DetailContent = ""
	return nil
}

// SearchCommand narrows the list by meal name
type SearchCommand struct {
	ctx   *CommandContext
	query string
}

// NewSearchCommand creates a new search command
func NewSearchCommand(ctx *CommandContext, query string) *SearchCommand {
	return &SearchCommand{ctx: ctx, query: query}
}

func (c *SearchCommand) Execute() tea.Cmd {
	c.ctx.Store.SearchByName(c.query)
	c.ctx.State.SearchQuery = c.query
	return nil
}

// ClearSearchCommand drops the name search and goes back to the area and
// sort view
type ClearSearchCommand struct {
	ctx *CommandContext
}

// NewClearSearchCommand creates a new clear search command
func NewClearSearchCommand(ctx *CommandContext) *ClearSearchCommand {
	return &ClearSearchCommand{ctx: ctx}
}

func (c *ClearSearchCommand) Execute() tea.Cmd {
	c.ctx.Store.SearchByName("")
	c.ctx.Store.ApplyFilters()
	c.ctx.State.SearchQuery = ""
	return nil
}

// SetAreaCommand changes the area filter
type SetAreaCommand struct {
	ctx  *CommandContext
	area string
}

// NewSetAreaCommand creates a new area filter command
func NewSetAreaCommand(ctx *CommandContext, area string) *SetAreaCommand {
	return &SetAreaCommand{ctx: ctx, area: area}
}

func (c *SetAreaCommand) Execute() tea.Cmd {
	c.ctx.Store.SetAreaFilter(c.area)
	c.ctx.State.SelectedArea = c.area
	return nil
}

// SetSortCommand changes the sort option
type SetSortCommand struct {
	ctx    *CommandContext
	option domain.SortOption
}

// NewSetSortCommand creates a new sort command
func NewSetSortCommand(ctx *CommandContext, option domain.SortOption) *SetSortCommand {
	return &SetSortCommand{ctx: ctx, option: option}
}

func (c *SetSortCommand) Execute() tea.Cmd {
	c.ctx.Store.SetSortOption(c.option)
	c.ctx.State.SortOption = c.option
	return nil
}

// ReloadCommand restarts the background catalog load
type ReloadCommand struct {
	ctx *CommandContext
}

// NewReloadCommand creates a new reload command
func NewReloadCommand(ctx *CommandContext) *ReloadCommand {
	return &ReloadCommand{ctx: ctx}
}

func (c *ReloadCommand) Execute() tea.Cmd {
	if c.ctx.Loader == nil {
		return nil
	}
	err := c.ctx.Loader.Start(c.ctx.Ctx)
	switch {
	case errors.Is(err, loader.ErrAlreadyLoading):
		c.ctx.State.SetStatus("Already loading")
	case err != nil:
		c.ctx.State.SetError(fmt.Sprintf("Reload failed: %v", err))
	default:
		c.ctx.State.SetStatus("Reloading meals...")
	}
	return nil
}
