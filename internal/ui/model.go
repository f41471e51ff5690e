package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"mealdeck/internal/config"
	"mealdeck/internal/mealdb"
	"mealdeck/internal/ui/commands"
	"mealdeck/internal/ui/handlers"
	"mealdeck/internal/ui/input"
	"mealdeck/internal/ui/input/modes"
	inputtypes "mealdeck/internal/ui/input/types"
	"mealdeck/internal/ui/logic"
	"mealdeck/internal/ui/repositories"
	"mealdeck/internal/ui/state"
	"mealdeck/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	config *config.Config
	logger *zap.Logger
	state  *state.AppState // centralized state

	cancel context.CancelFunc // stops in-flight lookups on quit

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	spinner     spinner.Model
	detail      viewport.Model
	inPagerMode bool // tracks if we're currently in pager mode

	// Handlers
	navigator    *logic.Navigator       // navigation and viewport handler
	renderer     *views.Renderer        // view renderer
	detailRender *views.DetailRenderer  // recipe card renderer
	eventHandler *handlers.EventHandler // event processing handler
	store        repositories.MealStore // catalog accessors and commands
	loader       repositories.Loader
	cmdExecutor  *commands.Executor // command executor
	inputHandler *input.Handler     // input handling
	helpRender   *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model over store. loader and logger may be nil.
// Store events reach the model as EventMsg values sent to the program.
func NewModel(store repositories.MealStore, loader repositories.Loader, cfg *config.Config, logger *zap.Logger) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	appState := state.NewAppState()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		config:       cfg,
		logger:       logger.Named("ui"),
		state:        appState,
		cancel:       cancel,
		help:         help.New(),
		spinner:      sp,
		detail:       viewport.New(60, 20),
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(cfg.UISettings.ShowRatings, cfg.UISettings.ShowArea),
		detailRender: views.NewDetailRenderer(),
		store:        store,
		loader:       loader,
		inputHandler: input.New(),
		helpRender:   NewHelpRenderer(),
	}
	m.cmdExecutor = commands.NewExecutor(ctx, appState, store, loader)
	m.eventHandler = handlers.NewEventHandler(appState, m.syncFromStore, m.startSpinner)

	m.syncFromStore()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	if m.loader != nil && m.loader.IsLoading() {
		m.state.Loading = true
		return m.spinner.Tick
	}
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		m.resizeDetail()
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		m.updateViewportHeight()
		return m, tea.Batch(cmds...)

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.buildViewState())
}

func (m *Model) buildViewState() views.ViewState {
	vs := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Meals:          m.state.Meals,
		SelectedIndex:  m.state.SelectedIndex,
		ViewportOffset: m.state.ViewportOffset,
		ViewportHeight: m.state.ViewportHeight,
		InitialLoaded:  m.store.InitialLoaded(),
		Loading:        m.state.Loading,
		Spinner:        m.spinner.View(),
		LoadedCount:    m.state.LoadedCount,
		StatusMessage:  m.state.StatusMessage,
		StatusIsError:  m.state.StatusIsError,
		SearchQuery:    m.state.SearchQuery,
		SelectedArea:   m.state.SelectedArea,
		SortOption:     m.state.SortOption,
		AreaOptions:    m.state.AreaOptions(),
		AreaIndex:      m.state.AreaOptionIndex,
		SortIndex:      m.state.SortOptionIndex,
		ShowDetail:     m.state.ShowDetail,
		HelpLine:       m.help.ShortHelpView(modes.Keys.ShortHelp()),
	}

	switch mode := m.inputHandler.CurrentMode(); mode {
	case inputtypes.ModeSearch:
		vs.InputMode = mode.String()
		if ti := m.inputHandler.TextInput(); ti != nil {
			vs.TextInput = ti.View()
		}
	case inputtypes.ModeArea, inputtypes.ModeSort:
		vs.InputMode = mode.String()
	}

	if m.state.ShowDetail {
		vs.DetailContent = m.detail.View()
		vs.DetailFooter = m.help.ShortHelpView(modes.DetailKeys)
	}
	return vs
}

func (m *Model) inputContext() inputtypes.Context {
	return &input.ModelContext{State: m.state}
}

// syncFromStore re-reads the store after a change and keeps the cursor on
// the same meal when it is still listed
func (m *Model) syncFromStore() {
	currentID := ""
	if meal, ok := m.state.CurrentMeal(); ok {
		currentID = meal.ID
	}

	m.state.Meals = m.store.View()
	m.state.Areas = m.store.Areas()
	m.state.SelectedArea = m.store.SelectedArea()
	m.state.SortOption = m.store.SortOption()
	m.state.SearchQuery = m.store.SearchQuery()

	if currentID != "" {
		for i, meal := range m.state.Meals {
			if meal.ID == currentID {
				m.state.SelectedIndex = i
				break
			}
		}
	}
	m.ensureSelectedVisible()
}

func (m *Model) startSpinner() tea.Cmd {
	return m.spinner.Tick
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.logger.Debug("processAction", zap.String("action", action.Type()))

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.OpenDetailAction:
		return m.cmdExecutor.ExecuteOpenDetail(a.MealID)

	case inputtypes.CloseDetailAction:
		return m.cmdExecutor.ExecuteCloseDetail()

	case inputtypes.ScrollDetailAction:
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(a.Key)
		return cmd

	case inputtypes.UpdateTextAction:
		// Live search while typing
		m.search(a.Text)

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeSearch {
			m.search(a.Text)
			if a.Text != "" {
				m.state.SetStatus(fmt.Sprintf("%d meals match %q", len(m.state.Meals), a.Text))
			}
		}

	case inputtypes.CancelTextAction:
		if a.Mode == inputtypes.ModeSearch {
			m.search("")
		}

	case inputtypes.SetAreaAction:
		m.cmdExecutor.ExecuteSetArea(a.Area)
		m.syncFromStore()

	case inputtypes.UpdateAreaIndexAction:
		m.state.AreaOptionIndex = a.Index

	case inputtypes.SetSortAction:
		m.cmdExecutor.ExecuteSetSort(a.Option)
		m.syncFromStore()

	case inputtypes.UpdateSortIndexAction:
		m.state.SortOptionIndex = a.Index

	case inputtypes.ReloadAction:
		return m.cmdExecutor.ExecuteReload()

	case inputtypes.ShowHelpAction:
		return m.fetchHelpPager(m.helpRender.RenderHelpContent())

	case inputtypes.QuitAction:
		m.cancel()
		return tea.Quit
	}

	return nil
}

func (m *Model) search(query string) {
	if query == "" {
		m.cmdExecutor.ExecuteClearSearch()
	} else {
		m.cmdExecutor.ExecuteSearch(query)
	}
	m.state.SelectedIndex = 0
	m.syncFromStore()
}

func (m *Model) navigate(direction string) {
	m.syncNavigatorState()
	switch direction {
	case "up":
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(-1)
	case "down":
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(1)
	case "pageup":
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(-m.navigator.PageSize())
	case "pagedown":
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(m.navigator.PageSize())
	case "home":
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(0)
	case "end":
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(m.navigator.MaxIndex())
	}
}

// handleNonKeyboardMsg processes non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		cmd := m.eventHandler.HandleEvent(msg.Event)
		return m, cmd

	case spinner.TickMsg:
		// The spinner stops once loading is over
		if !m.state.Loading || m.inPagerMode {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case commands.DetailLoadedMsg:
		if m.state.PendingDetail == msg.MealID {
			m.state.PendingDetail = ""
		}
		if msg.Err != nil {
			m.logger.Warn("meal detail failed", zap.String("id", msg.MealID), zap.Error(msg.Err))
			m.state.SetError(fmt.Sprintf("Could not load recipe: %s", describeError(msg.Err)))
			return m, nil
		}
		m.state.ClearStatus()
		m.openDetail()
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			m.logger.Warn("help pager failed", zap.Error(msg.err))
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		if m.state.Loading {
			return m, m.spinner.Tick
		}
		return m, nil

	default:
		return m, nil
	}
}

// openDetail shows the meal the store selected, if its modal is open
func (m *Model) openDetail() {
	meal, ok := m.store.SelectedDetail()
	if !ok || !m.store.IsDetailOpen() {
		return
	}

	m.state.ShowDetail = true
	m.state.DetailID = meal.ID
	m.resizeDetail()
	m.detail.GotoTop()
	m.inputHandler.ChangeMode(inputtypes.ModeDetail, m.inputContext())
}

// resizeDetail fits the detail viewport to the window and re-renders the recipe
func (m *Model) resizeDetail() {
	w, h := views.PopupSize(m.width, m.height)
	m.detail.Width = w - 2  // box padding
	m.detail.Height = h - 4 // border, blank line and key help
	if m.detail.Height < 3 {
		m.detail.Height = 3
	}

	if !m.state.ShowDetail {
		return
	}
	meal, ok := m.store.SelectedDetail()
	if !ok {
		return
	}
	content, err := m.detailRender.Render(meal, m.detail.Width)
	if err != nil {
		m.logger.Warn("markdown rendering failed", zap.String("id", meal.ID), zap.Error(err))
	}
	m.state.DetailContent = content
	m.detail.SetContent(lipgloss.NewStyle().MaxWidth(m.detail.Width).Render(content))
}

func describeError(err error) string {
	switch {
	case errors.Is(err, mealdb.ErrEmptyResult):
		return "meal not found"
	case mealdb.IsNetwork(err):
		return "network error"
	case mealdb.IsMalformed(err):
		return "unexpected response from server"
	case errors.Is(err, context.Canceled):
		return "cancelled"
	default:
		return err.Error()
	}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	program := m.program
	helpOps := m.helpOps
	return func() tea.Msg {
		if program == nil {
			return helpPagerMsg{err: errNoProgram}
		}
		program.Send(pauseRenderingMsg{})
		err := helpOps.ShowHelpInPager(helpContent)
		program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// syncNavigatorState updates the navigator with current model state
func (m *Model) syncNavigatorState() {
	m.navigator.UpdateState(
		m.state.SelectedIndex,
		m.state.ViewportOffset,
		m.state.ViewportHeight,
		len(m.state.Meals),
	)
}

// ensureSelectedVisible ensures the selected item is visible in the viewport
func (m *Model) ensureSelectedVisible() {
	m.syncNavigatorState()
	m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(m.state.SelectedIndex)
}

// updateViewportHeight sizes the list to what is left after title, input and footer
func (m *Model) updateViewportHeight() {
	if m.height == 0 {
		return
	}
	// padding (2) + title and gap (2) + status and key help (2)
	reserved := 6
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeSearch:
		reserved += 2
	case inputtypes.ModeArea, inputtypes.ModeSort:
		reserved += 4 // options may wrap onto a second line
	}
	height := m.height - reserved
	if height < 1 {
		height = 1
	}
	if height != m.state.ViewportHeight {
		m.state.ViewportHeight = height
		m.ensureSelectedVisible()
	}
}
