package modes

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings of the meal list
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Search key.Binding
	Area   key.Binding
	Sort   key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// Keys is the default key map
var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "details"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Area: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "area"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp returns the bindings shown in the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Open, k.Search, k.Area, k.Sort, k.Reload, k.Help, k.Quit}
}

// DetailKeys are the bindings shown while the detail modal is open
var DetailKeys = []key.Binding{
	key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("↑/↓/j/k", "scroll")),
	key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc/q", "close")),
}
