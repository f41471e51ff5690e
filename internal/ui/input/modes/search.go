package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"mealdeck/internal/ui/input/types"
)

// SearchMode filters the list by meal name while typing
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}
