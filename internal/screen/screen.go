// Package screen defines what the router stacks. It sits below both the
// router and the screens so neither has to import the other.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathmonsters/internal/ui/layout"
)

// Screen is one page of the TUI. View gets the area left between the
// header and the footer; Title goes in the header.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// KeyHintProvider lets a screen fill the footer. Screens without it get
// the app defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// BackHandler screens get Esc as a normal key while HandlesBack is true,
// e.g. to step back inside a wizard, instead of being popped.
type BackHandler interface {
	HandlesBack() bool
}
