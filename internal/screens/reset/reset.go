// Package reset confirms and performs a full progress wipe.
package reset

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathmonsters/internal/game"
	"github.com/abhisek/mathmonsters/internal/router"
	"github.com/abhisek/mathmonsters/internal/screen"
	"github.com/abhisek/mathmonsters/internal/ui/components"
	"github.com/abhisek/mathmonsters/internal/ui/layout"
	"github.com/abhisek/mathmonsters/internal/ui/theme"
)

// ResetScreen asks before erasing the save.
type ResetScreen struct {
	g          *game.Game
	afterReset func() screen.Screen
	buttons    components.ButtonRow
}

var _ screen.Screen = (*ResetScreen)(nil)
var _ screen.KeyHintProvider = (*ResetScreen)(nil)

// New creates a ResetScreen. afterReset builds the screen that replaces the
// whole stack once progress is gone.
func New(g *game.Game, afterReset func() screen.Screen) *ResetScreen {
	s := &ResetScreen{g: g, afterReset: afterReset}
	s.buttons = components.NewButtonRow(
		components.Button{Label: "Keep playing", OnPress: s.cancel},
		components.Button{Label: "Erase everything", OnPress: s.confirm},
	)
	return s
}

func (s *ResetScreen) Init() tea.Cmd { return nil }

func (s *ResetScreen) Title() string { return "Reset Progress" }

func (s *ResetScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Confirm"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ResetScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.buttons, cmd = s.buttons.Update(msg)
	return s, cmd
}

func (s *ResetScreen) cancel() tea.Cmd {
	return router.PopCmd()
}

func (s *ResetScreen) confirm() tea.Cmd {
	s.g.Reset(context.Background())
	next := s.afterReset()
	return router.ResetCmd(next)
}

func (s *ResetScreen) View(width, height int) string {
	warn := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Erase all progress?")
	body := lipgloss.NewStyle().Foreground(theme.Text).Render(
		"Your level, XP and every skill go back to the start.\nThis cannot be undone.")

	content := warn + "\n\n" + body + "\n\n" + s.buttons.View()
	card := components.ArcadeCard(content, components.ContentWidth(width))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
