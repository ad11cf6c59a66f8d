// Package summary shows the result of a finished battle.
package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathmonsters/internal/battle"
	"github.com/abhisek/mathmonsters/internal/game"
	"github.com/abhisek/mathmonsters/internal/mastery"
	"github.com/abhisek/mathmonsters/internal/router"
	"github.com/abhisek/mathmonsters/internal/screen"
	"github.com/abhisek/mathmonsters/internal/ui/components"
	"github.com/abhisek/mathmonsters/internal/ui/layout"
	"github.com/abhisek/mathmonsters/internal/ui/theme"
)

// SummaryScreen displays the battle result.
type SummaryScreen struct {
	g        *game.Game
	summary  battle.Summary
	headline string
	menu     components.Menu
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.BackHandler = (*SummaryScreen)(nil)

// New creates a SummaryScreen. playAgain builds the screen for a rematch.
func New(g *game.Game, sum battle.Summary, headline string, playAgain func() screen.Screen) *SummaryScreen {
	s := &SummaryScreen{g: g, summary: sum, headline: headline}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Play again", Action: func() tea.Cmd {
			g.EndBattle()
			next := playAgain()
			return router.ReplaceCmd(next)
		}},
		{Label: "Back home", Action: s.backHome},
	})
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Battle Result"
}

func (s *SummaryScreen) HandlesBack() bool {
	return true
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) backHome() tea.Cmd {
	s.g.EndBattle()
	return router.PopCmd()
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, s.backHome()
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	var b strings.Builder

	title, titleColor := "Battle over", color.Color(theme.Accent)
	if sum.Outcome == battle.OutcomePlayer {
		title, titleColor = "Victory!", theme.Success
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(titleColor).
		Bold(true).
		Render(title))
	b.WriteString("\n\n")

	if s.headline != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(s.headline))
		b.WriteString("\n\n")
	}

	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Accuracy: %.0f%%",
		sum.TotalQuestions, sum.TotalCorrect, sum.Accuracy*100)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n")

	hpLine := fmt.Sprintf("Fast answers: %d        Your HP: %d        Enemy HP: %d",
		sum.FastAnswers, sum.PlayerHP, sum.EnemyHP)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(hpLine))
	b.WriteString("\n\n")

	diff := fmt.Sprintf("Difficulty %s", mastery.DifficultyMeter(sum.DifficultyAfter))
	diffStyle := lipgloss.NewStyle().Foreground(theme.Text)
	switch {
	case sum.DifficultyAfter > sum.DifficultyBefore:
		diff += "  ▲ harder questions next time!"
		diffStyle = diffStyle.Foreground(theme.Success)
	case sum.DifficultyAfter < sum.DifficultyBefore:
		diff += "  ▼ a little easier next time"
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, diffStyle.Render(diff)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
			Render(fmt.Sprintf("★ Level %d", sum.Level))))
	b.WriteString("\n\n")

	b.WriteString(components.ArcadeMenu(s.menu.Labels(), s.menu.Selected, width, true))
	return b.String()
}
