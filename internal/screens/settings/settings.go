// Package settings edits the player profile after setup.
package settings

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathmonsters/internal/game"
	"github.com/abhisek/mathmonsters/internal/router"
	"github.com/abhisek/mathmonsters/internal/screen"
	"github.com/abhisek/mathmonsters/internal/screens/setup"
	"github.com/abhisek/mathmonsters/internal/ui/components"
	"github.com/abhisek/mathmonsters/internal/ui/layout"
	"github.com/abhisek/mathmonsters/internal/ui/theme"
)

type field int

const (
	fieldGrade field = iota
	fieldCreature
	fieldPractice
	fieldEmail
	fieldSave
	fieldCount
)

// SettingsScreen edits grade, creature, practice mode and parent email.
type SettingsScreen struct {
	g         *game.Game
	cursor    field
	grades    []components.Choice
	creatures []components.Choice
	grade     int
	creature  int
	practice  bool
	email     components.TextInput
	errMsg    string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a SettingsScreen prefilled from the current save.
func New(g *game.Game) *SettingsScreen {
	cur := g.CurrentSettings()
	s := &SettingsScreen{
		g:         g,
		grades:    setup.GradeChoices(g.Catalog()),
		creatures: setup.CreatureChoices(g.Catalog()),
		practice:  cur.PracticeMode,
		email:     components.NewTextInput("parent@example.com", false, 64),
	}
	s.grade = indexOf(s.grades, strconv.Itoa(cur.Grade))
	s.creature = indexOf(s.creatures, cur.SelectedCreatureID)
	s.email.SetValue(cur.ParentEmail)
	s.email.Blur()
	return s
}

func indexOf(choices []components.Choice, value string) int {
	for i, c := range choices {
		if c.Value == value {
			return i
		}
	}
	return 0
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "↑↓", Description: "Move"}}
	switch s.cursor {
	case fieldGrade, fieldCreature:
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Change"})
	case fieldPractice:
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Toggle"})
	case fieldSave:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Save"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Cancel"})
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.cursor == fieldEmail {
			var cmd tea.Cmd
			s.email, cmd = s.email.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	switch kmsg.String() {
	case "up", "shift+tab":
		return s, s.move(-1)
	case "down", "tab":
		return s, s.move(1)
	}

	switch s.cursor {
	case fieldGrade:
		s.grade = cycle(s.grade, len(s.grades), kmsg.String())
	case fieldCreature:
		s.creature = cycle(s.creature, len(s.creatures), kmsg.String())
	case fieldPractice:
		switch kmsg.String() {
		case "space", " ", "enter", "left", "right":
			s.practice = !s.practice
		}
	case fieldEmail:
		if kmsg.String() == "enter" {
			return s, s.move(1)
		}
		var cmd tea.Cmd
		s.email, cmd = s.email.Update(msg)
		return s, cmd
	case fieldSave:
		if kmsg.String() == "enter" {
			return s, s.save()
		}
	}
	return s, nil
}

func (s *SettingsScreen) move(delta int) tea.Cmd {
	next := field(int(s.cursor) + delta)
	if next < 0 || next >= fieldCount {
		return nil
	}
	s.cursor = next
	if s.cursor == fieldEmail {
		return s.email.Focus()
	}
	s.email.Blur()
	return nil
}

func cycle(i, n int, key string) int {
	if n == 0 {
		return 0
	}
	switch key {
	case "left", "h":
		return (i - 1 + n) % n
	case "right", "l", "enter", "space", " ":
		return (i + 1) % n
	}
	return i
}

// Settings returns the values currently shown on screen.
func (s *SettingsScreen) Settings() game.Settings {
	grade, _ := strconv.Atoi(s.grades[s.grade].Value)
	return game.Settings{
		Grade:              grade,
		SelectedCreatureID: s.creatures[s.creature].Value,
		ParentEmail:        strings.TrimSpace(s.email.Value()),
		PracticeMode:       s.practice,
	}
}

func (s *SettingsScreen) save() tea.Cmd {
	if err := s.g.UpdateSettings(context.Background(), s.Settings()); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	return router.PopCmd()
}

func (s *SettingsScreen) View(width, height int) string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(16)
	value := lipgloss.NewStyle().Foreground(theme.Text)
	active := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	line := func(f field, name, val string) string {
		prefix := "    "
		style := value
		if s.cursor == f {
			prefix = "  ▸ "
			style = active
		}
		return prefix + label.Render(name) + style.Render(val)
	}

	practice := "off"
	if s.practice {
		practice = "on"
	}

	var b strings.Builder
	b.WriteString(line(fieldGrade, "Grade", "◂ "+s.grades[s.grade].Label+" ▸") + "\n")
	b.WriteString(line(fieldCreature, "Monster buddy", "◂ "+s.creatures[s.creature].Label+" ▸") + "\n")
	b.WriteString(line(fieldPractice, "Practice mode", practice) + "\n")
	b.WriteString(line(fieldEmail, "Grown-up email", "") + s.email.View() + "\n\n")

	b.WriteString(components.ArcadeButton("Save", s.cursor == fieldSave, 16))

	if s.errMsg != "" {
		b.WriteString("\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(fmt.Sprintf("  %s", s.errMsg)))
	}

	card := components.ArcadeCard(b.String(), components.ContentWidth(width))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
