// Package setup is the first-run screen that creates the player profile.
package setup

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathmonsters/internal/catalog"
	"github.com/abhisek/mathmonsters/internal/game"
	"github.com/abhisek/mathmonsters/internal/router"
	"github.com/abhisek/mathmonsters/internal/save"
	"github.com/abhisek/mathmonsters/internal/screen"
	"github.com/abhisek/mathmonsters/internal/ui/components"
	"github.com/abhisek/mathmonsters/internal/ui/layout"
	"github.com/abhisek/mathmonsters/internal/ui/theme"
)

type step int

const (
	stepGrade step = iota
	stepCreature
	stepEmail
)

// SetupScreen walks through grade, creature and parent email.
type SetupScreen struct {
	g        *game.Game
	next     func() screen.Screen
	step     step
	grade    components.Picker
	creature components.Picker
	email    components.TextInput
	finished bool
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)
var _ screen.BackHandler = (*SetupScreen)(nil)

// New creates a SetupScreen. next builds the screen shown once the profile
// exists.
func New(g *game.Game, next func() screen.Screen) *SetupScreen {
	cat := g.Catalog()
	email := components.NewTextInput("parent@example.com (optional)", false, 64)
	return &SetupScreen{
		g:        g,
		next:     next,
		grade:    components.NewPicker("Which grade are you in?", GradeChoices(cat), strconv.Itoa(cat.DefaultGrade())),
		creature: components.NewPicker("Pick your monster buddy!", CreatureChoices(cat), cat.ResolveCreatureID("")),
		email:    email,
	}
}

// GradeChoices lists the catalog grades.
func GradeChoices(cat *catalog.Catalog) []components.Choice {
	grades := cat.Grades
	if len(grades) == 0 {
		grades = []int{cat.DefaultGrade()}
	}
	out := make([]components.Choice, 0, len(grades))
	for _, g := range grades {
		out = append(out, components.Choice{Label: fmt.Sprintf("Grade %d", g), Value: strconv.Itoa(g)})
	}
	return out
}

// CreatureChoices lists the catalog creatures with their descriptions.
func CreatureChoices(cat *catalog.Catalog) []components.Choice {
	out := make([]components.Choice, 0, len(cat.Creatures))
	for _, c := range cat.Creatures {
		out = append(out, components.Choice{Label: c.Name, Value: c.ID, Hint: c.Description})
	}
	if len(out) == 0 {
		id := catalog.DefaultCreatureID
		out = append(out, components.Choice{Label: id, Value: id})
	}
	return out
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "New Player"
}

func (s *SetupScreen) HandlesBack() bool {
	return true
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Next"}}
	if s.step == stepEmail {
		hints[0].Description = "Start playing"
	} else {
		hints = append([]layout.KeyHint{{Key: "↑↓", Description: "Choose"}}, hints...)
	}
	if s.step > stepGrade {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	return hints
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.step == stepEmail {
			var cmd tea.Cmd
			s.email, cmd = s.email.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if kmsg.String() == "esc" {
		if s.step > stepGrade {
			s.step--
		}
		return s, nil
	}

	switch s.step {
	case stepGrade:
		s.grade, _ = s.grade.Update(msg)
		if s.grade.Confirmed {
			s.grade.Confirmed = false
			s.step = stepCreature
		}
	case stepCreature:
		s.creature, _ = s.creature.Update(msg)
		if s.creature.Confirmed {
			s.creature.Confirmed = false
			s.step = stepEmail
			return s, s.email.Focus()
		}
	case stepEmail:
		if kmsg.String() == "enter" {
			return s, s.finish()
		}
		var cmd tea.Cmd
		s.email, cmd = s.email.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SetupScreen) finish() tea.Cmd {
	if s.finished {
		return nil
	}
	s.finished = true

	grade, _ := strconv.Atoi(s.grade.Value())
	s.g.Setup(context.Background(), save.Params{
		ParentEmail:        strings.TrimSpace(s.email.Value()),
		Grade:              grade,
		SelectedCreatureID: s.creature.Value(),
	})

	next := s.next()
	return router.ResetCmd(next)
}

func (s *SetupScreen) View(width, height int) string {
	var body string
	switch s.step {
	case stepGrade:
		body = s.grade.View()
	case stepCreature:
		body = s.creature.View()
	case stepEmail:
		body = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Grown-up's email") +
			"\n\n" + s.email.View() + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("Stays on this computer. Leave empty to skip.")
	}

	progress := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Step %d of 3", int(s.step)+1))

	card := components.ArcadeCard(body+"\n\n"+progress, components.ContentWidth(width))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
