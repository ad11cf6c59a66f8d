package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathmonsters/internal/game"
	"github.com/abhisek/mathmonsters/internal/router"
	"github.com/abhisek/mathmonsters/internal/screen"
	battlescreen "github.com/abhisek/mathmonsters/internal/screens/battle"
	"github.com/abhisek/mathmonsters/internal/screens/reset"
	"github.com/abhisek/mathmonsters/internal/screens/settings"
	"github.com/abhisek/mathmonsters/internal/screens/setup"
	"github.com/abhisek/mathmonsters/internal/screens/skills"
	"github.com/abhisek/mathmonsters/internal/ui/components"
	"github.com/abhisek/mathmonsters/internal/ui/layout"
)

const (
	homeHint      = "Pick START BATTLE and answer fast for bonus damage!"
	migrationNote = "We moved your progress from the old version of the game."
)

// HomeScreen is the main menu.
type HomeScreen struct {
	g    *game.Game
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen for g.
func New(g *game.Game) *HomeScreen {
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd { return router.PushCmd(build()) }
	}

	items := []components.MenuItem{
		{Label: "START BATTLE", Action: push(func() screen.Screen {
			return battlescreen.New(g, "")
		})},
		{Label: "CHOOSE SKILL", Action: push(func() screen.Screen {
			return skills.New(g, skills.ModePick)
		})},
		{Label: "SKILLS", Action: push(func() screen.Screen {
			return skills.New(g, skills.ModeView)
		})},
		{Label: "SETTINGS", Action: push(func() screen.Screen {
			return settings.New(g)
		})},
		{Label: "RESET PROGRESS", Action: push(func() screen.Screen {
			return reset.New(g, func() screen.Screen {
				return setup.New(g, func() screen.Screen { return New(g) })
			})
		})},
		{Label: "EXIT GAME", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		g:    g,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "1-6", Description: "Jump"},
	}
	if len(h.notes()) > 0 {
		hints = append(hints, layout.KeyHint{Key: "d", Description: "Dismiss"})
	}
	return hints
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "d" {
		ctx := context.Background()
		d := h.g.Save()
		if !d.Flags.SeenHomeHint {
			_ = h.g.DismissHomeHint(ctx)
		}
		if d.Flags.MigratedFromLegacy {
			_ = h.g.DismissMigrationNote(ctx)
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// notes returns the dismissable messages for the current save.
func (h *HomeScreen) notes() []string {
	if !h.g.HasSave() {
		return nil
	}
	d := h.g.Save()
	var out []string
	if d.Flags.MigratedFromLegacy {
		out = append(out, migrationNote)
	}
	if !d.Flags.SeenHomeHint {
		out = append(out, homeHint)
	}
	return out
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer to estimate the
	// terminal height.
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)
	d := h.g.Save()

	creatureName := d.Child.SelectedCreatureID
	if c, ok := h.g.Catalog().Creature(creatureName); ok {
		creatureName = c.Name
	}

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, RenderCreature(d.Child.SelectedCreatureID))
	}
	sections = append(sections, renderStatsBar(stats{
		Creature: creatureName,
		Grade:    d.Child.Grade,
		Level:    h.g.Level(),
		XP:       d.Progress.XP,
		Battles:  d.Progress.BattlesPlayed,
		Practice: d.Flags.PracticeMode,
	}, cw, compact))

	if notes := renderNotes(h.notes(), cw); notes != "" {
		sections = append(sections, notes)
	}

	sections = append(sections, components.ArcadeMenu(h.menu.Labels(), h.menu.Selected, cw, compact))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
