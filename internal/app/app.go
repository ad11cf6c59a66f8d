// Package app hosts the root Bubble Tea model: the screen router wrapped in
// the shared header and footer.
package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathmonsters/internal/game"
	"github.com/abhisek/mathmonsters/internal/logging"
	"github.com/abhisek/mathmonsters/internal/router"
	"github.com/abhisek/mathmonsters/internal/screen"
	"github.com/abhisek/mathmonsters/internal/screens/home"
	"github.com/abhisek/mathmonsters/internal/screens/setup"
	"github.com/abhisek/mathmonsters/internal/screens/welcome"
	"github.com/abhisek/mathmonsters/internal/ui/layout"
)

// Options configures Run.
type Options struct {
	Game *game.Game
	Log  *logging.Logger

	// SkipWelcome starts directly on home or setup.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	g      *game.Game
	router *router.Router
	width  int
	height int
}

// newAppModel creates an AppModel starting on the welcome splash.
func newAppModel(opts Options) AppModel {
	first := StartScreen(opts.Game)
	if !opts.SkipWelcome {
		first = welcome.New(func() screen.Screen { return StartScreen(opts.Game) })
	}
	return AppModel{
		g:      opts.Game,
		router: router.New(first),
	}
}

// StartScreen is home for a returning player and setup otherwise.
func StartScreen(g *game.Game) screen.Screen {
	if g.HasSave() {
		return home.New(g)
	}
	return setup.New(g, func() screen.Screen { return home.New(g) })
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if bh, ok := m.router.Active().(screen.BackHandler); ok && bh.HandlesBack() {
				break
			}
			if m.router.Depth() > 1 {
				return m, router.PopCmd()
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m AppModel) header(title string) layout.Header {
	h := layout.Header{Title: title}
	if m.g.HasSave() {
		d := m.g.Save()
		h.Level = d.Level()
		h.XP = d.Progress.XP
		h.XPToNext = d.XPToNextLevel()
		h.Practice = d.Flags.PracticeMode
	}
	return h
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(m.header(title), m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(footer))
	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	log := opts.Log
	if log == nil {
		log = logging.Nop()
	}

	log.Info("starting ui", "has_save", opts.Game.HasSave(), "level", opts.Game.Level())
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		log.Error("ui exited with error", "error", err)
		return err
	}
	log.Info("ui closed")
	return nil
}
