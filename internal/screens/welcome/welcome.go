// Package welcome is the splash screen shown at launch.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathmonsters/internal/router"
	"github.com/abhisek/mathmonsters/internal/screen"
	"github.com/abhisek/mathmonsters/internal/ui/theme"
)

type stage int

const (
	stageMonster stage = iota
	stageSparkle
	stageTitle
)

const (
	frameEvery = 100 * time.Millisecond
	sparkleAt  = 500 * time.Millisecond
	titleAt    = 1500 * time.Millisecond
	animEnd    = 4500 * time.Millisecond
)

const monster = `     ▲     ▲
   ╭─┴─────┴─╮
   │  ◉   ◉  │
   │    ▼    │
   │  ╰┴┴┴╯  │
   ╰──┬───┬──╯
    ┌─┘ + └─┐
    └─┐ - ┌─┘`

const (
	titleArt = ` █▀▄▀█ ▄▀█ ▀█▀ █ █   █▀▄▀█ █▀█ █▄ █ █▀ ▀█▀ █▀▀ █▀█ █▀
 █ ▀ █ █▀█  █  █▀█   █ ▀ █ █▄█ █ ▀█ ▄█  █  ██▄ █▀▄ ▄█`
	titlePlain    = "MATH MONSTERS"
	titleArtWidth = 58
	tagline       = "Beat the monsters with math!"
)

// sparkleRows are the monster lines that get a sparkle on each side.
var sparkleRows = []int{0, 3, 6}

type frameMsg time.Time

func nextFrame() tea.Cmd {
	return tea.Tick(frameEvery, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// WelcomeScreen plays a short splash and waits for a key. The screen that
// follows is built lazily by next, once.
type WelcomeScreen struct {
	next    func() screen.Screen
	elapsed time.Duration
	frame   int
	done    bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return nextFrame() }

func (w *WelcomeScreen) stage() stage {
	switch {
	case w.elapsed >= titleAt:
		return stageTitle
	case w.elapsed >= sparkleAt:
		return stageSparkle
	default:
		return stageMonster
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case frameMsg:
		w.elapsed = min(w.elapsed+frameEvery, animEnd)
		w.frame++
		return w, nextFrame()
	case tea.KeyPressMsg:
		if w.done {
			return w, nil
		}
		w.done = true
		return w, router.ReplaceCmd(w.next())
	}
	return w, nil
}

func (w *WelcomeScreen) View(width, height int) string {
	art := lipgloss.NewStyle().Foreground(theme.Secondary).Render(monster)
	if w.stage() >= stageSparkle {
		art = w.sparkle(art)
	}

	parts := []string{art}
	if w.stage() == stageTitle {
		parts = append(parts,
			"",
			title(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(tagline),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key to continue"),
		)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(parts, "\n"))
}

// sparkle frames the monster with stars that swap colors every frame.
func (w *WelcomeScreen) sparkle(art string) string {
	star := "★"
	if w.frame%2 == 1 {
		star = "✦"
	}
	a := lipgloss.NewStyle().Foreground(theme.Accent).Render(star)
	b := lipgloss.NewStyle().Foreground(theme.Secondary).Render(star)

	lines := strings.Split(art, "\n")
	for i, row := range sparkleRows {
		if row >= len(lines) {
			break
		}
		left, right := a, b
		if i%2 == 1 {
			left, right = b, a
		}
		lines[row] = left + "  " + lines[row] + "  " + right
	}
	return strings.Join(lines, "\n")
}

func title(width int) string {
	st := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	if width < titleArtWidth {
		return st.Render(titlePlain)
	}
	return st.Render(titleArt)
}
