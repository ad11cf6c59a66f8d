package welcome

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathmonsters/internal/router"
	"github.com/abhisek/mathmonsters/internal/screen"
)

type nextScreen struct{}

func (n *nextScreen) Init() tea.Cmd                           { return nil }
func (n *nextScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return n, nil }
func (n *nextScreen) View(int, int) string                    { return "next" }
func (n *nextScreen) Title() string                           { return "Next" }

func newWelcome() (*WelcomeScreen, *int) {
	built := 0
	return New(func() screen.Screen {
		built++
		return &nextScreen{}
	}), &built
}

func advance(w *WelcomeScreen, frames int) {
	for range frames {
		w.Update(frameMsg(time.Now()))
	}
}

func TestStages(t *testing.T) {
	w, _ := newWelcome()
	assert.Equal(t, stageMonster, w.stage())
	assert.NotContains(t, w.View(80, 24), tagline)
	assert.NotContains(t, w.View(80, 24), "★")

	advance(w, 5)
	assert.Equal(t, stageSparkle, w.stage())
	assert.NotContains(t, w.View(80, 24), tagline)

	advance(w, 10)
	assert.Equal(t, stageTitle, w.stage())
	assert.Contains(t, w.View(80, 24), tagline)
}

func TestElapsedStopsAtEnd(t *testing.T) {
	w, built := newWelcome()
	advance(w, 60)
	assert.Equal(t, animEnd, w.elapsed)
	assert.Zero(t, *built, "no transition without a key")
}

func TestKeySkipsAnimation(t *testing.T) {
	w, built := newWelcome()
	advance(w, 2)

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeySpace})
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &nextScreen{}, msg.Screen)
	assert.Equal(t, 1, *built)
}

func TestNextBuiltOnce(t *testing.T) {
	w, built := newWelcome()
	w.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b', Text: "b"})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, *built)
}

func TestNarrowTerminalUsesPlainTitle(t *testing.T) {
	w, _ := newWelcome()
	advance(w, 20)
	assert.Contains(t, w.View(40, 30), titlePlain)
	assert.NotContains(t, w.View(80, 30), titlePlain)
}
