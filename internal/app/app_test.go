package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathmonsters/internal/catalog"
	"github.com/abhisek/mathmonsters/internal/game"
	"github.com/abhisek/mathmonsters/internal/router"
	"github.com/abhisek/mathmonsters/internal/save"
	"github.com/abhisek/mathmonsters/internal/screens/home"
	"github.com/abhisek/mathmonsters/internal/screens/settings"
	"github.com/abhisek/mathmonsters/internal/screens/setup"
	"github.com/abhisek/mathmonsters/internal/store"
)

func newGame(t *testing.T, withSave bool) *game.Game {
	t.Helper()
	cat := catalog.Default()
	g := game.New(context.Background(), cat, save.NewStore(store.NewMemory(), cat))
	if withSave {
		g.Setup(context.Background(), save.Params{Grade: 2})
	}
	return g
}

func esc() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEscape}
}

func TestStartScreen(t *testing.T) {
	assert.IsType(t, &setup.SetupScreen{}, StartScreen(newGame(t, false)))
	assert.IsType(t, &home.HomeScreen{}, StartScreen(newGame(t, true)))
}

func TestEscPopsRegularScreens(t *testing.T) {
	g := newGame(t, true)
	m := newAppModel(Options{Game: g, SkipWelcome: true})
	m.router.Push(settings.New(g))

	_, cmd := m.Update(esc())
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}

func TestEscOnRootIsIgnored(t *testing.T) {
	m := newAppModel(Options{Game: newGame(t, true), SkipWelcome: true})

	_, cmd := m.Update(esc())
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.router.Depth())
}

func TestEscForwardedToBackHandler(t *testing.T) {
	g := newGame(t, false)
	m := newAppModel(Options{Game: g, SkipWelcome: true})
	s, ok := m.router.Active().(*setup.SetupScreen)
	require.True(t, ok)

	// Grade confirmed, so setup is on its second step.
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Contains(t, s.View(80, 24), "Step 2 of 3")

	m.Update(esc())
	assert.Equal(t, 1, m.router.Depth())
	assert.Contains(t, s.View(80, 24), "Step 1 of 3")
}

func TestFooterUsesScreenHints(t *testing.T) {
	g := newGame(t, true)
	m := newAppModel(Options{Game: g, SkipWelcome: true})
	m.router.Push(settings.New(g))

	hints := m.footerHints()
	require.NotEmpty(t, hints)
	assert.Equal(t, "Move", hints[0].Description)
	assert.Equal(t, "Ctrl+C", hints[len(hints)-1].Key)
}
