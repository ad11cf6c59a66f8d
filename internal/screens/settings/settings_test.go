package settings

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
	"github.com/abhisek/mathmonsters/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestGame(t *testing.T) *game.Game {
	t.Helper()
	cat := catalog.Default()
	g := game.New(context.Background(), cat, save.NewStore(store.NewMemory(), cat))
	g.Setup(context.Background(), save.Params{Grade: 2, SelectedCreatureID: "shellfin", ParentEmail: "mom@example.com"})
	return g
}

func TestPrefilledFromSave(t *testing.T) {
	s := New(newTestGame(t))

	got := s.Settings()
	assert.Equal(t, 2, got.Grade)
	assert.Equal(t, "shellfin", got.SelectedCreatureID)
	assert.Equal(t, "mom@example.com", got.ParentEmail)
	assert.False(t, got.PracticeMode)
}

func TestEditAndSave(t *testing.T) {
	g := newTestGame(t)
	s := New(g)

	s.Update(specialKey(tea.KeyRight)) // grade 3
	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyRight)) // emberpup
	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeySpace)) // practice on
	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyDown))

	require.Equal(t, fieldSave, s.cursor)
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok, "expected PopScreenMsg")

	d := g.Save()
	assert.Equal(t, 3, d.Child.Grade)
	assert.Equal(t, "emberpup", d.Child.SelectedCreatureID)
	assert.True(t, d.Flags.PracticeMode)
	assert.Equal(t, "mom@example.com", d.ParentEmail)
}

func TestCycleWraps(t *testing.T) {
	s := New(newTestGame(t))

	s.Update(specialKey(tea.KeyLeft))
	assert.Equal(t, 3, s.Settings().Grade)
	s.Update(specialKey(tea.KeyRight))
	assert.Equal(t, 2, s.Settings().Grade)
}

func TestEmailFieldTakesText(t *testing.T) {
	s := New(newTestGame(t))
	for range 3 {
		s.Update(specialKey(tea.KeyDown))
	}
	require.Equal(t, fieldEmail, s.cursor)

	s.Update(keyPress('x'))
	assert.Equal(t, "mom@example.comx", s.Settings().ParentEmail)

	// j is text here, not navigation.
	s.Update(keyPress('j'))
	assert.Equal(t, fieldEmail, s.cursor)
}

func TestSaveWithoutProfileShowsError(t *testing.T) {
	cat := catalog.Default()
	g := game.New(context.Background(), cat, save.NewStore(store.NewMemory(), cat))
	s := New(g)
	s.cursor = fieldSave

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.NotEmpty(t, s.errMsg)
}
