package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathmonsters/internal/screen"
)

type fakeScreen struct {
	name    string
	inits   int
	updates int
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inits++
	return nil
}

func (f *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	f.updates++
	return f, nil
}

func (f *fakeScreen) View(int, int) string { return f.name }
func (f *fakeScreen) Title() string        { return f.name }

func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func TestStackOperations(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)

	battle := &fakeScreen{name: "battle"}
	r.Push(battle)
	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, 1, battle.inits)

	summary := &fakeScreen{name: "summary"}
	r.Replace(summary)
	assert.Equal(t, 2, r.Depth(), "replace keeps depth")
	assert.Equal(t, "summary", r.View(80, 24))
	assert.Equal(t, 1, summary.inits)

	r.Pop()
	assert.Same(t, home, r.Active())

	r.Pop()
	assert.Equal(t, 1, r.Depth(), "the root screen stays")
	assert.Zero(t, home.inits, "popping does not re-init")
}

func TestNavigationCommands(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)

	skills := &fakeScreen{name: "skills"}
	r.Update(run(t, PushCmd(skills)))
	assert.Same(t, skills, r.Active())
	assert.Zero(t, skills.updates, "navigation is not forwarded to screens")

	detail := &fakeScreen{name: "detail"}
	r.Update(run(t, ReplaceCmd(detail)))
	assert.Same(t, detail, r.Active())
	assert.Equal(t, 2, r.Depth())

	r.Update(run(t, PopCmd()))
	assert.Same(t, home, r.Active())
}

func TestResetClearsStack(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Push(&fakeScreen{name: "skills"})
	r.Push(&fakeScreen{name: "detail"})

	setup := &fakeScreen{name: "setup"}
	r.Update(run(t, ResetCmd(setup)))
	assert.Equal(t, 1, r.Depth())
	assert.Same(t, setup, r.Active())
	assert.Equal(t, 1, setup.inits)
}

func TestOtherMessagesReachActiveScreen(t *testing.T) {
	home := &fakeScreen{name: "home"}
	top := &fakeScreen{name: "top"}
	r := New(home)
	r.Push(top)

	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Equal(t, 1, top.updates)
	assert.Zero(t, home.updates)
}

func TestEmptyRouter(t *testing.T) {
	r := &Router{}
	assert.Nil(t, r.Active())
	assert.Empty(t, r.View(10, 10))
	assert.Nil(t, r.Update(tea.KeyPressMsg{Code: 'x'}))

	s := &fakeScreen{name: "only"}
	r.Replace(s)
	assert.Equal(t, 1, r.Depth())
}
