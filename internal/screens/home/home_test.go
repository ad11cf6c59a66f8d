package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathmonsters/internal/catalog"
	"github.com/abhisek/mathmonsters/internal/game"
	"github.com/abhisek/mathmonsters/internal/router"
	"github.com/abhisek/mathmonsters/internal/save"
	battlescreen "github.com/abhisek/mathmonsters/internal/screens/battle"
	"github.com/abhisek/mathmonsters/internal/screens/skills"
	"github.com/abhisek/mathmonsters/internal/store"
)

func newTestGame(t *testing.T) *game.Game {
	t.Helper()
	cat := catalog.Default()
	g := game.New(context.Background(), cat, save.NewStore(store.NewMemory(), cat))
	g.Setup(context.Background(), save.Params{Grade: 2, SelectedCreatureID: "emberpup"})
	return g
}

func pressEnter(h *HomeScreen) tea.Msg {
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestStartBattlePushesBattleScreen(t *testing.T) {
	h := New(newTestGame(t))

	msg, ok := pressEnter(h).(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := msg.Screen.(*battlescreen.BattleScreen); !ok {
		t.Errorf("pushed %T, want battle screen", msg.Screen)
	}
}

func TestChooseSkillPushesPicker(t *testing.T) {
	h := New(newTestGame(t))
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	msg, ok := pressEnter(h).(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	s, ok := msg.Screen.(*skills.SkillsScreen)
	if !ok {
		t.Fatalf("pushed %T, want skills screen", msg.Screen)
	}
	if s.Title() != "Choose a Skill" {
		t.Errorf("title = %q", s.Title())
	}
}

func TestDismissNotes(t *testing.T) {
	g := newTestGame(t)
	h := New(g)

	if len(h.notes()) != 1 {
		t.Fatalf("notes = %v, want the home hint", h.notes())
	}
	if !strings.Contains(h.View(100, 30), "answer fast") {
		t.Error("view should show the home hint")
	}

	h.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	if len(h.notes()) != 0 {
		t.Errorf("notes after dismiss = %v", h.notes())
	}
	if !g.Save().Flags.SeenHomeHint {
		t.Error("SeenHomeHint not persisted")
	}
}

func TestViewShowsProfile(t *testing.T) {
	h := New(newTestGame(t))
	view := h.View(100, 30)

	for _, want := range []string{"START BATTLE", "Grade 2"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
