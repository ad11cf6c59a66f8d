package summary

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathmonsters/internal/battle"
	"github.com/abhisek/mathmonsters/internal/catalog"
	"github.com/abhisek/mathmonsters/internal/game"
	"github.com/abhisek/mathmonsters/internal/router"
	"github.com/abhisek/mathmonsters/internal/save"
	"github.com/abhisek/mathmonsters/internal/screen"
	"github.com/abhisek/mathmonsters/internal/store"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "battle" }
func (s *stubScreen) Title() string                           { return "Battle" }

func testSummary() battle.Summary {
	return battle.Summary{
		SkillID:          "math.addition",
		Outcome:          battle.OutcomePlayer,
		TotalQuestions:   6,
		TotalCorrect:     5,
		FastAnswers:      4,
		Accuracy:         5.0 / 6.0,
		XPAwarded:        2,
		DifficultyBefore: 1,
		DifficultyAfter:  2,
		Level:            1,
		PlayerHP:         90,
	}
}

func newTestGame() *game.Game {
	cat := catalog.Default()
	return game.New(context.Background(), cat, save.NewStore(store.NewMemory(), cat))
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(newTestGame(), testSummary(), "", nil)
	if s.Title() != "Battle Result" {
		t.Errorf("Title = %q, want %q", s.Title(), "Battle Result")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(newTestGame(), testSummary(), "Victory! XP +2", nil)
	view := s.View(100, 40)

	for _, want := range []string{"Victory!", "XP +2", "Questions: 6", "Correct: 5", "Accuracy: 83%", "harder questions", "Play again", "Back home"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_PlayAgainReplaces(t *testing.T) {
	built := 0
	s := New(newTestGame(), testSummary(), "", func() screen.Screen {
		built++
		return &stubScreen{}
	})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen == nil || built != 1 {
		t.Errorf("expected rematch screen to be built once, built=%d", built)
	}
}

func TestSummaryScreen_EscGoesHome(t *testing.T) {
	s := New(newTestGame(), testSummary(), "", nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
