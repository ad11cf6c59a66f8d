// Package battle is the screen where a battle is played.
package battle

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathmonsters/internal/game"
	"github.com/abhisek/mathmonsters/internal/router"
	"github.com/abhisek/mathmonsters/internal/screen"
	"github.com/abhisek/mathmonsters/internal/screens/summary"
	"github.com/abhisek/mathmonsters/internal/ui/components"
	"github.com/abhisek/mathmonsters/internal/ui/layout"
)

// BattleScreen implements screen.Screen for an active battle.
type BattleScreen struct {
	g       *game.Game
	skillID string
	input   components.TextInput

	// feedback is the line shown under the input after an answer.
	feedback     string
	lastCorrect  bool
	invalidInput bool

	confirmQuit bool
	errMsg      string
	started     bool
}

var _ screen.Screen = (*BattleScreen)(nil)
var _ screen.KeyHintProvider = (*BattleScreen)(nil)
var _ screen.BackHandler = (*BattleScreen)(nil)

// New creates a BattleScreen. An empty skillID plays the last played skill.
func New(g *game.Game, skillID string) *BattleScreen {
	return &BattleScreen{
		g:       g,
		skillID: skillID,
		input:   components.NewTextInput("?", true, 6),
	}
}

func (s *BattleScreen) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return startBattleMsg{} },
		s.input.Init(),
	)
}

func (s *BattleScreen) Title() string {
	return "Battle"
}

func (s *BattleScreen) HandlesBack() bool {
	return true
}

func (s *BattleScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Run away"},
			{Key: "N", Description: "Keep fighting"},
		}
	}
	return []layout.KeyHint{
		{Key: "0-9", Description: "Answer"},
		{Key: "Enter", Description: "Attack"},
		{Key: "Esc", Description: "Run away"},
	}
}

func (s *BattleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startBattleMsg:
		return s.handleStart()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.started && !s.confirmQuit {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *BattleScreen) handleStart() (screen.Screen, tea.Cmd) {
	if s.started {
		return s, nil
	}
	if _, err := s.g.StartBattle(context.Background(), s.skillID); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.started = true
	return s, nil
}

func (s *BattleScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, router.PopCmd()
	}
	if !s.started {
		return s, nil
	}

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.g.EndBattle()
			return s, router.PopCmd()
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "enter":
		return s.submitAnswer()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submitAnswer sends the typed answer to the game.
func (s *BattleScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	res, err := s.g.SubmitAnswer(context.Background(), s.input.Value())
	switch {
	case errors.Is(err, game.ErrInvalidAnswer):
		s.invalidInput = true
		s.feedback = "Type a number, then press Enter."
		return s, nil
	case err != nil:
		s.errMsg = err.Error()
		return s, nil
	}

	s.invalidInput = false
	s.lastCorrect = res.Correct
	s.feedback = game.FeedbackText(res)
	s.input.Clear()

	if !res.BattleEnded {
		return s, nil
	}

	sum, _ := s.g.Summary()
	g, skillID := s.g, s.skillID
	next := summary.New(g, sum, s.feedback, func() screen.Screen {
		return New(g, skillID)
	})
	return s, router.ReplaceCmd(next)
}

func (s *BattleScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	b := s.g.Battle()
	if !s.started || b == nil {
		return renderLoading(width)
	}
	if s.confirmQuit {
		return renderQuitConfirm(width)
	}
	return s.renderBattle(width, height, *b)
}
