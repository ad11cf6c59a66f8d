// Package mastery tracks per-skill adaptive difficulty.
package mastery

import (
	"math"

	"github.com/abhisek/mathmonsters/internal/catalog"
)

// SkillState is the adaptive difficulty state for one skill.
type SkillState struct {
	Difficulty        int     `json:"difficulty"`
	CorrectStreak     int     `json:"correctStreak"`
	IncorrectStreak   int     `json:"incorrectStreak"`
	TotalCorrect      int     `json:"totalCorrect"`
	TotalAnswered     int     `json:"totalAnswered"`
	AverageResponseMs float64 `json:"averageResponseMs"`
}

// NewSkillState returns a state at difficulty 1 with zeroed counters.
func NewSkillState() SkillState {
	return SkillState{Difficulty: catalog.MinDifficulty}
}

// Accuracy returns TotalCorrect / TotalAnswered, or 0 when nothing has been
// answered.
func (s SkillState) Accuracy() float64 {
	if s.TotalAnswered == 0 {
		return 0
	}
	return float64(s.TotalCorrect) / float64(s.TotalAnswered)
}

// Sanitize repairs a state read from storage: difficulty is clamped,
// counters are floored at 0, the streaks are made mutually exclusive and
// TotalAnswered is raised to at least TotalCorrect.
func Sanitize(s SkillState) SkillState {
	s.Difficulty = catalog.ClampDifficulty(s.Difficulty)
	s.CorrectStreak = max(0, s.CorrectStreak)
	s.IncorrectStreak = max(0, s.IncorrectStreak)
	if s.CorrectStreak > 0 && s.IncorrectStreak > 0 {
		s.IncorrectStreak = 0
	}
	s.TotalCorrect = max(0, s.TotalCorrect)
	s.TotalAnswered = max(s.TotalCorrect, s.TotalAnswered)
	s.AverageResponseMs = sanitizeMs(s.AverageResponseMs)
	return s
}

func sanitizeMs(ms float64) float64 {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || ms < 0 {
		return 0
	}
	return ms
}
