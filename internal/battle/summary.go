package battle

import (
	"github.com/abhisek/mathmonsters/internal/save"
)

// Summary holds the data displayed when a battle ends.
type Summary struct {
	SkillID          string
	EnemyID          string
	Outcome          Outcome
	TotalQuestions   int
	TotalCorrect     int
	FastAnswers      int
	Accuracy         float64
	XPAwarded        int
	DifficultyBefore int
	DifficultyAfter  int
	Level            int
	PlayerHP         int
	EnemyHP          int
}

// BuildSummary creates a Summary from a finished session and the save it
// produced.
func BuildSummary(s Session, d save.Data) Summary {
	total := s.QuestionIndex
	if s.Terminal() {
		total++
	}

	var accuracy float64
	if total > 0 {
		accuracy = float64(s.CorrectCount) / float64(total)
	}

	var xp int
	if s.LastAnswer != nil {
		xp = s.LastAnswer.XPAwarded
	}

	return Summary{
		SkillID:          s.SkillID,
		EnemyID:          s.EnemyID,
		Outcome:          s.Outcome(),
		TotalQuestions:   total,
		TotalCorrect:     s.CorrectCount,
		FastAnswers:      s.FastCount,
		Accuracy:         accuracy,
		XPAwarded:        xp,
		DifficultyBefore: s.StartDifficulty,
		DifficultyAfter:  d.Skill(s.SkillID).Difficulty,
		Level:            d.Level(),
		PlayerHP:         s.PlayerHP,
		EnemyHP:          s.EnemyHP,
	}
}
