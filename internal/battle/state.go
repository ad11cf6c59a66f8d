// Package battle runs a single battle: enemy selection, HP exchanges,
// question sequencing and win/loss resolution. Engine operations are pure:
// they return new values and never mutate their inputs.
package battle

import (
	"time"

	"github.com/abhisek/mathmonsters/internal/problemgen"
)

// Status is the lifecycle state of a battle.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Outcome names the winner of a finished battle.
type Outcome string

const (
	OutcomePlayer     Outcome = "player"
	OutcomeEnemy      Outcome = "enemy"
	OutcomeInProgress Outcome = "in-progress"
)

// XP awarded when a battle ends.
const (
	XPWin   = 2
	XPOther = 1
)

// Session is one battle in progress or just finished.
type Session struct {
	BattleID string `json:"battleId"`
	SkillID  string `json:"skillId"`
	EnemyID  string `json:"enemyId"`

	PlayerHP    int `json:"playerHP"`
	EnemyHP     int `json:"enemyHP"`
	MaxPlayerHP int `json:"maxPlayerHP"`
	MaxEnemyHP  int `json:"maxEnemyHP"`

	// QuestionIndex counts answered questions; it is not advanced by the
	// answer that ends the battle.
	QuestionIndex int `json:"questionIndex"`

	// QuestionLimit is the question cap cached at start.
	QuestionLimit int `json:"questionLimit"`

	CurrentQuestion   problemgen.Question `json:"currentQuestion"`
	QuestionStartedAt time.Time           `json:"questionStartedAt"`

	// Seed and RngCursor are set in seeded mode only.
	Seed      string `json:"seed,omitempty"`
	RngCursor int    `json:"rngCursor,omitempty"`

	Status     Status        `json:"status"`
	LastAnswer *AnswerResult `json:"lastAnswer,omitempty"`

	// Tallies for the end-of-battle summary.
	StartDifficulty int `json:"startDifficulty"`
	CorrectCount    int `json:"correctCount"`
	FastCount       int `json:"fastCount"`
}

// AnswerResult describes the effect of one answer.
type AnswerResult struct {
	Correct          bool    `json:"correct"`
	FastBonusApplied bool    `json:"fastBonusApplied"`
	DamageToEnemy    int     `json:"damageToEnemy"`
	DamageToPlayer   int     `json:"damageToPlayer"`
	BattleEnded      bool    `json:"battleEnded"`
	Outcome          Outcome `json:"outcome"`
	XPAwarded        int     `json:"xpAwarded"`
	ResponseTimeMs   float64 `json:"responseTimeMs"`
	DifficultyBefore int     `json:"difficultyBefore"`
	DifficultyAfter  int     `json:"difficultyAfter"`
}

// Terminal reports whether the battle has ended.
func (s Session) Terminal() bool {
	return s.Status == StatusWon || s.Status == StatusLost
}

// Seeded reports whether the battle draws from a replayable seed.
func (s Session) Seeded() bool {
	return s.Seed != ""
}

// Outcome returns the battle outcome derived from its status.
func (s Session) Outcome() Outcome {
	switch s.Status {
	case StatusWon:
		return OutcomePlayer
	case StatusLost:
		return OutcomeEnemy
	default:
		return OutcomeInProgress
	}
}

// ResponseTime returns the milliseconds elapsed since the current question
// was shown.
func (s Session) ResponseTime(now time.Time) float64 {
	ms := float64(now.Sub(s.QuestionStartedAt).Microseconds()) / 1000
	return max(0, ms)
}

// QuestionNumber is the 1-based number of the current question.
func (s Session) QuestionNumber() int {
	return s.QuestionIndex + 1
}
