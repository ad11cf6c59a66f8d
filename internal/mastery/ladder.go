package mastery

import "github.com/abhisek/mathmonsters/internal/catalog"

const (
	// StreakToLevelUp is the number of consecutive correct answers needed
	// before difficulty can rise.
	StreakToLevelUp = 2

	// StreakToLevelDown is the number of consecutive incorrect answers that
	// lowers difficulty.
	StreakToLevelDown = 2

	// LevelUpMaxAverageMs gates level-ups: the running average response time
	// must be strictly below it.
	LevelUpMaxAverageMs = 6000.0
)

// UpdateDifficulty applies one answer to cur and returns the new state.
func UpdateDifficulty(correct bool, cur SkillState, responseTimeMs float64) SkillState {
	next := cur
	next.Difficulty = catalog.ClampDifficulty(cur.Difficulty)

	oldCount := max(0, cur.TotalAnswered)
	next.TotalAnswered = oldCount + 1
	next.AverageResponseMs = (sanitizeMs(cur.AverageResponseMs)*float64(oldCount) + sanitizeMs(responseTimeMs)) / float64(next.TotalAnswered)

	if correct {
		next.TotalCorrect = max(0, cur.TotalCorrect) + 1
		next.IncorrectStreak = 0
		next.CorrectStreak = max(0, cur.CorrectStreak) + 1
		if next.CorrectStreak >= StreakToLevelUp && next.AverageResponseMs < LevelUpMaxAverageMs {
			next.Difficulty = catalog.ClampDifficulty(next.Difficulty + 1)
			next.CorrectStreak = 0
		}
	} else {
		next.TotalCorrect = max(0, cur.TotalCorrect)
		next.CorrectStreak = 0
		next.IncorrectStreak = max(0, cur.IncorrectStreak) + 1
		if next.IncorrectStreak >= StreakToLevelDown {
			next.Difficulty = catalog.ClampDifficulty(next.Difficulty - 1)
			next.IncorrectStreak = 0
		}
	}

	next.TotalAnswered = max(next.TotalAnswered, next.TotalCorrect)
	return next
}
