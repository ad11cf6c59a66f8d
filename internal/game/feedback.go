package game

import (
	"fmt"

	"github.com/abhisek/mathmonsters/internal/battle"
)

// FeedbackText is the one-line message shown after an answer.
func FeedbackText(res battle.AnswerResult) string {
	switch {
	case res.BattleEnded && res.Outcome == battle.OutcomePlayer:
		return fmt.Sprintf("Victory! XP +%d", res.XPAwarded)
	case res.BattleEnded:
		return fmt.Sprintf("Battle over. XP +%d", res.XPAwarded)
	case res.Correct && res.FastBonusApplied:
		return fmt.Sprintf("Dealt %d damage (fast bonus!).", res.DamageToEnemy)
	case res.Correct:
		return fmt.Sprintf("Dealt %d damage.", res.DamageToEnemy)
	default:
		return fmt.Sprintf("Took %d damage.", res.DamageToPlayer)
	}
}
