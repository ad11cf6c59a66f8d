package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathmonsters/internal/battle"
	"github.com/abhisek/mathmonsters/internal/catalog"
	"github.com/abhisek/mathmonsters/internal/mastery"
	"github.com/abhisek/mathmonsters/internal/save"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a seeded battle from scripted answers",
	Long: `Replay a battle from a seed and a comma separated answer script.

Each entry is VALUE[@MS]: a number, "ok" for the correct answer or "miss" for
a wrong one, with an optional response time in milliseconds. For example:

  mathmonsters replay --seed abc --answers ok@1200,miss@5000,12@2500

The battle runs against a fresh profile held in memory. Use --difficulty to
start the skill above level 1, or --from-save to replay the last battle
played, starting from the skill state it was played with.`,
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().String("seed", "", "Battle seed")
	replayCmd.Flags().String("skill", "", "Skill ID (defaults to the first catalog skill)")
	replayCmd.Flags().Int("grade", 0, "Grade of the fresh profile")
	replayCmd.Flags().Int("difficulty", 1, "Starting difficulty of the skill (1-5)")
	replayCmd.Flags().Bool("from-save", false, "Replay the last battle recorded in the save")
	replayCmd.Flags().String("answers", "", "Answer script")
	replayCmd.Flags().Bool("json", false, "Print the trace as JSON")
	replayCmd.MarkFlagsMutuallyExclusive("from-save", "seed")
	replayCmd.MarkFlagsMutuallyExclusive("from-save", "skill")
	replayCmd.MarkFlagsMutuallyExclusive("from-save", "grade")
	replayCmd.MarkFlagsMutuallyExclusive("from-save", "difficulty")
}

func runReplay(cmd *cobra.Command, args []string) error {
	seed, _ := cmd.Flags().GetString("seed")
	skillID, _ := cmd.Flags().GetString("skill")
	grade, _ := cmd.Flags().GetInt("grade")
	difficulty, _ := cmd.Flags().GetInt("difficulty")
	fromSave, _ := cmd.Flags().GetBool("from-save")
	script, _ := cmd.Flags().GetString("answers")
	asJSON, _ := cmd.Flags().GetBool("json")

	answers, err := battle.ParseTimedAnswers(script)
	if err != nil {
		return fmt.Errorf("parse answers: %w", err)
	}

	var (
		cat *catalog.Catalog
		lb  save.LastBattle
	)
	if fromSave {
		cat, lb, err = lastBattleFromSave(cmd)
	} else {
		cat, lb, err = lastBattleFromFlags(cmd, seed, skillID, grade, difficulty)
	}
	if err != nil {
		return err
	}

	tr := battle.ReplayLast(cat, lb, answers)

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(traceJSON(tr))
	}
	printTrace(out, cat, tr)
	return nil
}

// lastBattleFromSave reads the starting state recorded by the last
// seeded battle.
func lastBattleFromSave(cmd *cobra.Command) (*catalog.Catalog, save.LastBattle, error) {
	e, err := openEnv(cmd)
	if err != nil {
		return nil, save.LastBattle{}, err
	}
	defer e.close()

	d := e.saves.Load(cmd.Context())
	if d == nil {
		return nil, save.LastBattle{}, save.ErrNoSave
	}
	if d.Progress.LastBattle == nil {
		return nil, save.LastBattle{}, errors.New("the save has no replayable battle yet")
	}
	return e.cat, *d.Progress.LastBattle, nil
}

func lastBattleFromFlags(cmd *cobra.Command, seed, skillID string, grade, difficulty int) (*catalog.Catalog, save.LastBattle, error) {
	if seed == "" {
		return nil, save.LastBattle{}, errors.New("--seed is required unless --from-save is set")
	}
	if difficulty < catalog.MinDifficulty || difficulty > catalog.MaxDifficulty {
		return nil, save.LastBattle{}, fmt.Errorf("difficulty must be %d to %d", catalog.MinDifficulty, catalog.MaxDifficulty)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, save.LastBattle{}, err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, save.LastBattle{}, err
	}
	if skillID == "" {
		skillID = cat.FirstSkillID()
	}
	if !cat.HasSkill(skillID) {
		return nil, save.LastBattle{}, fmt.Errorf("no skill %q in catalog", skillID)
	}

	st := mastery.NewSkillState()
	st.Difficulty = difficulty
	return cat, save.LastBattle{
		Seed:    seed,
		SkillID: skillID,
		Grade:   grade,
		Skill:   st,
	}, nil
}

type stepJSON struct {
	Index    int                 `json:"index"`
	Prompt   string              `json:"prompt"`
	Expected int                 `json:"expected"`
	Answer   *float64            `json:"answer"`
	PlayerHP int                 `json:"playerHp"`
	EnemyHP  int                 `json:"enemyHp"`
	Result   battle.AnswerResult `json:"result"`
}

// traceJSON flattens a trace for encoding. NaN answers become null.
func traceJSON(tr battle.Trace) map[string]any {
	steps := make([]stepJSON, 0, len(tr.Steps))
	for _, s := range tr.Steps {
		js := stepJSON{
			Index: s.Index, Prompt: s.Prompt, Expected: s.Expected,
			PlayerHP: s.PlayerHP, EnemyHP: s.EnemyHP, Result: s.Result,
		}
		if !math.IsNaN(s.Answer) {
			v := s.Answer
			js.Answer = &v
		}
		steps = append(steps, js)
	}
	return map[string]any{
		"seed":    tr.Seed,
		"skillId": tr.SkillID,
		"enemyId": tr.EnemyID,
		"steps":   steps,
		"status":  tr.Session.Status,
		"summary": battle.BuildSummary(tr.Session, tr.Save),
	}
}

func printTrace(out io.Writer, cat *catalog.Catalog, tr battle.Trace) {
	enemy := tr.EnemyID
	if e, ok := cat.Enemy(tr.EnemyID); ok {
		enemy = e.Name
	}
	fmt.Fprintf(out, "Seed %s · %s vs %s\n\n", tr.Seed, tr.SkillID, enemy)

	for _, s := range tr.Steps {
		mark := "✗"
		if s.Result.Correct {
			mark = "✓"
		}
		answer := "?"
		if !math.IsNaN(s.Answer) {
			answer = fmt.Sprintf("%g", s.Answer)
		}
		fmt.Fprintf(out, "%2d. %-12s %-6s %s  %5.0fms  you %3d  enemy %3d  diff %d→%d\n",
			s.Index+1, s.Prompt, answer, mark, s.Result.ResponseTimeMs,
			s.PlayerHP, s.EnemyHP, s.Result.DifficultyBefore, s.Result.DifficultyAfter)
	}

	sum := battle.BuildSummary(tr.Session, tr.Save)
	fmt.Fprintf(out, "\nStatus: %s · %d/%d correct · XP +%d · level %d\n",
		tr.Session.Status, sum.TotalCorrect, sum.TotalQuestions, sum.XPAwarded, sum.Level)
}
