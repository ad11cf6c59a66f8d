package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathmonsters/internal/catalog"
	"github.com/abhisek/mathmonsters/internal/problemgen"
	"github.com/abhisek/mathmonsters/internal/rng"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview generated questions for a skill (no database)",
	Long: `Generate questions for a skill at a grade and difficulty.

No save is read or written. With --seed the output is the same on every run.
With --quiz each question waits for an answer on stdin.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("skill", "", "Skill ID (defaults to the first catalog skill)")
	previewCmd.Flags().Int("grade", 0, "Grade (defaults to the first catalog grade)")
	previewCmd.Flags().Int("difficulty", catalog.MinDifficulty, "Difficulty 1-5")
	previewCmd.Flags().String("seed", "", "Seed for a reproducible question stream")
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
	previewCmd.Flags().Bool("quiz", false, "Answer each question interactively")
}

func runPreview(cmd *cobra.Command, args []string) error {
	skillID, _ := cmd.Flags().GetString("skill")
	grade, _ := cmd.Flags().GetInt("grade")
	difficulty, _ := cmd.Flags().GetInt("difficulty")
	seed, _ := cmd.Flags().GetString("seed")
	count, _ := cmd.Flags().GetInt("count")
	quiz, _ := cmd.Flags().GetBool("quiz")

	if count < 1 {
		return fmt.Errorf("--count must be at least 1")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	skill, err := resolveSkill(cat, skillID)
	if err != nil {
		return err
	}
	if grade == 0 {
		grade = cat.DefaultGrade()
	}
	difficulty = catalog.ClampDifficulty(difficulty)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Skill: %s (%s), grade %d, difficulty %d\n", skill.ID, skill.Name, grade, difficulty)
	if seed != "" {
		fmt.Fprintf(out, "Seed:  %s\n", seed)
	}
	fmt.Fprintln(out)

	questions := previewQuestions(cat, skill.ID, grade, difficulty, seed, count)
	if !quiz {
		for i, q := range questions {
			fmt.Fprintf(out, "%2d. %-14s %d\n", i+1, q.Prompt, q.Answer)
		}
		return nil
	}
	return runQuiz(cmd.InOrStdin(), out, questions)
}

// previewQuestions generates count questions, from the seeded stream when
// seed is set.
func previewQuestions(cat *catalog.Catalog, skillID string, grade, difficulty int, seed string, count int) []problemgen.Question {
	out := make([]problemgen.Question, 0, count)
	if seed == "" {
		for range count {
			out = append(out, problemgen.Generate(cat, skillID, grade, difficulty))
		}
		return out
	}

	st := rng.New(seed)
	for range count {
		var q problemgen.Question
		q, st = problemgen.GenerateSeeded(cat, skillID, grade, difficulty, st)
		out = append(out, q)
	}
	return out
}

func runQuiz(in io.Reader, out io.Writer, questions []problemgen.Question) error {
	scanner := bufio.NewScanner(in)
	correct := 0
	for i, q := range questions {
		fmt.Fprintf(out, "── Question %d/%d ──\n%s\n\nYour answer: ", i+1, len(questions), q.Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			fmt.Fprint(out, "(skipped)\n\n")
			continue
		}
		v, ok := problemgen.ParseAnswer(raw)
		switch {
		case !ok:
			fmt.Fprintf(out, "Not a number. Answer: %d\n\n", q.Answer)
		case problemgen.CheckAnswer(v, q):
			correct++
			fmt.Fprint(out, "\033[32m✓ Correct!\033[0m\n\n")
		default:
			fmt.Fprintf(out, "\033[31m✗ Wrong.\033[0m Answer: %d\n\n", q.Answer)
		}
	}
	fmt.Fprintf(out, "── Summary: %d/%d correct ──\n", correct, len(questions))
	return scanner.Err()
}

// resolveSkill finds a skill by ID. An empty ID selects the first skill.
func resolveSkill(cat *catalog.Catalog, id string) (catalog.Skill, error) {
	if id == "" {
		id = cat.FirstSkillID()
	}
	if s, ok := cat.Skill(id); ok {
		return s, nil
	}
	return catalog.Skill{}, fmt.Errorf("no skill %q in catalog (have: %s)", id, strings.Join(cat.SkillIDs(), ", "))
}
