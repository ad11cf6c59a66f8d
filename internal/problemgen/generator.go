// Package problemgen generates arithmetic questions from catalog skill
// ranges, either from ambient randomness or from a replayable seeded stream.
package problemgen

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/mathmonsters/internal/catalog"
	"github.com/abhisek/mathmonsters/internal/rng"
)

// Generate produces a question using non-replayable randomness.
func Generate(cat *catalog.Catalog, skillID string, grade, difficulty int) Question {
	return generate(cat, skillID, grade, difficulty, rand.Float64)
}

// GenerateSeeded produces a question from the seeded stream at st and
// returns the advanced state. Each question consumes two draws.
func GenerateSeeded(cat *catalog.Catalog, skillID string, grade, difficulty int, st rng.State) (Question, rng.State) {
	draw, next := rng.Stream(st)
	q := generate(cat, skillID, grade, difficulty, draw)
	return q, next()
}

// GenerateWith produces a question using the given draw source.
func GenerateWith(cat *catalog.Catalog, skillID string, grade, difficulty int, draw rng.Draw) Question {
	return generate(cat, skillID, grade, difficulty, draw)
}

func generate(cat *catalog.Catalog, skillID string, grade, difficulty int, draw rng.Draw) Question {
	skill, ok := cat.ResolveSkill(skillID)
	if !ok {
		skill = catalog.Skill{ID: catalog.DefaultSkillID, Subject: "addition"}
	}

	d := catalog.ClampDifficulty(difficulty)
	r := skill.Range(grade, d)

	a := rng.IntN(draw, r.Min(), r.Max())
	b := rng.IntN(draw, r.Min(), r.Max())

	q := Question{
		SkillID:    skill.ID,
		Difficulty: d,
	}

	if skill.IsSubtraction() {
		larger, smaller := max(a, b), min(a, b)
		q.Operator = OpSubtract
		q.Operands = []int{larger, smaller}
		q.Answer = larger - smaller
		q.Prompt = fmt.Sprintf("%d - %d = ?", larger, smaller)
		return q
	}

	q.Operator = OpAdd
	q.Operands = []int{a, b}
	q.Answer = a + b
	q.Prompt = fmt.Sprintf("%d + %d = ?", a, b)
	return q
}
