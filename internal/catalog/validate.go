package catalog

import (
	"fmt"
	"strings"
)

// Validate performs the structural checks that the JSON Schema cannot
// express. It returns one error listing every problem found.
func (c *Catalog) Validate() error {
	var errs []string

	if len(c.Grades) == 0 {
		errs = append(errs, "no grades declared")
	}
	gradeSet := make(map[int]bool, len(c.Grades))
	for _, g := range c.Grades {
		if gradeSet[g] {
			errs = append(errs, fmt.Sprintf("duplicate grade: %d", g))
		}
		gradeSet[g] = true
	}

	if len(c.Skills) == 0 {
		errs = append(errs, "no skills declared")
	}
	skillIDs := make(map[string]bool, len(c.Skills))
	for _, s := range c.Skills {
		if s.ID == "" {
			errs = append(errs, "skill with empty ID")
			continue
		}
		if skillIDs[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate skill ID: %q", s.ID))
		}
		skillIDs[s.ID] = true

		for grade, rules := range s.GradeRules {
			if !gradeSet[grade] {
				errs = append(errs, fmt.Sprintf("skill %q has rules for undeclared grade %d", s.ID, grade))
			}
			for d, r := range rules {
				if d < MinDifficulty || d > MaxDifficulty {
					errs = append(errs, fmt.Sprintf("skill %q grade %d: difficulty %d outside [%d,%d]", s.ID, grade, d, MinDifficulty, MaxDifficulty))
				}
				if r.Min() > r.Max() {
					errs = append(errs, fmt.Sprintf("skill %q grade %d difficulty %d: min %d > max %d", s.ID, grade, d, r.Min(), r.Max()))
				}
				if r.Min() < 0 {
					errs = append(errs, fmt.Sprintf("skill %q grade %d difficulty %d: negative operand range", s.ID, grade, d))
				}
			}
		}
	}

	if len(c.Creatures) == 0 {
		errs = append(errs, "no creatures declared")
	}
	creatureIDs := make(map[string]bool, len(c.Creatures))
	starters := 0
	for _, cr := range c.Creatures {
		if creatureIDs[cr.ID] {
			errs = append(errs, fmt.Sprintf("duplicate creature ID: %q", cr.ID))
		}
		creatureIDs[cr.ID] = true
		if cr.Starter {
			starters++
		}
	}
	if starters > 1 {
		errs = append(errs, fmt.Sprintf("%d creatures flagged as starter, want at most 1", starters))
	}

	enemyIDs := make(map[string]bool, len(c.Enemies))
	for _, e := range c.Enemies {
		if enemyIDs[e.ID] {
			errs = append(errs, fmt.Sprintf("duplicate enemy ID: %q", e.ID))
		}
		enemyIDs[e.ID] = true
	}

	bc := c.BattleConfig
	if bc.PlayerHP <= 0 || bc.EnemyHP <= 0 {
		errs = append(errs, fmt.Sprintf("battle HP must be positive (player %d, enemy %d)", bc.PlayerHP, bc.EnemyHP))
	}
	if bc.DamageOnCorrect < 0 || bc.DamageOnIncorrect < 0 || bc.FastBonusDamage < 0 {
		errs = append(errs, "battle damage values must not be negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
