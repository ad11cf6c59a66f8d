// Package catalog holds the static game content: grades, skills with their
// per-grade operand ranges, creatures, enemies, and battle tuning.
package catalog

import "strings"

const (
	MinDifficulty = 1
	MaxDifficulty = 5

	// DefaultSkillID is used when a catalog declares no skills.
	DefaultSkillID = "math.addition"

	// DefaultCreatureID is used when a catalog declares no creatures.
	DefaultCreatureID = "shellfin"

	// DefaultGrade is used when a catalog declares no grades.
	DefaultGrade = 2
)

// DefaultRange is the operand range used when a skill has no rule for the
// requested grade and difficulty.
var DefaultRange = Range{0, 10}

// Range is an inclusive [min, max] operand range.
type Range [2]int

func (r Range) Min() int { return r[0] }
func (r Range) Max() int { return r[1] }

// Contains reports whether v lies within the range.
func (r Range) Contains(v int) bool {
	return v >= r[0] && v <= r[1]
}

// Skill is one practicable arithmetic skill.
type Skill struct {
	ID          string `json:"id" yaml:"id"`
	Subject     string `json:"subject" yaml:"subject"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// GradeRules maps grade -> difficulty -> operand range.
	GradeRules map[int]map[int]Range `json:"gradeRules" yaml:"gradeRules"`
}

// Range returns the operand range for grade at difficulty, clamping
// difficulty to [MinDifficulty, MaxDifficulty] and falling back to
// DefaultRange when no rule exists.
func (s Skill) Range(grade, difficulty int) Range {
	rules, ok := s.GradeRules[grade]
	if !ok {
		return DefaultRange
	}
	r, ok := rules[ClampDifficulty(difficulty)]
	if !ok {
		return DefaultRange
	}
	return r
}

// IsSubtraction reports whether questions for this skill subtract.
func (s Skill) IsSubtraction() bool {
	return strings.EqualFold(s.Subject, "subtraction") || strings.HasSuffix(s.ID, ".subtraction")
}

// Creature is a playable companion.
type Creature struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Starter     bool   `json:"starter,omitempty" yaml:"starter,omitempty"`
}

// Enemy is an opponent in battle.
type Enemy struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// PlaceholderEnemy stands in when the catalog has no enemies.
var PlaceholderEnemy = Enemy{ID: "enemy", Name: "Enemy"}

// BattleConfig holds the battle tuning constants.
type BattleConfig struct {
	PlayerHP           int `json:"playerHP" yaml:"playerHP"`
	EnemyHP            int `json:"enemyHP" yaml:"enemyHP"`
	DamageOnCorrect    int `json:"damageOnCorrect" yaml:"damageOnCorrect"`
	DamageOnIncorrect  int `json:"damageOnIncorrect" yaml:"damageOnIncorrect"`
	FastBonusDamage    int `json:"fastBonusDamage" yaml:"fastBonusDamage"`
	FastThresholdMs    int `json:"fastThresholdMs" yaml:"fastThresholdMs"`
	QuestionsPerBattle int `json:"questionsPerBattle" yaml:"questionsPerBattle"`
}

// QuestionLimit is the per-battle question cap, never below 1.
func (b BattleConfig) QuestionLimit() int {
	return max(1, b.QuestionsPerBattle)
}

// Catalog is the full content set. It is read-only once loaded.
type Catalog struct {
	Version      int          `json:"version" yaml:"version"`
	Grades       []int        `json:"grades" yaml:"grades"`
	Skills       []Skill      `json:"skills" yaml:"skills"`
	Creatures    []Creature   `json:"creatures" yaml:"creatures"`
	Enemies      []Enemy      `json:"enemies" yaml:"enemies"`
	BattleConfig BattleConfig `json:"battleConfig" yaml:"battleConfig"`
}

// ClampDifficulty limits d to [MinDifficulty, MaxDifficulty].
func ClampDifficulty(d int) int {
	return min(MaxDifficulty, max(MinDifficulty, d))
}

// Skill returns the skill with the given ID.
func (c *Catalog) Skill(id string) (Skill, bool) {
	for _, s := range c.Skills {
		if s.ID == id {
			return s, true
		}
	}
	return Skill{}, false
}

// HasSkill reports whether id names a catalog skill.
func (c *Catalog) HasSkill(id string) bool {
	_, ok := c.Skill(id)
	return ok
}

// ResolveSkill returns the skill named by id, or the first skill when id is
// unknown. The second result is false only when the catalog has no skills.
func (c *Catalog) ResolveSkill(id string) (Skill, bool) {
	if s, ok := c.Skill(id); ok {
		return s, true
	}
	if len(c.Skills) == 0 {
		return Skill{}, false
	}
	return c.Skills[0], true
}

// FirstSkillID returns the first skill's ID, or DefaultSkillID.
func (c *Catalog) FirstSkillID() string {
	if len(c.Skills) == 0 {
		return DefaultSkillID
	}
	return c.Skills[0].ID
}

// SkillIDs returns all skill IDs in catalog order.
func (c *Catalog) SkillIDs() []string {
	ids := make([]string, 0, len(c.Skills))
	for _, s := range c.Skills {
		ids = append(ids, s.ID)
	}
	return ids
}

// DefaultGrade returns the first declared grade.
func (c *Catalog) DefaultGrade() int {
	if len(c.Grades) == 0 {
		return DefaultGrade
	}
	return c.Grades[0]
}

// SanitizeGrade returns grade when it is declared, else the first declared
// grade that is at least grade, else the default grade.
func (c *Catalog) SanitizeGrade(grade int) int {
	for _, g := range c.Grades {
		if g == grade {
			return grade
		}
	}
	for _, g := range c.Grades {
		if g >= grade {
			return g
		}
	}
	return c.DefaultGrade()
}

// Creature returns the creature with the given ID.
func (c *Catalog) Creature(id string) (Creature, bool) {
	for _, cr := range c.Creatures {
		if cr.ID == id {
			return cr, true
		}
	}
	return Creature{}, false
}

// Starter returns the creature flagged as starter.
func (c *Catalog) Starter() (Creature, bool) {
	for _, cr := range c.Creatures {
		if cr.Starter {
			return cr, true
		}
	}
	return Creature{}, false
}

// ResolveCreatureID returns id when valid, else the starter, else the first
// creature.
func (c *Catalog) ResolveCreatureID(id string) string {
	if _, ok := c.Creature(id); ok {
		return id
	}
	if s, ok := c.Starter(); ok {
		return s.ID
	}
	if len(c.Creatures) > 0 {
		return c.Creatures[0].ID
	}
	return DefaultCreatureID
}

// Enemy returns the enemy with the given ID. The placeholder enemy is always
// found.
func (c *Catalog) Enemy(id string) (Enemy, bool) {
	for _, e := range c.Enemies {
		if e.ID == id {
			return e, true
		}
	}
	if id == PlaceholderEnemy.ID {
		return PlaceholderEnemy, true
	}
	return Enemy{}, false
}
