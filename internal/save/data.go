// Package save defines the persisted player profile and the versioned
// store that loads, repairs, migrates and writes it.
package save

import (
	"maps"
	"time"

	"github.com/abhisek/mathmonsters/internal/catalog"
	"github.com/abhisek/mathmonsters/internal/mastery"
)

// CurrentVersion is the schema version written by this package.
const CurrentVersion = 2

// XPPerLevel is the XP needed per player level.
const XPPerLevel = 5

// Data is the player's persisted profile.
type Data struct {
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"createdAt"`
	ParentEmail string    `json:"parentEmail"`
	Child       Child     `json:"child"`
	Progress    Progress  `json:"progress"`
	Flags       Flags     `json:"flags"`
}

// Child is the player profile.
type Child struct {
	Grade              int    `json:"grade"`
	SelectedCreatureID string `json:"selectedCreatureId"`
}

// Progress is the player's accumulated progress.
type Progress struct {
	XP                int                           `json:"xp"`
	BattlesPlayed     int                           `json:"battlesPlayed"`
	SkillState        map[string]mastery.SkillState `json:"skillState"`
	LastPlayedSkillID string                        `json:"lastPlayedSkillId"`
	LastBattleSeed    string                        `json:"lastBattleSeed"`
	LastBattle        *LastBattle                   `json:"lastBattle,omitempty"`
}

// LastBattle is the starting state of the most recent seeded battle. With
// it a replay generates the same questions and moves the ladder the same
// way as the battle that was played.
type LastBattle struct {
	Seed    string             `json:"seed"`
	SkillID string             `json:"skillId"`
	Grade   int                `json:"grade"`
	Skill   mastery.SkillState `json:"skill"`
}

// Flags are independent UI and migration markers.
type Flags struct {
	SeenHomeHint       bool `json:"seenHomeHint"`
	PracticeMode       bool `json:"practiceMode"`
	MigratedFromLegacy bool `json:"migratedFromLegacy"`
}

// Params are the setup choices for a new save.
type Params struct {
	ParentEmail        string
	Grade              int
	SelectedCreatureID string
}

// New creates a fresh save for cat. Every catalog skill starts at
// difficulty 1 with zeroed counters.
func New(cat *catalog.Catalog, p Params) Data {
	skills := make(map[string]mastery.SkillState, len(cat.Skills))
	for _, s := range cat.Skills {
		skills[s.ID] = mastery.NewSkillState()
	}
	grade := p.Grade
	if grade == 0 {
		grade = cat.DefaultGrade()
	}
	return Normalize(Data{
		Version:     CurrentVersion,
		CreatedAt:   nowUTC(),
		ParentEmail: p.ParentEmail,
		Child: Child{
			Grade:              grade,
			SelectedCreatureID: p.SelectedCreatureID,
		},
		Progress: Progress{
			SkillState:        skills,
			LastPlayedSkillID: cat.FirstSkillID(),
		},
	}, cat)
}

// Level is the player level derived from XP.
func (d Data) Level() int {
	return max(0, d.Progress.XP)/XPPerLevel + 1
}

// XPToNextLevel is the XP still needed to reach the next level.
func (d Data) XPToNextLevel() int {
	return XPPerLevel - max(0, d.Progress.XP)%XPPerLevel
}

// Skill returns the state for skillID, or a fresh state if none is stored.
func (d Data) Skill(skillID string) mastery.SkillState {
	if s, ok := d.Progress.SkillState[skillID]; ok {
		return s
	}
	return mastery.NewSkillState()
}

// Clone returns a deep copy of d.
func (d Data) Clone() Data {
	d.Progress.SkillState = maps.Clone(d.Progress.SkillState)
	if lb := d.Progress.LastBattle; lb != nil {
		c := *lb
		d.Progress.LastBattle = &c
	}
	return d
}

func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
