package save

import (
	"strings"

	"github.com/abhisek/mathmonsters/internal/catalog"
	"github.com/abhisek/mathmonsters/internal/mastery"
)

// Normalize repairs d against cat so that every field satisfies its
// invariant. It never fails and is idempotent.
func Normalize(d Data, cat *catalog.Catalog) Data {
	out := Data{
		Version:     CurrentVersion,
		CreatedAt:   d.CreatedAt,
		ParentEmail: strings.TrimSpace(d.ParentEmail),
		Child: Child{
			Grade:              cat.SanitizeGrade(d.Child.Grade),
			SelectedCreatureID: cat.ResolveCreatureID(d.Child.SelectedCreatureID),
		},
		Progress: Progress{
			XP:                max(0, d.Progress.XP),
			BattlesPlayed:     max(0, d.Progress.BattlesPlayed),
			SkillState:        normalizeSkills(d.Progress.SkillState, cat),
			LastPlayedSkillID: d.Progress.LastPlayedSkillID,
			LastBattleSeed:    d.Progress.LastBattleSeed,
			LastBattle:        normalizeLastBattle(d.Progress.LastBattle, cat),
		},
		Flags: d.Flags,
	}
	if out.CreatedAt.IsZero() {
		out.CreatedAt = nowUTC()
	}
	if !cat.HasSkill(out.Progress.LastPlayedSkillID) {
		out.Progress.LastPlayedSkillID = cat.FirstSkillID()
	}
	return out
}

// normalizeLastBattle drops records without a seed or for skills the
// catalog no longer has.
func normalizeLastBattle(lb *LastBattle, cat *catalog.Catalog) *LastBattle {
	if lb == nil || lb.Seed == "" || !cat.HasSkill(lb.SkillID) {
		return nil
	}
	return &LastBattle{
		Seed:    lb.Seed,
		SkillID: lb.SkillID,
		Grade:   cat.SanitizeGrade(lb.Grade),
		Skill:   mastery.Sanitize(lb.Skill),
	}
}

// normalizeSkills returns exactly one state per catalog skill. Stored states
// are sanitized and missing ones start fresh.
func normalizeSkills(in map[string]mastery.SkillState, cat *catalog.Catalog) map[string]mastery.SkillState {
	out := make(map[string]mastery.SkillState, len(cat.Skills))
	for _, s := range cat.Skills {
		if st, ok := in[s.ID]; ok {
			out[s.ID] = mastery.Sanitize(st)
			continue
		}
		out[s.ID] = mastery.NewSkillState()
	}
	return out
}
