package save

import (
	"fmt"
	"math"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Storage keys.
const (
	KeyCurrent = "mathMonstersSave_v2"
	KeyV1      = "mathMonstersSave_v1"

	LegacyProgressKey = "mathmonstersProgress"
	LegacyProfileKey  = "mathmonstersPlayerProfile"
	LegacySnapshotKey = "mathmonstersNextBattleSnapshot"
	LegacySessionKey  = "mathmonstersGuestSession"
)

// LegacyKeys are the pre-versioning keys read once by the legacy importer.
var LegacyKeys = []string{
	LegacyProgressKey,
	LegacyProfileKey,
	LegacySnapshotKey,
	LegacySessionKey,
}

// v1Defaults are the fields added in version 2.
var v1Defaults = []struct {
	path  string
	value any
}{
	{"progress.battlesPlayed", 0},
	{"progress.lastBattleSeed", ""},
	{"flags.migratedFromLegacy", false},
}

var v1SkillDefaults = []struct {
	field string
	value any
}{
	{"totalCorrect", 0},
	{"totalAnswered", 0},
	{"averageResponseMs", 0},
}

// UpgradeV1 rewrites a version 1 document into the version 2 shape. Fields
// that already exist are kept; missing ones get their zero defaults. The
// document is re-tagged with CurrentVersion.
func UpgradeV1(raw []byte) ([]byte, error) {
	if !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsObject() {
		return nil, ErrCorrupt
	}

	out := append([]byte(nil), raw...)
	setDefault := func(path string, value any) error {
		if gjson.GetBytes(out, path).Exists() {
			return nil
		}
		var err error
		out, err = sjson.SetBytes(out, path, value)
		if err != nil {
			return fmt.Errorf("set %s: %w", path, err)
		}
		return nil
	}

	for _, def := range v1Defaults {
		if err := setDefault(def.path, def.value); err != nil {
			return nil, err
		}
	}

	var skillIDs []string
	gjson.GetBytes(out, "progress.skillState").ForEach(func(key, value gjson.Result) bool {
		if value.IsObject() {
			skillIDs = append(skillIDs, key.String())
		}
		return true
	})
	for _, id := range skillIDs {
		base := "progress.skillState." + escapePath(id)
		for _, def := range v1SkillDefaults {
			if err := setDefault(base+"."+def.field, def.value); err != nil {
				return nil, err
			}
		}
	}

	out, err := sjson.SetBytes(out, "version", CurrentVersion)
	if err != nil {
		return nil, fmt.Errorf("set version: %w", err)
	}
	return out, nil
}

var pathEscaper = strings.NewReplacer(`\`, `\\`, ".", `\.`, "*", `\*`, "?", `\?`)

// escapePath escapes a map key for use as one gjson/sjson path component.
func escapePath(key string) string {
	return pathEscaper.Replace(key)
}

// legacyLevelXP converts a pre-versioning level into XP.
func legacyLevelXP(level float64) int {
	if math.IsNaN(level) || math.IsInf(level, 0) {
		return 0
	}
	n := max(1, int(math.Floor(level)))
	return (n - 1) * XPPerLevel
}
