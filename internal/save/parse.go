package save

import (
	"errors"
	"math"
	"time"

	"github.com/tidwall/gjson"

	"github.com/abhisek/mathmonsters/internal/mastery"
)

var (
	// ErrCorrupt is returned when stored bytes are not a JSON object.
	ErrCorrupt = errors.New("save: corrupt data")

	// ErrNoSave is returned when an operation needs a save and none exists.
	ErrNoSave = errors.New("save: no save present")
)

// Parse decodes a stored save of any version. Fields are read one by one so
// that wrong types or missing values fall back to zero values instead of
// failing the whole record. The result is not normalized.
func Parse(raw []byte) (Data, error) {
	if !gjson.ValidBytes(raw) {
		return Data{}, ErrCorrupt
	}
	r := gjson.ParseBytes(raw)
	if !r.IsObject() {
		return Data{}, ErrCorrupt
	}

	d := Data{
		Version:     intOf(r.Get("version")),
		CreatedAt:   timeOf(r.Get("createdAt")),
		ParentEmail: r.Get("parentEmail").String(),
		Child: Child{
			Grade:              intOf(r.Get("child.grade")),
			SelectedCreatureID: r.Get("child.selectedCreatureId").String(),
		},
		Progress: Progress{
			XP:                intOf(r.Get("progress.xp")),
			BattlesPlayed:     intOf(r.Get("progress.battlesPlayed")),
			SkillState:        make(map[string]mastery.SkillState),
			LastPlayedSkillID: r.Get("progress.lastPlayedSkillId").String(),
			LastBattleSeed:    r.Get("progress.lastBattleSeed").String(),
		},
		Flags: Flags{
			SeenHomeHint:       truthy(r.Get("flags.seenHomeHint")),
			PracticeMode:       truthy(r.Get("flags.practiceMode")),
			MigratedFromLegacy: truthy(r.Get("flags.migratedFromLegacy")),
		},
	}

	r.Get("progress.skillState").ForEach(func(key, value gjson.Result) bool {
		if value.IsObject() && isNumber(value.Get("difficulty")) {
			d.Progress.SkillState[key.String()] = skillStateOf(value)
		}
		return true
	})

	if lb := r.Get("progress.lastBattle"); lb.IsObject() {
		d.Progress.LastBattle = &LastBattle{
			Seed:    lb.Get("seed").String(),
			SkillID: lb.Get("skillId").String(),
			Grade:   intOf(lb.Get("grade")),
			Skill:   skillStateOf(lb.Get("skill")),
		}
	}

	return d, nil
}

func skillStateOf(v gjson.Result) mastery.SkillState {
	return mastery.SkillState{
		Difficulty:        intOf(v.Get("difficulty")),
		CorrectStreak:     intOf(v.Get("correctStreak")),
		IncorrectStreak:   intOf(v.Get("incorrectStreak")),
		TotalCorrect:      intOf(v.Get("totalCorrect")),
		TotalAnswered:     intOf(v.Get("totalAnswered")),
		AverageResponseMs: floatOf(v.Get("averageResponseMs")),
	}
}

// truthy coerces a flag the loose way older saves stored them: any
// non-empty string, non-zero number, object or array counts as set.
func truthy(r gjson.Result) bool {
	switch r.Type {
	case gjson.True, gjson.JSON:
		return true
	case gjson.Number:
		return r.Num != 0 && !math.IsNaN(r.Num)
	case gjson.String:
		return r.Str != ""
	default:
		return false
	}
}

func isNumber(r gjson.Result) bool {
	if r.Type == gjson.Number {
		return true
	}
	if r.Type == gjson.String {
		f := r.Float()
		return f != 0 || r.Str == "0"
	}
	return false
}

// intOf floors numeric values. Non-numeric and non-finite values are 0.
func intOf(r gjson.Result) int {
	f := floatOf(r)
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	if f < math.MinInt32 {
		return math.MinInt32
	}
	return int(math.Floor(f))
}

func floatOf(r gjson.Result) float64 {
	switch r.Type {
	case gjson.Number, gjson.String:
		f := r.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	default:
		return 0
	}
}

func timeOf(r gjson.Result) time.Time {
	if r.Type != gjson.String {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, r.Str)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
