package battle

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/mathmonsters/internal/catalog"
	"github.com/abhisek/mathmonsters/internal/problemgen"
	"github.com/abhisek/mathmonsters/internal/save"
)

// TimedAnswer is one scripted answer for Replay.
type TimedAnswer struct {
	// Answer is the submitted value. NaN marks an unparseable entry.
	Answer float64

	// ResponseTimeMs is the simulated answer latency.
	ResponseTimeMs float64

	// Mode overrides Answer: "ok" answers correctly, "miss" answers wrong.
	Mode string
}

// Step records one resolved answer during a replay.
type Step struct {
	Index    int
	Prompt   string
	Expected int
	Answer   float64
	PlayerHP int
	EnemyHP  int
	Result   AnswerResult
}

// Trace is the full record of a replayed battle.
type Trace struct {
	Seed    string
	SkillID string
	EnemyID string
	Steps   []Step
	Session Session
	Save    save.Data
}

// Replay replays a seeded battle on a fresh engine for cat. Battle IDs and
// question timestamps are fixed so traces compare equal across runs.
func Replay(cat *catalog.Catalog, d save.Data, seed, skillID string, answers []TimedAnswer) Trace {
	e := New(cat,
		WithClock(func() time.Time { return d.CreatedAt }),
		WithIDGenerator(func() string { return "replay-" + seed }),
	)
	return e.Replay(d, seed, skillID, answers)
}

// ReplayLast replays the battle described by lb on a fresh profile that
// matches its starting grade and skill state.
func ReplayLast(cat *catalog.Catalog, lb save.LastBattle, answers []TimedAnswer) Trace {
	d := save.New(cat, save.Params{Grade: lb.Grade})
	d.Progress.SkillState[lb.SkillID] = lb.Skill
	return Replay(cat, d, lb.Seed, lb.SkillID, answers)
}

// Replay starts a seeded battle from d and feeds it answers until the
// battle ends or the answers run out. The same inputs always produce the
// same trace.
func (e *Engine) Replay(d save.Data, seed, skillID string, answers []TimedAnswer) Trace {
	s, out := e.Start(d, StartOptions{SkillID: skillID, Seed: seed})
	tr := Trace{Seed: seed, SkillID: s.SkillID, EnemyID: s.EnemyID}

	for _, a := range answers {
		if s.Terminal() {
			break
		}
		q := s.CurrentQuestion
		value := a.resolve(q)

		var res AnswerResult
		idx := s.QuestionIndex
		s, out, res = e.ApplyAnswer(out, s, value, a.ResponseTimeMs)
		tr.Steps = append(tr.Steps, Step{
			Index:    idx,
			Prompt:   q.Prompt,
			Expected: q.Answer,
			Answer:   value,
			PlayerHP: s.PlayerHP,
			EnemyHP:  s.EnemyHP,
			Result:   res,
		})
	}

	tr.Session = s
	tr.Save = out
	return tr
}

func (a TimedAnswer) resolve(q problemgen.Question) float64 {
	switch a.Mode {
	case "ok":
		return float64(q.Answer)
	case "miss":
		return float64(q.Answer + 1)
	}
	return a.Answer
}

// ParseTimedAnswers parses a comma separated script such as
// "12@2500,ok@900,miss@4000". The latency defaults to 0 when omitted.
func ParseTimedAnswers(script string) ([]TimedAnswer, error) {
	script = strings.TrimSpace(script)
	if script == "" {
		return nil, nil
	}

	var out []TimedAnswer
	for i, part := range strings.Split(script, ",") {
		part = strings.TrimSpace(part)
		value, latency, hasLatency := strings.Cut(part, "@")

		var a TimedAnswer
		switch value = strings.TrimSpace(value); value {
		case "ok", "miss":
			a.Mode = value
		default:
			v, ok := problemgen.ParseAnswer(value)
			if !ok {
				v = math.NaN()
			}
			a.Answer = v
		}

		if hasLatency {
			ms, err := strconv.ParseFloat(strings.TrimSpace(latency), 64)
			if err != nil || ms < 0 || math.IsNaN(ms) || math.IsInf(ms, 0) {
				return nil, fmt.Errorf("answer %d: invalid latency %q", i+1, latency)
			}
			a.ResponseTimeMs = ms
		}
		out = append(out, a)
	}
	return out, nil
}
