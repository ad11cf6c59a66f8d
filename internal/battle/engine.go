package battle

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathmonsters/internal/catalog"
	"github.com/abhisek/mathmonsters/internal/mastery"
	"github.com/abhisek/mathmonsters/internal/problemgen"
	"github.com/abhisek/mathmonsters/internal/rng"
	"github.com/abhisek/mathmonsters/internal/save"
)

// Engine runs battles against one catalog.
type Engine struct {
	cat   *catalog.Catalog
	now   func() time.Time
	newID func() string
	rand  rng.Draw
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the time source for question timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDGenerator sets the battle ID source.
func WithIDGenerator(gen func() string) Option {
	return func(e *Engine) { e.newID = gen }
}

// WithRand sets the random source used by unseeded battles.
func WithRand(draw rng.Draw) Option {
	return func(e *Engine) { e.rand = draw }
}

// New creates an Engine for cat.
func New(cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		cat:   cat,
		now:   time.Now,
		newID: uuid.NewString,
		rand:  rand.Float64,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// StartOptions select the skill and randomness of a new battle.
type StartOptions struct {
	// SkillID is used when it names a catalog skill.
	SkillID string

	// Seed enables replayable randomness when non-empty.
	Seed string
}

// Start begins a battle. The returned save has battlesPlayed incremented and
// the chosen skill recorded as last played.
func (e *Engine) Start(d save.Data, opts StartOptions) (Session, save.Data) {
	out := d.Clone()
	if out.Progress.SkillState == nil {
		out.Progress.SkillState = make(map[string]mastery.SkillState)
	}

	skillID := e.resolveSkill(opts.SkillID, out.Progress.LastPlayedSkillID)
	st, ok := out.Progress.SkillState[skillID]
	if !ok {
		st = mastery.NewSkillState()
		out.Progress.SkillState[skillID] = st
	}
	difficulty := catalog.ClampDifficulty(st.Difficulty)

	draw, cursor := e.rand, func() rng.State { return rng.State{} }
	if opts.Seed != "" {
		draw, cursor = rng.Stream(rng.New(opts.Seed))
	}

	enemy := pickEnemy(e.cat, draw)
	q := problemgen.GenerateWith(e.cat, skillID, out.Child.Grade, difficulty, draw)

	cfg := e.cat.BattleConfig
	s := Session{
		BattleID:          e.newID(),
		SkillID:           skillID,
		EnemyID:           enemy.ID,
		PlayerHP:          cfg.PlayerHP,
		EnemyHP:           cfg.EnemyHP,
		MaxPlayerHP:       cfg.PlayerHP,
		MaxEnemyHP:        cfg.EnemyHP,
		QuestionLimit:     cfg.QuestionLimit(),
		CurrentQuestion:   q,
		QuestionStartedAt: e.now(),
		Seed:              opts.Seed,
		Status:            StatusInProgress,
		StartDifficulty:   difficulty,
	}
	if s.Seeded() {
		s.RngCursor = cursor().Cursor
	}

	out.Progress.BattlesPlayed++
	out.Progress.LastPlayedSkillID = skillID
	out.Progress.LastBattleSeed = opts.Seed
	out.Progress.LastBattle = nil
	if s.Seeded() {
		out.Progress.LastBattle = &save.LastBattle{
			Seed:    opts.Seed,
			SkillID: skillID,
			Grade:   out.Child.Grade,
			Skill:   st,
		}
	}
	return s, out
}

// resolveSkill picks the explicit skill, else the last played one, else the
// catalog's first skill.
func (e *Engine) resolveSkill(explicit, lastPlayed string) string {
	if e.cat.HasSkill(explicit) {
		return explicit
	}
	if e.cat.HasSkill(lastPlayed) {
		return lastPlayed
	}
	return e.cat.FirstSkillID()
}

func pickEnemy(cat *catalog.Catalog, draw rng.Draw) catalog.Enemy {
	n := len(cat.Enemies)
	if n == 0 {
		return catalog.PlaceholderEnemy
	}
	idx := int(math.Floor(draw() * float64(n)))
	return cat.Enemies[min(max(idx, 0), n-1)]
}

// ApplyAnswer resolves one answer. answer is compared numerically with the
// current question's answer; NaN is always incorrect. Applying an answer to
// a finished battle changes nothing.
func (e *Engine) ApplyAnswer(d save.Data, s Session, answer float64, responseTimeMs float64) (Session, save.Data, AnswerResult) {
	if s.Terminal() {
		return s, d, AnswerResult{
			BattleEnded:    true,
			Outcome:        s.Outcome(),
			ResponseTimeMs: responseTimeMs,
		}
	}

	cfg := e.cat.BattleConfig
	correct := problemgen.CheckAnswer(answer, s.CurrentQuestion)
	fast := correct && responseTimeMs < float64(cfg.FastThresholdMs)

	res := AnswerResult{
		Correct:          correct,
		FastBonusApplied: fast,
		Outcome:          OutcomeInProgress,
		ResponseTimeMs:   responseTimeMs,
	}
	if correct {
		res.DamageToEnemy = cfg.DamageOnCorrect
		if fast {
			res.DamageToEnemy += cfg.FastBonusDamage
		}
	} else {
		res.DamageToPlayer = cfg.DamageOnIncorrect
	}

	next := s
	next.CurrentQuestion = s.CurrentQuestion.Clone()
	next.EnemyHP = max(0, s.EnemyHP-res.DamageToEnemy)
	next.PlayerHP = max(0, s.PlayerHP-res.DamageToPlayer)
	if correct {
		next.CorrectCount++
	}
	if fast {
		next.FastCount++
	}

	out := d.Clone()
	if out.Progress.SkillState == nil {
		out.Progress.SkillState = make(map[string]mastery.SkillState)
	}
	before := out.Skill(s.SkillID)
	after := mastery.UpdateDifficulty(correct, before, responseTimeMs)
	out.Progress.SkillState[s.SkillID] = after
	out.Progress.LastPlayedSkillID = s.SkillID
	res.DifficultyBefore = catalog.ClampDifficulty(before.Difficulty)
	res.DifficultyAfter = after.Difficulty

	limit := max(1, s.QuestionLimit)
	if next.EnemyHP == 0 || next.PlayerHP == 0 || s.QuestionIndex+1 >= limit {
		res.BattleEnded = true
		if next.EnemyHP == 0 {
			res.Outcome = OutcomePlayer
			res.XPAwarded = XPWin
			next.Status = StatusWon
		} else {
			res.Outcome = OutcomeEnemy
			res.XPAwarded = XPOther
			next.Status = StatusLost
		}
		out.Progress.XP += res.XPAwarded
	} else {
		next.CurrentQuestion, next.RngCursor = e.nextQuestion(s, out.Child.Grade, after.Difficulty)
		next.QuestionIndex++
		next.QuestionStartedAt = e.now()
	}

	next.LastAnswer = &res
	return next, out, res
}

// nextQuestion generates the following question, threading the seeded
// cursor forward when the session is seeded.
func (e *Engine) nextQuestion(s Session, grade, difficulty int) (problemgen.Question, int) {
	if !s.Seeded() {
		return problemgen.GenerateWith(e.cat, s.SkillID, grade, difficulty, e.rand), s.RngCursor
	}
	q, st := problemgen.GenerateSeeded(e.cat, s.SkillID, grade, difficulty, rng.State{Seed: s.Seed, Cursor: s.RngCursor})
	return q, st.Cursor
}
