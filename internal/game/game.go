// Package game is the application context the TUI and CLI drive: it owns
// the catalog, the save store, the loaded save and the active battle.
package game

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/mathmonsters/internal/battle"
	"github.com/abhisek/mathmonsters/internal/catalog"
	"github.com/abhisek/mathmonsters/internal/problemgen"
	"github.com/abhisek/mathmonsters/internal/rng"
	"github.com/abhisek/mathmonsters/internal/save"
)

var (
	// ErrInvalidAnswer is returned when the submitted answer is not a number.
	ErrInvalidAnswer = errors.New("answer must be a number")

	// ErrNoBattle is returned when an answer arrives with no active battle.
	ErrNoBattle = errors.New("no active battle")

	// ErrNoSave is returned by operations that need a profile before setup.
	ErrNoSave = errors.New("no save")
)

// Game holds the state of one running application.
type Game struct {
	cat    *catalog.Catalog
	store  *save.Store
	engine *battle.Engine
	log    *zap.Logger

	now     func() time.Time
	newSeed func() string
	engOpts []battle.Option

	data    *save.Data
	session *battle.Session
	last    *battle.AnswerResult
}

// Option configures a Game.
type Option func(*Game)

// WithClock sets the clock used for question timing.
func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

// WithSeedSource sets the generator for per-battle seeds.
func WithSeedSource(gen func() string) Option {
	return func(g *Game) { g.newSeed = gen }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithEngineOptions passes options through to the battle engine.
func WithEngineOptions(opts ...battle.Option) Option {
	return func(g *Game) { g.engOpts = append(g.engOpts, opts...) }
}

// New creates a Game and loads any existing save from st.
func New(ctx context.Context, cat *catalog.Catalog, st *save.Store, opts ...Option) *Game {
	g := &Game{
		cat:     cat,
		store:   st,
		log:     zap.NewNop(),
		now:     time.Now,
		newSeed: rng.NewSeed,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.engine = battle.New(cat, append([]battle.Option{battle.WithClock(g.now)}, g.engOpts...)...)

	g.data = st.Load(ctx)
	if g.data != nil {
		g.log.Info("save loaded",
			zap.Int("xp", g.data.Progress.XP),
			zap.Int("battles_played", g.data.Progress.BattlesPlayed),
			zap.Bool("migrated_from_legacy", g.data.Flags.MigratedFromLegacy),
		)
	}
	return g
}

// Catalog returns the content catalog.
func (g *Game) Catalog() *catalog.Catalog { return g.cat }

// HasSave reports whether a profile exists.
func (g *Game) HasSave() bool { return g.data != nil }

// Save returns a copy of the current save. It is the zero Data before setup.
func (g *Game) Save() save.Data {
	if g.data == nil {
		return save.Data{}
	}
	return g.data.Clone()
}

// Level is the player level, 0 before setup.
func (g *Game) Level() int {
	if g.data == nil {
		return 0
	}
	return g.data.Level()
}

// Setup creates and persists a new profile.
func (g *Game) Setup(ctx context.Context, p save.Params) save.Data {
	d := g.store.Update(ctx, save.New(g.cat, p))
	g.data = &d
	g.session, g.last = nil, nil
	g.log.Info("profile created", zap.Int("grade", d.Child.Grade), zap.String("creature", d.Child.SelectedCreatureID))
	return d.Clone()
}

// StartBattle begins a battle with a fresh seed. An empty or unknown skillID
// falls back to the last played skill.
func (g *Game) StartBattle(ctx context.Context, skillID string) (battle.Session, error) {
	if g.data == nil {
		return battle.Session{}, ErrNoSave
	}

	s, d := g.engine.Start(*g.data, battle.StartOptions{SkillID: skillID, Seed: g.newSeed()})
	d = g.store.Update(ctx, d)
	g.data = &d
	g.session = &s
	g.last = nil

	g.log.Info("battle started",
		zap.String("battle_id", s.BattleID),
		zap.String("skill", s.SkillID),
		zap.String("enemy", s.EnemyID),
		zap.String("seed", s.Seed),
	)
	return s, nil
}

// Battle returns the active battle, or nil.
func (g *Game) Battle() *battle.Session {
	if g.session == nil {
		return nil
	}
	s := *g.session
	return &s
}

// LastResult returns the result of the most recent answer, or nil.
func (g *Game) LastResult() *battle.AnswerResult {
	if g.last == nil {
		return nil
	}
	r := *g.last
	return &r
}

// SubmitAnswer applies raw to the active battle and autosaves.
func (g *Game) SubmitAnswer(ctx context.Context, raw string) (battle.AnswerResult, error) {
	if g.session == nil || g.data == nil {
		return battle.AnswerResult{}, ErrNoBattle
	}
	value, ok := problemgen.ParseAnswer(raw)
	if !ok {
		return battle.AnswerResult{}, ErrInvalidAnswer
	}

	rt := g.session.ResponseTime(g.now())
	s, d, res := g.engine.ApplyAnswer(*g.data, *g.session, value, rt)
	d = g.store.Update(ctx, d)
	g.data = &d
	g.session = &s
	g.last = &res

	if res.BattleEnded {
		g.log.Info("battle ended",
			zap.String("battle_id", s.BattleID),
			zap.String("outcome", string(res.Outcome)),
			zap.Int("xp_awarded", res.XPAwarded),
		)
	} else {
		g.log.Debug("answer applied",
			zap.Bool("correct", res.Correct),
			zap.Float64("response_ms", rt),
		)
	}
	return res, nil
}

// Summary summarizes the active battle.
func (g *Game) Summary() (battle.Summary, bool) {
	if g.session == nil || g.data == nil {
		return battle.Summary{}, false
	}
	return battle.BuildSummary(*g.session, *g.data), true
}

// EndBattle discards the active battle.
func (g *Game) EndBattle() {
	g.session, g.last = nil, nil
}

// Settings are the player-editable profile fields.
type Settings struct {
	Grade              int
	SelectedCreatureID string
	ParentEmail        string
	PracticeMode       bool
}

// CurrentSettings returns the editable fields of the current save.
func (g *Game) CurrentSettings() Settings {
	if g.data == nil {
		return Settings{Grade: g.cat.DefaultGrade(), SelectedCreatureID: g.cat.ResolveCreatureID("")}
	}
	return Settings{
		Grade:              g.data.Child.Grade,
		SelectedCreatureID: g.data.Child.SelectedCreatureID,
		ParentEmail:        g.data.ParentEmail,
		PracticeMode:       g.data.Flags.PracticeMode,
	}
}

// UpdateSettings applies s to the save. Unknown grades and creatures are
// repaired by normalization.
func (g *Game) UpdateSettings(ctx context.Context, s Settings) error {
	if g.data == nil {
		return ErrNoSave
	}
	d := g.data.Clone()
	d.Child.Grade = s.Grade
	d.Child.SelectedCreatureID = s.SelectedCreatureID
	d.ParentEmail = strings.TrimSpace(s.ParentEmail)
	d.Flags.PracticeMode = s.PracticeMode
	return g.persist(ctx, d)
}

// DismissHomeHint records that the home hint was seen.
func (g *Game) DismissHomeHint(ctx context.Context) error {
	if g.data == nil {
		return ErrNoSave
	}
	d := g.data.Clone()
	d.Flags.SeenHomeHint = true
	return g.persist(ctx, d)
}

// DismissMigrationNote clears the legacy migration marker.
func (g *Game) DismissMigrationNote(ctx context.Context) error {
	if g.data == nil {
		return ErrNoSave
	}
	d := g.data.Clone()
	d.Flags.MigratedFromLegacy = false
	return g.persist(ctx, d)
}

// Reset deletes all saved progress.
func (g *Game) Reset(ctx context.Context) {
	g.store.Reset(ctx)
	g.data, g.session, g.last = nil, nil, nil
	g.log.Info("progress reset")
}

func (g *Game) persist(ctx context.Context, d save.Data) error {
	d = g.store.Update(ctx, d)
	g.data = &d
	return nil
}
