package save

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/abhisek/mathmonsters/internal/catalog"
)

// KV is the local key-value slot the save is written to.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Store loads and persists the save for one catalog. Storage failures are
// logged and swallowed: reads behave as if no save exists and writes are
// skipped. A Store with a nil KV behaves as unavailable storage.
type Store struct {
	kv  KV
	cat *catalog.Catalog
	log *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for swallowed storage errors.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// NewStore creates a Store over kv.
func NewStore(kv KV, cat *catalog.Catalog, opts ...Option) *Store {
	s := &Store{kv: kv, cat: cat, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the current save, upgrading a version 1 save or importing
// legacy data when no current save exists. It returns nil when there is
// nothing to load.
func (s *Store) Load(ctx context.Context) *Data {
	if s.kv == nil {
		return nil
	}

	if d, ok := s.loadKey(ctx, KeyCurrent); ok {
		return &d
	}
	if d, ok := s.loadKey(ctx, KeyV1); ok {
		s.log.Info("upgraded save", zap.Int("from", 1), zap.Int("to", CurrentVersion))
		if s.write(ctx, d) {
			s.remove(ctx, KeyV1)
		}
		return &d
	}
	return s.MigrateLegacy(ctx)
}

// loadKey reads, upgrades and normalizes the save stored under key.
func (s *Store) loadKey(ctx context.Context, key string) (Data, bool) {
	raw, ok := s.get(ctx, key)
	if !ok {
		return Data{}, false
	}
	d, err := decode([]byte(raw))
	if err != nil {
		s.log.Warn("unable to load save", zap.String("key", key), zap.Error(err))
		return Data{}, false
	}
	if d.Version > CurrentVersion {
		s.log.Warn("save written by a newer version", zap.String("key", key), zap.Int("version", d.Version))
	}
	return Normalize(d, s.cat), true
}

// decode parses raw, upgrading older versions first.
func decode(raw []byte) (Data, error) {
	if v := gjson.GetBytes(raw, "version"); v.Exists() && v.Int() < CurrentVersion {
		upgraded, err := UpgradeV1(raw)
		if err != nil {
			return Data{}, err
		}
		raw = upgraded
	}
	return Parse(raw)
}

// Persist normalizes d and writes it under the current key.
func (s *Store) Persist(ctx context.Context, d Data) {
	s.write(ctx, Normalize(d, s.cat))
}

// Update normalizes d, persists it and returns the normalized value.
func (s *Store) Update(ctx context.Context, d Data) Data {
	n := Normalize(d, s.cat)
	s.write(ctx, n)
	return n
}

// Reset deletes the current save, the version 1 save and all legacy keys.
func (s *Store) Reset(ctx context.Context) {
	if s.kv == nil {
		return
	}
	s.remove(ctx, KeyCurrent)
	s.remove(ctx, KeyV1)
	for _, key := range LegacyKeys {
		s.remove(ctx, key)
	}
}

// MigrateLegacy imports pre-versioning data into a new save. It runs when any
// legacy key is present, salvages what it can and persists the result.
// Legacy keys are deleted only once that write succeeds. Unreadable keys are ignored. It returns nil when
// no legacy key exists.
func (s *Store) MigrateLegacy(ctx context.Context) *Data {
	if s.kv == nil {
		return nil
	}

	values := make(map[string]string, len(LegacyKeys))
	for _, key := range LegacyKeys {
		if raw, ok := s.get(ctx, key); ok {
			values[key] = raw
		}
	}
	if len(values) == 0 {
		return nil
	}

	p := Params{Grade: s.cat.DefaultGrade()}
	xp := 0

	if raw, ok := values[LegacyProfileKey]; ok {
		if profile, ok := legacyObject(raw); ok {
			if email := profile.Get("email"); email.Exists() && email.String() != "" {
				p.ParentEmail = email.String()
			}
			if grade := profile.Get("grade"); grade.Exists() && grade.Float() > 0 {
				p.Grade = s.cat.SanitizeGrade(intOf(grade))
			}
		} else {
			s.log.Warn("unable to parse legacy profile", zap.String("key", LegacyProfileKey))
		}
	}

	if raw, ok := values[LegacyProgressKey]; ok {
		if progress, ok := legacyObject(raw); ok {
			if level := progress.Get("currentLevel"); level.Exists() {
				xp = max(xp, legacyLevelXP(level.Float()))
			}
		} else {
			s.log.Warn("unable to parse legacy progress", zap.String("key", LegacyProgressKey))
		}
	}

	d := New(s.cat, p)
	d.Progress.XP = xp
	d.Flags.MigratedFromLegacy = true
	d = Normalize(d, s.cat)

	// Legacy keys are the only copy until the new save is written.
	if !s.write(ctx, d) {
		return &d
	}
	for _, key := range LegacyKeys {
		s.remove(ctx, key)
	}
	s.log.Info("imported legacy save", zap.Int("keys", len(values)), zap.Int("xp", xp))
	return &d
}

func legacyObject(raw string) (gjson.Result, bool) {
	if !gjson.Valid(raw) {
		return gjson.Result{}, false
	}
	r := gjson.Parse(raw)
	return r, r.IsObject()
}

// Export returns the current save as indented JSON.
func (s *Store) Export(ctx context.Context) ([]byte, error) {
	d := s.Load(ctx)
	if d == nil {
		return nil, ErrNoSave
	}
	return json.MarshalIndent(d, "", "  ")
}

// Import replaces the current save with raw, which may be a version 1 or
// version 2 document. Unlike Persist, a failed write is reported.
func (s *Store) Import(ctx context.Context, raw []byte) (Data, error) {
	d, err := decode(raw)
	if err != nil {
		return Data{}, fmt.Errorf("import save: %w", err)
	}
	d = Normalize(d, s.cat)
	if s.kv == nil {
		return Data{}, fmt.Errorf("import save: storage unavailable")
	}
	if err := s.set(ctx, d); err != nil {
		return Data{}, fmt.Errorf("import save: %w", err)
	}
	s.remove(ctx, KeyV1)
	return d, nil
}

func (s *Store) get(ctx context.Context, key string) (string, bool) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.log.Warn("storage read failed", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return raw, ok
}

func (s *Store) set(ctx context.Context, d Data) error {
	b, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal save: %w", err)
	}
	return s.kv.Set(ctx, KeyCurrent, string(b))
}

// write persists d and reports whether the write succeeded.
func (s *Store) write(ctx context.Context, d Data) bool {
	if s.kv == nil {
		return false
	}
	if err := s.set(ctx, d); err != nil {
		s.log.Warn("unable to persist save", zap.Error(err))
		return false
	}
	return true
}

func (s *Store) remove(ctx context.Context, key string) {
	if err := s.kv.Delete(ctx, key); err != nil {
		s.log.Warn("storage delete failed", zap.String("key", key), zap.Error(err))
	}
}
