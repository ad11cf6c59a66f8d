package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// Slot describes one stored slot without its value.
type Slot struct {
	Name      string
	Revision  int64
	UpdatedAt time.Time
}

// HistoryEntry is a previous value of a slot.
type HistoryEntry struct {
	ID        int
	Name      string
	Value     string
	Revision  int64
	CreatedAt time.Time
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

// Get returns the value stored under name. The second result is false when
// the slot does not exist.
func (s *Store) Get(ctx context.Context, name string) (string, bool, error) {
	query, args := builder().
		Select("value").
		From(entsql.Table(slotsTable)).
		Where(entsql.EQ("name", name)).
		Query()

	var value string
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get slot %q: %w", name, err)
	}
	return value, true, nil
}

// Set replaces the value stored under name. The previous value, if any, is
// moved into the slot history.
func (s *Store) Set(ctx context.Context, name, value string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	query, args := builder().
		Select("value", "revision").
		From(entsql.Table(slotsTable)).
		Where(entsql.EQ("name", name)).
		Query()

	var (
		prev    string
		prevRev int64
		exists  = true
	)
	err = tx.QueryRowContext(ctx, query, args...).Scan(&prev, &prevRev)
	if errors.Is(err, sql.ErrNoRows) {
		exists = false
	} else if err != nil {
		return fmt.Errorf("read slot %q: %w", name, err)
	}

	now := time.Now().UTC()
	if exists && s.historyLimit > 0 {
		if err := appendHistory(ctx, tx, name, prev, prevRev, now); err != nil {
			return err
		}
		if err := pruneHistory(ctx, tx, name, s.historyLimit); err != nil {
			return err
		}
	}

	query, args = builder().
		Insert(slotsTable).
		Columns("name", "value", "revision", "updated_at").
		Values(name, value, prevRev+1, now).
		OnConflict(
			entsql.ConflictColumns("name"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("write slot %q: %w", name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit slot %q: %w", name, err)
	}
	return nil
}

// Delete removes the slot. Deleting a missing slot is not an error. History
// is kept.
func (s *Store) Delete(ctx context.Context, name string) error {
	query, args := builder().
		Delete(slotsTable).
		Where(entsql.EQ("name", name)).
		Query()
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete slot %q: %w", name, err)
	}
	return nil
}

// Slots lists all stored slots ordered by name.
func (s *Store) Slots(ctx context.Context) ([]Slot, error) {
	query, args := builder().
		Select("name", "revision", "updated_at").
		From(entsql.Table(slotsTable)).
		OrderBy("name").
		Query()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var out []Slot
	for rows.Next() {
		var sl Slot
		if err := rows.Scan(&sl.Name, &sl.Revision, &sl.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		out = append(out, sl)
	}
	return out, rows.Err()
}
