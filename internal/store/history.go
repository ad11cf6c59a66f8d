package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// History returns up to limit previous values of the named slot, newest
// first. A limit of 0 returns all of them.
func (s *Store) History(ctx context.Context, name string, limit int) ([]HistoryEntry, error) {
	sel := builder().
		Select("id", "name", "value", "revision", "created_at").
		From(entsql.Table(historyTable)).
		Where(entsql.EQ("name", name)).
		OrderBy(entsql.Desc("id"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history for %q: %w", name, err)
	}
	defer rows.Close()

	var out []HistoryEntry
	for rows.Next() {
		var h HistoryEntry
		if err := rows.Scan(&h.ID, &h.Name, &h.Value, &h.Revision, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func appendHistory(ctx context.Context, tx *sql.Tx, name, value string, rev int64, at time.Time) error {
	query, args := builder().
		Insert(historyTable).
		Columns("name", "value", "revision", "created_at").
		Values(name, value, rev, at).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("append history for %q: %w", name, err)
	}
	return nil
}

// pruneHistory deletes all but the keep most recent history rows for name.
func pruneHistory(ctx context.Context, tx *sql.Tx, name string, keep int) error {
	query, args := builder().
		Select("id").
		From(entsql.Table(historyTable)).
		Where(entsql.EQ("name", name)).
		OrderBy(entsql.Desc("id")).
		Limit(1).
		Offset(keep).
		Query()

	var cutoff int
	err := tx.QueryRowContext(ctx, query, args...).Scan(&cutoff)
	if errors.Is(err, sql.ErrNoRows) {
		return nil // fewer than keep entries exist
	}
	if err != nil {
		return fmt.Errorf("query history for prune: %w", err)
	}

	query, args = builder().
		Delete(historyTable).
		Where(entsql.And(
			entsql.EQ("name", name),
			entsql.LTE("id", cutoff),
		)).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("prune history for %q: %w", name, err)
	}
	return nil
}
