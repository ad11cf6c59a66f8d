package store

import (
	"testing"

	"entgo.io/ent"
	entsqlschema "entgo.io/ent/dialect/sql/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entschema "github.com/abhisek/mathmonsters/ent/schema"
)

// column returns the column a field is stored in.
func column(f ent.Field) string {
	d := f.Descriptor()
	if d.StorageKey != "" {
		return d.StorageKey
	}
	return d.Name
}

func schemaColumns(fields ...[]ent.Field) map[string]string {
	cols := make(map[string]string)
	for _, fs := range fields {
		for _, f := range fs {
			cols[f.Descriptor().Name] = column(f)
		}
	}
	return cols
}

func tableColumns(t *entsqlschema.Table) []string {
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		names = append(names, c.Name)
	}
	return names
}

// The migration tables must stay in step with the ent schema definitions.
func TestTablesMatchEntSchema(t *testing.T) {
	mix := entschema.RevisionMixin{}.Fields()

	t.Run(slotsTable, func(t *testing.T) {
		cols := schemaColumns(mix, entschema.SaveSlot{}.Fields())
		require.Contains(t, cols, "id", "slots declare their own string key")

		want := make([]string, 0, len(cols))
		for _, c := range cols {
			want = append(want, c)
		}
		assert.ElementsMatch(t, want, tableColumns(SlotsTable))

		require.Len(t, SlotsTable.PrimaryKey, 1)
		assert.Equal(t, cols["id"], SlotsTable.PrimaryKey[0].Name)
		assert.Equal(t, "name", SlotsTable.PrimaryKey[0].Name)
	})

	t.Run(historyTable, func(t *testing.T) {
		cols := schemaColumns(mix, entschema.SlotHistory{}.Fields())
		require.NotContains(t, cols, "id", "history rows use ent's generated int key")

		want := []string{"id"}
		for _, c := range cols {
			want = append(want, c)
		}
		assert.ElementsMatch(t, want, tableColumns(HistoryTable))

		require.Len(t, HistoryTable.PrimaryKey, 1)
		pk := HistoryTable.PrimaryKey[0]
		assert.Equal(t, "id", pk.Name)
		assert.True(t, pk.Increment)
	})
}
