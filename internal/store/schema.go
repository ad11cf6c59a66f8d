package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	slotsTable   = "save_slots"
	historyTable = "slot_history"
)

var (
	// SlotsColumns holds the columns for the "save_slots" table.
	SlotsColumns = []*schema.Column{
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString, Size: 2147483647},
		{Name: "revision", Type: field.TypeInt64, Default: 1},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SlotsTable holds the schema information for the "save_slots" table.
	SlotsTable = &schema.Table{
		Name:       slotsTable,
		Columns:    SlotsColumns,
		PrimaryKey: []*schema.Column{SlotsColumns[0]},
	}

	// HistoryColumns holds the columns for the "slot_history" table.
	HistoryColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "value", Type: field.TypeString, Size: 2147483647},
		{Name: "revision", Type: field.TypeInt64},
		{Name: "created_at", Type: field.TypeTime},
	}
	// HistoryTable holds the schema information for the "slot_history" table.
	HistoryTable = &schema.Table{
		Name:       historyTable,
		Columns:    HistoryColumns,
		PrimaryKey: []*schema.Column{HistoryColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "slothistory_name_revision",
				Unique:  false,
				Columns: []*schema.Column{HistoryColumns[1], HistoryColumns[3]},
			},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SlotsTable,
		HistoryTable,
	}
)
