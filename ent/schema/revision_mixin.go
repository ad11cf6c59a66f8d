package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"
)

// RevisionMixin adds the slot contents and the revision counter shared by
// the live slot and its history rows.
type RevisionMixin struct {
	mixin.Schema
}

func (RevisionMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Text("value").
			Comment("Raw slot contents"),
		field.Int64("revision").
			Default(1).
			Comment("Incremented on every write"),
	}
}
