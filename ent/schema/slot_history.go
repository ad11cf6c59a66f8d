package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SlotHistory keeps the values a slot held before it was overwritten.
type SlotHistory struct {
	ent.Schema
}

func (SlotHistory) Mixin() []ent.Mixin {
	return []ent.Mixin{RevisionMixin{}}
}

func (SlotHistory) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Slot key the value belonged to"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the value was replaced"),
	}
}

func (SlotHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name", "revision"),
	}
}
