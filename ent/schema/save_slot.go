package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// SaveSlot is one named key-value slot. The save and the legacy keys each
// live in their own slot, keyed by name.
type SaveSlot struct {
	ent.Schema
}

func (SaveSlot) Mixin() []ent.Mixin {
	return []ent.Mixin{RevisionMixin{}}
}

func (SaveSlot) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("name").
			NotEmpty().
			Immutable().
			Comment("Slot key, e.g. mathMonstersSave_v2"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("UTC time of the last write"),
	}
}
