package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityEvent records opaque external triggers such as logins and streak
// updates.
type ActivityEvent struct {
	ent.Schema
}

func (ActivityEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ActivityEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("kind").
			NotEmpty().
			Comment("login, streak or reset"),
		field.Int("value").
			Default(0).
			Comment("Streak length for streak events"),
	}
}

func (ActivityEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
	}
}
