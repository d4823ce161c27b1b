package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// XPEvent records every XP award and the level it left the learner at.
type XPEvent struct {
	ent.Schema
}

func (XPEvent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "xp_events"},
	}
}

func (XPEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (XPEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("source").
			NotEmpty().
			Comment("lesson, quiz, achievement or activity"),
		field.String("source_id").
			Comment("Lesson, quiz or achievement id that caused the award"),
		field.Int("amount").NonNegative(),
		field.Int("total_after").NonNegative(),
		field.Int("level_before").Positive(),
		field.Int("level_after").Positive(),
	}
}

func (XPEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source"),
	}
}
