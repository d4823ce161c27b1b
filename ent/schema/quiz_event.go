package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records a graded quiz attempt.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Unique().
			Comment("UUID of the attempt, graded once"),
		field.String("quiz_id").NotEmpty(),
		field.String("kind").NotEmpty(),
		field.Int("correct_count"),
		field.Int("total"),
		field.Int("score").
			Comment("0-100"),
		field.Bool("passed"),
		field.Int("award").
			Default(0).
			Comment("XP granted by this event"),
		field.Int64("elapsed_ms").Default(0),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quiz_id"),
		index.Fields("kind"),
	}
}
