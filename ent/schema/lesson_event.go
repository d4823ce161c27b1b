package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonEvent records a lesson completion attempt.
type LessonEvent struct {
	ent.Schema
}

func (LessonEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LessonEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("lesson_id").NotEmpty(),
		field.String("course_id").NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("completed, duplicate or rejected"),
		field.Float("watched_seconds"),
		field.Float("duration_seconds"),
		field.Int("award").
			Default(0).
			Comment("XP granted by this event"),
	}
}

func (LessonEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "lesson_id"),
		index.Fields("action"),
	}
}
