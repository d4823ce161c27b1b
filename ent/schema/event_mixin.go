package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EventMixin is embedded by every learner event. Events are ordered by a
// global sequence number and owned by one learner.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Global append order across all event tables"),
		field.String("user_id").
			NotEmpty().
			Immutable().
			Comment("Learner the event belongs to"),
		field.Time("timestamp").
			Default(func() time.Time { return time.Now().UTC() }).
			Immutable(),
	}
}

func (EventMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "sequence"),
		index.Fields("user_id", "timestamp"),
	}
}
