package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot is a learner's encoded progress at some point in the event log.
// Restoring from the newest one avoids replaying every event.
type Snapshot struct {
	ent.Schema
}

func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.Int64("sequence").
			NonNegative().
			Immutable().
			Comment("Last event sequence the snapshot includes"),
		field.Int("version").
			Positive().
			Immutable().
			Comment("Layout of data"),
		field.Time("timestamp").
			Default(func() time.Time { return time.Now().UTC() }).
			Immutable(),
		field.Bytes("data").
			NotEmpty().
			Comment("JSON encoded progress, lessons, achievements and activity"),
	}
}

func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "sequence"),
	}
}
