package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AchievementEvent records an achievement unlock. Each achievement unlocks
// at most once per learner.
type AchievementEvent struct {
	ent.Schema
}

func (AchievementEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AchievementEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("achievement_id").NotEmpty(),
		field.String("name").NotEmpty(),
		field.String("rarity").NotEmpty(),
		field.String("category").NotEmpty(),
		field.Int("reward").NonNegative(),
	}
}

func (AchievementEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "achievement_id").Unique(),
		index.Fields("rarity"),
	}
}
