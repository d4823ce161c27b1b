// Code generated by ent, DO NOT EDIT.

package achievementevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/edusmart/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldSequence, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldUserID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldTimestamp, v))
}

// AchievementID applies equality check predicate on the "achievement_id" field. It's identical to AchievementIDEQ.
func AchievementID(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldAchievementID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldName, v))
}

// Rarity applies equality check predicate on the "rarity" field. It's identical to RarityEQ.
func Rarity(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldRarity, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldCategory, v))
}

// Reward applies equality check predicate on the "reward" field. It's identical to RewardEQ.
func Reward(v int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldReward, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLTE(FieldSequence, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldContainsFold(FieldUserID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLTE(FieldTimestamp, v))
}

// AchievementIDEQ applies the EQ predicate on the "achievement_id" field.
func AchievementIDEQ(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldAchievementID, v))
}

// AchievementIDNEQ applies the NEQ predicate on the "achievement_id" field.
func AchievementIDNEQ(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNEQ(FieldAchievementID, v))
}

// AchievementIDIn applies the In predicate on the "achievement_id" field.
func AchievementIDIn(vs ...string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldIn(FieldAchievementID, vs...))
}

// AchievementIDNotIn applies the NotIn predicate on the "achievement_id" field.
func AchievementIDNotIn(vs ...string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNotIn(FieldAchievementID, vs...))
}

// AchievementIDGT applies the GT predicate on the "achievement_id" field.
func AchievementIDGT(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGT(FieldAchievementID, v))
}

// AchievementIDGTE applies the GTE predicate on the "achievement_id" field.
func AchievementIDGTE(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGTE(FieldAchievementID, v))
}

// AchievementIDLT applies the LT predicate on the "achievement_id" field.
func AchievementIDLT(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLT(FieldAchievementID, v))
}

// AchievementIDLTE applies the LTE predicate on the "achievement_id" field.
func AchievementIDLTE(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLTE(FieldAchievementID, v))
}

// AchievementIDContains applies the Contains predicate on the "achievement_id" field.
func AchievementIDContains(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldContains(FieldAchievementID, v))
}

// AchievementIDHasPrefix applies the HasPrefix predicate on the "achievement_id" field.
func AchievementIDHasPrefix(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldHasPrefix(FieldAchievementID, v))
}

// AchievementIDHasSuffix applies the HasSuffix predicate on the "achievement_id" field.
func AchievementIDHasSuffix(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldHasSuffix(FieldAchievementID, v))
}

// AchievementIDEqualFold applies the EqualFold predicate on the "achievement_id" field.
func AchievementIDEqualFold(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEqualFold(FieldAchievementID, v))
}

// AchievementIDContainsFold applies the ContainsFold predicate on the "achievement_id" field.
func AchievementIDContainsFold(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldContainsFold(FieldAchievementID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldContainsFold(FieldName, v))
}

// RarityEQ applies the EQ predicate on the "rarity" field.
func RarityEQ(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldRarity, v))
}

// RarityNEQ applies the NEQ predicate on the "rarity" field.
func RarityNEQ(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNEQ(FieldRarity, v))
}

// RarityIn applies the In predicate on the "rarity" field.
func RarityIn(vs ...string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldIn(FieldRarity, vs...))
}

// RarityNotIn applies the NotIn predicate on the "rarity" field.
func RarityNotIn(vs ...string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNotIn(FieldRarity, vs...))
}

// RarityGT applies the GT predicate on the "rarity" field.
func RarityGT(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGT(FieldRarity, v))
}

// RarityGTE applies the GTE predicate on the "rarity" field.
func RarityGTE(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGTE(FieldRarity, v))
}

// RarityLT applies the LT predicate on the "rarity" field.
func RarityLT(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLT(FieldRarity, v))
}

// RarityLTE applies the LTE predicate on the "rarity" field.
func RarityLTE(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLTE(FieldRarity, v))
}

// RarityContains applies the Contains predicate on the "rarity" field.
func RarityContains(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldContains(FieldRarity, v))
}

// RarityHasPrefix applies the HasPrefix predicate on the "rarity" field.
func RarityHasPrefix(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldHasPrefix(FieldRarity, v))
}

// RarityHasSuffix applies the HasSuffix predicate on the "rarity" field.
func RarityHasSuffix(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldHasSuffix(FieldRarity, v))
}

// RarityEqualFold applies the EqualFold predicate on the "rarity" field.
func RarityEqualFold(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEqualFold(FieldRarity, v))
}

// RarityContainsFold applies the ContainsFold predicate on the "rarity" field.
func RarityContainsFold(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldContainsFold(FieldRarity, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldContainsFold(FieldCategory, v))
}

// RewardEQ applies the EQ predicate on the "reward" field.
func RewardEQ(v int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldReward, v))
}

// RewardNEQ applies the NEQ predicate on the "reward" field.
func RewardNEQ(v int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNEQ(FieldReward, v))
}

// RewardIn applies the In predicate on the "reward" field.
func RewardIn(vs ...int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldIn(FieldReward, vs...))
}

// RewardNotIn applies the NotIn predicate on the "reward" field.
func RewardNotIn(vs ...int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNotIn(FieldReward, vs...))
}

// RewardGT applies the GT predicate on the "reward" field.
func RewardGT(v int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGT(FieldReward, v))
}

// RewardGTE applies the GTE predicate on the "reward" field.
func RewardGTE(v int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGTE(FieldReward, v))
}

// RewardLT applies the LT predicate on the "reward" field.
func RewardLT(v int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLT(FieldReward, v))
}

// RewardLTE applies the LTE predicate on the "reward" field.
func RewardLTE(v int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLTE(FieldReward, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AchievementEvent) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AchievementEvent) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AchievementEvent) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.NotPredicates(p))
}
