// Code generated by ent, DO NOT EDIT.

package xpevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/edusmart/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldSequence, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldUserID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldSource, v))
}

// SourceID applies equality check predicate on the "source_id" field. It's identical to SourceIDEQ.
func SourceID(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldSourceID, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldAmount, v))
}

// TotalAfter applies equality check predicate on the "total_after" field. It's identical to TotalAfterEQ.
func TotalAfter(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldTotalAfter, v))
}

// LevelBefore applies equality check predicate on the "level_before" field. It's identical to LevelBeforeEQ.
func LevelBefore(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldLevelBefore, v))
}

// LevelAfter applies equality check predicate on the "level_after" field. It's identical to LevelAfterEQ.
func LevelAfter(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldLevelAfter, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLTE(FieldSequence, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldContainsFold(FieldUserID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldContainsFold(FieldSource, v))
}

// SourceIDEQ applies the EQ predicate on the "source_id" field.
func SourceIDEQ(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldSourceID, v))
}

// SourceIDNEQ applies the NEQ predicate on the "source_id" field.
func SourceIDNEQ(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNEQ(FieldSourceID, v))
}

// SourceIDIn applies the In predicate on the "source_id" field.
func SourceIDIn(vs ...string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldIn(FieldSourceID, vs...))
}

// SourceIDNotIn applies the NotIn predicate on the "source_id" field.
func SourceIDNotIn(vs ...string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNotIn(FieldSourceID, vs...))
}

// SourceIDGT applies the GT predicate on the "source_id" field.
func SourceIDGT(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGT(FieldSourceID, v))
}

// SourceIDGTE applies the GTE predicate on the "source_id" field.
func SourceIDGTE(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGTE(FieldSourceID, v))
}

// SourceIDLT applies the LT predicate on the "source_id" field.
func SourceIDLT(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLT(FieldSourceID, v))
}

// SourceIDLTE applies the LTE predicate on the "source_id" field.
func SourceIDLTE(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLTE(FieldSourceID, v))
}

// SourceIDContains applies the Contains predicate on the "source_id" field.
func SourceIDContains(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldContains(FieldSourceID, v))
}

// SourceIDHasPrefix applies the HasPrefix predicate on the "source_id" field.
func SourceIDHasPrefix(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldHasPrefix(FieldSourceID, v))
}

// SourceIDHasSuffix applies the HasSuffix predicate on the "source_id" field.
func SourceIDHasSuffix(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldHasSuffix(FieldSourceID, v))
}

// SourceIDEqualFold applies the EqualFold predicate on the "source_id" field.
func SourceIDEqualFold(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEqualFold(FieldSourceID, v))
}

// SourceIDContainsFold applies the ContainsFold predicate on the "source_id" field.
func SourceIDContainsFold(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldContainsFold(FieldSourceID, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLTE(FieldAmount, v))
}

// TotalAfterEQ applies the EQ predicate on the "total_after" field.
func TotalAfterEQ(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldTotalAfter, v))
}

// TotalAfterNEQ applies the NEQ predicate on the "total_after" field.
func TotalAfterNEQ(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNEQ(FieldTotalAfter, v))
}

// TotalAfterIn applies the In predicate on the "total_after" field.
func TotalAfterIn(vs ...int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldIn(FieldTotalAfter, vs...))
}

// TotalAfterNotIn applies the NotIn predicate on the "total_after" field.
func TotalAfterNotIn(vs ...int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNotIn(FieldTotalAfter, vs...))
}

// TotalAfterGT applies the GT predicate on the "total_after" field.
func TotalAfterGT(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGT(FieldTotalAfter, v))
}

// TotalAfterGTE applies the GTE predicate on the "total_after" field.
func TotalAfterGTE(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGTE(FieldTotalAfter, v))
}

// TotalAfterLT applies the LT predicate on the "total_after" field.
func TotalAfterLT(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLT(FieldTotalAfter, v))
}

// TotalAfterLTE applies the LTE predicate on the "total_after" field.
func TotalAfterLTE(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLTE(FieldTotalAfter, v))
}

// LevelBeforeEQ applies the EQ predicate on the "level_before" field.
func LevelBeforeEQ(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldLevelBefore, v))
}

// LevelBeforeNEQ applies the NEQ predicate on the "level_before" field.
func LevelBeforeNEQ(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNEQ(FieldLevelBefore, v))
}

// LevelBeforeIn applies the In predicate on the "level_before" field.
func LevelBeforeIn(vs ...int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldIn(FieldLevelBefore, vs...))
}

// LevelBeforeNotIn applies the NotIn predicate on the "level_before" field.
func LevelBeforeNotIn(vs ...int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNotIn(FieldLevelBefore, vs...))
}

// LevelBeforeGT applies the GT predicate on the "level_before" field.
func LevelBeforeGT(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGT(FieldLevelBefore, v))
}

// LevelBeforeGTE applies the GTE predicate on the "level_before" field.
func LevelBeforeGTE(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGTE(FieldLevelBefore, v))
}

// LevelBeforeLT applies the LT predicate on the "level_before" field.
func LevelBeforeLT(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLT(FieldLevelBefore, v))
}

// LevelBeforeLTE applies the LTE predicate on the "level_before" field.
func LevelBeforeLTE(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLTE(FieldLevelBefore, v))
}

// LevelAfterEQ applies the EQ predicate on the "level_after" field.
func LevelAfterEQ(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldLevelAfter, v))
}

// LevelAfterNEQ applies the NEQ predicate on the "level_after" field.
func LevelAfterNEQ(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNEQ(FieldLevelAfter, v))
}

// LevelAfterIn applies the In predicate on the "level_after" field.
func LevelAfterIn(vs ...int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldIn(FieldLevelAfter, vs...))
}

// LevelAfterNotIn applies the NotIn predicate on the "level_after" field.
func LevelAfterNotIn(vs ...int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNotIn(FieldLevelAfter, vs...))
}

// LevelAfterGT applies the GT predicate on the "level_after" field.
func LevelAfterGT(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGT(FieldLevelAfter, v))
}

// LevelAfterGTE applies the GTE predicate on the "level_after" field.
func LevelAfterGTE(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGTE(FieldLevelAfter, v))
}

// LevelAfterLT applies the LT predicate on the "level_after" field.
func LevelAfterLT(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLT(FieldLevelAfter, v))
}

// LevelAfterLTE applies the LTE predicate on the "level_after" field.
func LevelAfterLTE(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLTE(FieldLevelAfter, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.XPEvent) predicate.XPEvent {
	return predicate.XPEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.XPEvent) predicate.XPEvent {
	return predicate.XPEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.XPEvent) predicate.XPEvent {
	return predicate.XPEvent(sql.NotPredicates(p))
}
