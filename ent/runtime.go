// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/edusmart/ent/achievementevent"
	"github.com/abhisek/edusmart/ent/activityevent"
	"github.com/abhisek/edusmart/ent/lessonevent"
	"github.com/abhisek/edusmart/ent/quizevent"
	"github.com/abhisek/edusmart/ent/schema"
	"github.com/abhisek/edusmart/ent/snapshot"
	"github.com/abhisek/edusmart/ent/xpevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementeventMixin := schema.AchievementEvent{}.Mixin()
	achievementeventMixinFields0 := achievementeventMixin[0].Fields()
	_ = achievementeventMixinFields0
	achievementeventFields := schema.AchievementEvent{}.Fields()
	_ = achievementeventFields
	// achievementeventDescUserID is the schema descriptor for user_id field.
	achievementeventDescUserID := achievementeventMixinFields0[1].Descriptor()
	// achievementevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	achievementevent.UserIDValidator = achievementeventDescUserID.Validators[0].(func(string) error)
	// achievementeventDescTimestamp is the schema descriptor for timestamp field.
	achievementeventDescTimestamp := achievementeventMixinFields0[2].Descriptor()
	// achievementevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	achievementevent.DefaultTimestamp = achievementeventDescTimestamp.Default.(func() time.Time)
	// achievementeventDescAchievementID is the schema descriptor for achievement_id field.
	achievementeventDescAchievementID := achievementeventFields[0].Descriptor()
	// achievementevent.AchievementIDValidator is a validator for the "achievement_id" field. It is called by the builders before save.
	achievementevent.AchievementIDValidator = achievementeventDescAchievementID.Validators[0].(func(string) error)
	// achievementeventDescName is the schema descriptor for name field.
	achievementeventDescName := achievementeventFields[1].Descriptor()
	// achievementevent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	achievementevent.NameValidator = achievementeventDescName.Validators[0].(func(string) error)
	// achievementeventDescRarity is the schema descriptor for rarity field.
	achievementeventDescRarity := achievementeventFields[2].Descriptor()
	// achievementevent.RarityValidator is a validator for the "rarity" field. It is called by the builders before save.
	achievementevent.RarityValidator = achievementeventDescRarity.Validators[0].(func(string) error)
	// achievementeventDescCategory is the schema descriptor for category field.
	achievementeventDescCategory := achievementeventFields[3].Descriptor()
	// achievementevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	achievementevent.CategoryValidator = achievementeventDescCategory.Validators[0].(func(string) error)
	// achievementeventDescReward is the schema descriptor for reward field.
	achievementeventDescReward := achievementeventFields[4].Descriptor()
	// achievementevent.RewardValidator is a validator for the "reward" field. It is called by the builders before save.
	achievementevent.RewardValidator = achievementeventDescReward.Validators[0].(func(int) error)
	activityeventMixin := schema.ActivityEvent{}.Mixin()
	activityeventMixinFields0 := activityeventMixin[0].Fields()
	_ = activityeventMixinFields0
	activityeventFields := schema.ActivityEvent{}.Fields()
	_ = activityeventFields
	// activityeventDescUserID is the schema descriptor for user_id field.
	activityeventDescUserID := activityeventMixinFields0[1].Descriptor()
	// activityevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	activityevent.UserIDValidator = activityeventDescUserID.Validators[0].(func(string) error)
	// activityeventDescTimestamp is the schema descriptor for timestamp field.
	activityeventDescTimestamp := activityeventMixinFields0[2].Descriptor()
	// activityevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	activityevent.DefaultTimestamp = activityeventDescTimestamp.Default.(func() time.Time)
	// activityeventDescKind is the schema descriptor for kind field.
	activityeventDescKind := activityeventFields[0].Descriptor()
	// activityevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	activityevent.KindValidator = activityeventDescKind.Validators[0].(func(string) error)
	// activityeventDescValue is the schema descriptor for value field.
	activityeventDescValue := activityeventFields[1].Descriptor()
	// activityevent.DefaultValue holds the default value on creation for the value field.
	activityevent.DefaultValue = activityeventDescValue.Default.(int)
	lessoneventMixin := schema.LessonEvent{}.Mixin()
	lessoneventMixinFields0 := lessoneventMixin[0].Fields()
	_ = lessoneventMixinFields0
	lessoneventFields := schema.LessonEvent{}.Fields()
	_ = lessoneventFields
	// lessoneventDescUserID is the schema descriptor for user_id field.
	lessoneventDescUserID := lessoneventMixinFields0[1].Descriptor()
	// lessonevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	lessonevent.UserIDValidator = lessoneventDescUserID.Validators[0].(func(string) error)
	// lessoneventDescTimestamp is the schema descriptor for timestamp field.
	lessoneventDescTimestamp := lessoneventMixinFields0[2].Descriptor()
	// lessonevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lessonevent.DefaultTimestamp = lessoneventDescTimestamp.Default.(func() time.Time)
	// lessoneventDescLessonID is the schema descriptor for lesson_id field.
	lessoneventDescLessonID := lessoneventFields[0].Descriptor()
	// lessonevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lessonevent.LessonIDValidator = lessoneventDescLessonID.Validators[0].(func(string) error)
	// lessoneventDescCourseID is the schema descriptor for course_id field.
	lessoneventDescCourseID := lessoneventFields[1].Descriptor()
	// lessonevent.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	lessonevent.CourseIDValidator = lessoneventDescCourseID.Validators[0].(func(string) error)
	// lessoneventDescAction is the schema descriptor for action field.
	lessoneventDescAction := lessoneventFields[2].Descriptor()
	// lessonevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	lessonevent.ActionValidator = lessoneventDescAction.Validators[0].(func(string) error)
	// lessoneventDescAward is the schema descriptor for award field.
	lessoneventDescAward := lessoneventFields[5].Descriptor()
	// lessonevent.DefaultAward holds the default value on creation for the award field.
	lessonevent.DefaultAward = lessoneventDescAward.Default.(int)
	quizeventMixin := schema.QuizEvent{}.Mixin()
	quizeventMixinFields0 := quizeventMixin[0].Fields()
	_ = quizeventMixinFields0
	quizeventFields := schema.QuizEvent{}.Fields()
	_ = quizeventFields
	// quizeventDescUserID is the schema descriptor for user_id field.
	quizeventDescUserID := quizeventMixinFields0[1].Descriptor()
	// quizevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	quizevent.UserIDValidator = quizeventDescUserID.Validators[0].(func(string) error)
	// quizeventDescTimestamp is the schema descriptor for timestamp field.
	quizeventDescTimestamp := quizeventMixinFields0[2].Descriptor()
	// quizevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizevent.DefaultTimestamp = quizeventDescTimestamp.Default.(func() time.Time)
	// quizeventDescAttemptID is the schema descriptor for attempt_id field.
	quizeventDescAttemptID := quizeventFields[0].Descriptor()
	// quizevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	quizevent.AttemptIDValidator = quizeventDescAttemptID.Validators[0].(func(string) error)
	// quizeventDescQuizID is the schema descriptor for quiz_id field.
	quizeventDescQuizID := quizeventFields[1].Descriptor()
	// quizevent.QuizIDValidator is a validator for the "quiz_id" field. It is called by the builders before save.
	quizevent.QuizIDValidator = quizeventDescQuizID.Validators[0].(func(string) error)
	// quizeventDescKind is the schema descriptor for kind field.
	quizeventDescKind := quizeventFields[2].Descriptor()
	// quizevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	quizevent.KindValidator = quizeventDescKind.Validators[0].(func(string) error)
	// quizeventDescAward is the schema descriptor for award field.
	quizeventDescAward := quizeventFields[7].Descriptor()
	// quizevent.DefaultAward holds the default value on creation for the award field.
	quizevent.DefaultAward = quizeventDescAward.Default.(int)
	// quizeventDescElapsedMs is the schema descriptor for elapsed_ms field.
	quizeventDescElapsedMs := quizeventFields[8].Descriptor()
	// quizevent.DefaultElapsedMs holds the default value on creation for the elapsed_ms field.
	quizevent.DefaultElapsedMs = quizeventDescElapsedMs.Default.(int64)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescUserID is the schema descriptor for user_id field.
	snapshotDescUserID := snapshotFields[0].Descriptor()
	// snapshot.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	snapshot.UserIDValidator = snapshotDescUserID.Validators[0].(func(string) error)
	// snapshotDescSequence is the schema descriptor for sequence field.
	snapshotDescSequence := snapshotFields[1].Descriptor()
	// snapshot.SequenceValidator is a validator for the "sequence" field. It is called by the builders before save.
	snapshot.SequenceValidator = snapshotDescSequence.Validators[0].(func(int64) error)
	// snapshotDescVersion is the schema descriptor for version field.
	snapshotDescVersion := snapshotFields[2].Descriptor()
	// snapshot.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	snapshot.VersionValidator = snapshotDescVersion.Validators[0].(func(int) error)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[3].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	// snapshotDescData is the schema descriptor for data field.
	snapshotDescData := snapshotFields[4].Descriptor()
	// snapshot.DataValidator is a validator for the "data" field. It is called by the builders before save.
	snapshot.DataValidator = snapshotDescData.Validators[0].(func([]byte) error)
	xpeventMixin := schema.XPEvent{}.Mixin()
	xpeventMixinFields0 := xpeventMixin[0].Fields()
	_ = xpeventMixinFields0
	xpeventFields := schema.XPEvent{}.Fields()
	_ = xpeventFields
	// xpeventDescUserID is the schema descriptor for user_id field.
	xpeventDescUserID := xpeventMixinFields0[1].Descriptor()
	// xpevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	xpevent.UserIDValidator = xpeventDescUserID.Validators[0].(func(string) error)
	// xpeventDescTimestamp is the schema descriptor for timestamp field.
	xpeventDescTimestamp := xpeventMixinFields0[2].Descriptor()
	// xpevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	xpevent.DefaultTimestamp = xpeventDescTimestamp.Default.(func() time.Time)
	// xpeventDescSource is the schema descriptor for source field.
	xpeventDescSource := xpeventFields[0].Descriptor()
	// xpevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	xpevent.SourceValidator = xpeventDescSource.Validators[0].(func(string) error)
	// xpeventDescAmount is the schema descriptor for amount field.
	xpeventDescAmount := xpeventFields[2].Descriptor()
	// xpevent.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	xpevent.AmountValidator = xpeventDescAmount.Validators[0].(func(int) error)
	// xpeventDescTotalAfter is the schema descriptor for total_after field.
	xpeventDescTotalAfter := xpeventFields[3].Descriptor()
	// xpevent.TotalAfterValidator is a validator for the "total_after" field. It is called by the builders before save.
	xpevent.TotalAfterValidator = xpeventDescTotalAfter.Validators[0].(func(int) error)
	// xpeventDescLevelBefore is the schema descriptor for level_before field.
	xpeventDescLevelBefore := xpeventFields[4].Descriptor()
	// xpevent.LevelBeforeValidator is a validator for the "level_before" field. It is called by the builders before save.
	xpevent.LevelBeforeValidator = xpeventDescLevelBefore.Validators[0].(func(int) error)
	// xpeventDescLevelAfter is the schema descriptor for level_after field.
	xpeventDescLevelAfter := xpeventFields[5].Descriptor()
	// xpevent.LevelAfterValidator is a validator for the "level_after" field. It is called by the builders before save.
	xpevent.LevelAfterValidator = xpeventDescLevelAfter.Validators[0].(func(int) error)
}
