// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AchievementEventsColumns holds the columns for the "achievement_events" table.
	AchievementEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "achievement_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "rarity", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "reward", Type: field.TypeInt},
	}
	// AchievementEventsTable holds the schema information for the "achievement_events" table.
	AchievementEventsTable = &schema.Table{
		Name:       "achievement_events",
		Columns:    AchievementEventsColumns,
		PrimaryKey: []*schema.Column{AchievementEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "achievementevent_user_id_sequence",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[2], AchievementEventsColumns[1]},
			},
			{
				Name:    "achievementevent_user_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[2], AchievementEventsColumns[3]},
			},
			{
				Name:    "achievementevent_user_id_achievement_id",
				Unique:  true,
				Columns: []*schema.Column{AchievementEventsColumns[2], AchievementEventsColumns[4]},
			},
			{
				Name:    "achievementevent_rarity",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[6]},
			},
		},
	}
	// ActivityEventsColumns holds the columns for the "activity_events" table.
	ActivityEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "kind", Type: field.TypeString},
		{Name: "value", Type: field.TypeInt, Default: 0},
	}
	// ActivityEventsTable holds the schema information for the "activity_events" table.
	ActivityEventsTable = &schema.Table{
		Name:       "activity_events",
		Columns:    ActivityEventsColumns,
		PrimaryKey: []*schema.Column{ActivityEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activityevent_user_id_sequence",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[2], ActivityEventsColumns[1]},
			},
			{
				Name:    "activityevent_user_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[2], ActivityEventsColumns[3]},
			},
			{
				Name:    "activityevent_kind",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[4]},
			},
		},
	}
	// LessonEventsColumns holds the columns for the "lesson_events" table.
	LessonEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "course_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "watched_seconds", Type: field.TypeFloat64},
		{Name: "duration_seconds", Type: field.TypeFloat64},
		{Name: "award", Type: field.TypeInt, Default: 0},
	}
	// LessonEventsTable holds the schema information for the "lesson_events" table.
	LessonEventsTable = &schema.Table{
		Name:       "lesson_events",
		Columns:    LessonEventsColumns,
		PrimaryKey: []*schema.Column{LessonEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonevent_user_id_sequence",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[2], LessonEventsColumns[1]},
			},
			{
				Name:    "lessonevent_user_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[2], LessonEventsColumns[3]},
			},
			{
				Name:    "lessonevent_user_id_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[2], LessonEventsColumns[4]},
			},
			{
				Name:    "lessonevent_action",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[6]},
			},
		},
	}
	// QuizEventsColumns holds the columns for the "quiz_events" table.
	QuizEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "quiz_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "correct_count", Type: field.TypeInt},
		{Name: "total", Type: field.TypeInt},
		{Name: "score", Type: field.TypeInt},
		{Name: "passed", Type: field.TypeBool},
		{Name: "award", Type: field.TypeInt, Default: 0},
		{Name: "elapsed_ms", Type: field.TypeInt64, Default: 0},
	}
	// QuizEventsTable holds the schema information for the "quiz_events" table.
	QuizEventsTable = &schema.Table{
		Name:       "quiz_events",
		Columns:    QuizEventsColumns,
		PrimaryKey: []*schema.Column{QuizEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizevent_user_id_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[2], QuizEventsColumns[1]},
			},
			{
				Name:    "quizevent_user_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[2], QuizEventsColumns[3]},
			},
			{
				Name:    "quizevent_quiz_id",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[5]},
			},
			{
				Name:    "quizevent_kind",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[6]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "version", Type: field.TypeInt},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeBytes},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_user_id_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1], SnapshotsColumns[2]},
			},
		},
	}
	// XpEventsColumns holds the columns for the "xp_events" table.
	XpEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "source", Type: field.TypeString},
		{Name: "source_id", Type: field.TypeString},
		{Name: "amount", Type: field.TypeInt},
		{Name: "total_after", Type: field.TypeInt},
		{Name: "level_before", Type: field.TypeInt},
		{Name: "level_after", Type: field.TypeInt},
	}
	// XpEventsTable holds the schema information for the "xp_events" table.
	XpEventsTable = &schema.Table{
		Name:       "xp_events",
		Columns:    XpEventsColumns,
		PrimaryKey: []*schema.Column{XpEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "xpevent_user_id_sequence",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[2], XpEventsColumns[1]},
			},
			{
				Name:    "xpevent_user_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[2], XpEventsColumns[3]},
			},
			{
				Name:    "xpevent_source",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AchievementEventsTable,
		ActivityEventsTable,
		LessonEventsTable,
		QuizEventsTable,
		SnapshotsTable,
		XpEventsTable,
	}
)

func init() {
	XpEventsTable.Annotation = &entsql.Annotation{
		Table: "xp_events",
	}
}
