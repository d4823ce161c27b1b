// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AchievementEvent is the predicate function for achievementevent builders.
type AchievementEvent func(*sql.Selector)

// ActivityEvent is the predicate function for activityevent builders.
type ActivityEvent func(*sql.Selector)

// LessonEvent is the predicate function for lessonevent builders.
type LessonEvent func(*sql.Selector)

// QuizEvent is the predicate function for quizevent builders.
type QuizEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// XPEvent is the predicate function for xpevent builders.
type XPEvent func(*sql.Selector)
