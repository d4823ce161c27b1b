package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	UserID string    // only events for this learner ("" = all)
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotVersion is the current SnapshotData layout.
const SnapshotVersion = 1

// SnapshotData captures the full learner state at a point in time.
type SnapshotData struct {
	Version      int                       `json:"version"`
	UserID       string                    `json:"user_id,omitempty"`
	Progress     *ProgressSnapshotData     `json:"progress,omitempty"`
	Lessons      *LessonsSnapshotData      `json:"lessons,omitempty"`
	Achievements *AchievementsSnapshotData `json:"achievements,omitempty"`
	Activity     *ActivitySnapshotData     `json:"activity,omitempty"`
}

// ProgressSnapshotData is the persisted XP and level.
type ProgressSnapshotData struct {
	TotalXP       int `json:"total_xp"`
	Level         int `json:"level"`
	XPToNextLevel int `json:"xp_to_next_level"`
}

// LessonsSnapshotData is the persisted lesson state.
type LessonsSnapshotData struct {
	Completed []string           `json:"completed"`
	Watched   map[string]float64 `json:"watched,omitempty"`
}

// AchievementsSnapshotData maps unlocked achievement ids to unlock time.
type AchievementsSnapshotData struct {
	Unlocked map[string]time.Time `json:"unlocked"`
}

// ActivitySnapshotData is the persisted activity counters.
type ActivitySnapshotData struct {
	LessonsCompleted int      `json:"lessons_completed"`
	QuizzesPassed    int      `json:"quizzes_passed"`
	PerfectQuizzes   int      `json:"perfect_quizzes"`
	HighScoreQuizzes int      `json:"high_score_quizzes"`
	Logins           int      `json:"logins"`
	CurrentStreak    int      `json:"current_streak"`
	BestStreak       int      `json:"best_streak"`
	NightSessions    int      `json:"night_sessions"`
	FastLessons      int      `json:"fast_lessons"`
	Invites          int      `json:"invites"`
	CoursesStarted   []string `json:"courses_started,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot for snap.Data.UserID.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the learner's most recent snapshot, or nil if none exist.
	Latest(ctx context.Context, userID string) (*Snapshot, error)

	// Prune deletes all but the learner's N most recent snapshots.
	Prune(ctx context.Context, userID string, keep int) error
}

// EventRepo provides append and query access to learner events.
type EventRepo interface {
	// AppendXPEvent records an XP award.
	AppendXPEvent(ctx context.Context, data XPEventData) error

	// AppendLessonEvent records a lesson completion attempt.
	AppendLessonEvent(ctx context.Context, data LessonEventData) error

	// AppendQuizEvent records a graded quiz attempt.
	AppendQuizEvent(ctx context.Context, data QuizEventData) error

	// AppendAchievementEvent records an achievement unlock.
	AppendAchievementEvent(ctx context.Context, data AchievementEventData) error

	// AppendActivityEvent records a login, streak or reset trigger.
	AppendActivityEvent(ctx context.Context, data ActivityEventData) error

	// QueryAchievementEvents returns unlocks, newest first.
	QueryAchievementEvents(ctx context.Context, opts QueryOpts) ([]AchievementEventRecord, error)

	// AchievementCounts returns unlock counts by rarity and the total.
	AchievementCounts(ctx context.Context, userID string) (map[string]int, int, error)

	// QueryQuizEvents returns graded attempts, newest first.
	QueryQuizEvents(ctx context.Context, opts QueryOpts) ([]QuizEventRecord, error)

	// QuizStats aggregates graded attempts for a learner.
	QuizStats(ctx context.Context, userID string) (QuizStats, error)

	// DailyXP sums XP per calendar day (UTC) in [from, to].
	DailyXP(ctx context.Context, userID string, from, to time.Time) ([]DailyXPRecord, error)
}
