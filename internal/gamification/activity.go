package gamification

import (
	"context"
	"time"

	"github.com/abhisek/edusmart/internal/apperr"
	"github.com/abhisek/edusmart/internal/store"
)

// Activity kinds recorded in the event log.
const (
	ActivityLogin  = "login"
	ActivityStreak = "streak"
	ActivityInvite = "invite"
	ActivityReset  = "reset"
)

type activity struct {
	quizzesPassed    int
	perfectQuizzes   int
	highScoreQuizzes int
	logins           int
	currentStreak    int
	bestStreak       int
	nightSessions    int
	fastLessons      int
	invites          int
	coursesStarted   map[string]bool
}

func newActivity() activity {
	return activity{coursesStarted: make(map[string]bool)}
}

// IsNight reports whether t falls in the night-session window.
func IsNight(t time.Time) bool {
	h := t.Hour()
	return h >= NightStartHour && h < NightEndHour
}

// RecordLogin counts a study session that began at at.
func (e *Engine) RecordLogin(ctx context.Context, at time.Time) (Outcome, error) {
	e.mu.Lock()
	out, err := e.recordActivityLocked(ctx, ActivityLogin, 1, func() {
		e.activity.logins++
		if IsNight(at) {
			e.activity.nightSessions++
		}
	})
	e.mu.Unlock()

	e.dispatch(out)
	return out, err
}

// RecordStreak sets the current daily streak to days.
func (e *Engine) RecordStreak(ctx context.Context, days int) (Outcome, error) {
	if days < 0 {
		return Outcome{Progress: e.progress.State()}, apperr.InvalidArgument("gamification.RecordStreak", "streak must be non-negative, got %d", days)
	}
	e.mu.Lock()
	out, err := e.recordActivityLocked(ctx, ActivityStreak, days, func() {
		e.activity.currentStreak = days
		e.activity.bestStreak = max(e.activity.bestStreak, days)
	})
	e.mu.Unlock()

	e.dispatch(out)
	return out, err
}

// RecordInvite counts an invitation sent by the learner.
func (e *Engine) RecordInvite(ctx context.Context) (Outcome, error) {
	e.mu.Lock()
	out, err := e.recordActivityLocked(ctx, ActivityInvite, 1, func() {
		e.activity.invites++
	})
	e.mu.Unlock()

	e.dispatch(out)
	return out, err
}

func (e *Engine) recordActivityLocked(ctx context.Context, kind string, value int, apply func()) (out Outcome, err error) {
	defer e.finish(&out)

	apply()
	out.changed = true
	if e.eventRepo != nil {
		if err := e.eventRepo.AppendActivityEvent(ctx, store.ActivityEventData{
			UserID: e.userID,
			Kind:   kind,
			Value:  value,
		}); err != nil {
			e.log.Warn("append activity event", "kind", kind, "error", err)
		}
	}
	e.log.Debug("activity recorded", "kind", kind, "value", value)

	err = e.evaluateLocked(ctx, &out)
	return out, err
}

// Activity is a read-only view of the activity counters.
type Activity struct {
	LessonsCompleted int
	QuizzesPassed    int
	PerfectQuizzes   int
	HighScoreQuizzes int
	Logins           int
	CurrentStreak    int
	BestStreak       int
	NightSessions    int
	FastLessons      int
	Invites          int
	CoursesStarted   []string
}

// Activity returns the activity counters.
func (e *Engine) Activity() Activity {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.activityLocked()
}

func (e *Engine) activityLocked() Activity {
	return Activity{
		LessonsCompleted: len(e.completed),
		QuizzesPassed:    e.activity.quizzesPassed,
		PerfectQuizzes:   e.activity.perfectQuizzes,
		HighScoreQuizzes: e.activity.highScoreQuizzes,
		Logins:           e.activity.logins,
		CurrentStreak:    e.activity.currentStreak,
		BestStreak:       e.activity.bestStreak,
		NightSessions:    e.activity.nightSessions,
		FastLessons:      e.activity.fastLessons,
		Invites:          e.activity.invites,
		CoursesStarted:   sortedKeys(e.activity.coursesStarted),
	}
}
