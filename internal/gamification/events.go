package gamification

import (
	"time"

	"github.com/abhisek/edusmart/internal/achievements"
	"github.com/abhisek/edusmart/internal/progress"
	"github.com/abhisek/edusmart/internal/quiz"
)

// EventKind identifies a notification emitted by the engine.
type EventKind string

const (
	EventLessonCompleted     EventKind = "lesson_completed"
	EventQuizGraded          EventKind = "quiz_graded"
	EventLeveledUp           EventKind = "leveled_up"
	EventAchievementUnlocked EventKind = "achievement_unlocked"
	EventNotice              EventKind = "notice"
)

// Event is a single notification. Only the fields relevant to Kind are set.
type Event struct {
	Kind        EventKind
	At          time.Time
	LessonID    string
	XP          int
	Level       int
	Result      *quiz.Result
	Achievement *achievements.Unlock
	Message     string
}

// Notifier receives engine events in the order they happened.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Event)

func (f NotifierFunc) Notify(e Event) { f(e) }

// Outcome is everything a single engine operation caused.
type Outcome struct {
	XPAwarded int
	LevelUps  int
	Unlocked  []achievements.Unlock
	Events    []Event
	Progress  progress.State

	changed bool
}

// LeveledUp reports whether the operation crossed at least one level.
func (o Outcome) LeveledUp() bool { return o.LevelUps > 0 }

// Notices returns the messages of notice events.
func (o Outcome) Notices() []string {
	var out []string
	for _, e := range o.Events {
		if e.Kind == EventNotice {
			out = append(out, e.Message)
		}
	}
	return out
}

func (o *Outcome) add(e Event) {
	o.Events = append(o.Events, e)
}
