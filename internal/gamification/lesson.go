package gamification

import (
	"context"

	"github.com/abhisek/edusmart/internal/apperr"
	"github.com/abhisek/edusmart/internal/content"
	"github.com/abhisek/edusmart/internal/playback"
	"github.com/abhisek/edusmart/internal/store"
)

// User-facing rejection messages.
const (
	MsgWatchFirst       = "watch the full lesson first"
	MsgAlreadyCompleted = "lesson already completed"
)

// LessonState is the lifecycle of a lesson for the learner.
type LessonState int

const (
	LessonNotStarted LessonState = iota
	LessonInProgress
	LessonEligible
	LessonCompleted
)

func (s LessonState) String() string {
	switch s {
	case LessonNotStarted:
		return "not started"
	case LessonInProgress:
		return "in progress"
	case LessonEligible:
		return "ready to complete"
	case LessonCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// CourseProgress summarizes completed lessons in a course.
type CourseProgress struct {
	CourseID  string
	Completed int
	Total     int
}

// Percent returns Completed/Total as a whole percentage.
func (p CourseProgress) Percent() int {
	if p.Total == 0 {
		return 0
	}
	return p.Completed * 100 / p.Total
}

// StartLesson loads the lesson with id into the player with the cursor at 0.
// Any other lesson is suspended first.
func (e *Engine) StartLesson(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.openLessonLocked(ctx, id, false)
}

// ResumeLesson loads the lesson with id at the cursor saved when it was last
// suspended.
func (e *Engine) ResumeLesson(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.openLessonLocked(ctx, id, true)
}

func (e *Engine) openLessonLocked(ctx context.Context, id string, resume bool) error {
	const op = "gamification.StartLesson"
	l, ok := e.catalog.Lesson(id)
	if !ok {
		return apperr.InvalidArgument(op, "unknown lesson %q", id)
	}

	if e.current != "" && e.current != id {
		e.player.Suspend()
		if e.completed[e.current] {
			e.player.Forget(e.current)
		}
	}
	var err error
	if resume {
		err = e.player.Resume(l.Playback())
	} else {
		err = e.player.Load(l.Playback())
	}
	if err != nil {
		return err
	}

	e.current = id
	if _, ok := e.started[id]; !ok {
		e.started[id] = e.now()
		e.appendLessonEvent(ctx, l, "started", e.player.State(), 0)
	}
	e.activity.coursesStarted[l.CourseID] = true
	e.log.Debug("lesson opened", "lesson", id, "resume", resume)
	return nil
}

// SuspendLesson pauses the current lesson and remembers its cursor.
func (e *Engine) SuspendLesson() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.player.Suspend()
}

// CurrentLesson returns the lesson loaded in the player.
func (e *Engine) CurrentLesson() (*content.Lesson, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current == "" {
		return nil, false
	}
	return e.catalog.Lesson(e.current)
}

// Play starts playback of the current lesson.
func (e *Engine) Play() { e.player.Play() }

// Pause pauses playback of the current lesson.
func (e *Engine) Pause() { e.player.Pause() }

// TogglePlay flips between playing and paused.
func (e *Engine) TogglePlay() { e.player.Toggle() }

// Tick advances playback by delta seconds. It reports whether the lesson
// reached its end.
func (e *Engine) Tick(delta float64) (bool, error) {
	return e.player.Tick(delta)
}

// Seek moves the cursor of the current lesson.
func (e *Engine) Seek(target float64) error {
	return e.player.Seek(target)
}

// Playback returns the player state.
func (e *Engine) Playback() playback.State {
	return e.player.State()
}

// LessonState returns the lifecycle state of the lesson with id.
func (e *Engine) LessonState(id string) LessonState {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch {
	case e.completed[id]:
		return LessonCompleted
	case e.current == id && e.player.Eligible():
		return LessonEligible
	case !e.started[id].IsZero():
		return LessonInProgress
	default:
		return LessonNotStarted
	}
}

// IsCompleted reports whether the lesson with id has been completed.
func (e *Engine) IsCompleted(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.completed[id]
}

// CompletedLessons returns completed lesson ids in sorted order.
func (e *Engine) CompletedLessons() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return sortedKeys(e.completed)
}

// CourseProgress reports how many lessons of the course with id are done.
func (e *Engine) CourseProgress(id string) (CourseProgress, bool) {
	c, ok := e.catalog.Course(id)
	if !ok {
		return CourseProgress{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	p := CourseProgress{CourseID: id, Total: len(c.Lessons)}
	for _, l := range c.Lessons {
		if e.completed[l.ID] {
			p.Completed++
		}
	}
	return p, true
}

// CompleteLesson marks the current lesson completed and awards its XP. The
// lesson must have been watched past the completion threshold. Completing a
// lesson again awards nothing and fails with a notice.
func (e *Engine) CompleteLesson(ctx context.Context) (Outcome, error) {
	e.mu.Lock()
	out, err := e.completeLessonLocked(ctx)
	e.mu.Unlock()

	e.dispatch(out)
	return out, err
}

func (e *Engine) completeLessonLocked(ctx context.Context) (out Outcome, err error) {
	const op = "gamification.CompleteLesson"
	defer e.finish(&out)

	if e.current == "" {
		return out, apperr.InvalidArgument(op, "no lesson loaded")
	}
	l, _ := e.catalog.Lesson(e.current)
	st := e.player.State()
	now := e.now()

	if e.completed[l.ID] {
		out.add(Event{Kind: EventNotice, At: now, LessonID: l.ID, Message: MsgAlreadyCompleted})
		e.appendLessonEvent(ctx, l, "duplicate", st, 0)
		e.log.Debug("duplicate completion ignored", "lesson", l.ID)
		return out, apperr.InvalidStateTransition(op, MsgAlreadyCompleted)
	}
	if !e.player.Eligible() {
		out.add(Event{Kind: EventNotice, At: now, LessonID: l.ID, Message: MsgWatchFirst})
		e.log.Debug("completion rejected", "lesson", l.ID, "watched", st.WatchedSeconds, "duration", st.DurationSeconds)
		return out, apperr.InvalidStateTransition(op, MsgWatchFirst)
	}

	out.add(Event{Kind: EventLessonCompleted, At: now, LessonID: l.ID, XP: l.XPReward})
	if err = e.awardLocked(ctx, &out, l.XPReward, SourceLesson, l.ID); err != nil {
		return Outcome{}, err
	}

	e.completed[l.ID] = true
	e.player.Pause()
	e.player.Forget(l.ID)
	if started, ok := e.started[l.ID]; ok && now.Sub(started) < FastLessonWindow {
		e.activity.fastLessons++
	}
	e.appendLessonEvent(ctx, l, "completed", st, l.XPReward)
	e.log.Info("lesson completed", "lesson", l.ID, "xp", l.XPReward)

	out.changed = true
	err = e.evaluateLocked(ctx, &out)
	return out, err
}

func (e *Engine) appendLessonEvent(ctx context.Context, l *content.Lesson, action string, st playback.State, award int) {
	if e.eventRepo == nil {
		return
	}
	if err := e.eventRepo.AppendLessonEvent(ctx, store.LessonEventData{
		UserID:          e.userID,
		LessonID:        l.ID,
		CourseID:        l.CourseID,
		Action:          action,
		WatchedSeconds:  st.WatchedSeconds,
		DurationSeconds: l.DurationSeconds,
		Award:           award,
	}); err != nil {
		e.log.Warn("append lesson event", "lesson", l.ID, "action", action, "error", err)
	}
}
