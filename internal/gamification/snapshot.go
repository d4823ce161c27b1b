package gamification

import (
	"fmt"
	"time"

	"github.com/abhisek/edusmart/internal/progress"
	"github.com/abhisek/edusmart/internal/store"
)

// Snapshot exports the learner state for persistence.
func (e *Engine) Snapshot() store.SnapshotData {
	e.mu.Lock()
	defer e.mu.Unlock()

	ps := e.progress.Snapshot()
	act := e.activityLocked()
	return store.SnapshotData{
		Version: store.SnapshotVersion,
		UserID:  e.userID,
		Progress: &store.ProgressSnapshotData{
			TotalXP:       ps.TotalXP,
			Level:         ps.Level,
			XPToNextLevel: ps.XPToNextLevel,
		},
		Lessons: &store.LessonsSnapshotData{
			Completed: sortedKeys(e.completed),
			Watched:   e.player.Positions(),
		},
		Achievements: e.achievements.SnapshotData(),
		Activity: &store.ActivitySnapshotData{
			LessonsCompleted: act.LessonsCompleted,
			QuizzesPassed:    act.QuizzesPassed,
			PerfectQuizzes:   act.PerfectQuizzes,
			HighScoreQuizzes: act.HighScoreQuizzes,
			Logins:           act.Logins,
			CurrentStreak:    act.CurrentStreak,
			BestStreak:       act.BestStreak,
			NightSessions:    act.NightSessions,
			FastLessons:      act.FastLessons,
			Invites:          act.Invites,
			CoursesStarted:   act.CoursesStarted,
		},
	}
}

// Restore replaces the learner state with data. Lessons and achievements no
// longer in the catalog are dropped. Restore does not emit events or run
// achievement evaluation.
func (e *Engine) Restore(data store.SnapshotData) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if data.Progress != nil {
		if err := e.progress.Restore(progress.Snapshot{
			TotalXP:       data.Progress.TotalXP,
			Level:         data.Progress.Level,
			XPToNextLevel: data.Progress.XPToNextLevel,
		}); err != nil {
			return fmt.Errorf("restore progress: %w", err)
		}
	}

	if data.UserID != "" {
		e.userID = data.UserID
	}

	e.completed = make(map[string]bool)
	e.started = make(map[string]time.Time)
	e.current = ""
	if data.Lessons != nil {
		for _, id := range data.Lessons.Completed {
			if _, ok := e.catalog.Lesson(id); ok {
				e.completed[id] = true
			}
		}
		e.player.RestorePositions(data.Lessons.Watched)
	}

	if data.Achievements != nil {
		e.achievements.Restore(data.Achievements.Unlocked)
	}

	e.activity = newActivity()
	if a := data.Activity; a != nil {
		e.activity.quizzesPassed = a.QuizzesPassed
		e.activity.perfectQuizzes = a.PerfectQuizzes
		e.activity.highScoreQuizzes = a.HighScoreQuizzes
		e.activity.logins = a.Logins
		e.activity.currentStreak = a.CurrentStreak
		e.activity.bestStreak = a.BestStreak
		e.activity.nightSessions = a.NightSessions
		e.activity.fastLessons = a.FastLessons
		e.activity.invites = a.Invites
		for _, id := range a.CoursesStarted {
			if _, ok := e.catalog.Course(id); ok {
				e.activity.coursesStarted[id] = true
			}
		}
	}

	e.log.Info("state restored", "restored_user", e.userID, "level", e.progress.State().Level, "completed", len(e.completed))
	return nil
}
