package gamification

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/edusmart/internal/apperr"
	"github.com/abhisek/edusmart/internal/content"
	"github.com/abhisek/edusmart/internal/logger"
	"github.com/abhisek/edusmart/internal/progress"
	"github.com/abhisek/edusmart/internal/quiz"
	"github.com/abhisek/edusmart/internal/store"
)

const catalogTemplate = `{
  "version": "1.0.0",
  "courses": [
    {"id": "c1", "title": "Course One", "lessons": [
      {"id": "l-600", "title": "Ten minutes", "duration_seconds": 600, "xp_reward": 50, "quizzes": [
        {"type": "multiple_choice", "id": "q-mc", "question": "Pick b", "options": ["a", "b", "c"], "correct_answer": 1, "xp_reward": 20},
        {"type": "timed", "id": "q-timed", "title": "Sprint", "passing_score": 70, "time_limit_seconds": 60, "xp_reward": 40, "questions": [
          {"text": "1", "options": ["x", "y"], "correct_answer": 0},
          {"text": "2", "options": ["x", "y"], "correct_answer": 0},
          {"text": "3", "options": ["x", "y"], "correct_answer": 0},
          {"text": "4", "options": ["x", "y"], "correct_answer": 0},
          {"text": "5", "options": ["x", "y"], "correct_answer": 0}
        ]}
      ]},
      {"id": "l-big", "title": "Big reward", "duration_seconds": 300, "xp_reward": 120}
    ]},
    {"id": "c2", "title": "Course Two", "lessons": [
      {"id": "l-short", "title": "Short", "duration_seconds": 60, "xp_reward": 10}
    ]}
  ],
  "achievements": [%s]
}`

func achievementJSON(id, predicate string, reward int) string {
	return fmt.Sprintf(`{"id": %q, "name": %q, "rarity": "rare", "category": "milestone", "xp_reward": %d, "predicate": %q}`,
		id, id, reward, predicate)
}

type fakeClock struct{ t time.Time }

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func testCatalog(t *testing.T, achievements ...string) *content.Catalog {
	t.Helper()
	list := ""
	for i, a := range achievements {
		if i > 0 {
			list += ","
		}
		list += a
	}
	cat, err := content.Load([]byte(fmt.Sprintf(catalogTemplate, list)))
	require.NoError(t, err)
	return cat
}

func newEngine(t *testing.T, cat *content.Catalog, opts ...Option) *Engine {
	t.Helper()
	e, err := New(progress.NewStore(nil), cat, opts...)
	require.NoError(t, err)
	return e
}

// watch opens lesson id and moves the cursor to watched seconds.
func watch(t *testing.T, e *Engine, id string, watched float64) {
	t.Helper()
	require.NoError(t, e.StartLesson(context.Background(), id))
	require.NoError(t, e.Seek(watched))
}

func eventKinds(out Outcome) []EventKind {
	kinds := make([]EventKind, len(out.Events))
	for i, ev := range out.Events {
		kinds[i] = ev.Kind
	}
	return kinds
}

func TestNew_Validation(t *testing.T) {
	cat := testCatalog(t)
	_, err := New(nil, cat)
	assert.Error(t, err)
	_, err = New(progress.NewStore(nil), nil)
	assert.Error(t, err)

	bad := testCatalog(t, achievementJSON("broken", "mystery >= 1", 0))
	_, err = New(progress.NewStore(nil), bad)
	assert.Error(t, err)
}

func TestCompleteLesson_AwardsOnce(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, testCatalog(t))
	watch(t, e, "l-600", 600)

	out, err := e.CompleteLesson(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, out.XPAwarded)
	assert.Equal(t, 50, out.Progress.TotalXP)
	assert.Equal(t, []EventKind{EventLessonCompleted}, eventKinds(out))
	assert.Equal(t, LessonCompleted, e.LessonState("l-600"))

	again, err := e.CompleteLesson(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrInvalidStateTransition))
	assert.Equal(t, 0, again.XPAwarded)
	assert.Equal(t, []string{MsgAlreadyCompleted}, again.Notices())
	assert.Equal(t, 50, e.Progress().TotalXP)

	// Rewatching does not reopen the lesson.
	watch(t, e, "l-600", 600)
	_, err = e.CompleteLesson(ctx)
	assert.True(t, errors.Is(err, apperr.ErrInvalidStateTransition))
	assert.Equal(t, 50, e.Progress().TotalXP)
	assert.Equal(t, 1, e.Activity().LessonsCompleted)
}

func TestCompleteLesson_CompletionThreshold(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, testCatalog(t))
	require.NoError(t, e.StartLesson(ctx, "l-600"))
	assert.Equal(t, LessonInProgress, e.LessonState("l-600"))

	e.Play()
	_, err := e.Tick(593)
	require.NoError(t, err)

	out, err := e.CompleteLesson(ctx)
	require.Error(t, err)
	assert.Equal(t, MsgWatchFirst, apperr.Message(err))
	assert.Equal(t, []string{MsgWatchFirst}, out.Notices())
	assert.Equal(t, 0, e.Progress().TotalXP)
	assert.Equal(t, LessonInProgress, e.LessonState("l-600"))

	_, err = e.Tick(1)
	require.NoError(t, err)
	assert.Equal(t, LessonEligible, e.LessonState("l-600"))

	out, err = e.CompleteLesson(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, out.XPAwarded)
	assert.False(t, e.Playback().IsPlaying)
}

func TestCompleteLesson_NoLesson(t *testing.T) {
	e := newEngine(t, testCatalog(t))
	_, err := e.CompleteLesson(context.Background())
	assert.True(t, errors.Is(err, apperr.ErrInvalidArgument))
}

func TestStartLesson_Unknown(t *testing.T) {
	e := newEngine(t, testCatalog(t))
	err := e.StartLesson(context.Background(), "nope")
	assert.True(t, errors.Is(err, apperr.ErrInvalidArgument))
	assert.Equal(t, LessonNotStarted, e.LessonState("nope"))
}

func TestStartLesson_SwitchResetsAndResumeRestores(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, testCatalog(t))
	watch(t, e, "l-600", 120)

	require.NoError(t, e.StartLesson(ctx, "l-big"))
	assert.Equal(t, 0.0, e.Playback().WatchedSeconds)
	assert.Equal(t, "l-big", e.Playback().LessonID)

	require.NoError(t, e.ResumeLesson(ctx, "l-600"))
	assert.Equal(t, 120.0, e.Playback().WatchedSeconds)

	require.NoError(t, e.StartLesson(ctx, "l-600"))
	assert.Equal(t, 0.0, e.Playback().WatchedSeconds)
}

func TestLevelUpCarriesRemainder(t *testing.T) {
	e := newEngine(t, testCatalog(t))
	watch(t, e, "l-big", 300)

	out, err := e.CompleteLesson(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, out.LevelUps)
	assert.True(t, out.LeveledUp())
	assert.Equal(t, 2, out.Progress.Level)
	assert.Equal(t, 20, out.Progress.LevelXP)
	assert.Equal(t, 80, out.Progress.XPToNextLevel)
	assert.Equal(t, []EventKind{EventLessonCompleted, EventLeveledUp}, eventKinds(out))
	assert.Equal(t, 2, out.Events[1].Level)
}

func TestLevelAchievementUnlocksInSameCall(t *testing.T) {
	e := newEngine(t, testCatalog(t, achievementJSON("rising-star", "level >= 5", 30)))
	require.NoError(t, e.Restore(store.SnapshotData{
		Progress: &store.ProgressSnapshotData{TotalXP: 380, Level: 4, XPToNextLevel: 20},
	}))
	watch(t, e, "l-600", 600)

	out, err := e.CompleteLesson(context.Background())
	require.NoError(t, err)

	require.Len(t, out.Unlocked, 1)
	assert.Equal(t, "rising-star", out.Unlocked[0].ID)
	assert.Equal(t, 80, out.XPAwarded)
	assert.Equal(t, 460, out.Progress.TotalXP)
	assert.Equal(t, 5, out.Progress.Level)
	assert.Equal(t, 60, out.Progress.LevelXP)
	assert.Equal(t, []EventKind{EventLessonCompleted, EventLeveledUp, EventAchievementUnlocked}, eventKinds(out))
	assert.Equal(t, 5, out.Events[1].Level)
}

func TestAchievementCascadeReachesFixedPoint(t *testing.T) {
	e := newEngine(t, testCatalog(t,
		achievementJSON("level-two", "level >= 2", 10),
		achievementJSON("fifty", "total_xp >= 50", 60),
		achievementJSON("unreachable", "lessons_completed >= 99", 500),
	))
	watch(t, e, "l-600", 600)

	out, err := e.CompleteLesson(context.Background())
	require.NoError(t, err)

	ids := make([]string, len(out.Unlocked))
	for i, u := range out.Unlocked {
		ids[i] = u.ID
	}
	assert.Equal(t, []string{"fifty", "level-two"}, ids)
	assert.Equal(t, 120, out.XPAwarded)
	assert.Equal(t, 120, out.Progress.TotalXP)
	assert.Equal(t, 2, out.Progress.Level)

	// Nothing else qualifies: a second evaluation is a no-op.
	again, err := e.RecordInvite(context.Background())
	require.NoError(t, err)
	assert.Empty(t, again.Unlocked)
	assert.Equal(t, 0, again.XPAwarded)
}

func TestSubmitQuiz_Lifecycle(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, testCatalog(t, achievementJSON("quiz-master", "perfect_quizzes >= 1", 50)))

	a, err := e.StartQuiz("q-mc")
	require.NoError(t, err)

	out, err := e.SubmitQuiz(ctx, a, quiz.Choice{Selected: quiz.NoSelection})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrIncompleteSubmission))
	assert.Len(t, out.Notices(), 1)
	assert.Equal(t, quiz.NotSubmitted, a.State())
	assert.Equal(t, 0, e.Progress().TotalXP)

	out, err = e.SubmitQuiz(ctx, a, quiz.Choice{Selected: 1})
	require.NoError(t, err)
	assert.Equal(t, quiz.Graded, a.State())
	assert.Equal(t, 70, out.XPAwarded)
	assert.Equal(t, []EventKind{EventQuizGraded, EventAchievementUnlocked}, eventKinds(out))
	require.NotNil(t, out.Events[0].Result)
	assert.True(t, out.Events[0].Result.Passed)

	_, err = e.SubmitQuiz(ctx, a, quiz.Choice{Selected: 1})
	assert.True(t, errors.Is(err, apperr.ErrInvalidStateTransition))
	assert.Equal(t, 70, e.Progress().TotalXP)

	fresh, err := e.StartQuiz("q-mc")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID(), fresh.ID())
	assert.Equal(t, quiz.NotSubmitted, fresh.State())

	act := e.Activity()
	assert.Equal(t, 1, act.QuizzesPassed)
	assert.Equal(t, 1, act.PerfectQuizzes)
	assert.Equal(t, 1, act.HighScoreQuizzes)
}

func TestSubmitQuiz_Timed(t *testing.T) {
	tests := []struct {
		name       string
		answers    quiz.TimedAnswers
		wantScore  int
		wantPassed bool
		wantXP     int
	}{
		{"four of five", quiz.TimedAnswers{0: 0, 1: 0, 2: 0, 3: 0, 4: 1}, 80, true, 40},
		{"two of five", quiz.TimedAnswers{0: 0, 1: 0, 2: 1}, 40, false, 0},
		{"all right", quiz.TimedAnswers{0: 0, 1: 0, 2: 0, 3: 0, 4: 0}, 100, true, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changes := 0
			e := newEngine(t, testCatalog(t), WithSnapshotHook(func(store.SnapshotData) { changes++ }))
			a, err := e.StartQuiz("q-timed")
			require.NoError(t, err)

			out, err := e.SubmitQuiz(context.Background(), a, tt.answers)
			require.NoError(t, err)
			res, ok := a.Result()
			require.True(t, ok)
			assert.Equal(t, tt.wantScore, res.Score)
			assert.Equal(t, tt.wantPassed, res.Passed)
			assert.Equal(t, tt.wantXP, out.XPAwarded)
			assert.Equal(t, tt.wantXP, out.Events[0].XP)
			if tt.wantPassed {
				assert.Equal(t, 1, changes)
			} else {
				assert.Equal(t, 0, changes)
				assert.Equal(t, 0, e.Activity().QuizzesPassed)
			}
		})
	}
}

func TestStartQuiz_Unknown(t *testing.T) {
	e := newEngine(t, testCatalog(t))
	_, err := e.StartQuiz("nope")
	assert.True(t, errors.Is(err, apperr.ErrInvalidArgument))
	_, err = e.SubmitQuiz(context.Background(), nil, quiz.Choice{})
	assert.True(t, errors.Is(err, apperr.ErrInvalidArgument))
}

func TestActivityTriggers(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, testCatalog(t,
		achievementJSON("streaker", "streak >= 7", 70),
		achievementJSON("night-owl", "night_sessions >= 2", 40),
		achievementJSON("social", "invites >= 3", 30),
	))

	out, err := e.RecordStreak(ctx, 6)
	require.NoError(t, err)
	assert.Empty(t, out.Unlocked)

	out, err = e.RecordStreak(ctx, 7)
	require.NoError(t, err)
	require.Len(t, out.Unlocked, 1)
	assert.Equal(t, "streaker", out.Unlocked[0].ID)
	assert.Equal(t, 70, out.Progress.TotalXP)

	_, err = e.RecordStreak(ctx, 2)
	require.NoError(t, err)
	act := e.Activity()
	assert.Equal(t, 2, act.CurrentStreak)
	assert.Equal(t, 7, act.BestStreak)

	_, err = e.RecordStreak(ctx, -1)
	assert.True(t, errors.Is(err, apperr.ErrInvalidArgument))

	day := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	night := time.Date(2026, 3, 3, 1, 30, 0, 0, time.UTC)
	_, _ = e.RecordLogin(ctx, day)
	_, _ = e.RecordLogin(ctx, night)
	out, err = e.RecordLogin(ctx, night.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, out.Unlocked, 1)
	assert.Equal(t, "night-owl", out.Unlocked[0].ID)
	assert.Equal(t, 3, e.Activity().Logins)
	assert.Equal(t, 2, e.Activity().NightSessions)

	for range 2 {
		_, _ = e.RecordInvite(ctx)
	}
	out, err = e.RecordInvite(ctx)
	require.NoError(t, err)
	require.Len(t, out.Unlocked, 1)
	assert.Equal(t, "social", out.Unlocked[0].ID)
}

func TestIsNight(t *testing.T) {
	tests := []struct {
		hour int
		want bool
	}{
		{0, true},
		{4, true},
		{5, false},
		{13, false},
		{23, false},
	}
	for _, tt := range tests {
		at := time.Date(2026, 1, 1, tt.hour, 0, 0, 0, time.UTC)
		if got := IsNight(at); got != tt.want {
			t.Errorf("IsNight(%02d:00) = %v, want %v", tt.hour, got, tt.want)
		}
	}
}

func TestFastLessons(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	e := newEngine(t, testCatalog(t, achievementJSON("speed-learner", "fast_lessons >= 1", 25)),
		WithClock(clock.Now))

	watch(t, e, "l-600", 600)
	clock.Advance(15 * time.Minute)
	out, err := e.CompleteLesson(ctx)
	require.NoError(t, err)
	assert.Empty(t, out.Unlocked)

	watch(t, e, "l-short", 60)
	clock.Advance(2 * time.Minute)
	out, err = e.CompleteLesson(ctx)
	require.NoError(t, err)
	require.Len(t, out.Unlocked, 1)
	assert.Equal(t, "speed-learner", out.Unlocked[0].ID)
	assert.Equal(t, clock.Now(), out.Unlocked[0].UnlockedAt)
	assert.Equal(t, 1, e.Activity().FastLessons)
}

func TestCourseProgress(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, testCatalog(t, achievementJSON("finisher", "courses_completed >= 1", 15)))

	p, ok := e.CourseProgress("c1")
	require.True(t, ok)
	assert.Equal(t, CourseProgress{CourseID: "c1", Completed: 0, Total: 2}, p)

	watch(t, e, "l-600", 600)
	_, err := e.CompleteLesson(ctx)
	require.NoError(t, err)
	p, _ = e.CourseProgress("c1")
	assert.Equal(t, 50, p.Percent())
	assert.Equal(t, 0, e.Metrics().CoursesCompleted)

	watch(t, e, "l-big", 300)
	out, err := e.CompleteLesson(ctx)
	require.NoError(t, err)
	p, _ = e.CourseProgress("c1")
	assert.Equal(t, 100, p.Percent())
	assert.Equal(t, 1, e.Metrics().CoursesCompleted)
	require.Len(t, out.Unlocked, 1)
	assert.Equal(t, "finisher", out.Unlocked[0].ID)

	assert.Equal(t, 1, e.Metrics().CoursesStarted)
	_, ok = e.CourseProgress("nope")
	assert.False(t, ok)
}

func TestNotifierAndSnapshotHook(t *testing.T) {
	var got []EventKind
	var snaps []store.SnapshotData
	e := newEngine(t, testCatalog(t, achievementJSON("first-steps", "lessons_completed >= 1", 20)),
		WithUserID("alex"),
		WithNotifier(NotifierFunc(func(ev Event) { got = append(got, ev.Kind) })),
		WithSnapshotHook(func(s store.SnapshotData) { snaps = append(snaps, s) }),
	)

	watch(t, e, "l-600", 300)
	_, _ = e.CompleteLesson(context.Background())
	assert.Equal(t, []EventKind{EventNotice}, got)
	assert.Empty(t, snaps)

	require.NoError(t, e.Seek(600))
	_, err := e.CompleteLesson(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []EventKind{EventNotice, EventLessonCompleted, EventAchievementUnlocked}, got)
	require.Len(t, snaps, 1)
	assert.Equal(t, "alex", snaps[0].UserID)
	assert.Equal(t, 70, snaps[0].Progress.TotalXP)
	assert.Equal(t, []string{"l-600"}, snaps[0].Lessons.Completed)
	assert.Contains(t, snaps[0].Achievements.Unlocked, "first-steps")
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog(t, achievementJSON("first-steps", "lessons_completed >= 1", 20))
	e := newEngine(t, cat, WithUserID("alex"))

	watch(t, e, "l-600", 600)
	_, err := e.CompleteLesson(ctx)
	require.NoError(t, err)
	watch(t, e, "l-big", 100)
	e.SuspendLesson()
	_, err = e.RecordStreak(ctx, 3)
	require.NoError(t, err)

	snap := e.Snapshot()
	assert.Equal(t, store.SnapshotVersion, snap.Version)
	assert.Equal(t, map[string]float64{"l-big": 100}, snap.Lessons.Watched)

	restored := newEngine(t, cat)
	require.NoError(t, restored.Restore(snap))

	assert.Equal(t, "alex", restored.UserID())
	assert.Equal(t, e.Progress(), restored.Progress())
	assert.Equal(t, e.Activity(), restored.Activity())
	assert.Equal(t, []string{"l-600"}, restored.CompletedLessons())
	assert.Equal(t, LessonCompleted, restored.LessonState("l-600"))

	statuses := restored.Achievements()
	require.Len(t, statuses, 1)
	assert.True(t, statuses[0].Unlocked)

	require.NoError(t, restored.ResumeLesson(ctx, "l-big"))
	assert.Equal(t, 100.0, restored.Playback().WatchedSeconds)

	watch(t, restored, "l-600", 600)
	_, err = restored.CompleteLesson(ctx)
	assert.Equal(t, MsgAlreadyCompleted, apperr.Message(err))
	assert.Equal(t, e.Progress().TotalXP, restored.Progress().TotalXP)
}

func TestRestore_DropsUnknownAndRejectsInvalid(t *testing.T) {
	e := newEngine(t, testCatalog(t))
	require.NoError(t, e.Restore(store.SnapshotData{
		Lessons:  &store.LessonsSnapshotData{Completed: []string{"l-short", "retired-lesson"}},
		Activity: &store.ActivitySnapshotData{CoursesStarted: []string{"c2", "retired-course"}},
	}))
	assert.Equal(t, []string{"l-short"}, e.CompletedLessons())
	assert.Equal(t, []string{"c2"}, e.Activity().CoursesStarted)

	err := e.Restore(store.SnapshotData{Progress: &store.ProgressSnapshotData{Level: 0}})
	assert.True(t, errors.Is(err, apperr.ErrInvalidArgument))
	assert.Equal(t, []string{"l-short"}, e.CompletedLessons())
}

func TestResetSession(t *testing.T) {
	e := newEngine(t, testCatalog(t, achievementJSON("first-steps", "lessons_completed >= 1", 20)))
	watch(t, e, "l-big", 300)
	_, err := e.CompleteLesson(context.Background())
	require.NoError(t, err)
	require.Len(t, e.SessionUnlocks(), 1)

	e.ResetSession()
	st := e.Progress()
	assert.Equal(t, 0, st.TotalXP)
	assert.Equal(t, 1, st.Level)
	assert.Empty(t, e.SessionUnlocks())
	assert.True(t, e.IsCompleted("l-big"))
}

func TestPersistsEvents(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	repo := s.EventRepo()
	e := newEngine(t, testCatalog(t, achievementJSON("first-steps", "lessons_completed >= 1", 20)),
		WithUserID("alex"), WithEventRepo(repo))

	watch(t, e, "l-600", 600)
	_, err = e.CompleteLesson(ctx)
	require.NoError(t, err)

	a, err := e.StartQuiz("q-mc")
	require.NoError(t, err)
	_, err = e.SubmitQuiz(ctx, a, quiz.Choice{Selected: 0})
	require.NoError(t, err)

	days, err := repo.DailyXP(ctx, "alex", time.Time{}, time.Now().Add(time.Hour))
	require.NoError(t, err)
	total := 0
	for _, d := range days {
		total += d.XP
	}
	assert.Equal(t, 70, total)

	stats, err := repo.QuizStats(ctx, "alex")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Attempts)
	assert.Equal(t, 0, stats.Passed)

	unlocks, err := repo.QueryAchievementEvents(ctx, store.QueryOpts{UserID: "alex"})
	require.NoError(t, err)
	require.Len(t, unlocks, 1)
	assert.Equal(t, "first-steps", unlocks[0].AchievementID)
}

// failingRepo fails every append. Queries are not used by the engine.
type failingRepo struct {
	store.EventRepo
}

var errDown = errors.New("database is down")

func (failingRepo) AppendXPEvent(context.Context, store.XPEventData) error { return errDown }
func (failingRepo) AppendLessonEvent(context.Context, store.LessonEventData) error {
	return errDown
}
func (failingRepo) AppendQuizEvent(context.Context, store.QuizEventData) error { return errDown }
func (failingRepo) AppendAchievementEvent(context.Context, store.AchievementEventData) error {
	return errDown
}
func (failingRepo) AppendActivityEvent(context.Context, store.ActivityEventData) error {
	return errDown
}

func TestPersistFailureDoesNotFailOperation(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zapcore.WarnLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}
	e := newEngine(t, testCatalog(t, achievementJSON("first-steps", "lessons_completed >= 1", 20)),
		WithEventRepo(failingRepo{}), WithLogger(log))

	watch(t, e, "l-600", 600)
	out, err := e.CompleteLesson(ctx)
	require.NoError(t, err)
	assert.Equal(t, 70, out.XPAwarded)
	require.Len(t, out.Unlocked, 1)

	_, err = e.RecordLogin(ctx, time.Now())
	assert.NoError(t, err)

	unlockWarns := logs.FilterMessage("append achievement event").All()
	require.Len(t, unlockWarns, 1)
	fields := unlockWarns[0].ContextMap()
	assert.Equal(t, "first-steps", fields["achievement"])
	assert.Equal(t, "learner", fields["user"])
	assert.Equal(t, errDown.Error(), fields["error"])
	assert.NotZero(t, logs.FilterMessage("append xp event").Len())
	assert.NotZero(t, logs.FilterMessage("append lesson event").Len())
}
