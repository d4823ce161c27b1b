package activity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/edusmart/internal/gamification"
	"github.com/abhisek/edusmart/internal/gamification/gamificationtest"
	"github.com/abhisek/edusmart/internal/quiz"
	"github.com/abhisek/edusmart/internal/store"
)

func openRepo(t *testing.T) store.EventRepo {
	t.Helper()
	s, err := store.Open("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s.EventRepo()
}

func load(t *testing.T, s *ActivityScreen) {
	t.Helper()
	cmd := s.Init()
	require.NotNil(t, cmd)
	s.Update(cmd())
	require.True(t, s.loaded)
	require.Empty(t, s.errMsg)
}

func TestLoadsFromEventLog(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t)
	e := gamificationtest.NewEngine(t, gamification.WithUserID("sam"), gamification.WithEventRepo(repo))

	require.NoError(t, e.StartLesson(ctx, gamificationtest.OtherLessonID))
	require.NoError(t, e.Seek(60))
	_, err := e.CompleteLesson(ctx)
	require.NoError(t, err)

	a, err := e.StartQuiz(gamificationtest.QuizMC)
	require.NoError(t, err)
	_, err = e.SubmitQuiz(ctx, a, quiz.Choice{Selected: 1})
	require.NoError(t, err)

	s := New(e, repo)
	load(t, s)

	series := s.Series()
	require.Len(t, series, Days)
	// lesson 30 + first-steps 10 + quiz 20
	assert.Equal(t, 60, series[Days-1].XP)
	for _, d := range series[:Days-1] {
		assert.Zero(t, d.XP)
	}

	assert.Equal(t, 1, s.stats.Attempts)
	assert.Equal(t, 1, s.stats.Passed)
	require.Len(t, s.quizzes, 1)
	assert.Equal(t, gamificationtest.QuizMC, s.quizzes[0].QuizID)
	require.Len(t, s.unlocks, 1)
	assert.Equal(t, "first-steps", s.unlocks[0].AchievementID)

	view := s.View(120, 40)
	assert.Contains(t, view, "Attempts: 1")
	assert.Contains(t, view, "First Steps")
}

func TestEmptyLog(t *testing.T) {
	s := New(gamificationtest.NewEngine(t), openRepo(t))
	load(t, s)

	view := s.View(120, 40)
	assert.Contains(t, view, "No quizzes yet.")
	assert.Contains(t, view, "Nothing yet.")
}

func TestSeriesFillsGaps(t *testing.T) {
	now := time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC)
	s := New(gamificationtest.NewEngine(t), nil)
	s.now = func() time.Time { return now }
	s.daily = []store.DailyXPRecord{
		{Day: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), XP: 15},
		{Day: time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), XP: 40},
	}

	series := s.Series()
	require.Len(t, series, Days)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), series[0].Day)
	assert.Equal(t, 15, series[2].XP)
	assert.Equal(t, 40, series[6].XP)
	assert.Zero(t, series[3].XP)
}
