package courses

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/edusmart/internal/gamification"
	"github.com/abhisek/edusmart/internal/gamification/gamificationtest"
	"github.com/abhisek/edusmart/internal/router"
	"github.com/abhisek/edusmart/internal/screen"
	lessonscreen "github.com/abhisek/edusmart/internal/screens/lesson"
)

func TestCursorStartsOnFirstLesson(t *testing.T) {
	s := New(gamificationtest.NewEngine(t), 1)
	require.NotNil(t, s.Selected())
	assert.Equal(t, gamificationtest.LessonID, s.Selected().ID)
}

func TestCursorSkipsHeaders(t *testing.T) {
	s := New(gamificationtest.NewEngine(t), 1)

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, gamificationtest.LessonID, s.Selected().ID, "header above is not selectable")

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, gamificationtest.OtherLessonID, s.Selected().ID)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, gamificationtest.OtherLessonID, s.Selected().ID, "cursor stays on the last lesson")
}

func TestTabWithSingleCourseStays(t *testing.T) {
	s := New(gamificationtest.NewEngine(t), 1)
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, gamificationtest.LessonID, s.Selected().ID)
}

func TestEnterOpensLesson(t *testing.T) {
	s := New(gamificationtest.NewEngine(t), 1)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	_, ok = msg.Screen.(*lessonscreen.LessonScreen)
	assert.True(t, ok)
}

func TestRefreshOnResume(t *testing.T) {
	e := gamificationtest.NewEngine(t)
	s := New(e, 1)
	assert.Equal(t, gamification.LessonNotStarted, s.states[gamificationtest.LessonID])

	require.NoError(t, e.StartLesson(context.Background(), gamificationtest.LessonID))
	require.NoError(t, e.Seek(120))
	_, err := e.CompleteLesson(context.Background())
	require.NoError(t, err)

	s.Update(screen.ResumedMsg{})
	assert.Equal(t, gamification.LessonCompleted, s.states[gamificationtest.LessonID])
	assert.Equal(t, 1, s.progress[gamificationtest.CourseID].Completed)
	assert.Equal(t, 50, s.progress[gamificationtest.CourseID].Percent())
}

func TestView(t *testing.T) {
	s := New(gamificationtest.NewEngine(t), 1)
	view := s.View(120, 20)
	for _, want := range []string{"GO BASICS", "0/2 lessons", "Hello, Go", "Variables", "2:00", "not started"} {
		assert.Contains(t, view, want)
	}
}
