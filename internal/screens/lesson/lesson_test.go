package lesson

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/edusmart/internal/gamification"
	"github.com/abhisek/edusmart/internal/gamification/gamificationtest"
	"github.com/abhisek/edusmart/internal/router"
	"github.com/abhisek/edusmart/internal/screen"
	"github.com/abhisek/edusmart/internal/screens/quizplay"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func open(t *testing.T, e *gamification.Engine, id string, resume bool, speed float64) *LessonScreen {
	t.Helper()
	s := New(e, id, resume, speed)
	require.NotNil(t, s.Init(), "expected the tick to start")
	return s
}

func TestPlaybackTicksAndCompletes(t *testing.T) {
	e := gamificationtest.NewEngine(t)
	s := open(t, e, gamificationtest.LessonID, false, 30)

	s.Update(key('c'))
	assert.Equal(t, gamification.MsgWatchFirst, s.status)

	s.Update(tea.KeyPressMsg{Code: tea.KeySpace})
	require.True(t, s.state.IsPlaying)

	for i := 0; i < 4; i++ {
		_, cmd := s.Update(tickMsg{gen: s.gen})
		assert.NotNil(t, cmd)
	}
	assert.Equal(t, 120.0, s.state.WatchedSeconds)
	assert.False(t, s.state.IsPlaying, "playback stops at the end")
	assert.Equal(t, gamification.LessonEligible, e.LessonState(gamificationtest.LessonID))

	s.Update(key('c'))
	assert.True(t, strings.HasPrefix(s.status, "Lesson complete!"), s.status)
	assert.True(t, e.IsCompleted(gamificationtest.LessonID))

	s.Update(key('c'))
	assert.Equal(t, gamification.MsgAlreadyCompleted, s.status)
}

func TestPausedPlayerDoesNotAdvance(t *testing.T) {
	e := gamificationtest.NewEngine(t)
	s := open(t, e, gamificationtest.LessonID, false, 30)

	s.Update(tickMsg{gen: s.gen})
	assert.Zero(t, s.state.WatchedSeconds)
}

func TestSeekClampsToLesson(t *testing.T) {
	e := gamificationtest.NewEngine(t)
	s := open(t, e, gamificationtest.LessonID, false, 1)

	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	assert.Zero(t, s.state.WatchedSeconds)

	for i := 0; i < 15; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	}
	assert.Equal(t, 120.0, s.state.WatchedSeconds)

	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	assert.Equal(t, 110.0, s.state.WatchedSeconds)
	assert.Empty(t, s.status)
}

func TestLeaveRemembersCursor(t *testing.T) {
	e := gamificationtest.NewEngine(t)
	s := open(t, e, gamificationtest.LessonID, false, 1)
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	s.Update(tea.KeyPressMsg{Code: tea.KeySpace})
	s.Leave()

	assert.False(t, e.Playback().IsPlaying)
	_, cmd := s.Update(tickMsg{gen: s.gen})
	assert.Nil(t, cmd, "ticks stop after leaving")

	again := open(t, e, gamificationtest.LessonID, true, 1)
	assert.Equal(t, SeekStep, again.state.WatchedSeconds)

	restart := open(t, e, gamificationtest.LessonID, false, 1)
	assert.Zero(t, restart.state.WatchedSeconds)
}

func TestResumedRestartsTicking(t *testing.T) {
	e := gamificationtest.NewEngine(t)
	s := open(t, e, gamificationtest.LessonID, false, 1)
	stale := s.gen

	_, cmd := s.Update(screen.ResumedMsg{})
	require.NotNil(t, cmd)

	_, cmd = s.Update(tickMsg{gen: stale})
	assert.Nil(t, cmd, "ticks from the old chain are dropped")
}

func TestOpenQuizPausesPlayback(t *testing.T) {
	e := gamificationtest.NewEngine(t)
	s := open(t, e, gamificationtest.LessonID, false, 1)
	s.Update(tea.KeyPressMsg{Code: tea.KeySpace})

	_, cmd := s.Update(key('4'))
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	_, ok = msg.Screen.(*quizplay.QuizScreen)
	assert.True(t, ok)
	assert.False(t, e.Playback().IsPlaying)

	_, cmd = s.Update(key('9'))
	assert.Nil(t, cmd, "no ninth quiz")
}

func TestUnknownLesson(t *testing.T) {
	e := gamificationtest.NewEngine(t)
	s := New(e, "missing", false, 1)
	assert.Nil(t, s.Init())
	assert.Contains(t, s.View(100, 30), "unknown lesson")

	_, cmd := s.Update(key('c'))
	assert.Nil(t, cmd)
	s.Leave()
}

func TestView(t *testing.T) {
	e := gamificationtest.NewEngine(t)
	s := open(t, e, gamificationtest.LessonID, false, 1)
	view := s.View(100, 40)
	for _, want := range []string{"Hello, Go", "0:00 / 2:00", "KEY POINTS", "Packages", "[4] Timed Quiz"} {
		assert.Contains(t, view, want)
	}
}
