package quizplay

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/edusmart/internal/gamification"
	"github.com/abhisek/edusmart/internal/gamification/gamificationtest"
	"github.com/abhisek/edusmart/internal/quiz"
	"github.com/abhisek/edusmart/internal/router"
	"github.com/abhisek/edusmart/internal/screens/summary"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func start(t *testing.T, e *gamification.Engine, quizID string) *QuizScreen {
	t.Helper()
	attempt, err := e.StartQuiz(quizID)
	require.NoError(t, err)
	s := New(e, attempt)
	s.Init()
	return s
}

func requireSummary(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd, "expected a command after grading")
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok, "expected ReplaceScreenMsg")
	_, ok = msg.Screen.(*summary.SummaryScreen)
	assert.True(t, ok, "expected the summary screen")
}

func TestMultipleChoice(t *testing.T) {
	e := gamificationtest.NewEngine(t)
	s := start(t, e, gamificationtest.QuizMC)

	_, cmd := s.Update(key('b'))
	requireSummary(t, cmd)
	assert.Equal(t, 20, e.Progress().TotalXP)
	assert.True(t, s.choices[0].IsCorrect())

	_, cmd = s.Update(key('a'))
	assert.Nil(t, cmd, "graded screen ignores input")
}

func TestMultipleChoiceWrongAnswer(t *testing.T) {
	e := gamificationtest.NewEngine(t)
	s := start(t, e, gamificationtest.QuizMC)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	requireSummary(t, cmd)
	assert.Equal(t, 0, e.Progress().TotalXP)
}

func TestDragAndDrop(t *testing.T) {
	e := gamificationtest.NewEngine(t)
	s := start(t, e, gamificationtest.QuizDnD)

	_, cmd := s.Update(key('s'))
	assert.Nil(t, cmd)
	assert.Equal(t, "place an item in every zone first", s.status)

	s.Update(key('a'))
	assert.Equal(t, 1, s.current, "placing an item advances to the next zone")
	s.Update(key('b'))

	_, cmd = s.Update(key('s'))
	requireSummary(t, cmd)
	assert.Equal(t, 30, e.Progress().TotalXP)
}

func TestFillInBlanks(t *testing.T) {
	e := gamificationtest.NewEngine(t)
	s := start(t, e, gamificationtest.QuizBlanks)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "fill in every blank first", s.status)

	for _, r := range "VAR" {
		s.Update(key(r))
	}
	assert.Equal(t, "VAR", s.Answer().(quiz.BlankAnswers)["b1"])

	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	requireSummary(t, cmd)
	assert.Equal(t, 15, e.Progress().TotalXP)
}

func TestTimedAnswersEveryQuestion(t *testing.T) {
	e := gamificationtest.NewEngine(t)
	s := start(t, e, gamificationtest.QuizTimed)

	_, cmd := s.Update(key('a'))
	assert.Nil(t, cmd)
	assert.Equal(t, 1, s.current)

	_, cmd = s.Update(key('a'))
	requireSummary(t, cmd)
	assert.Equal(t, 40, e.Progress().TotalXP, "one of two correct meets the 50% pass mark")
}

func TestTimedAutoSubmitsOnExpiry(t *testing.T) {
	now := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	e := gamificationtest.NewEngine(t, gamification.WithClock(clock))
	s := start(t, e, gamificationtest.QuizTimed)
	s.now = clock

	assert.Equal(t, 30*time.Second, s.Remaining())

	_, cmd := s.Update(countdownMsg{at: now})
	require.NotNil(t, cmd, "countdown keeps ticking")
	assert.False(t, s.done)

	s.Update(key('b'))
	now = now.Add(31 * time.Second)
	assert.Equal(t, time.Duration(0), s.Remaining())

	_, cmd = s.Update(countdownMsg{at: now})
	requireSummary(t, cmd)
	assert.Equal(t, 0, e.Progress().TotalXP, "the only answer was wrong")
}

func TestCountdownStopsAfterLeave(t *testing.T) {
	e := gamificationtest.NewEngine(t)
	s := start(t, e, gamificationtest.QuizTimed)
	s.Leave()

	_, cmd := s.Update(countdownMsg{at: time.Now()})
	assert.Nil(t, cmd)
}

func TestTitle(t *testing.T) {
	e := gamificationtest.NewEngine(t)
	timed := start(t, e, gamificationtest.QuizTimed)
	assert.Equal(t, "Sprint", Title(timed.attempt.Quiz()))

	mc := start(t, e, gamificationtest.QuizMC)
	assert.Equal(t, "Multiple Choice", Title(mc.attempt.Quiz()))
}
