package summary

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/edusmart/internal/achievements"
	"github.com/abhisek/edusmart/internal/gamification"
	"github.com/abhisek/edusmart/internal/progress"
	"github.com/abhisek/edusmart/internal/quiz"
	"github.com/abhisek/edusmart/internal/router"
	"github.com/abhisek/edusmart/internal/screen"
)

func passedSprint() *QuizSummary {
	return &QuizSummary{
		QuizTitle: "Closures Sprint",
		Elapsed:   95 * time.Second,
		Result: quiz.Result{
			QuizID:       "q-timed",
			Kind:         quiz.KindTimed,
			CorrectCount: 4,
			Total:        5,
			Score:        80,
			Passed:       true,
			XPReward:     40,
		},
		Outcome: gamification.Outcome{
			XPAwarded: 90,
			LevelUps:  1,
			Progress:  progress.State{Level: 2},
			Unlocked: []achievements.Unlock{{
				Achievement: achievements.Achievement{
					ID:       "quiz-master",
					Name:     "Quiz Master",
					Rarity:   achievements.RarityRare,
					XPReward: 50,
				},
			}},
		},
	}
}

type retryScreen struct{}

func (r *retryScreen) Init() tea.Cmd                          { return nil }
func (r *retryScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return r, nil }
func (r *retryScreen) View(int, int) string                   { return "quiz" }
func (r *retryScreen) Title() string                          { return "Quiz" }

func press(s *SummaryScreen, key tea.KeyPressMsg) tea.Msg {
	_, cmd := s.Update(key)
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestStars(t *testing.T) {
	tests := []struct {
		score  int
		passed bool
		want   int
	}{
		{100, true, 3},
		{90, true, 3},
		{80, true, 2},
		{60, true, 1},
		{40, false, 0},
	}
	for _, tt := range tests {
		sum := &QuizSummary{Result: quiz.Result{Score: tt.score, Passed: tt.passed}}
		assert.Equal(t, tt.want, sum.Stars(), "score %d", tt.score)
	}
}

func TestBonusXP(t *testing.T) {
	assert.Equal(t, 50, passedSprint().BonusXP())

	plain := passedSprint()
	plain.Outcome.XPAwarded = 40
	assert.Zero(t, plain.BonusXP())
}

func TestViewPassed(t *testing.T) {
	view := New(passedSprint(), nil).View(100, 30)
	for _, want := range []string{
		"Closures Sprint", "Quiz passed!", "★ ★", "☆", "4/5", "80%", "1:35",
		"+90 XP", "quiz 40 + bonus 50", "Now level 2", "Quiz Master",
	} {
		assert.Contains(t, view, want)
	}
}

func TestViewFailedShowsNoRewards(t *testing.T) {
	sum := passedSprint()
	sum.Result.Passed = false
	sum.Outcome = gamification.Outcome{}

	view := New(sum, nil).View(100, 30)
	assert.Contains(t, view, "Try again")
	assert.Contains(t, view, "☆ ☆ ☆")
	assert.NotContains(t, view, "XP")
}

func TestEnterAndEscPop(t *testing.T) {
	for _, key := range []tea.KeyPressMsg{{Code: tea.KeyEnter}, {Code: tea.KeyEscape}} {
		assert.IsType(t, router.PopScreenMsg{}, press(New(passedSprint(), nil), key))
	}
}

func TestRetry(t *testing.T) {
	r := tea.KeyPressMsg{Code: 'r', Text: "r"}
	assert.Nil(t, press(New(passedSprint(), nil), r), "no factory")

	calls := 0
	s := New(passedSprint(), func() screen.Screen {
		calls++
		return &retryScreen{}
	})
	msg, ok := press(s, r).(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &retryScreen{}, msg.Screen)
	assert.Equal(t, 1, calls)

	failing := New(passedSprint(), func() screen.Screen { return nil })
	assert.Nil(t, press(failing, r), "a retry that cannot start stays put")
}

func TestTitleAndHints(t *testing.T) {
	assert.Equal(t, "Quiz Results", New(passedSprint(), nil).Title())
	assert.Len(t, New(passedSprint(), nil).KeyHints(), 1)
	assert.Len(t, New(passedSprint(), func() screen.Screen { return nil }).KeyHints(), 2)
}
