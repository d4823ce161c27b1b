package quiz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/edusmart/internal/apperr"
)

var t0 = time.Date(2025, 2, 10, 9, 0, 0, 0, time.UTC)

func TestAttempt_Lifecycle(t *testing.T) {
	a := NewAttempt(mcQuiz(), t0)
	assert.NotEmpty(t, a.ID())
	assert.Equal(t, NotSubmitted, a.State())

	_, graded := a.Result()
	assert.False(t, graded)

	res, err := a.Submit(Choice{Selected: 2}, t0.Add(5*time.Second))
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Equal(t, Graded, a.State())
	assert.Equal(t, 5*time.Second, a.Elapsed(t0.Add(time.Hour)))
	assert.Equal(t, Choice{Selected: 2}, a.Answer())

	got, graded := a.Result()
	assert.True(t, graded)
	assert.Equal(t, res, got)
}

func TestAttempt_GradedIsImmutable(t *testing.T) {
	a := NewAttempt(mcQuiz(), t0)
	first, err := a.Submit(Choice{Selected: 0}, t0)
	require.NoError(t, err)

	_, err = a.Submit(Choice{Selected: 2}, t0)
	assert.ErrorIs(t, err, apperr.ErrInvalidStateTransition)

	res, _ := a.Result()
	assert.Equal(t, first, res)
	assert.False(t, res.Correct)
}

func TestAttempt_SubmittedMapIsCopied(t *testing.T) {
	a := NewAttempt(blanksQuiz(), t0)
	ans := BlankAnswers{"b1": "let", "b2": "const"}
	_, err := a.Submit(ans, t0)
	require.NoError(t, err)

	ans["b1"] = "var"
	assert.Equal(t, BlankAnswers{"b1": "let", "b2": "const"}, a.Answer())

	got := a.Answer().(BlankAnswers)
	got["b2"] = "var"
	assert.Equal(t, BlankAnswers{"b1": "let", "b2": "const"}, a.Answer())
}

func TestAttempt_RejectedSubmissionStaysOpen(t *testing.T) {
	a := NewAttempt(blanksQuiz(), t0)

	_, err := a.Submit(BlankAnswers{"b1": "let"}, t0)
	assert.ErrorIs(t, err, apperr.ErrIncompleteSubmission)
	assert.Equal(t, NotSubmitted, a.State())
	assert.Nil(t, a.Answer())

	res, err := a.Submit(BlankAnswers{"b1": "let", "b2": "const"}, t0)
	require.NoError(t, err)
	assert.True(t, res.Correct)
}

func TestAttempt_NewAttemptsAreDistinct(t *testing.T) {
	a := NewAttempt(mcQuiz(), t0)
	b := NewAttempt(mcQuiz(), t0)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestAttempt_Expired(t *testing.T) {
	timed := NewAttempt(timedQuiz(), t0)
	assert.False(t, timed.Expired(t0.Add(59*time.Second)))
	assert.True(t, timed.Expired(t0.Add(60*time.Second)))

	untimed := NewAttempt(mcQuiz(), t0)
	assert.False(t, untimed.Expired(t0.Add(24*time.Hour)))
}

func TestAttemptStateString(t *testing.T) {
	tests := []struct {
		s    AttemptState
		want string
	}{
		{NotSubmitted, "not_submitted"},
		{Submitted, "submitted"},
		{Graded, "graded"},
		{AttemptState(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
