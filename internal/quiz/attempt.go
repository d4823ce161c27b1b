package quiz

import (
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/edusmart/internal/apperr"
)

// AttemptState is the lifecycle position of an Attempt.
type AttemptState int

const (
	NotSubmitted AttemptState = iota
	Submitted
	Graded
)

func (s AttemptState) String() string {
	switch s {
	case NotSubmitted:
		return "not_submitted"
	case Submitted:
		return "submitted"
	case Graded:
		return "graded"
	default:
		return "unknown"
	}
}

// Attempt is one learner pass over a quiz. It is graded at most once;
// retrying means starting a new Attempt.
type Attempt struct {
	mu          sync.Mutex
	id          string
	quiz        Quiz
	state       AttemptState
	startedAt   time.Time
	submittedAt time.Time
	answer      Answer
	result      Result
}

// NewAttempt opens an attempt for q at now.
func NewAttempt(q Quiz, now time.Time) *Attempt {
	return &Attempt{
		id:        uuid.New().String(),
		quiz:      q,
		state:     NotSubmitted,
		startedAt: now,
	}
}

// ID returns the attempt's unique id.
func (a *Attempt) ID() string { return a.id }

// Quiz returns the quiz being attempted.
func (a *Attempt) Quiz() Quiz { return a.quiz }

// StartedAt returns when the attempt was opened.
func (a *Attempt) StartedAt() time.Time { return a.startedAt }

// State returns the current lifecycle state.
func (a *Attempt) State() AttemptState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Result returns the grade and true once the attempt is graded.
func (a *Attempt) Result() (Result, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.result, a.state == Graded
}

// Answer returns the graded answer, or nil before grading.
func (a *Attempt) Answer() Answer {
	a.mu.Lock()
	defer a.mu.Unlock()
	return cloneAnswer(a.answer)
}

// Elapsed returns the time spent between opening and submitting, or up to
// now if not yet submitted.
func (a *Attempt) Elapsed(now time.Time) time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state == NotSubmitted {
		return now.Sub(a.startedAt)
	}
	return a.submittedAt.Sub(a.startedAt)
}

// Expired reports whether a timed attempt has run out of time at now.
func (a *Attempt) Expired(now time.Time) bool {
	t, ok := a.quiz.(*Timed)
	if !ok || t.TimeLimit() <= 0 {
		return false
	}
	return now.Sub(a.startedAt) >= t.TimeLimit()
}

// Submit grades answer. A rejected submission leaves the attempt open so the
// learner can fix it; a second submission after grading fails with
// apperr.ErrInvalidStateTransition.
func (a *Attempt) Submit(answer Answer, now time.Time) (Result, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != NotSubmitted {
		return Result{}, apperr.InvalidStateTransition("quiz.Submit", "attempt %s already %s", a.id, a.state)
	}
	a.state = Submitted

	answer = cloneAnswer(answer)
	res, err := Grade(a.quiz, answer)
	if err != nil {
		a.state = NotSubmitted
		return Result{}, err
	}

	a.answer = answer
	a.result = res
	a.submittedAt = now
	a.state = Graded
	return res, nil
}

// cloneAnswer copies map answers so the caller cannot rewrite a graded
// attempt.
func cloneAnswer(answer Answer) Answer {
	switch v := answer.(type) {
	case Placements:
		return maps.Clone(v)
	case BlankAnswers:
		return maps.Clone(v)
	case TimedAnswers:
		return maps.Clone(v)
	default:
		return answer
	}
}
