package gamification

import (
	"context"
	"errors"

	"github.com/abhisek/edusmart/internal/apperr"
	"github.com/abhisek/edusmart/internal/quiz"
	"github.com/abhisek/edusmart/internal/store"
)

// HighScore is the minimum score counted toward high_score_quizzes.
const HighScore = 90

// StartQuiz opens a fresh attempt at the quiz with id.
func (e *Engine) StartQuiz(id string) (*quiz.Attempt, error) {
	q, ok := e.catalog.Quiz(id)
	if !ok {
		return nil, apperr.InvalidArgument("gamification.StartQuiz", "unknown quiz %q", id)
	}
	return quiz.NewAttempt(q, e.now()), nil
}

// SubmitQuiz grades answer for attempt. A passing result awards the quiz XP
// and runs achievement evaluation. Incomplete or repeated submissions fail
// with a notice and change nothing.
func (e *Engine) SubmitQuiz(ctx context.Context, attempt *quiz.Attempt, answer quiz.Answer) (Outcome, error) {
	e.mu.Lock()
	out, err := e.submitQuizLocked(ctx, attempt, answer)
	e.mu.Unlock()

	e.dispatch(out)
	return out, err
}

func (e *Engine) submitQuizLocked(ctx context.Context, attempt *quiz.Attempt, answer quiz.Answer) (out Outcome, err error) {
	defer e.finish(&out)

	if attempt == nil {
		return out, apperr.InvalidArgument("gamification.SubmitQuiz", "nil attempt")
	}
	now := e.now()
	res, err := attempt.Submit(answer, now)
	if err != nil {
		if errors.Is(err, apperr.ErrIncompleteSubmission) || errors.Is(err, apperr.ErrInvalidStateTransition) {
			out.add(Event{Kind: EventNotice, At: now, Message: apperr.Message(err)})
		}
		return out, err
	}

	award := 0
	if res.Passed {
		award = res.XPReward
	}
	graded := res
	out.add(Event{Kind: EventQuizGraded, At: now, Result: &graded, XP: award})
	e.log.Info("quiz graded", "quiz", res.QuizID, "kind", string(res.Kind), "score", res.Score, "passed", res.Passed)

	if e.eventRepo != nil {
		if err := e.eventRepo.AppendQuizEvent(ctx, store.QuizEventData{
			UserID:       e.userID,
			AttemptID:    attempt.ID(),
			QuizID:       res.QuizID,
			Kind:         string(res.Kind),
			CorrectCount: res.CorrectCount,
			Total:        res.Total,
			Score:        res.Score,
			Passed:       res.Passed,
			Award:        award,
			ElapsedMs:    attempt.Elapsed(now).Milliseconds(),
		}); err != nil {
			e.log.Warn("append quiz event", "quiz", res.QuizID, "error", err)
		}
	}

	if !res.Passed {
		return out, nil
	}

	if err = e.awardLocked(ctx, &out, award, SourceQuiz, res.QuizID); err != nil {
		return out, err
	}
	e.activity.quizzesPassed++
	if res.Perfect() {
		e.activity.perfectQuizzes++
	}
	if res.Score >= HighScore {
		e.activity.highScoreQuizzes++
	}
	out.changed = true
	err = e.evaluateLocked(ctx, &out)
	return out, err
}
