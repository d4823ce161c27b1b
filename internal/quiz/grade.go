package quiz

import (
	"math"
	"strings"

	"github.com/abhisek/edusmart/internal/apperr"
)

const opGrade = "quiz.Grade"

// Grade scores answer against q. It has no side effects. Incomplete answers
// for variants that need every part filled are rejected with
// apperr.ErrIncompleteSubmission before any grading happens.
func Grade(q Quiz, answer Answer) (Result, error) {
	switch q := q.(type) {
	case *MultipleChoice:
		a, ok := answer.(Choice)
		if !ok {
			return Result{}, mismatch(q, answer)
		}
		return gradeMultipleChoice(q, a)
	case *DragAndDrop:
		a, ok := answer.(Placements)
		if !ok {
			return Result{}, mismatch(q, answer)
		}
		return gradeDragAndDrop(q, a)
	case *FillInBlanks:
		a, ok := answer.(BlankAnswers)
		if !ok {
			return Result{}, mismatch(q, answer)
		}
		return gradeFillInBlanks(q, a)
	case *Timed:
		a, ok := answer.(TimedAnswers)
		if !ok {
			return Result{}, mismatch(q, answer)
		}
		return gradeTimed(q, a)
	case nil:
		return Result{}, apperr.InvalidArgument(opGrade, "nil quiz")
	default:
		return Result{}, apperr.InvalidArgument(opGrade, "unsupported quiz type %T", q)
	}
}

func gradeMultipleChoice(q *MultipleChoice, a Choice) (Result, error) {
	if a.Selected == NoSelection {
		return Result{}, apperr.IncompleteSubmission(opGrade, "select an answer first")
	}
	if a.Selected < 0 || a.Selected >= len(q.Options) {
		return Result{}, apperr.InvalidArgument(opGrade, "option %d out of range [0, %d)", a.Selected, len(q.Options))
	}
	correct := a.Selected == q.CorrectAnswer
	return allOrNothing(q, correct, boolCount(correct), 1), nil
}

func gradeDragAndDrop(q *DragAndDrop, placed Placements) (Result, error) {
	zones := make(map[string]struct{}, len(q.Zones))
	for _, z := range q.Zones {
		zones[z.ID] = struct{}{}
	}
	items := make(map[string]struct{}, len(q.Items))
	for _, it := range q.Items {
		items[it.ID] = struct{}{}
	}

	used := make(map[string]string, len(placed))
	for zoneID, itemID := range placed {
		if _, ok := zones[zoneID]; !ok {
			return Result{}, apperr.InvalidArgument(opGrade, "unknown drop zone %q", zoneID)
		}
		if itemID == "" {
			continue
		}
		if _, ok := items[itemID]; !ok {
			return Result{}, apperr.InvalidArgument(opGrade, "unknown item %q", itemID)
		}
		if other, dup := used[itemID]; dup {
			return Result{}, apperr.InvalidArgument(opGrade, "item %q placed in both %q and %q", itemID, other, zoneID)
		}
		used[itemID] = zoneID
	}

	for _, z := range q.Zones {
		if placed[z.ID] == "" {
			return Result{}, apperr.IncompleteSubmission(opGrade, "place an item in every zone first")
		}
	}

	right := 0
	for _, z := range q.Zones {
		if placed[z.ID] == z.CorrectItemID {
			right++
		}
	}
	return allOrNothing(q, right == len(q.Zones), right, len(q.Zones)), nil
}

func gradeFillInBlanks(q *FillInBlanks, answers BlankAnswers) (Result, error) {
	for _, b := range q.Blanks {
		if strings.TrimSpace(answers[b.ID]) == "" {
			return Result{}, apperr.IncompleteSubmission(opGrade, "fill in every blank first")
		}
	}

	right := 0
	for _, b := range q.Blanks {
		if MatchBlank(answers[b.ID], b.CorrectAnswer) {
			right++
		}
	}
	return allOrNothing(q, right == len(q.Blanks), right, len(q.Blanks)), nil
}

func gradeTimed(q *Timed, answers TimedAnswers) (Result, error) {
	total := len(q.Questions)
	if total == 0 {
		return Result{}, apperr.InvalidArgument(opGrade, "timed quiz %q has no questions", q.ID)
	}
	for idx := range answers {
		if idx < 0 || idx >= total {
			return Result{}, apperr.InvalidArgument(opGrade, "question index %d out of range [0, %d)", idx, total)
		}
	}

	right := 0
	for i, question := range q.Questions {
		sel, ok := answers[i]
		if ok && sel == question.CorrectAnswer {
			right++
		}
	}

	score := int(math.Round(100 * float64(right) / float64(total)))
	passed := score >= q.PassingScore
	res := Result{
		QuizID:       q.ID,
		Kind:         KindTimed,
		Correct:      right == total,
		CorrectCount: right,
		Total:        total,
		Score:        score,
		Passed:       passed,
	}
	if passed {
		res.XPReward = q.XPReward
	}
	return res, nil
}

// MatchBlank compares a learner's blank answer with the expected text,
// ignoring case and surrounding whitespace.
func MatchBlank(got, want string) bool {
	return strings.EqualFold(strings.TrimSpace(got), strings.TrimSpace(want))
}

func allOrNothing(q Quiz, correct bool, right, total int) Result {
	res := Result{
		QuizID:       q.QuizID(),
		Kind:         q.Kind(),
		Correct:      correct,
		CorrectCount: right,
		Total:        total,
		Passed:       correct,
	}
	if correct {
		res.Score = 100
		res.XPReward = q.Reward()
	}
	return res
}

func mismatch(q Quiz, a Answer) error {
	return apperr.InvalidArgument(opGrade, "answer %T does not fit %s quiz %q", a, q.Kind(), q.QuizID())
}

func boolCount(b bool) int {
	if b {
		return 1
	}
	return 0
}
