package quiz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/edusmart/internal/apperr"
)

func mcQuiz() *MultipleChoice {
	return &MultipleChoice{
		ID:            "mc-1",
		Question:      "Which keyword declares a block-scoped constant?",
		Options:       []string{"var", "let", "const", "static"},
		CorrectAnswer: 2,
		XPReward:      20,
	}
}

func dndQuiz() *DragAndDrop {
	return &DragAndDrop{
		ID: "dnd-1",
		Items: []DragItem{
			{ID: "str", Text: `"hello"`},
			{ID: "num", Text: "42"},
			{ID: "bool", Text: "true"},
		},
		Zones: []DropZone{
			{ID: "z-string", Label: "String", CorrectItemID: "str"},
			{ID: "z-number", Label: "Number", CorrectItemID: "num"},
			{ID: "z-boolean", Label: "Boolean", CorrectItemID: "bool"},
		},
		XPReward: 30,
	}
}

func blanksQuiz() *FillInBlanks {
	return &FillInBlanks{
		ID:   "fib-1",
		Text: "Use {b1} to declare a variable that can change and {b2} for one that cannot.",
		Blanks: []Blank{
			{ID: "b1", CorrectAnswer: "let"},
			{ID: "b2", CorrectAnswer: "const"},
		},
		XPReward: 25,
	}
}

func timedQuiz() *Timed {
	qs := make([]Question, 5)
	for i := range qs {
		qs[i] = Question{Text: "q", Options: []string{"a", "b", "c"}, CorrectAnswer: i % 3}
	}
	return &Timed{ID: "timed-1", Questions: qs, PassingScore: 70, TimeLimitSec: 60, XPReward: 40}
}

func TestGradeMultipleChoice(t *testing.T) {
	q := mcQuiz()

	for i := range q.Options {
		res, err := Grade(q, Choice{Selected: i})
		require.NoError(t, err)

		want := i == q.CorrectAnswer
		if res.Correct != want {
			t.Errorf("option %d: Correct = %v, want %v", i, res.Correct, want)
		}
		if want && res.XPReward != 20 {
			t.Errorf("option %d: XPReward = %d, want 20", i, res.XPReward)
		}
		if !want && res.XPReward != 0 {
			t.Errorf("option %d: XPReward = %d, want 0", i, res.XPReward)
		}
	}
}

func TestGradeMultipleChoice_Errors(t *testing.T) {
	q := mcQuiz()

	_, err := Grade(q, Choice{Selected: NoSelection})
	assert.ErrorIs(t, err, apperr.ErrIncompleteSubmission)

	_, err = Grade(q, Choice{Selected: 4})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestGradeDragAndDrop(t *testing.T) {
	tests := []struct {
		name      string
		placed    Placements
		correct   bool
		right     int
		wantErrIs error
	}{
		{
			name:    "all correct",
			placed:  Placements{"z-string": "str", "z-number": "num", "z-boolean": "bool"},
			correct: true,
			right:   3,
		},
		{
			name:    "one swapped pair",
			placed:  Placements{"z-string": "str", "z-number": "bool", "z-boolean": "num"},
			correct: false,
			right:   1,
		},
		{
			name:      "missing zone",
			placed:    Placements{"z-string": "str", "z-number": "num"},
			wantErrIs: apperr.ErrIncompleteSubmission,
		},
		{
			name:      "empty placement",
			placed:    Placements{"z-string": "str", "z-number": "num", "z-boolean": ""},
			wantErrIs: apperr.ErrIncompleteSubmission,
		},
		{
			name:      "unknown zone",
			placed:    Placements{"z-string": "str", "z-number": "num", "z-boolean": "bool", "z-x": "str"},
			wantErrIs: apperr.ErrInvalidArgument,
		},
		{
			name:      "unknown item",
			placed:    Placements{"z-string": "str", "z-number": "num", "z-boolean": "nope"},
			wantErrIs: apperr.ErrInvalidArgument,
		},
		{
			name:      "item reused",
			placed:    Placements{"z-string": "str", "z-number": "str", "z-boolean": "bool"},
			wantErrIs: apperr.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Grade(dndQuiz(), tt.placed)
			if tt.wantErrIs != nil {
				if !errors.Is(err, tt.wantErrIs) {
					t.Fatalf("err = %v, want %v", err, tt.wantErrIs)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.correct, res.Correct)
			assert.Equal(t, tt.right, res.CorrectCount)
			assert.Equal(t, 3, res.Total)
		})
	}
}

// Two of three zones right still fails: there is no partial credit.
func TestGradeDragAndDrop_NoPartialCredit(t *testing.T) {
	q := dndQuiz()
	q.Items = append(q.Items, DragItem{ID: "null", Text: "null"})

	res, err := Grade(q, Placements{"z-string": "str", "z-number": "num", "z-boolean": "null"})
	require.NoError(t, err)

	assert.False(t, res.Correct)
	assert.False(t, res.Passed)
	assert.Equal(t, 2, res.CorrectCount)
	assert.Equal(t, 0, res.XPReward)
	assert.Equal(t, 0, res.Score)
}

func TestGradeFillInBlanks(t *testing.T) {
	tests := []struct {
		name    string
		answers BlankAnswers
		correct bool
	}{
		{"exact", BlankAnswers{"b1": "let", "b2": "const"}, true},
		{"case folded", BlankAnswers{"b1": "LET", "b2": "Const"}, true},
		{"whitespace", BlankAnswers{"b1": "  let\t", "b2": "\nconst "}, true},
		{"one wrong", BlankAnswers{"b1": "var", "b2": "const"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Grade(blanksQuiz(), tt.answers)
			require.NoError(t, err)
			assert.Equal(t, tt.correct, res.Correct)
		})
	}
}

func TestGradeFillInBlanks_Incomplete(t *testing.T) {
	for _, answers := range []BlankAnswers{
		{"b1": "let"},
		{"b1": "let", "b2": "   "},
		{},
	} {
		_, err := Grade(blanksQuiz(), answers)
		if !errors.Is(err, apperr.ErrIncompleteSubmission) {
			t.Errorf("answers %v: err = %v, want IncompleteSubmission", answers, err)
		}
	}
}

func TestMatchBlank(t *testing.T) {
	tests := []struct {
		got, want string
		match     bool
	}{
		{"let", "let", true},
		{"Let", "let", true},
		{" let ", "LET", true},
		{"le t", "let", false},
		{"", "let", false},
	}

	for _, tt := range tests {
		if got := MatchBlank(tt.got, tt.want); got != tt.match {
			t.Errorf("MatchBlank(%q, %q) = %v, want %v", tt.got, tt.want, got, tt.match)
		}
	}
}

func TestGradeTimed(t *testing.T) {
	q := timedQuiz()

	// Four of five correct: question 4 expects option 1.
	res, err := Grade(q, TimedAnswers{0: 0, 1: 1, 2: 2, 3: 0, 4: 0})
	require.NoError(t, err)

	assert.Equal(t, 4, res.CorrectCount)
	assert.Equal(t, 5, res.Total)
	assert.Equal(t, 80, res.Score)
	assert.True(t, res.Passed)
	assert.False(t, res.Correct)
	assert.Equal(t, 40, res.XPReward)
}

func TestGradeTimed_UnansweredCountsWrong(t *testing.T) {
	q := timedQuiz()

	res, err := Grade(q, TimedAnswers{0: 0, 1: 1, 2: 2})
	require.NoError(t, err)

	assert.Equal(t, 60, res.Score)
	assert.False(t, res.Passed)
	assert.Equal(t, 0, res.XPReward)

	res, err = Grade(q, TimedAnswers{})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Score)
}

func TestGradeTimed_Rounding(t *testing.T) {
	q := &Timed{ID: "t", PassingScore: 67, Questions: []Question{
		{Options: []string{"a", "b"}, CorrectAnswer: 0},
		{Options: []string{"a", "b"}, CorrectAnswer: 0},
		{Options: []string{"a", "b"}, CorrectAnswer: 0},
	}}

	res, err := Grade(q, TimedAnswers{0: 0, 1: 0, 2: 1})
	require.NoError(t, err)
	assert.Equal(t, 67, res.Score)
	assert.True(t, res.Passed)
}

func TestGradeTimed_Errors(t *testing.T) {
	_, err := Grade(timedQuiz(), TimedAnswers{7: 0})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = Grade(&Timed{ID: "empty"}, TimedAnswers{})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestGrade_AnswerMismatch(t *testing.T) {
	_, err := Grade(mcQuiz(), BlankAnswers{"b1": "let"})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = Grade(nil, Choice{})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestResultPerfect(t *testing.T) {
	assert.True(t, Result{CorrectCount: 3, Total: 3}.Perfect())
	assert.False(t, Result{CorrectCount: 2, Total: 3}.Perfect())
	assert.False(t, Result{}.Perfect())
}
