// Package quiz grades learner answers against quiz definitions.
//
// Quizzes are a closed set of variants. Each variant pairs with one answer
// type and Grade is the only dispatch point between them.
package quiz

import "time"

// Kind identifies a quiz variant.
type Kind string

const (
	KindMultipleChoice Kind = "multiple_choice"
	KindDragAndDrop    Kind = "drag_and_drop"
	KindFillInBlanks   Kind = "fill_in_blanks"
	KindTimed          Kind = "timed"
)

// AllKinds returns every quiz kind in display order.
func AllKinds() []Kind {
	return []Kind{KindMultipleChoice, KindDragAndDrop, KindFillInBlanks, KindTimed}
}

// DisplayName returns a human-readable label for the kind.
func (k Kind) DisplayName() string {
	switch k {
	case KindMultipleChoice:
		return "Multiple Choice"
	case KindDragAndDrop:
		return "Drag & Drop"
	case KindFillInBlanks:
		return "Fill in the Blanks"
	case KindTimed:
		return "Timed Quiz"
	default:
		return string(k)
	}
}

// Quiz is implemented by every quiz variant in this package.
type Quiz interface {
	QuizID() string
	Kind() Kind
	Reward() int
	quiz()
}

// Answer is implemented by every answer shape in this package.
type Answer interface {
	answer()
}

// MultipleChoice has a single correct option index.
type MultipleChoice struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
	XPReward      int      `json:"xp_reward"`
}

// DragItem is a draggable item.
type DragItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// DropZone is a target that accepts exactly one item.
type DropZone struct {
	ID            string `json:"id"`
	Label         string `json:"label"`
	CorrectItemID string `json:"correct_item_id"`
}

// DragAndDrop maps items onto zones.
type DragAndDrop struct {
	ID       string     `json:"id"`
	Question string     `json:"question"`
	Items    []DragItem `json:"items"`
	Zones    []DropZone `json:"zones"`
	XPReward int        `json:"xp_reward"`
}

// Blank is one gap in a fill-in-the-blanks text.
type Blank struct {
	ID            string `json:"id"`
	CorrectAnswer string `json:"correct_answer"`
}

// FillInBlanks asks for a string per blank. Text marks gaps with {id}.
type FillInBlanks struct {
	ID       string  `json:"id"`
	Question string  `json:"question"`
	Text     string  `json:"text"`
	Blanks   []Blank `json:"blanks"`
	XPReward int     `json:"xp_reward"`
}

// Question is one multiple-choice question inside a timed quiz.
type Question struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
}

// Timed is a multi-question quiz scored as a percentage.
type Timed struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Questions    []Question `json:"questions"`
	PassingScore int        `json:"passing_score"`
	TimeLimitSec int        `json:"time_limit_seconds"`
	XPReward     int        `json:"xp_reward"`
}

// TimeLimit returns the allowed duration, or zero when untimed.
func (q *Timed) TimeLimit() time.Duration {
	return time.Duration(q.TimeLimitSec) * time.Second
}

func (q *MultipleChoice) QuizID() string { return q.ID }
func (q *DragAndDrop) QuizID() string    { return q.ID }
func (q *FillInBlanks) QuizID() string   { return q.ID }
func (q *Timed) QuizID() string          { return q.ID }

func (q *MultipleChoice) Kind() Kind { return KindMultipleChoice }
func (q *DragAndDrop) Kind() Kind    { return KindDragAndDrop }
func (q *FillInBlanks) Kind() Kind   { return KindFillInBlanks }
func (q *Timed) Kind() Kind          { return KindTimed }

func (q *MultipleChoice) Reward() int { return q.XPReward }
func (q *DragAndDrop) Reward() int    { return q.XPReward }
func (q *FillInBlanks) Reward() int   { return q.XPReward }
func (q *Timed) Reward() int          { return q.XPReward }

func (*MultipleChoice) quiz() {}
func (*DragAndDrop) quiz()    {}
func (*FillInBlanks) quiz()   {}
func (*Timed) quiz()          {}

// NoSelection marks a multiple-choice answer with nothing picked.
const NoSelection = -1

// Choice answers a MultipleChoice quiz.
type Choice struct {
	Selected int
}

// Placements answers a DragAndDrop quiz: zone id to item id.
type Placements map[string]string

// BlankAnswers answers a FillInBlanks quiz: blank id to text.
type BlankAnswers map[string]string

// TimedAnswers answers a Timed quiz: question index to option index.
// Missing indices are unanswered.
type TimedAnswers map[int]int

func (Choice) answer()       {}
func (Placements) answer()   {}
func (BlankAnswers) answer() {}
func (TimedAnswers) answer() {}

// Result is the outcome of grading one submission.
type Result struct {
	QuizID       string `json:"quiz_id"`
	Kind         Kind   `json:"kind"`
	Correct      bool   `json:"correct"`
	CorrectCount int    `json:"correct_count"`
	Total        int    `json:"total"`
	Score        int    `json:"score"`
	Passed       bool   `json:"passed"`
	XPReward     int    `json:"xp_reward"`
}

// Perfect reports whether every item was answered correctly.
func (r Result) Perfect() bool {
	return r.Total > 0 && r.CorrectCount == r.Total
}
