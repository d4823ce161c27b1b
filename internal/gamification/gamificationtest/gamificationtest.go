// Package gamificationtest provides engine fixtures for screen and command
// tests.
package gamificationtest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/edusmart/internal/content"
	"github.com/abhisek/edusmart/internal/gamification"
	"github.com/abhisek/edusmart/internal/progress"
)

// Fixture ids.
const (
	CourseID      = "go-basics"
	LessonID      = "go-intro"
	OtherLessonID = "go-vars"
	QuizMC        = "q-mc"
	QuizDnD       = "q-dnd"
	QuizBlanks    = "q-blanks"
	QuizTimed     = "q-timed"
)

// CatalogJSON is a small catalog with one quiz of every kind.
const CatalogJSON = `{
  "version": "1.0.0",
  "courses": [
    {"id": "go-basics", "title": "Go Basics", "difficulty": "beginner", "lessons": [
      {"id": "go-intro", "title": "Hello, Go", "duration_seconds": 120, "xp_reward": 50,
       "key_points": ["Packages", "func main"],
       "quizzes": [
        {"type": "multiple_choice", "id": "q-mc", "question": "Entry point?", "options": ["init", "main", "start"], "correct_answer": 1, "xp_reward": 20},
        {"type": "drag_and_drop", "id": "q-dnd", "question": "Match", "xp_reward": 30,
         "items": [{"id": "i1", "text": "go build"}, {"id": "i2", "text": "go test"}],
         "zones": [{"id": "z1", "label": "compile", "correct_item_id": "i1"}, {"id": "z2", "label": "verify", "correct_item_id": "i2"}]},
        {"type": "fill_in_blanks", "id": "q-blanks", "question": "Complete", "text": "Use {b1} to declare.", "xp_reward": 15,
         "blanks": [{"id": "b1", "correct_answer": "var"}]},
        {"type": "timed", "id": "q-timed", "title": "Sprint", "passing_score": 50, "time_limit_seconds": 30, "xp_reward": 40, "questions": [
          {"text": "1+1", "options": ["2", "3"], "correct_answer": 0},
          {"text": "2+2", "options": ["5", "4"], "correct_answer": 1}
        ]}
      ]},
      {"id": "go-vars", "title": "Variables", "duration_seconds": 60, "xp_reward": 30}
    ]}
  ],
  "achievements": [
    {"id": "first-steps", "name": "First Steps", "rarity": "common", "category": "milestone", "xp_reward": 10, "predicate": "lessons_completed >= 1"},
    {"id": "quiz-whiz", "name": "Quiz Whiz", "rarity": "rare", "category": "excellence", "xp_reward": 25, "predicate": "quizzes_passed >= 3"}
  ]
}`

// Catalog loads CatalogJSON.
func Catalog(t testing.TB) *content.Catalog {
	t.Helper()
	cat, err := content.Load([]byte(CatalogJSON))
	require.NoError(t, err)
	return cat
}

// NewEngine returns an engine over Catalog with a flat 100 XP curve.
func NewEngine(t testing.TB, opts ...gamification.Option) *gamification.Engine {
	t.Helper()
	e, err := gamification.New(progress.NewStore(progress.FlatCurve(100)), Catalog(t), opts...)
	require.NoError(t, err)
	return e
}
