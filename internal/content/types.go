// Package content loads the read-only course catalog: courses, lessons,
// quizzes and achievement definitions.
package content

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/edusmart/internal/achievements"
	"github.com/abhisek/edusmart/internal/playback"
	"github.com/abhisek/edusmart/internal/quiz"
)

// Catalog is the authored content for a session.
type Catalog struct {
	Version      string                     `json:"version"`
	Courses      []Course                   `json:"courses"`
	Achievements []achievements.Achievement `json:"achievements"`

	lessons map[string]*Lesson
	quizzes map[string]quiz.Quiz
	courses map[string]*Course
}

// Course groups lessons.
type Course struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Difficulty  string   `json:"difficulty"`
	Category    string   `json:"category"`
	Instructor  string   `json:"instructor"`
	Skills      []string `json:"skills"`
	Lessons     []Lesson `json:"lessons"`
}

// Lesson is a playable lesson.
type Lesson struct {
	ID              string      `json:"id"`
	CourseID        string      `json:"-"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	DurationSeconds float64     `json:"duration_seconds"`
	XPReward        int         `json:"xp_reward"`
	Transcript      string      `json:"transcript,omitempty"`
	KeyPoints       []string    `json:"key_points"`
	Quizzes         []QuizEntry `json:"quizzes"`
}

// Playback returns the shape the playback controller needs.
func (l Lesson) Playback() playback.Lesson {
	return playback.Lesson{ID: l.ID, DurationSeconds: l.DurationSeconds}
}

// QuizEntry decodes a quiz by its "type" discriminator.
type QuizEntry struct {
	Quiz quiz.Quiz
}

func (e *QuizEntry) UnmarshalJSON(b []byte) error {
	var head struct {
		Type quiz.Kind `json:"type"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return err
	}

	var q quiz.Quiz
	switch head.Type {
	case quiz.KindMultipleChoice:
		q = &quiz.MultipleChoice{}
	case quiz.KindDragAndDrop:
		q = &quiz.DragAndDrop{}
	case quiz.KindFillInBlanks:
		q = &quiz.FillInBlanks{}
	case quiz.KindTimed:
		q = &quiz.Timed{}
	default:
		return fmt.Errorf("unknown quiz type %q", head.Type)
	}
	if err := json.Unmarshal(b, q); err != nil {
		return fmt.Errorf("decode %s quiz: %w", head.Type, err)
	}
	e.Quiz = q
	return nil
}

func (e QuizEntry) MarshalJSON() ([]byte, error) {
	if e.Quiz == nil {
		return []byte("null"), nil
	}
	body, err := json.Marshal(e.Quiz)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, err
	}
	m["type"] = e.Quiz.Kind()
	return json.Marshal(m)
}
