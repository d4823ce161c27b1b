package content

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/edusmart/internal/achievements"
	"github.com/abhisek/edusmart/internal/quiz"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Len(t, c.Courses, 6)
	assert.Equal(t, 13, c.LessonCount())
	assert.Len(t, c.Achievements, 11)

	lesson, ok := c.Lesson("js-variables")
	require.True(t, ok)
	assert.Equal(t, "js-fundamentals", lesson.CourseID)
	assert.Equal(t, 900.0, lesson.DurationSeconds)
	assert.Equal(t, 50, lesson.XPReward)
	require.Len(t, lesson.Quizzes, 4)

	kinds := make([]quiz.Kind, len(lesson.Quizzes))
	for i, e := range lesson.Quizzes {
		kinds[i] = e.Quiz.Kind()
	}
	assert.Equal(t, quiz.AllKinds(), kinds)

	timed, ok := c.Quiz("js-variables-timed")
	require.True(t, ok)
	assert.Len(t, timed.(*quiz.Timed).Questions, 5)
	assert.Equal(t, 70, timed.(*quiz.Timed).PassingScore)

	_, ok = c.Course("ml-101")
	assert.True(t, ok)
	_, ok = c.Lesson("nope")
	assert.False(t, ok)
}

// Every authored predicate must compile.
func TestDefaultCatalogAchievementsCompile(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	_, err = achievements.NewService(c.Achievements, nil)
	require.NoError(t, err)
}

// Every authored quiz must accept its own answer key.
func TestDefaultCatalogAnswerKeys(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	for _, course := range c.Courses {
		for _, lesson := range course.Lessons {
			for _, e := range lesson.Quizzes {
				res, err := quiz.Grade(e.Quiz, answerKey(e.Quiz))
				require.NoError(t, err, e.Quiz.QuizID())
				assert.True(t, res.Passed, e.Quiz.QuizID())
				assert.True(t, res.Perfect(), e.Quiz.QuizID())
			}
		}
	}
}

func answerKey(q quiz.Quiz) quiz.Answer {
	switch q := q.(type) {
	case *quiz.MultipleChoice:
		return quiz.Choice{Selected: q.CorrectAnswer}
	case *quiz.DragAndDrop:
		p := quiz.Placements{}
		for _, z := range q.Zones {
			p[z.ID] = z.CorrectItemID
		}
		return p
	case *quiz.FillInBlanks:
		a := quiz.BlankAnswers{}
		for _, b := range q.Blanks {
			a[b.ID] = b.CorrectAnswer
		}
		return a
	case *quiz.Timed:
		a := quiz.TimedAnswers{}
		for i, question := range q.Questions {
			a[i] = question.CorrectAnswer
		}
		return a
	}
	return nil
}

func TestLoad_Rejects(t *testing.T) {
	const lesson = `{"id": "l1", "title": "L", "duration_seconds": 60, "xp_reward": 10}`

	tests := []struct {
		name    string
		raw     string
		wantMsg string
	}{
		{"not json", `{`, "invalid JSON"},
		{"missing courses", `{"version": "1.0.0", "achievements": []}`, "schema validation"},
		{"bad version", `{"version": "one", "courses": [], "achievements": []}`, "not a semantic version"},
		{"future major", `{"version": "2.0.0", "courses": [], "achievements": []}`, "not supported"},
		{
			"zero duration",
			`{"version": "1.0.0", "achievements": [], "courses": [{"id": "c", "title": "C", "lessons": [{"id": "l1", "title": "L", "duration_seconds": 0, "xp_reward": 10}]}]}`,
			"schema validation",
		},
		{
			"duplicate lesson",
			`{"version": "1.0.0", "achievements": [], "courses": [{"id": "c", "title": "C", "lessons": [` + lesson + `,` + lesson + `]}]}`,
			"duplicate lesson",
		},
		{
			"unknown quiz type",
			`{"version": "1.0.0", "achievements": [], "courses": [{"id": "c", "title": "C", "lessons": [{"id": "l1", "title": "L", "duration_seconds": 60, "xp_reward": 10, "quizzes": [{"type": "essay", "id": "q"}]}]}]}`,
			"schema validation",
		},
		{
			"answer out of range",
			`{"version": "1.0.0", "achievements": [], "courses": [{"id": "c", "title": "C", "lessons": [{"id": "l1", "title": "L", "duration_seconds": 60, "xp_reward": 10, "quizzes": [{"type": "multiple_choice", "id": "q", "question": "?", "options": ["a", "b"], "correct_answer": 5, "xp_reward": 5}]}]}]}`,
			"out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.raw))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoad_VersionPrefix(t *testing.T) {
	for _, v := range []string{"1.0.0", "v1.4.2"} {
		_, err := Load([]byte(`{"version": "` + v + `", "courses": [], "achievements": []}`))
		assert.NoError(t, err, v)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, defaultCatalog, 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, c.Courses, 6)

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestQuizEntryRoundTrip(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	lesson, _ := c.Lesson("js-variables")

	for _, e := range lesson.Quizzes {
		b, err := json.Marshal(e)
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(b), `"type":"`+string(e.Quiz.Kind())+`"`))

		var back QuizEntry
		require.NoError(t, json.Unmarshal(b, &back))
		assert.Equal(t, e.Quiz, back.Quiz)
	}
}
