package content

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"

	"github.com/abhisek/edusmart/internal/quiz"
)

//go:embed catalog.json
var defaultCatalog []byte

//go:embed catalog.schema.json
var catalogSchema []byte

// SupportedMajor is the catalog format major version this build reads.
const SupportedMajor = "v1"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	return Load(defaultCatalog)
}

// LoadFile reads and validates a catalog from path.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Load(raw)
}

// Load validates raw against the catalog schema, checks the format version
// and cross references, then indexes the result.
func Load(raw []byte) (*Catalog, error) {
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var c Catalog
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if err := checkVersion(c.Version); err != nil {
		return nil, err
	}
	if err := c.index(); err != nil {
		return nil, err
	}
	return &c, nil
}

func validateSchema(raw []byte) error {
	schema, err := getCompiledSchema()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("catalog schema validation failed: %w", err)
	}
	return nil
}

// getCompiledSchema compiles the embedded schema once.
func getCompiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(catalogSchema))
		if err != nil {
			schemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://catalog.json"
		if err := c.AddResource(url, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(url)
	})
	return compiledSchema, schemaErr
}

func checkVersion(v string) error {
	canon := v
	if !strings.HasPrefix(canon, "v") {
		canon = "v" + canon
	}
	if !semver.IsValid(canon) {
		return fmt.Errorf("catalog version %q is not a semantic version", v)
	}
	if major := semver.Major(canon); major != SupportedMajor {
		return fmt.Errorf("catalog version %s not supported (need %s.x.x)", v, SupportedMajor)
	}
	return nil
}

// index fills lookup tables and rejects dangling or duplicate ids.
func (c *Catalog) index() error {
	c.courses = make(map[string]*Course)
	c.lessons = make(map[string]*Lesson)
	c.quizzes = make(map[string]quiz.Quiz)

	for ci := range c.Courses {
		course := &c.Courses[ci]
		if _, dup := c.courses[course.ID]; dup {
			return fmt.Errorf("duplicate course id %q", course.ID)
		}
		c.courses[course.ID] = course

		for li := range course.Lessons {
			lesson := &course.Lessons[li]
			lesson.CourseID = course.ID
			if _, dup := c.lessons[lesson.ID]; dup {
				return fmt.Errorf("duplicate lesson id %q", lesson.ID)
			}
			c.lessons[lesson.ID] = lesson

			for _, e := range lesson.Quizzes {
				id := e.Quiz.QuizID()
				if _, dup := c.quizzes[id]; dup {
					return fmt.Errorf("duplicate quiz id %q", id)
				}
				if err := checkQuiz(e.Quiz); err != nil {
					return fmt.Errorf("quiz %q: %w", id, err)
				}
				c.quizzes[id] = e.Quiz
			}
		}
	}

	seen := make(map[string]bool, len(c.Achievements))
	for _, a := range c.Achievements {
		if seen[a.ID] {
			return fmt.Errorf("duplicate achievement id %q", a.ID)
		}
		seen[a.ID] = true
	}
	return nil
}

// checkQuiz catches answer keys that point outside the quiz.
func checkQuiz(q quiz.Quiz) error {
	switch q := q.(type) {
	case *quiz.MultipleChoice:
		if q.CorrectAnswer >= len(q.Options) {
			return fmt.Errorf("correct answer %d out of range", q.CorrectAnswer)
		}
	case *quiz.DragAndDrop:
		items := make(map[string]bool, len(q.Items))
		for _, it := range q.Items {
			items[it.ID] = true
		}
		for _, z := range q.Zones {
			if !items[z.CorrectItemID] {
				return fmt.Errorf("zone %q expects unknown item %q", z.ID, z.CorrectItemID)
			}
		}
	case *quiz.Timed:
		for i, question := range q.Questions {
			if question.CorrectAnswer >= len(question.Options) {
				return fmt.Errorf("question %d correct answer out of range", i)
			}
		}
	}
	return nil
}

// Course returns the course with id.
func (c *Catalog) Course(id string) (*Course, bool) {
	course, ok := c.courses[id]
	return course, ok
}

// Lesson returns the lesson with id.
func (c *Catalog) Lesson(id string) (*Lesson, bool) {
	l, ok := c.lessons[id]
	return l, ok
}

// Quiz returns the quiz with id.
func (c *Catalog) Quiz(id string) (quiz.Quiz, bool) {
	q, ok := c.quizzes[id]
	return q, ok
}

// LessonCount returns the number of lessons across all courses.
func (c *Catalog) LessonCount() int {
	return len(c.lessons)
}

// QuizCount returns the number of quizzes across all lessons.
func (c *Catalog) QuizCount() int {
	return len(c.quizzes)
}
