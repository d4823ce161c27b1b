package quizplay

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edusmart/internal/apperr"
	"github.com/abhisek/edusmart/internal/gamification"
	"github.com/abhisek/edusmart/internal/quiz"
	"github.com/abhisek/edusmart/internal/router"
	"github.com/abhisek/edusmart/internal/screen"
	"github.com/abhisek/edusmart/internal/screens/summary"
	"github.com/abhisek/edusmart/internal/ui/components"
	"github.com/abhisek/edusmart/internal/ui/layout"
	"github.com/abhisek/edusmart/internal/ui/theme"
)

const countdownInterval = time.Second

type countdownMsg struct {
	at time.Time
}

// QuizScreen runs one quiz attempt for any quiz kind.
type QuizScreen struct {
	engine  *gamification.Engine
	attempt *quiz.Attempt
	now     func() time.Time

	// multiple choice, drag and drop zones, timed questions
	choices []components.MultiChoice
	current int

	// fill in the blanks
	inputs []components.BlankInput

	status string
	done   bool
	left   bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.Leaver = (*QuizScreen)(nil)

// New creates a screen for attempt.
func New(engine *gamification.Engine, attempt *quiz.Attempt) *QuizScreen {
	s := &QuizScreen{
		engine:  engine,
		attempt: attempt,
		now:     time.Now,
	}

	switch q := attempt.Quiz().(type) {
	case *quiz.MultipleChoice:
		s.choices = []components.MultiChoice{components.NewMultiChoice(q.Question, q.Options)}
	case *quiz.DragAndDrop:
		items := make([]string, len(q.Items))
		for i, it := range q.Items {
			items[i] = it.Text
		}
		for _, z := range q.Zones {
			s.choices = append(s.choices, components.NewMultiChoice(z.Label, items))
		}
	case *quiz.FillInBlanks:
		for i := range q.Blanks {
			s.inputs = append(s.inputs, components.NewBlankInput(i+1, 40))
		}
	case *quiz.Timed:
		for i, question := range q.Questions {
			text := fmt.Sprintf("Q%d/%d  %s", i+1, len(q.Questions), question.Text)
			s.choices = append(s.choices, components.NewMultiChoice(text, question.Options))
		}
	}
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	var cmds []tea.Cmd
	if len(s.inputs) > 0 {
		cmds = append(cmds, s.inputs[0].Focus())
	}
	if s.timed() != nil {
		cmds = append(cmds, countdown())
	}
	return tea.Batch(cmds...)
}

func countdown() tea.Cmd {
	return tea.Tick(countdownInterval, func(t time.Time) tea.Msg {
		return countdownMsg{at: t}
	})
}

// Leave stops the countdown.
func (s *QuizScreen) Leave() {
	s.left = true
}

func (s *QuizScreen) timed() *quiz.Timed {
	t, _ := s.attempt.Quiz().(*quiz.Timed)
	return t
}

// Remaining returns the time left on a timed quiz.
func (s *QuizScreen) Remaining() time.Duration {
	t := s.timed()
	if t == nil || t.TimeLimit() <= 0 {
		return 0
	}
	return max(0, t.TimeLimit()-s.attempt.Elapsed(s.now()))
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.done {
		return s, nil
	}

	switch msg := msg.(type) {
	case countdownMsg:
		if s.left {
			return s, nil
		}
		if s.attempt.Expired(s.now()) {
			s.status = "Time's up!"
			return s, s.submit()
		}
		return s, countdown()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if len(s.inputs) > 0 {
		var cmd tea.Cmd
		s.inputs[s.current], cmd = s.inputs[s.current].Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if len(s.inputs) > 0 {
		switch key {
		case "tab", "down":
			return s, s.focusInput(s.current + 1)
		case "shift+tab", "up":
			return s, s.focusInput(s.current - 1)
		case "enter":
			if s.current < len(s.inputs)-1 {
				return s, s.focusInput(s.current + 1)
			}
			return s, s.submit()
		}
		var cmd tea.Cmd
		s.inputs[s.current], cmd = s.inputs[s.current].Update(msg)
		return s, cmd
	}

	switch key {
	case "tab":
		s.current = (s.current + 1) % len(s.choices)
		return s, nil
	case "shift+tab":
		s.current = (s.current - 1 + len(s.choices)) % len(s.choices)
		return s, nil
	case "ctrl+s", "s":
		if _, ok := s.attempt.Quiz().(*quiz.DragAndDrop); ok {
			return s, s.submit()
		}
	}

	if len(s.choices) == 0 {
		return s, nil
	}
	before := s.choices[s.current].Chosen
	s.choices[s.current], _ = s.choices[s.current].Update(msg)
	if s.choices[s.current].Chosen == before || !s.choices[s.current].Answered() {
		return s, nil
	}

	switch s.attempt.Quiz().(type) {
	case *quiz.MultipleChoice:
		return s, s.submit()
	case *quiz.DragAndDrop:
		if s.current < len(s.choices)-1 {
			s.current++
		}
	case *quiz.Timed:
		if s.current < len(s.choices)-1 {
			s.current++
			return s, nil
		}
		return s, s.submit()
	}
	return s, nil
}

func (s *QuizScreen) focusInput(i int) tea.Cmd {
	if i < 0 || i >= len(s.inputs) {
		return nil
	}
	s.inputs[s.current].Blur()
	s.current = i
	return s.inputs[i].Focus()
}

// Answer builds the answer for the current inputs.
func (s *QuizScreen) Answer() quiz.Answer {
	switch q := s.attempt.Quiz().(type) {
	case *quiz.MultipleChoice:
		return quiz.Choice{Selected: s.choices[0].Chosen}
	case *quiz.DragAndDrop:
		placed := make(quiz.Placements)
		for i, z := range q.Zones {
			if c := s.choices[i].Chosen; c != components.NoChoice {
				placed[z.ID] = q.Items[c].ID
			}
		}
		return placed
	case *quiz.FillInBlanks:
		answers := make(quiz.BlankAnswers)
		for i, b := range q.Blanks {
			answers[b.ID] = s.inputs[i].Value()
		}
		return answers
	case *quiz.Timed:
		answers := make(quiz.TimedAnswers)
		for i, c := range s.choices {
			if c.Chosen != components.NoChoice {
				answers[i] = c.Chosen
			}
		}
		return answers
	}
	return nil
}

func (s *QuizScreen) submit() tea.Cmd {
	out, err := s.engine.SubmitQuiz(context.Background(), s.attempt, s.Answer())
	if err != nil {
		s.status = apperr.Message(err)
		if errors.Is(err, apperr.ErrInvalidStateTransition) {
			s.done = true
		}
		return nil
	}
	s.done = true

	res, _ := s.attempt.Result()
	s.reveal()
	sum := &summary.QuizSummary{
		QuizTitle: Title(s.attempt.Quiz()),
		Result:    res,
		Outcome:   out,
		Elapsed:   s.attempt.Elapsed(s.now()),
	}
	engine, q := s.engine, s.attempt.Quiz()
	retry := func() screen.Screen {
		attempt, err := engine.StartQuiz(q.QuizID())
		if err != nil {
			return nil
		}
		return New(engine, attempt)
	}
	next := summary.New(sum, retry)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// reveal shows the correct answers next to the learner's.
func (s *QuizScreen) reveal() {
	switch q := s.attempt.Quiz().(type) {
	case *quiz.FillInBlanks:
		for i, b := range q.Blanks {
			s.inputs[i].Mark(quiz.MatchBlank(s.inputs[i].Value(), b.CorrectAnswer), b.CorrectAnswer)
		}
	case *quiz.MultipleChoice:
		s.choices[0].Reveal(q.CorrectAnswer)
	case *quiz.DragAndDrop:
		for i, z := range q.Zones {
			for j, it := range q.Items {
				if it.ID == z.CorrectItemID {
					s.choices[i].Reveal(j)
				}
			}
		}
	case *quiz.Timed:
		for i, question := range q.Questions {
			s.choices[i].Reveal(question.CorrectAnswer)
		}
	}
}

// Title returns a display title for q.
func Title(q quiz.Quiz) string {
	if t, ok := q.(*quiz.Timed); ok && t.Title != "" {
		return t.Title
	}
	return q.Kind().DisplayName()
}

var blankPattern = regexp.MustCompile(`\{([^{}]+)\}`)

func (s *QuizScreen) View(width, height int) string {
	q := s.attempt.Quiz()
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, theme.Title.Width(cw).Render(Title(q)))

	if t := s.timed(); t != nil && t.TimeLimit() > 0 {
		rem := s.Remaining()
		style := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
		if rem <= 10*time.Second {
			style = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		}
		answered := 0
		for _, c := range s.choices {
			if c.Answered() {
				answered++
			}
		}
		sections = append(sections, style.Render(fmt.Sprintf("⏱ %d:%02d   answered %d/%d",
			int(rem.Minutes()), int(rem.Seconds())%60, answered, len(s.choices))))
	}

	switch q := q.(type) {
	case *quiz.DragAndDrop:
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(q.Question))
		var zones []string
		for i, z := range q.Zones {
			placed := "___"
			if c := s.choices[i].Chosen; c != components.NoChoice {
				placed = q.Items[c].Text
			}
			marker := "  "
			if i == s.current {
				marker = "▸ "
			}
			zones = append(zones, fmt.Sprintf("%s%s → %s", marker, z.Label, placed))
		}
		sections = append(sections, strings.Join(zones, "\n"))
		sections = append(sections, components.ArcadeCard(s.choices[s.current].View(), cw, nil))
	case *quiz.FillInBlanks:
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(q.Question))
		n := 0
		text := blankPattern.ReplaceAllStringFunc(q.Text, func(string) string {
			n++
			return fmt.Sprintf("[%d]", n)
		})
		sections = append(sections, lipgloss.NewStyle().Width(cw).Render(text))
		var inputs []string
		for _, in := range s.inputs {
			inputs = append(inputs, in.View())
		}
		sections = append(sections, strings.Join(inputs, "\n"))
	default:
		if len(s.choices) > 0 {
			sections = append(sections, components.ArcadeCard(s.choices[s.current].View(), cw, nil))
		}
	}

	if s.status != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(s.status))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n\n"))
}

func (s *QuizScreen) Title() string {
	return s.attempt.Quiz().Kind().DisplayName()
}

// KeyHints returns the key binding hints for the footer.
func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.attempt.Quiz().(type) {
	case *quiz.DragAndDrop:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next zone"},
			{Key: "A-D", Description: "Place item"},
			{Key: "s", Description: "Submit"},
			{Key: "Esc", Description: "Back"},
		}
	case *quiz.FillInBlanks:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next blank"},
			{Key: "Enter", Description: "Next/Submit"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Back"},
		}
	}
}
