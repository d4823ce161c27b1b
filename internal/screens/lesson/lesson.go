package lesson

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edusmart/internal/apperr"
	"github.com/abhisek/edusmart/internal/content"
	"github.com/abhisek/edusmart/internal/gamification"
	"github.com/abhisek/edusmart/internal/playback"
	"github.com/abhisek/edusmart/internal/router"
	"github.com/abhisek/edusmart/internal/screen"
	"github.com/abhisek/edusmart/internal/screens/quizplay"
	"github.com/abhisek/edusmart/internal/ui/components"
	"github.com/abhisek/edusmart/internal/ui/layout"
	"github.com/abhisek/edusmart/internal/ui/theme"
)

const (
	// TickInterval is the real time between playback ticks.
	TickInterval = time.Second

	// SeekStep is how far the arrow keys move the cursor, in seconds.
	SeekStep = 10.0
)

type tickMsg struct {
	gen int
}

// LessonScreen plays one lesson and lets the learner complete it.
type LessonScreen struct {
	engine   *gamification.Engine
	lessonID string
	resume   bool
	speed    float64

	lesson  *content.Lesson
	state   playback.State
	status  string
	failed  bool
	gen     int
	stopped bool
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.Leaver = (*LessonScreen)(nil)

// New creates a player for the lesson with lessonID. When resume is true
// the cursor saved by the last visit is restored.
func New(engine *gamification.Engine, lessonID string, resume bool, speed float64) *LessonScreen {
	if speed <= 0 {
		speed = 1
	}
	return &LessonScreen{
		engine:   engine,
		lessonID: lessonID,
		resume:   resume,
		speed:    speed,
	}
}

func (s *LessonScreen) Init() tea.Cmd {
	ctx := context.Background()
	var err error
	if s.resume {
		err = s.engine.ResumeLesson(ctx, s.lessonID)
	} else {
		err = s.engine.StartLesson(ctx, s.lessonID)
	}
	if err != nil {
		s.failed = true
		s.status = apperr.Message(err)
		return nil
	}
	s.lesson, _ = s.engine.Catalog().Lesson(s.lessonID)
	s.state = s.engine.Playback()
	return s.tick()
}

func (s *LessonScreen) tick() tea.Cmd {
	gen := s.gen
	return tea.Tick(TickInterval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// Leave pauses playback and remembers the cursor.
func (s *LessonScreen) Leave() {
	s.stopped = true
	if !s.failed {
		s.engine.SuspendLesson()
	}
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.failed {
		return s, nil
	}

	switch msg := msg.(type) {
	case tickMsg:
		if s.stopped || msg.gen != s.gen {
			return s, nil
		}
		if s.state.IsPlaying {
			if _, err := s.engine.Tick(s.speed); err != nil {
				s.status = apperr.Message(err)
			}
			s.state = s.engine.Playback()
		}
		return s, s.tick()

	case screen.ResumedMsg:
		// The tick chain died while another screen was on top.
		s.gen++
		s.state = s.engine.Playback()
		return s, s.tick()

	case tea.KeyMsg:
		return s, s.handleKey(msg.String())
	}
	return s, nil
}

func (s *LessonScreen) handleKey(key string) tea.Cmd {
	switch key {
	case "space", "p":
		s.engine.TogglePlay()
	case "left", "h":
		s.seek(s.state.WatchedSeconds - SeekStep)
	case "right", "l":
		s.seek(s.state.WatchedSeconds + SeekStep)
	case "r":
		if err := s.engine.StartLesson(context.Background(), s.lessonID); err != nil {
			s.status = apperr.Message(err)
		}
	case "c":
		s.complete()
	case "q":
		return func() tea.Msg { return router.PopScreenMsg{} }
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			return s.openQuiz(int(key[0] - '1'))
		}
	}
	s.state = s.engine.Playback()
	return nil
}

func (s *LessonScreen) seek(target float64) {
	target = max(0, min(target, s.state.DurationSeconds))
	if err := s.engine.Seek(target); err != nil {
		s.status = apperr.Message(err)
	}
}

func (s *LessonScreen) complete() {
	out, err := s.engine.CompleteLesson(context.Background())
	if err != nil {
		s.status = apperr.Message(err)
		return
	}
	s.status = fmt.Sprintf("Lesson complete! +%d XP", out.XPAwarded)
	if out.LeveledUp() {
		s.status += fmt.Sprintf("  Level %d reached", out.Progress.Level)
	}
}

func (s *LessonScreen) openQuiz(i int) tea.Cmd {
	if s.lesson == nil || i >= len(s.lesson.Quizzes) {
		return nil
	}
	attempt, err := s.engine.StartQuiz(s.lesson.Quizzes[i].Quiz.QuizID())
	if err != nil {
		s.status = apperr.Message(err)
		return nil
	}
	s.engine.Pause()
	s.state = s.engine.Playback()
	player := quizplay.New(s.engine, attempt)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: player}
	}
}

func (s *LessonScreen) View(width, height int) string {
	if s.failed || s.lesson == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render(s.status))
	}

	cw := components.ContentWidth(width)
	var sections []string

	sections = append(sections, theme.Title.Width(cw).Render(s.lesson.Title))
	if s.lesson.Description != "" {
		sections = append(sections, theme.Subtitle.Width(cw).Render(s.lesson.Description))
	}

	var accent color.Color
	if s.engine.LessonState(s.lessonID) == gamification.LessonEligible {
		accent = theme.ArcadeYellow
	}
	sections = append(sections, components.ArcadeCard(s.renderPlayer(cw), cw, accent))

	if len(s.lesson.KeyPoints) > 0 {
		var b strings.Builder
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("KEY POINTS"))
		for _, kp := range s.lesson.KeyPoints {
			b.WriteString("\n• " + kp)
		}
		sections = append(sections, lipgloss.NewStyle().Width(cw).Render(b.String()))
	}

	if len(s.lesson.Quizzes) > 0 {
		var b strings.Builder
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("QUIZZES"))
		for i, q := range s.lesson.Quizzes {
			if i >= 9 {
				break
			}
			fmt.Fprintf(&b, "\n[%d] %s  %s", i+1, q.Quiz.Kind().DisplayName(),
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("+%d XP", q.Quiz.Reward())))
		}
		sections = append(sections, lipgloss.NewStyle().Width(cw).Render(b.String()))
	}

	if s.status != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(s.status))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n\n"))
}

func (s *LessonScreen) renderPlayer(cw int) string {
	icon := "▶"
	if s.state.IsPlaying {
		icon = "❚❚"
	}
	clock := fmt.Sprintf("%s %s / %s", icon, formatClock(s.state.WatchedSeconds), formatClock(s.state.DurationSeconds))
	bar := components.NewBar(s.state.Fraction(), cw-8).Marker(playback.CompletionPercent / 100.0)

	st := s.engine.LessonState(s.lessonID)
	stateStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	switch st {
	case gamification.LessonCompleted:
		stateStyle = theme.Correct
	case gamification.LessonEligible:
		stateStyle = lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	}

	return clock + "\n" + bar.View() + "\n" + stateStyle.Render(strings.ToUpper(st.String()))
}

func (s *LessonScreen) Title() string {
	if s.lesson == nil {
		return "Lesson"
	}
	return s.lesson.Title
}

// KeyHints returns the key binding hints for the footer.
func (s *LessonScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Play/Pause"},
		{Key: "←→", Description: "Seek"},
		{Key: "c", Description: "Complete"},
		{Key: "1-9", Description: "Quiz"},
		{Key: "Esc", Description: "Back"},
	}
}

// formatClock renders seconds as m:ss.
func formatClock(sec float64) string {
	total := int(sec)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
