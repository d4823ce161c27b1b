package courses

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edusmart/internal/content"
	"github.com/abhisek/edusmart/internal/gamification"
	"github.com/abhisek/edusmart/internal/router"
	"github.com/abhisek/edusmart/internal/screen"
	lessonscreen "github.com/abhisek/edusmart/internal/screens/lesson"
	"github.com/abhisek/edusmart/internal/ui/components"
	"github.com/abhisek/edusmart/internal/ui/layout"
	"github.com/abhisek/edusmart/internal/ui/theme"
)

type rowKind int

const (
	rowCourseHeader rowKind = iota
	rowLesson
)

type row struct {
	kind   rowKind
	course *content.Course
	lesson *content.Lesson
}

// CoursesScreen lists every course with its lessons and progress.
type CoursesScreen struct {
	engine        *gamification.Engine
	playbackSpeed float64
	rows          []row
	cursor        int
	scrollOffset  int
	states        map[string]gamification.LessonState
	progress      map[string]gamification.CourseProgress
}

var _ screen.Screen = (*CoursesScreen)(nil)

// New creates a new CoursesScreen.
func New(engine *gamification.Engine, playbackSpeed float64) *CoursesScreen {
	cat := engine.Catalog()

	var rows []row
	for ci := range cat.Courses {
		c := &cat.Courses[ci]
		rows = append(rows, row{kind: rowCourseHeader, course: c})
		for li := range c.Lessons {
			rows = append(rows, row{kind: rowLesson, course: c, lesson: &c.Lessons[li]})
		}
	}

	s := &CoursesScreen{
		engine:        engine,
		playbackSpeed: playbackSpeed,
		rows:          rows,
	}

	for i, r := range s.rows {
		if r.kind == rowLesson {
			s.cursor = i
			break
		}
	}
	s.refresh()
	return s
}

// refresh reloads lesson states and course progress from the engine.
func (s *CoursesScreen) refresh() {
	s.states = make(map[string]gamification.LessonState)
	s.progress = make(map[string]gamification.CourseProgress)
	for _, r := range s.rows {
		switch r.kind {
		case rowCourseHeader:
			if p, ok := s.engine.CourseProgress(r.course.ID); ok {
				s.progress[r.course.ID] = p
			}
		case rowLesson:
			s.states[r.lesson.ID] = s.engine.LessonState(r.lesson.ID)
		}
	}
}

func (s *CoursesScreen) Init() tea.Cmd {
	return nil
}

func (s *CoursesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.ResumedMsg, gamification.Event:
		s.refresh()
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextCourse()
		case "enter":
			return s, s.openLesson()
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *CoursesScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("No courses in the catalog."))
	}

	s.adjustScroll(height)

	var lines []string
	for i := s.scrollOffset; i < len(s.rows) && len(lines) < height; i++ {
		r := s.rows[i]
		switch r.kind {
		case rowCourseHeader:
			lines = append(lines, s.renderCourseHeader(r.course, width))
		case rowLesson:
			lines = append(lines, s.renderLessonRow(r, i == s.cursor, width))
		}
	}

	return strings.Join(lines, "\n")
}

func (s *CoursesScreen) Title() string {
	return "Courses"
}

// KeyHints returns the key binding hints for the footer.
func (s *CoursesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Next course"},
		{Key: "Enter", Description: "Open lesson"},
		{Key: "Esc", Description: "Back"},
	}
}

// Selected returns the lesson under the cursor.
func (s *CoursesScreen) Selected() *content.Lesson {
	if s.cursor < 0 || s.cursor >= len(s.rows) {
		return nil
	}
	return s.rows[s.cursor].lesson
}

// moveCursor moves the cursor by delta, skipping course headers.
func (s *CoursesScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowLesson {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextCourse jumps the cursor to the first lesson of the next course,
// wrapping to the first course.
func (s *CoursesScreen) nextCourse() {
	if len(s.rows) == 0 {
		return
	}
	current := s.rows[s.cursor].course
	for i := 1; i <= len(s.rows); i++ {
		j := (s.cursor + i) % len(s.rows)
		if s.rows[j].kind == rowLesson && s.rows[j].course != current {
			s.cursor = j
			return
		}
	}
}

// adjustScroll ensures the cursor is visible within the viewport.
func (s *CoursesScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowCourseHeader {
		headerRow--
	}

	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

// openLesson pushes the lesson player for the lesson under the cursor.
func (s *CoursesScreen) openLesson() tea.Cmd {
	l := s.Selected()
	if l == nil {
		return nil
	}
	player := lessonscreen.New(s.engine, l.ID, true, s.playbackSpeed)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: player}
	}
}

func (s *CoursesScreen) renderCourseHeader(c *content.Course, width int) string {
	p := s.progress[c.ID]
	name := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(strings.ToUpper(c.Title))
	meta := "  " + lipgloss.NewStyle().Foreground(theme.DifficultyColor(c.Difficulty)).Render(c.Difficulty) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(" · %d/%d lessons", p.Completed, p.Total))
	bar := components.NewBar(float64(p.Percent())/100, min(30, width/3)).Fill(theme.Success)

	return lipgloss.NewStyle().
		Width(width).
		Padding(1, 0, 0, 2).
		Render(name + meta + "  " + bar.View())
}

// stateIcon returns the icon and color for a lesson state.
func stateIcon(st gamification.LessonState) (string, lipgloss.Style) {
	switch st {
	case gamification.LessonCompleted:
		return "✓", lipgloss.NewStyle().Foreground(theme.Success)
	case gamification.LessonEligible:
		return "◆", lipgloss.NewStyle().Foreground(theme.ArcadeYellow)
	case gamification.LessonInProgress:
		return "◐", lipgloss.NewStyle().Foreground(theme.Secondary)
	default:
		return "○", lipgloss.NewStyle().Foreground(theme.TextDim)
	}
}

func (s *CoursesScreen) renderLessonRow(r row, selected bool, width int) string {
	st := s.states[r.lesson.ID]
	icon, style := stateIcon(st)

	nameWidth := width - 4 - 3 - 10 - 18 - 4
	if nameWidth < 10 {
		nameWidth = 10
	}
	name := r.lesson.Title
	if len([]rune(name)) > nameWidth {
		name = string([]rune(name)[:nameWidth-1]) + "…"
	}

	nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		nameStyle = theme.Selected
	} else if st == gamification.LessonCompleted {
		nameStyle = lipgloss.NewStyle().Foreground(theme.Success)
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	return fmt.Sprintf("  %s%s %s  %s  %s",
		cursor,
		style.Render(icon),
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%4s · %3d XP", formatDuration(r.lesson.DurationSeconds), r.lesson.XPReward)),
		style.Render(fmt.Sprintf("%17s", st.String())),
	)
}

// formatDuration renders seconds as m:ss.
func formatDuration(sec float64) string {
	total := int(sec)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
