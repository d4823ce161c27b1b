package activity

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edusmart/internal/gamification"
	"github.com/abhisek/edusmart/internal/screen"
	"github.com/abhisek/edusmart/internal/store"
	"github.com/abhisek/edusmart/internal/ui/layout"
	"github.com/abhisek/edusmart/internal/ui/theme"
)

const (
	// Days is the length of the daily XP chart.
	Days = 7

	recentLimit = 8
	chartHeight = 6
)

type activityLoadedMsg struct {
	Daily   []store.DailyXPRecord
	Stats   store.QuizStats
	Quizzes []store.QuizEventRecord
	Unlocks []store.AchievementEventRecord
	Err     error
}

// ActivityScreen shows XP over the last week, quiz statistics and recent
// events from the event log.
type ActivityScreen struct {
	engine    *gamification.Engine
	eventRepo store.EventRepo
	now       func() time.Time

	daily   []store.DailyXPRecord
	stats   store.QuizStats
	quizzes []store.QuizEventRecord
	unlocks []store.AchievementEventRecord
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*ActivityScreen)(nil)
var _ screen.KeyHintProvider = (*ActivityScreen)(nil)

// New creates a new ActivityScreen.
func New(engine *gamification.Engine, eventRepo store.EventRepo) *ActivityScreen {
	return &ActivityScreen{
		engine:    engine,
		eventRepo: eventRepo,
		now:       time.Now,
	}
}

func (s *ActivityScreen) Init() tea.Cmd {
	return s.load()
}

func (s *ActivityScreen) load() tea.Cmd {
	userID := s.engine.UserID()
	to := s.now().UTC()
	from := to.Truncate(24*time.Hour).AddDate(0, 0, -(Days - 1))
	return func() tea.Msg {
		ctx := context.Background()

		daily, err := s.eventRepo.DailyXP(ctx, userID, from, to)
		if err != nil {
			return activityLoadedMsg{Err: err}
		}
		stats, err := s.eventRepo.QuizStats(ctx, userID)
		if err != nil {
			return activityLoadedMsg{Err: err}
		}
		opts := store.QueryOpts{UserID: userID, Limit: recentLimit}
		quizzes, err := s.eventRepo.QueryQuizEvents(ctx, opts)
		if err != nil {
			return activityLoadedMsg{Err: err}
		}
		unlocks, err := s.eventRepo.QueryAchievementEvents(ctx, opts)
		if err != nil {
			return activityLoadedMsg{Err: err}
		}
		return activityLoadedMsg{Daily: daily, Stats: stats, Quizzes: quizzes, Unlocks: unlocks}
	}
}

func (s *ActivityScreen) Title() string {
	return "Activity"
}

func (s *ActivityScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "r", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ActivityScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case activityLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.errMsg = ""
			s.daily = msg.Daily
			s.stats = msg.Stats
			s.quizzes = msg.Quizzes
			s.unlocks = msg.Unlocks
		}
		s.loaded = true
		return s, nil

	case screen.ResumedMsg:
		return s, s.load()

	case tea.KeyMsg:
		if msg.String() == "r" {
			return s, s.load()
		}
	}
	return s, nil
}

// Series returns XP per day for the last Days days, oldest first, with
// zero for days without XP.
func (s *ActivityScreen) Series() []store.DailyXPRecord {
	today := s.now().UTC().Truncate(24 * time.Hour)
	byDay := make(map[time.Time]int, len(s.daily))
	for _, d := range s.daily {
		byDay[d.Day.UTC()] = d.XP
	}
	out := make([]store.DailyXPRecord, Days)
	for i := range out {
		day := today.AddDate(0, 0, i-(Days-1))
		out[i] = store.DailyXPRecord{Day: day, XP: byDay[day]}
	}
	return out
}

func (s *ActivityScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading activity...")
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		sectionTitle("XP · LAST 7 DAYS"),
		renderChart(s.Series()),
		"",
		sectionTitle("QUIZZES"),
		renderStats(s.stats),
		"",
		sectionTitle("HABITS"),
		renderHabits(s.engine.Activity()),
	)

	right := lipgloss.JoinVertical(lipgloss.Left,
		sectionTitle("RECENT QUIZZES"),
		renderQuizzes(s.quizzes),
		"",
		sectionTitle("RECENT ACHIEVEMENTS"),
		renderUnlocks(s.unlocks),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(width/2).Padding(1, 2).Render(left),
		lipgloss.NewStyle().Width(width-width/2).Padding(1, 2).Render(right),
	)
	return body
}

func sectionTitle(s string) string {
	return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(s)
}

func renderChart(series []store.DailyXPRecord) string {
	peak := 0
	for _, d := range series {
		peak = max(peak, d.XP)
	}

	var rows []string
	for level := chartHeight; level >= 1; level-- {
		var cells []string
		for _, d := range series {
			cell := "    "
			if peak > 0 && d.XP*chartHeight >= level*peak {
				cell = lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render(" ██ ")
			}
			cells = append(cells, cell)
		}
		rows = append(rows, strings.Join(cells, ""))
	}

	var labels, values []string
	for _, d := range series {
		labels = append(labels, fmt.Sprintf(" %-3s", d.Day.Format("Mon")[:2]))
		values = append(values, fmt.Sprintf("%4d", d.XP))
	}
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	rows = append(rows, dim.Render(strings.Join(labels, "")), dim.Render(strings.Join(values, "")))
	return strings.Join(rows, "\n")
}

func renderStats(st store.QuizStats) string {
	if st.Attempts == 0 {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("No quizzes yet.")
	}
	return fmt.Sprintf("Attempts: %d   Passed: %d   Perfect: %d\nAverage score: %.0f%%",
		st.Attempts, st.Passed, st.Perfect, st.AverageScore)
}

func renderHabits(a gamification.Activity) string {
	return fmt.Sprintf("Lessons: %d   Logins: %d\nStreak: %d days (best %d)\nNight sessions: %d   Fast lessons: %d",
		a.LessonsCompleted, a.Logins, a.CurrentStreak, a.BestStreak, a.NightSessions, a.FastLessons)
}

func renderQuizzes(records []store.QuizEventRecord) string {
	if len(records) == 0 {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("Nothing yet.")
	}
	var lines []string
	for _, r := range records {
		mark, style := "✗", lipgloss.NewStyle().Foreground(theme.Error)
		if r.Passed {
			mark, style = "✓", lipgloss.NewStyle().Foreground(theme.Success)
		}
		lines = append(lines, style.Render(mark)+fmt.Sprintf(" %-16s %3d%%  +%d XP", r.QuizID, r.Score, r.Award))
	}
	return strings.Join(lines, "\n")
}

func renderUnlocks(records []store.AchievementEventRecord) string {
	if len(records) == 0 {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("Nothing yet.")
	}
	var lines []string
	for _, r := range records {
		style := lipgloss.NewStyle().Foreground(theme.RarityColor(r.Rarity))
		lines = append(lines, style.Render("★ "+r.Name)+
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(" "+r.Timestamp.Format("Jan 2 15:04")))
	}
	return strings.Join(lines, "\n")
}
