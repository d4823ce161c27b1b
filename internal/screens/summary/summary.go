// Package summary shows the graded result of a quiz attempt.
package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edusmart/internal/gamification"
	"github.com/abhisek/edusmart/internal/quiz"
	"github.com/abhisek/edusmart/internal/router"
	"github.com/abhisek/edusmart/internal/screen"
	"github.com/abhisek/edusmart/internal/ui/components"
	"github.com/abhisek/edusmart/internal/ui/layout"
	"github.com/abhisek/edusmart/internal/ui/theme"
)

// QuizSummary is everything shown after a quiz is graded.
type QuizSummary struct {
	QuizTitle string
	Result    quiz.Result
	Outcome   gamification.Outcome
	Elapsed   time.Duration
}

// Stars rates the attempt from 0 to 3.
func (s *QuizSummary) Stars() int {
	switch res := s.Result; {
	case !res.Passed:
		return 0
	case res.Score >= gamification.HighScore:
		return 3
	case res.Score >= 70:
		return 2
	default:
		return 1
	}
}

// BonusXP is the XP earned beyond the quiz reward, from achievements
// unlocked by this attempt.
func (s *QuizSummary) BonusXP() int {
	if !s.Result.Passed {
		return s.Outcome.XPAwarded
	}
	return max(s.Outcome.XPAwarded-s.Result.XPReward, 0)
}

// SummaryScreen displays a graded quiz.
type SummaryScreen struct {
	summary *QuizSummary
	retry   func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates the results screen. retry builds a fresh attempt and may be
// nil.
func New(summary *QuizSummary, retry func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{summary: summary, retry: retry}
}

func (s *SummaryScreen) Init() tea.Cmd { return nil }

func (s *SummaryScreen) Title() string { return "Quiz Results" }

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	if s.retry != nil {
		hints = append(hints, layout.KeyHint{Key: "r", Description: "Retry"})
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch key.String() {
	case "enter", "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "r":
		if s.retry == nil {
			return s, nil
		}
		if next := s.retry(); next != nil {
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}
	}
	return s, nil
}

func renderStars(n int) string {
	on := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(strings.Repeat("★ ", n))
	off := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("☆ ", 3-n))
	return strings.TrimSpace(on + off)
}

func (s *SummaryScreen) rewards() []string {
	sum := s.summary
	if sum.Outcome.XPAwarded == 0 {
		return nil
	}
	xp := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	lines := []string{xp.Render(fmt.Sprintf("+%d XP", sum.Outcome.XPAwarded))}
	if bonus := sum.BonusXP(); bonus > 0 {
		lines = append(lines, dim.Render(fmt.Sprintf("quiz %d + bonus %d", sum.Outcome.XPAwarded-bonus, bonus)))
	}
	if sum.Outcome.LeveledUp() {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
			Render(fmt.Sprintf("Level up! Now level %d", sum.Outcome.Progress.Level)))
	}
	for _, u := range sum.Outcome.Unlocked {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.RarityColor(string(u.Rarity))).
			Render(fmt.Sprintf("★ %s %s  +%d XP", u.Rarity.DisplayName(), u.Name, u.XPReward)))
	}
	return lines
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}
	res := sum.Result
	cw := components.ContentWidth(width)

	headline, headStyle := "Quiz passed!", theme.Correct
	if !res.Passed {
		headline, headStyle = "Not quite. Try again!", theme.Incorrect
	}

	elapsed := fmt.Sprintf("%d:%02d", int(sum.Elapsed.Minutes()), int(sum.Elapsed.Seconds())%60)
	card := strings.Join([]string{
		headStyle.Render(headline),
		renderStars(sum.Stars()),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Render(
			fmt.Sprintf("Correct %d/%d   Score %d%%", res.CorrectCount, res.Total, res.Score)),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(res.Kind.DisplayName() + " · " + elapsed),
	}, "\n")

	sections := []string{
		theme.Title.Render(sum.QuizTitle),
		components.ArcadeCard(card, cw, nil),
	}
	if lines := s.rewards(); len(lines) > 0 {
		sections = append(sections, strings.Join(lines, "\n"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}
