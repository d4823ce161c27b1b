package app

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edusmart/internal/gamification"
	"github.com/abhisek/edusmart/internal/ui/theme"
)

const (
	// ToastDuration is how long a toast stays on screen.
	ToastDuration = 4 * time.Second

	maxToasts = 3
)

type toast struct {
	id    int
	text  string
	style lipgloss.Style
}

type toastExpiredMsg struct {
	id int
}

// toastFor converts an engine event into toast text. Events that are
// already visible on the active screen return ok=false.
func toastFor(e gamification.Event) (toast, bool) {
	switch e.Kind {
	case gamification.EventLessonCompleted:
		return toast{
			text:  fmt.Sprintf("✓ Lesson complete  +%d XP", e.XP),
			style: lipgloss.NewStyle().Foreground(theme.Success).Bold(true),
		}, true
	case gamification.EventLeveledUp:
		return toast{
			text:  fmt.Sprintf("▲ Level up! You reached level %d", e.Level),
			style: lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true),
		}, true
	case gamification.EventAchievementUnlocked:
		if e.Achievement == nil {
			return toast{}, false
		}
		a := e.Achievement
		return toast{
			text:  fmt.Sprintf("★ %s unlocked (%s)  +%d XP", a.Name, a.Rarity.DisplayName(), a.XPReward),
			style: lipgloss.NewStyle().Foreground(theme.RarityColor(string(a.Rarity))).Bold(true),
		}, true
	case gamification.EventNotice:
		return toast{
			text:  "! " + e.Message,
			style: lipgloss.NewStyle().Foreground(theme.Accent),
		}, true
	}
	return toast{}, false
}

func expireToast(id int) tea.Cmd {
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func removeToast(toasts []toast, id int) []toast {
	out := toasts[:0]
	for _, t := range toasts {
		if t.id != id {
			out = append(out, t)
		}
	}
	return out
}

func renderToasts(toasts []toast, width int) string {
	if len(toasts) == 0 {
		return ""
	}
	lines := make([]string, 0, len(toasts))
	for _, t := range toasts {
		lines = append(lines, t.style.Render(t.text))
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Right).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}
