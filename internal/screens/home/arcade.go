package home

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/edusmart/internal/progress"
	"github.com/abhisek/edusmart/internal/screens/welcome"
	"github.com/abhisek/edusmart/internal/ui/components"
	"github.com/abhisek/edusmart/internal/ui/theme"
)

// buttonWidth is the width of each bordered menu button.
const buttonWidth = 22

func centered(cw int, s string) string {
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(s)
}

// renderTitle draws the banner, or its one-line form when space is short.
func renderTitle(cw int, compact bool) string {
	title := welcome.BannerArt
	if compact || cw < welcome.BannerWidth {
		title = welcome.BannerCompact
	}
	return centered(cw, lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(title))
}

type stat struct {
	label string
	value string
	color color.Color
}

func dashboardStats(p progress.State, streak, unlocked, total int) []stat {
	return []stat{
		{"LEVEL", fmt.Sprint(p.Level), theme.ArcadeYellow},
		{"XP", fmt.Sprint(p.TotalXP), theme.ArcadeCyan},
		{"STREAK", fmt.Sprintf("%dd", streak), theme.Accent},
		{"BADGES", fmt.Sprintf("%d/%d", unlocked, total), theme.Secondary},
	}
}

// renderStats shows the learner figures as tiles above a level progress
// bar. Compact mode packs the figures into one line.
func renderStats(p progress.State, streak, unlocked, total, cw int, compact bool) string {
	stats := dashboardStats(p, streak, unlocked, total)

	var top string
	if compact {
		parts := make([]string, len(stats))
		for i, s := range stats {
			parts[i] = lipgloss.NewStyle().Foreground(s.color).Bold(true).Render(s.label + " " + s.value)
		}
		top = strings.Join(parts, "  ")
	} else {
		tileWidth := max((cw-8)/len(stats), 8)
		tiles := make([]string, len(stats))
		for i, s := range stats {
			tiles[i] = lipgloss.NewStyle().
				Width(tileWidth).
				Align(lipgloss.Center).
				Render(lipgloss.NewStyle().Foreground(s.color).Bold(true).Render(s.value) + "\n" +
					lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.label))
		}
		top = lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
	}

	bar := components.NewBar(float64(p.ProgressPercent)/100, cw-6).
		Label(fmt.Sprintf("%d to go", p.XPToNextLevel)).
		Fill(theme.ArcadeCyan)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(top + "\n" + bar.View())
}

func buttonState(i, selected int, disabled map[int]bool) components.ButtonState {
	switch {
	case disabled[i]:
		return components.ButtonDisabled
	case i == selected:
		return components.ButtonSelected
	default:
		return components.ButtonIdle
	}
}

// renderMenu draws bordered buttons, or plain lines in compact mode where
// borders would overflow.
func renderMenu(items []string, selected int, disabled map[int]bool, cw int, compact bool) string {
	lines := make([]string, len(items))
	for i, label := range items {
		state := buttonState(i, selected, disabled)
		if !compact {
			lines[i] = components.ArcadeButton(label, state, buttonWidth)
			continue
		}
		switch state {
		case components.ButtonDisabled:
			lines[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Render("   " + label)
		case components.ButtonSelected:
			lines[i] = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		default:
			lines[i] = lipgloss.NewStyle().Foreground(theme.Text).Render("   " + label)
		}
	}
	return centered(cw, strings.Join(lines, "\n"))
}
