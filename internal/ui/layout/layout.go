// Package layout draws the header, footer and frame around every screen.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/edusmart/internal/ui/theme"
)

// Smallest terminal the UI renders in.
const (
	MinWidth  = 80
	MinHeight = 24
)

// gaugeCells is the width of the level gauge in the header.
const gaugeCells = 10

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the learner to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// HeaderStats is the learner summary shown on the right of the header.
type HeaderStats struct {
	Level    int
	XP       int
	Progress int // percent of the way to the next level
	Streak   int
}

// levelGauge renders progress toward the next level as a row of cells.
func levelGauge(percent int) string {
	filled := max(0, min(percent, 100)) * gaugeCells / 100
	return lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render(strings.Repeat("▰", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("▱", gaugeCells-filled))
}

// RenderHeader draws the brand on the left, the screen title in the middle
// and the learner stats on the right.
func RenderHeader(title string, stats HeaderStats, width int) string {
	accent := lipgloss.NewStyle().Foreground(theme.Accent)
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  EduSmart")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := strings.Join([]string{
		accent.Render(fmt.Sprintf("Lv %d", stats.Level)),
		levelGauge(stats.Progress),
		accent.Render(fmt.Sprintf("✦ %d XP", stats.XP)),
		accent.Render(fmt.Sprintf("★ %d day", stats.Streak)),
	}, "  ")

	inner := max(0, width-4)
	half := inner / 2
	leftHalf := left + strings.Repeat(" ", max(1, half-lipgloss.Width(left)-lipgloss.Width(center)/2))
	rest := max(1, inner-lipgloss.Width(leftHalf)-lipgloss.Width(center)-lipgloss.Width(right))

	return bar(width).Render(leftHalf + center + strings.Repeat(" ", rest) + right)
}

// RenderFooter draws the key hints.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, key.Render(h.Key)+" "+desc.Render(h.Description))
	}
	return bar(width).Render("  " + strings.Join(parts, "   "))
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// RenderFrame stacks header, content and footer, padding content to fill
// the space between them.
func RenderFrame(header, content, footer string, width, height int) string {
	body := max(0, height-lipgloss.Height(header)-lipgloss.Height(footer))
	return strings.Join([]string{
		header,
		lipgloss.NewStyle().Width(width).Height(body).Render(content),
		footer,
	}, "\n")
}
