package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/edusmart/internal/ui/theme"
)

// minBarCells keeps the bar visible next to long labels.
const minBarCells = 4

// Bar is a horizontal fill gauge used for XP, lesson playback and
// achievement progress.
type Bar struct {
	fraction float64
	width    int
	label    string
	fill     color.Color
	marker   float64
	percent  bool
}

// NewBar creates a bar filled to fraction (clamped to [0, 1]) that renders
// width cells wide including the trailing percentage.
func NewBar(fraction float64, width int) Bar {
	return Bar{
		fraction: max(0, min(fraction, 1)),
		width:    width,
		fill:     theme.Secondary,
		percent:  true,
	}
}

// Label prefixes the bar with text.
func (b Bar) Label(s string) Bar {
	b.label = s
	return b
}

// Fill sets the color of the filled cells.
func (b Bar) Fill(c color.Color) Bar {
	b.fill = c
	return b
}

// Marker draws a tick at fraction at, e.g. the completion gate of a lesson.
func (b Bar) Marker(at float64) Bar {
	b.marker = at
	return b
}

// HidePercent drops the trailing percentage.
func (b Bar) HidePercent() Bar {
	b.percent = false
	return b
}

// View renders the bar.
func (b Bar) View() string {
	var sb strings.Builder
	if b.label != "" {
		sb.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(b.label))
		sb.WriteString("  ")
	}

	suffix := ""
	if b.percent {
		suffix = fmt.Sprintf("  %3d%%", int(b.fraction*100))
	}
	cells := max(minBarCells, b.width-lipgloss.Width(sb.String())-len(suffix))
	filled := int(float64(cells) * b.fraction)

	tick := -1
	if b.marker > 0 && b.marker < 1 {
		tick = int(float64(cells) * b.marker)
	}

	on := lipgloss.NewStyle().Background(b.fill)
	off := lipgloss.NewStyle().Background(theme.Border)
	for i := 0; i < cells; i++ {
		style := off
		if i < filled {
			style = on
		}
		cell := " "
		if i == tick {
			cell = "│"
			style = style.Foreground(theme.ArcadeYellow)
		}
		sb.WriteString(style.Render(cell))
	}

	if b.percent {
		sb.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix))
	}
	return sb.String()
}
