package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/edusmart/internal/ui/theme"
)

// Content width bounds shared by every arcade section.
const (
	maxContentWidth = 76
	minContentWidth = 20
	frameInset      = 6 // cabinet border plus inner padding
)

// ContentWidth returns the inner width all boxes on a screen render at so
// their edges line up.
func ContentWidth(frameWidth int) int {
	return max(minContentWidth, min(frameWidth-frameInset, maxContentWidth))
}

// CabinetFrame wraps content in the double-border cabinet, centered within
// width x height.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard wraps content in a rounded card cw wide. A nil accent uses the
// default border color.
func ArcadeCard(content string, cw int, accent color.Color) string {
	if accent == nil {
		accent = theme.Border
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// ButtonState selects how an arcade button is drawn.
type ButtonState int

const (
	ButtonIdle ButtonState = iota
	ButtonSelected
	ButtonDisabled
)

// ArcadeButton renders a bordered button width cells wide.
func ArcadeButton(label string, state ButtonState, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	switch state {
	case ButtonSelected:
		return style.
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow).
			Render("▸ " + label)
	case ButtonDisabled:
		return style.
			Foreground(theme.TextDim).
			BorderForeground(theme.Border).
			Render(label)
	default:
		return style.
			Foreground(theme.Text).
			BorderForeground(theme.Border).
			Render(label)
	}
}
