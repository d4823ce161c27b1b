// Package theme holds the EduSmart palette and shared text styles.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0F172A")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")

	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

// Achievement rarity colors, from dull to bright.
var (
	RarityCommon    = lipgloss.Color("#94A3B8")
	RarityRare      = lipgloss.Color("#3B82F6")
	RarityEpic      = lipgloss.Color("#A855F7")
	RarityLegendary = lipgloss.Color("#F59E0B")
)

// RarityColor returns the badge color for a rarity name.
func RarityColor(rarity string) color.Color {
	switch rarity {
	case "rare":
		return RarityRare
	case "epic":
		return RarityEpic
	case "legendary":
		return RarityLegendary
	default:
		return RarityCommon
	}
}

// DifficultyColor returns the label color for a course difficulty.
func DifficultyColor(difficulty string) color.Color {
	switch difficulty {
	case "intermediate":
		return ArcadeYellow
	case "advanced":
		return Error
	default:
		return Success
	}
}

// Text styles
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
