// Package placeholder shows a notice for sections with nothing to display.
package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edusmart/internal/screen"
	"github.com/abhisek/edusmart/internal/ui/layout"
	"github.com/abhisek/edusmart/internal/ui/theme"
)

// DefaultMessage is used when New gets an empty message.
const DefaultMessage = "Nothing to show yet."

// PlaceholderScreen is a titled notice.
type PlaceholderScreen struct {
	title   string
	message string
}

var (
	_ screen.Screen          = (*PlaceholderScreen)(nil)
	_ screen.KeyHintProvider = (*PlaceholderScreen)(nil)
)

func New(title, message string) *PlaceholderScreen {
	if message == "" {
		message = DefaultMessage
	}
	return &PlaceholderScreen{title: title, message: message}
}

func (p *PlaceholderScreen) Init() tea.Cmd { return nil }

func (p *PlaceholderScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return p, nil }

func (p *PlaceholderScreen) View(width, height int) string {
	heading := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(p.title)
	body := lipgloss.NewStyle().Foreground(theme.TextDim).Render(p.message)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, "ⓘ", heading, "", body))
}

func (p *PlaceholderScreen) Title() string { return p.title }

func (p *PlaceholderScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}
