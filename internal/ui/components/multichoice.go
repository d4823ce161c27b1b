package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edusmart/internal/ui/theme"
)

// NoChoice marks a MultiChoice with nothing picked yet.
const NoChoice = -1

// MultiChoice is a multiple-choice selector component.
type MultiChoice struct {
	Question string
	Options  []string
	Selected int
	Chosen   int
	Correct  int
	revealed bool
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{
		Question: question,
		Options:  options,
		Chosen:   NoChoice,
		Correct:  NoChoice,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. Letter keys jump to
// and choose the matching option.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.revealed {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter", "space":
		if len(m.Options) > 0 {
			m.Chosen = m.Selected
		}
	default:
		if len(key) == 1 {
			if i := int(key[0] - 'a'); i >= 0 && i < len(m.Options) {
				m.Selected = i
				m.Chosen = i
			}
		}
	}

	return m, nil
}

// Answered reports whether an option has been chosen.
func (m MultiChoice) Answered() bool {
	return m.Chosen != NoChoice
}

// Reveal locks the component and highlights the correct option.
func (m *MultiChoice) Reveal(correct int) {
	m.Correct = correct
	m.revealed = true
}

// Revealed reports whether Reveal has been called.
func (m MultiChoice) Revealed() bool {
	return m.revealed
}

// IsCorrect returns true if the learner chose the correct answer.
func (m MultiChoice) IsCorrect() bool {
	return m.revealed && m.Chosen == m.Correct
}

// OptionLabel returns the letter shown before option i.
func OptionLabel(i int) string {
	return string(rune('A' + i))
}

// View renders the multiple-choice component.
func (m MultiChoice) View() string {
	var b strings.Builder
	if m.Question != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
		b.WriteString("\n\n")
	}

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.revealed {
			prefix = "▸ "
		}
		mark := " "
		if i == m.Chosen {
			mark = "●"
		}
		line := fmt.Sprintf("%s%s %s)  %s", prefix, mark, OptionLabel(i), opt)

		var style lipgloss.Style
		switch {
		case m.revealed && i == m.Correct:
			style = theme.Correct
		case m.revealed && i == m.Chosen:
			style = theme.Incorrect
		case m.revealed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}
