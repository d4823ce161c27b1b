package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edusmart/internal/ui/theme"
)

type blankMark int

const (
	unmarked blankMark = iota
	markedRight
	markedWrong
)

// BlankInput is one numbered answer field of a fill-in-the-blanks quiz.
// Once marked it stops accepting input.
type BlankInput struct {
	input textinput.Model
	mark  blankMark
	want  string
}

// NewBlankInput returns the field for blank number n (1-based) accepting up
// to limit characters.
func NewBlankInput(n, limit int) BlankInput {
	in := textinput.New()
	in.Prompt = fmt.Sprintf("[%d] ", n)
	in.Placeholder = "type your answer"
	in.CharLimit = limit
	in.SetWidth(limit)
	return BlankInput{input: in}
}

func (b *BlankInput) Focus() tea.Cmd { return b.input.Focus() }

func (b *BlankInput) Blur() { b.input.Blur() }

// Focused reports whether the field has keyboard focus.
func (b BlankInput) Focused() bool { return b.input.Focused() }

func (b BlankInput) Update(msg tea.Msg) (BlankInput, tea.Cmd) {
	if b.mark != unmarked {
		return b, nil
	}
	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	return b, cmd
}

// Value returns the answer without surrounding spaces.
func (b BlankInput) Value() string {
	return strings.TrimSpace(b.input.Value())
}

// SetValue replaces the field content.
func (b *BlankInput) SetValue(s string) { b.input.SetValue(s) }

// Filled reports whether anything but spaces was typed.
func (b BlankInput) Filled() bool { return b.Value() != "" }

// Mark locks the field and shows whether it was right. A wrong field also
// shows want.
func (b *BlankInput) Mark(correct bool, want string) {
	b.input.Blur()
	b.want = want
	b.mark = markedWrong
	if correct {
		b.mark = markedRight
	}
}

func (b BlankInput) View() string {
	view := b.input.View()
	switch b.mark {
	case markedRight:
		view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	case markedWrong:
		view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗ "+b.want)
	}
	return view
}
