package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMultiChoiceNavigation(t *testing.T) {
	m := NewMultiChoice("2+2?", []string{"3", "4", "5"})

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 2, m.Selected)
	assert.False(t, m.Answered())

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.True(t, m.Answered())
	assert.Equal(t, 1, m.Chosen)
}

func TestMultiChoiceLetterKeys(t *testing.T) {
	m := NewMultiChoice("", []string{"x", "y", "z"})

	m, _ = m.Update(key('c'))
	assert.Equal(t, 2, m.Chosen)

	m, _ = m.Update(key('q'))
	assert.Equal(t, 2, m.Chosen, "out-of-range letter is ignored")
}

func TestMultiChoiceReveal(t *testing.T) {
	m := NewMultiChoice("pick", []string{"a", "b"})
	m, _ = m.Update(key('b'))
	m.Reveal(1)

	assert.True(t, m.IsCorrect())
	assert.True(t, m.Revealed())

	m, _ = m.Update(key('a'))
	assert.Equal(t, 1, m.Chosen, "revealed component ignores input")
}

func TestMultiChoiceView(t *testing.T) {
	m := NewMultiChoice("Capital of France?", []string{"Paris", "Rome"})
	v := m.View()
	for _, want := range []string{"Capital of France?", "A)", "Paris", "B)", "Rome"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
