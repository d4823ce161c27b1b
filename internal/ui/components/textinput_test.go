package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func typeText(b BlankInput, s string) BlankInput {
	for _, r := range s {
		b, _ = b.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return b
}

func TestBlankInputTrimsValue(t *testing.T) {
	b := NewBlankInput(1, 20)
	assert.False(t, b.Filled())

	b.Focus()
	b = typeText(b, " var ")
	assert.Equal(t, "var", b.Value())
	assert.True(t, b.Filled())
	assert.Contains(t, b.View(), "[1]")
}

func TestBlankInputLockedAfterMark(t *testing.T) {
	b := NewBlankInput(2, 20)
	b.Focus()
	b = typeText(b, "let")

	b.Mark(false, "var")
	assert.False(t, b.Focused())
	b = typeText(b, "x")
	assert.Equal(t, "let", b.Value())
	assert.Contains(t, b.View(), "✗ var")

	ok := NewBlankInput(3, 20)
	ok.SetValue("var")
	ok.Mark(true, "var")
	assert.Contains(t, ok.View(), "✓")
}
