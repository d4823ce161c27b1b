package placeholder

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestPlaceholder(t *testing.T) {
	p := New("Activity", "")
	assert.Equal(t, "Activity", p.Title())
	assert.Nil(t, p.Init())

	next, cmd := p.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Same(t, p, next)
	assert.Nil(t, cmd)

	view := p.View(60, 10)
	assert.Contains(t, view, "Activity")
	assert.Contains(t, view, DefaultMessage)
	assert.Len(t, p.KeyHints(), 1)
}
