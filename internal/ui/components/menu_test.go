package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type picked struct{ label string }

func items(labels ...string) []MenuItem {
	out := make([]MenuItem, len(labels))
	for i, l := range labels {
		out[i] = MenuItem{Label: l, Action: func() tea.Cmd {
			return func() tea.Msg { return picked{label: l} }
		}}
	}
	return out
}

func TestNewMenuSkipsDisabled(t *testing.T) {
	its := items("a", "b", "c")
	its[0].Disabled = true
	m := NewMenu(its)
	assert.Equal(t, 1, m.Selected)
}

func TestMenuNavigation(t *testing.T) {
	its := items("a", "b", "c", "d")
	its[2].Disabled = true
	m := NewMenu(its)

	tests := []struct {
		key  tea.KeyPressMsg
		want int
	}{
		{tea.KeyPressMsg{Code: tea.KeyUp}, 0},
		{tea.KeyPressMsg{Code: tea.KeyDown}, 1},
		{tea.KeyPressMsg{Code: tea.KeyDown}, 3},
		{tea.KeyPressMsg{Code: tea.KeyDown}, 3},
		{tea.KeyPressMsg{Code: 'k', Text: "k"}, 1},
	}
	for _, tt := range tests {
		m, _ = m.Update(tt.key)
		assert.Equal(t, tt.want, m.Selected, tt.key.String())
	}
}

func TestMenuEnterRunsAction(t *testing.T) {
	m := NewMenu(items("a", "b"))
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, picked{label: "b"}, cmd())
}

func TestSetDisabledMovesCursor(t *testing.T) {
	m := NewMenu(items("a", "b", "c"))
	m.SetDisabled(0, true)
	assert.Equal(t, 1, m.Selected)
	assert.Equal(t, map[int]bool{0: true}, m.Disabled())

	m.Selected = 2
	m.SetDisabled(2, true)
	assert.Equal(t, 1, m.Selected, "falls back to the previous item")

	m.SetDisabled(0, false)
	assert.Empty(t, m.Disabled()[0])
	m.SetDisabled(9, true)
	assert.Len(t, m.Items, 3)
}

func TestBarView(t *testing.T) {
	assert.Contains(t, NewBar(0.5, 20).View(), " 50%")
	assert.Contains(t, NewBar(2, 20).View(), "100%")
	assert.NotContains(t, NewBar(0.3, 20).HidePercent().View(), "%")
	assert.Contains(t, NewBar(0.3, 30).Label("XP").View(), "XP")
	assert.Contains(t, NewBar(0.3, 30).Marker(0.99).View(), "│")
	assert.NotContains(t, NewBar(0.3, 30).View(), "│")
}

func TestArcadeButtonStates(t *testing.T) {
	assert.Contains(t, ArcadeButton("GO", ButtonSelected, 12), "▸ GO")
	assert.NotContains(t, ArcadeButton("GO", ButtonIdle, 12), "▸")
	assert.NotContains(t, ArcadeButton("GO", ButtonDisabled, 12), "▸")
}

func TestContentWidth(t *testing.T) {
	assert.Equal(t, 20, ContentWidth(10))
	assert.Equal(t, 54, ContentWidth(60))
	assert.Equal(t, 76, ContentWidth(200))
}
