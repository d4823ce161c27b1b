package components

import (
	tea "charm.land/bubbletea/v2"
)

// MenuItem is one selectable entry. Disabled entries are skipped by the
// cursor and ignore enter.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu tracks the cursor over a list of items. Rendering is left to the
// owning screen.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.Selected = m.step(-1, 1)
	if m.Selected < 0 {
		m.Selected = 0
	}
	return m
}

// SetDisabled enables or disables item i. Disabling the selected item
// moves the cursor to the next enabled one.
func (m *Menu) SetDisabled(i int, disabled bool) {
	if i < 0 || i >= len(m.Items) {
		return
	}
	m.Items[i].Disabled = disabled
	if disabled && i == m.Selected {
		if next := m.step(i, 1); next >= 0 {
			m.Selected = next
		} else if prev := m.step(i, -1); prev >= 0 {
			m.Selected = prev
		}
	}
}

// Disabled reports which items are disabled, by index.
func (m Menu) Disabled() map[int]bool {
	out := make(map[int]bool, len(m.Items))
	for i, it := range m.Items {
		if it.Disabled {
			out[i] = true
		}
	}
	return out
}

// step returns the first enabled index after from in direction dir, or -1.
func (m Menu) step(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			return i
		}
	}
	return -1
}

// Update moves the cursor on up/down and runs the selected action on enter.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if i := m.step(m.Selected, -1); i >= 0 {
			m.Selected = i
		}
	case "down", "j":
		if i := m.step(m.Selected, 1); i >= 0 {
			m.Selected = i
		}
	case "enter":
		if m.Selected < 0 || m.Selected >= len(m.Items) {
			return m, nil
		}
		if it := m.Items[m.Selected]; !it.Disabled && it.Action != nil {
			return m, it.Action()
		}
	}
	return m, nil
}
