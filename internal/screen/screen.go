// Package screen defines what the router needs from a page of the TUI.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/edusmart/internal/ui/layout"
)

// Screen is one page on the router stack.
type Screen interface {
	// Init runs once when the screen is pushed or swapped in.
	Init() tea.Cmd

	// Update may return a different Screen to take this one's place.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View draws the area between header and footer.
	View(width, height int) string

	// Title names the screen in the header breadcrumb. Empty hides it.
	Title() string
}

// KeyHintProvider replaces the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// ResumedMsg tells a screen it is on top again because the screens above it
// were closed. Screens showing learner progress reload on it.
type ResumedMsg struct{}

// Leaver is notified when its screen is closed or replaced, so it can stop
// timers or suspend playback.
type Leaver interface {
	Leave()
}
