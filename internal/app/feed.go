package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/edusmart/internal/gamification"
)

// DefaultFeedSize is the number of engine events buffered for the UI.
const DefaultFeedSize = 64

// Feed hands engine events to the UI. It implements gamification.Notifier.
type Feed struct {
	ch chan gamification.Event
}

var _ gamification.Notifier = (*Feed)(nil)

// NewFeed creates a feed buffering up to size events.
func NewFeed(size int) *Feed {
	if size <= 0 {
		size = DefaultFeedSize
	}
	return &Feed{ch: make(chan gamification.Event, size)}
}

// Notify enqueues e. Events are dropped when the buffer is full so the
// engine never blocks on a slow UI.
func (f *Feed) Notify(e gamification.Event) {
	select {
	case f.ch <- e:
	default:
	}
}

// engineEventMsg carries one engine event into the update loop.
type engineEventMsg struct {
	event gamification.Event
}

// wait returns a command that blocks until the next event arrives.
func (f *Feed) wait() tea.Cmd {
	return func() tea.Msg {
		return engineEventMsg{event: <-f.ch}
	}
}
