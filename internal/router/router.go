// Package router keeps the stack of screens the learner has navigated
// through and routes messages to the one on top.
package router

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/edusmart/internal/screen"
)

// PushScreenMsg opens Screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg closes the active screen.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the active screen for Screen.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// PopToRootMsg closes every screen above the root.
type PopToRootMsg struct{}

// BreadcrumbSeparator joins screen titles in Breadcrumb.
const BreadcrumbSeparator = " › "

// Router is a stack of screens. The root is never removed.
type Router struct {
	stack []screen.Screen
}

// New creates a router rooted at root.
func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Active returns the screen on top of the stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of open screens.
func (r *Router) Depth() int { return len(r.stack) }

// Breadcrumb joins the titles of the open screens from root to top,
// skipping screens without a title.
func (r *Router) Breadcrumb() string {
	titles := make([]string, 0, len(r.stack))
	for _, s := range r.stack {
		if t := s.Title(); t != "" {
			titles = append(titles, t)
		}
	}
	return strings.Join(titles, BreadcrumbSeparator)
}

// Push opens s on top and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop closes the active screen and resumes the one below it. The root
// stays.
func (r *Router) Pop() tea.Cmd {
	return r.truncate(len(r.stack) - 1)
}

// PopToRoot closes every screen above the root and resumes it.
func (r *Router) PopToRoot() tea.Cmd {
	return r.truncate(1)
}

// Replace closes the active screen and puts s in its place. s gets Init, not
// ResumedMsg.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	top := len(r.stack) - 1
	leave(r.stack[top])
	r.stack[top] = s
	return s.Init()
}

// truncate shrinks the stack to n screens, top first, and resumes the new
// top. n below 1 is treated as 1.
func (r *Router) truncate(n int) tea.Cmd {
	n = max(n, 1)
	if n >= len(r.stack) {
		return nil
	}
	for i := len(r.stack) - 1; i >= n; i-- {
		leave(r.stack[i])
		r.stack[i] = nil
	}
	r.stack = r.stack[:n]
	return r.forward(screen.ResumedMsg{})
}

func leave(s screen.Screen) {
	if l, ok := s.(screen.Leaver); ok {
		l.Leave()
	}
}

// forward delivers msg to the active screen, keeping whatever screen value
// it returns.
func (r *Router) forward(msg tea.Msg) tea.Cmd {
	active := r.Active()
	if active == nil {
		return nil
	}
	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// Update applies navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	case PopToRootMsg:
		return r.PopToRoot()
	default:
		return r.forward(msg)
	}
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if active := r.Active(); active != nil {
		return active.View(width, height)
	}
	return ""
}
