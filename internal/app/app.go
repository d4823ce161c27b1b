package app

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edusmart/internal/gamification"
	"github.com/abhisek/edusmart/internal/logger"
	"github.com/abhisek/edusmart/internal/router"
	"github.com/abhisek/edusmart/internal/screen"
	"github.com/abhisek/edusmart/internal/screens/home"
	"github.com/abhisek/edusmart/internal/screens/welcome"
	"github.com/abhisek/edusmart/internal/store"
	"github.com/abhisek/edusmart/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Engine        *gamification.Engine
	EventRepo     store.EventRepo
	Feed          *Feed
	Logger        *logger.Logger
	PlaybackSpeed float64
	SkipWelcome   bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	engine    *gamification.Engine
	feed      *Feed
	log       *logger.Logger
	toasts    []toast
	nextToast int
	width     int
	height    int
}

// newAppModel creates a new AppModel starting at the welcome screen.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	homeFactory := func() screen.Screen {
		return home.New(opts.Engine, opts.EventRepo, opts.PlaybackSpeed)
	}
	var first screen.Screen
	if opts.SkipWelcome {
		first = homeFactory()
	} else {
		first = welcome.New(homeFactory, greetingFor(opts.Engine))
	}
	return AppModel{
		router: router.New(first),
		engine: opts.Engine,
		feed:   opts.Feed,
		log:    opts.Logger,
	}
}

func greetingFor(e *gamification.Engine) welcome.Greeting {
	if e == nil {
		return welcome.Greeting{}
	}
	p := e.Progress()
	return welcome.Greeting{
		Name:      e.UserID(),
		Level:     p.Level,
		Returning: p.TotalXP > 0 || len(e.CompletedLessons()) > 0,
	}
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.router.Active().Init()}
	if m.feed != nil {
		cmds = append(cmds, m.feed.wait())
	}
	return tea.Batch(cmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case engineEventMsg:
		cmd := m.onEngineEvent(msg.event)
		return m, cmd

	case toastExpiredMsg:
		m.toasts = removeToast(m.toasts, msg.id)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// onEngineEvent queues a toast for ev, lets the active screen refresh and
// waits for the next event.
func (m *AppModel) onEngineEvent(ev gamification.Event) tea.Cmd {
	cmds := []tea.Cmd{m.feed.wait()}
	if t, ok := toastFor(ev); ok {
		m.nextToast++
		t.id = m.nextToast
		m.toasts = append(m.toasts, t)
		if len(m.toasts) > maxToasts {
			m.toasts = m.toasts[len(m.toasts)-maxToasts:]
		}
		cmds = append(cmds, expireToast(t.id))
	}
	m.log.Debug("engine event", "kind", string(ev.Kind))
	cmds = append(cmds, m.router.Update(ev))
	return tea.Batch(cmds...)
}

func (m AppModel) headerStats() layout.HeaderStats {
	if m.engine == nil {
		return layout.HeaderStats{Level: 1}
	}
	p := m.engine.Progress()
	return layout.HeaderStats{
		Level:    p.Level,
		XP:       p.TotalXP,
		Progress: p.ProgressPercent,
		Streak:   m.engine.Activity().CurrentStreak,
	}
}

// title returns the breadcrumb, or just the active title when the
// breadcrumb would crowd the header.
func (m AppModel) title() string {
	crumb := m.router.Breadcrumb()
	if lipgloss.Width(crumb) <= m.width/2 {
		return crumb
	}
	if active := m.router.Active(); active != nil {
		return active.Title()
	}
	return ""
}

func (m AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	switch {
	case m.width == 0 || m.height == 0:
		return v
	case layout.IsTooSmall(m.width, m.height):
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(m.title(), m.headerStats(), m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)
	if t := renderToasts(m.toasts, m.width); t != "" {
		footer = t + "\n" + footer
	}

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the TUI and blocks until the learner quits.
func Run(opts Options) error {
	if opts.Engine == nil {
		return errors.New("app: engine is required")
	}
	m := newAppModel(opts)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		m.log.Error("tui exited", "error", err)
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
