package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edusmart/internal/router"
	"github.com/abhisek/edusmart/internal/screen"
	"github.com/abhisek/edusmart/internal/ui/theme"
)

// Splash timeline. The cap appears first, the tassel starts swinging at
// capSettled and the banner with the greeting fades in at bannerIn.
const (
	frameInterval = 100 * time.Millisecond
	capSettled    = 500 * time.Millisecond
	bannerIn      = 1500 * time.Millisecond
	splashEnd     = 4500 * time.Millisecond
)

// Tagline is shown under the banner once the splash settles.
const Tagline = "Learn, level up, unlock!"

// capFrames animate the graduation cap tassel.
var capFrames = [...]string{
	`      ▁▁▁▁▁▁▁
  ▁▁▁╱       ╲▁▁▁
 ╱  EDU · SMART  ╲
 ╲▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁╱
     │       │  ╿
     ╰───────╯  ◆`,
	`      ▁▁▁▁▁▁▁
  ▁▁▁╱       ╲▁▁▁
 ╱  EDU · SMART  ╲
 ╲▁▁▁▁▁▁▁▁▁▁▁▁▁▁▁╱
     │       │   ╲
     ╰───────╯    ◆`,
}

// Greeting personalizes the splash.
type Greeting struct {
	Name      string
	Level     int
	Returning bool
}

func (g Greeting) String() string {
	switch {
	case g.Name == "":
		return "Welcome!"
	case g.Returning:
		return fmt.Sprintf("Welcome back, %s! You are level %d.", g.Name, g.Level)
	default:
		return fmt.Sprintf("Welcome, %s! Your first lesson is waiting.", g.Name)
	}
}

type frameMsg struct{}

// WelcomeScreen plays the splash until the learner presses a key, then
// replaces itself with the dashboard.
type WelcomeScreen struct {
	next     func() screen.Screen
	greeting Greeting
	elapsed  time.Duration
	frame    int
	done     bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a splash that hands over to the screen built by next.
func New(next func() screen.Screen, greeting Greeting) *WelcomeScreen {
	return &WelcomeScreen{next: next, greeting: greeting}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return nextFrame() }

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case frameMsg:
		if w.done {
			return w, nil
		}
		w.elapsed = min(w.elapsed+frameInterval, splashEnd)
		w.frame++
		return w, nextFrame()
	case tea.KeyPressMsg:
		return w, w.leave()
	}
	return w, nil
}

// leave builds the next screen once; later keys are ignored.
func (w *WelcomeScreen) leave() tea.Cmd {
	if w.done {
		return nil
	}
	w.done = true
	next := w.next()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (w *WelcomeScreen) View(width, height int) string {
	art := capFrames[0]
	if w.elapsed >= capSettled {
		art = capFrames[(w.frame/3)%len(capFrames)]
	}
	parts := []string{lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(art)}

	if w.elapsed >= bannerIn {
		parts = append(parts,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(Tagline),
			lipgloss.NewStyle().Foreground(theme.Secondary).Render(w.greeting.String()),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key to continue"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(parts, "\n"))
}
