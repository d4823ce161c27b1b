package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/edusmart/internal/gamification"
	"github.com/abhisek/edusmart/internal/progress"
	"github.com/abhisek/edusmart/internal/router"
	"github.com/abhisek/edusmart/internal/screen"
	"github.com/abhisek/edusmart/internal/screens/activity"
	"github.com/abhisek/edusmart/internal/screens/courses"
	"github.com/abhisek/edusmart/internal/screens/gallery"
	lessonscreen "github.com/abhisek/edusmart/internal/screens/lesson"
	"github.com/abhisek/edusmart/internal/screens/placeholder"
	"github.com/abhisek/edusmart/internal/store"
	"github.com/abhisek/edusmart/internal/ui/components"
)

const (
	itemContinue = iota
	itemCourses
	itemAchievements
	itemActivity
	itemExit
)

// HomeScreen is the learner dashboard.
type HomeScreen struct {
	engine     *gamification.Engine
	menu       components.Menu
	menuLabels []string

	progress      progress.State
	streak        int
	unlocked      int
	total         int
	currentLesson string
	mascotVariant MascotVariant
	hint          string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(engine *gamification.Engine, eventRepo store.EventRepo, playbackSpeed float64) *HomeScreen {
	h := &HomeScreen{
		engine:     engine,
		menuLabels: []string{"CONTINUE", "COURSES", "ACHIEVEMENTS", "ACTIVITY", "EXIT"},
	}

	items := []components.MenuItem{
		{Label: h.menuLabels[itemContinue], Action: func() tea.Cmd {
			if h.currentLesson == "" {
				return nil
			}
			return push(lessonscreen.New(engine, h.currentLesson, true, playbackSpeed))
		}},
		{Label: h.menuLabels[itemCourses], Action: func() tea.Cmd {
			return push(courses.New(engine, playbackSpeed))
		}},
		{Label: h.menuLabels[itemAchievements], Action: func() tea.Cmd {
			return push(gallery.New(engine))
		}},
		{Label: h.menuLabels[itemActivity], Action: func() tea.Cmd {
			if eventRepo == nil {
				return push(placeholder.New("Activity", "Activity history needs a database."))
			}
			return push(activity.New(engine, eventRepo))
		}},
		{Label: h.menuLabels[itemExit], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	h.refresh()
	return h
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

// refresh reloads dashboard figures from the engine.
func (h *HomeScreen) refresh() {
	h.progress = h.engine.Progress()
	h.streak = h.engine.Activity().CurrentStreak
	_, h.unlocked = h.engine.AchievementCounts()
	h.total = len(h.engine.Catalog().Achievements)

	h.currentLesson = ""
	if l, ok := h.engine.CurrentLesson(); ok && !h.engine.IsCompleted(l.ID) {
		h.currentLesson = l.ID
	}
	h.menu.SetDisabled(itemContinue, h.currentLesson == "")

	h.mascotVariant, h.hint = h.mood()
}

// mood picks the tutor's expression and what it says.
func (h *HomeScreen) mood() (MascotVariant, string) {
	if unlocks := h.engine.SessionUnlocks(); len(unlocks) > 0 {
		last := unlocks[len(unlocks)-1]
		return MascotCelebrating, fmt.Sprintf("You unlocked %s!", last.Name)
	}
	if h.currentLesson != "" {
		l, _ := h.engine.Catalog().Lesson(h.currentLesson)
		return MascotAlert, fmt.Sprintf("Finish %q to earn %d XP.", l.Title, l.XPReward)
	}
	if h.progress.TotalXP == 0 {
		return MascotIdle, "Pick a course to begin."
	}
	return MascotIdle, fmt.Sprintf("%d XP until level %d.", h.progress.XPToNextLevel, h.progress.Level+1)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case screen.ResumedMsg, gamification.Event:
		h.refresh()
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 34 || width < 100

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, centered(cw, RenderMascot(h.mascotVariant, h.hint)))
	}
	sections = append(sections,
		renderStats(h.progress, h.streak, h.unlocked, h.total, cw, compact),
		renderMenu(h.menuLabels, h.menu.Selected, h.menu.Disabled(), cw, compact),
	)

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
