package home

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/edusmart/internal/gamification/gamificationtest"
	"github.com/abhisek/edusmart/internal/router"
	"github.com/abhisek/edusmart/internal/screen"
	"github.com/abhisek/edusmart/internal/screens/courses"
	"github.com/abhisek/edusmart/internal/screens/gallery"
	lessonscreen "github.com/abhisek/edusmart/internal/screens/lesson"
	"github.com/abhisek/edusmart/internal/screens/placeholder"
)

func enter(t *testing.T, h *HomeScreen) tea.Msg {
	t.Helper()
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	return cmd()
}

func TestContinueDisabledWithoutLesson(t *testing.T) {
	h := New(gamificationtest.NewEngine(t), nil, 1)
	assert.True(t, h.menu.Items[itemContinue].Disabled)
	assert.Equal(t, itemCourses, h.menu.Selected)
	assert.Equal(t, MascotIdle, h.mascotVariant)
	assert.Equal(t, "Pick a course to begin.", h.hint)
}

func TestContinueResumesCurrentLesson(t *testing.T) {
	e := gamificationtest.NewEngine(t)
	h := New(e, nil, 1)

	require.NoError(t, e.StartLesson(context.Background(), gamificationtest.LessonID))
	h.Update(screen.ResumedMsg{})
	assert.False(t, h.menu.Items[itemContinue].Disabled)
	assert.Equal(t, MascotAlert, h.mascotVariant)
	assert.Equal(t, `Finish "Hello, Go" to earn 50 XP.`, h.hint)

	h.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	require.Equal(t, itemContinue, h.menu.Selected)
	msg, ok := enter(t, h).(router.PushScreenMsg)
	require.True(t, ok)
	_, ok = msg.Screen.(*lessonscreen.LessonScreen)
	assert.True(t, ok)
}

func TestRefreshAfterUnlock(t *testing.T) {
	e := gamificationtest.NewEngine(t)
	h := New(e, nil, 1)
	assert.Equal(t, 2, h.total)
	assert.Zero(t, h.unlocked)

	ctx := context.Background()
	require.NoError(t, e.StartLesson(ctx, gamificationtest.LessonID))
	require.NoError(t, e.Seek(120))
	out, err := e.CompleteLesson(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, out.Events)

	h.Update(out.Events[0])
	assert.Equal(t, 1, h.unlocked)
	assert.Equal(t, 60, h.progress.TotalXP)
	assert.True(t, h.menu.Items[itemContinue].Disabled, "completed lesson is not continued")
	assert.Equal(t, MascotCelebrating, h.mascotVariant)
	assert.Equal(t, "You unlocked First Steps!", h.hint)
}

func TestRenderMascot(t *testing.T) {
	assert.NotContains(t, RenderMascot(MascotIdle, ""), "╭")
	withBubble := RenderMascot(MascotAlert, "Keep going")
	assert.Contains(t, withBubble, "Keep going")
	assert.Contains(t, withBubble, "(O,O)")
	assert.Contains(t, RenderMascot(MascotVariant(99), ""), "(o,o)", "unknown moods fall back to idle")
}

func TestMenuPushesScreens(t *testing.T) {
	tests := []struct {
		name  string
		moves int
		check func(t *testing.T, s screen.Screen)
	}{
		{"courses", 0, func(t *testing.T, s screen.Screen) {
			_, ok := s.(*courses.CoursesScreen)
			assert.True(t, ok)
		}},
		{"achievements", 1, func(t *testing.T, s screen.Screen) {
			_, ok := s.(*gallery.GalleryScreen)
			assert.True(t, ok)
		}},
		{"activity without database", 2, func(t *testing.T, s screen.Screen) {
			_, ok := s.(*placeholder.PlaceholderScreen)
			assert.True(t, ok)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(gamificationtest.NewEngine(t), nil, 1)
			for i := 0; i < tt.moves; i++ {
				h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
			}
			msg, ok := enter(t, h).(router.PushScreenMsg)
			require.True(t, ok)
			tt.check(t, msg.Screen)
		})
	}
}

func TestExitQuits(t *testing.T) {
	h := New(gamificationtest.NewEngine(t), nil, 1)
	for i := 0; i < 3; i++ {
		h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, ok := enter(t, h).(tea.QuitMsg)
	assert.True(t, ok)
}

func TestView(t *testing.T) {
	h := New(gamificationtest.NewEngine(t), nil, 1)
	for _, size := range [][2]int{{120, 40}, {80, 20}} {
		view := h.View(size[0], size[1])
		assert.Contains(t, view, "COURSES")
		assert.Contains(t, view, "EXIT")
		assert.Contains(t, view, "LEVEL")
	}
}
