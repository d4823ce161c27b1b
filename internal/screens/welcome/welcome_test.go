package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/edusmart/internal/router"
	"github.com/abhisek/edusmart/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "home" }
func (s *stubScreen) Title() string                          { return "Home" }

func newSplash(g Greeting) (*WelcomeScreen, *int) {
	built := 0
	return New(func() screen.Screen {
		built++
		return &stubScreen{}
	}, g), &built
}

func frames(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		_, cmd = w.Update(frameMsg{})
	}
	return cmd
}

func TestTimeline(t *testing.T) {
	w, _ := newSplash(Greeting{Name: "ada", Level: 4, Returning: true})
	require.NotNil(t, w.Init())
	assert.NotContains(t, w.View(100, 30), Tagline)

	frames(w, 5)
	assert.Equal(t, capSettled, w.elapsed)
	assert.NotContains(t, w.View(100, 30), Tagline)

	frames(w, 10)
	assert.Equal(t, bannerIn, w.elapsed)
	view := w.View(100, 30)
	assert.Contains(t, view, Tagline)
	assert.Contains(t, view, "Welcome back, ada! You are level 4.")

	frames(w, 100)
	assert.Equal(t, splashEnd, w.elapsed, "elapsed is capped")
}

func TestTasselSwings(t *testing.T) {
	w, _ := newSplash(Greeting{})
	frames(w, 5)
	first := w.View(100, 30)
	frames(w, 3)
	assert.NotEqual(t, first, w.View(100, 30))
}

func TestAnyKeyReplacesOnce(t *testing.T) {
	keys := []tea.KeyPressMsg{
		{Code: ' '},
		{Code: tea.KeyEnter},
		{Code: 'a', Text: "a"},
	}
	for _, key := range keys {
		t.Run(key.String(), func(t *testing.T) {
			w, built := newSplash(Greeting{})
			frames(w, 3)

			_, cmd := w.Update(key)
			require.NotNil(t, cmd)
			msg, ok := cmd().(router.ReplaceScreenMsg)
			require.True(t, ok)
			assert.NotNil(t, msg.Screen)

			_, cmd = w.Update(key)
			assert.Nil(t, cmd)
			assert.Equal(t, 1, *built)
		})
	}
}

func TestNoAutoTransition(t *testing.T) {
	w, built := newSplash(Greeting{})
	frames(w, 60)
	assert.Zero(t, *built)
}

func TestFramesStopAfterLeaving(t *testing.T) {
	w, _ := newSplash(Greeting{})
	w.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	assert.Nil(t, frames(w, 1))
}

func TestGreeting(t *testing.T) {
	tests := []struct {
		g    Greeting
		want string
	}{
		{Greeting{}, "Welcome!"},
		{Greeting{Name: "sam", Level: 1}, "Welcome, sam! Your first lesson is waiting."},
		{Greeting{Name: "sam", Level: 7, Returning: true}, "Welcome back, sam! You are level 7."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.g.String())
	}
}

func TestCompactBannerOnNarrowTerminal(t *testing.T) {
	assert.Contains(t, RenderBanner(40), BannerCompact)
	assert.NotContains(t, RenderBanner(BannerWidth), BannerCompact)
	assert.True(t, strings.Contains(RenderBanner(BannerWidth), "███"))
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newSplash(Greeting{})
	assert.Empty(t, w.Title())
}
