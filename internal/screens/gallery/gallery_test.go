package gallery

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/edusmart/internal/achievements"
	"github.com/abhisek/edusmart/internal/gamification/gamificationtest"
	"github.com/abhisek/edusmart/internal/screen"
)

func TestTabsFilterByRarity(t *testing.T) {
	s := New(gamificationtest.NewEngine(t))
	assert.Len(t, s.Filtered(), 2)

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	common := s.Filtered()
	require.Len(t, common, 1)
	assert.Equal(t, achievements.RarityCommon, common[0].Rarity)

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	require.Len(t, s.Filtered(), 1)
	assert.Equal(t, "quiz-whiz", s.Filtered()[0].ID)

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Empty(t, s.Filtered(), "no epic achievements in the fixture")
	assert.Contains(t, s.View(100, 30), "No achievements of this rarity.")

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	assert.Equal(t, 2, s.selectedTab)
}

func TestRefreshShowsUnlocks(t *testing.T) {
	ctx := context.Background()
	e := gamificationtest.NewEngine(t)
	s := New(e)
	assert.Contains(t, s.View(100, 30), "Unlocked: 0 of 2")

	require.NoError(t, e.StartLesson(ctx, gamificationtest.OtherLessonID))
	require.NoError(t, e.Seek(60))
	_, err := e.CompleteLesson(ctx)
	require.NoError(t, err)

	s.Update(screen.ResumedMsg{})
	view := s.View(100, 30)
	assert.Contains(t, view, "Unlocked: 1 of 2")
	assert.Contains(t, view, "First Steps")
	assert.True(t, strings.Contains(view, "✓ Unlocked"))
}

func TestScrollBounds(t *testing.T) {
	s := New(gamificationtest.NewEngine(t))
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, s.scrollOffset)

	for i := 0; i < 5; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	assert.Equal(t, 1, s.scrollOffset)
}
