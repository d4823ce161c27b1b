package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/edusmart/internal/achievements"
	"github.com/abhisek/edusmart/internal/gamification"
	"github.com/abhisek/edusmart/internal/gamification/gamificationtest"
	"github.com/abhisek/edusmart/internal/screens/home"
	"github.com/abhisek/edusmart/internal/screens/placeholder"
	"github.com/abhisek/edusmart/internal/screens/welcome"
)

func TestFeedDropsWhenFull(t *testing.T) {
	f := NewFeed(1)
	f.Notify(gamification.Event{Kind: gamification.EventLeveledUp, Level: 2})
	f.Notify(gamification.Event{Kind: gamification.EventLeveledUp, Level: 3})

	msg, ok := f.wait()().(engineEventMsg)
	require.True(t, ok)
	assert.Equal(t, 2, msg.event.Level)
	assert.Len(t, f.ch, 0)
}

func TestToastFor(t *testing.T) {
	unlock := &achievements.Unlock{Achievement: achievements.Achievement{
		ID: "first-steps", Name: "First Steps", Rarity: achievements.RarityCommon, XPReward: 10,
	}}
	tests := []struct {
		name  string
		event gamification.Event
		want  string
		ok    bool
	}{
		{"lesson", gamification.Event{Kind: gamification.EventLessonCompleted, XP: 50}, "Lesson complete  +50 XP", true},
		{"level", gamification.Event{Kind: gamification.EventLeveledUp, Level: 3}, "level 3", true},
		{"achievement", gamification.Event{Kind: gamification.EventAchievementUnlocked, Achievement: unlock}, "First Steps unlocked (Common)  +10 XP", true},
		{"achievement without payload", gamification.Event{Kind: gamification.EventAchievementUnlocked}, "", false},
		{"notice", gamification.Event{Kind: gamification.EventNotice, Message: "watch the full lesson first"}, "! watch the full lesson first", true},
		{"quiz results stay on the quiz screen", gamification.Event{Kind: gamification.EventQuizGraded, XP: 5}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := toastFor(tt.event)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Contains(t, got.text, tt.want)
			}
		})
	}
}

func TestToastsCappedAndExpire(t *testing.T) {
	m := newAppModel(Options{Engine: gamificationtest.NewEngine(t), Feed: NewFeed(0), SkipWelcome: true})
	var model tea.Model = m
	for i := 0; i < maxToasts+2; i++ {
		model, _ = model.Update(engineEventMsg{event: gamification.Event{Kind: gamification.EventLeveledUp, Level: i + 2}})
	}
	m = model.(AppModel)
	require.Len(t, m.toasts, maxToasts)
	assert.Contains(t, m.toasts[0].text, "level 4")

	model, _ = m.Update(toastExpiredMsg{id: m.toasts[0].id})
	assert.Len(t, model.(AppModel).toasts, maxToasts-1)
}

func TestStartScreen(t *testing.T) {
	e := gamificationtest.NewEngine(t)

	m := newAppModel(Options{Engine: e})
	_, ok := m.router.Active().(*welcome.WelcomeScreen)
	assert.True(t, ok)

	m = newAppModel(Options{Engine: e, SkipWelcome: true})
	_, ok = m.router.Active().(*home.HomeScreen)
	assert.True(t, ok)
}

func TestEscAtRootDoesNothing(t *testing.T) {
	m := newAppModel(Options{Engine: gamificationtest.NewEngine(t), SkipWelcome: true})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
}

func TestRunRequiresEngine(t *testing.T) {
	assert.Error(t, Run(Options{}))
}

func TestHeaderTitleUsesBreadcrumb(t *testing.T) {
	e := gamificationtest.NewEngine(t)
	m := newAppModel(Options{Engine: e, SkipWelcome: true})
	m.width = 120
	assert.Equal(t, "Home", m.title())

	m.router.Push(placeholder.New("Activity", ""))
	assert.Equal(t, "Home › Activity", m.title())

	m.width = 10
	assert.Equal(t, "Activity", m.title(), "narrow terminals show only the active title")
}
