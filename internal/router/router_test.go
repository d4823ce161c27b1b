package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/edusmart/internal/screen"
)

type fakeScreen struct {
	title   string
	inits   int
	resumed int
	left    int
	seen    []tea.Msg
}

func (f *fakeScreen) Leave() { f.left++ }

func (f *fakeScreen) Init() tea.Cmd {
	f.inits++
	return nil
}

func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(screen.ResumedMsg); ok {
		f.resumed++
	} else {
		f.seen = append(f.seen, msg)
	}
	return f, nil
}

func (f *fakeScreen) View(int, int) string { return "view:" + f.title }
func (f *fakeScreen) Title() string        { return f.title }

// stack builds a router with one screen per title, root first.
func stack(titles ...string) (*Router, []*fakeScreen) {
	screens := make([]*fakeScreen, len(titles))
	for i, t := range titles {
		screens[i] = &fakeScreen{title: t}
	}
	r := New(screens[0])
	for _, s := range screens[1:] {
		r.Push(s)
	}
	return r, screens
}

func TestPushRunsInit(t *testing.T) {
	r, s := stack("Home", "Courses")
	assert.Equal(t, 2, r.Depth())
	assert.Same(t, s[1], r.Active())
	assert.Equal(t, 1, s[1].inits)
}

func TestPopResumesScreenBelow(t *testing.T) {
	r, s := stack("Home", "Courses", "Lesson")

	r.Update(PopScreenMsg{})

	assert.Same(t, s[1], r.Active())
	assert.Equal(t, 1, s[2].left)
	assert.Equal(t, 1, s[1].resumed)
	assert.Zero(t, s[0].resumed)
}

func TestPopKeepsRoot(t *testing.T) {
	r, s := stack("Home")
	assert.Nil(t, r.Pop())
	assert.Equal(t, 1, r.Depth())
	assert.Zero(t, s[0].left)
	assert.Zero(t, s[0].resumed)
}

func TestReplace(t *testing.T) {
	tests := []struct {
		name   string
		titles []string
	}{
		{"at root", []string{"Welcome"}},
		{"above root", []string{"Home", "Courses"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, s := stack(tt.titles...)
			next := &fakeScreen{title: "Next"}

			r.Update(ReplaceScreenMsg{Screen: next})

			assert.Equal(t, len(tt.titles), r.Depth())
			assert.Same(t, next, r.Active())
			assert.Equal(t, 1, next.inits)
			assert.Zero(t, next.resumed, "replacement gets Init, not ResumedMsg")
			assert.Equal(t, 1, s[len(s)-1].left)
		})
	}
}

func TestPopToRoot(t *testing.T) {
	r, s := stack("Home", "Courses", "Lesson", "Quiz")

	r.Update(PopToRootMsg{})

	require.Equal(t, 1, r.Depth())
	assert.Same(t, s[0], r.Active())
	assert.Equal(t, 1, s[0].resumed, "root resumes once")
	for _, above := range s[1:] {
		assert.Equal(t, 1, above.left, above.title)
	}
	assert.Zero(t, s[0].left)
}

func TestPopToRootAtRootIsNoop(t *testing.T) {
	r, s := stack("Home")
	assert.Nil(t, r.PopToRoot())
	assert.Zero(t, s[0].resumed)
}

func TestOtherMessagesReachActiveOnly(t *testing.T) {
	r, s := stack("Home", "Courses")
	key := tea.KeyPressMsg{Code: 'j', Text: "j"}

	r.Update(key)

	assert.Equal(t, []tea.Msg{key}, s[1].seen)
	assert.Empty(t, s[0].seen)
}

func TestBreadcrumb(t *testing.T) {
	r, _ := stack("", "Home", "Courses", "Go Basics")
	assert.Equal(t, "Home › Courses › Go Basics", r.Breadcrumb())

	r.Pop()
	assert.Equal(t, "Home › Courses", r.Breadcrumb())
}

func TestView(t *testing.T) {
	r, _ := stack("Home", "Courses")
	assert.Equal(t, "view:Courses", r.View(80, 24))
}
