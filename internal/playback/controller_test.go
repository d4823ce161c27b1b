package playback

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/edusmart/internal/apperr"
)

func loaded(t *testing.T, duration float64) *Controller {
	t.Helper()
	c := NewController()
	require.NoError(t, c.Load(Lesson{ID: "lesson-1", DurationSeconds: duration}))
	return c
}

func TestLoad_RejectsInvalidDuration(t *testing.T) {
	c := NewController()
	for _, d := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		err := c.Load(Lesson{ID: "bad", DurationSeconds: d})
		assert.ErrorIs(t, err, apperr.ErrInvalidArgument, "duration %v", d)
	}
}

func TestPlayPause_Idempotent(t *testing.T) {
	c := loaded(t, 600)

	c.Pause()
	c.Pause()
	assert.False(t, c.State().IsPlaying)

	c.Play()
	c.Play()
	assert.True(t, c.State().IsPlaying)

	c.Toggle()
	assert.False(t, c.State().IsPlaying)
}

func TestTick_ClampsAndEnds(t *testing.T) {
	c := loaded(t, 10)
	c.Play()

	ended, err := c.Tick(4)
	require.NoError(t, err)
	assert.False(t, ended)
	assert.Equal(t, 4.0, c.State().WatchedSeconds)

	ended, err = c.Tick(30)
	require.NoError(t, err)
	assert.True(t, ended)

	st := c.State()
	assert.Equal(t, 10.0, st.WatchedSeconds)
	assert.False(t, st.IsPlaying)
	assert.True(t, st.Ended)

	// A finished lesson does not start again.
	c.Play()
	assert.False(t, c.State().IsPlaying)
}

func TestTick_InvalidDelta(t *testing.T) {
	c := loaded(t, 10)

	for _, d := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := c.Tick(d)
		if !errors.Is(err, apperr.ErrInvalidArgument) {
			t.Errorf("Tick(%v) err = %v, want InvalidArgument", d, err)
		}
	}
	assert.Equal(t, 0.0, c.State().WatchedSeconds)
}

func TestTick_NoLesson(t *testing.T) {
	_, err := NewController().Tick(1)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestSeek_RoundTrip(t *testing.T) {
	c := loaded(t, 600)

	for _, target := range []float64{0, 0.5, 123.25, 594, 599.9, 600} {
		require.NoError(t, c.Seek(target))
		if got := c.State().WatchedSeconds; got != target {
			t.Errorf("Seek(%v) watched = %v", target, got)
		}
	}
}

func TestSeek_OutOfRange(t *testing.T) {
	c := loaded(t, 600)
	require.NoError(t, c.Seek(100))

	for _, target := range []float64{-0.1, 600.5, math.NaN(), math.Inf(1)} {
		err := c.Seek(target)
		if !errors.Is(err, apperr.ErrInvalidArgument) {
			t.Errorf("Seek(%v) err = %v, want InvalidArgument", target, err)
		}
	}
	assert.Equal(t, 100.0, c.State().WatchedSeconds)

	ended, err := c.Tick(1000)
	require.NoError(t, err)
	assert.True(t, ended)
	assert.True(t, c.Eligible())
}

func TestEligible_Boundary(t *testing.T) {
	tests := []struct {
		watched float64
		want    bool
	}{
		{0, false},
		{300, false},
		{593, false},
		{593.9, false},
		{594, true},
		{595, true},
		{600, true},
	}

	for _, tt := range tests {
		c := loaded(t, 600)
		if tt.watched > 0 {
			_, _ = c.Tick(tt.watched)
		}
		if got := c.Eligible(); got != tt.want {
			t.Errorf("Eligible() at %v/600 = %v, want %v", tt.watched, got, tt.want)
		}
	}
}

func TestLoad_ResetsOnSwitch(t *testing.T) {
	c := loaded(t, 600)
	c.Play()
	_, _ = c.Tick(300)

	require.NoError(t, c.Load(Lesson{ID: "lesson-2", DurationSeconds: 900}))
	st := c.State()

	assert.Equal(t, "lesson-2", st.LessonID)
	assert.Equal(t, 0.0, st.WatchedSeconds)
	assert.False(t, st.IsPlaying)
	assert.False(t, st.Ended)
}

func TestSuspendResume(t *testing.T) {
	c := loaded(t, 600)
	c.Play()
	_, _ = c.Tick(120)
	c.Suspend()
	assert.False(t, c.State().IsPlaying)

	require.NoError(t, c.Load(Lesson{ID: "lesson-2", DurationSeconds: 60}))
	require.NoError(t, c.Resume(Lesson{ID: "lesson-1", DurationSeconds: 600}))

	assert.Equal(t, 120.0, c.State().WatchedSeconds)
	assert.False(t, c.State().IsPlaying)
}

func TestFraction(t *testing.T) {
	assert.Equal(t, 0.0, State{}.Fraction())
	assert.Equal(t, 0.5, State{DurationSeconds: 10, WatchedSeconds: 5}.Fraction())
	assert.Equal(t, 1.0, State{DurationSeconds: 10, WatchedSeconds: 12}.Fraction())
}

func TestPositions(t *testing.T) {
	c := loaded(t, 600)
	_, _ = c.Tick(42)
	c.Suspend()

	assert.Equal(t, map[string]float64{"lesson-1": 42}, c.Positions())

	c.RestorePositions(map[string]float64{"lesson-9": 10, "bad": -1})
	assert.Equal(t, map[string]float64{"lesson-9": 10}, c.Positions())

	c.Forget("lesson-9")
	assert.Empty(t, c.Positions())
}
