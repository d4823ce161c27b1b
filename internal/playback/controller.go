// Package playback tracks the watch cursor of a single lesson and decides
// when the lesson may be marked complete.
package playback

import (
	"math"
	"sync"

	"github.com/abhisek/edusmart/internal/apperr"
)

// CompletionPercent is the watched percentage required before a lesson can
// be completed. The comparison is inclusive.
const CompletionPercent = 99

// Lesson is the minimal lesson shape the controller needs.
type Lesson struct {
	ID              string
	DurationSeconds float64
}

// State is a read-only view of the controller.
type State struct {
	LessonID        string
	DurationSeconds float64
	WatchedSeconds  float64
	IsPlaying       bool
	Ended           bool
}

// Fraction returns watched/duration in [0, 1].
func (s State) Fraction() float64 {
	if s.DurationSeconds <= 0 {
		return 0
	}
	return min(s.WatchedSeconds/s.DurationSeconds, 1)
}

// Controller holds playback state for one lesson at a time.
type Controller struct {
	mu       sync.Mutex
	lesson   Lesson
	watched  float64
	playing  bool
	ended    bool
	resumeAt map[string]float64
}

// NewController returns a controller with no lesson loaded.
func NewController() *Controller {
	return &Controller{resumeAt: make(map[string]float64)}
}

// Load switches to lesson. The cursor restarts at 0 and playback is paused.
func (c *Controller) Load(lesson Lesson) error {
	if !(lesson.DurationSeconds > 0) || math.IsInf(lesson.DurationSeconds, 0) {
		return apperr.InvalidArgument("playback.Load", "lesson %q has invalid duration %v", lesson.ID, lesson.DurationSeconds)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lesson = lesson
	c.watched = 0
	c.playing = false
	c.ended = false
	return nil
}

// Resume switches to lesson and restores the cursor remembered by the last
// Suspend for the same lesson id.
func (c *Controller) Resume(lesson Lesson) error {
	if err := c.Load(lesson); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if at, ok := c.resumeAt[lesson.ID]; ok {
		c.watched = min(at, c.lesson.DurationSeconds)
		c.ended = c.watched >= c.lesson.DurationSeconds
	}
	return nil
}

// Suspend pauses playback and remembers the cursor for a later Resume.
func (c *Controller) Suspend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.playing = false
	if c.lesson.ID != "" {
		c.resumeAt[c.lesson.ID] = c.watched
	}
}

// Positions returns the remembered resume cursors by lesson id.
func (c *Controller) Positions() map[string]float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]float64, len(c.resumeAt))
	for id, at := range c.resumeAt {
		out[id] = at
	}
	return out
}

// RestorePositions replaces the remembered resume cursors. Negative
// positions are dropped.
func (c *Controller) RestorePositions(positions map[string]float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resumeAt = make(map[string]float64, len(positions))
	for id, at := range positions {
		if at >= 0 {
			c.resumeAt[id] = at
		}
	}
}

// Forget drops the remembered cursor for id.
func (c *Controller) Forget(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.resumeAt, id)
}

// Play starts playback. Playing an already playing or finished lesson is a
// no-op.
func (c *Controller) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lesson.DurationSeconds <= 0 || c.ended {
		return
	}
	c.playing = true
}

// Pause stops playback. Pausing twice is a no-op.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.playing = false
}

// Toggle flips between playing and paused.
func (c *Controller) Toggle() {
	c.mu.Lock()
	playing := c.playing
	c.mu.Unlock()
	if playing {
		c.Pause()
	} else {
		c.Play()
	}
}

// Tick advances the cursor by delta seconds, clamped to the duration. When
// the clamp is hit playback stops and ended is reported.
func (c *Controller) Tick(delta float64) (ended bool, err error) {
	if !(delta > 0) || math.IsInf(delta, 0) {
		return false, apperr.InvalidArgument("playback.Tick", "tick delta must be positive and finite, got %v", delta)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lesson.DurationSeconds <= 0 {
		return false, apperr.InvalidArgument("playback.Tick", "no lesson loaded")
	}

	c.watched += delta
	if c.watched >= c.lesson.DurationSeconds {
		c.watched = c.lesson.DurationSeconds
		c.playing = false
		c.ended = true
		return true, nil
	}
	return false, nil
}

// Seek moves the cursor to target, which must lie within [0, duration].
// Seeking never completes a lesson by itself.
func (c *Controller) Seek(target float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lesson.DurationSeconds <= 0 {
		return apperr.InvalidArgument("playback.Seek", "no lesson loaded")
	}
	if math.IsNaN(target) || target < 0 || target > c.lesson.DurationSeconds {
		return apperr.InvalidArgument("playback.Seek", "seek target %v outside [0, %v]", target, c.lesson.DurationSeconds)
	}
	c.watched = target
	c.ended = target >= c.lesson.DurationSeconds
	if c.ended {
		c.playing = false
	}
	return nil
}

// Eligible reports whether the watched fraction has reached the completion
// threshold.
func (c *Controller) Eligible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return eligible(c.watched, c.lesson.DurationSeconds)
}

// State returns the current playback state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		LessonID:        c.lesson.ID,
		DurationSeconds: c.lesson.DurationSeconds,
		WatchedSeconds:  c.watched,
		IsPlaying:       c.playing,
		Ended:           c.ended,
	}
}

// eligible compares watched*100 >= duration*99 so that the boundary
// (594 of 600) is not lost to floating point division.
func eligible(watched, duration float64) bool {
	if duration <= 0 {
		return false
	}
	return watched*100 >= duration*CompletionPercent
}
