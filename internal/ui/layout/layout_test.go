package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{79, 24, true},
		{80, 23, true},
		{200, 60, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsTooSmall(tt.w, tt.h), "%dx%d", tt.w, tt.h)
	}
}

func TestLevelGauge(t *testing.T) {
	tests := []struct {
		percent int
		filled  int
	}{
		{0, 0},
		{55, 5},
		{100, 10},
		{140, 10},
		{-5, 0},
	}
	for _, tt := range tests {
		g := levelGauge(tt.percent)
		assert.Equal(t, tt.filled, strings.Count(g, "▰"), "percent %d", tt.percent)
		assert.Equal(t, gaugeCells-tt.filled, strings.Count(g, "▱"), "percent %d", tt.percent)
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Courses", HeaderStats{Level: 3, XP: 240, Progress: 40, Streak: 2}, 120)
	for _, want := range []string{"EduSmart", "Courses", "Lv 3", "✦ 240 XP", "★ 2 day"} {
		assert.Contains(t, h, want)
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Esc", Description: "Back"}}, 80)
	assert.Contains(t, f, "Esc")
	assert.Contains(t, f, "Back")
}
