package progress

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/edusmart/internal/apperr"
)

func TestNewStore_Defaults(t *testing.T) {
	s := NewStore(nil)
	st := s.State()

	if st.Level != 1 {
		t.Errorf("Level = %d, want 1", st.Level)
	}
	if st.TotalXP != 0 {
		t.Errorf("TotalXP = %d, want 0", st.TotalXP)
	}
	if st.XPToNextLevel != DefaultXPPerLevel {
		t.Errorf("XPToNextLevel = %d, want %d", st.XPToNextLevel, DefaultXPPerLevel)
	}
	if st.ProgressPercent != 0 {
		t.Errorf("ProgressPercent = %d, want 0", st.ProgressPercent)
	}
}

func TestAwardXP_SingleLevelUp(t *testing.T) {
	s := NewStore(FlatCurve(100))

	up, err := s.AwardXP(120)
	require.NoError(t, err)

	assert.True(t, up.LeveledUp)
	assert.Equal(t, 1, up.PreviousLevel)
	assert.Equal(t, 2, up.NewLevel)
	assert.Equal(t, 1, up.LevelsGained)

	st := s.State()
	assert.Equal(t, 20, st.LevelXP)
	assert.Equal(t, 120, st.TotalXP)
	assert.Equal(t, 80, st.XPToNextLevel)
}

func TestAwardXP_MultipleLevels(t *testing.T) {
	s := NewStore(FlatCurve(100))

	up, err := s.AwardXP(350)
	require.NoError(t, err)

	assert.Equal(t, 3, up.LevelsGained)
	assert.Equal(t, 4, up.NewLevel)
	assert.Equal(t, 50, s.State().LevelXP)
}

func TestAwardXP_ExactThreshold(t *testing.T) {
	s := NewStore(FlatCurve(100))

	up, err := s.AwardXP(100)
	require.NoError(t, err)

	assert.True(t, up.LeveledUp)
	assert.Equal(t, 0, s.State().LevelXP)
	assert.Equal(t, 100, s.State().XPToNextLevel)
}

func TestAwardXP_NoLevelUp(t *testing.T) {
	s := NewStore(FlatCurve(100))

	up, err := s.AwardXP(99)
	require.NoError(t, err)

	assert.False(t, up.LeveledUp)
	assert.Equal(t, 1, up.NewLevel)
	assert.Equal(t, 1, s.State().XPToNextLevel)
}

func TestAwardXP_Zero(t *testing.T) {
	s := NewStore(nil)

	up, err := s.AwardXP(0)
	require.NoError(t, err)
	assert.False(t, up.LeveledUp)
	assert.Equal(t, 0, s.State().TotalXP)
}

func TestAwardXP_Negative(t *testing.T) {
	s := NewStore(nil)
	_, _ = s.AwardXP(40)

	_, err := s.AwardXP(-1)
	if !errors.Is(err, apperr.ErrInvalidArgument) {
		t.Fatalf("err = %v, want InvalidArgument", err)
	}
	if got := s.State().TotalXP; got != 40 {
		t.Errorf("TotalXP after rejected award = %d, want 40", got)
	}
}

func TestAwardXP_Associative(t *testing.T) {
	pairs := [][2]int{{0, 0}, {10, 20}, {99, 1}, {120, 80}, {250, 375}, {1, 999}}

	for _, curve := range []LevelCurve{FlatCurve(100), GeometricCurve(100, 1.5)} {
		for _, p := range pairs {
			split := NewStore(curve)
			_, _ = split.AwardXP(p[0])
			_, _ = split.AwardXP(p[1])

			whole := NewStore(curve)
			_, _ = whole.AwardXP(p[0] + p[1])

			if split.State() != whole.State() {
				t.Errorf("award(%d)+award(%d) = %+v, award(%d) = %+v",
					p[0], p[1], split.State(), p[0]+p[1], whole.State())
			}
		}
	}
}

func TestAwardXP_GeometricCurve(t *testing.T) {
	s := NewStore(GeometricCurve(100, 1.5))

	// 100 to leave level 1, 150 to leave level 2.
	up, err := s.AwardXP(260)
	require.NoError(t, err)

	assert.Equal(t, 3, up.NewLevel)
	assert.Equal(t, 10, s.State().LevelXP)
	assert.Equal(t, 215, s.State().XPToNextLevel)
}

func TestGeometricCurve_Saturates(t *testing.T) {
	curve := GeometricCurve(100, 1.5)

	prev := 0
	for level := 1; level <= 200; level++ {
		req := curve(level)
		if req < prev {
			t.Fatalf("curve(%d) = %d, below curve(%d) = %d", level, req, level-1, prev)
		}
		prev = req
	}
	assert.Equal(t, MaxLevelXP, curve(100))
	assert.Equal(t, MaxLevelXP, curve(1_000_000_000))
}

func TestRestore_HighLevelDoesNotLevelEveryPoint(t *testing.T) {
	s := NewStore(GeometricCurve(100, 1.5))
	require.NoError(t, s.Restore(Snapshot{TotalXP: 5000, Level: 100}))

	up, err := s.AwardXP(1)
	require.NoError(t, err)
	assert.Zero(t, up.LevelsGained)
	assert.Equal(t, 100, s.State().Level)
	assert.Equal(t, MaxLevelXP-1, s.State().XPToNextLevel)
}

func TestAwardXP_NonPositiveCurve(t *testing.T) {
	s := NewStore(func(int) int { return 0 })

	up, err := s.AwardXP(3)
	require.NoError(t, err)
	assert.Equal(t, 3, up.LevelsGained)
}

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		total, toNext int
		want          int
	}{
		{0, 0, 0},
		{0, 100, 0},
		{50, 50, 50},
		{2850, 300, 90},
		{1, 2, 33},
		{2, 1, 67},
		{100, 0, 100},
	}

	for _, tt := range tests {
		got := ProgressPercent(tt.total, tt.toNext)
		if got != tt.want {
			t.Errorf("ProgressPercent(%d, %d) = %d, want %d", tt.total, tt.toNext, got, tt.want)
		}
	}
}

func TestResetSession(t *testing.T) {
	s := NewStore(nil)
	_, _ = s.AwardXP(530)

	s.ResetSession()
	st := s.State()

	assert.Equal(t, 1, st.Level)
	assert.Equal(t, 0, st.TotalXP)
	assert.Equal(t, 0, st.LevelXP)
	assert.Equal(t, 100, st.XPToNextLevel)
}

func TestRestore(t *testing.T) {
	s := NewStore(FlatCurve(500))

	err := s.Restore(Snapshot{TotalXP: 2850, Level: 12, XPToNextLevel: 300})
	require.NoError(t, err)

	st := s.State()
	assert.Equal(t, 12, st.Level)
	assert.Equal(t, 2850, st.TotalXP)
	assert.Equal(t, 200, st.LevelXP)
	assert.Equal(t, 300, st.XPToNextLevel)
	assert.Equal(t, 90, st.ProgressPercent)

	assert.Equal(t, Snapshot{TotalXP: 2850, Level: 12, XPToNextLevel: 300}, s.Snapshot())
}

func TestRestore_ClampsToCurve(t *testing.T) {
	s := NewStore(FlatCurve(100))

	require.NoError(t, s.Restore(Snapshot{TotalXP: 2850, Level: 12, XPToNextLevel: 300}))
	assert.Equal(t, 0, s.State().LevelXP)
	assert.Equal(t, 100, s.State().XPToNextLevel)
}

func TestRestore_Invalid(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
	}{
		{"zero level", Snapshot{Level: 0}},
		{"negative total", Snapshot{Level: 1, TotalXP: -5}},
		{"negative to-next", Snapshot{Level: 1, XPToNextLevel: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(nil)
			err := s.Restore(tt.snap)
			assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
			assert.Equal(t, 1, s.State().Level)
		})
	}
}

func TestCurveByName(t *testing.T) {
	assert.Equal(t, 100, CurveByName("flat", 100, 1.5)(7))
	assert.Equal(t, 150, CurveByName("geometric", 100, 1.5)(2))
	assert.Equal(t, 225, CurveByName("geometric", 100, 1.5)(3))
	assert.Equal(t, DefaultXPPerLevel, CurveByName("unknown", 0, 0)(3))
}
