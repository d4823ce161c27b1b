package progress

import "math"

// MaxLevelXP caps a single level's requirement.
const MaxLevelXP = math.MaxInt32

// LevelCurve returns the XP required to advance from level to level+1.
// Levels start at 1.
type LevelCurve func(level int) int

// DefaultXPPerLevel is the flat threshold used by the quiz session flow.
const DefaultXPPerLevel = 100

// FlatCurve requires the same amount of XP for every level.
func FlatCurve(xpPerLevel int) LevelCurve {
	return func(int) int {
		return xpPerLevel
	}
}

// GeometricCurve requires base XP for level 1 and multiplies the requirement
// by factor for each following level, truncating at every step and
// saturating at MaxLevelXP.
func GeometricCurve(base int, factor float64) LevelCurve {
	return func(level int) int {
		req := base
		for i := 1; i < level && req < MaxLevelXP; i++ {
			next := float64(req) * factor
			if next >= MaxLevelXP {
				return MaxLevelXP
			}
			req = int(next)
		}
		return req
	}
}

// CurveByName resolves a configured curve name. Unknown names fall back to
// the flat curve.
func CurveByName(name string, base int, factor float64) LevelCurve {
	if base <= 0 {
		base = DefaultXPPerLevel
	}
	switch name {
	case "geometric":
		if factor < 1 {
			factor = 1
		}
		return GeometricCurve(base, factor)
	default:
		return FlatCurve(base)
	}
}
