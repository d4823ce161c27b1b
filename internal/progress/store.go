package progress

import (
	"math"
	"sync"

	"github.com/abhisek/edusmart/internal/apperr"
)

// State is a read-only view of the learner's progression.
type State struct {
	TotalXP         int // lifetime XP since the last reset
	LevelXP         int // XP accumulated inside the current level
	Level           int
	XPToNextLevel   int
	ProgressPercent int // round(100 * TotalXP / (TotalXP + XPToNextLevel))
}

// LevelUp describes the level change caused by a single AwardXP call.
type LevelUp struct {
	LeveledUp     bool
	PreviousLevel int
	NewLevel      int
	LevelsGained  int
}

// Snapshot is the persisted shape accepted by Restore.
type Snapshot struct {
	TotalXP       int `json:"total_xp"`
	Level         int `json:"level"`
	XPToNextLevel int `json:"xp_to_next_level"`
}

// Store is the single source of truth for XP and level. It is only mutated
// through AwardXP, ResetSession and Restore.
type Store struct {
	mu      sync.RWMutex
	curve   LevelCurve
	totalXP int
	levelXP int
	level   int
}

// NewStore creates a Store at level 1 with zero XP. A nil curve selects
// FlatCurve(DefaultXPPerLevel).
func NewStore(curve LevelCurve) *Store {
	if curve == nil {
		curve = FlatCurve(DefaultXPPerLevel)
	}
	return &Store{curve: curve, level: 1}
}

// State returns the current progression state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

// Threshold returns the XP required to leave the given level.
func (s *Store) Threshold(level int) int {
	return threshold(s.curve, level)
}

// AwardXP adds amount to the learner's XP and applies as many level-ups as
// the amount covers.
func (s *Store) AwardXP(amount int) (LevelUp, error) {
	if amount < 0 {
		return LevelUp{}, apperr.InvalidArgument("progress.AwardXP", "XP amount must be non-negative, got %d", amount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	up := LevelUp{PreviousLevel: s.level}
	s.totalXP += amount
	s.levelXP += amount
	for {
		need := threshold(s.curve, s.level)
		if s.levelXP < need {
			break
		}
		s.levelXP -= need
		s.level++
		up.LevelsGained++
	}
	up.NewLevel = s.level
	up.LeveledUp = up.LevelsGained > 0
	return up, nil
}

// ResetSession zeroes XP and returns to level 1.
func (s *Store) ResetSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totalXP = 0
	s.levelXP = 0
	s.level = 1
}

// Restore replaces the state with a persisted snapshot. XPToNextLevel is
// reconciled against the configured curve: values larger than the current
// level's threshold are clamped.
func (s *Store) Restore(snap Snapshot) error {
	const op = "progress.Restore"
	if snap.Level < 1 {
		return apperr.InvalidArgument(op, "level must be at least 1, got %d", snap.Level)
	}
	if snap.TotalXP < 0 {
		return apperr.InvalidArgument(op, "total XP must be non-negative, got %d", snap.TotalXP)
	}
	if snap.XPToNextLevel < 0 {
		return apperr.InvalidArgument(op, "XP to next level must be non-negative, got %d", snap.XPToNextLevel)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	need := threshold(s.curve, snap.Level)
	toNext := min(snap.XPToNextLevel, need)
	if toNext == 0 {
		toNext = need
	}
	levelXP := min(need-toNext, snap.TotalXP)

	s.totalXP = snap.TotalXP
	s.level = snap.Level
	s.levelXP = levelXP
	return nil
}

// Snapshot exports the state in the shape accepted by Restore.
func (s *Store) Snapshot() Snapshot {
	st := s.State()
	return Snapshot{TotalXP: st.TotalXP, Level: st.Level, XPToNextLevel: st.XPToNextLevel}
}

func (s *Store) stateLocked() State {
	toNext := threshold(s.curve, s.level) - s.levelXP
	return State{
		TotalXP:         s.totalXP,
		LevelXP:         s.levelXP,
		Level:           s.level,
		XPToNextLevel:   toNext,
		ProgressPercent: ProgressPercent(s.totalXP, toNext),
	}
}

// ProgressPercent computes round(100 * totalXP / (totalXP + toNext)) clamped
// to [0, 100].
func ProgressPercent(totalXP, toNext int) int {
	denom := totalXP + toNext
	if denom <= 0 {
		return 0
	}
	p := int(math.Round(100 * float64(totalXP) / float64(denom)))
	return max(0, min(100, p))
}

// threshold guards against curves that return non-positive requirements,
// which would otherwise loop forever in AwardXP.
func threshold(curve LevelCurve, level int) int {
	return max(curve(level), 1)
}
