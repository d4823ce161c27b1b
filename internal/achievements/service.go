// Package achievements holds achievement definitions and tracks which ones a
// learner has unlocked.
package achievements

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/abhisek/edusmart/internal/apperr"
	"github.com/abhisek/edusmart/internal/logger"
	"github.com/abhisek/edusmart/internal/store"
)

type compiled struct {
	def  Achievement
	pred Predicate
}

// Service evaluates unlock predicates and records unlocks. Unlocking is
// one-way: an unlocked achievement is never evaluated again.
type Service struct {
	mu        sync.RWMutex
	defs      []compiled
	byID      map[string]int
	unlocked  map[string]time.Time
	eventRepo store.EventRepo
	log       *logger.Logger

	// unlocks made during the current session, oldest first
	session []Unlock
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger that receives persistence warnings.
func WithLogger(l *logger.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// NewService compiles defs. Ids must be unique and every predicate must
// parse. eventRepo may be nil.
func NewService(defs []Achievement, eventRepo store.EventRepo, opts ...ServiceOption) (*Service, error) {
	s := &Service{
		byID:      make(map[string]int, len(defs)),
		unlocked:  make(map[string]time.Time),
		eventRepo: eventRepo,
		log:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("achievement %q: missing id", d.Name)
		}
		if _, dup := s.byID[d.ID]; dup {
			return nil, fmt.Errorf("achievement %q: duplicate id", d.ID)
		}
		if !d.Rarity.Valid() {
			return nil, fmt.Errorf("achievement %q: unknown rarity %q", d.ID, d.Rarity)
		}
		if d.XPReward < 0 {
			return nil, fmt.Errorf("achievement %q: negative xp reward", d.ID)
		}
		pred, err := ParsePredicate(d.Predicate)
		if err != nil {
			return nil, fmt.Errorf("achievement %q: %w", d.ID, err)
		}
		s.byID[d.ID] = len(s.defs)
		s.defs = append(s.defs, compiled{def: d, pred: pred})
	}
	return s, nil
}

// Get returns the definition for id.
func (s *Service) Get(id string) (Achievement, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return Achievement{}, false
	}
	return s.defs[idx].def, true
}

// Qualifying returns locked achievements whose predicate holds for m, in
// definition order.
func (s *Service) Qualifying(m Metrics) []Achievement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Achievement
	for _, c := range s.defs {
		if _, done := s.unlocked[c.def.ID]; done {
			continue
		}
		if c.pred.Eval(m) {
			out = append(out, c.def)
		}
	}
	return out
}

// Unlock marks id unlocked at at and persists the unlock for userID.
// Unlocking twice fails with apperr.ErrInvalidStateTransition.
func (s *Service) Unlock(ctx context.Context, userID, id string, at time.Time) (*Unlock, error) {
	const op = "achievements.Unlock"
	def, ok := s.Get(id)
	if !ok {
		return nil, apperr.InvalidArgument(op, "unknown achievement %q", id)
	}

	s.mu.Lock()
	if _, done := s.unlocked[id]; done {
		s.mu.Unlock()
		return nil, apperr.InvalidStateTransition(op, "achievement %q already unlocked", id)
	}
	s.unlocked[id] = at
	u := Unlock{Achievement: def, UnlockedAt: at}
	s.session = append(s.session, u)
	s.mu.Unlock()

	s.persist(ctx, userID, def)
	return &u, nil
}

// IsUnlocked reports whether id has been unlocked.
func (s *Service) IsUnlocked(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.unlocked[id]
	return ok
}

// All returns every achievement with its unlock state and progress toward
// m, in definition order.
func (s *Service) All(m Metrics) []Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Status, len(s.defs))
	for i, c := range s.defs {
		at, done := s.unlocked[c.def.ID]
		st := Status{Achievement: c.def, Unlocked: done, UnlockedAt: at}
		if done {
			st.Progress = 100
		} else {
			st.Progress = c.pred.Progress(m)
		}
		out[i] = st
	}
	return out
}

// Counts returns unlocked totals by rarity.
func (s *Service) Counts() (map[Rarity]int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byRarity := make(map[Rarity]int)
	for id := range s.unlocked {
		if def, ok := s.Get(id); ok {
			byRarity[def.Rarity]++
		}
	}
	return byRarity, len(s.unlocked)
}

// Restore replaces the unlocked set. Unknown ids are ignored so that
// removing an achievement from the catalog doesn't break old snapshots.
func (s *Service) Restore(unlocked map[string]time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unlocked = make(map[string]time.Time, len(unlocked))
	for id, at := range unlocked {
		if _, ok := s.byID[id]; ok {
			s.unlocked[id] = at
		}
	}
}

// Reset relocks every achievement.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unlocked = make(map[string]time.Time)
	s.session = nil
}

// SessionUnlocks returns a copy of the unlocks made since the last
// ResetSession, oldest first.
func (s *Service) SessionUnlocks() []Unlock {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Unlock, len(s.session))
	copy(out, s.session)
	return out
}

// ResetSession clears the session unlock accumulator. Called at session start.
func (s *Service) ResetSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
}

// SnapshotData builds the unlocked set for snapshot persistence.
func (s *Service) SnapshotData() *store.AchievementsSnapshotData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	unlocked := make(map[string]time.Time, len(s.unlocked))
	for id, at := range s.unlocked {
		unlocked[id] = at
	}
	return &store.AchievementsSnapshotData{Unlocked: unlocked}
}

// Recent returns the newest n unlocks, newest first.
func (s *Service) Recent(n int) []Unlock {
	s.mu.RLock()
	out := make([]Unlock, 0, len(s.unlocked))
	for id, at := range s.unlocked {
		if def, ok := s.Get(id); ok {
			out = append(out, Unlock{Achievement: def, UnlockedAt: at})
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].UnlockedAt.Equal(out[j].UnlockedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].UnlockedAt.After(out[j].UnlockedAt)
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func (s *Service) persist(ctx context.Context, userID string, def Achievement) {
	if s.eventRepo == nil {
		return
	}
	err := s.eventRepo.AppendAchievementEvent(ctx, store.AchievementEventData{
		UserID:        userID,
		AchievementID: def.ID,
		Name:          def.Name,
		Rarity:        string(def.Rarity),
		Category:      string(def.Category),
		Reward:        def.XPReward,
	})
	if err != nil {
		s.log.Warn("append achievement event", "achievement", def.ID, "error", err)
	}
}
