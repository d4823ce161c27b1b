// Package gamification turns lesson completions, quiz results and activity
// signals into XP, levels and achievement unlocks.
package gamification

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/abhisek/edusmart/internal/achievements"
	"github.com/abhisek/edusmart/internal/content"
	"github.com/abhisek/edusmart/internal/logger"
	"github.com/abhisek/edusmart/internal/playback"
	"github.com/abhisek/edusmart/internal/progress"
	"github.com/abhisek/edusmart/internal/store"
)

// FastLessonWindow is how soon after starting a lesson a completion counts
// as fast.
const FastLessonWindow = 10 * time.Minute

// Study sessions starting in [NightStartHour, NightEndHour) local time count
// as night sessions.
const (
	NightStartHour = 0
	NightEndHour   = 5
)

// XP sources recorded with each award.
const (
	SourceLesson      = "lesson"
	SourceQuiz        = "quiz"
	SourceAchievement = "achievement"
)

// Option configures an Engine.
type Option func(*Engine)

// WithUserID sets the learner the engine records events for.
func WithUserID(id string) Option {
	return func(e *Engine) { e.userID = id }
}

// WithEventRepo enables event persistence.
func WithEventRepo(r store.EventRepo) Option {
	return func(e *Engine) { e.eventRepo = r }
}

// WithNotifier registers the receiver of engine events.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) { e.notifier = n }
}

// WithLogger sets the engine logger.
func WithLogger(l *logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithClock overrides the wall clock.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithSnapshotHook registers fn to receive the learner snapshot after every
// operation that changed it.
func WithSnapshotHook(fn func(store.SnapshotData)) Option {
	return func(e *Engine) { e.onChange = fn }
}

// Engine is the single writer of learner progress. Operations are serialized
// and applied in arrival order.
type Engine struct {
	mu sync.Mutex

	userID       string
	catalog      *content.Catalog
	progress     *progress.Store
	player       *playback.Controller
	achievements *achievements.Service
	eventRepo    store.EventRepo
	notifier     Notifier
	onChange     func(store.SnapshotData)
	log          *logger.Logger
	now          func() time.Time

	current   string
	started   map[string]time.Time
	completed map[string]bool
	activity  activity
}

// New builds an engine over ps and cat.
func New(ps *progress.Store, cat *content.Catalog, opts ...Option) (*Engine, error) {
	if ps == nil {
		return nil, errors.New("gamification: nil progress store")
	}
	if cat == nil {
		return nil, errors.New("gamification: nil catalog")
	}

	e := &Engine{
		userID:    "learner",
		catalog:   cat,
		progress:  ps,
		player:    playback.NewController(),
		log:       logger.Nop(),
		now:       time.Now,
		started:   make(map[string]time.Time),
		completed: make(map[string]bool),
		activity:  newActivity(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.log = e.log.With("user", e.userID)
	svc, err := achievements.NewService(cat.Achievements, e.eventRepo, achievements.WithLogger(e.log))
	if err != nil {
		return nil, err
	}
	e.achievements = svc
	return e, nil
}

// UserID returns the learner id.
func (e *Engine) UserID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.userID
}

// Catalog returns the content catalog.
func (e *Engine) Catalog() *content.Catalog { return e.catalog }

// Progress returns the current XP and level.
func (e *Engine) Progress() progress.State { return e.progress.State() }

// Metrics returns the values achievement predicates are evaluated against.
func (e *Engine) Metrics() achievements.Metrics {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.metricsLocked()
}

// Achievements returns every achievement with its unlock state and progress.
func (e *Engine) Achievements() []achievements.Status {
	return e.achievements.All(e.Metrics())
}

// AchievementCounts returns unlocked totals by rarity.
func (e *Engine) AchievementCounts() (map[achievements.Rarity]int, int) {
	return e.achievements.Counts()
}

// RecentUnlocks returns the newest n unlocks.
func (e *Engine) RecentUnlocks(n int) []achievements.Unlock {
	return e.achievements.Recent(n)
}

// SessionUnlocks returns the unlocks made since the last ResetSession.
func (e *Engine) SessionUnlocks() []achievements.Unlock {
	return e.achievements.SessionUnlocks()
}

// ResetSession returns XP and level to their initial values and clears the
// session unlock list. Completed lessons, unlocked achievements and activity
// counters are kept.
func (e *Engine) ResetSession() {
	e.mu.Lock()
	e.progress.ResetSession()
	e.achievements.ResetSession()
	if e.eventRepo != nil {
		if err := e.eventRepo.AppendActivityEvent(context.Background(), store.ActivityEventData{
			UserID: e.userID,
			Kind:   ActivityReset,
		}); err != nil {
			e.log.Warn("append activity event", "kind", ActivityReset, "error", err)
		}
	}
	e.log.Info("session reset")
	e.mu.Unlock()

	e.dispatch(Outcome{changed: true})
}

// awardLocked applies amount XP and emits one level-up event per level
// crossed.
func (e *Engine) awardLocked(ctx context.Context, out *Outcome, amount int, source, sourceID string) error {
	if amount == 0 {
		return nil
	}
	up, err := e.progress.AwardXP(amount)
	if err != nil {
		return err
	}
	st := e.progress.State()
	out.XPAwarded += amount

	e.log.Debug("xp awarded", "source", source, "id", sourceID, "amount", amount, "total", st.TotalXP)
	if e.eventRepo != nil {
		if err := e.eventRepo.AppendXPEvent(ctx, store.XPEventData{
			UserID:      e.userID,
			Source:      source,
			SourceID:    sourceID,
			Amount:      amount,
			TotalAfter:  st.TotalXP,
			LevelBefore: up.PreviousLevel,
			LevelAfter:  up.NewLevel,
		}); err != nil {
			e.log.Warn("append xp event", "error", err)
		}
	}

	at := e.now()
	for lvl := up.PreviousLevel + 1; lvl <= up.NewLevel; lvl++ {
		out.LevelUps++
		out.add(Event{Kind: EventLeveledUp, At: at, Level: lvl})
		e.log.Info("level up", "level", lvl)
	}
	return nil
}

// evaluateLocked unlocks every achievement whose predicate holds, applying
// their rewards, until no further achievement qualifies.
func (e *Engine) evaluateLocked(ctx context.Context, out *Outcome) error {
	for {
		pending := e.achievements.Qualifying(e.metricsLocked())
		if len(pending) == 0 {
			return nil
		}
		for _, a := range pending {
			u, err := e.achievements.Unlock(ctx, e.userID, a.ID, e.now())
			if err != nil {
				return err
			}
			out.Unlocked = append(out.Unlocked, *u)
			out.add(Event{Kind: EventAchievementUnlocked, At: u.UnlockedAt, Achievement: u, XP: a.XPReward})
			e.log.Info("achievement unlocked", "id", a.ID, "rarity", string(a.Rarity), "reward", a.XPReward)

			if err := e.awardLocked(ctx, out, a.XPReward, SourceAchievement, a.ID); err != nil {
				return err
			}
		}
	}
}

func (e *Engine) metricsLocked() achievements.Metrics {
	st := e.progress.State()
	return achievements.Metrics{
		Level:            st.Level,
		TotalXP:          st.TotalXP,
		LessonsCompleted: len(e.completed),
		QuizzesPassed:    e.activity.quizzesPassed,
		PerfectQuizzes:   e.activity.perfectQuizzes,
		HighScoreQuizzes: e.activity.highScoreQuizzes,
		CurrentStreak:    e.activity.currentStreak,
		BestStreak:       e.activity.bestStreak,
		Logins:           e.activity.logins,
		CoursesStarted:   len(e.activity.coursesStarted),
		CoursesCompleted: e.coursesCompletedLocked(),
		NightSessions:    e.activity.nightSessions,
		FastLessons:      e.activity.fastLessons,
		Invites:          e.activity.invites,
	}
}

func (e *Engine) coursesCompletedLocked() int {
	n := 0
	for _, c := range e.catalog.Courses {
		if len(c.Lessons) == 0 {
			continue
		}
		done := true
		for _, l := range c.Lessons {
			if !e.completed[l.ID] {
				done = false
				break
			}
		}
		if done {
			n++
		}
	}
	return n
}

// dispatch delivers out's events and the changed snapshot. Called without
// the lock held so receivers may call back into the engine.
func (e *Engine) dispatch(out Outcome) {
	if e.notifier != nil {
		for _, ev := range out.Events {
			e.notifier.Notify(ev)
		}
	}
	if out.changed && e.onChange != nil {
		e.onChange(e.Snapshot())
	}
}

// finish stamps the final progress state on out.
func (e *Engine) finish(out *Outcome) {
	out.Progress = e.progress.State()
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k, v := range m {
		if v {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
