package achievements

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/edusmart/internal/apperr"
	"github.com/abhisek/edusmart/internal/store"
)

// mockEventRepo implements store.EventRepo for achievement tests.
type mockEventRepo struct {
	unlocks []store.AchievementEventData
}

func (m *mockEventRepo) AppendXPEvent(_ context.Context, _ store.XPEventData) error { return nil }
func (m *mockEventRepo) AppendLessonEvent(_ context.Context, _ store.LessonEventData) error {
	return nil
}
func (m *mockEventRepo) AppendQuizEvent(_ context.Context, _ store.QuizEventData) error { return nil }
func (m *mockEventRepo) AppendAchievementEvent(_ context.Context, data store.AchievementEventData) error {
	m.unlocks = append(m.unlocks, data)
	return nil
}
func (m *mockEventRepo) AppendActivityEvent(_ context.Context, _ store.ActivityEventData) error {
	return nil
}
func (m *mockEventRepo) QueryAchievementEvents(_ context.Context, _ store.QueryOpts) ([]store.AchievementEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AchievementCounts(_ context.Context, _ string) (map[string]int, int, error) {
	return nil, 0, nil
}
func (m *mockEventRepo) QueryQuizEvents(_ context.Context, _ store.QueryOpts) ([]store.QuizEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) QuizStats(_ context.Context, _ string) (store.QuizStats, error) {
	return store.QuizStats{}, nil
}
func (m *mockEventRepo) DailyXP(_ context.Context, _ string, _, _ time.Time) ([]store.DailyXPRecord, error) {
	return nil, nil
}

var testDefs = []Achievement{
	{ID: "first-steps", Name: "First Steps", Rarity: RarityCommon, Category: CategoryMilestone, XPReward: 20, Predicate: "lessons_completed >= 1"},
	{ID: "streaker", Name: "Streaker", Rarity: RarityEpic, Category: CategoryConsistency, XPReward: 70, Predicate: "streak >= 7"},
	{ID: "high-five", Name: "High Five", Rarity: RarityRare, Category: CategoryMilestone, XPReward: 30, Predicate: "level >= 5"},
}

func newTestService(t *testing.T) (*Service, *mockEventRepo) {
	t.Helper()
	repo := &mockEventRepo{}
	svc, err := NewService(testDefs, repo)
	require.NoError(t, err)
	return svc, repo
}

var at = time.Date(2025, 1, 22, 10, 0, 0, 0, time.UTC)

func TestNewService_Invalid(t *testing.T) {
	tests := []struct {
		name string
		defs []Achievement
	}{
		{"missing id", []Achievement{{Name: "x", Rarity: RarityCommon, Predicate: "level >= 1"}}},
		{"duplicate id", []Achievement{
			{ID: "a", Rarity: RarityCommon, Predicate: "level >= 1"},
			{ID: "a", Rarity: RarityCommon, Predicate: "level >= 2"},
		}},
		{"bad rarity", []Achievement{{ID: "a", Rarity: "mythic", Predicate: "level >= 1"}}},
		{"negative reward", []Achievement{{ID: "a", Rarity: RarityCommon, XPReward: -1, Predicate: "level >= 1"}}},
		{"bad predicate", []Achievement{{ID: "a", Rarity: RarityCommon, Predicate: "karma >= 1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewService(tt.defs, nil)
			assert.Error(t, err)
		})
	}
}

func TestQualifying(t *testing.T) {
	svc, _ := newTestService(t)

	got := svc.Qualifying(Metrics{Level: 5, LessonsCompleted: 1})
	require.Len(t, got, 2)
	assert.Equal(t, "first-steps", got[0].ID)
	assert.Equal(t, "high-five", got[1].ID)

	assert.Empty(t, svc.Qualifying(Metrics{Level: 1}))
}

func TestUnlock(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	u, err := svc.Unlock(ctx, "alex", "first-steps", at)
	require.NoError(t, err)

	if u.ID != "first-steps" || !u.UnlockedAt.Equal(at) {
		t.Errorf("unlock = %+v", u)
	}
	if !svc.IsUnlocked("first-steps") {
		t.Error("first-steps should be unlocked")
	}
	if len(repo.unlocks) != 1 {
		t.Fatalf("persisted %d unlocks, want 1", len(repo.unlocks))
	}
	if repo.unlocks[0].Rarity != "common" || repo.unlocks[0].Reward != 20 || repo.unlocks[0].UserID != "alex" {
		t.Errorf("persisted = %+v", repo.unlocks[0])
	}
	if len(svc.SessionUnlocks()) != 1 {
		t.Errorf("SessionUnlocks = %d, want 1", len(svc.SessionUnlocks()))
	}

	// Unlocked achievements drop out of evaluation.
	assert.Empty(t, svc.Qualifying(Metrics{LessonsCompleted: 3}))
}

func TestUnlock_Twice(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := svc.Unlock(ctx, "alex", "streaker", at)
	require.NoError(t, err)

	_, err = svc.Unlock(ctx, "alex", "streaker", at.Add(time.Hour))
	assert.ErrorIs(t, err, apperr.ErrInvalidStateTransition)
	assert.Len(t, repo.unlocks, 1)

	_, err = svc.Unlock(ctx, "alex", "nope", at)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestUnlock_NilRepo(t *testing.T) {
	svc, err := NewService(testDefs, nil)
	require.NoError(t, err)

	_, err = svc.Unlock(context.Background(), "alex", "first-steps", at)
	assert.NoError(t, err)
}

func TestAll(t *testing.T) {
	svc, _ := newTestService(t)
	_, _ = svc.Unlock(context.Background(), "alex", "first-steps", at)

	all := svc.All(Metrics{CurrentStreak: 3, Level: 4})
	require.Len(t, all, 3)

	assert.True(t, all[0].Unlocked)
	assert.Equal(t, 100, all[0].Progress)
	assert.False(t, all[1].Unlocked)
	assert.Equal(t, 42, all[1].Progress)
	assert.Equal(t, 80, all[2].Progress)
}

func TestRestoreAndSnapshot(t *testing.T) {
	svc, _ := newTestService(t)

	svc.Restore(map[string]time.Time{"streaker": at, "retired": at})
	assert.True(t, svc.IsUnlocked("streaker"))
	assert.False(t, svc.IsUnlocked("retired"))

	snap := svc.SnapshotData()
	assert.Equal(t, map[string]time.Time{"streaker": at}, snap.Unlocked)

	counts, total := svc.Counts()
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, counts[RarityEpic])
}

func TestRecent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_, _ = svc.Unlock(ctx, "alex", "first-steps", at)
	_, _ = svc.Unlock(ctx, "alex", "high-five", at.Add(2*time.Hour))
	_, _ = svc.Unlock(ctx, "alex", "streaker", at.Add(time.Hour))

	recent := svc.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "high-five", recent[0].ID)
	assert.Equal(t, "streaker", recent[1].ID)
}

func TestReset(t *testing.T) {
	svc, _ := newTestService(t)
	_, _ = svc.Unlock(context.Background(), "alex", "first-steps", at)

	svc.ResetSession()
	assert.Empty(t, svc.SessionUnlocks())
	assert.True(t, svc.IsUnlocked("first-steps"))

	svc.Reset()
	assert.False(t, svc.IsUnlocked("first-steps"))
}

func TestSessionUnlocksReturnsCopy(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Unlock(context.Background(), "alex", "first-steps", at)
	require.NoError(t, err)

	got := svc.SessionUnlocks()
	got[0].ID = "changed"
	assert.Equal(t, "first-steps", svc.SessionUnlocks()[0].ID)
}
