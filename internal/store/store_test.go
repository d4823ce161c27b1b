package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func memoryDSN() string {
	return "file:" + uuid.NewString() + "?mode=memory&cache=shared"
}

type SnapshotRepoSuite struct {
	suite.Suite
	store *Store
	repo  SnapshotRepo
	ctx   context.Context
	base  time.Time
}

func (s *SnapshotRepoSuite) SetupTest() {
	st, err := Open(memoryDSN())
	s.Require().NoError(err)
	s.store = st
	s.repo = st.SnapshotRepo()
	s.ctx = context.Background()
	s.base = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
}

func (s *SnapshotRepoSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

// saveSeries stores n snapshots for user, one minute apart.
func (s *SnapshotRepoSuite) saveSeries(user string, n int) {
	for i := range n {
		s.Require().NoError(s.repo.Save(s.ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: s.base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{UserID: user, Progress: &ProgressSnapshotData{Level: i + 1}},
		}))
	}
}

func (s *SnapshotRepoSuite) count() int {
	n, err := s.store.Client().Snapshot.Query().Count(s.ctx)
	s.Require().NoError(err)
	return n
}

func (s *SnapshotRepoSuite) TestLatestWhenEmpty() {
	snap, err := s.repo.Latest(s.ctx, "maya")
	s.Require().NoError(err)
	s.Nil(snap)
}

func (s *SnapshotRepoSuite) TestRoundTripKeepsEverySection() {
	s.Require().NoError(s.repo.Save(s.ctx, &Snapshot{
		Sequence:  42,
		Timestamp: s.base,
		Data: SnapshotData{
			UserID:       "maya",
			Progress:     &ProgressSnapshotData{TotalXP: 640, Level: 7, XPToNextLevel: 60},
			Lessons:      &LessonsSnapshotData{Completed: []string{"go-intro", "go-types"}},
			Achievements: &AchievementsSnapshotData{Unlocked: map[string]time.Time{"first-lesson": s.base}},
			Activity:     &ActivitySnapshotData{CurrentStreak: 3, BestStreak: 9},
		},
	}))

	snap, err := s.repo.Latest(s.ctx, "maya")
	s.Require().NoError(err)
	s.Require().NotNil(snap)

	s.Equal(int64(42), snap.Sequence)
	s.Equal(SnapshotVersion, snap.Data.Version)
	s.Equal(7, snap.Data.Progress.Level)
	s.Equal(60, snap.Data.Progress.XPToNextLevel)
	s.ElementsMatch([]string{"go-intro", "go-types"}, snap.Data.Lessons.Completed)
	s.True(snap.Data.Achievements.Unlocked["first-lesson"].Equal(s.base))
	s.Equal(9, snap.Data.Activity.BestStreak)
}

func (s *SnapshotRepoSuite) TestLatestIsScopedToUser() {
	s.saveSeries("maya", 1)

	other, err := s.repo.Latest(s.ctx, "omar")
	s.Require().NoError(err)
	s.Nil(other)
}

func (s *SnapshotRepoSuite) TestSaveRequiresUser() {
	s.Error(s.repo.Save(s.ctx, &Snapshot{}))
}

func (s *SnapshotRepoSuite) TestLatestReturnsHighestSequence() {
	s.saveSeries("maya", 3)

	snap, err := s.repo.Latest(s.ctx, "maya")
	s.Require().NoError(err)
	s.Equal(int64(3), snap.Sequence)
	s.Equal(3, snap.Data.Progress.Level)
}

func (s *SnapshotRepoSuite) TestPruneKeepsNewest() {
	s.saveSeries("maya", 7)
	s.saveSeries("omar", 1)

	s.Require().NoError(s.repo.Prune(s.ctx, "maya", 5))
	s.Equal(6, s.count(), "other learners are untouched")

	snap, err := s.repo.Latest(s.ctx, "maya")
	s.Require().NoError(err)
	s.Equal(int64(7), snap.Sequence)
}

func (s *SnapshotRepoSuite) TestPruneBelowKeepIsNoop() {
	s.saveSeries("maya", 2)
	s.Require().NoError(s.repo.Prune(s.ctx, "maya", 5))
	s.Equal(2, s.count())
}

func (s *SnapshotRepoSuite) TestLatestPrefersLaterSaveOnSameSequence() {
	for _, level := range []int{2, 3} {
		s.Require().NoError(s.repo.Save(s.ctx, &Snapshot{
			Sequence: 9,
			Data:     SnapshotData{UserID: "maya", Progress: &ProgressSnapshotData{Level: level}},
		}))
	}
	snap, err := s.repo.Latest(s.ctx, "maya")
	s.Require().NoError(err)
	s.Equal(3, snap.Data.Progress.Level)
}

func (s *SnapshotRepoSuite) TestLatestRejectsNewerLayout() {
	_, err := s.store.Client().Snapshot.Create().
		SetUserID("maya").
		SetSequence(1).
		SetVersion(SnapshotVersion + 1).
		SetData([]byte(`{}`)).
		Save(s.ctx)
	s.Require().NoError(err)

	_, err = s.repo.Latest(s.ctx, "maya")
	s.ErrorIs(err, ErrSnapshotTooNew)
}

func TestSnapshotRepoSuite(t *testing.T) {
	suite.Run(t, new(SnapshotRepoSuite))
}

func TestOpenAppliesPragmas(t *testing.T) {
	st, err := Open(memoryDSN(), WithBusyTimeout(250*time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	// In-memory databases always report journal_mode "memory".
	for pragma, want := range map[string]string{
		"foreign_keys": "1",
		"synchronous":  "1",
		"busy_timeout": "250",
	} {
		var got string
		require.NoError(t, st.DB().QueryRow("PRAGMA "+pragma).Scan(&got))
		assert.Equal(t, want, got, pragma)
	}
}

func TestOpenCreatesTables(t *testing.T) {
	st, err := Open(memoryDSN())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	for _, table := range []string{"snapshots", "xp_events", "lesson_events", "quiz_events", "achievement_events", "activity_events", "event_sequence"} {
		var name string
		err := st.DB().QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		assert.NoError(t, err, table)
	}
}

func TestOpenWithoutMigrationReusesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.db")
	first, err := Open(path, WithJournalMode("DELETE"))
	require.NoError(t, err)
	require.NoError(t, first.SnapshotRepo().Save(context.Background(), &Snapshot{Sequence: 1, Data: SnapshotData{UserID: "maya"}}))
	require.NoError(t, first.Close())

	second, err := Open(path, WithoutMigration())
	require.NoError(t, err)
	t.Cleanup(func() { second.Close() })

	snap, err := second.SnapshotRepo().Latest(context.Background(), "maya")
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, int64(1), snap.Sequence)
}

func TestSequenceIsMonotonic(t *testing.T) {
	st, err := Open(memoryDSN())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	ctx := context.Background()

	for want := int64(1); want <= 5; want++ {
		got, err := st.seq.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	cur, err := st.Sequence(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), cur)
}

func TestDataDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	dir, err := DataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", AppDir), dir)
}
