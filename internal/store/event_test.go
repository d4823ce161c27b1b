package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type EventRepoSuite struct {
	suite.Suite
	store *Store
	repo  EventRepo
	ctx   context.Context
}

func (s *EventRepoSuite) SetupTest() {
	st, err := Open("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	s.Require().NoError(err)
	s.store = st
	s.repo = st.EventRepo()
	s.ctx = context.Background()
}

func (s *EventRepoSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func (s *EventRepoSuite) TestAppendXPEventAdvancesSequence() {
	err := s.repo.AppendXPEvent(s.ctx, XPEventData{
		UserID: "alex", Source: "lesson", SourceID: "js-1",
		Amount: 50, TotalAfter: 50, LevelBefore: 1, LevelAfter: 1,
	})
	s.Require().NoError(err)

	err = s.repo.AppendLessonEvent(s.ctx, LessonEventData{
		UserID: "alex", LessonID: "js-1", CourseID: "js",
		Action: "completed", WatchedSeconds: 900, DurationSeconds: 900, Award: 50,
	})
	s.Require().NoError(err)

	seq, err := s.store.Sequence(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(2), seq)
}

func (s *EventRepoSuite) TestDailyXP() {
	for _, amount := range []int{20, 30, 50} {
		s.Require().NoError(s.repo.AppendXPEvent(s.ctx, XPEventData{
			UserID: "alex", Source: "quiz", SourceID: "q", Amount: amount,
			TotalAfter: amount, LevelBefore: 1, LevelAfter: 1,
		}))
	}
	s.Require().NoError(s.repo.AppendXPEvent(s.ctx, XPEventData{
		UserID: "sam", Source: "quiz", SourceID: "q", Amount: 999,
		TotalAfter: 999, LevelBefore: 1, LevelAfter: 1,
	}))

	now := time.Now()
	days, err := s.repo.DailyXP(s.ctx, "alex", now.Add(-time.Hour), now.Add(time.Hour))
	s.Require().NoError(err)

	total := 0
	for _, d := range days {
		total += d.XP
	}
	s.Equal(100, total)
	s.NotEmpty(days)
	s.LessOrEqual(len(days), 2)
}

func (s *EventRepoSuite) TestQuizEventsAndStats() {
	attempts := []QuizEventData{
		{Kind: "multiple_choice", CorrectCount: 1, Total: 1, Score: 100, Passed: true, Award: 20},
		{Kind: "timed", CorrectCount: 4, Total: 5, Score: 80, Passed: true, Award: 40},
		{Kind: "timed", CorrectCount: 2, Total: 5, Score: 40, Passed: false},
	}
	for i, a := range attempts {
		a.UserID = "alex"
		a.AttemptID = uuid.NewString()
		a.QuizID = "quiz-" + string(rune('a'+i))
		s.Require().NoError(s.repo.AppendQuizEvent(s.ctx, a))
	}

	records, err := s.repo.QueryQuizEvents(s.ctx, QueryOpts{UserID: "alex", Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal("quiz-c", records[0].QuizID)
	s.Greater(records[0].Sequence, records[1].Sequence)

	stats, err := s.repo.QuizStats(s.ctx, "alex")
	s.Require().NoError(err)
	s.Equal(3, stats.Attempts)
	s.Equal(2, stats.Passed)
	s.Equal(1, stats.Perfect)
	s.InDelta(73.33, stats.AverageScore, 0.01)
	s.Equal(2, stats.ByKind["timed"])
}

func (s *EventRepoSuite) TestQuizEventAttemptIDUnique() {
	data := QuizEventData{
		UserID: "alex", AttemptID: "attempt-1", QuizID: "q", Kind: "timed",
		CorrectCount: 1, Total: 1, Score: 100, Passed: true,
	}
	s.Require().NoError(s.repo.AppendQuizEvent(s.ctx, data))
	s.Error(s.repo.AppendQuizEvent(s.ctx, data))
}

func (s *EventRepoSuite) TestAchievementEvents() {
	unlocks := []AchievementEventData{
		{AchievementID: "first-steps", Name: "First Steps", Rarity: "common", Category: "milestone", Reward: 20},
		{AchievementID: "quiz-master", Name: "Quiz Master", Rarity: "rare", Category: "excellence", Reward: 50},
		{AchievementID: "speed-learner", Name: "Speed Learner", Rarity: "common", Category: "speed", Reward: 25},
	}
	for _, u := range unlocks {
		u.UserID = "alex"
		s.Require().NoError(s.repo.AppendAchievementEvent(s.ctx, u))
	}

	records, err := s.repo.QueryAchievementEvents(s.ctx, QueryOpts{UserID: "alex"})
	s.Require().NoError(err)
	s.Require().Len(records, 3)
	s.Equal("speed-learner", records[0].AchievementID)

	after, err := s.repo.QueryAchievementEvents(s.ctx, QueryOpts{After: records[1].Sequence})
	s.Require().NoError(err)
	s.Len(after, 1)

	counts, total, err := s.repo.AchievementCounts(s.ctx, "alex")
	s.Require().NoError(err)
	s.Equal(3, total)
	s.Equal(2, counts["common"])
	s.Equal(1, counts["rare"])
}

func (s *EventRepoSuite) TestAchievementUnlockOncePerUser() {
	data := AchievementEventData{
		UserID: "alex", AchievementID: "first-steps", Name: "First Steps",
		Rarity: "common", Category: "milestone", Reward: 20,
	}
	s.Require().NoError(s.repo.AppendAchievementEvent(s.ctx, data))
	s.Error(s.repo.AppendAchievementEvent(s.ctx, data))

	data.UserID = "sam"
	s.NoError(s.repo.AppendAchievementEvent(s.ctx, data))
}

func (s *EventRepoSuite) TestReset() {
	s.Require().NoError(s.repo.AppendActivityEvent(s.ctx, ActivityEventData{UserID: "alex", Kind: "login"}))
	s.Require().NoError(s.repo.AppendAchievementEvent(s.ctx, AchievementEventData{
		UserID: "alex", AchievementID: "a", Name: "A", Rarity: "common", Category: "milestone",
	}))
	s.Require().NoError(s.store.SnapshotRepo().Save(s.ctx, &Snapshot{Data: SnapshotData{UserID: "alex"}}))

	s.Require().NoError(s.store.Reset(s.ctx))

	_, total, err := s.repo.AchievementCounts(s.ctx, "")
	s.Require().NoError(err)
	s.Zero(total)

	snap, err := s.store.SnapshotRepo().Latest(s.ctx, "alex")
	s.Require().NoError(err)
	s.Nil(snap)

	seq, err := s.store.Sequence(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(2), seq)
}

func TestEventRepoSuite(t *testing.T) {
	suite.Run(t, new(EventRepoSuite))
}
