package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/edusmart/ent"
	"github.com/abhisek/edusmart/ent/quizevent"
)

// QuizEventData captures a graded quiz attempt.
type QuizEventData struct {
	UserID       string
	AttemptID    string
	QuizID       string
	Kind         string
	CorrectCount int
	Total        int
	Score        int
	Passed       bool
	Award        int
	ElapsedMs    int64
}

// QuizEventRecord is a persisted QuizEventData.
type QuizEventRecord struct {
	QuizEventData
	Sequence  int64
	Timestamp time.Time
}

// QuizStats aggregates graded attempts.
type QuizStats struct {
	Attempts     int
	Passed       int
	Perfect      int
	AverageScore float64
	ByKind       map[string]int
}

func (r *eventRepo) AppendQuizEvent(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.next(ctx, "quiz")
	if err != nil {
		return err
	}

	_, err = r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetAttemptID(data.AttemptID).
		SetQuizID(data.QuizID).
		SetKind(data.Kind).
		SetCorrectCount(data.CorrectCount).
		SetTotal(data.Total).
		SetScore(data.Score).
		SetPassed(data.Passed).
		SetAward(data.Award).
		SetElapsedMs(data.ElapsedMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryQuizEvents(ctx context.Context, opts QueryOpts) ([]QuizEventRecord, error) {
	query := r.client.QuizEvent.Query().
		Order(ent.Desc(quizevent.FieldSequence))

	if opts.UserID != "" {
		query = query.Where(quizevent.UserID(opts.UserID))
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(quizevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(quizevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(quizevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(quizevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz events: %w", err)
	}

	records := make([]QuizEventRecord, len(events))
	for i, e := range events {
		records[i] = QuizEventRecord{
			QuizEventData: QuizEventData{
				UserID:       e.UserID,
				AttemptID:    e.AttemptID,
				QuizID:       e.QuizID,
				Kind:         e.Kind,
				CorrectCount: e.CorrectCount,
				Total:        e.Total,
				Score:        e.Score,
				Passed:       e.Passed,
				Award:        e.Award,
				ElapsedMs:    e.ElapsedMs,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) QuizStats(ctx context.Context, userID string) (QuizStats, error) {
	query := r.client.QuizEvent.Query()
	if userID != "" {
		query = query.Where(quizevent.UserID(userID))
	}

	events, err := query.All(ctx)
	if err != nil {
		return QuizStats{}, fmt.Errorf("query quiz stats: %w", err)
	}

	stats := QuizStats{ByKind: make(map[string]int)}
	scoreSum := 0
	for _, e := range events {
		stats.Attempts++
		stats.ByKind[e.Kind]++
		scoreSum += e.Score
		if e.Passed {
			stats.Passed++
		}
		if e.Total > 0 && e.CorrectCount == e.Total {
			stats.Perfect++
		}
	}
	if stats.Attempts > 0 {
		stats.AverageScore = float64(scoreSum) / float64(stats.Attempts)
	}
	return stats, nil
}
