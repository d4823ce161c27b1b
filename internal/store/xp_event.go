package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/abhisek/edusmart/ent/xpevent"
)

// XPEventData captures a single XP award.
type XPEventData struct {
	UserID      string
	Source      string // lesson, quiz, achievement or activity
	SourceID    string
	Amount      int
	TotalAfter  int
	LevelBefore int
	LevelAfter  int
}

// DailyXPRecord is the XP earned on one UTC calendar day.
type DailyXPRecord struct {
	Day time.Time
	XP  int
}

func (r *eventRepo) AppendXPEvent(ctx context.Context, data XPEventData) error {
	seqNum, err := r.next(ctx, "xp")
	if err != nil {
		return err
	}

	_, err = r.client.XPEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetSource(data.Source).
		SetSourceID(data.SourceID).
		SetAmount(data.Amount).
		SetTotalAfter(data.TotalAfter).
		SetLevelBefore(data.LevelBefore).
		SetLevelAfter(data.LevelAfter).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save xp event: %w", err)
	}
	return nil
}

func (r *eventRepo) DailyXP(ctx context.Context, userID string, from, to time.Time) ([]DailyXPRecord, error) {
	query := r.client.XPEvent.Query().
		Where(xpevent.TimestampGTE(from), xpevent.TimestampLTE(to))
	if userID != "" {
		query = query.Where(xpevent.UserID(userID))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query daily xp: %w", err)
	}

	byDay := make(map[time.Time]int)
	for _, e := range events {
		day := e.Timestamp.UTC().Truncate(24 * time.Hour)
		byDay[day] += e.Amount
	}

	records := make([]DailyXPRecord, 0, len(byDay))
	for day, xp := range byDay {
		records = append(records, DailyXPRecord{Day: day, XP: xp})
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Day.Before(records[j].Day)
	})
	return records, nil
}
