package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/edusmart/ent"
	"github.com/abhisek/edusmart/ent/achievementevent"
)

// AchievementEventData captures an achievement unlock.
type AchievementEventData struct {
	UserID        string
	AchievementID string
	Name          string
	Rarity        string
	Category      string
	Reward        int
}

// AchievementEventRecord is a persisted AchievementEventData.
type AchievementEventRecord struct {
	AchievementEventData
	Sequence  int64
	Timestamp time.Time
}

func (r *eventRepo) AppendAchievementEvent(ctx context.Context, data AchievementEventData) error {
	seqNum, err := r.next(ctx, "achievement")
	if err != nil {
		return err
	}

	_, err = r.client.AchievementEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetAchievementID(data.AchievementID).
		SetName(data.Name).
		SetRarity(data.Rarity).
		SetCategory(data.Category).
		SetReward(data.Reward).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save achievement event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAchievementEvents(ctx context.Context, opts QueryOpts) ([]AchievementEventRecord, error) {
	query := r.client.AchievementEvent.Query().
		Order(ent.Desc(achievementevent.FieldSequence))

	if opts.UserID != "" {
		query = query.Where(achievementevent.UserID(opts.UserID))
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(achievementevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(achievementevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(achievementevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(achievementevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query achievement events: %w", err)
	}

	records := make([]AchievementEventRecord, len(events))
	for i, e := range events {
		records[i] = AchievementEventRecord{
			AchievementEventData: AchievementEventData{
				UserID:        e.UserID,
				AchievementID: e.AchievementID,
				Name:          e.Name,
				Rarity:        e.Rarity,
				Category:      e.Category,
				Reward:        e.Reward,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) AchievementCounts(ctx context.Context, userID string) (map[string]int, int, error) {
	query := r.client.AchievementEvent.Query()
	if userID != "" {
		query = query.Where(achievementevent.UserID(userID))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("query achievement counts: %w", err)
	}

	byRarity := make(map[string]int)
	for _, e := range events {
		byRarity[e.Rarity]++
	}

	total := len(events)
	return byRarity, total, nil
}
