package store

import (
	"context"
	"fmt"
)

// ActivityEventData captures an external activity trigger.
type ActivityEventData struct {
	UserID string
	Kind   string // login, streak or reset
	Value  int
}

func (r *eventRepo) AppendActivityEvent(ctx context.Context, data ActivityEventData) error {
	seqNum, err := r.next(ctx, "activity")
	if err != nil {
		return err
	}

	_, err = r.client.ActivityEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetKind(data.Kind).
		SetValue(data.Value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save activity event: %w", err)
	}
	return nil
}
