package store

import (
	"context"
	"fmt"
)

// LessonEventData captures a lesson completion attempt.
type LessonEventData struct {
	UserID          string
	LessonID        string
	CourseID        string
	Action          string // completed, duplicate or rejected
	WatchedSeconds  float64
	DurationSeconds float64
	Award           int
}

func (r *eventRepo) AppendLessonEvent(ctx context.Context, data LessonEventData) error {
	seqNum, err := r.next(ctx, "lesson")
	if err != nil {
		return err
	}

	_, err = r.client.LessonEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetLessonID(data.LessonID).
		SetCourseID(data.CourseID).
		SetAction(data.Action).
		SetWatchedSeconds(data.WatchedSeconds).
		SetDurationSeconds(data.DurationSeconds).
		SetAward(data.Award).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save lesson event: %w", err)
	}
	return nil
}
