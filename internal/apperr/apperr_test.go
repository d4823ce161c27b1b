package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestIs_MatchesKindSentinel(t *testing.T) {
	err := InvalidArgument("progress.AwardXP", "amount must be non-negative, got %d", -5)

	if !errors.Is(err, ErrInvalidArgument) {
		t.Error("expected errors.Is to match ErrInvalidArgument")
	}
	if errors.Is(err, ErrIncompleteSubmission) {
		t.Error("InvalidArgument should not match ErrIncompleteSubmission")
	}
}

func TestIs_ThroughWrapping(t *testing.T) {
	inner := IncompleteSubmission("quiz.Grade", "submit all answers first")
	wrapped := fmt.Errorf("submit quiz: %w", inner)

	if !errors.Is(wrapped, ErrIncompleteSubmission) {
		t.Error("expected wrapped error to match ErrIncompleteSubmission")
	}
	if KindOf(wrapped) != KindIncompleteSubmission {
		t.Errorf("KindOf = %q, want %q", KindOf(wrapped), KindIncompleteSubmission)
	}
	if Message(wrapped) != "submit all answers first" {
		t.Errorf("Message = %q", Message(wrapped))
	}
}

func TestKindOf_PlainError(t *testing.T) {
	if k := KindOf(errors.New("boom")); k != "" {
		t.Errorf("KindOf(plain) = %q, want empty", k)
	}
	if m := Message(errors.New("boom")); m != "boom" {
		t.Errorf("Message(plain) = %q, want %q", m, "boom")
	}
	if m := Message(nil); m != "" {
		t.Errorf("Message(nil) = %q, want empty", m)
	}
}

func TestError_String(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{&Error{Kind: KindInvalidArgument}, "INVALID_ARGUMENT"},
		{&Error{Kind: KindInvalidArgument, Op: "playback.Seek", Msg: "out of range"}, "playback.Seek: out of range"},
		{&Error{Kind: KindInvalidStateTransition, Msg: "graded", Err: errors.New("x")}, "graded: x"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
