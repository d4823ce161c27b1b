package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure of a progression operation.
type Kind string

const (
	KindInvalidArgument        Kind = "INVALID_ARGUMENT"
	KindIncompleteSubmission   Kind = "INCOMPLETE_SUBMISSION"
	KindInvalidStateTransition Kind = "INVALID_STATE_TRANSITION"
)

// Sentinels for errors.Is matching on the kind alone.
var (
	ErrInvalidArgument        = &Error{Kind: KindInvalidArgument}
	ErrIncompleteSubmission   = &Error{Kind: KindIncompleteSubmission}
	ErrInvalidStateTransition = &Error{Kind: KindInvalidStateTransition}
)

// Error is a classified, user-presentable error.
type Error struct {
	Kind Kind
	Op   string // operation that failed, e.g. "progress.AwardXP"
	Msg  string // message suitable for display
	Err  error  // wrapped cause (optional)
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind. A target with an
// empty Op and Msg matches any error of that kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return (t.Op == "" || t.Op == e.Op) && (t.Msg == "" || t.Msg == e.Msg)
}

// InvalidArgument builds a KindInvalidArgument error.
func InvalidArgument(op, format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// IncompleteSubmission builds a KindIncompleteSubmission error.
func IncompleteSubmission(op, format string, args ...any) *Error {
	return &Error{Kind: KindIncompleteSubmission, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// InvalidStateTransition builds a KindInvalidStateTransition error.
func InvalidStateTransition(op, format string, args ...any) *Error {
	return &Error{Kind: KindInvalidStateTransition, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Message returns the display message of the first *Error in err's chain,
// falling back to err.Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) && e.Msg != "" {
		return e.Msg
	}
	return err.Error()
}
