package interviews

import (
	"fmt"
	"time"

	"github.com/hireloop/slotd/internal/repo/models"
	"github.com/hireloop/slotd/pkg/errors"
)

var (
	// ErrNotFound covers both an absent interview and one owned by
	// somebody else, so a caller can't tell whether an id exists.
	ErrNotFound = errors.Error("interview not found")

	ErrJobNotFound  = errors.Error("job not found")
	ErrNotApplied   = errors.Error("no application on file for this job")
	ErrInvalidTime  = errors.Error("scheduled time must be in the future")
	ErrSlotConflict = errors.Error("slot overlaps another booking")

	// ErrStoreUnavailable marks store timeouts and failures; the
	// operation did not happen and may be retried by the caller.
	ErrStoreUnavailable = errors.Error("store unavailable")

	ErrInvalidTransition = errors.Error("invalid transition")

	// refinements of ErrInvalidTransition for the start guard
	ErrTooEarly      = errors.Error("too early to start")
	ErrWindowExpired = errors.Error("start window has passed")
)

// TransitionError reports a lifecycle guard failure: which event was
// attempted and the status the interview was in. Matches
// ErrInvalidTransition and, when set, its Reason.
type TransitionError struct {
	Event string
	From  models.InterviewStatus

	Reason error

	// TimeUntilStart is filled for ErrTooEarly.
	TimeUntilStart time.Duration
}

func (e *TransitionError) Error() string {
	if e.Reason != nil {
		return fmt.Sprintf("can't %s interview in status %q: %s", e.Event, e.From, e.Reason)
	}
	return fmt.Sprintf("can't %s interview in status %q", e.Event, e.From)
}

func (e *TransitionError) Is(target error) bool {
	if target == ErrInvalidTransition {
		return true
	}
	return e.Reason != nil && target == e.Reason
}

func invalidTransition(event string, from models.InterviewStatus) error {
	return &TransitionError{Event: event, From: from}
}

func tooEarly(from models.InterviewStatus, until time.Duration) error {
	return &TransitionError{
		Event:          "start",
		From:           from,
		Reason:         ErrTooEarly,
		TimeUntilStart: until,
	}
}

func windowExpired(from models.InterviewStatus) error {
	return &TransitionError{Event: "start", From: from, Reason: ErrWindowExpired}
}

func storeFailure(err error, whatFailed string) error {
	return errors.Errorf("%w: %w", ErrStoreUnavailable, errors.WrapFail(err, whatFailed))
}
