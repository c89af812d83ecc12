package models

import (
	"context"
	"time"

	"github.com/hireloop/slotd/pkg/errors"
)

type InterviewsRepo interface {
	// Book inserts the interview unless another active interview of the
	// same candidate overlaps its slot. The overlap scan and the insert
	// are atomic: concurrent Book calls can't both claim overlapping
	// slots. conflict is reported without an error.
	Book(ctx context.Context, interview Interview) (conflict bool, err error)

	// Find returns the interview or nil if there is none with such id.
	Find(ctx context.Context, id string) (*Interview, error)

	// FindActiveByCandidate returns the candidate's interviews in
	// statuses {scheduled, in_progress}, ordered by slot start ascending.
	FindActiveByCandidate(ctx context.Context, candidateID string) ([]Interview, error)

	// Start moves scheduled -> in_progress and records startedAt.
	// Reports false if the interview is no longer in scheduled status.
	Start(ctx context.Context, id string, at time.Time) (bool, error)

	// Complete moves in_progress -> completed, recording completedAt and notes.
	Complete(ctx context.Context, id string, at time.Time, notes string) (bool, error)

	// Cancel moves scheduled or in_progress -> cancelled. The record is
	// retained; reports false if the interview already left both statuses.
	Cancel(ctx context.Context, id string) (bool, error)

	// SweepExpired marks every scheduled interview whose slot end is
	// before now as expired and returns how many were transitioned.
	SweepExpired(ctx context.Context, now time.Time) (int64, error)
}

type Interview struct {
	ID          string `json:"id"           bson:"_id"`
	CandidateID string `json:"candidate_id" bson:"candidate_id"`
	JobID       string `json:"job_id"       bson:"job_id"`

	ScheduledAt     time.Time `json:"scheduled_at"     bson:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes" bson:"duration_minutes"`

	// Slot duplicates [ScheduledAt, ScheduledAt+Duration) in unix millis
	// so the store can run the overlap scan as a plain range query.
	Slot Slot `json:"slot" bson:"slot"`

	Status InterviewStatus `json:"status" bson:"status"`

	StartedAt   *time.Time `json:"started_at,omitempty"   bson:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
	Notes       string     `json:"notes,omitempty"        bson:"notes,omitempty"`
}

func (i Interview) EndTime() time.Time {
	return time.UnixMilli(i.Slot[1]).UTC()
}

func (i Interview) Duration() time.Duration {
	return time.Duration(i.DurationMinutes) * time.Minute
}

const (
	InterviewFieldID          = "_id"
	InterviewFieldCandidateID = "candidate_id"
	InterviewFieldJobID       = "job_id"
	InterviewFieldDuration    = "duration_minutes"
	InterviewFieldSlot        = "slot"
	InterviewFieldStatus      = "status"
	InterviewFieldStartedAt   = "started_at"
	InterviewFieldCompletedAt = "completed_at"
	InterviewFieldNotes       = "notes"
)

// Slot is a half-open booking interval [start, end) in unix milliseconds.
type Slot [2]int64

func NewSlot(at time.Time, duration time.Duration) Slot {
	start := at.UnixMilli()
	return Slot{start, start + duration.Milliseconds()}
}

// Overlaps reports whether two half-open intervals intersect.
// Abutting slots (s[1] == other[0]) do not.
func (s Slot) Overlaps(other Slot) bool {
	return s[0] < other[1] && other[0] < s[1]
}

type InterviewStatus int

const (
	// StatusScheduled is set when the slot has been booked
	StatusScheduled = InterviewStatus(iota) + 1

	// StatusInProgress is set when the candidate has started on time
	StatusInProgress

	// StatusCompleted is set when the interview is done, terminal
	StatusCompleted

	// StatusCancelled is set on explicit cancellation, terminal
	StatusCancelled

	// StatusExpired is set by the sweeper when the slot has passed
	// without a start, terminal
	StatusExpired
)

// Active reports whether the interview still claims its slot.
func (s InterviewStatus) Active() bool {
	return s == StatusScheduled || s == StatusInProgress
}

func ActiveStatuses() []InterviewStatus {
	return []InterviewStatus{StatusScheduled, StatusInProgress}
}

func (s InterviewStatus) String() string {
	switch s {
	case StatusScheduled:
		return "scheduled"
	case StatusInProgress:
		return "in_progress"
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	case StatusExpired:
		return "expired"
	default:
		return "unknown"
	}
}

func (s InterviewStatus) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

func (s *InterviewStatus) UnmarshalJSON(raw []byte) error {
	switch string(raw) {
	case `"scheduled"`:
		*s = StatusScheduled
	case `"in_progress"`:
		*s = StatusInProgress
	case `"completed"`:
		*s = StatusCompleted
	case `"cancelled"`:
		*s = StatusCancelled
	case `"expired"`:
		*s = StatusExpired
	default:
		return errors.Errorf("unknown interview status %s", raw)
	}
	return nil
}
