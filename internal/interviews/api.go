package interviews

import (
	"context"
	"time"

	"github.com/hireloop/slotd/internal/repo/models"
)

// DefaultDurationMinutes is used when a schedule request leaves the
// slot length unset.
const DefaultDurationMinutes = 10

type API interface {
	// Schedule books a slot for the candidate, guarded in order by: job
	// existence, application membership, future start time, slot
	// conflict. The first failing guard wins.
	Schedule(ctx context.Context, candidateID, jobID string, at time.Time, durationMinutes int) (*models.Interview, error)

	// Start moves the caller's scheduled interview to in_progress.
	// Allowed only while scheduledAt <= now < endTime.
	Start(ctx context.Context, id, candidateID string) (*StartInfo, error)

	// Complete finishes an in_progress interview, optionally attaching notes.
	Complete(ctx context.Context, id, candidateID, notes string) error

	// Cancel terminates a scheduled or in_progress interview. The
	// record is kept with status cancelled.
	Cancel(ctx context.Context, id, candidateID string) error

	// Get returns the caller's interview with derived fields computed
	// against the current clock reading.
	Get(ctx context.Context, id, candidateID string) (*View, error)

	// ListMine sweeps overdue bookings first, then returns the caller's
	// active interviews ordered by start time.
	ListMine(ctx context.Context, candidateID string) ([]View, error)

	// SweepExpired marks every overdue scheduled interview expired and
	// reports how many were transitioned. Idempotent.
	SweepExpired(ctx context.Context) (int64, error)
}

// View is an interview together with its clock-derived fields.
// The transport layer decides how to encode the durations.
type View struct {
	models.Interview

	EndTime        time.Time
	IsExpired      bool
	TimeUntilStart time.Duration
	TimeRemaining  time.Duration
}

type StartInfo struct {
	TimeRemaining   time.Duration
	DurationMinutes int
}

func newView(interview models.Interview, now time.Time) View {
	v := View{
		Interview: interview,
		EndTime:   interview.EndTime(),
	}

	v.IsExpired = interview.Status == models.StatusScheduled && now.After(v.EndTime)

	if until := interview.ScheduledAt.Sub(now); until > 0 {
		v.TimeUntilStart = until
	}

	if interview.Status == models.StatusInProgress && interview.StartedAt != nil {
		if left := interview.StartedAt.Add(interview.Duration()).Sub(now); left > 0 {
			v.TimeRemaining = left
		}
	}

	return v
}
