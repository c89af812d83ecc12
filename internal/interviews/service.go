package interviews

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hireloop/slotd/internal/repo"
	"github.com/hireloop/slotd/internal/repo/models"
	"github.com/hireloop/slotd/pkg/clock"
	"github.com/hireloop/slotd/pkg/logger"
)

func New(log logger.Logger, store repo.Client, clk clock.Clock) API {
	return &service{
		store: store,
		clock: clk,
		log:   log.With("interviews"),
	}
}

type service struct {
	store repo.Client
	clock clock.Clock
	log   logger.Logger
}

func (s *service) Schedule(
	ctx context.Context,
	candidateID, jobID string,
	at time.Time,
	durationMinutes int,
) (*models.Interview, error) {
	if durationMinutes == 0 {
		durationMinutes = DefaultDurationMinutes
	}
	if durationMinutes < 0 {
		return nil, ErrInvalidTime
	}

	job, err := s.store.Jobs().Find(ctx, jobID)
	if err != nil {
		return nil, storeFailure(err, "look up job")
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	if !job.HasApplicant(candidateID) {
		return nil, ErrNotApplied
	}

	if !at.After(s.clock.Now()) {
		return nil, ErrInvalidTime
	}

	interview := models.Interview{
		ID:              uuid.NewString(),
		CandidateID:     candidateID,
		JobID:           jobID,
		ScheduledAt:     at.UTC(),
		DurationMinutes: durationMinutes,
		Slot:            models.NewSlot(at, time.Duration(durationMinutes)*time.Minute),
		Status:          models.StatusScheduled,
	}

	// a store error here means conflict status is unknown, so no booking
	conflict, err := s.store.Interviews().Book(ctx, interview)
	if err != nil {
		return nil, storeFailure(err, "book slot")
	}
	if conflict {
		return nil, ErrSlotConflict
	}

	s.log.Infof("booked interview %s for candidate %s at %s", interview.ID, candidateID, at)
	return &interview, nil
}

func (s *service) Start(ctx context.Context, id, candidateID string) (*StartInfo, error) {
	interview, err := s.owned(ctx, id, candidateID)
	if err != nil {
		return nil, err
	}

	if interview.Status != models.StatusScheduled {
		return nil, invalidTransition("start", interview.Status)
	}

	now := s.clock.Now()
	if now.Before(interview.ScheduledAt) {
		return nil, tooEarly(interview.Status, interview.ScheduledAt.Sub(now))
	}
	if !now.Before(interview.EndTime()) {
		return nil, windowExpired(interview.Status)
	}

	ok, err := s.store.Interviews().Start(ctx, id, now)
	if err != nil {
		return nil, storeFailure(err, "start interview")
	}
	if !ok {
		// lost the race: a concurrent transition got there first
		return nil, invalidTransition("start", interview.Status)
	}

	return &StartInfo{
		TimeRemaining:   interview.Duration(),
		DurationMinutes: interview.DurationMinutes,
	}, nil
}

func (s *service) Complete(ctx context.Context, id, candidateID, notes string) error {
	interview, err := s.owned(ctx, id, candidateID)
	if err != nil {
		return err
	}

	if interview.Status != models.StatusInProgress {
		return invalidTransition("complete", interview.Status)
	}

	ok, err := s.store.Interviews().Complete(ctx, id, s.clock.Now(), notes)
	if err != nil {
		return storeFailure(err, "complete interview")
	}
	if !ok {
		return invalidTransition("complete", interview.Status)
	}

	return nil
}

func (s *service) Cancel(ctx context.Context, id, candidateID string) error {
	interview, err := s.owned(ctx, id, candidateID)
	if err != nil {
		return err
	}

	if !interview.Status.Active() {
		return invalidTransition("cancel", interview.Status)
	}

	ok, err := s.store.Interviews().Cancel(ctx, id)
	if err != nil {
		return storeFailure(err, "cancel interview")
	}
	if !ok {
		return invalidTransition("cancel", interview.Status)
	}

	s.log.Infof("cancelled interview %s", id)
	return nil
}

func (s *service) Get(ctx context.Context, id, candidateID string) (*View, error) {
	interview, err := s.owned(ctx, id, candidateID)
	if err != nil {
		return nil, err
	}

	v := newView(*interview, s.clock.Now())
	return &v, nil
}

func (s *service) ListMine(ctx context.Context, candidateID string) ([]View, error) {
	// sweep first so a stale scheduled booking is never shown
	_, err := s.SweepExpired(ctx)
	if err != nil {
		return nil, err
	}

	active, err := s.store.Interviews().FindActiveByCandidate(ctx, candidateID)
	if err != nil {
		return nil, storeFailure(err, "list candidate's interviews")
	}

	now := s.clock.Now()
	views := make([]View, 0, len(active))
	for _, interview := range active {
		views = append(views, newView(interview, now))
	}

	return views, nil
}

func (s *service) SweepExpired(ctx context.Context) (int64, error) {
	count, err := s.store.Interviews().SweepExpired(ctx, s.clock.Now())
	if err != nil {
		return 0, storeFailure(err, "sweep overdue interviews")
	}

	if count > 0 {
		s.log.Infof("swept %d overdue interviews", count)
	}

	return count, nil
}

// owned loads an interview scoped to the caller. A missing interview
// and somebody else's interview are indistinguishable to the caller.
func (s *service) owned(ctx context.Context, id, candidateID string) (*models.Interview, error) {
	interview, err := s.store.Interviews().Find(ctx, id)
	if err != nil {
		return nil, storeFailure(err, "find interview")
	}

	if interview == nil || interview.CandidateID != candidateID {
		return nil, ErrNotFound
	}

	return interview, nil
}
