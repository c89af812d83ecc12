package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hireloop/slotd/internal/repo/models"
)

// NewMemoryClient returns an in-process Client with the same conditional
// update semantics as the mongo one. It backs the dev environment and
// the service tests.
func NewMemoryClient() *MemoryClient {
	return &MemoryClient{
		interviews: &memoryInterviews{byID: map[string]models.Interview{}},
		jobs:       &memoryJobs{byID: map[string]models.Job{}},
	}
}

type MemoryClient struct {
	interviews *memoryInterviews
	jobs       *memoryJobs
}

func (c *MemoryClient) Interviews() models.InterviewsRepo {
	return c.interviews
}

func (c *MemoryClient) Jobs() models.JobsRepo {
	return c.jobs
}

// AddJob seeds the job collaborator.
func (c *MemoryClient) AddJob(job models.Job) {
	c.jobs.mu.Lock()
	defer c.jobs.mu.Unlock()
	c.jobs.byID[job.ID] = job
}

func (c *MemoryClient) Close(ctx context.Context) error {
	return nil
}

type memoryInterviews struct {
	mu   sync.Mutex
	byID map[string]models.Interview
}

func (m *memoryInterviews) Book(ctx context.Context, interview models.Interview) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, other := range m.byID {
		if other.CandidateID != interview.CandidateID || !other.Status.Active() {
			continue
		}
		if other.Slot.Overlaps(interview.Slot) {
			return true, nil
		}
	}

	m.byID[interview.ID] = interview
	return false, nil
}

func (m *memoryInterviews) Find(ctx context.Context, id string) (*models.Interview, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	interview, ok := m.byID[id]
	if !ok {
		return nil, nil
	}

	return &interview, nil
}

func (m *memoryInterviews) FindActiveByCandidate(ctx context.Context, candidateID string) ([]models.Interview, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var active []models.Interview
	for _, interview := range m.byID {
		if interview.CandidateID == candidateID && interview.Status.Active() {
			active = append(active, interview)
		}
	}

	sort.Slice(active, func(i, j int) bool {
		return active[i].Slot[0] < active[j].Slot[0]
	})

	return active, nil
}

func (m *memoryInterviews) Start(ctx context.Context, id string, at time.Time) (bool, error) {
	return m.transition(id, []models.InterviewStatus{models.StatusScheduled}, func(i *models.Interview) {
		i.Status = models.StatusInProgress
		i.StartedAt = &at
	})
}

func (m *memoryInterviews) Complete(ctx context.Context, id string, at time.Time, notes string) (bool, error) {
	return m.transition(id, []models.InterviewStatus{models.StatusInProgress}, func(i *models.Interview) {
		i.Status = models.StatusCompleted
		i.CompletedAt = &at
		if notes != "" {
			i.Notes = notes
		}
	})
}

func (m *memoryInterviews) Cancel(ctx context.Context, id string) (bool, error) {
	return m.transition(id, models.ActiveStatuses(), func(i *models.Interview) {
		i.Status = models.StatusCancelled
	})
}

func (m *memoryInterviews) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var count int64
	for id, interview := range m.byID {
		if interview.Status == models.StatusScheduled && interview.Slot[1] < now.UnixMilli() {
			interview.Status = models.StatusExpired
			m.byID[id] = interview
			count++
		}
	}

	return count, nil
}

func (m *memoryInterviews) transition(id string, from []models.InterviewStatus, apply func(*models.Interview)) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	interview, ok := m.byID[id]
	if !ok {
		return false, nil
	}

	matched := false
	for _, s := range from {
		if interview.Status == s {
			matched = true
			break
		}
	}
	if !matched {
		return false, nil
	}

	apply(&interview)
	m.byID[id] = interview
	return true, nil
}

type memoryJobs struct {
	mu   sync.Mutex
	byID map[string]models.Job
}

func (m *memoryJobs) Find(ctx context.Context, id string) (*models.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.byID[id]
	if !ok {
		return nil, nil
	}

	return &job, nil
}
