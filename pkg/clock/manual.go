package clock

import (
	"sync"
	"time"
)

// NewManual returns a clock frozen at ts until advanced.
func NewManual(ts time.Time) *Manual {
	return &Manual{now: ts}
}

type Manual struct {
	mu  sync.Mutex
	now time.Time
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

func (m *Manual) Set(ts time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = ts
}
