package sweeper

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hireloop/slotd/pkg/errors"
	"github.com/hireloop/slotd/pkg/logger"
)

type fakeScheduler struct {
	calls atomic.Int64
	count int64
	err   error
}

func (f *fakeScheduler) SweepExpired(ctx context.Context) (int64, error) {
	f.calls.Add(1)
	return f.count, f.err
}

func TestWorker_DoWork(t *testing.T) {
	type testcase struct {
		name     string
		count    int64
		err      error
		wantFail bool
	}

	tests := [...]testcase{
		{
			name: "nothing to sweep",
		},
		{
			name:  "swept some",
			count: 3,
		},
		{
			name:     "store failure propagates",
			err:      errors.Error("mock"),
			wantFail: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &fakeScheduler{count: tt.count, err: tt.err}
			w := New(logger.NewStub(), s, Config{Interval: time.Minute})

			err := w.DoWork(context.Background())
			if tt.wantFail {
				require.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			require.EqualValues(t, 1, s.calls.Load())
		})
	}
}

func TestWorker_Run(t *testing.T) {
	s := &fakeScheduler{}
	w := New(logger.NewStub(), s, Config{Interval: time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool {
		return s.calls.Load() >= 3
	}, time.Second, time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop on context cancellation")
	}
}

func TestWorker_Run_keepsGoingAfterFailure(t *testing.T) {
	s := &fakeScheduler{err: errors.Error("mock")}
	w := New(logger.NewStub(), s, Config{Interval: time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = w.Run(ctx) }()

	// failing passes do not stop the loop
	require.Eventually(t, func() bool {
		return s.calls.Load() >= 2
	}, time.Second, time.Millisecond)
}
