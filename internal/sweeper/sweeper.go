// Package sweeper periodically reclassifies overdue scheduled
// interviews as expired, so no booking stays scheduled forever.
package sweeper

import (
	"context"
	"time"

	"github.com/hireloop/slotd/pkg/errors"
	"github.com/hireloop/slotd/pkg/logger"
	"github.com/hireloop/slotd/pkg/tools/await"
)

type Config struct {
	Interval time.Duration `yaml:"interval"`
}

func New(log logger.Logger, s scheduler, cfg Config) Sweeper {
	interval := cfg.Interval
	if interval <= 0 {
		interval = time.Minute
	}

	return &worker{
		scheduler: s,
		interval:  interval,
		log:       log.With("sweeper"),
	}
}

type worker struct {
	scheduler scheduler
	interval  time.Duration
	log       logger.Logger
}

func (w *worker) DoWork(ctx context.Context) error {
	count, err := w.scheduler.SweepExpired(ctx)
	if err != nil {
		return errors.WrapFail(err, "sweep overdue interviews")
	}

	if count > 0 {
		w.log.Debugf("expired %d overdue interviews", count)
	}

	return nil
}

func (w *worker) Run(ctx context.Context) error {
	tick := await.Tick(w.interval)
	defer tick.Stop()

	for tick.Await(ctx) {
		err := w.DoWork(ctx)
		if err != nil {
			// a failed pass is retried on the next tick
			w.log.Warn(err)
		}
	}

	return ctx.Err()
}
