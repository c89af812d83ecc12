package sweeper

import "context"

type Sweeper interface {
	// DoWork runs one sweep pass.
	DoWork(ctx context.Context) error

	// Run sweeps on the configured interval until ctx is done.
	Run(ctx context.Context) error
}

type scheduler interface {
	SweepExpired(ctx context.Context) (int64, error)
}
