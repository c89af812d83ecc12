package await

import "context"

type Awaiter interface {
	// Await blocks until the awaited event fires or ctx is done.
	// It reports false when interrupted by the context.
	Await(ctx context.Context) (waited bool)
	Stop()
}
