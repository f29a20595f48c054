package dashboard

import (
	"context"
	"errors"
	"sync"
)

// fetchAll runs the fetches concurrently and returns the first error encountered.
// The first failure cancels the remaining fetches, whose cancellations are not reported.
func fetchAll(ctx context.Context, fetches ...func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr, firstCanceled error

	for _, fetch := range fetches {
		wg.Add(1)
		go func(fetch func(ctx context.Context) error) {
			defer wg.Done()

			err := fetch(ctx)
			if err == nil {
				return
			}

			mu.Lock()
			defer mu.Unlock()
			switch {
			case errors.Is(err, context.Canceled):
				if firstCanceled == nil {
					firstCanceled = err
				}
			case firstErr == nil:
				firstErr = err
			}
			cancel()
		}(fetch)
	}

	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return firstCanceled
}
