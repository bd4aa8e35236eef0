package concurrent

import (
	"golang.org/x/sync/errgroup"
)

// ForEach runs action for every element of items across at most workers
// goroutines and waits for completion, returning the first error. With one
// worker (or one item) it degrades to a plain loop.
func ForEach[T any](workers int, items []T, action func(T) error) error {
	if workers <= 1 || len(items) <= 1 {
		for _, item := range items {
			if err := action(item); err != nil {
				return err
			}
		}
		return nil
	}

	group := errgroup.Group{}
	group.SetLimit(workers)
	for _, item := range items {
		item := item
		group.Go(func() error {
			return action(item)
		})
	}
	return group.Wait()
}

// ForEachMute is ForEach for actions that cannot fail.
func ForEachMute[T any](workers int, items []T, action func(T)) {
	_ = ForEach(workers, items, func(item T) error {
		action(item)
		return nil
	})
}
