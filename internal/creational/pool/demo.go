package pool

import (
	"context"
	"fmt"
	"io"
)

// Demo walks a worker pool through activation, deactivation and two
// resizes at sizes derived from the configured limit. At the default limit
// of 8 that means starting with 4 workers and resizing to 7, then 6. The
// limit must be at least 4 so the initial pool covers both activations.
func Demo(limit int) func(ctx context.Context, w io.Writer) error {
	return func(ctx context.Context, w io.Writer) error {
		initial := limit / 2

		fmt.Fprintf(w, "Creating worker pool with %d workers...\n", initial)
		workers, err := NewWorkerPool(initial)
		if err != nil {
			return err
		}

		fmt.Fprintln(w, "\nActivating 2 workers...")
		if _, err := workers.Activate(); err != nil {
			return err
		}
		worker2, err := workers.Activate()
		if err != nil {
			return err
		}

		fmt.Fprintln(w, "\nDeactivating 1 worker...")
		workers.Deactivate(worker2)
		fmt.Fprintf(w, "1 Worker Active: %v\n", workers.ActiveCount() == 1)

		fmt.Fprintf(w, "\nRe-sizing pool to %d workers...\n", limit-1)
		if err := workers.Resize(limit - 1); err != nil {
			return err
		}
		fmt.Fprintf(w, "%d Total Workers: %v\n", limit-1, workers.TotalCount() == limit-1)

		fmt.Fprintf(w, "\nRe-sizing pool to %d workers...\n", limit-2)
		if err := workers.Resize(limit - 2); err != nil {
			return err
		}
		fmt.Fprintf(w, "Total Workers: %v\n", workers.TotalCount() == limit-2)
		fmt.Fprintf(w, "1 Worker Still Active: %v\n", workers.ActiveCount() == 1)
		return nil
	}
}
