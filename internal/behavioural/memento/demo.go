package memento

import (
	"context"
	"fmt"
	"io"
)

// Demo draws onto a 3x3 map, checkpointing after each edit, then restores
// the oldest checkpoint the log still retains.
func Demo(maxCheckpoints int) func(ctx context.Context, w io.Writer) error {
	return func(ctx context.Context, w io.Writer) error {
		builder := NewMapBuilder(3, 3)
		cpLog := NewCheckpointLog(maxCheckpoints)

		builder.Draw(w, 2, 2, 'x')
		cpLog.Add(builder.CreateCheckpoint(w, "Only one 'x'"))
		builder.PrintMap(w)

		builder.Draw(w, 2, 1, 'y')
		cpLog.Add(builder.CreateCheckpoint(w, "One 'x' and one 'y'"))
		builder.PrintMap(w)

		builder.Draw(w, 2, 2, 'y')
		cpLog.Add(builder.CreateCheckpoint(w, "Two 'y's"))
		builder.PrintMap(w)

		oldest := maxCheckpoints
		if oldest > 3 {
			oldest = 3
		}
		checkpoint, err := cpLog.Revert(oldest)
		if err != nil {
			return fmt.Errorf("reverting %d checkpoints: %w", oldest, err)
		}
		builder.RestoreFromCheckpoint(w, checkpoint)
		builder.PrintMap(w)
		return nil
	}
}
