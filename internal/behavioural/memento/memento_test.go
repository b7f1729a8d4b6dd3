package memento

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDraw_InRange(t *testing.T) {
	builder := NewMapBuilder(3, 3)

	var buf bytes.Buffer
	require.True(t, builder.Draw(&buf, 2, 2, 'x'))
	require.Contains(t, buf.String(), `Drawing 'x' to coords: (2,2).`)
	require.Equal(t, "---\n---\n--x\n", builder.Render())
}

func TestDraw_OutOfRangeRejected(t *testing.T) {
	builder := NewMapBuilder(3, 3)

	var buf bytes.Buffer
	require.False(t, builder.Draw(&buf, 3, 0, 'x'))
	require.False(t, builder.Draw(&buf, 0, -1, 'x'))
	require.Contains(t, buf.String(), "Coordinates not in range. Try again!")
	require.Equal(t, "---\n---\n---\n", builder.Render(), "rejected draws must not mutate the grid")
}

func TestCheckpointIsIndependentCopy(t *testing.T) {
	builder := NewMapBuilder(2, 2)
	builder.Draw(io.Discard, 0, 0, 'x')
	checkpoint := builder.CreateCheckpoint(io.Discard, "one x")

	builder.Draw(io.Discard, 0, 0, 'y')
	require.Equal(t, "y-\n--\n", builder.Render())

	builder.RestoreFromCheckpoint(io.Discard, checkpoint)
	require.Equal(t, "x-\n--\n", builder.Render())
}

func TestRestoreNarratesDiff(t *testing.T) {
	builder := NewMapBuilder(3, 3)
	builder.Draw(io.Discard, 2, 2, 'x')
	checkpoint := builder.CreateCheckpoint(io.Discard, "one x")
	builder.Draw(io.Discard, 2, 2, 'y')

	var buf bytes.Buffer
	builder.RestoreFromCheckpoint(&buf, checkpoint)

	out := buf.String()
	require.Contains(t, out, "Restoring to checkpoint: <one x>")
	require.Contains(t, out, "- --y")
	require.Contains(t, out, "+ --x")
}

func TestCheckpointLog_EvictsOldestFirst(t *testing.T) {
	log := NewCheckpointLog(3)
	builder := NewMapBuilder(2, 2)

	for i := 0; i < 4; i++ {
		log.Add(builder.CreateCheckpoint(io.Discard, fmt.Sprintf("cp-%d", i)))
	}

	require.Equal(t, 3, log.Len())

	oldest, err := log.Revert(3)
	require.NoError(t, err)
	require.Equal(t, "cp-1", oldest.Message(), "cp-0 should have been evicted")

	newest, err := log.Revert(1)
	require.NoError(t, err)
	require.Equal(t, "cp-3", newest.Message())
}

func TestCheckpointLog_RevertOutOfRange(t *testing.T) {
	log := NewCheckpointLog(3)
	builder := NewMapBuilder(2, 2)
	log.Add(builder.CreateCheckpoint(io.Discard, "only"))

	_, err := log.Revert(2)
	require.ErrorIs(t, err, ErrRevertOutOfRange)

	_, err = log.Revert(0)
	require.ErrorIs(t, err, ErrRevertOutOfRange)
}

// The log never exceeds its capacity and always serves the newest
// entries, no matter the add/revert sequence.
func TestCheckpointLog_BoundedRetention(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		maxLength := rapid.IntRange(1, 8).Draw(t, "maxLength")
		log := NewCheckpointLog(maxLength)
		builder := NewMapBuilder(2, 2)

		var messages []string
		numAdds := rapid.IntRange(0, 30).Draw(t, "numAdds")
		for i := 0; i < numAdds; i++ {
			msg := fmt.Sprintf("cp-%d", i)
			messages = append(messages, msg)
			log.Add(builder.CreateCheckpoint(io.Discard, msg))

			if log.Len() > maxLength {
				t.Fatalf("log grew past capacity: %d > %d", log.Len(), maxLength)
			}
		}

		retained := len(messages)
		if retained > maxLength {
			retained = maxLength
		}
		if log.Len() != retained {
			t.Fatalf("expected %d retained checkpoints, got %d", retained, log.Len())
		}

		for back := 1; back <= retained; back++ {
			checkpoint, err := log.Revert(back)
			if err != nil {
				t.Fatalf("revert(%d): %v", back, err)
			}
			want := messages[len(messages)-back]
			if checkpoint.Message() != want {
				t.Fatalf("revert(%d) = %q, want %q", back, checkpoint.Message(), want)
			}
		}
	})
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(DefaultMaxLength)(context.Background(), &buf))

	out := buf.String()
	require.Contains(t, out, "Creating new checkpoint: <Only one 'x'>")
	require.Contains(t, out, "Restoring to checkpoint: <Only one 'x'>")
	// Final render shows the restored first checkpoint.
	require.Contains(t, out, "--x\n")
}
