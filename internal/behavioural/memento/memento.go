// Package memento demonstrates the Memento pattern.
//
// A grid map builder can snapshot its state into checkpoints and restore
// from them later. Checkpoints live in a bounded log that evicts the
// oldest entry once full, so only the most recent history is recoverable.
package memento

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// ErrRevertOutOfRange is returned when reverting further back than the
// log holds.
var ErrRevertOutOfRange = errors.New("revert count exceeds stored checkpoints")

// Checkpoint captures a full copy of the map state with a message.
type Checkpoint struct {
	state   [][]rune
	message string
}

// Message returns the checkpoint message.
func (c *Checkpoint) Message() string { return c.message }

// MapBuilder edits a width x height character grid.
type MapBuilder struct {
	width  int
	height int
	grid   [][]rune
}

// NewMapBuilder creates a builder with an empty grid of '-' cells.
func NewMapBuilder(width, height int) *MapBuilder {
	return &MapBuilder{
		width:  width,
		height: height,
		grid:   emptyGrid(width, height),
	}
}

func emptyGrid(width, height int) [][]rune {
	grid := make([][]rune, height)
	for y := range grid {
		grid[y] = make([]rune, width)
		for x := range grid[y] {
			grid[y][x] = '-'
		}
	}
	return grid
}

func cloneGrid(grid [][]rune) [][]rune {
	clone := make([][]rune, len(grid))
	for y, row := range grid {
		clone[y] = make([]rune, len(row))
		copy(clone[y], row)
	}
	return clone
}

// Draw sets the cell at (x, y). Out-of-range coordinates are rejected
// with narration and a false return.
func (b *MapBuilder) Draw(w io.Writer, x, y int, value rune) bool {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		fmt.Fprintln(w, "Coordinates not in range. Try again!")
		return false
	}

	fmt.Fprintf(w, "Drawing %q to coords: (%d,%d).\n", value, x, y)
	b.grid[y][x] = value
	return true
}

// CreateCheckpoint snapshots the current state.
func (b *MapBuilder) CreateCheckpoint(w io.Writer, message string) *Checkpoint {
	fmt.Fprintf(w, "Creating new checkpoint: <%s>\n", message)
	return &Checkpoint{state: cloneGrid(b.grid), message: message}
}

// RestoreFromCheckpoint replaces the current state with the checkpoint's,
// narrating a diff of what changed.
func (b *MapBuilder) RestoreFromCheckpoint(w io.Writer, checkpoint *Checkpoint) {
	fmt.Fprintf(w, "Restoring to checkpoint: <%s>\n", checkpoint.message)

	before := b.Render()
	b.grid = cloneGrid(checkpoint.state)
	after := b.Render()

	if diff := renderDiff(before, after); diff != "" {
		fmt.Fprintln(w, "Changes:")
		fmt.Fprint(w, diff)
	}
}

// Render returns the grid as rows of characters.
func (b *MapBuilder) Render() string {
	var sb strings.Builder
	for _, row := range b.grid {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// PrintMap writes the rendered grid followed by a blank line.
func (b *MapBuilder) PrintMap(w io.Writer) {
	fmt.Fprint(w, b.Render())
	fmt.Fprintln(w)
}

// renderDiff produces a line-oriented -/+ view of the two renders.
func renderDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	fromRunes, toRunes, lines := dmp.DiffLinesToRunes(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(fromRunes, toRunes, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := ""
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		default:
			continue
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// CheckpointLog keeps at most maxLength checkpoints, evicting the oldest
// first.
type CheckpointLog struct {
	checkpoints []*Checkpoint
	maxLength   int
}

// DefaultMaxLength is the checkpoint capacity used when none is given.
const DefaultMaxLength = 3

// NewCheckpointLog creates a log bounded to maxLength entries.
// Non-positive values fall back to DefaultMaxLength.
func NewCheckpointLog(maxLength int) *CheckpointLog {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &CheckpointLog{maxLength: maxLength}
}

// Add appends a checkpoint, evicting the oldest when at capacity.
func (l *CheckpointLog) Add(checkpoint *Checkpoint) {
	if len(l.checkpoints) == l.maxLength {
		l.checkpoints = l.checkpoints[1:]
	}
	l.checkpoints = append(l.checkpoints, checkpoint)
}

// Len returns the number of stored checkpoints.
func (l *CheckpointLog) Len() int { return len(l.checkpoints) }

// Revert returns the revertCount-th newest checkpoint (1 = most recent).
func (l *CheckpointLog) Revert(revertCount int) (*Checkpoint, error) {
	if revertCount < 1 || revertCount > len(l.checkpoints) {
		return nil, fmt.Errorf("%w: have %d, want %d back", ErrRevertOutOfRange, len(l.checkpoints), revertCount)
	}
	return l.checkpoints[len(l.checkpoints)-revertCount], nil
}
