package strategy

import (
	"context"
	"io"
)

// Demo runs three tree searches through the same Run interface: one with
// the default strategy and two with explicitly chosen traversals.
func Demo(ctx context.Context, w io.Writer) error {
	NewTreeSearch("binary_tree", nil).Run(w)
	NewTreeSearch("red_black_tree", PostOrder).Run(w)
	NewTreeSearch("non_binary_tree", InOrder).Run(w)
	return nil
}
