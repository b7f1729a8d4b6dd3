package factory

import (
	"context"
	"fmt"
	"io"
)

// DefaultSeed keeps the demo output reproducible between runs.
const DefaultSeed = 1

// Demo generates ten child specs from a seeded generator and feeds them
// through the factory.
func Demo(seed int64) func(ctx context.Context, w io.Writer) error {
	return func(ctx context.Context, w io.Writer) error {
		fmt.Fprintln(w, "Generating 10 children of 'Parent' with a random lifespan between 0 - 99:")

		children, err := NewGenerator(seed, 0, 99).Generate(10)
		if err != nil {
			return err
		}
		for _, child := range children {
			fmt.Fprintf(w, "%s %d\n", child.Kind(), child.Lifespan())
		}
		return nil
	}
}
