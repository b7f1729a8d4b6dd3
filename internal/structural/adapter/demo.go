package adapter

import (
	"context"
	"fmt"
	"io"
)

// Demo adapts a binary, web and text resource and reads each through the
// homogenized interface.
func Demo(ctx context.Context, w io.Writer) error {
	resources := []any{BinaryResource{}, WebResource{}, TextResource{}}

	for _, resource := range resources {
		adapted, err := NewTextAdapter(resource)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Adapting %s as a text resource...\n", adapted.ResourceName())
		fmt.Fprintln(w, adapted.Read())
		fmt.Fprintln(w)
	}
	return nil
}
