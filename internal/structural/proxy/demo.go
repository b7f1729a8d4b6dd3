package proxy

import (
	"context"
	"fmt"
	"io"
)

// Demo reads the same query through the proxy twice (a miss then a hit)
// and performs a write-through.
func Demo(ctx context.Context, w io.Writer) error {
	p := NewProxy()

	fmt.Fprintln(w, "Making Read Query:")
	p.Read(w, "Sample Query String")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Making the same Read Query again:")
	p.Read(w, "Sample Query String")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Making Write Query:")
	p.Write(w, "Sample Data")
	return nil
}
