package flyweight

import (
	"context"
	"fmt"
	"io"
)

// Demo makes two complex requests with overlapping historical queries; the
// second request's overlap is served from the shared cache.
func Demo(ctx context.Context, w io.Writer) error {
	cache := NewHistoricalDataCache()

	request1 := NewComplexRequest(
		[]string{"SELECT * FROM archive_1", "SELECT * FROM archive_2"},
		[]string{"SELECT * FROM live_1", "SELECT * FROM live_2"},
		cache,
	)
	fmt.Fprintln(w, "> Making request_1...")
	request1.Get(w)

	fmt.Fprintln(w)

	request2 := NewComplexRequest(
		[]string{"SELECT * FROM archive_2", "SELECT * FROM archive_3"},
		[]string{"SELECT * FROM live_1", "SELECT * FROM live_2"},
		cache,
	)
	fmt.Fprintln(w, "> Making request_2...")
	request2.Get(w)
	return nil
}
