package state

import (
	"context"
	"io"
)

// Demo presses the remote button three times, toggling the TV on and off
// with each press narrated by the current state.
func Demo(ctx context.Context, w io.Writer) error {
	tv := NewTV()
	tv.Press(w)
	tv.Press(w)
	tv.Press(w)
	return nil
}
