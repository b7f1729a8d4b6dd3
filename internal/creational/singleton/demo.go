package singleton

import (
	"context"
	"fmt"
	"io"
)

// Demo configures the application settings twice and shows that both
// handles observe one merged state.
func Demo(ctx context.Context, w io.Writer) error {
	reset()

	appSettings := Configure(map[string]any{"live": true, "port": 5000})

	// A later Configure overwrites port and adds db_location on the same
	// instance.
	appSettings2 := Configure(map[string]any{"port": 3000, "db_location": "far_away"})

	fmt.Fprintln(w, "Do app_settings and app_settings_2 share the same instance?")
	fmt.Fprintln(w, appSettings == appSettings2)

	fmt.Fprintln(w, "Do app_settings and app_settings_2 share the same state?")
	for _, key := range []string{"live", "port", "db_location"} {
		v1, _ := appSettings.Get(key)
		v2, _ := appSettings2.Get(key)
		fmt.Fprintf(w, "%s: %v (%v)\n", key, v1 == v2, v1)
	}
	return nil
}
