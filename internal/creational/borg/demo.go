package borg

import (
	"context"
	"fmt"
	"io"
)

// Demo creates two drones from one hive and shows that they are distinct
// values sharing a single state.
func Demo(ctx context.Context, w io.Writer) error {
	hive := NewHive()

	// A video game character type: the first spawn sets the base stats.
	cb1 := hive.NewDrone(map[string]int{"health": 100, "attack": 15})

	// An in-game event makes all borgs healthier and adds armour; spawning
	// the next drone applies the buffed stats to the shared state.
	cb2 := hive.NewDrone(map[string]int{"health": 110, "attack": 15, "armour": 20})

	fmt.Fprintln(w, "Do cb1 and cb2 have separate identities?")
	fmt.Fprintln(w, cb1 != cb2)

	fmt.Fprintln(w, "Do cb1 and cb2 share the same state?")
	for _, key := range []string{"health", "attack", "armour"} {
		v1, _ := cb1.Get(key)
		v2, _ := cb2.Get(key)
		fmt.Fprintf(w, "%s: %v (%d)\n", key, v1 == v2, v1)
	}
	return nil
}
