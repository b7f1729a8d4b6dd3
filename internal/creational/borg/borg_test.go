package borg

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDrones_DistinctIdentitiesSharedState(t *testing.T) {
	hive := NewHive()
	d1 := hive.NewDrone(map[string]int{"health": 100})
	d2 := hive.NewDrone(map[string]int{"health": 110})

	require.NotSame(t, d1, d2)

	// d2's write is visible through d1.
	health, ok := d1.Get("health")
	require.True(t, ok)
	require.Equal(t, 110, health)
}

func TestSet_PropagatesAcrossDrones(t *testing.T) {
	hive := NewHive()
	d1 := hive.NewDrone(nil)
	d2 := hive.NewDrone(nil)

	d1.Set("armour", 20)

	armour, ok := d2.Get("armour")
	require.True(t, ok)
	require.Equal(t, 20, armour)
}

func TestGet_MissingAttribute(t *testing.T) {
	hive := NewHive()
	d := hive.NewDrone(nil)

	_, ok := d.Get("mana")
	require.False(t, ok)
}

func TestSeparateHives_DoNotShareState(t *testing.T) {
	d1 := NewHive().NewDrone(map[string]int{"health": 100})
	d2 := NewHive().NewDrone(nil)

	_, ok := d2.Get("health")
	require.False(t, ok)

	health, _ := d1.Get("health")
	require.Equal(t, 100, health)
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(context.Background(), &buf))

	out := buf.String()
	require.Contains(t, out, "Do cb1 and cb2 have separate identities?\ntrue\n")
	require.Contains(t, out, "health: true (110)")
	require.Contains(t, out, "attack: true (15)")
	require.Contains(t, out, "armour: true (20)")
}
