// Package borg demonstrates the borg pattern: instances keep distinct
// identities while every attribute read and write goes through one shared
// state.
package borg

import "sync"

// sharedState is the single attribute store all drones point at.
type sharedState struct {
	mu    sync.RWMutex
	attrs map[string]int
}

// Hive owns the shared state and mints drones bound to it.
type Hive struct {
	state *sharedState
}

// NewHive creates a hive with an empty shared state.
func NewHive() *Hive {
	return &Hive{state: &sharedState{attrs: make(map[string]int)}}
}

// NewDrone creates a new drone bound to the hive's shared state and applies
// the given attributes to it, which every other drone immediately sees.
func (h *Hive) NewDrone(attrs map[string]int) *Drone {
	d := &Drone{state: h.state}
	for key, value := range attrs {
		d.Set(key, value)
	}
	return d
}

// Drone is one identity over the hive's shared state. Two drones are never
// equal, but their attributes always are.
type Drone struct {
	state *sharedState
}

// Set writes an attribute into the shared state.
func (d *Drone) Set(key string, value int) {
	d.state.mu.Lock()
	defer d.state.mu.Unlock()
	d.state.attrs[key] = value
}

// Get reads an attribute from the shared state.
func (d *Drone) Get(key string) (int, bool) {
	d.state.mu.RLock()
	defer d.state.mu.RUnlock()
	value, ok := d.state.attrs[key]
	return value, ok
}
