// Package singleton demonstrates the singleton pattern: one process-wide
// settings instance created on first use, with later configuration calls
// merging into the same state.
package singleton

import "sync"

// Settings is the single application-wide settings store.
type Settings struct {
	mu    sync.RWMutex
	attrs map[string]any
}

var (
	instance *Settings
	once     sync.Once
)

// Instance returns the one Settings object, creating it on first call.
func Instance() *Settings {
	once.Do(func() {
		instance = &Settings{attrs: make(map[string]any)}
	})
	return instance
}

// Configure merges the given attributes into the singleton, overwriting
// existing keys and adding new ones, and returns it.
func Configure(attrs map[string]any) *Settings {
	s := Instance()
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, value := range attrs {
		s.attrs[key] = value
	}
	return s
}

// Get reads one setting.
func (s *Settings) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.attrs[key]
	return value, ok
}

// reset discards the instance so the demo and tests start clean.
func reset() {
	instance = nil
	once = sync.Once{}
}
