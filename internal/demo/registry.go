// Package demo implements the catalog of runnable pattern demonstrations.
//
// Every demonstration registers an Entry with a name, category, one-line
// description and a run function. The run function writes its narration to
// the supplied writer and returns an error only when the demonstration
// itself malfunctions; narrated failures (a rejected resize, a rolled-back
// migration) are expected output, not errors.
package demo

import (
	"context"
	"errors"
	"io"
)

// Category groups demos the way the catalog presents them.
type Category string

const (
	CategoryBehavioural Category = "behavioural"
	CategoryCreational  Category = "creational"
	CategoryStructural  Category = "structural"
)

// Registry errors
var (
	ErrNotFound      = errors.New("demo not found")
	ErrDuplicateName = errors.New("duplicate demo name")
	ErrNilEntry      = errors.New("demo entry cannot be nil")
)

// RunFunc executes a demonstration, writing narration to w.
type RunFunc func(ctx context.Context, w io.Writer) error

// Entry describes one runnable demonstration.
type Entry struct {
	Name        string
	Category    Category
	Description string
	Run         RunFunc
}

// Registry holds all registered demos in registration order.
type Registry struct {
	entries []*Entry
	byName  map[string]*Entry
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make([]*Entry, 0),
		byName:  make(map[string]*Entry),
	}
}

// Add adds an entry to the registry.
func (r *Registry) Add(entry *Entry) error {
	if entry == nil {
		return ErrNilEntry
	}
	if _, exists := r.byName[entry.Name]; exists {
		return ErrDuplicateName
	}
	r.entries = append(r.entries, entry)
	r.byName[entry.Name] = entry
	return nil
}

// List returns all entries in registration order.
func (r *Registry) List() []*Entry {
	return r.entries
}

// Get returns the entry with the given name.
func (r *Registry) Get(name string) (*Entry, error) {
	entry, ok := r.byName[name]
	if !ok {
		return nil, ErrNotFound
	}
	return entry, nil
}

// GetByCategory returns all entries for a category, in registration order.
func (r *Registry) GetByCategory(category Category) []*Entry {
	result := make([]*Entry, 0)
	for _, entry := range r.entries {
		if entry.Category == category {
			result = append(result, entry)
		}
	}
	return result
}

// Names returns all demo names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for _, entry := range r.entries {
		names = append(names, entry.Name)
	}
	return names
}
