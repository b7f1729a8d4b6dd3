// Package registry demonstrates the registry pattern: a central record of
// error kinds keyed by numeric code, populated by explicit Register calls
// at definition time.
package registry

import (
	"errors"
	"fmt"
	"io"
	"sort"
)

// Registry errors
var (
	ErrDuplicateCode = errors.New("duplicate error code")
	ErrNilKind       = errors.New("error kind cannot be nil")
)

// Kind describes one registered error type.
type Kind struct {
	Code int
	Name string
}

// Error renders the kind the way the registered errors would print.
func (k *Kind) Error() string {
	return fmt.Sprintf("%s (code %d)", k.Name, k.Code)
}

// Registry records every error kind the codebase declares, keyed by code.
type Registry struct {
	kinds map[int]*Kind
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[int]*Kind)}
}

// Register adds a kind to the registry. Codes are unique; registering the
// same code twice is a programming error and is rejected.
func (r *Registry) Register(k *Kind) error {
	if k == nil {
		return ErrNilKind
	}
	if _, ok := r.kinds[k.Code]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateCode, k.Code)
	}
	r.kinds[k.Code] = k
	return nil
}

// Get looks a kind up by code.
func (r *Registry) Get(code int) (*Kind, bool) {
	k, ok := r.kinds[code]
	return k, ok
}

// Codes returns the registered codes in ascending order.
func (r *Registry) Codes() []int {
	codes := make([]int, 0, len(r.kinds))
	for code := range r.kinds {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}

// Print writes the registry contents in code order.
func (r *Registry) Print(w io.Writer) {
	for _, code := range r.Codes() {
		fmt.Fprintf(w, "  %d: %s\n", code, r.kinds[code].Name)
	}
}
