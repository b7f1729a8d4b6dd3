// Package chain demonstrates the Chain of Responsibility pattern.
//
// A candidate-search service checks pools of job candidates grouped by
// geographical cluster. Each pool holds a pointer to a successor pool; a
// request that cannot be fulfilled locally propagates down the chain until
// a pool can answer it.
package chain

import (
	"fmt"
	"io"
)

// Candidate is one entry in a pool.
type Candidate struct {
	ID    int    `yaml:"id"`
	Type  string `yaml:"type"`
	Level string `yaml:"level"`
}

func (c Candidate) String() string {
	return fmt.Sprintf("{id: %d, type: %s, level: %s}", c.ID, c.Type, c.Level)
}

// Request describes the candidate being searched for.
// Empty fields match any value.
type Request struct {
	Type  string
	Level string
}

// Matches reports whether the candidate satisfies every set request field.
func (c Candidate) Matches(req Request) bool {
	if req.Type != "" && c.Type != req.Type {
		return false
	}
	if req.Level != "" && c.Level != req.Level {
		return false
	}
	return true
}

// Pool is one link in the responsibility chain. A pool with a nil
// successor is the last resort.
type Pool struct {
	name       string
	candidates []Candidate
	successor  *Pool
}

// NewPool creates a pool with the given successor (nil for the chain tail).
func NewPool(name string, candidates []Candidate, successor *Pool) *Pool {
	return &Pool{
		name:       name,
		candidates: candidates,
		successor:  successor,
	}
}

// Name returns the pool name.
func (p *Pool) Name() string {
	return p.name
}

// Match returns the first matching candidate in this pool, or propagates
// the request to the successor. The second return reports whether any pool
// in the chain could answer.
func (p *Pool) Match(w io.Writer, req Request) (Candidate, bool) {
	for _, candidate := range p.candidates {
		if candidate.Matches(req) {
			fmt.Fprintf(w, "> Match found in %s:\n", p.name)
			return candidate, true
		}
	}

	fmt.Fprintf(w, "> No match found in %s.\n", p.name)
	if p.successor != nil {
		return p.successor.Match(w, req)
	}
	return Candidate{}, false
}
