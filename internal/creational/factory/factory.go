// Package factory demonstrates the factory method pattern: one constructor
// entry point producing children of a common parent by kind name, fed by a
// seeded spec generator.
package factory

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrUnknownKind is returned when the factory has no constructor for the
// requested kind.
var ErrUnknownKind = errors.New("unknown child kind")

// Child is the common parent interface all factory products satisfy.
type Child interface {
	Kind() string
	Lifespan() int
}

// parent carries the state all children share.
type parent struct {
	lifespan int
}

func (p parent) Lifespan() int { return p.lifespan }

type typeAChild struct {
	parent
}

func (typeAChild) Kind() string { return "TypeAChild" }

type typeBChild struct {
	parent
}

func (typeBChild) Kind() string { return "TypeBChild" }

// constructors maps kind names to child constructors. Adding a kind means
// adding one entry here.
var constructors = map[string]func(lifespan int) Child{
	"TypeAChild": func(lifespan int) Child { return typeAChild{parent{lifespan}} },
	"TypeBChild": func(lifespan int) Child { return typeBChild{parent{lifespan}} },
}

// kinds lists the registered kind names in a stable order.
var kinds = []string{"TypeAChild", "TypeBChild"}

// MakeChild constructs a child of the named kind.
func MakeChild(kind string, lifespan int) (Child, error) {
	construct, ok := constructors[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return construct(lifespan), nil
}

// Spec describes one child for the factory to build.
type Spec struct {
	Kind     string
	Lifespan int
}

// Generator yields a deterministic sequence of child specs from a seed,
// choosing a kind and a lifespan within [lifeMin, lifeMax] for each.
type Generator struct {
	rng     *rand.Rand
	lifeMin int
	lifeMax int
}

// NewGenerator creates a spec generator. The same seed always produces the
// same sequence.
func NewGenerator(seed int64, lifeMin, lifeMax int) *Generator {
	return &Generator{
		rng:     rand.New(rand.NewSource(seed)),
		lifeMin: lifeMin,
		lifeMax: lifeMax,
	}
}

// Next produces the next spec in the sequence.
func (g *Generator) Next() Spec {
	return Spec{
		Kind:     kinds[g.rng.Intn(len(kinds))],
		Lifespan: g.lifeMin + g.rng.Intn(g.lifeMax-g.lifeMin+1),
	}
}

// Generate builds count children by feeding generated specs to the factory.
func (g *Generator) Generate(count int) ([]Child, error) {
	children := make([]Child, 0, count)
	for i := 0; i < count; i++ {
		spec := g.Next()
		child, err := MakeChild(spec.Kind, spec.Lifespan)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}
