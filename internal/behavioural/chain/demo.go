package chain

import (
	"context"
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed pools.yaml
var poolsYAML []byte

type poolSpec struct {
	Name       string      `yaml:"name"`
	Candidates []Candidate `yaml:"candidates"`
}

type poolsFile struct {
	Pools []poolSpec `yaml:"pools"`
}

// LoadDefaultChain builds the demo chain from the embedded pool fixtures.
// Pools are linked in listed order, so the first pool is the chain head.
func LoadDefaultChain() (*Pool, error) {
	var file poolsFile
	if err := yaml.Unmarshal(poolsYAML, &file); err != nil {
		return nil, fmt.Errorf("parsing pool fixtures: %w", err)
	}
	if len(file.Pools) == 0 {
		return nil, fmt.Errorf("pool fixtures are empty")
	}

	var head *Pool
	for i := len(file.Pools) - 1; i >= 0; i-- {
		spec := file.Pools[i]
		head = NewPool(spec.Name, spec.Candidates, head)
	}
	return head, nil
}

// Demo searches the pool chain for a senior developer. The only match
// lives in the global pool, so the narration shows the request walking
// past the local and regional pools first.
func Demo(ctx context.Context, w io.Writer) error {
	head, err := LoadDefaultChain()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Searching for a senior developer in the pools chain:")
	match, ok := head.Match(w, Request{Type: "developer", Level: "senior"})
	if !ok {
		return fmt.Errorf("expected a match in the chain, found none")
	}
	fmt.Fprintln(w, match)
	return nil
}
