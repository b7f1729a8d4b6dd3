// Package strategy demonstrates the strategy pattern: a tree-search runner
// whose traversal algorithm is a swappable function value behind one Run
// interface.
package strategy

import (
	"fmt"
	"io"
)

// SearchFunc implements one traversal strategy against a TreeSearch.
type SearchFunc func(w io.Writer, t *TreeSearch)

// TreeSearch runs a configurable traversal over a named tree type. The
// zero strategy is a pre-order depth-first search.
type TreeSearch struct {
	treeType string
	runner   SearchFunc
}

// NewTreeSearch builds a search for the given tree type. Passing a nil
// runner selects the default pre-order traversal.
func NewTreeSearch(treeType string, runner SearchFunc) *TreeSearch {
	if runner == nil {
		runner = PreOrder
	}
	return &TreeSearch{treeType: treeType, runner: runner}
}

// Type returns the tree type the search targets.
func (t *TreeSearch) Type() string {
	return t.treeType
}

// Run executes the selected traversal strategy.
func (t *TreeSearch) Run(w io.Writer) {
	t.runner(w, t)
}

// PreOrder is the default depth-first traversal.
func PreOrder(w io.Writer, t *TreeSearch) {
	fmt.Fprintf(w, "Running a Pre-Order DFS search on %s\n", t.treeType)
}

// PostOrder visits children before their parent.
func PostOrder(w io.Writer, t *TreeSearch) {
	fmt.Fprintf(w, "Running a Post-Order DFS search on %s\n", t.treeType)
}

// InOrder visits the left subtree, the node, then the right subtree.
func InOrder(w io.Writer, t *TreeSearch) {
	fmt.Fprintf(w, "Running a In-Order DFS search on %s\n", t.treeType)
}
