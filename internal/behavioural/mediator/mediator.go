// Package mediator demonstrates the Mediator pattern.
//
// A network of nodes with many-to-many relationships is managed through a
// single intermediary. Nodes only know the mediator; the mediator decides
// how an activate/deactivate request from one node ripples out to the
// others based on the source node's role.
package mediator

import (
	"fmt"
	"io"
)

// NodeType determines how the mediator routes a toggle request.
type NodeType string

const (
	// TypeMaster toggles the whole network.
	TypeMaster NodeType = "master"
	// TypeLocalMaster toggles its local group.
	TypeLocalMaster NodeType = "local_master"
	// TypeGeneral toggles only itself.
	TypeGeneral NodeType = "general"
)

// Node is a network member. It holds a pointer back to the mediator and
// delegates every toggle to it.
type Node struct {
	Name       string
	Type       NodeType
	LocalGroup string
	Active     bool

	mediator *Mediator
}

// Activate asks the mediator to activate this node (and whatever the
// node's role implies).
func (n *Node) Activate(w io.Writer) {
	n.mediator.Toggle(w, n, true)
}

// Deactivate asks the mediator to deactivate this node.
func (n *Node) Deactivate(w io.Writer) {
	n.mediator.Toggle(w, n, false)
}

func (n *Node) String() string {
	return fmt.Sprintf("Name: %s, Active: %t", n.Name, n.Active)
}

// Mediator owns all node relationships.
type Mediator struct {
	nodes []*Node
}

// New creates an empty mediator.
func New() *Mediator {
	return &Mediator{}
}

// Register creates a node, wires it to the mediator and returns it.
// Nodes start inactive.
func (m *Mediator) Register(name string, nodeType NodeType, localGroup string) *Node {
	node := &Node{
		Name:       name,
		Type:       nodeType,
		LocalGroup: localGroup,
		mediator:   m,
	}
	m.nodes = append(m.nodes, node)
	return node
}

// Toggle routes an activate/deactivate request from source.
func (m *Mediator) Toggle(w io.Writer, source *Node, activate bool) {
	switch source.Type {
	case TypeMaster:
		m.toggleAll(w, activate)
	case TypeLocalMaster:
		m.toggleLocal(w, source.LocalGroup, activate)
	default:
		fmt.Fprintf(w, "%s %s node.\n", verb(activate), source.Name)
		source.Active = activate
	}
}

func (m *Mediator) toggleAll(w io.Writer, activate bool) {
	fmt.Fprintf(w, "%s all nodes\n", verb(activate))
	for _, node := range m.nodes {
		node.Active = activate
	}
}

func (m *Mediator) toggleLocal(w io.Writer, localGroup string, activate bool) {
	fmt.Fprintf(w, "%s all nodes in the %s local group.\n", verb(activate), localGroup)
	for _, node := range m.nodes {
		if node.LocalGroup == localGroup && node.Type != TypeMaster {
			node.Active = activate
		}
	}
}

// NetworkStatus prints the state of every registered node.
func (m *Mediator) NetworkStatus(w io.Writer) {
	fmt.Fprintln(w, "Following is the state of all nodes in the network:")
	for _, node := range m.nodes {
		fmt.Fprintf(w, "\t > %s\n", node)
	}
}

func verb(activate bool) string {
	if activate {
		return "Activating"
	}
	return "Deactivating"
}
