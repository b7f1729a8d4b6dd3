// Package composite demonstrates the composite pattern: leaf nodes and
// composites share one read interface, and reading a composite reads its
// whole subtree with nested indentation.
package composite

import (
	"fmt"
	"io"

	"github.com/muesli/reflow/indent"
)

// DataObject is the uniform interface over leaves and composites.
type DataObject interface {
	Read(w io.Writer)
}

// DataNode is a leaf holding one piece of data.
type DataNode struct {
	data string
}

// NewDataNode creates a leaf node.
func NewDataNode(data string) *DataNode {
	return &DataNode{data: data}
}

func (n *DataNode) Read(w io.Writer) {
	fmt.Fprintf(w, "Node Data: %s\n", n.data)
}

// DataComposite groups data objects under shared metadata and reads them
// as one subtree.
type DataComposite struct {
	metaData   string
	subObjects []DataObject
}

// NewDataComposite creates an empty composite.
func NewDataComposite(metaData string) *DataComposite {
	return &DataComposite{metaData: metaData}
}

// Read prints the composite's metadata, then every sub-object indented one
// level deeper.
func (c *DataComposite) Read(w io.Writer) {
	fmt.Fprintf(w, "Data Composite For: %s\n", c.metaData)

	nested := indent.NewWriterPipe(w, 2, nil)
	for _, obj := range c.subObjects {
		obj.Read(nested)
	}
}

// Add appends a data object to the composite.
func (c *DataComposite) Add(obj DataObject) {
	c.subObjects = append(c.subObjects, obj)
}

// Remove deletes the first occurrence of the data object.
func (c *DataComposite) Remove(obj DataObject) {
	for i, existing := range c.subObjects {
		if existing == obj {
			c.subObjects = append(c.subObjects[:i], c.subObjects[i+1:]...)
			return
		}
	}
}

// Len returns the number of direct children.
func (c *DataComposite) Len() int {
	return len(c.subObjects)
}
