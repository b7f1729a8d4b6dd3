package composite

import (
	"context"
	"io"
)

// Demo builds a language tree of composites and leaves, then reads the
// root to print the whole subtree.
func Demo(ctx context.Context, w io.Writer) error {
	python := NewDataNode("Python")
	ruby := NewDataNode("Ruby")
	english := NewDataNode("English")
	french := NewDataNode("French")

	langTree := NewDataComposite("Languages")
	programmingLangTree := NewDataComposite("Programming Languages")
	humanLangTree := NewDataComposite("Human Languages")

	programmingLangTree.Add(python)
	programmingLangTree.Add(ruby)

	humanLangTree.Add(english)
	humanLangTree.Add(french)

	langTree.Add(humanLangTree)
	langTree.Add(programmingLangTree)

	langTree.Read(w)
	return nil
}
