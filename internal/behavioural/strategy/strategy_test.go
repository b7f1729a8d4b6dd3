package strategy

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_DefaultsToPreOrder(t *testing.T) {
	var buf bytes.Buffer
	NewTreeSearch("binary_tree", nil).Run(&buf)
	require.Equal(t, "Running a Pre-Order DFS search on binary_tree\n", buf.String())
}

func TestRun_SelectedStrategies(t *testing.T) {
	tests := []struct {
		name     string
		runner   SearchFunc
		treeType string
		want     string
	}{
		{"post-order", PostOrder, "red_black_tree", "Running a Post-Order DFS search on red_black_tree\n"},
		{"in-order", InOrder, "non_binary_tree", "Running a In-Order DFS search on non_binary_tree\n"},
		{"pre-order", PreOrder, "binary_tree", "Running a Pre-Order DFS search on binary_tree\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewTreeSearch(tt.treeType, tt.runner).Run(&buf)
			require.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRun_CustomStrategy(t *testing.T) {
	var got string
	custom := func(w io.Writer, ts *TreeSearch) {
		got = ts.Type()
	}

	NewTreeSearch("avl_tree", custom).Run(io.Discard)
	require.Equal(t, "avl_tree", got)
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(context.Background(), &buf))

	want := "Running a Pre-Order DFS search on binary_tree\n" +
		"Running a Post-Order DFS search on red_black_tree\n" +
		"Running a In-Order DFS search on non_binary_tree\n"
	require.Equal(t, want, buf.String())
}
