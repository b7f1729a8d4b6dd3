package docs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prateeksan/patterns/internal/demo"
)

func TestNames_CoverTheWholeCatalog(t *testing.T) {
	catalog, err := demo.NewCatalog(demo.DefaultCatalogOptions())
	require.NoError(t, err)

	names := Names()
	require.Len(t, names, len(catalog.List()))
	for _, entry := range catalog.List() {
		require.Contains(t, names, entry.Name)
	}
}

func TestSource(t *testing.T) {
	source, err := Source("chain-of-responsibility")
	require.NoError(t, err)
	require.Contains(t, source, "# Chain of Responsibility")

	_, err = Source("nonexistent")
	require.ErrorIs(t, err, ErrNoteNotFound)
}

func TestRenderer(t *testing.T) {
	r, err := NewRenderer(80)
	require.NoError(t, err)
	require.Equal(t, 80, r.Width())

	out, err := r.Render("proxy")
	require.NoError(t, err)
	require.Contains(t, out, "Proxy")

	_, err = r.Render("nonexistent")
	require.ErrorIs(t, err, ErrNoteNotFound)
}
