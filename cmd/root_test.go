package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prateeksan/patterns/internal/creational/factory"
	"github.com/prateeksan/patterns/internal/demo"
	"github.com/prateeksan/patterns/internal/presentation"
)

// TestMain runs the commands from a scratch directory so the default
// config written on first run does not land in the repo.
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "patterns-cmd-test-*")
	if err != nil {
		os.Exit(1)
	}
	cwd, _ := os.Getwd()
	_ = os.Chdir(dir)

	code := m.Run()

	_ = os.Chdir(cwd)
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestList_ShowsAllDemos(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	require.Contains(t, out, "behavioural")
	require.Contains(t, out, "creational")
	require.Contains(t, out, "structural")
	require.Contains(t, out, "chain-of-responsibility")
	require.Contains(t, out, "singleton")
	require.Contains(t, out, "proxy")
}

func TestList_JSON(t *testing.T) {
	out, err := execute(t, "list", "--json")
	require.NoError(t, err)

	var dtos []presentation.DemoDTO
	require.NoError(t, json.Unmarshal([]byte(out), &dtos))
	require.Len(t, dtos, 20)
}

func TestList_CategoryFilter(t *testing.T) {
	out, err := execute(t, "list", "--json", "--category", "creational")
	require.NoError(t, err)

	var dtos []presentation.DemoDTO
	require.NoError(t, json.Unmarshal([]byte(out), &dtos))
	require.Len(t, dtos, 6)
	for _, dto := range dtos {
		require.Equal(t, "creational", dto.Category)
	}

	_, err = execute(t, "list", "--category", "bogus")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown category")
}

func TestRun_SingleDemo(t *testing.T) {
	out, err := execute(t, "run", "state")
	require.NoError(t, err)

	require.Contains(t, out, "== state ==")
	require.Contains(t, out, "Turning Tv On")
	require.Contains(t, out, "-- state ok")
}

func TestRun_UnknownDemo(t *testing.T) {
	_, err := execute(t, "run", "nonexistent")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown demo")
}

func TestRun_RequiresNameOrAll(t *testing.T) {
	_, err := execute(t, "run")
	require.Error(t, err)
	require.Contains(t, err.Error(), "name at least one demo or pass --all or --category")
}

func TestRun_All(t *testing.T) {
	runAll = true
	t.Cleanup(func() { runAll = false })

	out, err := execute(t, "run", "--all")
	require.NoError(t, err)

	catalog, catErr := demo.NewCatalog(demo.DefaultCatalogOptions())
	require.NoError(t, catErr)
	for _, entry := range catalog.List() {
		require.Contains(t, out, "== "+entry.Name+" ==")
		require.Contains(t, out, "-- "+entry.Name+" ok")
	}
}

func TestRun_Category(t *testing.T) {
	t.Cleanup(func() { runCategory = "" })

	out, err := execute(t, "run", "--category", "creational")
	require.NoError(t, err)

	catalog, catErr := demo.NewCatalog(demo.DefaultCatalogOptions())
	require.NoError(t, catErr)
	for _, entry := range catalog.GetByCategory(demo.CategoryCreational) {
		require.Contains(t, out, "== "+entry.Name+" ==")
		require.Contains(t, out, "-- "+entry.Name+" ok")
	}
	require.NotContains(t, out, "== proxy ==")
}

func TestRun_UnknownCategory(t *testing.T) {
	t.Cleanup(func() { runCategory = "" })

	_, err := execute(t, "run", "--category", "bogus")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown category")
}

func TestRun_CategoryConflictsWithNames(t *testing.T) {
	t.Cleanup(func() { runCategory = "" })

	_, err := execute(t, "run", "state", "--category", "creational")
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot be combined")
}

func TestRun_FactorySeedZeroFromConfig(t *testing.T) {
	t.Cleanup(func() { cfgFile = "" })

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("demos:\n  factory_seed: 0\n"), 0o600))

	out, err := execute(t, "run", "factory", "--config", path)
	require.NoError(t, err)

	// Seed 0 must flow through to the generator rather than being treated
	// as unset and replaced with the default seed.
	var want bytes.Buffer
	narration := presentation.NewFormatter(&want).NarrationWriter()
	require.NoError(t, factory.Demo(0)(context.Background(), narration))
	require.Contains(t, out, want.String())
}

func TestDocs_ListsNotesWithoutArgs(t *testing.T) {
	out, err := execute(t, "docs")
	require.NoError(t, err)
	require.Contains(t, out, "flyweight")
	require.Contains(t, out, "chain-of-responsibility")
}

func TestDocs_Raw(t *testing.T) {
	out, err := execute(t, "docs", "--raw", "flyweight")
	require.NoError(t, err)
	require.Contains(t, out, "# Flyweight")
}

func TestDocs_UnknownDemo(t *testing.T) {
	_, err := execute(t, "docs", "nonexistent")
	require.Error(t, err)
}
