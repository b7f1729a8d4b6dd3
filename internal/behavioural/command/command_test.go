package command

import (
	"bytes"
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var count int
	err := db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name,
	).Scan(&count)
	require.NoError(t, err)
	return count > 0
}

func TestRunAll_ValidSetCompletes(t *testing.T) {
	db, err := OpenMemoryDB()
	require.NoError(t, err)
	defer db.Close()

	invoker := NewInvoker(db, demoMigrations())

	var buf bytes.Buffer
	require.True(t, invoker.RunAll(context.Background(), &buf))
	require.Equal(t, 3, invoker.Version())
	require.Contains(t, buf.String(), "Migrations complete. Current Version: 3")

	require.True(t, tableExists(t, db, "a"))
	require.True(t, tableExists(t, db, "b"))
	require.True(t, tableExists(t, db, "ab"))
}

func TestRunAll_FailureRollsBackAppliedMigrations(t *testing.T) {
	db, err := OpenMemoryDB()
	require.NoError(t, err)
	defer db.Close()

	invoker := NewInvoker(db, append(demoMigrations(), badMigration()))

	var buf bytes.Buffer
	require.False(t, invoker.RunAll(context.Background(), &buf))
	require.Equal(t, 0, invoker.Version(), "every applied migration should be undone")

	out := buf.String()
	require.Contains(t, out, "Migrations failed due to an error")
	require.Contains(t, out, "Rolling Back Migration: Create Associative Table AB")
	require.Contains(t, out, "Rollbacks complete. Current Version: 0")

	// Rollback order is newest first.
	require.Less(t,
		bytes.Index(buf.Bytes(), []byte("Rolling Back Migration: Create Associative Table AB")),
		bytes.Index(buf.Bytes(), []byte("Rolling Back Migration: Create Table A")))

	require.False(t, tableExists(t, db, "a"))
	require.False(t, tableExists(t, db, "b"))
	require.False(t, tableExists(t, db, "ab"))
}

func TestRollbackAll_NothingApplied(t *testing.T) {
	db, err := OpenMemoryDB()
	require.NoError(t, err)
	defer db.Close()

	invoker := NewInvoker(db, demoMigrations())

	var buf bytes.Buffer
	invoker.RollbackAll(context.Background(), &buf)
	require.Contains(t, buf.String(), "Nothing to rollback")
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(context.Background(), &buf))

	out := buf.String()
	require.Contains(t, out, "Running Migration: Do Something Impossible")
	require.Contains(t, out, "Migrations complete. Current Version: 3")
}
