package command

import (
	"context"
	"fmt"
	"io"
)

func demoMigrations() []Migration {
	return []Migration{
		NewSQLMigration("Create Table A",
			"CREATE TABLE a (id INTEGER PRIMARY KEY)",
			"DROP TABLE a"),
		NewSQLMigration("Create Table B",
			"CREATE TABLE b (id INTEGER PRIMARY KEY)",
			"DROP TABLE b"),
		NewSQLMigration("Create Associative Table AB",
			"CREATE TABLE ab (a_id INTEGER REFERENCES a(id), b_id INTEGER REFERENCES b(id))",
			"DROP TABLE ab"),
	}
}

// badMigration fails on Run: it references a table that does not exist.
func badMigration() Migration {
	return NewSQLMigration("Do Something Impossible",
		"INSERT INTO missing_table VALUES (1)",
		"SELECT 1")
}

// Demo runs a migration set containing a failing migration (everything is
// rolled back), then the same set without it (which completes).
func Demo(ctx context.Context, w io.Writer) error {
	db, err := OpenMemoryDB()
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Fprintln(w, "Attempting to run a migration set with a bad migration:")
	fmt.Fprintln(w)
	withBad := NewInvoker(db, append(demoMigrations(), badMigration()))
	if ok := withBad.RunAll(ctx, w); ok {
		return fmt.Errorf("expected the bad migration set to fail")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Attempting to run the set with only valid migrations:")
	fmt.Fprintln(w)
	valid := NewInvoker(db, demoMigrations())
	if ok := valid.RunAll(ctx, w); !ok {
		return fmt.Errorf("expected the valid migration set to complete")
	}
	return nil
}
