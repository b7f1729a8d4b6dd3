// Package command demonstrates the Command pattern.
//
// Schema migrations are modelled as command objects with Run and Rollback
// operations. An invoker applies a set of migrations against a SQLite
// database and, when one fails, rolls back everything it already applied,
// in reverse order.
package command

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/prateeksan/patterns/internal/log"
)

// Migration is the command interface. Run applies the migration and
// Rollback undoes it.
type Migration interface {
	Title() string
	Run(ctx context.Context, db *sql.DB) error
	Rollback(ctx context.Context, db *sql.DB) error
}

// SQLMigration executes literal SQL for both directions.
type SQLMigration struct {
	title   string
	upSQL   string
	downSQL string
}

// NewSQLMigration creates a migration from up/down SQL statements.
func NewSQLMigration(title, upSQL, downSQL string) *SQLMigration {
	return &SQLMigration{title: title, upSQL: upSQL, downSQL: downSQL}
}

// Title returns the migration title.
func (m *SQLMigration) Title() string { return m.title }

// Run applies the up statement.
func (m *SQLMigration) Run(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, m.upSQL); err != nil {
		return fmt.Errorf("applying %q: %w", m.title, err)
	}
	return nil
}

// Rollback applies the down statement.
func (m *SQLMigration) Rollback(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, m.downSQL); err != nil {
		return fmt.Errorf("rolling back %q: %w", m.title, err)
	}
	return nil
}

// OpenMemoryDB opens a fresh in-memory SQLite database for the demo.
func OpenMemoryDB() (*sql.DB, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging in-memory database: %w", err)
	}
	return db, nil
}

// Invoker applies migrations in order and tracks the schema version: one
// successful migration bumps it by one.
type Invoker struct {
	migrations []Migration
	db         *sql.DB
	version    int
}

// NewInvoker creates an invoker over the given migration set.
func NewInvoker(db *sql.DB, migrations []Migration) *Invoker {
	return &Invoker{migrations: migrations, db: db}
}

// Version returns the current schema version.
func (i *Invoker) Version() int { return i.version }

// RunAll applies every migration in order. On the first failure it rolls
// back all previously applied migrations and reports success=false.
func (i *Invoker) RunAll(ctx context.Context, w io.Writer) bool {
	for _, migration := range i.migrations {
		fmt.Fprintf(w, "[i] Running Migration: %s\n", migration.Title())
		if err := migration.Run(ctx, i.db); err != nil {
			log.ErrorErr(log.CatDB, "migration failed", err, "title", migration.Title())
			fmt.Fprintf(w, "[!] Migrations failed due to an error: %v. Rolling back.\n", err)
			i.RollbackAll(ctx, w)
			return false
		}
		i.version++
	}

	fmt.Fprintf(w, "[i] Migrations complete. Current Version: %d\n", i.version)
	return true
}

// RollbackAll undoes every applied migration in reverse order.
func (i *Invoker) RollbackAll(ctx context.Context, w io.Writer) {
	if i.version == 0 {
		fmt.Fprintln(w, "Nothing to rollback")
		return
	}

	for idx := i.version - 1; idx >= 0; idx-- {
		migration := i.migrations[idx]
		fmt.Fprintf(w, "[i] Rolling Back Migration: %s\n", migration.Title())
		if err := migration.Rollback(ctx, i.db); err != nil {
			// A failed rollback is narrated but does not stop the rest:
			// remaining migrations still need their best-effort undo.
			fmt.Fprintf(w, "[!] Rollback failed: %v\n", err)
		}
		i.version--
	}

	fmt.Fprintf(w, "[i] Rollbacks complete. Current Version: %d\n", i.version)
}
