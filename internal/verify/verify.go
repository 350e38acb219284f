// Package verify dry-runs a generated script against an in-memory SQLite
// database to catch statements that would fail on load.
//
// SQLite has no CREATE DATABASE or USE, so those statements are skipped; every
// CREATE TABLE and INSERT runs in script order.
package verify

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/leapstack-labs/dbscript/internal/emit"
	"github.com/leapstack-labs/dbscript/internal/schema"

	// sqlite driver for in-memory verification.
	_ "modernc.org/sqlite"
)

// StatementError reports the statement that failed verification.
type StatementError struct {
	Index     int
	Statement emit.Statement
	Err       error
}

func (e *StatementError) Error() string {
	return fmt.Sprintf("statement %d (%s %q) failed: %v\n%s",
		e.Index+1, e.Statement.Kind, e.Statement.Table, e.Err, e.Statement.SQL)
}

func (e *StatementError) Unwrap() error {
	return e.Err
}

// Run executes the table-level statements for db against conn, stopping at
// the first failure.
func Run(ctx context.Context, conn *sql.DB, db *schema.Database) error {
	for i, stmt := range emit.Statements(db) {
		if stmt.Kind == emit.KindCreateDatabase || stmt.Kind == emit.KindUse {
			continue
		}
		if _, err := conn.ExecContext(ctx, stmt.SQL); err != nil {
			return &StatementError{Index: i, Statement: stmt, Err: err}
		}
	}
	return nil
}

// InMemory verifies db against a fresh in-memory SQLite database.
func InMemory(ctx context.Context, db *schema.Database) error {
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}
	defer func() { _ = conn.Close() }()

	// Each pooled connection to :memory: is its own database.
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping sqlite database: %w", err)
	}
	return Run(ctx, conn, db)
}
