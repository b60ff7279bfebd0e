// Package sqlite provides the SQLite-backed docset index reader.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a read-only connection to a docset index.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance for the index file at path.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database read-only and checks that it holds a search index.
func (db *DB) Open(ctx context.Context) error {
	// Read-only mode never creates a missing file, but the driver reports
	// that as a generic "unable to open" error.
	if _, err := os.Stat(db.path); err != nil {
		return err
	}

	conn, err := sql.Open("sqlite3", readOnlyDSN(db.path))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// The index is only ever read sequentially by one scan.
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Reading the schema also catches files that are not SQLite databases.
	var tables int
	err = conn.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM sqlite_master
		WHERE type IN ('table', 'view') AND name = 'searchIndex'
	`).Scan(&tables)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to read schema: %w", err)
	}
	if tables == 0 {
		conn.Close()
		return fmt.Errorf("no searchIndex table")
	}

	db.db = conn
	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// readOnlyDSN returns a SQLite URI that opens path without write access.
func readOnlyDSN(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		// Windows volume paths: file:///C:/...
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p, RawQuery: "mode=ro"}
	return u.String()
}
