// Package sqlite provides SQLite-based storage implementations for the
// gpa services.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Wait up to 5 seconds on lock contention instead of failing with
	// "database is locked" when multiple scrape flows share the store.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// WAL improves write throughput for file-based databases and allows
	// concurrent reads during writes. Not supported in-memory.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// createSchema creates the database tables if they don't exist.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS platforms (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			base_url TEXT NOT NULL,
			search_url_template TEXT NOT NULL,
			game_data_selector TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL DEFAULT '',
			metadata TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS scraped_game_data (
			id TEXT PRIMARY KEY,
			name_on_platform TEXT NOT NULL,
			price REAL NOT NULL,
			price_in_usd REAL NOT NULL,
			currency TEXT NOT NULL DEFAULT '',
			availability_status TEXT NOT NULL,
			url_on_platform TEXT NOT NULL,
			rating REAL,
			reviews_count INTEGER,
			search_position INTEGER,
			special_content TEXT,
			discount_info TEXT,
			game_id TEXT NOT NULL REFERENCES games(id) ON DELETE CASCADE,
			platform_id TEXT NOT NULL REFERENCES platforms(id) ON DELETE CASCADE,
			created_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_scraped_game_platform ON scraped_game_data(game_id, platform_id);

		CREATE TABLE IF NOT EXISTS scrape_requests (
			id TEXT PRIMARY KEY,
			platform_id TEXT NOT NULL REFERENCES platforms(id),
			status TEXT NOT NULL DEFAULT 'pending',
			total_games INTEGER NOT NULL DEFAULT 0,
			processed_games INTEGER NOT NULL DEFAULT 0,
			successful_scrapes INTEGER NOT NULL DEFAULT 0,
			failed_scrapes INTEGER NOT NULL DEFAULT 0,
			error_message TEXT NOT NULL DEFAULT '',
			started_at TEXT,
			completed_at TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_scrape_requests_platform ON scrape_requests(platform_id);

		CREATE TABLE IF NOT EXISTS scrape_details (
			id TEXT PRIMARY KEY,
			scrape_request_id TEXT NOT NULL REFERENCES scrape_requests(id) ON DELETE CASCADE,
			status TEXT NOT NULL DEFAULT 'pending',
			error_message TEXT NOT NULL DEFAULT '',
			raw_payload TEXT NOT NULL DEFAULT '',
			raw_hash TEXT NOT NULL DEFAULT '',
			listing_id TEXT REFERENCES scraped_game_data(id),
			created_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_scrape_details_request ON scrape_details(scrape_request_id);

		CREATE TABLE IF NOT EXISTS scrape_results (
			id TEXT PRIMARY KEY,
			scrape_request_id TEXT NOT NULL UNIQUE REFERENCES scrape_requests(id) ON DELETE CASCADE,
			platform_id TEXT NOT NULL REFERENCES platforms(id),
			total_games INTEGER NOT NULL DEFAULT 0,
			successful_scrapes INTEGER NOT NULL DEFAULT 0,
			failed_scrapes INTEGER NOT NULL DEFAULT 0,
			not_found INTEGER NOT NULL DEFAULT 0,
			started_at TEXT NOT NULL,
			completed_at TEXT NOT NULL,
			created_at TEXT NOT NULL
		);
	`

	_, err := db.db.Exec(schema)
	return err
}
