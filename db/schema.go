// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB, dialect Dialect) error {
	var schema string
	switch dialect {
	case SQLite:
		schema = sqliteSchema
	case Postgres:
		schema = postgresSchema
	default:
		return fmt.Errorf("failed to create schema: unknown dialect %q", dialect)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Kept apart from the tables: a database that already holds duplicate
	// votes can't take the unique index, and the tables are still usable.
	if _, err := db.ExecContext(ctx, uniqueVoteIndex); err != nil {
		return fmt.Errorf("failed to create unique vote index: %w", err)
	}

	return nil
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS projects (
    id SERIAL PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS votes (
    id SERIAL PRIMARY KEY,
    project_id INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
    voter_id VARCHAR(255) NOT NULL,
    cast_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_votes_voter_project ON votes (voter_id, project_id);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS projects (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS votes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    project_id INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
    voter_id TEXT NOT NULL,
    cast_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_votes_voter_project ON votes (voter_id, project_id);
`

// Same syntax on both backends
const uniqueVoteIndex = `CREATE UNIQUE INDEX IF NOT EXISTS uq_votes_project_voter ON votes (project_id, voter_id);`
