// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the connection pool and creates the schema.

# Dialects

Two backends share one schema shape:

  - SQLite (modernc.org/sqlite, pure Go): the default, a single file
  - Postgres (github.com/lib/pq): for hosted deployments

# Connecting

Connect opens the pool, pings until the database answers and then
creates the schema:

	conn, dialect, err := db.Connect(ctx, cfg)

Pings are retried on a fixed delay (DB_RETRY_DELAY). Schema creation is
best-effort: a failure is logged and startup continues.

# Tables

	projects(id PK, name, created_at)
	votes(id PK, project_id FK -> projects.id ON DELETE CASCADE, voter_id, cast_at)

# Indexes

  - votes.(voter_id, project_id): duplicate-vote lookups
  - votes.(project_id, voter_id) UNIQUE: one vote per voter per project

SQLite connections get foreign_keys(1) so deletes cascade.
*/
package db
