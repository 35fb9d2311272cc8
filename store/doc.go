// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the persistence layer for projects and votes.

Handlers depend on the Store interface; SQLStore implements it over
database/sql for both SQLite and Postgres. Queries are built with
squirrel and the placeholder style follows the dialect.

# Errors

Driver errors are mapped onto sentinels that callers match with errors.Is:

  - ErrNotFound: no row (GetProject, DeleteProject)
  - ErrDuplicate: unique index hit (InsertVote for a voter that already voted)
  - ErrConstraint: foreign key or NOT NULL failure
  - ErrUnavailable: anything else (connection lost, timeout)

# Timeouts

Every call runs under the query timeout passed to NewSQLStore.
*/
package store
