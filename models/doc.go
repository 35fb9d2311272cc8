// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain and response types shared by the server.

# Domain Types

  - Project: a registered project (id, name, created_at)
  - Vote: one vote for a project by one voter id
  - ProjectResult: a project with its vote count and share of the total
  - Report: every result, the total and the leading project

# Response Types

  - HealthResponse: status, database, timestamp or error

# Constants

Result orderings:

	OrderByVotes = "votes"
	OrderByName  = "name"

Health values:

	HealthOK    = "OK"
	HealthError = "ERROR"
*/
package models
