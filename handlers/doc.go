// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the voting site.

# Handler Types

Each handler is a struct holding its dependencies:

  - ProjectHandler: dashboard, project registration and deletion, clearing votes
  - VotingHandler: voting page and vote submission
  - ResultsHandler: per-project results, final report, QR codes and print views
  - HealthHandler: database liveness probe

Handlers are created via constructor functions:

	svc := voting.NewService(st)
	votingHandler := handlers.NewVotingHandler(svc, renderer, cfg)

# Voting

	GET  /votar/{id}  → ShowVote (notes a previous vote from this device)
	POST /votar       → CastVote (form field project_id)

The voter is identified by identity.VoterID, a hash of the client address
and User-Agent. A repeated vote is not an error for the visitor: it gets
the "already voted" page with status 200.

# Errors

Path ids must be positive integers; anything else is a 400. Unknown
projects are a 404. Storage failures are logged with the request id and
answered with a generic 500 page.

# Health

	GET /health → {"status":"OK","database":"connected","timestamp":"..."}

Returns 503 with {"status":"ERROR","database":"disconnected","error":"..."}
when the database ping fails.
*/
package handlers
