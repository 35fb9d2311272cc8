// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

Load reads an optional .env file and then calls ParseFlags:

	cfg, err := cliparse.Load(os.Args[1:])

Every setting has a default, so the server starts with no configuration
at all against a local SQLite file.

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseURL: SQLite path or PostgreSQL URL (default: votacao.db)
  - DatabaseType: sqlite or postgres (inferred from DatabaseURL)
  - AppName, OrgName: Display names shown on every page
  - BaseURL: Public URL embedded in QR codes (default: http://localhost:<port>)
  - TrustProxy: Read client address from X-Forwarded-For / X-Real-IP
  - DB: Pool, query timeout and connect retry settings

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-app-name     Application display name
	-org-name     Organization display name
	-base-url     Public base URL
	-trust-proxy  Trust proxy headers
	-log-level    Log level
	-dev          Development mode

# Environment Variables

	PORT, DATABASE_URL, DATABASE_TYPE, APP_NAME, ORG_NAME, BASE_URL,
	TRUST_PROXY, LOG_LEVEL, LOG_FORMAT, APP_ENV,
	DB_MAX_OPEN_CONNS, DB_MAX_IDLE_CONNS, DB_IDLE_TIMEOUT,
	DB_QUERY_TIMEOUT, DB_RETRY_DELAY, DB_RETRY_ATTEMPTS

CLI flags take precedence over environment variables. Malformed numbers,
durations and booleans are reported as errors.
*/
package cliparse
