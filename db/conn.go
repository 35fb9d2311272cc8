// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quickly-vote/cliparse"
)

type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

const pingTimeout = 10 * time.Second

// ParseDialect accepts the DATABASE_TYPE values understood by cliparse
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(s) {
	case "sqlite", "sqlite3":
		return SQLite, nil
	case "postgres", "postgresql":
		return Postgres, nil
	}
	return "", fmt.Errorf("unknown database type %q", s)
}

// DriverName is the database/sql driver registered for the dialect
func (d Dialect) DriverName() string {
	return string(d)
}

// Open creates the connection pool without touching the network.
func Open(dialect Dialect, dsn string, pool cliparse.DBConfig) (*sql.DB, error) {
	if dialect == SQLite {
		dsn = sqliteDSN(dsn)
	}

	conn, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if pool.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.IdleTimeout > 0 {
		conn.SetConnMaxIdleTime(pool.IdleTimeout)
	}

	return conn, nil
}

// Connect opens the pool, waits for the database to answer and creates the schema.
// Pings are retried every RetryDelay until RetryAttempts is reached (0 means until ctx is done).
// A schema failure is logged and does not stop startup.
func Connect(ctx context.Context, cfg cliparse.Config) (*sql.DB, Dialect, error) {
	dialect, err := ParseDialect(cfg.DatabaseType)
	if err != nil {
		return nil, "", err
	}

	conn, err := Open(dialect, cfg.DatabaseURL, cfg.DB)
	if err != nil {
		return nil, "", err
	}

	for attempt := 1; ; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		err = conn.PingContext(pingCtx)
		cancel()
		if err == nil {
			break
		}

		if cfg.DB.RetryAttempts > 0 && attempt >= cfg.DB.RetryAttempts {
			conn.Close()
			return nil, "", fmt.Errorf("database ping failed after %d attempts: %w", attempt, err)
		}

		slog.Warn("database not reachable, retrying",
			"attempt", attempt,
			"delay", cfg.DB.RetryDelay.String(),
			"error", err,
		)

		select {
		case <-ctx.Done():
			conn.Close()
			return nil, "", ctx.Err()
		case <-time.After(cfg.DB.RetryDelay):
		}
	}

	slog.Info("database connected", "type", dialect)

	if err := CreateSchema(ctx, conn, dialect); err != nil {
		slog.Error("schema creation failed, continuing", "error", err)
	} else {
		slog.Info("database schema ready")
	}

	return conn, dialect, nil
}

// sqliteDSN turns on foreign keys (needed for ON DELETE CASCADE) and a busy
// timeout on every pooled connection.
func sqliteDSN(dsn string) string {
	pragmas := []string{"_pragma=foreign_keys(1)", "_pragma=busy_timeout(5000)"}
	if !strings.Contains(dsn, ":memory:") && !strings.Contains(dsn, "mode=memory") {
		pragmas = append(pragmas, "_pragma=journal_mode(WAL)")
	}

	var extra []string
	for _, p := range pragmas {
		if !strings.Contains(dsn, p[:strings.Index(p, "(")]) {
			extra = append(extra, p)
		}
	}
	if len(extra) == 0 {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(extra, "&")
}
