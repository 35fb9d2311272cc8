// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/store"
)

// TestDBURL is an in-memory SQLite database private to one connection
const TestDBURL = "file::memory:"

// SetupTestDB creates a fresh in-memory database with the full schema.
// The pool is pinned to one connection so every query sees the same database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.SQLite, TestDBURL, cliparse.DBConfig{MaxOpenConns: 1, MaxIdleConns: 1})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(context.Background(), conn, db.SQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore returns a store over a fresh test database, plus the raw
// connection for assertions.
func SetupTestStore(t *testing.T) (*store.SQLStore, *sql.DB) {
	t.Helper()

	conn := SetupTestDB(t)
	return store.NewSQLStore(conn, db.SQLite, 0), conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3000,
		DatabaseURL:  TestDBURL,
		DatabaseType: "sqlite",
		AppName:      "Test Expo",
		OrgName:      "Test Org",
		BaseURL:      "http://example.org",
		LogLevel:     "error",
	}
}

// CreateTestProject registers a project and returns its ID
func CreateTestProject(t *testing.T, st store.Store, name string) int64 {
	t.Helper()

	id, err := st.CreateProject(context.Background(), name)
	if err != nil {
		t.Fatalf("Failed to create test project: %v", err)
	}
	return id
}

// CastTestVote records a vote directly in the store
func CastTestVote(t *testing.T, st store.Store, projectID int64, voterID string) {
	t.Helper()

	if _, err := st.InsertVote(context.Background(), projectID, voterID); err != nil {
		t.Fatalf("Failed to cast test vote: %v", err)
	}
}

// CountRows counts rows in a table straight from the database
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// MakeFormRequest creates a form-encoded HTTP test request
func MakeFormRequest(method, path string, form url.Values, headers map[string]string) *http.Request {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}
