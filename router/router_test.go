// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/store"
	"github.com/danielhkuo/quickly-vote/testutil"
)

type testEnv struct {
	Store *store.SQLStore
	Conn  *sql.DB
}

func newTestRouter(t *testing.T) (http.Handler, testEnv) {
	t.Helper()

	st, conn := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()

	handler, err := NewRouter(st, cfg)
	if err != nil {
		t.Fatalf("Failed to build router: %v", err)
	}
	return handler, testEnv{Store: st, Conn: conn}
}

func TestHealthEndpoint(t *testing.T) {
	handler, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode health response: %v", err)
	}
	if body["status"] != "OK" || body["database"] != "connected" {
		t.Errorf("Unexpected health body: %v", body)
	}
}

func TestRootEndpoint(t *testing.T) {
	handler, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Test Expo") {
		t.Error("Expected dashboard to show the app name")
	}
}

func TestRouteExistence(t *testing.T) {
	handler, env := newTestRouter(t)
	testutil.CreateTestProject(t, env.Store, "Robot Arm")

	testCases := []struct {
		method string
		path   string
		status int
	}{
		{"GET", "/health", http.StatusOK},
		{"GET", "/", http.StatusOK},
		{"GET", "/votar/1", http.StatusOK},
		{"GET", "/qrcode/1", http.StatusOK},
		{"GET", "/resultados/1", http.StatusOK},
		{"GET", "/relatorio", http.StatusOK},
		{"GET", "/imprimir", http.StatusOK},
		{"GET", "/imprimir/1", http.StatusOK},
		{"GET", "/static/style.css", http.StatusOK},
		{"POST", "/limpar-votos", http.StatusSeeOther},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Errorf("Expected status %d for %s %s, got %d", tc.status, tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	handler, _ := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"GET", "/cadastrar"},
		{"GET", "/excluir/1"},
		{"DELETE", "/votar/1"},
		{"GET", "/limpar-votos"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestUnknownPath(t *testing.T) {
	handler, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/nope", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestMiddlewareApplied(t *testing.T) {
	handler, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("Expected X-Request-ID header")
	}
	if w.Header().Get("X-Frame-Options") != "DENY" {
		t.Error("Expected X-Frame-Options DENY")
	}
}

func TestVotingFlow(t *testing.T) {
	handler, env := newTestRouter(t)

	// Register
	req := testutil.MakeFormRequest("POST", "/cadastrar", url.Values{"name": {"Robot Arm"}}, nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusSeeOther)

	// Scan and vote
	vote := func(agent string) string {
		req := testutil.MakeFormRequest("POST", "/votar", url.Values{"project_id": {"1"}}, map[string]string{"User-Agent": agent})
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)
		return w.Body.String()
	}

	if !strings.Contains(vote("phone-a"), "foi registrado com sucesso") {
		t.Error("Expected first vote to be accepted")
	}
	if !strings.Contains(vote("phone-a"), "Voto já registrado") {
		t.Error("Expected repeated vote to be rejected")
	}
	if !strings.Contains(vote("phone-b"), "foi registrado com sucesso") {
		t.Error("Expected second voter to be accepted")
	}

	if n := testutil.CountRows(t, env.Conn, "votes"); n != 2 {
		t.Errorf("Expected 2 votes, got %d", n)
	}

	// Missing project
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/votar/999", nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)

	// Delete cascades
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("POST", "/excluir/1", nil))
	testutil.AssertStatus(t, w, http.StatusSeeOther)

	if n := testutil.CountRows(t, env.Conn, "votes"); n != 0 {
		t.Errorf("Expected votes deleted with the project, got %d", n)
	}
}
