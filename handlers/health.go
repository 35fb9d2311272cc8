// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/store"
)

type HealthHandler struct {
	store store.Store
	now   func() time.Time
}

func NewHealthHandler(st store.Store) *HealthHandler {
	return &HealthHandler{store: st, now: func() time.Time { return time.Now().UTC() }}
}

// Check handles GET /health
// Returns 503 when the database can't be reached
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		slog.Error("health check failed", "error", err)
		middleware.JSONResponse(w, http.StatusServiceUnavailable, models.HealthResponse{
			Status:   models.HealthError,
			Database: models.DatabaseDisconnected,
			Error:    err.Error(),
		})
		return
	}

	now := h.now()
	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		Status:    models.HealthOK,
		Database:  models.DatabaseConnected,
		Timestamp: &now,
	})
}
