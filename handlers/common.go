// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/views"
	"github.com/danielhkuo/quickly-vote/voting"
)

var errInvalidID = errors.New("invalid project id")

// parseID accepts positive base-10 integers only
func parseID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errInvalidID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// formValue returns the first non-blank posted value among keys
func formValue(r *http.Request, keys ...string) string {
	for _, k := range keys {
		if v := r.PostFormValue(k); strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// renderError maps a workflow error onto a status and page. Storage
// details stay in the log.
func renderError(w http.ResponseWriter, r *http.Request, v *views.Renderer, action string, err error) {
	switch {
	case errors.Is(err, errInvalidID):
		v.Error(w, http.StatusBadRequest, "Identificador de projeto inválido.")
	case errors.Is(err, voting.ErrInvalidName):
		v.Error(w, http.StatusBadRequest, "O nome do projeto é obrigatório e deve ter no máximo 255 caracteres.")
	case errors.Is(err, voting.ErrProjectNotFound):
		v.Error(w, http.StatusNotFound, "Projeto não encontrado.")
	default:
		slog.Error("failed to "+action,
			"error", err,
			"path", r.URL.Path,
			"request_id", middleware.RequestIDFromContext(r.Context()),
		)
		v.Error(w, http.StatusInternalServerError, "Erro interno do servidor. Tente novamente.")
	}
}
