// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/qr"
	"github.com/danielhkuo/quickly-vote/views"
	"github.com/danielhkuo/quickly-vote/voting"
)

type ResultsHandler struct {
	svc   *voting.Service
	views *views.Renderer
	cfg   cliparse.Config
}

func NewResultsHandler(svc *voting.Service, v *views.Renderer, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{svc: svc, views: v, cfg: cfg}
}

// ProjectResults handles GET /resultados/{id}
func (h *ResultsHandler) ProjectResults(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		renderError(w, r, h.views, "show results", err)
		return
	}

	result, err := h.svc.ProjectResult(r.Context(), id)
	if err != nil {
		renderError(w, r, h.views, "show results", err)
		return
	}

	h.views.Render(w, http.StatusOK, views.PageResults, map[string]any{"Result": result})
}

// Report handles GET /relatorio
func (h *ResultsHandler) Report(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.BuildReport(r.Context())
	if err != nil {
		renderError(w, r, h.views, "build report", err)
		return
	}

	h.views.Render(w, http.StatusOK, views.PageReport, map[string]any{"Report": report})
}

// QRCode handles GET /qrcode/{id}
// The project is not looked up: the code only encodes the link.
func (h *ResultsHandler) QRCode(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		renderError(w, r, h.views, "generate qr code", err)
		return
	}

	svg, err := qr.ProjectSVG(h.cfg.BaseURL, id)
	if err != nil {
		renderError(w, r, h.views, "generate qr code", err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write(svg); err != nil {
		slog.Error("failed to write qr code", "error", err, "project_id", id)
	}
}

// PrintList handles GET /imprimir
func (h *ResultsHandler) PrintList(w http.ResponseWriter, r *http.Request) {
	results, err := h.svc.Results(r.Context(), models.OrderByName)
	if err != nil {
		renderError(w, r, h.views, "list projects for printing", err)
		return
	}

	h.views.Render(w, http.StatusOK, views.PagePrintList, map[string]any{"Results": results})
}

// PrintProject handles GET /imprimir/{id}
func (h *ResultsHandler) PrintProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		renderError(w, r, h.views, "print project", err)
		return
	}

	project, err := h.svc.Project(r.Context(), id)
	if err != nil {
		renderError(w, r, h.views, "print project", err)
		return
	}

	h.views.Render(w, http.StatusOK, views.PagePrintProject, map[string]any{
		"Project":   project,
		"VotingURL": qr.VotingURL(h.cfg.BaseURL, id),
	})
}
