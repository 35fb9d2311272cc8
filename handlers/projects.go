// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/views"
	"github.com/danielhkuo/quickly-vote/voting"
)

type ProjectHandler struct {
	svc   *voting.Service
	views *views.Renderer
}

func NewProjectHandler(svc *voting.Service, v *views.Renderer) *ProjectHandler {
	return &ProjectHandler{svc: svc, views: v}
}

// Dashboard handles GET /
// Lists every project with its vote count, most voted first
func (h *ProjectHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	results, err := h.svc.Results(r.Context(), models.OrderByVotes)
	if err != nil {
		renderError(w, r, h.views, "list projects", err)
		return
	}

	total := 0
	for _, res := range results {
		total += res.Votes
	}

	h.views.Render(w, http.StatusOK, views.PageDashboard, map[string]any{
		"Results":    results,
		"TotalVotes": total,
	})
}

// Create handles POST /cadastrar
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	name := formValue(r, "name", "nome")

	if _, err := h.svc.CreateProject(r.Context(), name); err != nil {
		renderError(w, r, h.views, "create project", err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Delete handles POST /excluir/{id}
// Votes for the project go with it
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		renderError(w, r, h.views, "delete project", err)
		return
	}

	if err := h.svc.DeleteProject(r.Context(), id); err != nil {
		renderError(w, r, h.views, "delete project", err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ClearVotes handles POST /limpar-votos
func (h *ProjectHandler) ClearVotes(w http.ResponseWriter, r *http.Request) {
	if _, err := h.svc.ClearVotes(r.Context()); err != nil {
		renderError(w, r, h.views, "clear votes", err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
