// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/identity"
	"github.com/danielhkuo/quickly-vote/views"
	"github.com/danielhkuo/quickly-vote/voting"
)

type VotingHandler struct {
	svc   *voting.Service
	views *views.Renderer
	cfg   cliparse.Config
}

func NewVotingHandler(svc *voting.Service, v *views.Renderer, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{svc: svc, views: v, cfg: cfg}
}

// ShowVote handles GET /votar/{id}
// This is where the QR code lands
func (h *VotingHandler) ShowVote(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		renderError(w, r, h.views, "show voting page", err)
		return
	}

	project, err := h.svc.Project(r.Context(), id)
	if err != nil {
		renderError(w, r, h.views, "show voting page", err)
		return
	}

	// A failed lookup only hides the notice; the vote itself is still guarded
	voted, err := h.svc.HasVoted(r.Context(), id, identity.VoterID(r, h.cfg.TrustProxy))
	if err != nil {
		slog.Warn("failed to check previous vote", "error", err, "project_id", id)
	}

	h.views.Render(w, http.StatusOK, views.PageVote, map[string]any{
		"Project":      project,
		"AlreadyVoted": voted,
	})
}

// CastVote handles POST /votar
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(formValue(r, "project_id", "projetoId"))
	if err != nil {
		renderError(w, r, h.views, "cast vote", err)
		return
	}

	voterID := identity.VoterID(r, h.cfg.TrustProxy)

	project, err := h.svc.CastVote(r.Context(), id, voterID)
	if errors.Is(err, voting.ErrDuplicateVote) {
		slog.Info("duplicate vote rejected", "project_id", id)
		h.views.Render(w, http.StatusOK, views.PageVoteDuplicate, map[string]any{"Project": project})
		return
	}
	if err != nil {
		renderError(w, r, h.views, "cast vote", err)
		return
	}

	h.views.Render(w, http.StatusOK, views.PageVoteSuccess, map[string]any{"Project": project})
}
