// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"fmt"
	"net/http"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/handlers"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/store"
	"github.com/danielhkuo/quickly-vote/views"
	"github.com/danielhkuo/quickly-vote/voting"
)

// NewRouter wires every route. The returned handler adds request ids and
// security headers around the mux.
func NewRouter(st store.Store, cfg cliparse.Config) (http.Handler, error) {
	renderer, err := views.New(views.Site{
		AppName: cfg.AppName,
		OrgName: cfg.OrgName,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	mux := http.NewServeMux()

	// Initialize handlers
	svc := voting.NewService(st)
	projectHandler := handlers.NewProjectHandler(svc, renderer)
	votingHandler := handlers.NewVotingHandler(svc, renderer, cfg)
	resultsHandler := handlers.NewResultsHandler(svc, renderer, cfg)
	healthHandler := handlers.NewHealthHandler(st)

	// Health check
	mux.HandleFunc("GET /health", middleware.WithLogging(healthHandler.Check))

	// Organizer pages
	mux.HandleFunc("GET /{$}", middleware.WithLogging(projectHandler.Dashboard))
	mux.HandleFunc("POST /cadastrar", middleware.WithLogging(projectHandler.Create))
	mux.HandleFunc("POST /excluir/{id}", middleware.WithLogging(projectHandler.Delete))
	mux.HandleFunc("POST /limpar-votos", middleware.WithLogging(projectHandler.ClearVotes))

	// Voting (reached through the QR code)
	mux.HandleFunc("GET /votar/{id}", middleware.WithLogging(votingHandler.ShowVote))
	mux.HandleFunc("POST /votar", middleware.WithLogging(votingHandler.CastVote))

	// Results, QR codes and print views
	mux.HandleFunc("GET /qrcode/{id}", middleware.WithLogging(resultsHandler.QRCode))
	mux.HandleFunc("GET /resultados/{id}", middleware.WithLogging(resultsHandler.ProjectResults))
	mux.HandleFunc("GET /relatorio", middleware.WithLogging(resultsHandler.Report))
	mux.HandleFunc("GET /imprimir", middleware.WithLogging(resultsHandler.PrintList))
	mux.HandleFunc("GET /imprimir/{id}", middleware.WithLogging(resultsHandler.PrintProject))

	// Static assets
	mux.Handle("GET /static/", views.StaticHandler())

	var handler http.Handler = mux
	handler = middleware.SecureHeaders(cfg.Development)(handler)
	handler = middleware.RequestID(handler)

	return handler, nil
}
