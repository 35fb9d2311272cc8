// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes of the voting site.

# Route Registration

NewRouter builds the handlers over a store and returns the complete
http.Handler, wrapped with request ids and security headers:

	handler, err := router.NewRouter(st, cfg)

# Endpoints

Health:

	GET /health

Organizer pages:

	GET  /                 - Dashboard with vote counts
	POST /cadastrar        - Register a project
	POST /excluir/{id}     - Delete a project and its votes
	POST /limpar-votos     - Delete all votes
	GET  /relatorio        - Final report
	GET  /imprimir         - Choose a project to print
	GET  /imprimir/{id}    - Printable QR sheet

Voting (public, reached by QR code):

	GET  /votar/{id}       - Voting page
	POST /votar            - Cast a vote

Other:

	GET /qrcode/{id}       - SVG QR code for the voting link
	GET /resultados/{id}   - One project's tally
	GET /static/...        - Embedded stylesheet
*/
package router
