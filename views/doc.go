// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package views renders the HTML pages.

Templates and the stylesheet are embedded in the binary. Every page under
templates/pages defines a "content" block (and optionally "title") that is
placed into templates/layout.html. Pages are parsed once by New.

	renderer, err := views.New(views.Site{AppName: cfg.AppName, OrgName: cfg.OrgName})
	renderer.Render(w, http.StatusOK, views.PageVote, data)

Templates see the branding as .Site and the handler's value as .Data.
All output goes through html/template, so project names are escaped.

# Template functions

	ago      relative time in Portuguese ("há 5 minutos")
	count    integer with thousands separators
	percent  one decimal place and a percent sign
	plural   picks the singular or plural word
	inc      index + 1 for rankings
*/
package views
