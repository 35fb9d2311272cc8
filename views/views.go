// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names
const (
	PageDashboard     = "dashboard"
	PageVote          = "vote"
	PageVoteSuccess   = "vote_success"
	PageVoteDuplicate = "vote_duplicate"
	PageResults       = "results"
	PageReport        = "report"
	PagePrintList     = "print_list"
	PagePrintProject  = "print_project"
	PageError         = "error"
)

// Site is the branding shown on every page
type Site struct {
	AppName string
	OrgName string
	BaseURL string
}

// Renderer executes the page templates. It is safe for concurrent use.
type Renderer struct {
	site  Site
	pages map[string]*template.Template
}

// page is the value every template receives
type page struct {
	Site Site
	Data any
}

// ErrorData feeds the error page
type ErrorData struct {
	Status  int
	Title   string
	Message string
}

// New parses the layout and every page once
func New(site Site) (*Renderer, error) {
	base, err := template.New("layout").Funcs(funcMap()).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	files, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), ".html")

		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		if _, err := clone.ParseFS(templateFS, file); err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		pages[name] = clone
	}

	return &Renderer{site: site, pages: pages}, nil
}

// Render writes the named page with the given status. A template failure
// produces a bare 500 and nothing else.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) {
	tmpl, ok := r.pages[name]
	if !ok {
		slog.Error("failed to render page", "page", name, "error", "unknown page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page{Site: r.site, Data: data}); err != nil {
		slog.Error("failed to render page", "page", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write page", "page", name, "error", err)
	}
}

// Error renders the error page with a user-facing message
func (r *Renderer) Error(w http.ResponseWriter, status int, message string) {
	r.Render(w, status, PageError, ErrorData{
		Status:  status,
		Title:   statusTitle(status),
		Message: message,
	})
}

// StaticHandler serves the embedded stylesheet and other assets under /static/
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServerFS(sub))
}

func statusTitle(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Requisição inválida"
	case http.StatusNotFound:
		return "Não encontrado"
	default:
		return "Erro interno do servidor"
	}
}

// Relative times in Portuguese, e.g. "há 5 minutos"
var relMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Second, Format: "agora", DivBy: time.Second},
	{D: 2 * time.Second, Format: "%s 1 segundo", DivBy: 1},
	{D: time.Minute, Format: "%s %d segundos", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "%s 1 minuto", DivBy: 1},
	{D: time.Hour, Format: "%s %d minutos", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "%s 1 hora", DivBy: 1},
	{D: humanize.Day, Format: "%s %d horas", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "%s 1 dia", DivBy: 1},
	{D: humanize.Week, Format: "%s %d dias", DivBy: humanize.Day},
	{D: 2 * humanize.Week, Format: "%s 1 semana", DivBy: 1},
	{D: humanize.Month, Format: "%s %d semanas", DivBy: humanize.Week},
	{D: 2 * humanize.Month, Format: "%s 1 mês", DivBy: 1},
	{D: humanize.Year, Format: "%s %d meses", DivBy: humanize.Month},
	{D: 2 * humanize.Year, Format: "%s 1 ano", DivBy: 1},
	{D: humanize.LongTime, Format: "%s %d anos", DivBy: humanize.Year},
	{D: 1<<63 - 1, Format: "%s muito tempo", DivBy: 1},
}

func ago(t time.Time) string {
	return humanize.CustomRelTime(t, time.Now(), "há", "daqui a", relMagnitudes)
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"ago": ago,
		"count": func(n int) string {
			return humanize.Comma(int64(n))
		},
		"percent": func(p float64) string {
			return fmt.Sprintf("%.1f%%", p)
		},
		"plural": func(n int, one, many string) string {
			if n == 1 {
				return one
			}
			return many
		},
		"inc": func(i int) int { return i + 1 },
	}
}
