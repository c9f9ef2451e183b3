package handler

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"
)

//go:embed templates/*.html
var templatesFS embed.FS

// SiteInfo is the site identity injected into every rendered page.
type SiteInfo struct {
	Name        string
	Description string
	AdminEmail  string
	OwnerName   string
	OwnerTitle  string
}

// pageData is the data passed to every page template.
type pageData struct {
	Site        SiteInfo
	CurrentYear int
	Flash       *Flash
	Form        map[string]string
	Errors      map[string]string
}

// Pages renders the static informational pages and error pages from
// embedded templates.
type Pages struct {
	site SiteInfo
	tmpl map[string]*template.Template
}

// NewPages parses the embedded templates, one set per page over the shared
// base layout.
func NewPages(site SiteInfo) (*Pages, error) {
	pages := []string{
		"index.html", "about.html", "services.html", "resume.html",
		"contact.html", "404.html", "500.html",
	}
	tmpl := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.ParseFS(templatesFS, "templates/base.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		tmpl[page] = t
	}
	return &Pages{site: site, tmpl: tmpl}, nil
}

func (p *Pages) data() pageData {
	return pageData{
		Site:        p.site,
		CurrentYear: time.Now().UTC().Year(),
	}
}

func (p *Pages) render(w http.ResponseWriter, status int, page string, data pageData) {
	t, ok := p.tmpl[page]
	if !ok {
		slog.Error("unknown page template", "page", page)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		slog.Error("render page failed", "page", page, "error", err)
	}
}

// Home handles GET /.
func (p *Pages) Home(w http.ResponseWriter, r *http.Request) {
	p.render(w, http.StatusOK, "index.html", p.data())
}

// About handles GET /about.
func (p *Pages) About(w http.ResponseWriter, r *http.Request) {
	p.render(w, http.StatusOK, "about.html", p.data())
}

// Services handles GET /services.
func (p *Pages) Services(w http.ResponseWriter, r *http.Request) {
	p.render(w, http.StatusOK, "services.html", p.data())
}

// Resume handles GET /resume.
func (p *Pages) Resume(w http.ResponseWriter, r *http.Request) {
	p.render(w, http.StatusOK, "resume.html", p.data())
}

// NotFound renders the 404 page for unknown routes.
func (p *Pages) NotFound(w http.ResponseWriter, r *http.Request) {
	slog.WarnContext(r.Context(), "page not found", "path", r.URL.Path)
	p.render(w, http.StatusNotFound, "404.html", p.data())
}

// ServerError renders the 500 page without leaking internal detail.
func (p *Pages) ServerError(w http.ResponseWriter, r *http.Request) {
	p.render(w, http.StatusInternalServerError, "500.html", p.data())
}
