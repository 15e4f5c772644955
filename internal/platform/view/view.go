// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package view renders the HTML pages.

Every page is the shared layout plus one page template, both embedded in the
binary. The layout writes the collected head tags as <meta property content>
elements and runs the page's after-render work in the browser: the canonical
URL rewrite, the scroll reset and the MathJax typesetting queue.

Pages are rendered into a buffer first so that a template failure produces a
clean 500 instead of a half-written document.
*/
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/eliezyer/ember-osf-preprints/internal/platform/ctxutil"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/headtags"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/i18n"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/respond"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// Page template names.
const (
	PageDiscover  = "discover"
	PageContent   = "content"
	PageSubmit    = "submit"
	PageNotFound  = "not_found"
	PageForbidden = "forbidden"
	PageError     = "error"
)

var pageNames = []string{PageDiscover, PageContent, PageSubmit, PageNotFound, PageForbidden, PageError}

// Page describes one rendered response.
type Page struct {
	Name   string
	Status int
	Title  string

	// HeadTags are written into <head> in order.
	HeadTags []headtags.Tag

	// CanonicalPath replaces the visible URL after load when set.
	CanonicalPath string

	// Typeset lists CSS selectors queued for MathJax after render.
	Typeset []string

	ResetScroll bool
	Data        any
}

// document is the value the layout executes against.
type document struct {
	Page
	L      *i18n.Localizer
	Locale string
}

// Renderer executes the embedded page templates.
type Renderer struct {
	templates map[string]*template.Template
	catalog   *i18n.Catalog
}

// New parses every page template against the shared layout.
func New(catalog *i18n.Catalog) (*Renderer, error) {
	funcs := template.FuncMap{
		"join": strings.Join,
		"date": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.UTC().Format("January 2, 2006")
		},
	}

	templates := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, layoutFile, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("view: parse %s: %w", name, err)
		}
		templates[name] = tmpl
	}

	return &Renderer{templates: templates, catalog: catalog}, nil
}

// Localizer returns the request's negotiated localizer, or the default-locale one.
func (r *Renderer) Localizer(request *http.Request) *i18n.Localizer {
	if localizer := ctxutil.GetLocalizer(request.Context()); localizer != nil {
		return localizer
	}
	return r.catalog.Localizer()
}

// Render writes page as a complete HTML document.
func (r *Renderer) Render(writer http.ResponseWriter, request *http.Request, page Page) {
	logger := ctxutil.GetLogger(request.Context())

	tmpl, ok := r.templates[page.Name]
	if !ok {
		logger.ErrorContext(request.Context(), "template_missing", slog.String("template", page.Name))
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	localizer := r.Localizer(request)

	var buffer bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buffer, "layout", document{Page: page, L: localizer, Locale: localizer.Locale()}); err != nil {
		logger.ErrorContext(request.Context(), "template_render_failed",
			slog.String("template", page.Name),
			slog.Any("error", err),
		)
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	status := page.Status
	if status == 0 {
		status = http.StatusOK
	}

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer.WriteHeader(status)
	_, _ = buffer.WriteTo(writer)
}

// Error renders the page matching err's classification (not found, forbidden, or generic).
func (r *Renderer) Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := respond.Classify(request, err)
	localizer := r.Localizer(request)

	page := Page{Status: appError.HTTPStatus}
	switch appError.HTTPStatus {
	case http.StatusNotFound:
		page.Name, page.Title = PageNotFound, localizer.T("errors.page_not_found")
	case http.StatusForbidden:
		page.Name, page.Title = PageForbidden, localizer.T("errors.forbidden")
	default:
		page.Name, page.Title = PageError, localizer.T("errors.unexpected")
		page.Data = appError.Message
	}

	r.Render(writer, request, page)
}
