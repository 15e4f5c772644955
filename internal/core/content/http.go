// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eliezyer/ember-osf-preprints/internal/platform/apperr"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/headtags"
	requestutil "github.com/eliezyer/ember-osf-preprints/internal/platform/request"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/respond"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/view"
)

// mathTargets are typeset after a view-mode render.
var mathTargets = []string{".abstract", "#preprintTitle"}

type Handler struct {
	route    *Route
	renderer *view.Renderer
}

func NewHandler(route *Route, renderer *view.Renderer) *Handler {
	return &Handler{route: route, renderer: renderer}
}

// RegisterRoutes mounts the HTML page.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/preprints/{preprint_id}", handler.page)
}

// RegisterAPIRoutes mounts the head-tag endpoint.
func (handler *Handler) RegisterAPIRoutes(router chi.Router) {
	router.Get("/preprints/{preprint_id}/head-tags", handler.headTags)
}

func (handler *Handler) page(writer http.ResponseWriter, request *http.Request) {
	visit := handler.route.Visit(request.Context(), handler.params(request))
	localizer := handler.renderer.Localizer(request)

	page := view.Page{ResetScroll: true}

	switch visit.Outcome {
	case OutcomeNotFound:
		writer.Header().Set("Content-Location", visit.CanonicalPath)
		page.Name, page.Status = view.PageNotFound, http.StatusNotFound
		page.Title = localizer.T("errors.page_not_found")
		page.CanonicalPath = visit.CanonicalPath
	case OutcomeForbidden:
		page.Name, page.Status = view.PageForbidden, http.StatusForbidden
		page.Title = localizer.T("errors.forbidden")
	default:
		page.HeadTags = visit.HeadTagService.Tags()
		if visit.EditMode {
			page.Name, page.Title = view.PageSubmit, localizer.T("submit.title")
			page.Data = NewSubmitForm(visit)
		} else {
			page.Name, page.Title = view.PageContent, visit.Node.Title
			page.Typeset = mathTargets
			page.Data = NewViewData(visit)
		}
	}

	handler.renderer.Render(writer, request, page)
	handler.route.Track(request.Context(), visit, requestutil.UserID(request), localizer.Locale())
}

func (handler *Handler) headTags(writer http.ResponseWriter, request *http.Request) {
	params := handler.params(request)
	// og:url names the page, not this endpoint.
	params.RequestURI = ""

	visit := handler.route.Visit(request.Context(), params)

	switch visit.Outcome {
	case OutcomeNotFound:
		writer.Header().Set("Content-Location", visit.CanonicalPath)
		respond.Error(writer, request, apperr.NotFound("Preprint"))
	case OutcomeForbidden:
		respond.Error(writer, request, apperr.Forbidden("Editing this preprint requires admin permission"))
	default:
		tags := visit.HeadTagService.Tags()
		if tags == nil {
			tags = []headtags.Tag{}
		}
		respond.OK(writer, tags)
	}
}

func (handler *Handler) params(request *http.Request) Params {
	return Params{
		PreprintID: requestutil.Param(request, "preprint_id"),
		Edit:       requestutil.Flag(request, "edit"),
		RequestURI: request.URL.RequestURI(),
	}
}
