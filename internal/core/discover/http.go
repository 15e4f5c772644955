// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package discover

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/eliezyer/ember-osf-preprints/internal/core/provider"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/analytics"
	requestutil "github.com/eliezyer/ember-osf-preprints/internal/platform/request"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/respond"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/theme"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/validate"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/view"
)

// Page actions carried by the clear parameter.
const (
	paramClear   = "clear"
	clearFilters = "filters"
	clearQuery   = "query"
)

// ViewModel is the discovery page configuration handed to the template and the search component.
type ViewModel struct {
	Theme               theme.Theme         `json:"theme"`
	Header              string              `json:"discoverHeader"`
	Placeholder         string              `json:"searchPlaceholder"`
	Facets              []Facet             `json:"facets"`
	SortOptions         []SortOption        `json:"sortOptions"`
	LockedParams        map[string]string   `json:"lockedParams"`
	ShowActiveFilters   bool                `json:"showActiveFilters"`
	FilterMap           map[string]string   `json:"filterMap"`
	FilterReplace       map[string]string   `json:"filterReplace"`
	ConsumingService    string              `json:"consumingService"`
	DetailRoute         string              `json:"detailRoute"`
	AdditionalProviders []string            `json:"additionalProviders"`
	State               State               `json:"state"`
	SearchQuery         map[string][]string `json:"searchQuery"`
	ClearFiltersURL     string              `json:"clearFiltersUrl"`
	ClearQueryURL       string              `json:"clearQueryUrl"`
}

type Handler struct {
	providers *provider.Service
	themes    *theme.Resolver
	renderer  *view.Renderer
	tracker   analytics.Tracker
}

func NewHandler(providers *provider.Service, themes *theme.Resolver, renderer *view.Renderer, tracker analytics.Tracker) *Handler {
	return &Handler{
		providers: providers,
		themes:    themes,
		renderer:  renderer,
		tracker:   tracker,
	}
}

// RegisterRoutes mounts the HTML pages.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/discover", handler.page)
	router.Get("/preprints/{themeID}/discover", handler.page)
}

// RegisterAPIRoutes mounts the JSON configuration endpoint.
func (handler *Handler) RegisterAPIRoutes(router chi.Router) {
	router.Get("/discover", handler.config)
}

func (handler *Handler) page(writer http.ResponseWriter, request *http.Request) {
	state, activeTheme, err := handler.readRequest(request)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	if action := request.URL.Query().Get(paramClear); action != "" {
		handler.applyAction(writer, request, action, state, activeTheme)
		return
	}

	model, err := handler.build(request, state, activeTheme)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Render(writer, request, view.Page{
		Name:        view.PageDiscover,
		Title:       model.Header,
		ResetScroll: true,
		Data:        model,
	})

	handler.track(request, analytics.CategoryPage, "view", activeTheme)
}

func (handler *Handler) config(writer http.ResponseWriter, request *http.Request) {
	state, activeTheme, err := handler.readRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	model, err := handler.build(request, state, activeTheme)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, model)
}

func (handler *Handler) readRequest(request *http.Request) (State, theme.Theme, error) {
	routeTheme := requestutil.Param(request, "themeID")
	query := request.URL.Query()

	check := new(validate.Validator)
	if routeTheme != "" {
		check.Slug("themeID", routeTheme)
	}
	if action := query.Get(paramClear); action != "" {
		check.OneOf(paramClear, action, clearFilters, clearQuery)
	}
	if err := check.Err(); err != nil {
		return State{}, theme.Theme{}, err
	}

	state, err := StateFromQuery(query)
	if err != nil {
		return State{}, theme.Theme{}, err
	}

	return state, handler.themes.Resolve(request, routeTheme), nil
}

// applyAction runs a clear action and redirects to the URL reflecting the new state.
func (handler *Handler) applyAction(writer http.ResponseWriter, request *http.Request, action string, state State, activeTheme theme.Theme) {
	switch action {
	case clearFilters:
		state.ClearFilters()
		handler.track(request, analytics.CategoryFilter, "clear_filters", activeTheme)
	case clearQuery:
		state.ClearQuery()
		handler.track(request, analytics.CategorySearch, "clear_query", activeTheme)
	}

	http.Redirect(writer, request, pageURL(request.URL.Path, state.Query()), http.StatusSeeOther)
}

func (handler *Handler) build(request *http.Request, state State, activeTheme theme.Theme) (*ViewModel, error) {
	providers, err := handler.providers.ListProviders(request.Context())
	if err != nil {
		return nil, err
	}

	controller := NewController(handler.renderer.Localizer(request), activeTheme.ID, providers)

	return &ViewModel{
		Theme:               activeTheme,
		Header:              controller.DiscoverHeader(),
		Placeholder:         controller.SearchPlaceholder(),
		Facets:              controller.Facets(),
		SortOptions:         controller.SortOptions(),
		LockedParams:        controller.LockedParams(),
		ShowActiveFilters:   controller.ShowActiveFilters(),
		FilterMap:           FilterMap,
		FilterReplace:       FilterReplace,
		ConsumingService:    ConsumingService,
		DetailRoute:         DetailRoute,
		AdditionalProviders: controller.AdditionalProviders(),
		State:               state,
		SearchQuery:         controller.SearchQuery(state),
		ClearFiltersURL:     actionURL(request.URL.Path, state, clearFilters),
		ClearQueryURL:       actionURL(request.URL.Path, state, clearQuery),
	}, nil
}

func (handler *Handler) track(request *http.Request, category, action string, activeTheme theme.Theme) {
	analytics.Record(request.Context(), handler.tracker, analytics.Event{
		Category: category,
		Action:   action,
		Label:    activeTheme.ID,
		Path:     request.URL.Path,
		ThemeID:  activeTheme.ID,
		UserID:   requestutil.UserID(request),
		Locale:   handler.renderer.Localizer(request).Locale(),
	})
}

func actionURL(path string, state State, action string) string {
	values := state.Query()
	values.Set(paramClear, action)
	return pageURL(path, values)
}

func pageURL(path string, values url.Values) string {
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}
