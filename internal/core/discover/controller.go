// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package discover configures the preprint discovery page.

The page hosts a third-party search component; this package decides how that
component is configured for the active theme: which facets it shows, the
header and placeholder text, the sort options, the parameters the viewer may
not change, and whether active filters are listed.

# Derived values

A [Controller] is built from its inputs (translator, theme id, provider list)
and every derived value is a pure method over them. Rebuilding the controller
when an input changes is the recomputation rule: nothing is cached.

# URL state

[State] mirrors the page's query parameters (page, q, provider, subject) plus
the active filters. [State.ClearFilters] and [State.ClearQuery] are the two
page actions.
*/
package discover

import (
	"github.com/eliezyer/ember-osf-preprints/internal/core/provider"
)

const (
	// ConsumingService identifies this application to the search component.
	ConsumingService = "preprints"

	// DetailRoute is the route name search results link to.
	DetailRoute = "content"
)

// FilterMap maps active-filter names to the facet names the search backend expects.
var FilterMap = map[string]string{
	"providers": "sources",
	"subjects":  "subjects",
}

// FilterReplace maps source names to their display names.
//
// The table is intentionally not a bijection: "Open Science Framework" shows
// as "OSF" while "OSF" shows as "OSF Preprints".
var FilterReplace = map[string]string{
	"Open Science Framework":            "OSF",
	"Cognitive Sciences ePrint Archive": "Cogprints",
	"OSF":                               "OSF Preprints",
	"Research Papers in Economics":      "RePEc",
}

// Translator resolves localized text for a key.
type Translator interface {
	T(key string) string
}

// Facet is one filter panel of the search component.
type Facet struct {
	Key       string `json:"key"`
	Title     string `json:"title"`
	Component string `json:"component"`
}

// SortOption is one entry of the sort selector.
type SortOption struct {
	Display string `json:"display"`
	SortBy  string `json:"sortBy"`
}

// Controller derives the discovery page configuration.
type Controller struct {
	translator Translator
	themeID    string
	providers  []provider.Provider
}

// NewController builds a controller over the given inputs.
func NewController(translator Translator, themeID string, providers []provider.Provider) *Controller {
	return &Controller{translator: translator, themeID: themeID, providers: providers}
}

// ThemeProvider returns the provider whose id equals the theme id, or nil.
//
// If several providers share the id, the last one wins.
func (c *Controller) ThemeProvider() *provider.Provider {
	var found *provider.Provider
	for i := range c.providers {
		if c.providers[i].ID == c.themeID {
			found = &c.providers[i]
		}
	}
	return found
}

// AdditionalProviders returns the theme provider's aggregated repositories, or an empty list.
func (c *Controller) AdditionalProviders() []string {
	if themeProvider := c.ThemeProvider(); themeProvider != nil && themeProvider.AdditionalProviders != nil {
		return themeProvider.AdditionalProviders
	}
	return []string{}
}

func (c *Controller) hasAdditionalProviders() bool {
	return len(c.AdditionalProviders()) > 0
}

// Facets returns the facet list for the active theme.
func (c *Controller) Facets() []Facet {
	if c.hasAdditionalProviders() {
		return []Facet{
			{Key: "sources", Title: c.translator.T("discover.main.source"), Component: "search-facet-source"},
			{Key: "date", Title: c.translator.T("discover.main.date"), Component: "search-facet-daterange"},
			{Key: "type", Title: c.translator.T("discover.main.type"), Component: "search-facet-worktype"},
			{Key: "tags", Title: c.translator.T("discover.main.tag"), Component: "search-facet-typeahead"},
		}
	}

	return []Facet{
		{Key: "sources", Title: c.translator.T("discover.main.providers"), Component: "search-facet-provider"},
		{Key: "subjects", Title: c.translator.T("discover.main.subject"), Component: "search-facet-taxonomy"},
	}
}

// DiscoverHeader returns the page heading.
func (c *Controller) DiscoverHeader() string {
	if c.hasAdditionalProviders() {
		return c.translator.T("discover.search.heading_repository_search")
	}
	return c.translator.T("discover.search.heading")
}

// SearchPlaceholder returns the search box placeholder.
func (c *Controller) SearchPlaceholder() string {
	return c.translator.T("discover.search.placeholder")
}

// SortOptions returns the sort selector entries in display order.
func (c *Controller) SortOptions() []SortOption {
	return []SortOption{
		{Display: c.translator.T("discover.relevance"), SortBy: ""},
		{Display: c.translator.T("discover.sort_oldest_newest"), SortBy: "date_updated"},
		{Display: c.translator.T("discover.sort_newest_oldest"), SortBy: "-date_updated"},
	}
}

// LockedParams returns the search parameters the viewer cannot change.
func (c *Controller) LockedParams() map[string]string {
	if c.hasAdditionalProviders() {
		return map[string]string{}
	}
	return map[string]string{"types": "preprint"}
}

// ShowActiveFilters reports whether the active-filter list is displayed.
func (c *Controller) ShowActiveFilters() bool {
	return !c.hasAdditionalProviders()
}
