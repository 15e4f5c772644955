// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package discover

import (
	"net/url"
	"strconv"

	"github.com/eliezyer/ember-osf-preprints/internal/platform/validate"
	"github.com/eliezyer/ember-osf-preprints/pkg/convert"
	"github.com/eliezyer/ember-osf-preprints/pkg/pagination"
	"github.com/eliezyer/ember-osf-preprints/pkg/query"
)

// Query parameter names mirrored in the URL.
const (
	ParamPage     = "page"
	ParamQ        = "q"
	ParamProvider = "provider"
	ParamSubject  = "subject"
)

// maxQueryLength bounds the free-text search query.
const maxQueryLength = 512

// ActiveFilters are the filters currently applied to the search.
type ActiveFilters struct {
	Providers []string `json:"providers"`
	Subjects  []string `json:"subjects"`
}

// State is the URL-reflected state of the discovery page.
type State struct {
	Page          int           `json:"page"`
	Q             string        `json:"q"`
	Provider      string        `json:"provider"`
	Subject       string        `json:"subject"`
	ActiveFilters ActiveFilters `json:"activeFilters"`
}

// NewState returns the default state.
func NewState() State {
	return State{
		Page:          pagination.DefaultPage,
		ActiveFilters: ActiveFilters{Providers: []string{}, Subjects: []string{}},
	}
}

// StateFromQuery reads the state from URL query values.
//
// Active filters are seeded from the comma-separated provider and subject
// parameters. A page that is not an integer ≥ 1, or an overlong query, is a
// validation error.
func StateFromQuery(values url.Values) (State, error) {
	rawPage := values.Get(ParamPage)

	check := new(validate.Validator).
		PositiveInt(ParamPage, rawPage).
		MaxLen(ParamQ, values.Get(ParamQ), maxQueryLength)
	if check.HasErrors() {
		return State{}, check.Err()
	}

	state := NewState()
	state.Page = convert.ToIntD(rawPage, pagination.DefaultPage)
	state.Q = values.Get(ParamQ)
	state.Provider = values.Get(ParamProvider)
	state.Subject = values.Get(ParamSubject)

	if providers := query.StringSlice(state.Provider); providers != nil {
		state.ActiveFilters.Providers = providers
	}
	if subjects := query.StringSlice(state.Subject); subjects != nil {
		state.ActiveFilters.Subjects = subjects
	}

	return state, nil
}

// Query encodes the state as URL query values, omitting defaults.
func (s *State) Query() url.Values {
	values := url.Values{}
	if s.Page != pagination.DefaultPage && s.Page > 0 {
		values.Set(ParamPage, strconv.Itoa(s.Page))
	}
	if s.Q != "" {
		values.Set(ParamQ, s.Q)
	}
	if s.Provider != "" {
		values.Set(ParamProvider, s.Provider)
	}
	if s.Subject != "" {
		values.Set(ParamSubject, s.Subject)
	}
	return values
}

// ClearFilters empties the active filters and the provider and subject parameters.
func (s *State) ClearFilters() {
	s.ActiveFilters = ActiveFilters{Providers: []string{}, Subjects: []string{}}
	s.Provider = ""
	s.Subject = ""
}

// ClearQuery empties the search text.
func (s *State) ClearQuery() {
	s.Q = ""
}

// SearchQuery composes the parameters the search component sends to the backend:
// the text query and page, active filters renamed through [FilterMap], and locked params.
func (c *Controller) SearchQuery(state State) url.Values {
	values := url.Values{}
	if state.Q != "" {
		values.Set(ParamQ, state.Q)
	}
	values.Set(ParamPage, strconv.Itoa(max(state.Page, pagination.DefaultPage)))

	filters := map[string][]string{
		"providers": state.ActiveFilters.Providers,
		"subjects":  state.ActiveFilters.Subjects,
	}
	for name, selected := range filters {
		if len(selected) > 0 {
			values.Set(FilterMap[name], query.JoinSlice(selected))
		}
	}

	for key, value := range c.LockedParams() {
		values.Set(key, value)
	}

	return values
}
