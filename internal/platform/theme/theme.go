// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package theme resolves the active branding context of a request.

A theme id names a preprint provider ("osf", "engrxiv", ...). It is taken from
the route ("/preprints/{themeID}/discover"), then from a configured host
mapping (branded domains), and finally from the configured default.
*/
package theme

import (
	"net"
	"net/http"
	"strings"
)

// Theme is the active branding context.
type Theme struct {
	ID string `json:"id"`

	// IsDefault is true when no route or domain selected a provider branding.
	IsDefault bool `json:"is_default"`
}

// Resolver picks the theme of a request.
type Resolver struct {
	defaultID string
	domains   map[string]string
}

// NewResolver builds a resolver from the default theme id and host → theme id overrides.
func NewResolver(defaultID string, domains map[string]string) *Resolver {
	normalized := make(map[string]string, len(domains))
	for host, id := range domains {
		normalized[strings.ToLower(host)] = id
	}
	return &Resolver{defaultID: defaultID, domains: normalized}
}

// Resolve returns the theme for request; routeID is the {themeID} path parameter, if any.
func (r *Resolver) Resolve(request *http.Request, routeID string) Theme {
	if routeID != "" {
		id := strings.ToLower(routeID)
		return Theme{ID: id, IsDefault: id == r.defaultID}
	}

	host := request.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	if id, ok := r.domains[strings.ToLower(host)]; ok {
		return Theme{ID: id, IsDefault: id == r.defaultID}
	}

	return Theme{ID: r.defaultID, IsDefault: true}
}

// DefaultID returns the configured default theme id.
func (r *Resolver) DefaultID() string {
	return r.defaultID
}
