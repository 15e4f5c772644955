// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and the
query-flag conventions shared by the pages.
*/
package requestutil

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/eliezyer/ember-osf-preprints/internal/platform/ctxutil"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/sec"
)

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Flag reports whether a presence-style query flag is set.

A flag is set when the key is present and its value is not "false" or "0";
"?edit", "?edit=" and "?edit=true" all enable it.
*/
func Flag(request *http.Request, name string) bool {
	values, present := request.URL.Query()[name]
	if !present {
		return false
	}

	value := ""
	if len(values) > 0 {
		value = strings.ToLower(strings.TrimSpace(values[0]))
	}
	return value != "false" && value != "0"
}

/*
Claims extracts the viewer session from the request context.

Returns nil if the viewer is anonymous.
*/
func Claims(request *http.Request) *sec.SessionClaims {
	return ctxutil.GetAuthUser(request.Context())
}

/*
UserID returns the id of the signed-in viewer, or "" when anonymous.
*/
func UserID(request *http.Request) string {
	if claims := Claims(request); claims != nil {
		return claims.UserID
	}
	return ""
}
