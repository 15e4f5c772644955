// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eliezyer/ember-osf-preprints/internal/platform/ctxutil"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/i18n"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/middleware"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/sec"
)

// viewerRecorder captures the viewer seen by the downstream handler.
type viewerRecorder struct {
	called bool
	userID string
}

func (v *viewerRecorder) handler() http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		v.called = true
		if claims := ctxutil.GetAuthUser(request.Context()); claims != nil {
			v.userID = claims.UserID
		}
	})
}

func newTokens(t *testing.T) (*sec.TokenService, string) {
	t.Helper()

	tokens, err := sec.NewTokenService("test-secret", "preprints")
	require.NoError(t, err)

	token, err := tokens.IssueSession("u1", "ada", "osf-token", time.Hour)
	require.NoError(t, err)

	return tokens, token
}

/*
TestAuthenticate covers the bearer header, the session cookie and the anonymous path.
*/
func TestAuthenticate(t *testing.T) {
	tokens, token := newTokens(t)

	tests := []struct {
		name     string
		verifier middleware.TokenVerifier
		prepare  func(request *http.Request)
		status   int
		userID   string
	}{
		{
			name:     "no_verifier_is_anonymous",
			verifier: nil,
			prepare:  func(request *http.Request) { request.Header.Set("Authorization", "Bearer "+token) },
			status:   http.StatusOK,
		},
		{
			name:     "anonymous",
			verifier: tokens,
			prepare:  func(request *http.Request) {},
			status:   http.StatusOK,
		},
		{
			name:     "valid_bearer",
			verifier: tokens,
			prepare:  func(request *http.Request) { request.Header.Set("Authorization", "Bearer "+token) },
			status:   http.StatusOK,
			userID:   "u1",
		},
		{
			name:     "malformed_bearer",
			verifier: tokens,
			prepare:  func(request *http.Request) { request.Header.Set("Authorization", token) },
			status:   http.StatusUnauthorized,
		},
		{
			name:     "invalid_bearer",
			verifier: tokens,
			prepare:  func(request *http.Request) { request.Header.Set("Authorization", "Bearer nope") },
			status:   http.StatusUnauthorized,
		},
		{
			name:     "valid_cookie",
			verifier: tokens,
			prepare: func(request *http.Request) {
				request.AddCookie(&http.Cookie{Name: "preprints_session", Value: token})
			},
			status: http.StatusOK,
			userID: "u1",
		},
		{
			name:     "stale_cookie_is_ignored",
			verifier: tokens,
			prepare: func(request *http.Request) {
				request.AddCookie(&http.Cookie{Name: "preprints_session", Value: "stale"})
			},
			status: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viewer := &viewerRecorder{}
			request := httptest.NewRequest(http.MethodGet, "/preprints/abc123", nil)
			tt.prepare(request)

			recorder := serve(middleware.Authenticate(tt.verifier)(viewer.handler()), request)

			assert.Equal(t, tt.status, recorder.Code)
			assert.Equal(t, tt.status == http.StatusOK, viewer.called)
			assert.Equal(t, tt.userID, viewer.userID)
		})
	}
}

/*
TestLocale negotiates the viewer's language and exposes it downstream.
*/
func TestLocale(t *testing.T) {
	catalog, err := i18n.Default("en")
	require.NoError(t, err)

	var locale string
	handler := middleware.Locale(catalog)(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		locale = ctxutil.GetLocalizer(request.Context()).Locale()
	}))

	request := httptest.NewRequest(http.MethodGet, "/discover", nil)
	request.Header.Set("Accept-Language", "es-MX,es;q=0.9")
	recorder := serve(handler, request)

	assert.Equal(t, "es", locale)
	assert.Equal(t, "es", recorder.Header().Get("Content-Language"))

	recorder = serve(handler, httptest.NewRequest(http.MethodGet, "/discover", nil))
	assert.Equal(t, "en", locale)
	assert.Equal(t, "en", recorder.Header().Get("Content-Language"))
}
