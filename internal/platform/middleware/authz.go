// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/eliezyer/ember-osf-preprints/internal/platform/apperr"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/constants"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/ctxutil"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/i18n"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/respond"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify session tokens in middleware.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.SessionClaims, error)
}

// Authenticate resolves the current viewer from the session token.
//
// # Flow
//  1. Read 'Authorization: Bearer <token>', else the session cookie.
//  2. If absent (or verifier is nil), the request proceeds as anonymous.
//  3. A malformed or invalid bearer header is rejected with 401.
//  4. An invalid cookie is ignored: pages stay reachable for a stale session.
//  5. Verified [*sec.SessionClaims] are injected into the request context.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if verifier == nil {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 1. Bearer header ──────────────────────────────────────────────
			if authHeader := request.Header.Get(constants.HeaderAuthorization); authHeader != "" {
				parts := strings.Split(authHeader, " ")
				if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
					respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
					return
				}

				claims, err := verifier.VerifyToken(parts[1])
				if err != nil {
					respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
					return
				}

				next.ServeHTTP(writer, request.WithContext(ctxutil.WithAuthUser(request.Context(), claims)))
				return
			}

			// ── 2. Session cookie ─────────────────────────────────────────────
			cookie, err := request.Cookie(constants.SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(writer, request)
				return
			}

			claims, err := verifier.VerifyToken(cookie.Value)
			if err != nil {
				ctxutil.GetLogger(request.Context()).Debug("session_cookie_rejected", slog.Any("error", err))
				next.ServeHTTP(writer, request)
				return
			}

			next.ServeHTTP(writer, request.WithContext(ctxutil.WithAuthUser(request.Context(), claims)))
		})
	}
}

// Locale negotiates the viewer's locale from Accept-Language and stores the
// resulting [*i18n.Localizer] in the request context.
func Locale(catalog *i18n.Catalog) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			localizer := catalog.Localizer(request.Header.Get(constants.HeaderAcceptLanguage))
			writer.Header().Set("Content-Language", localizer.Locale())
			next.ServeHTTP(writer, request.WithContext(ctxutil.WithLocalizer(request.Context(), localizer)))
		})
	}
}
