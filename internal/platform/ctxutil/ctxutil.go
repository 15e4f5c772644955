// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/eliezyer/ember-osf-preprints/internal/platform/ctxkey"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/i18n"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/sec"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// HasLogger reports whether a request-scoped logger is attached to ctx.
func HasLogger(ctx context.Context) bool {
	_, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	return ok
}

// # Viewer Session

// WithAuthUser returns a new context with the provided session claims attached.
func WithAuthUser(ctx context.Context, user *sec.SessionClaims) context.Context {
	return context.WithValue(ctx, ctxkey.KeyUser, user)
}

// GetAuthUser retrieves the [*sec.SessionClaims] from the [context.Context].
// Returns nil for anonymous viewers.
func GetAuthUser(ctx context.Context) *sec.SessionClaims {
	claims, ok := ctx.Value(ctxkey.KeyUser).(*sec.SessionClaims)
	if !ok {
		return nil
	}
	return claims
}

// GetAccessToken returns the viewer's upstream access token, or "" when anonymous.
func GetAccessToken(ctx context.Context) string {
	if claims := GetAuthUser(ctx); claims != nil {
		return claims.AccessToken
	}
	return ""
}

// # Localization

// WithLocalizer returns a new context with the negotiated localizer attached.
func WithLocalizer(ctx context.Context, localizer *i18n.Localizer) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLocalizer, localizer)
}

// GetLocalizer retrieves the localizer from the context, or nil if none was negotiated.
func GetLocalizer(ctx context.Context) *i18n.Localizer {
	localizer, _ := ctx.Value(ctxkey.KeyLocalizer).(*i18n.Localizer)
	return localizer
}
