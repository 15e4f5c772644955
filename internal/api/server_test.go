// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eliezyer/ember-osf-preprints/internal/api"
	"github.com/eliezyer/ember-osf-preprints/internal/core/content"
	"github.com/eliezyer/ember-osf-preprints/internal/core/discover"
	"github.com/eliezyer/ember-osf-preprints/internal/core/preprint"
	"github.com/eliezyer/ember-osf-preprints/internal/core/provider"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/apperr"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/config"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/headtags"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/i18n"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/sec"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/theme"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/view"
	"github.com/eliezyer/ember-osf-preprints/pkg/pagination"
)

type noProviders struct{}

func (noProviders) ListProviders(ctx context.Context) ([]provider.Provider, error) {
	return nil, nil
}

// emptyStore knows no preprints.
type emptyStore struct{}

func (emptyStore) FindPreprint(ctx context.Context, id string) (*preprint.Preprint, error) {
	return nil, apperr.NotFound("Resource")
}

func (emptyStore) FindNode(ctx context.Context, id string) (*preprint.Node, error) {
	return nil, apperr.NotFound("Resource")
}

func (emptyStore) RelationshipPage(ctx context.Context, node *preprint.Node, name string, page int) ([]preprint.Contributor, pagination.Meta, error) {
	return nil, pagination.Meta{}, nil
}

func newServer(t *testing.T) http.Handler {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{ServerPort: "0", Environment: "test", ThemeDefault: "osf"}

	catalog, err := i18n.Default("en")
	require.NoError(t, err)
	renderer, err := view.New(catalog)
	require.NoError(t, err)

	tokens, err := sec.NewTokenService("test-secret", "preprints")
	require.NoError(t, err)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{}, logger)
	server := api.NewServer(ctx, cfg, logger, tokens, catalog, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Discover:  discover.NewHandler(provider.NewService(noProviders{}, logger), theme.NewResolver("osf", nil), renderer, nil),
		Content:   content.NewHandler(content.NewRoute(emptyStore{}, sec.PermissionAdmin, headtags.NewService, nil, content.Options{}, logger), renderer),
	})

	return server.Handler()
}

func TestServer_Routes(t *testing.T) {
	handler := newServer(t)

	tests := []struct {
		target string
		status int
	}{
		{"/health", http.StatusOK},
		{"/ready", http.StatusOK},
		{"/discover", http.StatusOK},
		{"/preprints/engrxiv/discover", http.StatusOK},
		{"/api/v1/discover", http.StatusOK},
		{"/preprints/abc123", http.StatusNotFound},
		{"/api/v1/preprints/abc123/head-tags", http.StatusNotFound},
		{"/nowhere", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.status, recorder.Code)
			assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
		})
	}
}

func TestServer_LocaleNegotiation(t *testing.T) {
	handler := newServer(t)

	request := httptest.NewRequest(http.MethodGet, "/discover", nil)
	request.Header.Set("Accept-Language", "es-MX, en;q=0.5")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Content-Language"), "es")
}

func TestServer_BadBearerToken(t *testing.T) {
	handler := newServer(t)

	request := httptest.NewRequest(http.MethodGet, "/discover", nil)
	request.Header.Set("Authorization", "Bearer not-a-token")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
