// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package osf_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eliezyer/ember-osf-preprints/internal/platform/apperr"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/ctxutil"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/osf"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/sec"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*osf.Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := osf.NewClient(server.URL+"/v2", time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return client, server
}

/*
TestClient_GetResource decodes a resource with both link styles and forwards the viewer token.
*/
func TestClient_GetResource(t *testing.T) {
	var seenAuth, seenPath string

	client, server := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		seenAuth = request.Header.Get("Authorization")
		seenPath = request.URL.Path
		_, _ = io.WriteString(writer, `{
			"data": {
				"id": "abc123", "type": "preprints",
				"attributes": {"abstract": "An abstract"},
				"relationships": {
					"node": {"links": {"related": {"href": "`+"http://"+request.Host+`/v2/nodes/nd001/", "meta": {}}}},
					"provider": {"links": {"related": "`+"http://"+request.Host+`/v2/preprint_providers/osf/"}}
				}
			}
		}`)
	})
	_ = server

	ctx := ctxutil.WithAuthUser(context.Background(), &sec.SessionClaims{UserID: "u1", AccessToken: "viewer-token"})
	resource, err := client.GetResource(ctx, "preprints/abc123/", nil)
	require.NoError(t, err)

	assert.Equal(t, "/v2/preprints/abc123/", seenPath)
	assert.Equal(t, "Bearer viewer-token", seenAuth)
	assert.Equal(t, "abc123", resource.ID)
	assert.Equal(t, "nd001", resource.RelatedID("node"))
	assert.Equal(t, "osf", resource.RelatedID("provider"))
	assert.Empty(t, resource.RelatedID("missing"))

	var attributes struct {
		Abstract string `json:"abstract"`
	}
	require.NoError(t, resource.Decode(&attributes))
	assert.Equal(t, "An abstract", attributes.Abstract)

	assert.Equal(t, "nodes/nd001/", client.Path(resource.RelatedHref("node")))
}

/*
TestClient_StatusMapping maps upstream statuses to application errors.
*/
func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		code   string
	}{
		{http.StatusNotFound, "NOT_FOUND"},
		{http.StatusGone, "NOT_FOUND"},
		{http.StatusForbidden, "FORBIDDEN"},
		{http.StatusInternalServerError, "UPSTREAM_ERROR"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			client, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
				writer.WriteHeader(tt.status)
				_, _ = io.WriteString(writer, `{"errors": [{"detail": "nope"}]}`)
			})

			_, err := client.GetResource(context.Background(), "preprints/doesnotexist/", nil)
			assert.True(t, apperr.HasCode(err, tt.code), "got %v", err)
		})
	}
}

/*
TestClient_GetPage derives pagination metadata from meta and links.
*/
func TestClient_GetPage(t *testing.T) {
	client, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "2", request.URL.Query().Get("page"))
		assert.Equal(t, "users", request.URL.Query().Get("embed"))
		_, _ = io.WriteString(writer, `{
			"data": [{"id": "c3", "type": "contributors"}],
			"links": {"next": null, "prev": "x"},
			"meta": {"total": 3, "per_page": 2}
		}`)
	})

	resources, meta, err := client.GetPage(context.Background(), "nodes/nd001/contributors/", map[string][]string{"embed": {"users"}}, 2)
	require.NoError(t, err)

	require.Len(t, resources, 1)
	assert.Equal(t, "c3", resources[0].ID)
	assert.Equal(t, 2, meta.TotalPages)
	assert.True(t, meta.IsLast())
}

/*
TestClient_CancelledContext surfaces the context error rather than an upstream error.
*/
func TestClient_CancelledContext(t *testing.T) {
	client, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		_, _ = io.WriteString(writer, `{"data": null}`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Get(ctx, "preprints/abc123/", nil)
	assert.ErrorIs(t, err, context.Canceled)
}
