// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package preprint_test

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

	"github.com/eliezyer/ember-osf-preprints/internal/core/preprint"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/apperr"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/osf"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/relationship"
)

// newUpstream serves a small JSON:API fixture for preprint abc123.
func newUpstream(t *testing.T) *preprint.APIRepository {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v2/preprints/abc123/", func(writer http.ResponseWriter, request *http.Request) {
		_, _ = io.WriteString(writer, `{"data": {
			"id": "abc123", "type": "preprints",
			"attributes": {
				"date_created": "2016-10-20T18:15:46.423000",
				"date_modified": "2016-10-21T09:00:00.000000",
				"abstract": "We study $x^2$.",
				"subjects": [[{"id": "s1", "text": "A"}, {"id": "s2", "text": "B"}], [{"id": "s3", "text": "C"}]]
			},
			"relationships": {
				"node": {"links": {"related": {"href": "http://`+request.Host+`/v2/nodes/nd001/"}}},
				"primary_file": {"links": {"related": {"href": "http://`+request.Host+`/v2/files/f001/"}}}
			}
		}}`)
	})
	mux.HandleFunc("/v2/nodes/nd001/", func(writer http.ResponseWriter, request *http.Request) {
		_, _ = io.WriteString(writer, `{"data": {
			"id": "nd001", "type": "nodes",
			"attributes": {
				"title": "On Squares", "description": "A study of squares.",
				"date_modified": "2016-10-22T10:30:00.5Z",
				"tags": ["x"], "current_user_permissions": ["read", "write", "admin"], "public": true
			},
			"relationships": {
				"contributors": {"links": {"related": {"href": "http://`+request.Host+`/v2/nodes/nd001/contributors/"}}}
			}
		}}`)
	})
	mux.HandleFunc("/v2/nodes/nd001/contributors/", func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "users", request.URL.Query().Get("embed"))
		if request.URL.Query().Get("page") == "1" {
			_, _ = io.WriteString(writer, `{
				"data": [
					{"id": "nd001-u1", "type": "contributors", "attributes": {"index": 0, "bibliographic": true},
					 "embeds": {"users": {"data": {"id": "u1", "type": "users", "attributes": {"given_name": "Ada", "family_name": "Lovelace", "full_name": "Ada Lovelace"}}}}}
				],
				"links": {"next": "http://`+request.Host+`/v2/nodes/nd001/contributors/?page=2"},
				"meta": {"total": 2, "per_page": 1}
			}`)
			return
		}
		_, _ = io.WriteString(writer, `{
			"data": [
				{"id": "nd001-u2", "type": "contributors", "attributes": {"index": 1, "bibliographic": true},
				 "embeds": {"users": {"data": {"id": "u2", "type": "users", "attributes": {"given_name": "Grace", "family_name": "Hopper", "full_name": "Grace Hopper"}}}}}
			],
			"links": {"next": null},
			"meta": {"total": 2, "per_page": 1}
		}`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := osf.NewClient(server.URL+"/v2/", time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return preprint.NewAPIRepository(client)
}

func TestAPIRepository_FindPreprint(t *testing.T) {
	repository := newUpstream(t)

	found, err := repository.FindPreprint(context.Background(), "abc123")
	require.NoError(t, err)

	assert.Equal(t, "nd001", found.NodeID)
	assert.Equal(t, "f001", found.PrimaryFileID)
	assert.Equal(t, []string{"A", "B", "C"}, found.SubjectLabels())
	assert.Equal(t, time.Date(2016, 10, 20, 18, 15, 46, 423000000, time.UTC), found.DateCreated)
}

func TestAPIRepository_FindPreprint_NotFound(t *testing.T) {
	repository := newUpstream(t)

	_, err := repository.FindPreprint(context.Background(), "doesnotexist")
	assert.True(t, apperr.HasCode(err, "NOT_FOUND"), "got %v", err)
}

func TestAPIRepository_FindNode(t *testing.T) {
	repository := newUpstream(t)

	node, err := repository.FindNode(context.Background(), "nd001")
	require.NoError(t, err)

	assert.Equal(t, "On Squares", node.Title)
	assert.Equal(t, []string{"x"}, node.Tags)
	assert.True(t, node.IsAdmin())
	assert.Equal(t, "nodes/nd001/contributors/", node.ContributorsPath)
}

/*
TestAPIRepository_Contributors walks every contributors page through the relationship loader.
*/
func TestAPIRepository_Contributors(t *testing.T) {
	repository := newUpstream(t)

	node, err := repository.FindNode(context.Background(), "nd001")
	require.NoError(t, err)

	var contributors []preprint.Contributor
	err = relationship.LoadAll[*preprint.Node, preprint.Contributor](context.Background(), repository, node, preprint.RelationContributors, &contributors)
	require.NoError(t, err)

	require.Len(t, contributors, 2)
	assert.Equal(t, "Ada", contributors[0].Users.GivenName)
	assert.Equal(t, "Hopper", contributors[1].Users.FamilyName)
}

func TestAPIRepository_UnsupportedRelationship(t *testing.T) {
	repository := newUpstream(t)

	_, _, err := repository.RelationshipPage(context.Background(), &preprint.Node{ID: "nd001"}, "children", 1)
	assert.True(t, apperr.HasCode(err, "INTERNAL_ERROR"), "got %v", err)
}
