// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package view_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eliezyer/ember-osf-preprints/internal/platform/apperr"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/headtags"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/i18n"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/view"
)

func newRenderer(t *testing.T) *view.Renderer {
	t.Helper()

	catalog, err := i18n.Default("en")
	require.NoError(t, err)

	renderer, err := view.New(catalog)
	require.NoError(t, err)
	return renderer
}

/*
TestRender_LayoutAfterRenderWork writes meta tags, the canonical rewrite and the MathJax queue.
*/
func TestRender_LayoutAfterRenderWork(t *testing.T) {
	renderer := newRenderer(t)
	recorder := httptest.NewRecorder()

	renderer.Render(recorder, httptest.NewRequest(http.MethodGet, "/preprints/doesnotexist", nil), view.Page{
		Name:          view.PageNotFound,
		Status:        http.StatusNotFound,
		Title:         "Page not found",
		HeadTags:      []headtags.Tag{headtags.Meta("og:title", `Squares & "Cubes"`)},
		CanonicalPath: "/preprints/doesnotexist",
		Typeset:       []string{".abstract", "#preprintTitle"},
		ResetScroll:   true,
	})

	body := recorder.Body.String()
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "text/html; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.Contains(t, body, `<meta property="og:title" content="Squares &amp; &#34;Cubes&#34;">`)
	assert.Contains(t, body, `window.history.replaceState({}, "preprints", "/preprints/doesnotexist");`)
	assert.Contains(t, body, `document.querySelector(".abstract")`)
	assert.Contains(t, body, `document.querySelector("#preprintTitle")`)
	assert.Contains(t, body, "window.scrollTo(0, 0);")
	assert.Contains(t, body, "The preprint you requested could not be found.")
}

func TestRender_NoTypesetWithoutTargets(t *testing.T) {
	renderer := newRenderer(t)
	recorder := httptest.NewRecorder()

	renderer.Render(recorder, httptest.NewRequest(http.MethodGet, "/", nil), view.Page{Name: view.PageForbidden})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "MathJax")
	assert.NotContains(t, recorder.Body.String(), "<meta property")
}

func TestError_PicksPageByStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		text   string
	}{
		{"not found", apperr.NotFound("Preprint"), http.StatusNotFound, "Page not found"},
		{"forbidden", apperr.Forbidden("no"), http.StatusForbidden, "You do not have permission"},
		{"upstream", apperr.Upstream(assert.AnError), http.StatusBadGateway, "temporarily unreachable"},
	}

	renderer := newRenderer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			renderer.Error(recorder, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.status, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.text)
		})
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	renderer := newRenderer(t)
	recorder := httptest.NewRecorder()

	renderer.Render(recorder, httptest.NewRequest(http.MethodGet, "/", nil), view.Page{Name: "missing"})

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
