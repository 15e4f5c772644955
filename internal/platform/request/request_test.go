// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eliezyer/ember-osf-preprints/internal/platform/ctxutil"
	requestutil "github.com/eliezyer/ember-osf-preprints/internal/platform/request"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/sec"
)

/*
TestFlag covers presence-style query flags.
*/
func TestFlag(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   bool
	}{
		{"absent", "/preprints/abc123", false},
		{"bare", "/preprints/abc123?edit", true},
		{"empty_value", "/preprints/abc123?edit=", true},
		{"true", "/preprints/abc123?edit=true", true},
		{"false", "/preprints/abc123?edit=false", false},
		{"zero", "/preprints/abc123?edit=0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tt.target, nil)
			assert.Equal(t, tt.want, requestutil.Flag(request, "edit"))
		})
	}
}

/*
TestUserID reads the viewer id from the session claims.
*/
func TestUserID(t *testing.T) {
	request := httptest.NewRequest("GET", "/", nil)
	assert.Empty(t, requestutil.UserID(request))

	ctx := ctxutil.WithAuthUser(request.Context(), &sec.SessionClaims{UserID: "u1"})
	assert.Equal(t, "u1", requestutil.UserID(request.WithContext(ctx)))
}
