// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package theme_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eliezyer/ember-osf-preprints/internal/platform/theme"
)

func TestResolver_Resolve(t *testing.T) {
	resolver := theme.NewResolver("osf", map[string]string{"EngrXiv.org": "engrxiv"})

	plain := httptest.NewRequest("GET", "http://localhost:8080/discover", nil)
	assert.Equal(t, theme.Theme{ID: "osf", IsDefault: true}, resolver.Resolve(plain, ""))

	branded := httptest.NewRequest("GET", "http://engrxiv.org:443/discover", nil)
	assert.Equal(t, theme.Theme{ID: "engrxiv"}, resolver.Resolve(branded, ""))

	// Route parameter wins over the host mapping.
	assert.Equal(t, theme.Theme{ID: "psyarxiv"}, resolver.Resolve(branded, "PsyArXiv"))
	assert.Equal(t, "osf", resolver.DefaultID())
}
