// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package i18n_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eliezyer/ember-osf-preprints/internal/platform/i18n"
)

/*
TestDefault_EmbeddedCatalogues verifies the shipped catalogues load and negotiate.
*/
func TestDefault_EmbeddedCatalogues(t *testing.T) {
	catalog, err := i18n.Default("en")
	require.NoError(t, err)

	assert.Equal(t, "en", catalog.Locales()[0])

	english := catalog.Localizer("en-US,en;q=0.9")
	assert.Equal(t, "Preprint Archive Search", english.T("discover.search.heading"))

	spanish := catalog.Localizer("es-ES,es;q=0.8")
	assert.Equal(t, "Relevancia", spanish.T("discover.relevance"))
}

/*
TestLocalizer_Fallbacks covers unsupported locales, partial catalogues and missing keys.
*/
func TestLocalizer_Fallbacks(t *testing.T) {
	fsys := fstest.MapFS{
		"en.yaml": {Data: []byte("discover:\n  relevance: Relevance\n  main:\n    date: Date\n")},
		"fr.yaml": {Data: []byte("discover:\n  relevance: Pertinence\n")},
	}

	catalog, err := i18n.Load(fsys, "en")
	require.NoError(t, err)

	// Unsupported locale → default
	assert.Equal(t, "Relevance", catalog.Localizer("ja").T("discover.relevance"))
	assert.Equal(t, "Relevance", catalog.Localizer().T("discover.relevance"))

	// Partial catalogue → default for the missing key
	french := catalog.Localizer("fr-CA")
	assert.Equal(t, "Pertinence", french.T("discover.relevance"))
	assert.Equal(t, "Date", french.T("discover.main.date"))

	// Unknown key → visible marker
	assert.Equal(t, "Missing translation: discover.nope", french.T("discover.nope"))
}

/*
TestLoad_RequiresDefaultLocale rejects a catalogue set without the default locale.
*/
func TestLoad_RequiresDefaultLocale(t *testing.T) {
	fsys := fstest.MapFS{"fr.yaml": {Data: []byte("a: b\n")}}

	_, err := i18n.Load(fsys, "en")
	assert.Error(t, err)
}
