// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eliezyer/ember-osf-preprints/internal/platform/config"
)

/*
TestLoad_Defaults verifies that an empty environment yields a usable config.
*/
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "osf", cfg.ThemeDefault)
	assert.Equal(t, "en", cfg.DefaultLocale)
	assert.Equal(t, "https://api.osf.io/v2/", cfg.OSFAPIURL)
	assert.Equal(t, 10*time.Minute, cfg.ProviderCacheTTL)
	assert.True(t, cfg.IsDevelopment())
}

/*
TestLoad_Overrides checks env parsing of maps, durations and URL normalisation.
*/
func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PUBLIC_URL", "https://preprints.example.org/")
	t.Setenv("OSF_API_URL", "https://api.test.osf.io/v2")
	t.Setenv("THEME_DOMAINS", "engrxiv.org:engrxiv,psyarxiv.com:psyarxiv")
	t.Setenv("OSF_API_TIMEOUT", "3s")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("EXTRA_ORIGINS", " https://a.example , ,https://b.example")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://preprints.example.org", cfg.PublicURL)
	assert.Equal(t, "https://api.test.osf.io/v2/", cfg.OSFAPIURL)
	assert.Equal(t, map[string]string{"engrxiv.org": "engrxiv", "psyarxiv.com": "psyarxiv"}, cfg.ThemeDomains)
	assert.Equal(t, 3*time.Second, cfg.OSFAPITimeout)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())
}
