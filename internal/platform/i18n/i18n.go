// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package i18n loads translation catalogues and resolves localized strings.

Catalogues are nested YAML documents (one file per locale, named "<tag>.yaml")
flattened into dotted keys such as "discover.search.heading". A [Localizer] is
negotiated per request from the Accept-Language header with
golang.org/x/text/language and exposes the t(key) lookup used by the pages.
*/
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var embedded embed.FS

// missingPrefix is returned in place of an unknown key so gaps are visible on the page.
const missingPrefix = "Missing translation: "

// Catalog holds the flattened messages of every loaded locale.
type Catalog struct {
	tags     []language.Tag // tags[0] is the default locale
	messages map[language.Tag]map[string]string
	matcher  language.Matcher
}

// Localizer resolves keys for one negotiated locale, falling back to the default.
type Localizer struct {
	tag      language.Tag
	messages map[string]string
	fallback map[string]string
}

// Default loads the catalogues embedded in the binary.
func Default(defaultLocale string) (*Catalog, error) {
	sub, err := fs.Sub(embedded, "locales")
	if err != nil {
		return nil, fmt.Errorf("i18n: open embedded locales: %w", err)
	}
	return Load(sub, defaultLocale)
}

// Load reads every "*.yaml" file at the root of fsys.
//
// The default locale must be among the loaded files.
func Load(fsys fs.FS, defaultLocale string) (*Catalog, error) {
	defaultTag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("i18n: invalid default locale %q: %w", defaultLocale, err)
	}

	files, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("i18n: list catalogues: %w", err)
	}
	sort.Strings(files)

	catalog := &Catalog{messages: make(map[language.Tag]map[string]string)}
	others := make([]language.Tag, 0, len(files))

	for _, file := range files {
		tag, err := language.Parse(strings.TrimSuffix(path.Base(file), ".yaml"))
		if err != nil {
			return nil, fmt.Errorf("i18n: invalid catalogue name %q: %w", file, err)
		}

		raw, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", file, err)
		}

		var tree map[string]any
		if err := yaml.Unmarshal(raw, &tree); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", file, err)
		}

		flat := make(map[string]string)
		flatten("", tree, flat)
		catalog.messages[tag] = flat

		if tag != defaultTag {
			others = append(others, tag)
		}
	}

	if _, ok := catalog.messages[defaultTag]; !ok {
		return nil, fmt.Errorf("i18n: no catalogue for default locale %q", defaultLocale)
	}

	catalog.tags = append([]language.Tag{defaultTag}, others...)
	catalog.matcher = language.NewMatcher(catalog.tags)

	return catalog, nil
}

// Localizer negotiates the best supported locale for the given Accept-Language values.
func (c *Catalog) Localizer(acceptLanguage ...string) *Localizer {
	_, index := language.MatchStrings(c.matcher, acceptLanguage...)
	tag := c.tags[index]

	return &Localizer{
		tag:      tag,
		messages: c.messages[tag],
		fallback: c.messages[c.tags[0]],
	}
}

// Locales lists the supported locales, default first.
func (c *Catalog) Locales() []string {
	locales := make([]string, len(c.tags))
	for i, tag := range c.tags {
		locales[i] = tag.String()
	}
	return locales
}

// T returns the localized text for key.
func (l *Localizer) T(key string) string {
	if message, ok := l.messages[key]; ok {
		return message
	}
	if message, ok := l.fallback[key]; ok {
		return message
	}
	return missingPrefix + key
}

// Locale returns the negotiated BCP-47 tag.
func (l *Localizer) Locale() string {
	return l.tag.String()
}

// flatten walks a decoded YAML tree and writes dotted keys into out.
func flatten(prefix string, node map[string]any, out map[string]string) {
	for key, value := range node {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch typed := value.(type) {
		case map[string]any:
			flatten(fullKey, typed, out)
		case nil:
			out[fullKey] = ""
		default:
			out[fullKey] = fmt.Sprint(typed)
		}
	}
}
