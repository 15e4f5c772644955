// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses and encodes list-valued URL query parameters.
package query

import (
	"strings"

	"github.com/eliezyer/ember-osf-preprints/pkg/slice"
)

// StringSlice parses a single comma-separated query string
// into a trimmed slice of strings.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	trimmed := slice.Map(strings.Split(val, ","), strings.TrimSpace)
	return slice.Filter(trimmed, func(v string) bool { return v != "" })
}

// JoinSlice is the inverse of [StringSlice].
func JoinSlice(vals []string) string {
	return strings.Join(vals, ",")
}
