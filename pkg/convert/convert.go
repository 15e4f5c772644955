// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides quick type-conversion utilities.

It wraps [strconv] to provide fault-tolerant conversions for query parameters
that have already been validated or that carry a sensible default.

Do not use this package if distinguishing between malformed data and zero values
is important in your domain logic; use explicit standard libraries instead.
*/
package convert

import (
	"strconv"
	"time"
)

// ToIntD converts a string to an int, returning the provided default if parsing fails or string is empty.
func ToIntD(str string, def int) int {
	if str == "" {
		return def
	}

	if v, err := strconv.Atoi(str); err == nil {
		return v
	}

	return def
}

// ToTime parses an RFC 3339 timestamp (with or without fractional seconds).
// It returns the zero time on empty input or parse error.
func ToTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}

	if v, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return v
	}

	// The upstream API omits the zone designator on some timestamps.
	if v, err := time.Parse("2006-01-02T15:04:05.999999", s); err == nil {
		return v.UTC()
	}

	return time.Time{}
}
