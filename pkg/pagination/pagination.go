// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types for page-numbered lists.
//
// # Overview
//
// The upstream API pages every to-many relationship; [Meta] describes one such
// page so that loaders know when the last page has been reached.
package pagination

const (
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
	// MaxPages bounds how many pages a loader will follow for a single relationship.
	MaxPages = 500
)

// Meta is the pagination metadata of one fetched page.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta constructs pagination metadata for a page.
//
// It automatically calculates the TotalPages based on the total count and limit.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// IsLast reports whether m is the final page.
func (m Meta) IsLast() bool {
	return m.Page >= m.TotalPages
}
