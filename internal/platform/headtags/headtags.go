// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package headtags collects the page metadata rendered into the document <head>.

Pages assemble an ordered list of (property, content) pairs, convert them to
[Tag] records and submit them to a [Service]. The per-request [Document] is the
service the view layer reads back when it writes <meta property content> tags.
*/
package headtags

import (
	"sync"
	"time"
)

// TypeMeta is the only record type emitted today.
const TypeMeta = "meta"

// TimestampLayout is the millisecond-precision UTC layout used for article times.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Attrs are the attributes of a meta element.
type Attrs struct {
	Property string `json:"property"`
	Content  string `json:"content"`
}

// Tag is one structural metadata record.
type Tag struct {
	Type  string `json:"type"`
	Attrs Attrs  `json:"attrs"`
}

// Pair is an assembled (property, content) entry before conversion.
type Pair struct {
	Property string
	Content  string
}

// Service accepts the final tag list of a page visit ("collect and apply")
// and hands it back to the view layer.
type Service interface {
	Collect(tags []Tag)
	Tags() []Tag
	Collected() bool
}

// Factory creates the head-tag service of one page visit.
type Factory func() Service

// NewService is the default [Factory]: an empty [Document].
func NewService() Service {
	return NewDocument()
}

var _ Service = (*Document)(nil)

// Meta builds a meta record.
func Meta(property, content string) Tag {
	return Tag{Type: TypeMeta, Attrs: Attrs{Property: property, Content: content}}
}

// FromPairs converts pairs to meta records, preserving order.
func FromPairs(pairs []Pair) []Tag {
	tags := make([]Tag, len(pairs))
	for i, pair := range pairs {
		tags[i] = Meta(pair.Property, pair.Content)
	}
	return tags
}

// Timestamp formats t with [TimestampLayout] in UTC.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Document is the per-request head-tag service.
type Document struct {
	mu        sync.Mutex
	tags      []Tag
	collected bool
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Collect replaces the document's tags with tags.
func (d *Document) Collect(tags []Tag) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.tags = append([]Tag(nil), tags...)
	d.collected = true
}

// Tags returns a copy of the collected tags.
func (d *Document) Tags() []Tag {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]Tag(nil), d.tags...)
}

// Collected reports whether Collect has been called.
func (d *Document) Collected() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.collected
}
