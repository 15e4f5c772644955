// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package osf

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoData is returned when a document carries no primary data.
var ErrNoData = errors.New("osf: document has no data")

// Document is a JSON:API top-level document.
type Document struct {
	Data   json.RawMessage `json:"data"`
	Links  Links           `json:"links"`
	Meta   Meta            `json:"meta"`
	Errors []ErrorObject   `json:"errors,omitempty"`
}

// Links are the top-level pagination links of a list document.
type Links struct {
	Self  string `json:"self"`
	First string `json:"first"`
	Last  string `json:"last"`
	Prev  string `json:"prev"`
	Next  string `json:"next"`
}

// Meta is the top-level meta object of a list document.
type Meta struct {
	Total   int `json:"total"`
	PerPage int `json:"per_page"`
}

// ErrorObject is a JSON:API error entry.
type ErrorObject struct {
	Status string `json:"status,omitempty"`
	Detail string `json:"detail"`
}

// Identifier is a resource linkage ({type, id}).
type Identifier struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// Resource is one JSON:API resource object.
type Resource struct {
	ID            string                  `json:"id"`
	Type          string                  `json:"type"`
	Attributes    json.RawMessage         `json:"attributes"`
	Relationships map[string]Relationship `json:"relationships,omitempty"`
	Embeds        map[string]Embed        `json:"embeds,omitempty"`
}

// Relationship is a named relationship of a resource.
type Relationship struct {
	Links RelationshipLinks `json:"links"`
	Data  *Identifier       `json:"data,omitempty"`
}

// RelationshipLinks holds the related-resource link of a relationship.
type RelationshipLinks struct {
	Related Link `json:"related"`
}

// Link accepts both the string form and the {"href": ...} object form.
type Link struct {
	Href string
}

// UnmarshalJSON implements [json.Unmarshaler].
func (l *Link) UnmarshalJSON(raw []byte) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	if raw[0] == '"' {
		return json.Unmarshal(raw, &l.Href)
	}

	var object struct {
		Href string `json:"href"`
	}
	if err := json.Unmarshal(raw, &object); err != nil {
		return fmt.Errorf("osf: decode link: %w", err)
	}
	l.Href = object.Href
	return nil
}

// Embed is a sideloaded related resource (?embed=<name>).
type Embed struct {
	Data   *Resource     `json:"data"`
	Errors []ErrorObject `json:"errors,omitempty"`
}

// One decodes the primary data as a single resource.
func (d *Document) One() (*Resource, error) {
	if len(d.Data) == 0 || string(d.Data) == "null" {
		return nil, ErrNoData
	}

	var resource Resource
	if err := json.Unmarshal(d.Data, &resource); err != nil {
		return nil, fmt.Errorf("osf: decode resource: %w", err)
	}
	return &resource, nil
}

// Many decodes the primary data as a resource collection.
func (d *Document) Many() ([]Resource, error) {
	if len(d.Data) == 0 || string(d.Data) == "null" {
		return nil, nil
	}

	var resources []Resource
	if err := json.Unmarshal(d.Data, &resources); err != nil {
		return nil, fmt.Errorf("osf: decode collection: %w", err)
	}
	return resources, nil
}

// Decode unmarshals the resource attributes into target.
func (r *Resource) Decode(target any) error {
	if len(r.Attributes) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Attributes, target); err != nil {
		return fmt.Errorf("osf: decode %s attributes: %w", r.Type, err)
	}
	return nil
}

// RelatedHref returns the related link of a relationship, or "".
func (r *Resource) RelatedHref(name string) string {
	relationship, ok := r.Relationships[name]
	if !ok {
		return ""
	}
	return relationship.Links.Related.Href
}

// RelatedID returns the id of a to-one relationship.
//
// It prefers the resource linkage and falls back to the last path segment of
// the related link ("…/nodes/abc12/" → "abc12").
func (r *Resource) RelatedID(name string) string {
	relationship, ok := r.Relationships[name]
	if !ok {
		return ""
	}
	if relationship.Data != nil && relationship.Data.ID != "" {
		return relationship.Data.ID
	}

	segments := strings.Split(strings.TrimRight(relationship.Links.Related.Href, "/"), "/")
	if len(segments) == 0 {
		return ""
	}
	return segments[len(segments)-1]
}

// Embedded returns the embedded resource for name, or nil.
func (r *Resource) Embedded(name string) *Resource {
	embed, ok := r.Embeds[name]
	if !ok {
		return nil
	}
	return embed.Data
}
