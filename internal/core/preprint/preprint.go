// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package preprint holds the content-page model: a preprint, the node that owns
it, and the node's contributors.

Entities are read-only projections of upstream resources. The [Repository]
interface hides where they come from; [APIRepository] reads them from the
upstream JSON:API service.
*/
package preprint

import (
	"time"

	"github.com/eliezyer/ember-osf-preprints/internal/platform/sec"
	"github.com/eliezyer/ember-osf-preprints/pkg/slice"
)

// Subject is one discipline label of a preprint.
type Subject struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Preprint is a scholarly manuscript published through a provider.
type Preprint struct {
	ID            string      `json:"id"`
	DateCreated   time.Time   `json:"date_created"`
	DateModified  time.Time   `json:"date_modified"`
	Abstract      string      `json:"abstract"`
	DOI           string      `json:"doi,omitempty"`
	Subjects      [][]Subject `json:"subjects"`
	NodeID        string      `json:"node_id"`
	PrimaryFileID string      `json:"primary_file_id,omitempty"`
	ProviderID    string      `json:"provider_id,omitempty"`
}

// SubjectLabels returns every subject label, blocks flattened in order.
func (p *Preprint) SubjectLabels() []string {
	return slice.Map(slice.Flatten(p.Subjects), func(subject Subject) string { return subject.Text })
}

// Node is the project that owns a preprint and carries its title, tags and permissions.
type Node struct {
	ID                     string          `json:"id"`
	Title                  string          `json:"title"`
	Description            string          `json:"description"`
	DateModified           time.Time       `json:"date_modified"`
	Tags                   []string        `json:"tags"`
	CurrentUserPermissions sec.Permissions `json:"current_user_permissions"`
	Public                 bool            `json:"public"`

	// ContributorsPath is the upstream path of the contributors relationship.
	ContributorsPath string `json:"-"`
}

// IsAdmin reports whether the current viewer administers the node.
func (n *Node) IsAdmin() bool {
	return n.CurrentUserPermissions.Has(sec.PermissionAdmin)
}

// User is the account behind a contributor.
type User struct {
	ID         string `json:"id"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	FullName   string `json:"full_name"`
}

// Contributor credits a user on a node.
type Contributor struct {
	ID            string `json:"id"`
	Index         int    `json:"index"`
	Bibliographic bool   `json:"bibliographic"`
	Users         User   `json:"users"`
}
