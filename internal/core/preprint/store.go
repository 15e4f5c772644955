// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package preprint

import (
	"context"

	"github.com/eliezyer/ember-osf-preprints/pkg/pagination"
)

// RelationContributors is the only to-many node relationship the pages load.
const RelationContributors = "contributors"

// Repository reads preprints, nodes and node relationships.
type Repository interface {
	FindPreprint(ctx context.Context, id string) (*Preprint, error)
	FindNode(ctx context.Context, id string) (*Node, error)

	// RelationshipPage returns one page of a node relationship; it satisfies
	// relationship.Source for *Node parents.
	RelationshipPage(ctx context.Context, node *Node, name string, page int) ([]Contributor, pagination.Meta, error)
}
