// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package relationship loads every member of a paginated to-many relationship.

The upstream API pages relationships such as a node's contributors; callers
that need the complete list (head-tag author credits, the author list on the
page) use [LoadAll] instead of walking pages themselves.
*/
package relationship

import (
	"context"
	"fmt"

	"github.com/eliezyer/ember-osf-preprints/pkg/pagination"
)

// Source fetches one page of a named relationship of parent.
type Source[P any, T any] interface {
	RelationshipPage(ctx context.Context, parent P, name string, page int) ([]T, pagination.Meta, error)
}

// SourceFunc adapts a function to [Source].
type SourceFunc[P any, T any] func(ctx context.Context, parent P, name string, page int) ([]T, pagination.Meta, error)

// RelationshipPage implements [Source].
func (f SourceFunc[P, T]) RelationshipPage(ctx context.Context, parent P, name string, page int) ([]T, pagination.Meta, error) {
	return f(ctx, parent, name, page)
}

// LoadAll appends every member of parent's relationship to accumulator, in page order.
//
// It stops after the last page, on the first empty page, or after
// [pagination.MaxPages] pages. The context is checked before every page; on
// error the accumulator keeps the members loaded so far.
func LoadAll[P any, T any](ctx context.Context, source Source[P, T], parent P, name string, accumulator *[]T) error {
	for page := pagination.DefaultPage; page <= pagination.MaxPages; page++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		members, meta, err := source.RelationshipPage(ctx, parent, name, page)
		if err != nil {
			return fmt.Errorf("relationship: load %s page %d: %w", name, page, err)
		}

		*accumulator = append(*accumulator, members...)

		if len(members) == 0 || meta.IsLast() {
			return nil
		}
	}

	return fmt.Errorf("relationship: %s exceeds %d pages", name, pagination.MaxPages)
}
