// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package preprint

import (
	"context"
	"fmt"
	"net/url"

	"github.com/eliezyer/ember-osf-preprints/internal/platform/apperr"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/osf"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/sec"
	"github.com/eliezyer/ember-osf-preprints/pkg/convert"
	"github.com/eliezyer/ember-osf-preprints/pkg/pagination"
	"github.com/eliezyer/ember-osf-preprints/pkg/slice"
)

type preprintAttributes struct {
	DateCreated  string      `json:"date_created"`
	DateModified string      `json:"date_modified"`
	Abstract     string      `json:"abstract"`
	DOI          string      `json:"doi"`
	Subjects     [][]Subject `json:"subjects"`
}

type nodeAttributes struct {
	Title                  string   `json:"title"`
	Description            string   `json:"description"`
	DateModified           string   `json:"date_modified"`
	Tags                   []string `json:"tags"`
	CurrentUserPermissions []string `json:"current_user_permissions"`
	Public                 bool     `json:"public"`
}

type contributorAttributes struct {
	Index         int  `json:"index"`
	Bibliographic bool `json:"bibliographic"`
}

type userAttributes struct {
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	FullName   string `json:"full_name"`
}

// APIRepository reads the content model from the upstream API.
type APIRepository struct {
	client *osf.Client
}

// NewAPIRepository creates an upstream-backed [Repository].
func NewAPIRepository(client *osf.Client) *APIRepository {
	return &APIRepository{client: client}
}

// FindPreprint implements [Repository].
func (repository *APIRepository) FindPreprint(ctx context.Context, id string) (*Preprint, error) {
	resource, err := repository.client.GetResource(ctx, "preprints/"+url.PathEscape(id)+"/", nil)
	if err != nil {
		return nil, err
	}

	var attributes preprintAttributes
	if err := resource.Decode(&attributes); err != nil {
		return nil, apperr.Upstream(err)
	}

	nodeID := resource.RelatedID("node")
	if nodeID == "" {
		return nil, apperr.Upstream(fmt.Errorf("preprint %s has no node relationship", resource.ID))
	}

	return &Preprint{
		ID:            resource.ID,
		DateCreated:   convert.ToTime(attributes.DateCreated),
		DateModified:  convert.ToTime(attributes.DateModified),
		Abstract:      attributes.Abstract,
		DOI:           attributes.DOI,
		Subjects:      attributes.Subjects,
		NodeID:        nodeID,
		PrimaryFileID: resource.RelatedID("primary_file"),
		ProviderID:    resource.RelatedID("provider"),
	}, nil
}

// FindNode implements [Repository].
func (repository *APIRepository) FindNode(ctx context.Context, id string) (*Node, error) {
	resource, err := repository.client.GetResource(ctx, "nodes/"+url.PathEscape(id)+"/", nil)
	if err != nil {
		return nil, err
	}

	var attributes nodeAttributes
	if err := resource.Decode(&attributes); err != nil {
		return nil, apperr.Upstream(err)
	}

	contributorsPath := "nodes/" + url.PathEscape(resource.ID) + "/contributors/"
	if href := resource.RelatedHref(RelationContributors); href != "" {
		contributorsPath = repository.client.Path(href)
	}

	return &Node{
		ID:                     resource.ID,
		Title:                  attributes.Title,
		Description:            attributes.Description,
		DateModified:           convert.ToTime(attributes.DateModified),
		Tags:                   attributes.Tags,
		CurrentUserPermissions: slice.Map(attributes.CurrentUserPermissions, func(p string) sec.Permission { return sec.Permission(p) }),
		Public:                 attributes.Public,
		ContributorsPath:       contributorsPath,
	}, nil
}

// RelationshipPage implements [Repository]. Only the contributors relationship is supported.
func (repository *APIRepository) RelationshipPage(ctx context.Context, node *Node, name string, page int) ([]Contributor, pagination.Meta, error) {
	if name != RelationContributors {
		return nil, pagination.Meta{}, apperr.Internal(fmt.Errorf("preprint: unsupported node relationship %q", name))
	}

	resources, meta, err := repository.client.GetPage(ctx, node.ContributorsPath, url.Values{"embed": {"users"}}, page)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	contributors := make([]Contributor, 0, len(resources))
	for i := range resources {
		contributor, err := toContributor(&resources[i])
		if err != nil {
			return nil, pagination.Meta{}, apperr.Upstream(err)
		}
		contributors = append(contributors, contributor)
	}

	return contributors, meta, nil
}

func toContributor(resource *osf.Resource) (Contributor, error) {
	var attributes contributorAttributes
	if err := resource.Decode(&attributes); err != nil {
		return Contributor{}, err
	}

	contributor := Contributor{
		ID:            resource.ID,
		Index:         attributes.Index,
		Bibliographic: attributes.Bibliographic,
	}

	if user := resource.Embedded("users"); user != nil {
		var userAttrs userAttributes
		if err := user.Decode(&userAttrs); err != nil {
			return Contributor{}, err
		}
		contributor.Users = User{
			ID:         user.ID,
			GivenName:  userAttrs.GivenName,
			FamilyName: userAttrs.FamilyName,
			FullName:   userAttrs.FullName,
		}
	}

	return contributor, nil
}
