// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package provider

import (
	"context"

	"github.com/eliezyer/ember-osf-preprints/internal/platform/apperr"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/osf"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/relationship"
	"github.com/eliezyer/ember-osf-preprints/pkg/pagination"
)

const providersPath = "preprint_providers/"

type providerAttributes struct {
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	Domain              string   `json:"domain"`
	AdditionalProviders []string `json:"additional_providers"`
}

// APIRepository lists providers from the upstream API.
type APIRepository struct {
	client *osf.Client
}

func NewAPIRepository(client *osf.Client) *APIRepository {
	return &APIRepository{client: client}
}

// ListProviders walks every page of the provider collection.
func (repository *APIRepository) ListProviders(ctx context.Context) ([]Provider, error) {
	var providers []Provider

	err := relationship.LoadAll[string, Provider](ctx, relationship.SourceFunc[string, Provider](repository.page), providersPath, "providers", &providers)
	if err != nil {
		return nil, err
	}
	return providers, nil
}

func (repository *APIRepository) page(ctx context.Context, path string, _ string, page int) ([]Provider, pagination.Meta, error) {
	resources, meta, err := repository.client.GetPage(ctx, path, nil, page)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	providers := make([]Provider, 0, len(resources))
	for i := range resources {
		var attributes providerAttributes
		if err := resources[i].Decode(&attributes); err != nil {
			return nil, pagination.Meta{}, apperr.Upstream(err)
		}

		providers = append(providers, Provider{
			ID:                  resources[i].ID,
			Name:                attributes.Name,
			Description:         attributes.Description,
			Domain:              attributes.Domain,
			AdditionalProviders: attributes.AdditionalProviders,
		})
	}

	return providers, meta, nil
}
