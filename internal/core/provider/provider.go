// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package provider

// Provider is a preprint service (OSF Preprints, a branded community archive, ...).
type Provider struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Domain      string `json:"domain,omitempty"`

	// AdditionalProviders names the external repositories an aggregating provider searches.
	AdditionalProviders []string `json:"additional_providers"`
}
