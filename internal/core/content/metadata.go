// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"github.com/eliezyer/ember-osf-preprints/internal/core/preprint"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/constants"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/headtags"
	"github.com/eliezyer/ember-osf-preprints/pkg/slice"
)

// articlePairs returns the fixed Open Graph entries followed by one article:tag per
// distinct label: subject labels flattened in block order, then node tags.
func articlePairs(options Options, visit *Visit) []headtags.Pair {
	node, found := visit.Node, visit.Preprint

	pageURL := visit.Params.RequestURI
	if pageURL == "" {
		pageURL = constants.PreprintsPathPrefix + found.ID
	}

	pairs := []headtags.Pair{
		{Property: "fb:app_id", Content: options.FacebookAppID},
		{Property: "og:title", Content: node.Title},
		{Property: "og:image", Content: constants.OGImage},
		{Property: "og:image:type", Content: constants.OGImageType},
		{Property: "og:url", Content: options.PublicURL + pageURL},
		{Property: "og:description", Content: node.Description},
		{Property: "og:site_name", Content: constants.OGSiteName},
		{Property: "og:type", Content: constants.OGTypeArticle},
		{Property: "article:published_time", Content: headtags.Timestamp(found.DateCreated)},
		{Property: "article:modified_time", Content: headtags.Timestamp(node.DateModified)},
	}

	labels := append(found.SubjectLabels(), node.Tags...)
	for _, label := range slice.Unique(labels) {
		pairs = append(pairs, headtags.Pair{Property: "article:tag", Content: label})
	}

	return pairs
}

// authorPairs returns one author credit group per contributor, in contributor order.
func authorPairs(contributors []preprint.Contributor) []headtags.Pair {
	pairs := make([]headtags.Pair, 0, 3*len(contributors))
	for _, contributor := range contributors {
		pairs = append(pairs,
			headtags.Pair{Property: "og:type", Content: constants.OGTypeAuthor},
			headtags.Pair{Property: "profile:first_name", Content: contributor.Users.GivenName},
			headtags.Pair{Property: "profile:last_name", Content: contributor.Users.FamilyName},
		)
	}
	return pairs
}
