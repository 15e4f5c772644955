// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"net/url"

	"github.com/eliezyer/ember-osf-preprints/internal/core/preprint"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/constants"
)

// SubmitForm is the edit form pre-filled from a preprint and its node.
type SubmitForm struct {
	PreprintID string   `json:"preprint_id"`
	NodeID     string   `json:"node_id"`
	Title      string   `json:"title"`
	Abstract   string   `json:"abstract"`
	DOI        string   `json:"doi"`
	Tags       []string `json:"tags"`
	Subjects   []string `json:"subjects"`
	Action     string   `json:"action"`
}

// NewSubmitForm sets up the edit form for a displayed visit.
func NewSubmitForm(visit *Visit) SubmitForm {
	abstract := visit.Preprint.Abstract
	if abstract == "" {
		abstract = visit.Node.Description
	}

	return SubmitForm{
		PreprintID: visit.Preprint.ID,
		NodeID:     visit.Node.ID,
		Title:      visit.Node.Title,
		Abstract:   abstract,
		DOI:        visit.Preprint.DOI,
		Tags:       append([]string(nil), visit.Node.Tags...),
		Subjects:   visit.Preprint.SubjectLabels(),
		Action:     constants.PreprintsPathPrefix + url.PathEscape(visit.Preprint.ID),
	}
}

// ViewData is the view-mode page model.
type ViewData struct {
	Preprint     *preprint.Preprint
	Node         *preprint.Node
	Contributors []preprint.Contributor
	ActiveFile   string
	CanEdit      bool
	EditURL      string
}

// NewViewData sets up the view-mode page for a displayed visit.
func NewViewData(visit *Visit) ViewData {
	return ViewData{
		Preprint:     visit.Preprint,
		Node:         visit.Node,
		Contributors: visit.Contributors,
		ActiveFile:   visit.Preprint.PrimaryFileID,
		CanEdit:      visit.Node.IsAdmin(),
		EditURL:      constants.PreprintsPathPrefix + url.PathEscape(visit.Preprint.ID) + "?edit",
	}
}
