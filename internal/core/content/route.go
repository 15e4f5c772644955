// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package content serves the preprint detail page.

A page visit runs a fixed pipeline of phases over a per-request [Visit]:

 1. ResolveMode: view or edit, decided before anything is loaded.
 2. LoadModel: fetch the preprint. Failure ends the visit as not found.
 3. ResolveNode: fetch the owning node. Failure ends the visit as not found.
 4. CheckAuthorization: edit mode requires admin permission on the node.
 5. AssembleMetadata: build the Open Graph head tags, load every contributor,
    append the author credits and submit the result to the visit's head-tag
    document.

Rendering and tracking follow in the HTTP handler. A phase that ends the visit
stops the pipeline, so a forbidden or not-found visit never submits head tags.
*/
package content

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/eliezyer/ember-osf-preprints/internal/core/preprint"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/analytics"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/apperr"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/constants"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/ctxutil"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/headtags"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/relationship"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/sec"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/validate"
)

// Outcome is the terminal state of a visit.
type Outcome int

const (
	OutcomeDisplayed Outcome = iota
	OutcomeForbidden
	OutcomeNotFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeForbidden:
		return "forbidden"
	case OutcomeNotFound:
		return "not_found"
	default:
		return "displayed"
	}
}

// Params are the route inputs of one visit.
type Params struct {
	PreprintID string
	Edit       bool

	// RequestURI is the path and query the viewer requested; it becomes og:url.
	RequestURI string
}

// Visit is the private state of one page visit.
type Visit struct {
	Params   Params
	EditMode bool
	Outcome  Outcome

	// CanonicalPath is the visible URL to restore on a not-found outcome.
	CanonicalPath string

	Preprint     *preprint.Preprint
	Node         *preprint.Node
	Contributors []preprint.Contributor

	// HeadTags is the assembled record list; HeadTagService received it when non-empty.
	HeadTags       []headtags.Tag
	HeadTagService headtags.Service
}

// Options are the deployment settings of the route.
type Options struct {
	FacebookAppID string
	PublicURL     string
}

// Phase is one step of the visit pipeline. It returns false to end the visit.
type Phase func(ctx context.Context, visit *Visit) bool

// Route runs content page visits.
type Route struct {
	repo        preprint.Repository
	required    sec.Permission
	newHeadTags headtags.Factory
	tracker     analytics.Tracker
	options     Options
	logger      *slog.Logger
}

// NewRoute builds a route.
//
// # Parameters
//   - repo: preprint, node and contributor lookups.
//   - required: the node permission an edit-mode visit needs.
//   - newHeadTags: creates each visit's head-tag service; nil means [headtags.NewService].
//   - tracker: analytics sink, may be nil.
//   - options: deployment settings; a trailing slash on PublicURL is dropped.
//   - logger: fallback when the request carries no logger.
func NewRoute(repo preprint.Repository, required sec.Permission, newHeadTags headtags.Factory, tracker analytics.Tracker, options Options, logger *slog.Logger) *Route {
	if newHeadTags == nil {
		newHeadTags = headtags.NewService
	}
	options.PublicURL = strings.TrimRight(options.PublicURL, "/")

	return &Route{
		repo:        repo,
		required:    required,
		newHeadTags: newHeadTags,
		tracker:     tracker,
		options:     options,
		logger:      logger,
	}
}

// Phases returns the pipeline in execution order.
func (route *Route) Phases() []Phase {
	return []Phase{
		route.ResolveMode,
		route.LoadModel,
		route.ResolveNode,
		route.CheckAuthorization,
		route.AssembleMetadata,
	}
}

// Visit runs every phase for params and returns the finished visit.
func (route *Route) Visit(ctx context.Context, params Params) *Visit {
	visit := &Visit{
		Params:         params,
		Outcome:        OutcomeDisplayed,
		HeadTagService: route.newHeadTags(),
	}

	for _, phase := range route.Phases() {
		if !phase(ctx, visit) {
			break
		}
	}

	return visit
}

// ResolveMode marks edit mode from the edit flag.
func (route *Route) ResolveMode(ctx context.Context, visit *Visit) bool {
	visit.EditMode = visit.Params.Edit
	return true
}

// LoadModel fetches the preprint; any failure ends the visit as not found.
func (route *Route) LoadModel(ctx context.Context, visit *Visit) bool {
	id := visit.Params.PreprintID
	logger := route.loggerFor(ctx).With(slog.String("preprint_id", id))

	err := new(validate.Validator).Required("preprint_id", id).Identifier("preprint_id", id).Err()
	if err == nil {
		visit.Preprint, err = route.repo.FindPreprint(ctx, id)
	}
	if err != nil {
		route.notFound(ctx, logger, visit, err)
		return false
	}
	return true
}

// ResolveNode fetches the node that owns the preprint.
func (route *Route) ResolveNode(ctx context.Context, visit *Visit) bool {
	node, err := route.repo.FindNode(ctx, visit.Preprint.NodeID)
	if err != nil {
		logger := route.loggerFor(ctx).With(
			slog.String("preprint_id", visit.Preprint.ID),
			slog.String("node_id", visit.Preprint.NodeID),
		)
		route.notFound(ctx, logger, visit, err)
		return false
	}

	visit.Node = node
	return true
}

// CheckAuthorization ends an edit-mode visit as forbidden unless the viewer administers the node.
func (route *Route) CheckAuthorization(ctx context.Context, visit *Visit) bool {
	if !visit.EditMode || visit.Node.CurrentUserPermissions.Has(route.required) {
		return true
	}

	route.loggerFor(ctx).InfoContext(ctx, "preprint_edit_forbidden",
		slog.String("preprint_id", visit.Preprint.ID),
		slog.String("node_id", visit.Node.ID),
	)
	visit.Outcome = OutcomeForbidden
	return false
}

// AssembleMetadata builds the head tags and submits them to the visit's head-tag service.
//
// When the contributor list cannot be loaded completely (upstream error or
// cancelled request) nothing is submitted and the page renders without head tags.
func (route *Route) AssembleMetadata(ctx context.Context, visit *Visit) bool {
	logger := route.loggerFor(ctx).With(slog.String("preprint_id", visit.Preprint.ID))

	pairs := articlePairs(route.options, visit)

	var contributors []preprint.Contributor
	err := relationship.LoadAll[*preprint.Node, preprint.Contributor](ctx, route.repo, visit.Node, preprint.RelationContributors, &contributors)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			logger.DebugContext(ctx, "visit_abandoned", slog.Any("error", err))
		} else {
			logger.WarnContext(ctx, "contributors_load_failed", slog.Any("error", err))
		}
		return true
	}

	visit.Contributors = contributors
	pairs = append(pairs, authorPairs(contributors)...)

	visit.HeadTags = headtags.FromPairs(pairs)
	visit.HeadTagService.Collect(visit.HeadTags)

	logger.DebugContext(ctx, "head_tags_collected", slog.Int("count", len(visit.HeadTags)))
	return true
}

// Track records the visit as a page event.
func (route *Route) Track(ctx context.Context, visit *Visit, userID, locale string) {
	action := "view"
	if visit.EditMode {
		action = "edit"
	}
	if visit.Outcome != OutcomeDisplayed {
		action = visit.Outcome.String()
	}

	event := analytics.Event{
		Category:   analytics.CategoryPage,
		Action:     action,
		Label:      visit.Params.PreprintID,
		Path:       constants.PreprintsPathPrefix + visit.Params.PreprintID,
		PreprintID: visit.Params.PreprintID,
		UserID:     userID,
		Locale:     locale,
	}
	if visit.Preprint != nil {
		event.ThemeID = visit.Preprint.ProviderID
	}

	analytics.Record(ctx, route.tracker, event)
}

func (route *Route) notFound(ctx context.Context, logger *slog.Logger, visit *Visit, err error) {
	if apperr.HasCode(err, "NOT_FOUND") || apperr.HasCode(err, "VALIDATION_ERROR") {
		logger.InfoContext(ctx, "preprint_not_found")
	} else {
		logger.WarnContext(ctx, "preprint_load_failed", slog.Any("error", err))
	}

	visit.Outcome = OutcomeNotFound
	visit.CanonicalPath = constants.PreprintsPathPrefix + visit.Params.PreprintID
}

// loggerFor prefers the request-scoped logger.
func (route *Route) loggerFor(ctx context.Context) *slog.Logger {
	if ctxutil.HasLogger(ctx) || route.logger == nil {
		return ctxutil.GetLogger(ctx)
	}
	return route.logger
}
