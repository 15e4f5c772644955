// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package analytics records page and interaction events.

Pages receive a [Tracker] through their constructors and call [Record] at
fixed points of their lifecycle (after render, after a filter action).
Tracking is best effort: a failing tracker is logged and never changes the
response.
*/
package analytics

import (
	"context"
	"log/slog"
	"time"

	"github.com/eliezyer/ember-osf-preprints/internal/platform/ctxutil"
)

// Event categories.
const (
	CategoryPage   = "page"
	CategoryFilter = "filter"
	CategorySearch = "search"
)

// Event is one analytics record.
type Event struct {
	Category   string
	Action     string
	Label      string
	Path       string
	ThemeID    string
	PreprintID string
	UserID     string
	Locale     string
	OccurredAt time.Time
}

// Tracker persists or forwards events.
type Tracker interface {
	Track(ctx context.Context, event Event) error
}

// Record stamps event and hands it to tracker, logging (not returning) failures.
func Record(ctx context.Context, tracker Tracker, event Event) {
	if tracker == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	if err := tracker.Track(ctx, event); err != nil {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "analytics_event_dropped",
			slog.String("category", event.Category),
			slog.String("action", event.Action),
			slog.Any("error", err),
		)
	}
}

// LogTracker writes events to the structured log. It is used when no database is configured.
type LogTracker struct {
	logger *slog.Logger
}

// NewLogTracker creates a [LogTracker].
func NewLogTracker(logger *slog.Logger) *LogTracker {
	return &LogTracker{logger: logger}
}

// Track implements [Tracker].
func (tracker *LogTracker) Track(ctx context.Context, event Event) error {
	tracker.logger.InfoContext(ctx, "analytics_event",
		slog.String("category", event.Category),
		slog.String("action", event.Action),
		slog.String("label", event.Label),
		slog.String("path", event.Path),
		slog.String("theme_id", event.ThemeID),
		slog.String("preprint_id", event.PreprintID),
		slog.String("user_id", event.UserID),
		slog.String("locale", event.Locale),
	)
	return nil
}
