// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package analytics

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const insertEventQuery = `
	INSERT INTO analytics.event
		(category, action, label, path, theme_id, preprint_id, user_id, locale, occurred_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

// PostgresTracker stores events in the analytics.event table.
type PostgresTracker struct {
	db *pgxpool.Pool
}

// NewPostgresTracker creates a Postgres-backed [Tracker].
func NewPostgresTracker(db *pgxpool.Pool) *PostgresTracker {
	return &PostgresTracker{db: db}
}

// Track implements [Tracker].
func (tracker *PostgresTracker) Track(ctx context.Context, event Event) error {
	_, err := tracker.db.Exec(ctx, insertEventQuery,
		event.Category, event.Action, event.Label, event.Path,
		event.ThemeID, event.PreprintID, event.UserID, event.Locale, event.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("analytics: insert event: %w", err)
	}
	return nil
}
