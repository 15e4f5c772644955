// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/eliezyer/ember-osf-preprints/internal/platform/constants"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/respond"
)

const readinessTimeout = 3 * time.Second

// Check pings one dependency.
type Check func(ctx context.Context) error

// HealthDependencies holds the injectable dependency checkers for the /ready endpoint.
//
// A nil checker means the dependency is not configured and is skipped.
type HealthDependencies struct {
	// CheckDatabase pings the PostgreSQL pool.
	CheckDatabase Check

	// CheckCache pings the Redis client.
	CheckCache Check

	// CheckUpstream pings the upstream API root.
	CheckUpstream Check
}

type checkResult struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

// NewHealthHandlers creates the /health and /ready http.HandlerFuncs.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{dependencies: deps, logger: logger}
	return handler.liveness, handler.readiness
}

// liveness handles GET /health (Liveness probe).
func (handler *healthHandler) liveness(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{
		constants.FieldStatus:  "ok",
		constants.FieldVersion: constants.AppVersion,
	})
}

// readiness handles GET /ready (Readiness probe). Dependencies are pinged in parallel.
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	checks := []struct {
		name  string
		check Check
	}{
		{"postgres", handler.dependencies.CheckDatabase},
		{"redis", handler.dependencies.CheckCache},
		{"upstream", handler.dependencies.CheckUpstream},
	}

	ctx, cancel := context.WithTimeout(request.Context(), readinessTimeout)
	defer cancel()

	results := make([]checkResult, len(checks))
	group, groupCtx := errgroup.WithContext(ctx)

	for i, dependency := range checks {
		results[i] = checkResult{Name: dependency.name, IsOK: true}
		if dependency.check == nil {
			continue
		}

		group.Go(func() error {
			if err := dependency.check(groupCtx); err != nil {
				results[i].IsOK = false
				results[i].Error = err.Error()
				handler.logger.Error("readiness_check_failed", slog.String("dependency", dependency.name), slog.Any("error", err))
			}
			// Keep probing the others; the result table carries the failure.
			return nil
		})
	}
	_ = group.Wait()

	reported := make([]checkResult, 0, len(checks))
	isSystemReady := true
	for i, dependency := range checks {
		if dependency.check == nil {
			continue
		}
		reported = append(reported, results[i])
		isSystemReady = isSystemReady && results[i].IsOK
	}

	responseStatus, httpStatus := "ready", http.StatusOK
	if !isSystemReady {
		responseStatus, httpStatus = "degraded", http.StatusServiceUnavailable
	}

	respond.JSON(writer, httpStatus, map[string]any{
		constants.FieldData: map[string]any{
			constants.FieldStatus: responseStatus,
			constants.FieldChecks: reported,
		},
	})
}
