// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command web is the entry point for the preprints web front end.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL and run migrations (optional, analytics only).
//  4. Build the upstream API client.
//  5. Connect to Redis (optional, provider cache).
//  6. Enable viewer sessions (optional).
//  7. Load translations and templates.
//  8. Wire page handlers.
//  9. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eliezyer/ember-osf-preprints/internal/api"
	"github.com/eliezyer/ember-osf-preprints/internal/core/content"
	"github.com/eliezyer/ember-osf-preprints/internal/core/discover"
	"github.com/eliezyer/ember-osf-preprints/internal/core/preprint"
	"github.com/eliezyer/ember-osf-preprints/internal/core/provider"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/analytics"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/config"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/constants"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/headtags"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/i18n"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/middleware"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/migration"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/osf"
	pgstore "github.com/eliezyer/ember-osf-preprints/internal/platform/postgres"
	redisstore "github.com/eliezyer/ember-osf-preprints/internal/platform/redis"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/sec"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/theme"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/view"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("upstream", cfg.OSFAPIURL),
	)

	// Root context for the process; cancelled on shutdown to stop background work.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer startupCancel()

	health := api.HealthDependencies{}

	// ── 3. PostgreSQL (analytics) ─────────────────────────────────────────
	var tracker analytics.Tracker = analytics.NewLogTracker(log)
	if cfg.DatabaseURL != "" {
		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing postgres pool")
			pool.Close()
		}()

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		tracker = analytics.NewPostgresTracker(pool)
		health.CheckDatabase = func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		}
	} else {
		log.Info("analytics_to_log", slog.String("reason", "DATABASE_URL not set"))
	}

	// ── 4. Upstream API ───────────────────────────────────────────────────
	client, err := osf.NewClient(cfg.OSFAPIURL, cfg.OSFAPITimeout, log)
	must(log, err, "build upstream client")
	health.CheckUpstream = client.Ping

	// ── 5. Redis (provider cache) ─────────────────────────────────────────
	var providerRepository provider.Repository = provider.NewAPIRepository(client)
	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		providerRepository = provider.NewCachedRepository(providerRepository, rdb, cfg.ProviderCacheTTL)
		health.CheckCache = func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		}
	}

	// ── 6. Viewer Sessions ────────────────────────────────────────────────
	// A nil interface (not a nil *TokenService) keeps every viewer anonymous.
	var verifier middleware.TokenVerifier
	if cfg.SessionSecret != "" {
		tokens, err := sec.NewTokenService(cfg.SessionSecret, constants.SessionIssuer)
		must(log, err, "initialize session tokens")
		verifier = tokens
	} else {
		log.Warn("sessions_disabled", slog.String("reason", "SESSION_SECRET not set"))
	}

	// ── 7. Presentation ───────────────────────────────────────────────────
	catalog, err := i18n.Default(cfg.DefaultLocale)
	must(log, err, "load translations")

	renderer, err := view.New(catalog)
	must(log, err, "parse templates")

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	providerService := provider.NewService(providerRepository, log)
	discoverHandler := discover.NewHandler(providerService, theme.NewResolver(cfg.ThemeDefault, cfg.ThemeDomains), renderer, tracker)

	contentRoute := content.NewRoute(preprint.NewAPIRepository(client), sec.PermissionAdmin, headtags.NewService, tracker, content.Options{
		FacebookAppID: cfg.FacebookAppID,
		PublicURL:     cfg.PublicURL,
	}, log)
	contentHandler := content.NewHandler(contentRoute, renderer)

	liveness, readiness := api.NewHealthHandlers(health, log)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(rootCtx, cfg, log, verifier, catalog, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Discover:  discoverHandler,
		Content:   contentHandler,
	})

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
