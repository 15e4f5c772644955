// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package provider

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/eliezyer/ember-osf-preprints/internal/platform/constants"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/ctxutil"
)

const cacheKeyAll = constants.RedisPrefixProviders + "all"

// Cache is the subset of the Redis client used by [CachedRepository].
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// CachedRepository serves the provider list from Redis, refilling it from next on a miss.
//
// Concurrent misses share one upstream load. Redis failures degrade to
// loading from next; they never fail the request.
type CachedRepository struct {
	next  Repository
	cache Cache
	ttl   time.Duration
	group singleflight.Group
}

func NewCachedRepository(next Repository, cache Cache, ttl time.Duration) *CachedRepository {
	return &CachedRepository{next: next, cache: cache, ttl: ttl}
}

// ListProviders implements [Repository].
func (repository *CachedRepository) ListProviders(ctx context.Context) ([]Provider, error) {
	logger := ctxutil.GetLogger(ctx)

	raw, err := repository.cache.Get(ctx, cacheKeyAll).Bytes()
	switch {
	case err == nil:
		var providers []Provider
		decodeErr := json.Unmarshal(raw, &providers)
		if decodeErr == nil {
			return providers, nil
		}
		logger.WarnContext(ctx, "provider_cache_corrupt", slog.Any("error", decodeErr))
	case !errors.Is(err, redis.Nil):
		logger.WarnContext(ctx, "provider_cache_unavailable", slog.Any("error", err))
	}

	// The shared load must outlive the caller that happened to start it.
	result, err, _ := repository.group.Do(cacheKeyAll, func() (any, error) {
		loadCtx := context.WithoutCancel(ctx)

		providers, err := repository.next.ListProviders(loadCtx)
		if err != nil {
			return nil, err
		}

		if encoded, err := json.Marshal(providers); err == nil {
			if err := repository.cache.Set(loadCtx, cacheKeyAll, encoded, repository.ttl).Err(); err != nil {
				logger.WarnContext(ctx, "provider_cache_write_failed", slog.Any("error", err))
			}
		}
		return providers, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]Provider), nil
}
