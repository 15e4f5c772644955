// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package provider

import (
	"context"
	"log/slog"
)

// Service exposes the provider catalogue to the pages.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListProviders(ctx context.Context) ([]Provider, error) {
	providers, err := service.repo.ListProviders(ctx)
	if err != nil {
		service.logger.WarnContext(ctx, "provider_list_failed", slog.Any("error", err))
		return nil, err
	}

	service.logger.DebugContext(ctx, "providers_listed", slog.Int("count", len(providers)))
	return providers, nil
}
