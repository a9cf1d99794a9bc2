// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

package region

import (
	"context"
	"log/slog"
)

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

func (service *Service) ListRegions(context context.Context) ([]*Region, error) {
	return service.repo.ListRegions(context)
}

func (service *Service) GetRegion(context context.Context, id int) (*Region, error) {
	return service.repo.GetRegionByID(context, id)
}
