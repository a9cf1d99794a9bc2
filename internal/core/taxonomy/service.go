// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

package taxonomy

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

func (service *Service) ListTaxonomies(context context.Context) ([]*Taxonomy, error) {
	return service.repo.ListTaxonomies(context)
}

func (service *Service) GetTaxonomy(context context.Context, id int) (*Taxonomy, error) {
	return service.repo.GetTaxonomyByID(context, id)
}
