// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

package favorite

import (
	"context"
	"log/slog"

	"github.com/rmedina/faunatlas/internal/core/species"
)

// # Service Layer

// Service orchestrates the business logic for user bookmarks.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] with its required repository.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

/*
ListFavorites returns the caller's bookmarked species as catalogue DTOs.

Parameters:
  - context: context.Context
  - userID: string (UUID of the authenticated caller)

Returns:
  - []*species.DTO: Mapped records ordered by bookmark creation time
  - error: Repository failures
*/
func (service *Service) ListFavorites(context context.Context, userID string) ([]*species.DTO, error) {
	entities, err := service.repo.ListForUser(context, userID)
	if err != nil {
		return nil, err
	}

	return species.MapAll(entities), nil
}

/*
AddFavorite bookmarks a species for the caller.

Description: The species must exist and be active. Duplicate bookmarks are
rejected by the database unique constraint, which also resolves concurrent
duplicate requests — exactly one row survives.

Parameters:
  - context: context.Context
  - userID: string (UUID)
  - speciesID: int

Returns:
  - error: apperr.NotFound for an unknown species, apperr.Conflict for a duplicate
*/
func (service *Service) AddFavorite(context context.Context, userID string, speciesID int) error {
	if err := service.repo.Add(context, userID, speciesID); err != nil {
		return err
	}

	service.logger.Info("favorite_added",
		slog.String("user_id", userID),
		slog.Int("species_id", speciesID),
	)

	return nil
}

/*
RemoveFavorite deletes a bookmark.

Parameters:
  - context: context.Context
  - userID: string (UUID)
  - speciesID: int

Returns:
  - error: apperr.NotFound if the bookmark does not exist
*/
func (service *Service) RemoveFavorite(context context.Context, userID string, speciesID int) error {
	if err := service.repo.Remove(context, userID, speciesID); err != nil {
		return err
	}

	service.logger.Info("favorite_removed",
		slog.String("user_id", userID),
		slog.Int("species_id", speciesID),
	)

	return nil
}
