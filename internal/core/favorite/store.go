// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

package favorite

import (
	"context"

	"github.com/rmedina/faunatlas/internal/core/species"
)

// # Favorite Data Access

// Repository defines the data access contract for user bookmarks.
type Repository interface {

	/*
		ListForUser returns the user's bookmarked species, hydrated for DTO
		mapping and ordered by when each favorite was created.

		Parameters:
		  - context: context.Context
		  - userID: string (UUID)

		Returns:
		  - []*species.Species: Hydrated species entities (soft-deleted excluded)
		  - error: Database retrieval failures
	*/
	ListForUser(context context.Context, userID string) ([]*species.Species, error)

	/*
		Add creates a bookmark for a species.

		Parameters:
		  - context: context.Context
		  - userID: string (UUID)
		  - speciesID: int

		Returns:
		  - error: apperr.NotFound if the species is absent or soft-deleted,
		    apperr.Conflict if the bookmark already exists
	*/
	Add(context context.Context, userID string, speciesID int) error

	/*
		Remove deletes a bookmark.

		Parameters:
		  - context: context.Context
		  - userID: string (UUID)
		  - speciesID: int

		Returns:
		  - error: apperr.NotFound if no such bookmark exists
	*/
	Remove(context context.Context, userID string, speciesID int) error
}
