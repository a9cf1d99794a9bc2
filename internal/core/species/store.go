// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

package species

import "context"

// # Species Data Access

// Repository defines the data access contract for the species catalogue.
type Repository interface {

	/*
		List returns a filtered, paginated slice of species and the total count.

		Parameters:
		  - context: context.Context
		  - filter: Filter (Region name, taxonomy-kingdom category, status set, trend)
		  - limit: int
		  - offset: int

		Returns:
		  - []*Species: Slice of matching records, hydrated with taxonomy,
		    regions, and census history
		  - int: Total count of records matching the filter
		  - error: Database retrieval failures
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*Species, int, error)

	/*
		FindByID returns the species with the given ID, fully hydrated.

		Parameters:
		  - context: context.Context
		  - id: int (Serial primary key)

		Returns:
		  - *Species: The hydrated domain entity including taxonomy, regions,
		    media, census, and status history
		  - error: apperr.NotFound if missing or soft-deleted
	*/
	FindByID(context context.Context, id int) (*Species, error)

	/*
		Create persists a new species and all its side-effect rows atomically.

		The species row, its region junction rows, the optional initial census
		row, and the optional media row are written in a single transaction.
		A failure at any point rolls the whole operation back.

		Parameters:
		  - context: context.Context
		  - entity: *Species (Metadata plus RegionIDs; ID is populated on return)
		  - census: *PopulationCensus (Optional initial census, nil to skip)
		  - media: *Media (Optional initial attachment, nil to skip)

		Returns:
		  - error: apperr.Conflict on duplicate scientific name or slug,
		    apperr.NotFound on an unknown taxonomy or region reference
	*/
	Create(context context.Context, entity *Species, census *PopulationCensus, media *Media) error

	/*
		Update applies a partial merge to an existing species atomically.

		Zero-valued fields on the entity are left untouched. A non-nil
		RegionIDs slice replaces the region set wholesale. When the update
		changes the conservation status, a status-history row is appended in
		the same transaction.

		Parameters:
		  - context: context.Context
		  - entity: *Species (Target ID and modified attributes)
		  - census: *PopulationCensus (Optional census row to append, nil to skip)
		  - media: *Media (Optional attachment to append, nil to skip)

		Returns:
		  - error: apperr.NotFound if the species is missing or soft-deleted
	*/
	Update(context context.Context, entity *Species, census *PopulationCensus, media *Media) error

	/*
		SoftDelete marks a species as deleted without physical row removal.

		Parameters:
		  - context: context.Context
		  - id: int

		Returns:
		  - error: apperr.NotFound if missing or already deleted
	*/
	SoftDelete(context context.Context, id int) error
}
