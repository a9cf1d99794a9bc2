// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

package species

import (
	"context"
	"log/slog"
	"time"

	"github.com/rmedina/faunatlas/internal/platform/validate"
	"github.com/rmedina/faunatlas/pkg/slug"
)

// # Service Layer

// Service orchestrates the business logic for the species catalogue.
// It acts as the primary entry point for managing conservation records.
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

// # Catalogue Lookups

/*
ListSpecies retrieves a paginated and filtered collection of species DTOs.

Description: This method orchestrates the discovery phase of the catalogue.
Filter criteria are passed directly to the repository layer for database-level
filtering; the results are shaped into DTOs with all derived fields computed.

Parameters:
  - context: context.Context
  - filter: Filter (Region name, taxonomy-kingdom category, status set, trend)
  - limit: int (Max records to return)
  - offset: int (Pagination cursor)

Returns:
  - []*DTO: Slice of mapped species records
  - int: Total count of records matching the filter (for pagination metadata)
  - error: System or repository level errors
*/
func (service *Service) ListSpecies(context context.Context, filter Filter, limit, offset int) ([]*DTO, int, error) {
	entities, total, err := service.repo.List(context, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	return MapAll(entities), total, nil
}

/*
GetSpecies fetches a single species record by its numeric identifier.

Parameters:
  - context: context.Context
  - id: int

Returns:
  - *DTO: The fully hydrated, mapped record
  - error: apperr.NotFound if no active record matches
*/
func (service *Service) GetSpecies(context context.Context, id int) (*DTO, error) {
	entity, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	return Map(entity), nil
}

// # Catalogue Management

/*
CreateSpecies initialises a new conservation record in the catalogue.

Description: Performs deep business validation on the metadata, derives the
SEO slug from the scientific name, and persists the species together with its
region associations, optional initial census, and optional image attachment in
a single atomic repository call. Nothing is written when validation fails.

Parameters:
  - context: context.Context
  - entity: *Species (The entity to be persisted, including RegionIDs)
  - census: *PopulationCensus (Optional initial census, nil to skip)
  - imageURL: *string (Optional image attachment URL)

Returns:
  - *DTO: The hydrated record as persisted
  - error: Validation, reference-resolution, or persistence errors
*/
func (service *Service) CreateSpecies(context context.Context, entity *Species, census *PopulationCensus, imageURL *string) (*DTO, error) {

	// Business attribute validation
	validator := &validate.Validator{}
	validator.Required(FieldScientificName, entity.ScientificName).
		LenBetween(FieldScientificName, entity.ScientificName, 3, 150)

	// Conservation state validation
	validator.Required(FieldIUCNStatus, string(entity.IUCNStatus)).
		Custom(FieldIUCNStatus, entity.IUCNStatus != "" && !entity.IUCNStatus.IsValid(), "Must be a valid IUCN category")

	// Reference integrity validation
	validator.Positive(FieldTaxonomyID, entity.TaxonomyID)
	validator.NotEmptySlice(FieldRegionIDs, len(entity.RegionIDs)).
		PositiveAll(FieldRegionIDs, entity.RegionIDs)

	// Optional attribute validation
	service.validateOptionalFields(validator, entity, census, imageURL)

	// Return validation errors if any constraints failed
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Trend defaulting
	if entity.CurrentTrend == "" {
		entity.CurrentTrend = TrendUnknown
	}

	// Slug derivation from the scientific name
	if entity.Slug == "" {
		entity.Slug = slug.From(entity.ScientificName)
	}

	// Census date defaulting: an undated census is stamped today
	if census != nil && census.CensusDate == "" {
		census.CensusDate = time.Now().UTC().Format("2006-01-02")
	}

	// Persistence via Repository (single transaction)
	media := mediaFromImageURL(imageURL)
	if err := service.repo.Create(context, entity, census, media); err != nil {
		return nil, err
	}

	service.logger.Info("species_created",
		slog.Int("species_id", entity.ID),
		slog.String("scientific_name", entity.ScientificName),
	)

	// Re-read for full hydration (taxonomy, region names)
	return service.GetSpecies(context, entity.ID)
}

/*
UpdateSpecies applies modifications to an existing conservation record.

Description: Supports partial updates. Absent fields in the input entity leave
the stored values untouched; a non-nil RegionIDs slice replaces the region set
wholesale. Census and image side-effects follow the same rules as creation and
share the update's transaction. A change of conservation status appends a
status-history row automatically.

Parameters:
  - context: context.Context
  - entity: *Species (Target ID and updated attributes)
  - census: *PopulationCensus (Optional census row to append)
  - imageURL: *string (Optional image attachment URL)

Returns:
  - *DTO: The hydrated record after the merge
  - error: Validation or persistence errors, apperr.NotFound if missing
*/
func (service *Service) UpdateSpecies(context context.Context, entity *Species, census *PopulationCensus, imageURL *string) (*DTO, error) {

	// Integrity validation for updated fields only
	validator := &validate.Validator{}

	// Business attribute validation
	if entity.ScientificName != "" {
		validator.LenBetween(FieldScientificName, entity.ScientificName, 3, 150)
	}

	// Conservation state validation
	if entity.IUCNStatus != "" {
		validator.Custom(FieldIUCNStatus, !entity.IUCNStatus.IsValid(), "Must be a valid IUCN category")
	}

	// Reference integrity validation
	if entity.TaxonomyID != 0 {
		validator.Positive(FieldTaxonomyID, entity.TaxonomyID)
	}
	if entity.RegionIDs != nil {
		validator.NotEmptySlice(FieldRegionIDs, len(entity.RegionIDs)).
			PositiveAll(FieldRegionIDs, entity.RegionIDs)
	}

	// Optional attribute validation
	service.validateOptionalFields(validator, entity, census, imageURL)

	// Return validation errors if any constraints failed
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Renaming a species re-derives its slug
	if entity.ScientificName != "" && entity.Slug == "" {
		entity.Slug = slug.From(entity.ScientificName)
	}

	// Census date defaulting
	if census != nil && census.CensusDate == "" {
		census.CensusDate = time.Now().UTC().Format("2006-01-02")
	}

	// Execute storage update (single transaction)
	media := mediaFromImageURL(imageURL)
	if err := service.repo.Update(context, entity, census, media); err != nil {
		return nil, err
	}

	service.logger.Info("species_updated", slog.Int("species_id", entity.ID))

	return service.GetSpecies(context, entity.ID)
}

/*
DeleteSpecies removes a species from active discovery.

Description: Implements soft-delete logic. The record remains in the database
for auditing but every read path filters it out, including favorites listings.

Parameters:
  - context: context.Context
  - id: int

Returns:
  - error: apperr.NotFound if the record is missing or already deleted
*/
func (service *Service) DeleteSpecies(context context.Context, id int) error {
	if err := service.repo.SoftDelete(context, id); err != nil {
		return err
	}

	service.logger.Warn("species_deleted", slog.Int("species_id", id))

	return nil
}

// # Internal Helpers

// validateOptionalFields applies the shared per-field rules for attributes
// that are optional on both create and update.
func (service *Service) validateOptionalFields(validator *validate.Validator, entity *Species, census *PopulationCensus, imageURL *string) {

	// Common name
	if entity.CommonName != nil && *entity.CommonName != "" {
		validator.LenBetween(FieldCommonName, *entity.CommonName, 3, 150)
	}

	// Population qualifier
	if entity.PopulationOperator != nil && *entity.PopulationOperator != "" {
		validator.OneOf(FieldPopulationOperator, *entity.PopulationOperator, PopulationOperators...)
	}

	// Population trend
	if entity.CurrentTrend != "" {
		validator.Custom(FieldCurrentTrend, !entity.CurrentTrend.IsValid(), "Must be a valid trend value")
	}

	// Census attributes
	if census != nil {
		validator.Custom(FieldPopulation, census.Population <= 0, "Must be greater than zero")
		if census.CensusDate != "" {
			validator.ISODate(FieldCensusDate, census.CensusDate)
		}
		if census.SourceID != nil {
			validator.Positive(FieldSourceID, *census.SourceID)
		}
	}

	// Image attachment
	if imageURL != nil && *imageURL != "" {
		validator.URL(FieldImageURL, *imageURL)
	}
}

// mediaFromImageURL wraps an optional image URL into a [Media] row.
func mediaFromImageURL(imageURL *string) *Media {
	if imageURL == nil || *imageURL == "" {
		return nil
	}
	return &Media{
		MediaURL:  *imageURL,
		MediaType: MediaTypeImage,
	}
}
