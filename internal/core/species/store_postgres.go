// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

/*
Package species provides the PostgreSQL implementation for the catalogue's data access.

It utilizes advanced Postgres features to deliver a high-performance discovery experience:
  - JSON Aggregation: Retrieves complex nested data (regions, census history, media)
    in a single round-trip.
  - Window Functions: Calculates total result counts without requiring a separate
    'COUNT' query.
  - ACID Transactions: Ensures atomicity when writing species rows together with
    their junction, census, media, and status-history side-effects.

The repository follows an "Aggregate" pattern where sub-resources are managed
through the main repository instance to maintain domain integrity.
*/
package species

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rmedina/faunatlas/internal/platform/apperr"
	"github.com/rmedina/faunatlas/internal/platform/database/schema"
	"github.com/rmedina/faunatlas/internal/platform/dberr"
)

// # PostgreSQL Repository

// speciesRepository implements the [Repository] interface using pgx.
type speciesRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed species store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &speciesRepository{pool: pool}
}

// # Read Path

/*
List returns a filtered, paginated slice of species and the total count.

Description: This query utilizes several PostgreSQL advanced features:
  - Window Function: Uses COUNT(*) OVER() to retrieve total record counts
    without a second query.
  - JSON Aggregation: Sub-queries aggregate associated regions and census
    rows into JSON arrays to prevent N+1 overhead.
  - Deterministic Order: scientific name ascending, ties broken by id, so
    pagination windows never overlap or skip.

Parameters:
  - context: context.Context
  - filter: Filter (Region name, taxonomy-kingdom category, status set, trend)
  - limit: int
  - offset: int

Returns:
  - []*Species: Slice of hydrated species entities
  - int: Total count matching filters
  - error: Database execution errors
*/
func (repository *speciesRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Species, int, error) {

	// Query build initialization. The filter predicate is built separately
	// so the count fallback below can reuse it verbatim.
	var queryBuilder strings.Builder
	var filterBuilder strings.Builder
	var args []any
	argID := 1

	// Using Window Function to get total count.
	// Regions and census history are aggregated into JSON arrays; the taxonomy
	// tuple is folded into a JSON object from the mandatory join.
	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT
			s.%s, s.%s, s.%s, s.%s, s.%s,
			s.%s, s.%s, s.%s, s.%s, s.%s,
			s.%s, s.%s,
			COUNT(*) OVER() AS total_count,
			json_build_object(
				'id', t.%s, 'kingdom', t.%s, 'phylum', t.%s,
				'class_name', t.%s, 'order_name', t.%s,
				'family', t.%s, 'genus', t.%s
			) AS taxonomy,
			COALESCE((
				SELECT json_agg(json_build_object('id', r.%s, 'name', r.%s, 'type', r.%s))
				FROM %s r
				JOIN %s sr ON r.%s = sr.%s
				WHERE sr.%s = s.%s
			), '[]') AS regions,
			COALESCE((
				SELECT json_agg(json_build_object(
					'id', pc.%s, 'species_id', pc.%s, 'census_date', pc.%s,
					'population', pc.%s, 'source_id', pc.%s, 'notes', pc.%s
				) ORDER BY pc.%s DESC)
				FROM %s pc
				WHERE pc.%s = s.%s
			), '[]') AS census
		FROM %s s
		JOIN %s t ON t.%s = s.%s
		WHERE s.%s IS NULL
	`,
		schema.Species.ID,
		schema.Species.Slug,
		schema.Species.ScientificName,
		schema.Species.CommonName,
		schema.Species.IUCNStatus,
		schema.Species.Habitat,
		schema.Species.Description,
		schema.Species.TaxonomyID,
		schema.Species.PopulationOperator,
		schema.Species.CurrentTrend,
		schema.Species.CreatedAt,
		schema.Species.UpdatedAt,
		schema.Taxonomy.ID,
		schema.Taxonomy.Kingdom,
		schema.Taxonomy.Phylum,
		schema.Taxonomy.ClassName,
		schema.Taxonomy.OrderName,
		schema.Taxonomy.Family,
		schema.Taxonomy.Genus,
		schema.Region.ID,
		schema.Region.Name,
		schema.Region.Type,
		schema.Region.Table,
		schema.SpeciesRegion.Table,
		schema.Region.ID, schema.SpeciesRegion.RegionID,
		schema.SpeciesRegion.SpeciesID, schema.Species.ID,
		schema.PopulationCensus.ID,
		schema.PopulationCensus.SpeciesID,
		schema.PopulationCensus.CensusDate,
		schema.PopulationCensus.Population,
		schema.PopulationCensus.SourceID,
		schema.PopulationCensus.Notes,
		schema.PopulationCensus.CensusDate,
		schema.PopulationCensus.Table,
		schema.PopulationCensus.SpeciesID, schema.Species.ID,
		schema.Species.Table,
		schema.Taxonomy.Table,
		schema.Taxonomy.ID, schema.Species.TaxonomyID,
		schema.Species.DeletedAt,
	))

	// Region Filtering (by exact region name)
	if filter.Region != "" {
		filterBuilder.WriteString(fmt.Sprintf(` AND EXISTS (
			SELECT 1 FROM %s sr JOIN %s r ON r.%s = sr.%s
			WHERE sr.%s = s.%s AND r.%s = $%d
		)`,
			schema.SpeciesRegion.Table, schema.Region.Table,
			schema.Region.ID, schema.SpeciesRegion.RegionID,
			schema.SpeciesRegion.SpeciesID, schema.Species.ID,
			schema.Region.Name, argID,
		))
		args = append(args, filter.Region)
		argID++
	}

	// Category Filtering (taxonomy kingdom)
	if filter.Category != "" {
		filterBuilder.WriteString(fmt.Sprintf(" AND t.%s = $%d", schema.Taxonomy.Kingdom, argID))
		args = append(args, filter.Category)
		argID++
	}

	// Status Filtering (explicit ?status= and the curated listings)
	if len(filter.Statuses) > 0 {
		statusValues := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			statusValues = append(statusValues, string(status))
		}
		filterBuilder.WriteString(fmt.Sprintf(" AND s.%s = ANY($%d)", schema.Species.IUCNStatus, argID))
		args = append(args, statusValues)
		argID++
	}

	// Trend Filtering (population trajectory)
	if filter.Trend != "" {
		filterBuilder.WriteString(fmt.Sprintf(" AND s.%s = $%d", schema.Species.CurrentTrend, argID))
		args = append(args, string(filter.Trend))
		argID++
	}

	// Merge the predicate into the page query
	filterArgs := args
	queryBuilder.WriteString(filterBuilder.String())

	// Deterministic Ordering
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY s.%s ASC, s.%s ASC", schema.Species.ScientificName, schema.Species.ID))

	// Pagination injection
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	// Query Execution
	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list species: %w", err)
	}
	defer rows.Close()

	// Initialize variables
	var entities []*Species
	var totalCount int

	// Iterate over rows
	for rows.Next() {
		entity := &Species{}
		var taxonomyJSON, regionsJSON, censusJSON []byte

		err := rows.Scan(
			&entity.ID,
			&entity.Slug,
			&entity.ScientificName,
			&entity.CommonName,
			&entity.IUCNStatus,
			&entity.Habitat,
			&entity.Description,
			&entity.TaxonomyID,
			&entity.PopulationOperator,
			&entity.CurrentTrend,
			&entity.CreatedAt,
			&entity.UpdatedAt,
			&totalCount,
			&taxonomyJSON,
			&regionsJSON,
			&censusJSON,
		)

		// Check for errors during row scanning
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan species: %w", err)
		}

		// Unmarshal aggregated relations
		if err := hydrateRelations(entity, taxonomyJSON, regionsJSON, censusJSON, nil, nil); err != nil {
			return nil, 0, err
		}

		entities = append(entities, entity)
	}

	// The window-function count is only observable on returned rows. A page
	// past the end of the result set returns none, so re-count with the same
	// predicate to keep pagination metadata truthful.
	if len(entities) == 0 && offset > 0 {
		countQuery := fmt.Sprintf(`
			SELECT COUNT(*)
			FROM %s s
			JOIN %s t ON t.%s = s.%s
			WHERE s.%s IS NULL`,
			schema.Species.Table,
			schema.Taxonomy.Table,
			schema.Taxonomy.ID, schema.Species.TaxonomyID,
			schema.Species.DeletedAt,
		) + filterBuilder.String()

		if err := repository.pool.QueryRow(context, countQuery, filterArgs...).Scan(&totalCount); err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to count species: %w", err)
		}
	}

	// Return the list of species and total count
	return entities, totalCount, nil
}

/*
FindByID retrieves a species record by its primary key, fully hydrated.

Description: In addition to the core fields, this query utilizes PostgreSQL's
JSON aggregation capabilities (json_agg and json_build_object) natively to
retrieve the associated taxonomy, regions, media, census, and status history
in a single database round-trip. This avoids the classic N+1 query problem.

Parameters:
  - context: context.Context
  - id: int (Serial primary key of the target species)

Returns:
  - *Species: The fully hydrated entity, or nil if not found
  - error: apperr.NotFound if the species does not exist or is soft-deleted
*/
func (repository *speciesRepository) FindByID(context context.Context, id int) (*Species, error) {

	// Unified Lookup Query with JSON Relation Aggregation
	query := fmt.Sprintf(`
		SELECT
			s.%s, s.%s, s.%s, s.%s, s.%s,
			s.%s, s.%s, s.%s, s.%s, s.%s,
			s.%s, s.%s,
			json_build_object(
				'id', t.%s, 'kingdom', t.%s, 'phylum', t.%s,
				'class_name', t.%s, 'order_name', t.%s,
				'family', t.%s, 'genus', t.%s
			) AS taxonomy,
			COALESCE((
				SELECT json_agg(json_build_object('id', r.%s, 'name', r.%s, 'type', r.%s))
				FROM %s r
				JOIN %s sr ON r.%s = sr.%s
				WHERE sr.%s = s.%s
			), '[]') AS regions,
			COALESCE((
				SELECT json_agg(json_build_object(
					'id', pc.%s, 'species_id', pc.%s, 'census_date', pc.%s,
					'population', pc.%s, 'source_id', pc.%s, 'notes', pc.%s
				) ORDER BY pc.%s DESC)
				FROM %s pc
				WHERE pc.%s = s.%s
			), '[]') AS census,
			COALESCE((
				SELECT json_agg(json_build_object(
					'id', m.%s, 'species_id', m.%s, 'media_url', m.%s,
					'media_type', m.%s, 'credit', m.%s, 'license', m.%s
				))
				FROM %s m
				WHERE m.%s = s.%s
			), '[]') AS media,
			COALESCE((
				SELECT json_agg(json_build_object(
					'id', h.%s, 'species_id', h.%s, 'old_status', h.%s,
					'new_status', h.%s, 'changed_at', h.%s, 'source_id', h.%s
				) ORDER BY h.%s DESC)
				FROM %s h
				WHERE h.%s = s.%s
			), '[]') AS history
		FROM %s s
		JOIN %s t ON t.%s = s.%s
		WHERE s.%s = $1 AND s.%s IS NULL
	`,
		schema.Species.ID,
		schema.Species.Slug,
		schema.Species.ScientificName,
		schema.Species.CommonName,
		schema.Species.IUCNStatus,
		schema.Species.Habitat,
		schema.Species.Description,
		schema.Species.TaxonomyID,
		schema.Species.PopulationOperator,
		schema.Species.CurrentTrend,
		schema.Species.CreatedAt,
		schema.Species.UpdatedAt,
		schema.Taxonomy.ID,
		schema.Taxonomy.Kingdom,
		schema.Taxonomy.Phylum,
		schema.Taxonomy.ClassName,
		schema.Taxonomy.OrderName,
		schema.Taxonomy.Family,
		schema.Taxonomy.Genus,
		schema.Region.ID,
		schema.Region.Name,
		schema.Region.Type,
		schema.Region.Table,
		schema.SpeciesRegion.Table,
		schema.Region.ID, schema.SpeciesRegion.RegionID,
		schema.SpeciesRegion.SpeciesID, schema.Species.ID,
		schema.PopulationCensus.ID,
		schema.PopulationCensus.SpeciesID,
		schema.PopulationCensus.CensusDate,
		schema.PopulationCensus.Population,
		schema.PopulationCensus.SourceID,
		schema.PopulationCensus.Notes,
		schema.PopulationCensus.CensusDate,
		schema.PopulationCensus.Table,
		schema.PopulationCensus.SpeciesID, schema.Species.ID,
		schema.SpeciesMedia.ID,
		schema.SpeciesMedia.SpeciesID,
		schema.SpeciesMedia.MediaURL,
		schema.SpeciesMedia.MediaType,
		schema.SpeciesMedia.Credit,
		schema.SpeciesMedia.License,
		schema.SpeciesMedia.Table,
		schema.SpeciesMedia.SpeciesID, schema.Species.ID,
		schema.StatusHistory.ID,
		schema.StatusHistory.SpeciesID,
		schema.StatusHistory.OldStatus,
		schema.StatusHistory.NewStatus,
		schema.StatusHistory.ChangedAt,
		schema.StatusHistory.SourceID,
		schema.StatusHistory.ChangedAt,
		schema.StatusHistory.Table,
		schema.StatusHistory.SpeciesID, schema.Species.ID,
		schema.Species.Table,
		schema.Taxonomy.Table,
		schema.Taxonomy.ID, schema.Species.TaxonomyID,
		schema.Species.ID, schema.Species.DeletedAt,
	)

	// Record Scanning Pipeline
	entity := &Species{}
	var taxonomyJSON, regionsJSON, censusJSON, mediaJSON, historyJSON []byte

	err := repository.pool.QueryRow(context, query, id).Scan(
		&entity.ID,
		&entity.Slug,
		&entity.ScientificName,
		&entity.CommonName,
		&entity.IUCNStatus,
		&entity.Habitat,
		&entity.Description,
		&entity.TaxonomyID,
		&entity.PopulationOperator,
		&entity.CurrentTrend,
		&entity.CreatedAt,
		&entity.UpdatedAt,
		&taxonomyJSON,
		&regionsJSON,
		&censusJSON,
		&mediaJSON,
		&historyJSON,
	)

	// Result Validation
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Species")
		}
		return nil, fmt.Errorf("postgres: failed to find species by id: %w", err)
	}

	// Relation Hydration
	if err := hydrateRelations(entity, taxonomyJSON, regionsJSON, censusJSON, mediaJSON, historyJSON); err != nil {
		return nil, err
	}

	return entity, nil
}

// # Write Path

/*
Create persists a new species entity and all its associated side-effect rows.

Description: Executes the insertion within a single ACID-compliant PostgreSQL
transaction. If the insertion of the core record, any region junction link, the
initial census, or the media row fails due to constraints (unknown taxonomy,
unknown region, duplicate scientific name), the entire operation is rolled
back. This explicitly prevents orphaned associations and partial saves.

Parameters:
  - context: context.Context
  - entity: *Species (Core metadata plus RegionIDs; ID populated on success)
  - census: *PopulationCensus (Optional, nil to skip)
  - media: *Media (Optional, nil to skip)

Returns:
  - error: apperr.Conflict / apperr.NotFound via dberr, or execution errors
*/
func (repository *speciesRepository) Create(context context.Context, entity *Species, census *PopulationCensus, media *Media) error {

	// Transaction Context Instantiation
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}
	defer transaction.Rollback(context)

	// Core Row Insertion
	query := fmt.Sprintf(`
		INSERT INTO %s (
			%s, %s, %s, %s, %s, %s, %s, %s, %s
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s
	`,
		schema.Species.Table,
		schema.Species.Slug, schema.Species.ScientificName, schema.Species.CommonName,
		schema.Species.IUCNStatus, schema.Species.Habitat, schema.Species.Description,
		schema.Species.TaxonomyID, schema.Species.PopulationOperator, schema.Species.CurrentTrend,
		schema.Species.ID,
	)

	err = transaction.QueryRow(context, query,
		entity.Slug,
		entity.ScientificName,
		entity.CommonName,
		entity.IUCNStatus,
		entity.Habitat,
		entity.Description,
		entity.TaxonomyID,
		entity.PopulationOperator,
		entity.CurrentTrend,
	).Scan(&entity.ID)

	// Constraint failures become domain errors (duplicate name → Conflict,
	// unknown taxonomy → NotFound)
	if err != nil {
		return dberr.Wrap(err, "create species")
	}

	// Region Junction Synchronization
	if err := repository.syncRegions(context, transaction, entity.ID, entity.RegionIDs); err != nil {
		return err
	}

	// Optional Initial Census
	if census != nil {
		census.SpeciesID = entity.ID
		if err := insertCensus(context, transaction, census); err != nil {
			return err
		}
	}

	// Optional Media Attachment
	if media != nil {
		media.SpeciesID = entity.ID
		if err := insertMedia(context, transaction, media); err != nil {
			return err
		}
	}

	// Final Persistence Commit
	if err := transaction.Commit(context); err != nil {
		return fmt.Errorf("postgres: failed to commit create transaction: %w", err)
	}

	return nil
}

/*
Update persists a partial merge to an existing species record.

Description: Utilizes a dynamic SQL strings.Builder to construct a PATCH-style
partial update query. The current conservation status is read under a row lock
first; when the update changes it, a status-history row is appended inside the
same transaction. A non-nil RegionIDs slice replaces all junction associations
to maintain 1-to-1 sync with the caller's payload.

Parameters:
  - context: context.Context
  - entity: *Species (Target ID and updated fields)
  - census: *PopulationCensus (Optional census row to append)
  - media: *Media (Optional attachment to append)

Returns:
  - error: apperr.NotFound if the target record does not exist or is deleted
*/
func (repository *speciesRepository) Update(context context.Context, entity *Species, census *PopulationCensus, media *Media) error {

	// Transaction Boundary Setup
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres: update transaction begin failed: %w", err)
	}
	defer transaction.Rollback(context)

	// Current Status Snapshot (row lock)
	// Read before the merge so a status change can be detected and audited.
	var currentStatus IUCNStatus
	lockQuery := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 AND %s IS NULL FOR UPDATE",
		schema.Species.IUCNStatus, schema.Species.Table, schema.Species.ID, schema.Species.DeletedAt)

	if err := transaction.QueryRow(context, lockQuery, entity.ID).Scan(&currentStatus); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("Species")
		}
		return fmt.Errorf("postgres: failed to lock species: %w", err)
	}

	// Dynamic PATCH Construction
	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf("UPDATE %s SET %s = NOW()", schema.Species.Table, schema.Species.UpdatedAt))

	var args []any
	argID := 1

	// Scientific name + derived slug
	if entity.ScientificName != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.Species.ScientificName, argID))
		args = append(args, entity.ScientificName)
		argID++
	}

	// Slug
	if entity.Slug != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.Species.Slug, argID))
		args = append(args, entity.Slug)
		argID++
	}

	// Common name
	if entity.CommonName != nil {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.Species.CommonName, argID))
		args = append(args, entity.CommonName)
		argID++
	}

	// Conservation status
	if entity.IUCNStatus != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.Species.IUCNStatus, argID))
		args = append(args, entity.IUCNStatus)
		argID++
	}

	// Habitat
	if entity.Habitat != nil {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.Species.Habitat, argID))
		args = append(args, entity.Habitat)
		argID++
	}

	// Description
	if entity.Description != nil {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.Species.Description, argID))
		args = append(args, entity.Description)
		argID++
	}

	// Taxonomy reference
	if entity.TaxonomyID != 0 {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.Species.TaxonomyID, argID))
		args = append(args, entity.TaxonomyID)
		argID++
	}

	// Population qualifier
	if entity.PopulationOperator != nil {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.Species.PopulationOperator, argID))
		args = append(args, entity.PopulationOperator)
		argID++
	}

	// Population trend
	if entity.CurrentTrend != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.Species.CurrentTrend, argID))
		args = append(args, entity.CurrentTrend)
		argID++
	}

	// Targeted Where Constraint
	queryBuilder.WriteString(fmt.Sprintf(" WHERE %s = $%d AND %s IS NULL", schema.Species.ID, argID, schema.Species.DeletedAt))
	args = append(args, entity.ID)

	// Core Row Merge
	if _, err := transaction.Exec(context, queryBuilder.String(), args...); err != nil {
		return dberr.Wrap(err, "update species")
	}

	// Status Audit Trail
	// A status change appends an append-only history row in the same transaction.
	if entity.IUCNStatus != "" && entity.IUCNStatus != currentStatus {
		historyQuery := fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, NOW())",
			schema.StatusHistory.Table,
			schema.StatusHistory.SpeciesID, schema.StatusHistory.OldStatus,
			schema.StatusHistory.NewStatus, schema.StatusHistory.ChangedAt,
		)
		if _, err := transaction.Exec(context, historyQuery, entity.ID, currentStatus, entity.IUCNStatus); err != nil {
			return fmt.Errorf("postgres: failed to append status history: %w", err)
		}
	}

	// Region Junction Replacement (wholesale, only when the caller sent a set)
	if entity.RegionIDs != nil {
		if err := repository.syncRegions(context, transaction, entity.ID, entity.RegionIDs); err != nil {
			return err
		}
	}

	// Census Side-Effect
	if census != nil {
		census.SpeciesID = entity.ID
		if err := insertCensus(context, transaction, census); err != nil {
			return err
		}
	}

	// Media Side-Effect
	if media != nil {
		media.SpeciesID = entity.ID
		if err := insertMedia(context, transaction, media); err != nil {
			return err
		}
	}

	// Commit Transaction
	if err := transaction.Commit(context); err != nil {
		return fmt.Errorf("postgres: update transaction commit failed: %w", err)
	}

	return nil
}

/*
SoftDelete hides a species without physical row removal.

Description: Stamps the deleted_at column with the database engine's current
timestamp. Every read path (catalogue, detail, favorites) carries a global
'WHERE deleted_at IS NULL' requirement, so the record disappears from
discovery while remaining available for auditing.

Parameters:
  - context: context.Context
  - id: int

Returns:
  - error: apperr.NotFound if missing or already deleted, otherwise execution errors
*/
func (repository *speciesRepository) SoftDelete(context context.Context, id int) error {

	// Soft Deletion Query
	query := fmt.Sprintf("UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL",
		schema.Species.Table, schema.Species.DeletedAt, schema.Species.ID, schema.Species.DeletedAt)

	result, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete species: %w", err)
	}

	// Missing or already-deleted rows surface as a domain 404
	if result.RowsAffected() == 0 {
		return apperr.NotFound("Species")
	}

	return nil
}

// # Internal Helpers

/*
syncRegions synchronizes the species-region junction table.

Description: Implements a "Clear and Insert" bulk strategy. All existing
mappings for the species are flushed first, then the new associations are
queued through the native pgx.Batch pipeline, bounding multiple network trips
into a single optimized sequence. A foreign-key violation (unknown region)
aborts the enclosing transaction.

Parameters:
  - context: context.Context
  - transaction: pgx.Tx (The actively executing transaction boundary)
  - speciesID: int (Parent species)
  - regionIDs: []int (The full replacement set of region foreign keys)

Returns:
  - error: apperr.NotFound on an unknown region reference, or execution errors
*/
func (repository *speciesRepository) syncRegions(context context.Context, transaction pgx.Tx, speciesID int, regionIDs []int) error {

	// Record Deletion Phase
	delQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.SpeciesRegion.Table, schema.SpeciesRegion.SpeciesID)
	if _, err := transaction.Exec(context, delQuery, speciesID); err != nil {
		return fmt.Errorf("postgres: failed to clear region links: %w", err)
	}

	// Empty Set Check
	if len(regionIDs) == 0 {
		return nil
	}

	// Batch Execution Setup
	insQuery := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2)",
		schema.SpeciesRegion.Table, schema.SpeciesRegion.SpeciesID, schema.SpeciesRegion.RegionID)

	batch := &pgx.Batch{}
	for _, regionID := range regionIDs {
		batch.Queue(insQuery, speciesID, regionID)
	}

	// Batch Dispatch
	response := transaction.SendBatch(context, batch)
	if err := response.Close(); err != nil {
		return dberr.Wrap(err, "link species regions")
	}

	return nil
}

// insertCensus appends a population census row inside the given transaction.
func insertCensus(context context.Context, transaction pgx.Tx, census *PopulationCensus) error {
	query := fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5)",
		schema.PopulationCensus.Table,
		schema.PopulationCensus.SpeciesID, schema.PopulationCensus.CensusDate,
		schema.PopulationCensus.Population, schema.PopulationCensus.SourceID,
		schema.PopulationCensus.Notes,
	)

	if _, err := transaction.Exec(context, query,
		census.SpeciesID, census.CensusDate, census.Population, census.SourceID, census.Notes,
	); err != nil {
		return dberr.Wrap(err, "insert population census")
	}

	return nil
}

// insertMedia appends a media row inside the given transaction.
func insertMedia(context context.Context, transaction pgx.Tx, media *Media) error {
	query := fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5)",
		schema.SpeciesMedia.Table,
		schema.SpeciesMedia.SpeciesID, schema.SpeciesMedia.MediaURL,
		schema.SpeciesMedia.MediaType, schema.SpeciesMedia.Credit,
		schema.SpeciesMedia.License,
	)

	if _, err := transaction.Exec(context, query,
		media.SpeciesID, media.MediaURL, media.MediaType, media.Credit, media.License,
	); err != nil {
		return dberr.Wrap(err, "insert species media")
	}

	return nil
}

// hydrateRelations deserializes the aggregated Postgres JSON arrays back into
// the entity's relation slices. Nil inputs are skipped so the list path can
// omit media and history.
func hydrateRelations(entity *Species, taxonomyJSON, regionsJSON, censusJSON, mediaJSON, historyJSON []byte) error {
	if taxonomyJSON != nil {
		entity.Taxonomy = &Taxonomy{}
		if err := json.Unmarshal(taxonomyJSON, entity.Taxonomy); err != nil {
			return fmt.Errorf("postgres: failed to unmarshal taxonomy: %w", err)
		}
	}

	if regionsJSON != nil {
		if err := json.Unmarshal(regionsJSON, &entity.Regions); err != nil {
			return fmt.Errorf("postgres: failed to unmarshal regions: %w", err)
		}
	}

	if censusJSON != nil {
		if err := json.Unmarshal(censusJSON, &entity.Census); err != nil {
			return fmt.Errorf("postgres: failed to unmarshal census: %w", err)
		}
	}

	if mediaJSON != nil {
		if err := json.Unmarshal(mediaJSON, &entity.Media); err != nil {
			return fmt.Errorf("postgres: failed to unmarshal media: %w", err)
		}
	}

	if historyJSON != nil {
		if err := json.Unmarshal(historyJSON, &entity.History); err != nil {
			return fmt.Errorf("postgres: failed to unmarshal status history: %w", err)
		}
	}

	return nil
}
