// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

package favorite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rmedina/faunatlas/internal/core/species"
	"github.com/rmedina/faunatlas/internal/platform/apperr"
	"github.com/rmedina/faunatlas/internal/platform/database/schema"
	"github.com/rmedina/faunatlas/internal/platform/dberr"
)

// # PostgreSQL Repository

// PostgresRepository implements the [Repository] interface using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed favorite store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
ListForUser returns the user's bookmarked species, hydrated for DTO mapping.

Description: Joins the favorite table against active species and aggregates
the taxonomy tuple, region names, and census history with the same JSON
aggregation strategy as the catalogue queries, so the favorites listing and
the catalogue listing shape records identically. Soft-deleted species drop
out of the join.

Parameters:
  - context: context.Context
  - userID: string (UUID)

Returns:
  - []*species.Species: Hydrated entities ordered by bookmark creation time
  - error: Database execution errors
*/
func (repository *PostgresRepository) ListForUser(context context.Context, userID string) ([]*species.Species, error) {

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
			), '[]') AS census
		FROM %s f
		JOIN %s s ON s.%s = f.%s AND s.%s IS NULL
		JOIN %s t ON t.%s = s.%s
		WHERE f.%s = $1
		ORDER BY f.%s ASC
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
		schema.Favorite.Table,
		schema.Species.Table,
		schema.Species.ID, schema.Favorite.SpeciesID,
		schema.Species.DeletedAt,
		schema.Taxonomy.Table,
		schema.Taxonomy.ID, schema.Species.TaxonomyID,
		schema.Favorite.UserID,
		schema.Favorite.CreatedAt,
	)

	// Query Execution
	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list favorites: %w", err)
	}
	defer rows.Close()

	var entities []*species.Species

	// Iterate over rows
	for rows.Next() {
		entity := &species.Species{}
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
			&taxonomyJSON,
			&regionsJSON,
			&censusJSON,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan favorite species: %w", err)
		}

		// Relation hydration from the aggregated JSON columns
		entity.Taxonomy = &species.Taxonomy{}
		if err := json.Unmarshal(taxonomyJSON, entity.Taxonomy); err != nil {
			return nil, fmt.Errorf("postgres: failed to unmarshal taxonomy: %w", err)
		}
		if err := json.Unmarshal(regionsJSON, &entity.Regions); err != nil {
			return nil, fmt.Errorf("postgres: failed to unmarshal regions: %w", err)
		}
		if err := json.Unmarshal(censusJSON, &entity.Census); err != nil {
			return nil, fmt.Errorf("postgres: failed to unmarshal census: %w", err)
		}

		entities = append(entities, entity)
	}

	return entities, nil
}

/*
Add creates a bookmark for a species.

Description: First verifies the species exists and is active (a 404 must win
over a constraint error for unknown ids), then inserts the pair. A unique
violation from a concurrent or repeated request maps to a domain Conflict —
the constraint itself is the concurrency guard, no application locking.

Parameters:
  - context: context.Context
  - userID: string (UUID)
  - speciesID: int

Returns:
  - error: apperr.NotFound / apperr.Conflict, otherwise execution errors
*/
func (repository *PostgresRepository) Add(context context.Context, userID string, speciesID int) error {

	// Species Existence Gate
	var exists bool
	existsQuery := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s IS NULL)",
		schema.Species.Table, schema.Species.ID, schema.Species.DeletedAt)

	if err := repository.db.QueryRow(context, existsQuery, speciesID).Scan(&exists); err != nil {
		return fmt.Errorf("postgres: failed to check species existence: %w", err)
	}
	if !exists {
		return apperr.NotFound("Species")
	}

	// Bookmark Insertion
	insertQuery := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2)",
		schema.Favorite.Table, schema.Favorite.UserID, schema.Favorite.SpeciesID)

	if _, err := repository.db.Exec(context, insertQuery, userID, speciesID); err != nil {
		if dberr.IsUniqueViolation(err) {
			return apperr.Conflict("Species is already in favorites")
		}
		return dberr.Wrap(err, "add favorite")
	}

	return nil
}

/*
Remove deletes a bookmark.

Parameters:
  - context: context.Context
  - userID: string (UUID)
  - speciesID: int

Returns:
  - error: apperr.NotFound if no matching row was deleted
*/
func (repository *PostgresRepository) Remove(context context.Context, userID string, speciesID int) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1 AND %s = $2",
		schema.Favorite.Table, schema.Favorite.UserID, schema.Favorite.SpeciesID)

	result, err := repository.db.Exec(context, query, userID, speciesID)
	if err != nil {
		return fmt.Errorf("postgres: failed to remove favorite: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Favorite")
	}

	return nil
}
