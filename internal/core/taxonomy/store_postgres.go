// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

package taxonomy

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rmedina/faunatlas/internal/platform/database/schema"
	"github.com/rmedina/faunatlas/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListTaxonomies(context context.Context) ([]*Taxonomy, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s FROM %s ORDER BY %s ASC, %s ASC`,
		schema.Taxonomy.ID, schema.Taxonomy.Kingdom, schema.Taxonomy.Phylum,
		schema.Taxonomy.ClassName, schema.Taxonomy.OrderName, schema.Taxonomy.Family,
		schema.Taxonomy.Genus, schema.Taxonomy.Table,
		schema.Taxonomy.Kingdom, schema.Taxonomy.Genus)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_taxonomies")
	}
	defer rows.Close()

	taxonomies := make([]*Taxonomy, 0)
	for rows.Next() {
		taxonomy := &Taxonomy{}
		if err := rows.Scan(
			&taxonomy.ID, &taxonomy.Kingdom, &taxonomy.Phylum,
			&taxonomy.ClassName, &taxonomy.OrderName, &taxonomy.Family,
			&taxonomy.Genus,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_taxonomy")
		}
		taxonomies = append(taxonomies, taxonomy)
	}

	return taxonomies, nil
}

func (repository *PostgresRepository) GetTaxonomyByID(context context.Context, id int) (*Taxonomy, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.Taxonomy.ID, schema.Taxonomy.Kingdom, schema.Taxonomy.Phylum,
		schema.Taxonomy.ClassName, schema.Taxonomy.OrderName, schema.Taxonomy.Family,
		schema.Taxonomy.Genus, schema.Taxonomy.Table, schema.Taxonomy.ID)

	taxonomy := &Taxonomy{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&taxonomy.ID, &taxonomy.Kingdom, &taxonomy.Phylum,
		&taxonomy.ClassName, &taxonomy.OrderName, &taxonomy.Family,
		&taxonomy.Genus,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_taxonomy_by_id")
	}

	return taxonomy, nil
}
