// Copyright (c) 2026 Faunatlas. All rights reserved.
// Author: r.medina.dev@gmail.com

package region

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

func (repository *PostgresRepository) ListRegions(context context.Context) ([]*Region, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s ORDER BY %s ASC, %s ASC`,
		schema.Region.ID, schema.Region.Name, schema.Region.Type, schema.Region.ParentID,
		schema.Region.Table, schema.Region.Type, schema.Region.Name)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_regions")
	}
	defer rows.Close()

	regions := make([]*Region, 0)
	for rows.Next() {
		region := &Region{}
		if err := rows.Scan(&region.ID, &region.Name, &region.Type, &region.ParentID); err != nil {
			return nil, dberr.Wrap(err, "scan_region")
		}
		regions = append(regions, region)
	}

	return regions, nil
}

func (repository *PostgresRepository) GetRegionByID(context context.Context, id int) (*Region, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.Region.ID, schema.Region.Name, schema.Region.Type, schema.Region.ParentID,
		schema.Region.Table, schema.Region.ID)

	region := &Region{}
	err := repository.db.QueryRow(context, query, id).Scan(&region.ID, &region.Name, &region.Type, &region.ParentID)
	if err != nil {
		return nil, dberr.Wrap(err, "get_region_by_id")
	}

	return region, nil
}
