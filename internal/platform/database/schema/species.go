package schema

// SpeciesTable represents the 'species' table
type SpeciesTable struct {
	Table              string
	ID                 string
	Slug               string
	ScientificName     string
	CommonName         string
	IUCNStatus         string
	Habitat            string
	Description        string
	TaxonomyID         string
	PopulationOperator string
	CurrentTrend       string
	CreatedAt          string
	UpdatedAt          string
	DeletedAt          string
}

// Species is the schema definition for the species table
var Species = SpeciesTable{
	Table:              "species",
	ID:                 "id",
	Slug:               "slug",
	ScientificName:     "scientific_name",
	CommonName:         "common_name",
	IUCNStatus:         "iucn_status",
	Habitat:            "habitat",
	Description:        "description",
	TaxonomyID:         "taxonomy_id",
	PopulationOperator: "population_operator",
	CurrentTrend:       "current_trend",
	CreatedAt:          "created_at",
	UpdatedAt:          "updated_at",
	DeletedAt:          "deleted_at",
}

// SpeciesRegionTable represents the 'species_region' junction table
type SpeciesRegionTable struct {
	Table     string
	SpeciesID string
	RegionID  string
}

// SpeciesRegion is the schema definition for species_region
var SpeciesRegion = SpeciesRegionTable{
	Table:     "species_region",
	SpeciesID: "species_id",
	RegionID:  "region_id",
}
