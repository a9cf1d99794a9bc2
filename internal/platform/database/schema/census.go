package schema

// PopulationCensusTable represents the 'population_census' table
type PopulationCensusTable struct {
	Table      string
	ID         string
	SpeciesID  string
	CensusDate string
	Population string
	SourceID   string
	Notes      string
	CreatedAt  string
}

// PopulationCensus is the schema definition for population_census
var PopulationCensus = PopulationCensusTable{
	Table:      "population_census",
	ID:         "id",
	SpeciesID:  "species_id",
	CensusDate: "census_date",
	Population: "population",
	SourceID:   "source_id",
	Notes:      "notes",
	CreatedAt:  "created_at",
}
