package schema

// SpeciesMediaTable represents the 'species_media' table
type SpeciesMediaTable struct {
	Table     string
	ID        string
	SpeciesID string
	MediaURL  string
	MediaType string
	Credit    string
	License   string
	CreatedAt string
}

// SpeciesMedia is the schema definition for species_media
var SpeciesMedia = SpeciesMediaTable{
	Table:     "species_media",
	ID:        "id",
	SpeciesID: "species_id",
	MediaURL:  "media_url",
	MediaType: "media_type",
	Credit:    "credit",
	License:   "license",
	CreatedAt: "created_at",
}
